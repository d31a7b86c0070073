/*
Copyright 2026 The Perkeep Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package exifedit

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrSyntax is returned for coordinate or date strings that cannot be parsed.
var ErrSyntax = errors.New("exifedit: invalid syntax")

// NotSet is how an empty field is displayed.
const NotSet = "(not set)"

// IsEmpty reports whether v, once trimmed, means "no value".
func IsEmpty(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || v == NotSet
}

var (
	reDecimal    = regexp.MustCompile(`^[+-]?\d+\.?\d*$`)
	reDMS        = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)(?:\s*°\s*|\s+)(\d+(?:\.\d+)?)(?:\s*['′’]\s*|\s+)(\d+(?:\.\d+)?)\s*["″”]?\s*([NSEW])?$`)
	reDecimalDir = regexp.MustCompile(`(?i)^(\d+(?:\.\d*)?)\s*([NSEW])$`)
)

// ParseCoordinate parses a latitude or longitude in decimal degrees
// ("-37.7749"), degrees, minutes and seconds ("37°46'29.64\"N",
// "37 46 29.64 S") or decimal degrees with a direction ("122.4194 W").
// A direction of S or W negates the result.
func ParseCoordinate(s string) (float64, error) {
	if IsEmpty(s) {
		return 0, fmt.Errorf("%w: empty coordinate", ErrSyntax)
	}
	s = strings.TrimSpace(s)
	if reDecimal.MatchString(s) {
		return strconv.ParseFloat(s, 64)
	}
	if m := reDMS.FindStringSubmatch(s); m != nil {
		d, _ := strconv.ParseFloat(m[1], 64)
		mins, _ := strconv.ParseFloat(m[2], 64)
		sec, _ := strconv.ParseFloat(m[3], 64)
		return withDirection(d+mins/60+sec/3600, m[4]), nil
	}
	if m := reDecimalDir.FindStringSubmatch(s); m != nil {
		d, _ := strconv.ParseFloat(m[1], 64)
		return withDirection(d, m[2]), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: coordinate %q", ErrSyntax, s)
	}
	return f, nil
}

func withDirection(deg float64, dir string) float64 {
	switch strings.ToUpper(dir) {
	case "S", "W":
		return -deg
	}
	return deg
}

// DateTimeLayout is the Exif date and time format.
const DateTimeLayout = "2006:01:02 15:04:05"

var dateLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	DateTimeLayout,
}

// reWikiDate matches the "07:56, 6 September 2025" form of MediaWiki
// file histories.
var reWikiDate = regexp.MustCompile(`(\d{1,2}):(\d{2}),\s+(\d{1,2})\s+(\w+)\s+(\d{4})`)

// ParseDateTime parses a date and time given as "YYYY-MM-DDTHH:MM",
// "YYYY-MM-DDTHH:MM:SS", "YYYY:MM:DD HH:MM:SS" or "HH:MM, D Month YYYY"
// and returns it in the Exif format.
func ParseDateTime(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if len(s) != len(layout) {
			continue
		}
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateTimeLayout), nil
		}
	}
	if m := reWikiDate.FindStringSubmatch(s); m != nil {
		t, err := time.Parse("15:04, 2 January 2006", fmt.Sprintf("%s:%s, %s %s %s", m[1], m[2], m[3], m[4], m[5]))
		if err == nil {
			return t.Format(DateTimeLayout), nil
		}
	}
	return "", fmt.Errorf("%w: date %q", ErrSyntax, s)
}
