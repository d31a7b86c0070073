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
	"strings"
	"unicode/utf8"
)

// An Action describes what an edit does to a field.
type Action int

const (
	Unchanged Action = iota
	Added
	Changed
	Removed
)

func (a Action) String() string {
	switch a {
	case Added:
		return "added"
	case Changed:
		return "changed"
	case Removed:
		return "removed"
	}
	return "unchanged"
}

// Diff compares e with cur, the values recorded before the edit (see
// Current), and returns the action of every edit that changes something.
func Diff(cur, e Edits) map[Field]Action {
	acts := make(map[Field]Action)
	for f, v := range e {
		was, now := strings.TrimSpace(cur[f]), strings.TrimSpace(v)
		switch {
		case IsEmpty(now) && IsEmpty(was):
		case IsEmpty(now):
			acts[f] = Removed
		case IsEmpty(was):
			acts[f] = Added
		case now != was:
			acts[f] = Changed
		}
	}
	return acts
}

// MaxSummaryLen is the maximum length of a summary, in bytes.
const MaxSummaryLen = 500

// Summary describes acts in one line, such as
// "Change EXIF: Added Artist; Removed GPSLatitude". note, if not empty,
// is appended. The result is cut to MaxSummaryLen bytes.
func Summary(acts map[Field]Action, note string) string {
	fs := make([]Field, 0, len(acts))
	for f := range acts {
		fs = append(fs, f)
	}
	sortFields(fs)
	var added, changed, removed []string
	for _, f := range fs {
		switch acts[f] {
		case Added:
			added = append(added, f.Name())
		case Changed:
			changed = append(changed, f.Name())
		case Removed:
			removed = append(removed, f.Name())
		}
	}
	var parts []string
	if len(added) > 0 {
		parts = append(parts, "Added "+strings.Join(added, ", "))
	}
	if len(changed) > 0 {
		parts = append(parts, "Updated "+strings.Join(changed, ", "))
	}
	if len(removed) > 0 {
		parts = append(parts, "Removed "+strings.Join(removed, ", "))
	}
	sum := "Change EXIF"
	if len(parts) > 0 {
		sum += ": " + strings.Join(parts, "; ")
	}
	if note = strings.TrimSpace(note); note != "" {
		sum += "  " + note
	}
	if len(sum) > MaxSummaryLen {
		n := MaxSummaryLen - 3
		for n > 0 && !utf8.RuneStart(sum[n]) {
			n--
		}
		sum = sum[:n] + "..."
	}
	return sum
}
