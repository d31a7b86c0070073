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

package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"go4.org/wkfs"

	"quickexif.org/pkg/cmdmain"
	"quickexif.org/pkg/exif"
	"quickexif.org/pkg/exif/gps"
	"quickexif.org/pkg/exif/tags"
)

type showCmd struct {
	json bool
	all  bool
}

func init() {
	cmdmain.RegisterMode("show", func(flags *flag.FlagSet) cmdmain.CommandRunner {
		return newShowCmd(flags)
	})
}

func newShowCmd(flags *flag.FlagSet) *showCmd {
	cmd := new(showCmd)
	flags.BoolVar(&cmd.json, "json", false, "Print as JSON.")
	flags.BoolVar(&cmd.all, "all", false, "Also print the offset and length tags that locate the other directories and the thumbnail.")
	return cmd
}

func (c *showCmd) Describe() string {
	return "Print the Exif metadata of JPEG files."
}

func (c *showCmd) Usage() {
	cmdmain.Errorf("Usage: qexif [globalopts] show [-json] [-all] <file.jpg>...\n")
}

func (c *showCmd) Examples() []string {
	return []string{
		"photo.jpg",
		"-json *.jpg",
	}
}

// shownTag is a tag as printed by show.
type shownTag struct {
	IFD   string `json:"ifd"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// shownFile is a file as printed by show.
type shownFile struct {
	Path      string     `json:"path"`
	Tags      []shownTag `json:"tags"`
	Latitude  *float64   `json:"latitude,omitempty"`
	Longitude *float64   `json:"longitude,omitempty"`
	TimeZone  string     `json:"timeZone,omitempty"`
	Thumbnail int        `json:"thumbnailBytes,omitempty"`
}

func (c *showCmd) RunCommand(args []string) error {
	if len(args) == 0 {
		return cmdmain.UsageError("no files given")
	}
	var files []shownFile
	for _, path := range args {
		data, err := wkfs.ReadFile(path)
		if err != nil {
			return err
		}
		s, err := exif.Load(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		files = append(files, c.describe(path, s))
	}
	if c.json {
		enc := json.NewEncoder(cmdmain.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(files)
	}
	for i, f := range files {
		if i > 0 {
			fmt.Fprintln(cmdmain.Stdout)
		}
		printFile(cmdmain.Stdout, f)
	}
	return nil
}

func (c *showCmd) describe(path string, s *exif.Set) shownFile {
	f := shownFile{Path: path, Thumbnail: len(s.Thumbnail)}
	for _, ifd := range tags.IFDs {
		d := s.Dir(ifd)
		for _, id := range d.IDs() {
			if !c.all && exif.IsBookkeeping(ifd, id) {
				continue
			}
			v, _ := d.Get(id)
			if !c.json {
				v = formatValue(v)
			}
			f.Tags = append(f.Tags, shownTag{
				IFD:   ifd.String(),
				ID:    fmt.Sprintf("0x%04X", uint16(id)),
				Name:  tags.Name(ifd, id),
				Value: v,
			})
		}
	}
	if lat, long, ok := gps.Coordinates(s); ok {
		f.Latitude, f.Longitude = &lat, &long
		f.TimeZone = gps.ZoneName(lat, long)
	}
	return f
}

func printFile(w io.Writer, f shownFile) {
	fmt.Fprintf(w, "== %s\n", f.Path)
	if len(f.Tags) == 0 {
		fmt.Fprintf(w, "no Exif metadata\n")
	}
	for _, t := range f.Tags {
		fmt.Fprintf(w, "%-7s %s %-28s %v\n", t.IFD, t.ID, t.Name, t.Value)
	}
	if f.Latitude != nil {
		fmt.Fprintf(w, "position: %.6f, %.6f", *f.Latitude, *f.Longitude)
		if f.TimeZone != "" {
			fmt.Fprintf(w, " (%s)", f.TimeZone)
		}
		fmt.Fprintln(w)
	}
	if f.Thumbnail > 0 {
		fmt.Fprintf(w, "thumbnail: %s\n", plural(f.Thumbnail, "byte"))
	}
}

// maxShownBytes is the number of bytes of an opaque value printed in full.
const maxShownBytes = 32

func formatValue(v any) string {
	switch v := v.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case []byte:
		if utf8.Valid(v) && printable(v) {
			return fmt.Sprintf("%q", v)
		}
		if len(v) > maxShownBytes {
			return fmt.Sprintf("%s... (%d bytes)", hex.EncodeToString(v[:maxShownBytes]), len(v))
		}
		return hex.EncodeToString(v)
	case []exif.Rational:
		return joinValues(v)
	case []exif.SRational:
		return joinValues(v)
	case []uint16:
		return joinValues(v)
	case []uint32:
		return joinValues(v)
	case []int32:
		return joinValues(v)
	}
	return fmt.Sprint(v)
}

func printable(b []byte) bool {
	for _, c := range strings.TrimRight(string(b), "\x00") {
		if c < ' ' && c != '\n' && c != '\t' {
			return false
		}
	}
	return true
}

func joinValues[T any](vs []T) string {
	ss := make([]string, len(vs))
	for i, v := range vs {
		ss[i] = fmt.Sprint(v)
	}
	return strings.Join(ss, " ")
}
