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
	"flag"
	"fmt"
	"strings"

	"quickexif.org/pkg/cmdmain"
	"quickexif.org/pkg/exif"
	"quickexif.org/pkg/exifedit"
)

type setCmd struct {
	flags *flag.FlagSet
	batchFlags

	values map[exifedit.Field]*string
	clear  string
}

// fieldFlags maps the flags of set to the fields they edit.
var fieldFlags = []struct {
	name  string
	field exifedit.Field
	usage string
}{
	{"date", exifedit.DateTimeOriginal, `Date and time taken, as "2006-01-02T15:04[:05]" or "2006:01:02 15:04:05".`},
	{"description", exifedit.ImageDescription, "Image description."},
	{"artist", exifedit.Artist, "Artist."},
	{"copyright", exifedit.Copyright, "Copyright notice."},
	{"comment", exifedit.UserComment, "User comment."},
	{"lat", exifedit.GPSLatitude, `Latitude, as decimal degrees ("-33.8688"), DMS ("33°52'7.68\"S") or with a direction ("33.8688 S").`},
	{"long", exifedit.GPSLongitude, "Longitude, in the same forms as -lat."},
}

func init() {
	cmdmain.RegisterMode("set", func(flags *flag.FlagSet) cmdmain.CommandRunner {
		return newSetCmd(flags)
	})
}

func newSetCmd(flags *flag.FlagSet) *setCmd {
	cmd := &setCmd{
		flags:  flags,
		values: make(map[exifedit.Field]*string),
	}
	for _, ff := range fieldFlags {
		cmd.values[ff.field] = flags.String(ff.name, "", ff.usage)
	}
	flags.StringVar(&cmd.clear, "clear", "", "Comma-separated fields to remove: "+strings.Join(fieldKeys(), ", ")+". Setting a field to the empty string also removes it.")
	cmd.batchFlags.register(flags)
	return cmd
}

func fieldKeys() []string {
	var keys []string
	for _, f := range exifedit.Fields {
		keys = append(keys, string(f))
	}
	return keys
}

func (c *setCmd) Describe() string {
	return "Edit descriptive Exif fields of JPEG files."
}

func (c *setCmd) Usage() {
	cmdmain.Errorf("Usage: qexif [globalopts] set [opts] <file.jpg>...\n")
}

func (c *setCmd) Examples() []string {
	return []string{
		`-date 2025-09-06T07:56 -artist "Jane Doe" photo.jpg`,
		`-lat 37.7749 -long "122.4194 W" *.jpg`,
		"-clear usercomment,gpslatitude,gpslongitude photo.jpg",
	}
}

// edits returns the edits requested by the flags that were set.
func (c *setCmd) edits() (exifedit.Edits, error) {
	e := make(exifedit.Edits)
	set := make(map[string]bool)
	c.flags.Visit(func(f *flag.Flag) { set[f.Name] = true })
	for _, ff := range fieldFlags {
		if set[ff.name] {
			e[ff.field] = *c.values[ff.field]
		}
	}
	if c.clear != "" {
		for _, name := range strings.Split(c.clear, ",") {
			f, ok := exifedit.ParseField(name)
			if !ok {
				return nil, cmdmain.UsageError(fmt.Sprintf("unknown field %q in -clear", strings.TrimSpace(name)))
			}
			if _, dup := e[f]; dup && !exifedit.IsEmpty(e[f]) {
				return nil, cmdmain.UsageError(fmt.Sprintf("field %s both set and cleared", f))
			}
			e[f] = ""
		}
	}
	if len(e) == 0 {
		return nil, cmdmain.UsageError("no field to edit")
	}
	return e, nil
}

func (c *setCmd) RunCommand(args []string) error {
	if len(args) == 0 {
		return cmdmain.UsageError("no files given")
	}
	e, err := c.edits()
	if err != nil {
		return err
	}
	return applyEdits(&c.batchFlags, args, e)
}

// applyEdits validates e and applies it to each of paths.
func applyEdits(b *batchFlags, paths []string, e exifedit.Edits) error {
	if err := exifedit.Validate(e); err != nil {
		return err
	}
	return b.rewrite(paths, func(path string, data []byte) ([]byte, error) {
		return editExif(data, func(s *exif.Set) error {
			acts := exifedit.Diff(exifedit.Current(s), e)
			if len(acts) == 0 {
				cmdmain.Logf("%s: nothing to change", path)
			} else {
				cmdmain.Logf("%s: %s", path, exifedit.Summary(acts, ""))
			}
			return exifedit.Apply(s, e)
		})
	})
}
