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
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"go4.org/wkfs"

	"quickexif.org/pkg/cmdmain"
	"quickexif.org/pkg/exif"
)

type thumbCmd struct {
	out string
}

func init() {
	cmdmain.RegisterMode("thumb", func(flags *flag.FlagSet) cmdmain.CommandRunner {
		return newThumbCmd(flags)
	})
}

func newThumbCmd(flags *flag.FlagSet) *thumbCmd {
	cmd := new(thumbCmd)
	flags.StringVar(&cmd.out, "o", "", `Output file. Defaults to the input file name with a "_thumb" suffix. "-" writes to stdout.`)
	return cmd
}

func (c *thumbCmd) Describe() string {
	return "Extract the embedded thumbnail of a JPEG file."
}

func (c *thumbCmd) Demote() bool { return true }

func (c *thumbCmd) Usage() {
	cmdmain.Errorf("Usage: qexif [globalopts] thumb [-o out.jpg] <file.jpg>\n")
}

var errNoThumbnail = errors.New("no thumbnail")

func (c *thumbCmd) RunCommand(args []string) error {
	if len(args) != 1 {
		return cmdmain.UsageError("need exactly one file")
	}
	data, err := wkfs.ReadFile(args[0])
	if err != nil {
		return err
	}
	th, err := exif.Thumbnail(data)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	if th == nil {
		return fmt.Errorf("%s: %w", args[0], errNoThumbnail)
	}
	out := c.out
	if out == "" {
		out = thumbName(args[0])
	}
	if out == "-" {
		_, err := cmdmain.Stdout.Write(th)
		return err
	}
	if err := wkfs.WriteFile(out, th, 0644); err != nil {
		return err
	}
	cmdmain.Printf("wrote %s to %s\n", plural(len(th), "byte"), out)
	return nil
}

func thumbName(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_thumb" + ext
}
