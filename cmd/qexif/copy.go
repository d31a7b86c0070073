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

	"go4.org/wkfs"

	"quickexif.org/pkg/cmdmain"
	"quickexif.org/pkg/exif"
)

type copyCmd struct {
	batchFlags
	noThumb bool
}

func init() {
	cmdmain.RegisterMode("copy", func(flags *flag.FlagSet) cmdmain.CommandRunner {
		return newCopyCmd(flags)
	})
}

func newCopyCmd(flags *flag.FlagSet) *copyCmd {
	cmd := new(copyCmd)
	flags.BoolVar(&cmd.noThumb, "nothumb", false, "Don't copy the thumbnail.")
	cmd.batchFlags.register(flags)
	return cmd
}

func (c *copyCmd) Describe() string {
	return "Copy the Exif metadata of one JPEG file into others."
}

func (c *copyCmd) Usage() {
	cmdmain.Errorf("Usage: qexif [globalopts] copy [opts] <src.jpg> <dst.jpg>...\n")
}

func (c *copyCmd) Examples() []string {
	return []string{"original.jpg edited.jpg"}
}

func (c *copyCmd) RunCommand(args []string) error {
	if len(args) < 2 {
		return cmdmain.UsageError("need a source and at least one destination")
	}
	src, err := wkfs.ReadFile(args[0])
	if err != nil {
		return err
	}
	s, err := exif.Load(src)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	if c.noThumb {
		s.Thumbnail = nil
	}
	blob, err := exif.Dump(s)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return c.rewrite(args[1:], func(path string, data []byte) ([]byte, error) {
		return exif.Insert(blob, data)
	})
}
