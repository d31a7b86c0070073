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

	"quickexif.org/pkg/cmdmain"
	"quickexif.org/pkg/exifedit"
)

type stampCmd struct {
	batchFlags
	artist    string
	copyright string
}

func init() {
	cmdmain.RegisterMode("stamp", func(flags *flag.FlagSet) cmdmain.CommandRunner {
		return newStampCmd(flags)
	})
}

func newStampCmd(flags *flag.FlagSet) *stampCmd {
	cmd := new(stampCmd)
	flags.StringVar(&cmd.artist, "artist", "", `Artist to write. Defaults to the "artist" config key.`)
	flags.StringVar(&cmd.copyright, "copyright", "", `Copyright notice to write. Defaults to the "copyright" config key.`)
	cmd.batchFlags.register(flags)
	return cmd
}

func (c *stampCmd) Describe() string {
	return "Write the configured artist and copyright into JPEG files."
}

func (c *stampCmd) Usage() {
	cmdmain.Errorf("Usage: qexif [globalopts] stamp [opts] <file.jpg>...\n")
}

func (c *stampCmd) RunCommand(args []string) error {
	if len(args) == 0 {
		return cmdmain.UsageError("no files given")
	}
	e := make(exifedit.Edits)
	if a := firstNonEmpty(c.artist, conf.Artist); a != "" {
		e[exifedit.Artist] = a
	}
	if cr := firstNonEmpty(c.copyright, conf.Copyright); cr != "" {
		e[exifedit.Copyright] = cr
	}
	if len(e) == 0 {
		return cmdmain.UsageError("no artist or copyright given or configured")
	}
	return applyEdits(&c.batchFlags, args, e)
}

func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}
