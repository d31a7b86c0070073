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
	"quickexif.org/pkg/exif"
)

type stripCmd struct {
	batchFlags
}

func init() {
	cmdmain.RegisterMode("strip", func(flags *flag.FlagSet) cmdmain.CommandRunner {
		return newStripCmd(flags)
	})
}

func newStripCmd(flags *flag.FlagSet) *stripCmd {
	cmd := new(stripCmd)
	cmd.batchFlags.register(flags)
	return cmd
}

func (c *stripCmd) Describe() string {
	return "Remove the Exif metadata of JPEG files."
}

func (c *stripCmd) Usage() {
	cmdmain.Errorf("Usage: qexif [globalopts] strip [opts] <file.jpg>...\n")
}

func (c *stripCmd) RunCommand(args []string) error {
	if len(args) == 0 {
		return cmdmain.UsageError("no files given")
	}
	return c.rewrite(args, func(path string, data []byte) ([]byte, error) {
		return exif.Remove(data)
	})
}
