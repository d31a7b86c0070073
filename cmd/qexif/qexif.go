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
	"fmt"

	"go4.org/legal"

	"quickexif.org/internal/config"
	"quickexif.org/pkg/cmdmain"
	"quickexif.org/pkg/exif"
)

const license = `qexif is licensed under the Apache License, Version 2.0.
See http://www.apache.org/licenses/LICENSE-2.0`

// conf is the user configuration, loaded after the global flags are parsed.
var conf = config.Default()

func init() {
	legal.RegisterLicense(license)
	cmdmain.PostFlag = loadConfig
}

func loadConfig() {
	c, err := config.Load()
	if err != nil {
		cmdmain.Errorf("%v\n", err)
		cmdmain.Exit(2)
		return
	}
	conf = c
	if conf.Verbose {
		*cmdmain.FlagVerbose = true
	}
	cmdmain.Logf("using config %s", config.Path())
}

// editExif returns jpeg with its Exif metadata modified by fn. jpeg is
// returned as is when fn changes no tag value.
func editExif(jpeg []byte, fn func(*exif.Set) error) ([]byte, error) {
	s, err := exif.Load(jpeg)
	if err != nil {
		return nil, err
	}
	before := s.Clone()
	if err := fn(s); err != nil {
		return nil, err
	}
	if exif.Equal(before, s) {
		return jpeg, nil
	}
	blob, err := exif.Dump(s)
	if err != nil {
		return nil, err
	}
	return exif.Insert(blob, jpeg)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func main() {
	cmdmain.Main()
}
