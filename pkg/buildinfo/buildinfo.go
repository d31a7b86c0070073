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

// Package buildinfo provides information about the current build.
package buildinfo // import "quickexif.org/pkg/buildinfo"

import (
	"runtime"
	"runtime/debug"
)

// GitInfo is either the empty string (the default)
// or is set to the git hash of the most recent commit
// using the -X linker flag. For example, it's set like:
// $ go install --ldflags="-X quickexif.org/pkg/buildinfo.GitInfo="`git rev-parse --short HEAD` quickexif.org/cmd/qexif
var GitInfo string

// Version returns the git version of this binary.
// If the linker flags were not provided, the VCS revision recorded by
// the go command is used, if any.
func Version() string {
	if GitInfo != "" {
		return GitInfo
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		var rev, modified string
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				if s.Value == "true" {
					modified = "+"
				}
			}
		}
		if len(rev) > 12 {
			rev = rev[:12]
		}
		if rev != "" {
			return rev + modified
		}
	}
	return "unknown"
}

// Summary returns the version and Go version of this binary.
func Summary() string {
	return Version() + ", " + runtime.Version()
}
