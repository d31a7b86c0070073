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

package buildinfo

import (
	"runtime"
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	defer func(old string) { GitInfo = old }(GitInfo)

	GitInfo = "abc123"
	if got := Version(); got != "abc123" {
		t.Errorf("Version() = %q; want abc123", got)
	}
	if got, want := Summary(), "abc123, "+runtime.Version(); got != want {
		t.Errorf("Summary() = %q; want %q", got, want)
	}

	GitInfo = ""
	if got := Version(); got == "" {
		t.Error("Version() is empty without GitInfo")
	}
	if !strings.HasSuffix(Summary(), runtime.Version()) {
		t.Errorf("Summary() = %q; want the Go version at the end", Summary())
	}
}
