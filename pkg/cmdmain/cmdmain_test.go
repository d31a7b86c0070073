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

package cmdmain

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"
)

type echoCmd struct {
	upper bool
	out   *bytes.Buffer
}

func (c *echoCmd) Usage()           { Errorf("Usage: echo [-upper] words...\n") }
func (c *echoCmd) Describe() string { return "Print its arguments." }

func (c *echoCmd) RunCommand(args []string) error {
	if len(args) == 0 {
		return UsageError("no words")
	}
	s := strings.Join(args, " ")
	if c.upper {
		s = strings.ToUpper(s)
	}
	if s == "FAIL" {
		return errors.New("asked to fail")
	}
	c.out.WriteString(s)
	return nil
}

var echo = &echoCmd{out: new(bytes.Buffer)}

func init() {
	RegisterMode("echo", func(flags *flag.FlagSet) CommandRunner {
		flags.BoolVar(&echo.upper, "upper", false, "Print in upper case.")
		return echo
	})
}

func TestRunMode(t *testing.T) {
	var stderr bytes.Buffer
	var code int
	oldStderr, oldExit := Stderr, Exit
	defer func() { Stderr, Exit = oldStderr, oldExit }()
	Stderr = &stderr
	Exit = func(c int) { code = c }

	tests := []struct {
		args     []string
		wantOut  string
		wantCode int
		wantErr  string
	}{
		{[]string{"hello", "world"}, "hello world", 0, ""},
		{[]string{"-upper", "hi"}, "HI", 0, ""},
		{nil, "", 1, "Usage error: no words"},
		{[]string{"-bogus", "x"}, "", 1, "Usage error: invalid command"},
		{[]string{"-upper", "fail"}, "", 2, "Error: asked to fail"},
		{[]string{"-help"}, "", 0, "Print its arguments."},
	}
	for _, tt := range tests {
		echo.out.Reset()
		echo.upper = false
		stderr.Reset()
		code = 0
		RunMode("echo", tt.args)
		if got := echo.out.String(); got != tt.wantOut {
			t.Errorf("echo %q printed %q; want %q", tt.args, got, tt.wantOut)
		}
		if code != tt.wantCode {
			t.Errorf("echo %q exited with %d; want %d", tt.args, code, tt.wantCode)
		}
		if !strings.Contains(stderr.String(), tt.wantErr) {
			t.Errorf("echo %q stderr = %q; want it to contain %q", tt.args, stderr.String(), tt.wantErr)
		}
	}

	stderr.Reset()
	code = 0
	RunMode("nope", nil)
	if code != 1 || !strings.Contains(stderr.String(), `Unknown mode "nope"`) {
		t.Errorf("unknown mode: exit %d, stderr %q", code, stderr.String())
	}
}

func TestUsageError(t *testing.T) {
	var err error = UsageError("missing file")
	if got, want := err.Error(), "Usage error: missing file"; got != want {
		t.Errorf("Error() = %q; want %q", got, want)
	}
	var ue UsageError
	if !errors.As(err, &ue) || ue != "missing file" {
		t.Errorf("errors.As(%v) = %q", err, ue)
	}
}

type hiddenCmd struct{}

func (hiddenCmd) Usage()                    {}
func (hiddenCmd) Describe() string          { return "Low-level plumbing." }
func (hiddenCmd) Demote() bool              { return true }
func (hiddenCmd) RunCommand([]string) error { return nil }

func init() {
	RegisterMode("hidden", func(*flag.FlagSet) CommandRunner { return hiddenCmd{} })
}

func TestUsageDemoted(t *testing.T) {
	var stderr bytes.Buffer
	oldStderr, oldExit, oldHelp := Stderr, Exit, *FlagHelp
	defer func() { Stderr, Exit, *FlagHelp = oldStderr, oldExit, oldHelp }()
	Stderr = &stderr
	Exit = func(int) {}

	for _, all := range []bool{false, true} {
		stderr.Reset()
		*FlagHelp = all
		usage("")
		out := stderr.String()
		if !strings.Contains(out, "echo: Print its arguments.") {
			t.Errorf("help=%v: usage doesn't list echo:\n%s", all, out)
		}
		if got := strings.Contains(out, "hidden: Low-level plumbing."); got != all {
			t.Errorf("help=%v: hidden mode listed = %v; want %v", all, got, all)
		}
	}
}
