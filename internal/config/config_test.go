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

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(p, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestReadFile(t *testing.T) {
	t.Setenv("QEXIF_TEST_ARTIST", "Env Artist")
	tests := []struct {
		name string
		body string
		want *Config
	}{
		{"empty", `{}`, &Config{Workers: 4}},
		{"full", `{"workers": 8, "backup": true, "artist": "Jane", "copyright": "CC0", "verbose": true}`,
			&Config{Workers: 8, Backup: true, Artist: "Jane", Copyright: "CC0", Verbose: true}},
		{"env", `{"artist": ["_env", "${QEXIF_TEST_ARTIST}"]}`, &Config{Workers: 4, Artist: "Env Artist"}},
		{"comment key", `{"_comment": "ignored", "backup": true}`, &Config{Workers: 4, Backup: true}},
	}
	for _, tt := range tests {
		got, err := ReadFile(writeConfig(t, tt.body))
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: got %+v; want %+v", tt.name, got, tt.want)
		}
	}
}

func TestReadFileErrors(t *testing.T) {
	tests := []struct {
		name, body, want string
	}{
		{"unknown key", `{"wrokers": 2}`, "wrokers"},
		{"wrong type", `{"backup": "yes"}`, "backup"},
		{"zero workers", `{"workers": 0}`, "workers"},
		{"bad json", `{"workers": `, ""},
	}
	for _, tt := range tests {
		_, err := ReadFile(writeConfig(t, tt.body))
		if err == nil {
			t.Errorf("%s: no error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error %q doesn't mention %q", tt.name, err, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	p := writeConfig(t, `{"workers": 2}`)
	t.Setenv(EnvConfig, p)
	if got := Path(); got != p {
		t.Errorf("Path() = %q; want %q", got, p)
	}
	conf, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if conf.Workers != 2 {
		t.Errorf("Workers = %d; want 2", conf.Workers)
	}

	t.Setenv(EnvConfig, "")
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if got, want := Path(), filepath.Join(dir, "quickexif", "config.json"); got != want {
		t.Errorf("Path() = %q; want %q", got, want)
	}
	conf, err = Load()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(conf, Default()) {
		t.Errorf("Load without a file = %+v; want defaults", conf)
	}
}
