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

// Package config loads the user configuration of qexif.
//
// The configuration is a JSON object read from
// $XDG_CONFIG_HOME/quickexif/config.json, or from the file named by
// $QUICKEXIF_CONFIG. For example:
//
//	{
//		"workers": 8,
//		"backup": true,
//		"artist": "Jane Doe",
//		"copyright": "CC BY-SA 4.0",
//		"verbose": false
//	}
package config // import "quickexif.org/internal/config"

import (
	"fmt"
	"os"
	"path/filepath"

	"go4.org/jsonconfig"
	"go4.org/xdgdir"
)

// EnvConfig names the environment variable that overrides the path of
// the configuration file.
const EnvConfig = "QUICKEXIF_CONFIG"

// DefaultWorkers is the number of files rewritten at once, unless
// configured otherwise.
const DefaultWorkers = 4

// Config is the user configuration.
type Config struct {
	Workers   int    // files rewritten at once
	Backup    bool   // keep a ".orig" copy of rewritten files
	Artist    string // Artist written by "qexif stamp"
	Copyright string // Copyright written by "qexif stamp"
	Verbose   bool
}

// Default returns the configuration used when there is no file.
func Default() *Config {
	return &Config{Workers: DefaultWorkers}
}

// Path returns the path of the configuration file, or the empty string
// if no configuration directory can be found.
func Path() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	dir := xdgdir.Config.Path()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "quickexif", "config.json")
}

// Load reads the configuration file at Path. A missing file yields the
// defaults.
func Load() (*Config, error) {
	p := Path()
	if p == "" {
		return Default(), nil
	}
	return ReadFile(p)
}

// ReadFile reads the configuration file at path. A missing file yields
// the defaults.
func ReadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	obj, err := jsonconfig.ReadFile(path)
	if err != nil {
		return nil, err
	}
	conf, err := parse(obj)
	if err != nil {
		return nil, fmt.Errorf("error in config file %s: %w", path, err)
	}
	return conf, nil
}

func parse(obj jsonconfig.Obj) (*Config, error) {
	conf := &Config{
		Workers:   obj.OptionalInt("workers", DefaultWorkers),
		Backup:    obj.OptionalBool("backup", false),
		Artist:    obj.OptionalString("artist", ""),
		Copyright: obj.OptionalString("copyright", ""),
		Verbose:   obj.OptionalBool("verbose", false),
	}
	if err := obj.Validate(); err != nil {
		return nil, err
	}
	if conf.Workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", conf.Workers)
	}
	return conf, nil
}
