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
	"context"
	"flag"
	"fmt"

	"quickexif.org/pkg/cmdmain"
	"quickexif.org/pkg/exifbatch"
)

// batchFlags are the flags shared by the modes that rewrite files.
type batchFlags struct {
	backup bool
	dryRun bool
}

func (b *batchFlags) register(flags *flag.FlagSet) {
	flags.BoolVar(&b.backup, "backup", false, "Keep a copy of each rewritten file with a "+exifbatch.BackupSuffix+" suffix. Also set by the \"backup\" config key.")
	flags.BoolVar(&b.dryRun, "n", false, "Report what would change without writing anything.")
}

// rewrite applies fn to paths and reports the changed files on Stdout.
func (b *batchFlags) rewrite(paths []string, fn exifbatch.Func) error {
	opts := exifbatch.Options{
		Workers: conf.Workers,
		Backup:  b.backup || conf.Backup,
		DryRun:  b.dryRun,
		Logf:    cmdmain.Logf,
	}
	results, err := exifbatch.Rewrite(context.Background(), paths, opts, fn)
	changed := 0
	for _, r := range results {
		if !r.Changed {
			continue
		}
		changed++
		fmt.Fprintf(cmdmain.Stdout, "%s: %d -> %d bytes\n", r.Path, r.Before, r.After)
	}
	verb := "rewrote"
	if b.dryRun {
		verb = "would rewrite"
	}
	cmdmain.Printf("%s %s of %d\n", verb, plural(changed, "file"), len(paths))
	return err
}
