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

// Package exifbatch rewrites files in place, concurrently.
package exifbatch // import "quickexif.org/pkg/exifbatch"

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go4.org/syncutil"
	"go4.org/wkfs"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the number of files rewritten at once when
// Options.Workers is zero.
const DefaultWorkers = 4

// BackupSuffix is appended to the name of a file to name its backup.
const BackupSuffix = ".orig"

// Options configures Rewrite.
type Options struct {
	// Workers is the number of files transformed at once.
	// Zero means DefaultWorkers.
	Workers int

	// MaxOpen bounds the number of files open at once.
	// Zero means Workers.
	MaxOpen int

	// Backup, if set, keeps a copy of each changed file under its name
	// plus BackupSuffix. An existing backup is left alone.
	Backup bool

	// DryRun computes the results without writing anything.
	DryRun bool

	// Logf, if non-nil, receives one line per changed file.
	Logf func(format string, args ...any)
}

func (o *Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return DefaultWorkers
}

func (o *Options) maxOpen() int {
	if o.MaxOpen > 0 {
		return o.MaxOpen
	}
	return o.workers()
}

func (o *Options) logf(format string, args ...any) {
	if o.Logf != nil {
		o.Logf(format, args...)
	}
}

// A Func returns the new contents of the file at path, given its
// current contents. Returning data unchanged leaves the file alone.
type Func func(path string, data []byte) ([]byte, error)

// Result describes the rewrite of one file.
type Result struct {
	Path    string
	Before  int64 // size before, in bytes
	After   int64 // size after, in bytes
	Changed bool
}

// Rewrite applies fn to each of paths and writes back the files whose
// contents changed. Each file is replaced atomically: the new contents
// are written to a temporary file in the same directory, which is then
// renamed over the original.
//
// The first error stops the files not yet started, and is returned
// along with the results of the files that were processed. Results are
// in the order of paths; entries for files not processed have an empty
// Path.
func Rewrite(ctx context.Context, paths []string, opts Options, fn Func) ([]Result, error) {
	results := make([]Result, len(paths))
	gate := syncutil.NewGate(opts.maxOpen())
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())
	var err error
	for i, path := range paths {
		i, path := i, path
		if err = ctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := rewriteFile(gate, &opts, path, fn)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			return nil
		})
	}
	if werr := g.Wait(); werr != nil {
		return results, werr
	}
	return results, err
}

func rewriteFile(gate *syncutil.Gate, opts *Options, path string, fn Func) (Result, error) {
	res := Result{Path: path}
	gate.Start()
	fi, err := wkfs.Stat(path)
	if err != nil {
		gate.Done()
		return res, err
	}
	if !fi.Mode().IsRegular() {
		gate.Done()
		return res, fmt.Errorf("not a regular file")
	}
	data, err := wkfs.ReadFile(path)
	gate.Done()
	if err != nil {
		return res, err
	}
	res.Before = int64(len(data))
	res.After = res.Before

	out, err := fn(path, data)
	if err != nil {
		return res, err
	}
	if bytes.Equal(out, data) {
		return res, nil
	}
	res.After = int64(len(out))
	res.Changed = true
	if opts.DryRun {
		opts.logf("would rewrite %s (%d -> %d bytes)", path, res.Before, res.After)
		return res, nil
	}

	gate.Start()
	defer gate.Done()
	if opts.Backup {
		if err := backup(path, data, fi.Mode().Perm()); err != nil {
			return res, err
		}
	}
	if err := writeAtomic(path, out, fi.Mode().Perm()); err != nil {
		return res, err
	}
	opts.logf("rewrote %s (%d -> %d bytes)", path, res.Before, res.After)
	return res, nil
}

func backup(path string, data []byte, perm os.FileMode) error {
	name := path + BackupSuffix
	if _, err := wkfs.Stat(name); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return wkfs.WriteFile(name, data, perm)
}

// writeAtomic replaces the contents of path with data.
func writeAtomic(path string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(perm); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
