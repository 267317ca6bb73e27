// Copyright 2026 Teradata
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fsext provides filesystem extensions on top of afero.
package fsext

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FileEntry represents a file or directory entry.
type FileEntry struct {
	Name  string
	Path  string
	IsDir bool
}

// ReadDir lists the entries of path sorted by name.
func ReadDir(fs afero.Fs, path string) ([]FileEntry, error) {
	infos, err := afero.ReadDir(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", path, err)
	}

	entries := make([]FileEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, FileEntry{
			Name:  info.Name(),
			Path:  filepath.Join(path, info.Name()),
			IsDir: info.IsDir(),
		})
	}
	return entries, nil
}

// SplitRel returns the slash-separated segments of path below base.
// A path equal to base yields no segments.
func SplitRel(base, path string) ([]string, error) {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return nil, err
	}
	rel = filepath.ToSlash(rel)
	if rel == "." {
		return nil, nil
	}
	return strings.Split(rel, "/"), nil
}

// SlashJoin joins path elements with forward slashes regardless of platform,
// for paths that end up in reports.
func SlashJoin(elem ...string) string {
	return filepath.ToSlash(filepath.Join(elem...))
}
