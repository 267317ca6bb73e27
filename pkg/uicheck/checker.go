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

// Package uicheck enforces UI policies on GtkBuilder files, such as how
// toolbar widgets handle keyboard focus.
package uicheck

import (
	"fmt"
	"io"

	"github.com/gobwas/glob"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/inkscape/media-check/internal/fsext"
	"github.com/inkscape/media-check/internal/log"
	"github.com/inkscape/media-check/internal/ordered"
)

// DefaultRoot is where UI files live relative to the source checkout.
const DefaultRoot = "share/ui"

// ErrorExitCode is the process status when any violation is reported.
const ErrorExitCode = 5

// Checker applies a set of policies to the UI files matching Search.
type Checker struct {
	Name     string
	Search   string
	Ignore   []string
	Errors   []ErrorInfo
	Policies []Policy
}

// Finding is one reported object.
type Finding struct {
	// ID reads "file.ui: GtkClass:object-id".
	ID      string
	Message string
}

// Report holds the findings of one checker, grouped by violation code
// in the order first seen.
type Report struct {
	Checker  *Checker
	Files    int
	Findings *ordered.Map[string, []Finding]
}

// Count returns the number of findings.
func (r *Report) Count() int {
	return ordered.Total(r.Findings)
}

// ExitCode returns ErrorExitCode when anything was found, otherwise 0.
func (r *Report) ExitCode() int {
	if r.Count() > 0 {
		return ErrorExitCode
	}
	return 0
}

// Check parses every matching file under dir and runs the policies.
func (c *Checker) Check(fs afero.Fs, dir string) (*Report, error) {
	pattern, err := glob.Compile(c.Search)
	if err != nil {
		return nil, fmt.Errorf("invalid search pattern %q: %w", c.Search, err)
	}

	entries, err := fsext.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}

	report := &Report{Checker: c, Findings: ordered.New[string, []Finding]()}
	for _, e := range entries {
		if e.IsDir || !pattern.Match(e.Name) {
			continue
		}
		if c.ignored(e.Name) {
			log.Debug("skipping ignored ui file", zap.String("file", e.Name))
			continue
		}

		doc, err := c.parseFile(fs, e.Path)
		if err != nil {
			return nil, err
		}
		report.Files++
		c.checkDocument(report, doc)
	}

	log.Debug("ui check finished",
		zap.String("checker", c.Name),
		zap.Int("files", report.Files),
		zap.Int("findings", report.Count()))
	return report, nil
}

func (c *Checker) ignored(name string) bool {
	for _, n := range c.Ignore {
		if n == name {
			return true
		}
	}
	return false
}

func (c *Checker) parseFile(fs afero.Fs, path string) (*Document, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ParseBuilder(f, path)
}

func (c *Checker) checkDocument(report *Report, doc *Document) {
	for _, obj := range doc.Objects {
		id := fmt.Sprintf("%s: %s:%s", doc.Name, obj.Class, obj.ID)
		if obj.Problem != "" {
			ordered.Append(report.Findings, parseCode, Finding{ID: id, Message: obj.Problem})
		}
		for _, p := range c.Policies {
			for _, code := range p.Check(obj.Class, obj.Properties) {
				ordered.Append(report.Findings, code, Finding{ID: id, Message: p.describe(obj.Properties)})
			}
		}
	}
}

func (c *Checker) errorInfo(code string) ErrorInfo {
	for _, e := range c.Errors {
		if e.Code == code {
			return e
		}
	}
	if code == parseCode {
		return parseError
	}
	return ErrorInfo{Code: code, Title: code}
}

// PrintReport writes the findings to w.
func (r *Report) PrintReport(w io.Writer) {
	fmt.Fprintf(w, "\n\n==== CHECKING %s FILES ====\n\n", r.Checker.Name)
	r.Findings.Range(func(code string, findings []Finding) bool {
		info := r.Checker.errorInfo(code)
		fmt.Fprintf(w, "\n == %s ==\n\n  %s\n\n", info.Title, info.Description)
		for _, f := range findings {
			fmt.Fprintf(w, " * %s: %s\n", f.ID, f.Message)
		}
		return true
	})
}
