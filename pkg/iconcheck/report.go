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

package iconcheck

import (
	"fmt"
	"io"
	"strings"
)

// Section is one titled block of the report.
type Section struct {
	Category Category
	// Key is the theme or "theme-kind" label; empty for the naming lists.
	Key   string
	Icons []string
}

// Errors returns the error sections in report order. Empty categories are omitted.
func (r *Result) Errors() []Section {
	var out []Section
	if len(r.BadSymbolicName) > 0 {
		out = append(out, Section{Category: BadSymbolicName, Icons: r.BadSymbolicName})
	}
	if len(r.BadScalableName) > 0 {
		out = append(out, Section{Category: BadScalableName, Icons: r.BadScalableName})
	}
	out = appendSections(out, OnlyFoundIn, r.OnlyFoundIn)
	out = appendSections(out, MissingFrom, r.MissingFrom)
	out = appendSections(out, ScalableOnly, r.ScalableOnly)
	out = appendSections(out, SymbolicOnly, r.SymbolicOnly)
	return out
}

// Warnings returns the warning sections in report order.
func (r *Result) Warnings() []Section {
	return appendSections(nil, MissingFrom, r.WarnMissingFrom)
}

func appendSections(out []Section, cat Category, b *Buckets) []Section {
	b.Range(func(key string, icons []string) bool {
		out = append(out, Section{Category: cat, Key: key, Icons: icons})
		return true
	})
	return out
}

// PrintReport writes the human-readable report to w. Nothing is written
// for a clean result.
func (r *Result) PrintReport(w io.Writer) {
	if errs := r.Errors(); len(errs) > 0 {
		fmt.Fprintf(w, " == %d errors found in icon themes! == \n\n", r.ErrorCount())
		for _, s := range errs {
			r.printSection(w, s)
		}
	}

	if warns := r.Warnings(); len(warns) > 0 {
		fmt.Fprintf(w, " == %d warnings found in icon themes == \n\n", r.WarningCount())
		for _, s := range warns {
			r.printSection(w, s)
		}
	}
}

func (r *Result) printSection(w io.Writer, s Section) {
	bullet := "-"
	name := func(icon string) string { return icon }

	switch s.Category {
	case BadScalableName:
		fmt.Fprintf(w, "Scalable themes should not have symbolic icons in them (They end with -symbolic.svg so won't be used):\n")
	case BadSymbolicName:
		fmt.Fprintf(w, "Symbolic themes should only have symbolic icons in them (They don't end with -symbolic.svg so can't be used):\n")
	case MissingFrom:
		fmt.Fprintf(w, "Icons missing from %s:\n", s.Key)
	case OnlyFoundIn:
		fmt.Fprintf(w, "Icons only found in %s:\n", s.Key)
		bullet = "+"
	case ScalableOnly:
		fmt.Fprintf(w, "Icons should be scalable ONLY, remove from %s:\n", s.Key)
		name = symbolicName
	case SymbolicOnly:
		fmt.Fprintf(w, "Icons should be symbolic ONLY, remove from %s:\n", s.Key)
	default:
		return
	}

	for _, icon := range s.Icons {
		fmt.Fprintf(w, " %s %s\n", bullet, name(icon))
		if hints := r.Hints[icon]; len(hints) > 0 {
			fmt.Fprintf(w, "   ? did you mean: %s\n", strings.Join(hints, ", "))
		}
	}
	fmt.Fprintf(w, "\n")
}
