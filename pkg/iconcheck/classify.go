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
	"sort"

	"github.com/inkscape/media-check/internal/ordered"
)

// Category identifies a kind of finding.
type Category int

const (
	NoProblem Category = iota
	BadSymbolicName
	BadScalableName
	MissingFrom
	OnlyFoundIn
	ScalableOnly
	SymbolicOnly
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case NoProblem:
		return "NO_PROBLEM"
	case BadSymbolicName:
		return "BAD_SYMBOLIC_NAME"
	case BadScalableName:
		return "BAD_SCALABLE_NAME"
	case MissingFrom:
		return "MISSING_FROM"
	case OnlyFoundIn:
		return "ONLY_FOUND_IN"
	case ScalableOnly:
		return "SCALABLE_ONLY"
	case SymbolicOnly:
		return "SYMBOLIC_ONLY"
	default:
		return "UNKNOWN"
	}
}

// Buckets maps a theme (or theme label) to the icons filed under it,
// in the order they were first filed.
type Buckets = ordered.Map[string, []string]

// Result holds every finding of one check run.
type Result struct {
	BadSymbolicName []string
	BadScalableName []string

	// OnlyFoundIn is keyed by "theme-kind".
	OnlyFoundIn *Buckets
	// MissingFrom is keyed by "theme-symbolic" or the fallback theme.
	MissingFrom *Buckets
	// ScalableOnly is keyed by the symbolic theme holding a color-only icon.
	ScalableOnly *Buckets
	// SymbolicOnly is keyed by the scalable theme holding a symbolic-only icon.
	SymbolicOnly *Buckets

	// WarnMissingFrom lists icons the fallback theme has but a theme lacks.
	WarnMissingFrom *Buckets

	// Hints holds "did you mean" candidates per icon, when requested.
	Hints map[string][]string
}

func newResult() *Result {
	return &Result{
		OnlyFoundIn:     ordered.New[string, []string](),
		MissingFrom:     ordered.New[string, []string](),
		ScalableOnly:    ordered.New[string, []string](),
		SymbolicOnly:    ordered.New[string, []string](),
		WarnMissingFrom: ordered.New[string, []string](),
		Hints:           make(map[string][]string),
	}
}

// Classify applies the consistency rules to a collection. Icons are visited
// in sorted order and each lands in at most one presence bucket.
func Classify(c *Collection) *Result {
	r := newResult()
	r.BadSymbolicName = append(r.BadSymbolicName, c.BadSymbolicName...)
	r.BadScalableName = append(r.BadScalableName, c.BadScalableName...)

	icons := make([]string, 0, len(c.Icons))
	for icon := range c.Icons {
		icons = append(icons, icon)
	}
	sort.Strings(icons)

	for _, icon := range icons {
		r.classifyIcon(icon, c.Icons[icon], c.AllSymbolics)
	}
	return r
}

func (r *Result) classifyIcon(icon string, locs map[Location]struct{}, allSymbolics *ThemeSet) {
	symbolics := NewThemeSet()
	scalables := NewThemeSet()
	for loc := range locs {
		switch loc.Kind {
		case KindSymbolic:
			symbolics.Add(loc.Theme)
		case KindScalable:
			scalables.Add(loc.Theme)
		}
	}

	short := ShortName(icon)

	// Hard color/symbolic rules come first and may both fire.
	if IsScalableOnly(short) {
		for _, theme := range symbolics.Names() {
			ordered.Append(r.ScalableOnly, theme, icon)
		}
	}
	if IsSymbolicOnly(short) {
		for _, theme := range scalables.Names() {
			ordered.Append(r.SymbolicOnly, theme, icon)
		}
	}
	if isPolicyIcon(short) {
		return
	}

	// Every scalable needs a symbolic sibling in the same theme.
	if diff := scalables.Minus(symbolics); diff.Len() > 0 {
		for _, theme := range diff.Names() {
			ordered.Append(r.MissingFrom, theme+"-"+string(KindSymbolic), icon)
		}
		return
	}

	if symbolics.Equal(allSymbolics) {
		return
	}

	// The fallback has it, so others can inherit: warning only.
	if symbolics.Contains(FallbackTheme) {
		for _, theme := range allSymbolics.Minus(symbolics).Names() {
			ordered.Append(r.WarnMissingFrom, theme, icon)
		}
		return
	}

	if len(locs) == 1 {
		for loc := range locs {
			ordered.Append(r.OnlyFoundIn, loc.String(), icon)
		}
		return
	}

	ordered.Append(r.MissingFrom, FallbackTheme, icon)
}

// ErrorCount returns the number of error findings.
func (r *Result) ErrorCount() int {
	return len(r.BadSymbolicName) +
		len(r.BadScalableName) +
		ordered.Total(r.OnlyFoundIn) +
		ordered.Total(r.MissingFrom) +
		ordered.Total(r.ScalableOnly) +
		ordered.Total(r.SymbolicOnly)
}

// WarningCount returns the number of warning findings.
func (r *Result) WarningCount() int {
	return ordered.Total(r.WarnMissingFrom)
}

// HasErrors reports whether any error bucket is non-empty.
func (r *Result) HasErrors() bool {
	return r.ErrorCount() > 0
}

// ExitCode returns the process status for the result.
// 0 = clean or warnings only, ErrorExitCode = errors found.
func (r *Result) ExitCode() int {
	if r.HasErrors() {
		return ErrorExitCode
	}
	return 0
}
