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

import "strings"

// DefaultRoot is where icon themes live relative to the source checkout.
const DefaultRoot = "share/icons"

// FallbackTheme is the baseline theme other themes may inherit icons from.
const FallbackTheme = "hicolor"

// ErrorExitCode is the process status when any error finding is reported.
const ErrorExitCode = 5

const (
	svgSuffix      = ".svg"
	symbolicSuffix = "-symbolic.svg"
)

// Kind is an icon set inside a theme.
type Kind string

const (
	KindSymbolic Kind = "symbolic"
	KindScalable Kind = "scalable"
)

// nameSet is an immutable set of icon or theme names.
type nameSet map[string]struct{}

func newNameSet(names ...string) nameSet {
	s := make(nameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s nameSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

// ignoreThemes are theme directories never scanned.
var ignoreThemes = newNameSet(
	"application",
)

// symbolicOnlyIcons are hard coded as symbolic in the gtk sources.
var symbolicOnlyIcons = newNameSet(
	"list-add",
	"list-remove",
	"applications-graphics",
	"edit-find",
	"dialog-warning",
	"edit-clear",
	"view-refresh",
	"pan-down",
	"pan-right",
	"pan-left",
	"pan-end",
	"pan-start",
	"pan-up",
	"window-close",
	"application-exit",
	"document-save-as",
	"open-menu",
)

// scalableOnlyIcons always need color and must not appear in a symbolic set.
var scalableOnlyIcons = newNameSet(
	"color-selector-hsx",
	"color-selector-hsl",
	"color-selector-hsv",
	"color-selector-oklch",
	"color-selector-named",
	"color-selector-hsluv",
	"color-selector-cms",
	"color-selector-cmyk",
	"color-selector-okhsl",
	"color-selector-rgb",
	"color-wheel",
	"out-of-gamut-icon",
)

// ignoreIllustrations are illustrations rather than icons.
var ignoreIllustrations = newNameSet(
	"feBlend-icon",
	"feColorMatrix-icon",
	"feComponentTransfer-icon",
	"feComposite-icon",
	"feConvolveMatrix-icon",
	"feDiffuseLighting-icon",
	"feDisplacementMap-icon",
	"feFlood-icon",
	"feGaussianBlur-icon",
	"feImage-icon",
	"feMerge-icon",
	"feMorphology-icon",
	"feOffset-icon",
	"feSpecularLighting-icon",
	"feTile-icon",
	"feTurbulence-icon",
)

// ignoreUI are UI elements drawn as icons; themes may define them but don't have to.
var ignoreUI = newNameSet(
	"resizing-handle-horizontal",
	"resizing-handle-vertical",
)

// IsIgnoredTheme reports whether a theme directory is skipped.
func IsIgnoredTheme(name string) bool { return ignoreThemes.has(name) }

// IsSymbolicOnly reports whether the icon may only ship in symbolic sets.
func IsSymbolicOnly(short string) bool { return symbolicOnlyIcons.has(short) }

// IsScalableOnly reports whether the icon may only ship in scalable sets.
func IsScalableOnly(short string) bool { return scalableOnlyIcons.has(short) }

func isIgnoredIcon(short string) bool {
	return ignoreIllustrations.has(short) || ignoreUI.has(short)
}

// isPolicyIcon covers every name that is exempt from presence checks.
func isPolicyIcon(short string) bool {
	return IsScalableOnly(short) || IsSymbolicOnly(short) || isIgnoredIcon(short)
}

// ShortName returns the extension-less basename of an icon identity,
// e.g. "actions/list-add.svg" becomes "list-add".
func ShortName(icon string) string {
	if i := strings.LastIndex(icon, "/"); i >= 0 {
		icon = icon[i+1:]
	}
	return strings.TrimSuffix(icon, svgSuffix)
}

// symbolicName maps a normalized identity back to its -symbolic.svg form.
func symbolicName(icon string) string {
	return strings.TrimSuffix(icon, svgSuffix) + symbolicSuffix
}
