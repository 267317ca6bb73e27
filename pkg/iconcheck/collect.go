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
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/inkscape/media-check/internal/fsext"
	"github.com/inkscape/media-check/internal/log"
)

// Theme is an icon theme directory.
type Theme struct {
	Name string
	Path string
}

// Location is one (theme, kind) pair an icon was observed in.
type Location struct {
	Theme string
	Kind  Kind
}

// String returns the "theme-kind" label used in reports.
func (l Location) String() string {
	return fmt.Sprintf("%s-%s", l.Theme, l.Kind)
}

// Collection is everything gathered from one pass over the themes.
type Collection struct {
	// Icons maps an icon identity (category path plus normalized file name)
	// to every location holding it.
	Icons map[string]map[Location]struct{}

	// AllSymbolics holds each theme with at least one valid symbolic icon.
	AllSymbolics *ThemeSet

	// BadSymbolicName lists files in a symbolic set lacking the -symbolic.svg suffix.
	BadSymbolicName []string

	// BadScalableName lists files in a scalable set carrying the -symbolic.svg suffix.
	BadScalableName []string
}

func newCollection() *Collection {
	return &Collection{
		Icons:        make(map[string]map[Location]struct{}),
		AllSymbolics: NewThemeSet(),
	}
}

func (c *Collection) add(icon string, loc Location) {
	locs, ok := c.Icons[icon]
	if !ok {
		locs = make(map[Location]struct{})
		c.Icons[icon] = locs
	}
	locs[loc] = struct{}{}
}

// ListThemes returns the theme directories directly under root, sorted by
// name. Ignored themes and plain files are skipped.
func ListThemes(fs afero.Fs, root string) ([]Theme, error) {
	entries, err := fsext.ReadDir(fs, root)
	if err != nil {
		return nil, err
	}

	var themes []Theme
	for _, e := range entries {
		if !e.IsDir {
			continue
		}
		if IsIgnoredTheme(e.Name) {
			log.Debug("skipping ignored theme", zap.String("theme", e.Name))
			continue
		}
		themes = append(themes, Theme{Name: e.Name, Path: e.Path})
	}
	return themes, nil
}

// Collect walks every theme and records where each icon lives.
func Collect(fs afero.Fs, themes []Theme) (*Collection, error) {
	c := newCollection()
	for _, theme := range themes {
		if err := c.walkTheme(fs, theme); err != nil {
			return nil, fmt.Errorf("scan theme %s: %w", theme.Name, err)
		}
	}
	log.Debug("collected icons",
		zap.Int("themes", len(themes)),
		zap.Int("icons", len(c.Icons)),
		zap.Strings("symbolic_themes", c.AllSymbolics.Names()))
	return c, nil
}

func (c *Collection) walkTheme(fs afero.Fs, theme Theme) error {
	return afero.Walk(fs, theme.Path, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		segs, err := fsext.SplitRel(theme.Path, path)
		if err != nil {
			return err
		}

		if info.IsDir() {
			if len(segs) == 1 && !isCheckedKind(segs[0]) {
				// Cursors and friends are not checked.
				log.Debug("skipping icon set", zap.String("theme", theme.Name), zap.String("kind", segs[0]))
				return filepath.SkipDir
			}
			return nil
		}

		// Icons sit at <kind>/<category...>/<file>; anything shallower is not an icon.
		if len(segs) < 3 || !isCheckedKind(segs[0]) {
			return nil
		}
		c.addFile(theme, Kind(segs[0]), segs[1:], filepath.ToSlash(path))
		return nil
	})
}

func isCheckedKind(kind string) bool {
	return kind == string(KindSymbolic) || kind == string(KindScalable)
}

// addFile classifies a single file found at <theme>/<kind>/<rel...>.
func (c *Collection) addFile(theme Theme, kind Kind, rel []string, fullPath string) {
	fname := rel[len(rel)-1]
	if !strings.HasSuffix(fname, svgSuffix) {
		return
	}

	switch kind {
	case KindSymbolic:
		if !strings.HasSuffix(fname, symbolicSuffix) {
			c.BadSymbolicName = append(c.BadSymbolicName, fullPath)
			return
		}
		fname = strings.TrimSuffix(fname, symbolicSuffix) + svgSuffix
		c.AllSymbolics.Add(theme.Name)
	case KindScalable:
		if strings.HasSuffix(fname, symbolicSuffix) {
			c.BadScalableName = append(c.BadScalableName, fullPath)
			return
		}
	}

	if isIgnoredIcon(strings.TrimSuffix(fname, svgSuffix)) {
		return
	}

	dirs := append([]string{}, rel[:len(rel)-1]...)
	icon := fsext.SlashJoin(append(dirs, fname)...)
	c.add(icon, Location{Theme: theme.Name, Kind: kind})
}
