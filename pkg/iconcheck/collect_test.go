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
	"path/filepath"
	"sort"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRoot = "/icons"

// writeTree creates empty svg files below root.
func writeTree(t *testing.T, fs afero.Fs, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, fs.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, afero.WriteFile(fs, p, []byte("<svg/>"), 0644))
	}
}

func collectTree(t *testing.T, files ...string) *Collection {
	t.Helper()
	fs := afero.NewMemMapFs()
	writeTree(t, fs, testRoot, files...)
	themes, err := ListThemes(fs, testRoot)
	require.NoError(t, err)
	c, err := Collect(fs, themes)
	require.NoError(t, err)
	return c
}

// TestListThemes tests theme enumeration and the ignore list
func TestListThemes(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTree(t, fs, testRoot,
		"hicolor/symbolic/actions/a-symbolic.svg",
		"custom/scalable/actions/a.svg",
		"application/scalable/apps/inkscape.svg",
		"README.svg",
	)

	themes, err := ListThemes(fs, testRoot)
	require.NoError(t, err)

	assert.Equal(t, []Theme{
		{Name: "custom", Path: "/icons/custom"},
		{Name: "hicolor", Path: "/icons/hicolor"},
	}, themes)
}

// TestListThemes_MissingRoot tests that a missing root surfaces as an error
func TestListThemes_MissingRoot(t *testing.T) {
	_, err := ListThemes(afero.NewMemMapFs(), "/does/not/exist")
	assert.Error(t, err)
}

func TestCollect_NormalizesSymbolicNames(t *testing.T) {
	c := collectTree(t,
		"hicolor/symbolic/actions/edit-copy-symbolic.svg",
		"hicolor/scalable/actions/edit-copy.svg",
	)

	require.Contains(t, c.Icons, "actions/edit-copy.svg")
	assert.Len(t, c.Icons, 1)
	assert.Equal(t, map[Location]struct{}{
		{Theme: "hicolor", Kind: KindSymbolic}: {},
		{Theme: "hicolor", Kind: KindScalable}: {},
	}, c.Icons["actions/edit-copy.svg"])
	assert.Equal(t, []string{"hicolor"}, c.AllSymbolics.Names())
}

// TestCollect_BadNames tests Scenario B and its scalable counterpart
func TestCollect_BadNames(t *testing.T) {
	c := collectTree(t,
		"custom/symbolic/cat/y.svg",
		"custom/scalable/cat/v-symbolic.svg",
	)

	assert.Equal(t, []string{"/icons/custom/symbolic/cat/y.svg"}, c.BadSymbolicName)
	assert.Equal(t, []string{"/icons/custom/scalable/cat/v-symbolic.svg"}, c.BadScalableName)
	assert.Empty(t, c.Icons, "badly named files are not icons")
	assert.Equal(t, 0, c.AllSymbolics.Len(), "a badly named file does not make a symbolic set")
}

func TestCollect_SkipsNonIcons(t *testing.T) {
	c := collectTree(t,
		"hicolor/cursors/cat/arrow.svg",
		"hicolor/symbolic/loose-symbolic.svg",
		"hicolor/symbolic/cat/notes.txt",
		"hicolor/scalable/filters/feBlend-icon.svg",
		"hicolor/symbolic/ui/resizing-handle-vertical-symbolic.svg",
		"hicolor/symbolic/cat/kept-symbolic.svg",
	)

	assert.Equal(t, []string{"cat/kept.svg"}, keys(c.Icons))
	assert.Empty(t, c.BadSymbolicName)
}

func TestCollect_CategoriesAreDistinct(t *testing.T) {
	c := collectTree(t,
		"hicolor/symbolic/actions/star-symbolic.svg",
		"hicolor/symbolic/status/star-symbolic.svg",
		"hicolor/symbolic/status/nested/deep/star-symbolic.svg",
	)

	assert.Equal(t, []string{
		"actions/star.svg",
		"status/nested/deep/star.svg",
		"status/star.svg",
	}, keys(c.Icons))
}

// TestCollect_OsFs tests the checker against a real directory tree
func TestCollect_OsFs(t *testing.T) {
	root := t.TempDir()
	fs := afero.NewOsFs()
	writeTree(t, fs, root,
		"hicolor/symbolic/actions/a-symbolic.svg",
		"hicolor/scalable/actions/a.svg",
	)

	result, err := Check(fs, root, Options{})
	require.NoError(t, err)
	assert.False(t, result.HasErrors())
	assert.Equal(t, 0, result.WarningCount())
}

func keys(m map[string]map[Location]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
