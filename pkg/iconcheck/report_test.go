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
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mixedTree = []string{
	"hicolor/symbolic/actions/a-symbolic.svg",
	"hicolor/scalable/actions/a.svg",
	"hicolor/symbolic/actions/bad.svg",
	"hicolor/scalable/actions/list-add.svg",
	"custom/symbolic/actions/orphan-symbolic.svg",
}

// TestPrintReport_Mixed tests the full report layout for errors and warnings
func TestPrintReport_Mixed(t *testing.T) {
	r := classifyTree(t, mixedTree...)

	var buf bytes.Buffer
	r.PrintReport(&buf)

	expected := " == 3 errors found in icon themes! == \n\n" +
		"Symbolic themes should only have symbolic icons in them (They don't end with -symbolic.svg so can't be used):\n" +
		" - /icons/hicolor/symbolic/actions/bad.svg\n" +
		"\n" +
		"Icons only found in custom-symbolic:\n" +
		" + actions/orphan.svg\n" +
		"\n" +
		"Icons should be symbolic ONLY, remove from hicolor:\n" +
		" - actions/list-add.svg\n" +
		"\n" +
		" == 1 warnings found in icon themes == \n\n" +
		"Icons missing from custom:\n" +
		" - actions/a.svg\n" +
		"\n"
	assert.Equal(t, expected, buf.String())
	assert.Equal(t, ErrorExitCode, r.ExitCode())
}

// TestPrintReport_ScalableOnlyUsesSymbolicName tests that color-only icons
// are listed by the file name that has to be removed
func TestPrintReport_ScalableOnlyUsesSymbolicName(t *testing.T) {
	r := classifyTree(t, "hicolor/symbolic/color/color-wheel-symbolic.svg")

	var buf bytes.Buffer
	r.PrintReport(&buf)

	assert.Equal(t, " == 1 errors found in icon themes! == \n\n"+
		"Icons should be scalable ONLY, remove from hicolor:\n"+
		" - color/color-wheel-symbolic.svg\n"+
		"\n", buf.String())
}

func TestPrintReport_BadScalableAndMissing(t *testing.T) {
	r := classifyTree(t,
		"custom/scalable/cat/v-symbolic.svg",
		"custom/scalable/cat/z.svg",
	)

	var buf bytes.Buffer
	r.PrintReport(&buf)

	assert.Equal(t, " == 2 errors found in icon themes! == \n\n"+
		"Scalable themes should not have symbolic icons in them (They end with -symbolic.svg so won't be used):\n"+
		" - /icons/custom/scalable/cat/v-symbolic.svg\n"+
		"\n"+
		"Icons missing from custom-symbolic:\n"+
		" - cat/z.svg\n"+
		"\n", buf.String())
}

// TestPrintReport_Clean tests that a clean run prints nothing
func TestPrintReport_Clean(t *testing.T) {
	r := classifyTree(t,
		"hicolor/symbolic/actions/a-symbolic.svg",
		"hicolor/scalable/actions/a.svg",
	)

	var buf bytes.Buffer
	r.PrintReport(&buf)
	assert.Empty(t, buf.String())
	assert.Equal(t, 0, r.ExitCode())
}

// TestCheck_Idempotent tests that two runs over an unchanged tree agree
func TestCheck_Idempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTree(t, fs, testRoot, mixedTree...)
	writeTree(t, fs, testRoot,
		"dark/symbolic/actions/a-symbolic.svg",
		"dark/symbolic/status/s-symbolic.svg",
		"custom/symbolic/status/s-symbolic.svg",
	)

	run := func() (string, int) {
		r, err := Check(fs, testRoot, Options{Hints: true})
		require.NoError(t, err)
		var buf bytes.Buffer
		r.PrintReport(&buf)
		return buf.String(), r.ExitCode()
	}

	out1, code1 := run()
	out2, code2 := run()
	assert.Equal(t, out1, out2)
	assert.Equal(t, code1, code2)
	assert.NotEmpty(t, out1)
}

func TestCheck_MissingRoot(t *testing.T) {
	_, err := Check(afero.NewMemMapFs(), "/nope", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list icon themes")
}

// TestAddHints tests fuzzy suggestions for orphaned icons
func TestAddHints(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTree(t, fs, testRoot,
		"hicolor/symbolic/actions/edit-copy-symbolic.svg",
		"custom/symbolic/actions/edit-cpy-symbolic.svg",
	)

	r, err := Check(fs, testRoot, Options{Hints: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"actions/edit-cpy.svg"}, bucket(t, r.OnlyFoundIn, "custom-symbolic"))
	assert.Equal(t, []string{"actions/edit-copy.svg"}, r.Hints["actions/edit-cpy.svg"])

	var buf bytes.Buffer
	r.PrintReport(&buf)
	assert.Contains(t, buf.String(), " + actions/edit-cpy.svg\n   ? did you mean: actions/edit-copy.svg\n")
}

func TestAddHints_DisabledByDefault(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTree(t, fs, testRoot,
		"hicolor/symbolic/actions/edit-copy-symbolic.svg",
		"custom/symbolic/actions/edit-cpy-symbolic.svg",
	)

	r, err := Check(fs, testRoot, Options{})
	require.NoError(t, err)
	assert.Empty(t, r.Hints)
}

func TestSuggest_Limit(t *testing.T) {
	candidates := []string{"a/star.svg", "b/star.svg", "c/star.svg", "d/star.svg"}
	hints := suggest("star", "x/star.svg", candidates, 2)
	assert.Len(t, hints, 2)

	hints = suggest("star", "a/star.svg", []string{"a/star.svg"}, 3)
	assert.Empty(t, hints, "an icon never suggests itself")
}
