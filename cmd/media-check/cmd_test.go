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

package main

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, fs afero.Fs, files map[string]string) {
	t.Helper()
	for path, body := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(body), 0644))
	}
}

// TestCheckIcons_Errors tests that error findings map to exit status 5
func TestCheckIcons_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/icons/custom/symbolic/cat", 0755))
	writeFiles(t, fs, map[string]string{
		"/icons/custom/symbolic/cat/y.svg": "<svg/>",
	})

	var buf bytes.Buffer
	code, err := checkIcons(fs, &buf, IconsConfig{Root: "/icons"})
	require.NoError(t, err)
	assert.Equal(t, 5, code)
	assert.Contains(t, buf.String(), " == 1 errors found in icon themes! == ")
	assert.Contains(t, buf.String(), " - /icons/custom/symbolic/cat/y.svg\n")
}

// TestCheckIcons_WarningsOnly tests that warnings keep the status at 0
func TestCheckIcons_WarningsOnly(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/icons/hicolor/symbolic/cat", 0755))
	require.NoError(t, fs.MkdirAll("/icons/custom/symbolic/cat", 0755))
	writeFiles(t, fs, map[string]string{
		"/icons/hicolor/symbolic/cat/x-symbolic.svg":    "<svg/>",
		"/icons/hicolor/symbolic/cat/base-symbolic.svg": "<svg/>",
		"/icons/custom/symbolic/cat/base-symbolic.svg":  "<svg/>",
	})

	var buf bytes.Buffer
	code, err := checkIcons(fs, &buf, IconsConfig{Root: "/icons"})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, " == 1 warnings found in icon themes == \n\nIcons missing from custom:\n - cat/x.svg\n\n", buf.String())
}

func TestCheckIcons_MissingRoot(t *testing.T) {
	var buf bytes.Buffer
	code, err := checkIcons(afero.NewMemMapFs(), &buf, IconsConfig{Root: "/missing"})
	assert.Error(t, err)
	assert.Equal(t, 1, code)
	assert.Empty(t, buf.String())
}

func TestCheckUI(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/ui", 0755))
	writeFiles(t, fs, map[string]string{
		"/ui/toolbar-zoom.ui": `<interface><object class="GtkButton" id="zoom-in"/></interface>`,
	})

	var buf bytes.Buffer
	code, err := checkUI(fs, &buf, UIConfig{Root: "/ui"})
	require.NoError(t, err)
	assert.Equal(t, 5, code)
	assert.Contains(t, buf.String(), "==== CHECKING TOOLBAR FILES ====")
	assert.Contains(t, buf.String(), " * toolbar-zoom.ui: GtkButton:zoom-in: focusable=N/A focus_on_click=N/A\n")
	assert.NotContains(t, buf.String(), "COMPLETE, NO PROBLEMS FOUND")
}

func TestCheckUI_Clean(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/ui", 0755))

	var buf bytes.Buffer
	code, err := checkUI(fs, &buf, UIConfig{Root: "/ui"})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "\n\n==== CHECKING TOOLBAR FILES ====\n\nCOMPLETE, NO PROBLEMS FOUND\n", buf.String())
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["icons"])
	assert.True(t, names["ui"])
}
