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

// Package iconcheck verifies that icon themes carry a consistent set of
// symbolic and scalable icons.
//
// Layout expected under the root:
//
//	<theme>/symbolic/<category>/<name>-symbolic.svg
//	<theme>/scalable/<category>/<name>.svg
//
// Every scalable icon needs a symbolic sibling, symbolic icons should exist
// in every theme that ships symbolic icons, and the fallback theme (hicolor)
// is the reference other themes may inherit from.
package iconcheck

import (
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/inkscape/media-check/internal/log"
)

// Options tunes a check run.
type Options struct {
	// Hints adds "did you mean" suggestions to orphaned icons.
	Hints bool
	// HintLimit caps suggestions per icon (DefaultHintLimit when zero).
	HintLimit int
}

// Check scans root and classifies every icon found.
func Check(fs afero.Fs, root string, opts Options) (*Result, error) {
	themes, err := ListThemes(fs, root)
	if err != nil {
		return nil, fmt.Errorf("failed to list icon themes: %w", err)
	}
	log.Debug("found icon themes", zap.String("root", root), zap.Int("count", len(themes)))

	collection, err := Collect(fs, themes)
	if err != nil {
		return nil, err
	}

	result := Classify(collection)
	if opts.Hints {
		result.AddHints(collection, opts.HintLimit)
	}

	log.Debug("icon check finished",
		zap.Int("errors", result.ErrorCount()),
		zap.Int("warnings", result.WarningCount()))
	return result, nil
}
