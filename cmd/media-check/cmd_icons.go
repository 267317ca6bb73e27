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
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inkscape/media-check/internal/log"
	"github.com/inkscape/media-check/pkg/iconcheck"
)

var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "Check that icon themes contain all needed icons",
	Long: `Check the icon themes under share/icons for consistency.

Errors:
  - symbolic sets holding files without the -symbolic.svg suffix, and the reverse
  - scalable icons without a symbolic sibling in the same theme
  - icons missing from the hicolor fallback theme, or found in one place only
  - color-only icons in symbolic sets, symbolic-only icons in scalable sets

Warnings:
  - icons the fallback theme has but another symbolic theme lacks

Examples:
  media-check icons
  media-check icons --root build/share/icons --hints`,
	Args: cobra.NoArgs,
	Run:  runIcons,
}

func init() {
	rootCmd.AddCommand(iconsCmd)

	iconsCmd.Flags().String("root", iconcheck.DefaultRoot, "icon theme directory")
	iconsCmd.Flags().Bool("hints", false, "suggest similar fallback icons for orphaned icons")
	iconsCmd.Flags().Int("hint-limit", iconcheck.DefaultHintLimit, "maximum hints per icon")

	_ = viper.BindPFlag("icons.root", iconsCmd.Flags().Lookup("root"))
	_ = viper.BindPFlag("icons.hints", iconsCmd.Flags().Lookup("hints"))
	_ = viper.BindPFlag("icons.hint_limit", iconsCmd.Flags().Lookup("hint-limit"))
}

func runIcons(cmd *cobra.Command, args []string) {
	code, err := checkIcons(afero.NewOsFs(), cmd.ErrOrStderr(), config.Icons)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
	exit(code)
}

// checkIcons runs the icon check, writes the report to w and returns the
// exit status.
func checkIcons(fs afero.Fs, w io.Writer, cfg IconsConfig) (int, error) {
	log.Info("checking icon themes", zap.String("root", cfg.Root))

	result, err := iconcheck.Check(fs, cfg.Root, iconcheck.Options{
		Hints:     cfg.Hints,
		HintLimit: cfg.HintLimit,
	})
	if err != nil {
		return 1, err
	}

	result.PrintReport(w)
	return result.ExitCode(), nil
}
