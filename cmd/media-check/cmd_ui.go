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
	"github.com/inkscape/media-check/pkg/uicheck"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Check UI files against the toolbar focus policy",
	Long: `Check toolbar-*.ui files under share/ui.

Toolbar buttons must not take focus when clicked but must stay focusable;
toolbar entries must accept focus.

Examples:
  media-check ui
  media-check ui --root build/share/ui`,
	Args: cobra.NoArgs,
	Run:  runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)

	uiCmd.Flags().String("root", uicheck.DefaultRoot, "UI file directory")
	_ = viper.BindPFlag("ui.root", uiCmd.Flags().Lookup("root"))
}

func runUI(cmd *cobra.Command, args []string) {
	code, err := checkUI(afero.NewOsFs(), cmd.ErrOrStderr(), config.UI)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
	exit(code)
}

// checkUI runs every UI checker, writes the reports to w and returns the
// exit status.
func checkUI(fs afero.Fs, w io.Writer, cfg UIConfig) (int, error) {
	checkers := []*uicheck.Checker{uicheck.Toolbars}

	total := 0
	for _, c := range checkers {
		log.Info("checking ui files", zap.String("checker", c.Name), zap.String("root", cfg.Root))
		report, err := c.Check(fs, cfg.Root)
		if err != nil {
			return 1, err
		}
		report.PrintReport(w)
		total += report.Count()
	}

	if total > 0 {
		return uicheck.ErrorExitCode, nil
	}
	fmt.Fprintf(w, "COMPLETE, NO PROBLEMS FOUND\n")
	return 0, nil
}
