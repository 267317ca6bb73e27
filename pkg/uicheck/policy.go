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

package uicheck

import (
	"strings"
)

// ErrorInfo describes a violation code in the report.
type ErrorInfo struct {
	Code        string
	Title       string
	Description string
}

// Policy inspects one object and returns the violation codes it triggers.
type Policy struct {
	Name string
	// Params are the properties shown next to a violation.
	Params []string
	Check  func(class string, props Props) []string
}

// Props reads object properties with GtkBuilder defaults.
type Props map[string]string

// Get returns the property value or def when unset.
func (p Props) Get(name, def string) string {
	if v, ok := p[name]; ok {
		return v
	}
	return def
}

// describe renders "name=value" pairs for the policy's params.
func (p Policy) describe(props Props) string {
	parts := make([]string, 0, len(p.Params))
	for _, name := range p.Params {
		parts = append(parts, name+"="+props.Get(name, "N/A"))
	}
	return strings.Join(parts, " ")
}

const (
	parseCode        = "parse"
	buttonFocusCode  = "button-focus1"
	buttonRefuseCode = "button-focus2"
	entryFocusCode   = "entry-focus"
)

var parseError = ErrorInfo{
	Code:        parseCode,
	Title:       "Parser Error",
	Description: "Found something unusual in the XML",
}

var buttonClasses = map[string]bool{
	"GtkButton":       true,
	"GtkMenuButton":   true,
	"GtkToggleButton": true,
	"GtkRadioButton":  true,
}

var entryClasses = map[string]bool{
	"GtkEntry":        true,
	"GtkSpinButton":   true,
	"GtkComboBoxText": true,
}

// Toolbar buttons must not grab focus on click yet stay keyboard reachable.
func checkToolbarButton(class string, props Props) []string {
	if !buttonClasses[class] {
		return nil
	}
	if props.Get("focusable", "True") == "False" {
		return []string{buttonRefuseCode}
	}
	if props.Get("focus_on_click", "True") != "False" {
		return []string{buttonFocusCode}
	}
	return nil
}

// Toolbar entries must accept focus or nothing can be typed into them.
func checkToolbarEntry(class string, props Props) []string {
	if !entryClasses[class] {
		return nil
	}
	if props.Get("focus_on_click", "True") == "False" || props.Get("focusable", "True") == "False" {
		return []string{entryFocusCode}
	}
	return nil
}

// Toolbars checks the toolbar-*.ui files.
var Toolbars = &Checker{
	Name:   "TOOLBAR",
	Search: "toolbar-*.ui",
	Ignore: []string{"toolbar-tool-prefs.ui"},
	Errors: []ErrorInfo{
		parseError,
		{
			Code:        buttonFocusCode,
			Title:       "Button Takes Focus",
			Description: "A toolbar button can have focus and will take that focus when clicked. Add focus-on-click=False to fix this.",
		},
		{
			Code:        buttonRefuseCode,
			Title:       "Button Refuses Focus",
			Description: "A toolbar button is refusing focus, which makes it inaccessable to keyboard navigation. Remove focusable=False",
		},
		{
			Code:        entryFocusCode,
			Title:       "Entry Refuses Focus",
			Description: "A toolbar entry doesn't allow itself to be in focus, stopping text from being entered. Change focusable to True and focus-on-click to True (or remove them)",
		},
	},
	Policies: []Policy{
		{Name: "buttons", Params: []string{"focusable", "focus_on_click"}, Check: checkToolbarButton},
		{Name: "entries", Params: []string{"focusable", "focus_on_click"}, Check: checkToolbarEntry},
	},
}
