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

	"github.com/sahilm/fuzzy"
)

// DefaultHintLimit caps the number of suggestions per icon.
const DefaultHintLimit = 3

// AddHints looks up fallback-theme icons resembling each icon that is
// missing from the fallback or only found in one place.
// Such icons are often renamed or misfiled copies of an existing one.
func (r *Result) AddHints(c *Collection, limit int) {
	if limit <= 0 {
		limit = DefaultHintLimit
	}

	candidates := fallbackIcons(c)
	if len(candidates) == 0 {
		return
	}

	var targets []string
	if icons, ok := r.MissingFrom.Get(FallbackTheme); ok {
		targets = append(targets, icons...)
	}
	r.OnlyFoundIn.Range(func(_ string, icons []string) bool {
		targets = append(targets, icons...)
		return true
	})

	for _, icon := range targets {
		if hints := suggest(ShortName(icon), icon, candidates, limit); len(hints) > 0 {
			r.Hints[icon] = hints
		}
	}
}

func fallbackIcons(c *Collection) []string {
	var out []string
	for icon, locs := range c.Icons {
		for loc := range locs {
			if loc.Theme == FallbackTheme {
				out = append(out, icon)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}

func suggest(pattern, self string, candidates []string, limit int) []string {
	var hints []string
	for _, m := range fuzzy.Find(pattern, candidates) {
		if m.Str == self {
			continue
		}
		hints = append(hints, m.Str)
		if len(hints) == limit {
			break
		}
	}
	return hints
}
