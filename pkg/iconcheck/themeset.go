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
	"github.com/emirpasic/gods/sets/treeset"
)

// ThemeSet is a sorted set of theme names. Iteration is always in name
// order, which keeps reports stable between runs.
type ThemeSet struct {
	set *treeset.Set
}

// NewThemeSet creates a set holding names.
func NewThemeSet(names ...string) *ThemeSet {
	s := &ThemeSet{set: treeset.NewWithStringComparator()}
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add inserts a theme name.
func (s *ThemeSet) Add(name string) {
	s.set.Add(name)
}

// Contains reports membership.
func (s *ThemeSet) Contains(name string) bool {
	return s.set.Contains(name)
}

// Len returns the number of themes.
func (s *ThemeSet) Len() int {
	return s.set.Size()
}

// Names returns the members in sorted order.
func (s *ThemeSet) Names() []string {
	values := s.set.Values()
	names := make([]string, 0, len(values))
	for _, v := range values {
		names = append(names, v.(string))
	}
	return names
}

// Minus returns the themes in s that are not in other.
func (s *ThemeSet) Minus(other *ThemeSet) *ThemeSet {
	out := NewThemeSet()
	for _, n := range s.Names() {
		if !other.Contains(n) {
			out.Add(n)
		}
	}
	return out
}

// Equal reports whether both sets hold the same themes.
func (s *ThemeSet) Equal(other *ThemeSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, n := range s.Names() {
		if !other.Contains(n) {
			return false
		}
	}
	return true
}
