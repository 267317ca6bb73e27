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

// Package ordered provides a map that remembers key insertion order.
package ordered

// Map is an ordered map.
type Map[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// New creates a new ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		keys:   make([]K, 0),
		values: make(map[K]V),
	}
}

// Set sets a value. A new key is placed after all existing keys.
func (m *Map[K, V]) Set(key K, value V) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get gets a value.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns all keys in order.
func (m *Map[K, V]) Keys() []K {
	result := make([]K, len(m.keys))
	copy(result, m.keys)
	return result
}

// Len returns the map length.
func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

// Range iterates over the map in order.
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			break
		}
	}
}

// Append adds v to the list stored under key, creating the list on first use.
func Append[K comparable, V any](m *Map[K, []V], key K, v V) {
	list, _ := m.Get(key)
	m.Set(key, append(list, v))
}

// Total returns the summed length of every list in m.
func Total[K comparable, V any](m *Map[K, []V]) int {
	n := 0
	for _, k := range m.keys {
		n += len(m.values[k])
	}
	return n
}
