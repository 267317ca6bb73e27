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
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

const noID = "NOID"

// Object is one <object> element of a GtkBuilder file.
type Object struct {
	Class string
	ID    string
	// Properties holds direct <property> children, names with '-' turned into '_'.
	Properties map[string]string
	// Problem is set when the XML for this object looks wrong.
	Problem string
}

// Document is a parsed GtkBuilder (.ui) file.
type Document struct {
	Path    string
	Name    string
	Objects []*Object
}

// frame tracks the element currently open at one depth.
type frame struct {
	object *Object

	// property state, set only for <property> directly under an object
	owner *Object
	key   string
	text  strings.Builder
}

// ParseBuilder reads a GtkBuilder document.
func ParseBuilder(r io.Reader, path string) (*Document, error) {
	doc := &Document{Path: path, Name: filepath.Base(path)}
	dec := xml.NewDecoder(r)

	var stack []*frame
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			f := &frame{}
			var parent *Object
			if len(stack) > 0 {
				parent = stack[len(stack)-1].object
			}

			switch {
			case t.Name.Local == "object":
				obj := &Object{
					Class:      attr(t, "class"),
					ID:         attr(t, "id"),
					Properties: make(map[string]string),
				}
				doc.Objects = append(doc.Objects, obj)
				f.object = obj
			case t.Name.Local == "property" && parent != nil:
				key := strings.ReplaceAll(attr(t, "name"), "-", "_")
				if _, dup := parent.Properties[key]; dup {
					parent.Problem = fmt.Sprintf("Duplicate property '%s'", attr(t, "name"))
				}
				f.owner = parent
				f.key = key
			}
			stack = append(stack, f)

		case xml.CharData:
			if len(stack) > 0 {
				if f := stack[len(stack)-1]; f.owner != nil {
					f.text.Write(t)
				}
			}

		case xml.EndElement:
			if len(stack) == 0 {
				continue
			}
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if f.owner != nil {
				f.owner.Properties[f.key] = strings.TrimSpace(f.text.String())
			}
		}
	}

	for _, obj := range doc.Objects {
		repairID(obj)
	}
	return doc, nil
}

func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// repairID names anonymous objects after their action, e.g. "win.zoom{1.0}".
func repairID(obj *Object) {
	if obj.ID != "" {
		return
	}
	obj.ID = obj.Properties["action_name"]
	if obj.ID != "" {
		if target, ok := obj.Properties["action_target"]; ok {
			obj.ID = fmt.Sprintf("%s{%s}", obj.ID, target)
		}
	}
	if obj.ID == "" {
		obj.ID = noID
	}
}
