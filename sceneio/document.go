// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sceneio reads declarative scene documents in TOML, YAML or
// JSON and builds them into a [scene.World].
package sceneio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/scene2d/layout"
	"cogentcore.org/scene2d/styles"
	"cogentcore.org/scene2d/styles/sides"
	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Versions is the range of document versions this package reads.
const Versions = ">= 1.0.0, < 2.0.0"

// Formats are the supported document encodings.
type Formats int32

const (
	TOML Formats = iota
	YAML
	JSON
)

func (f Formats) String() string {
	switch f {
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	}
	return "toml"
}

// FormatOf returns the format for a file name by its extension.
func FormatOf(path string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	}
	return TOML, fmt.Errorf("sceneio: unsupported file type %q", filepath.Ext(path))
}

// Document is a scene description.
type Document struct {
	Version  string   `toml:"version" yaml:"version" json:"version"`
	Viewport Viewport `toml:"viewport" yaml:"viewport" json:"viewport"`
	Nodes    []Node   `toml:"nodes" yaml:"nodes" json:"nodes"`
}

// Viewport is the initial viewport size of the scene.
type Viewport struct {
	Width  float32 `toml:"width" yaml:"width" json:"width"`
	Height float32 `toml:"height" yaml:"height" json:"height"`
}

// Node describes one entity and its children.
type Node struct {
	Name string `toml:"name,omitempty" yaml:"name,omitempty" json:"name,omitempty"`

	// Kind is the layout element: view, content, stack or grid.
	// Empty means the node takes no part in layout.
	Kind string `toml:"kind,omitempty" yaml:"kind,omitempty" json:"kind,omitempty"`

	Size    []float32       `toml:"size,omitempty" yaml:"size,omitempty" json:"size,omitempty"`
	Pos     []float32       `toml:"pos,omitempty" yaml:"pos,omitempty" json:"pos,omitempty"`
	Anchor  []float32       `toml:"anchor,omitempty" yaml:"anchor,omitempty" json:"anchor,omitempty"`
	Margin  sides.Thickness `toml:"margin,omitempty" yaml:"margin,omitempty" json:"margin,omitempty"`
	Padding sides.Thickness `toml:"padding,omitempty" yaml:"padding,omitempty" json:"padding,omitempty"`
	Hor     styles.Align    `toml:"hor,omitempty" yaml:"hor,omitempty" json:"hor,omitempty"`
	Ver     styles.Align    `toml:"ver,omitempty" yaml:"ver,omitempty" json:"ver,omitempty"`

	UseRectSize bool             `toml:"use_rect_size,omitempty" yaml:"use_rect_size,omitempty" json:"use_rect_size,omitempty"`
	ViewType    layout.ViewTypes `toml:"view_type,omitempty" yaml:"view_type,omitempty" json:"view_type,omitempty"`

	Orientation styles.Orientation `toml:"orientation,omitempty" yaml:"orientation,omitempty" json:"orientation,omitempty"`
	Spacing     float32            `toml:"spacing,omitempty" yaml:"spacing,omitempty" json:"spacing,omitempty"`
	OverHide    bool               `toml:"over_hide,omitempty" yaml:"over_hide,omitempty" json:"over_hide,omitempty"`

	Rows []layout.LNumber `toml:"rows,omitempty" yaml:"rows,omitempty" json:"rows,omitempty"`
	Cols []layout.LNumber `toml:"cols,omitempty" yaml:"cols,omitempty" json:"cols,omitempty"`
	Cell *layout.GridCell `toml:"cell,omitempty" yaml:"cell,omitempty" json:"cell,omitempty"`

	Text     string  `toml:"text,omitempty" yaml:"text,omitempty" json:"text,omitempty"`
	FontSize float32 `toml:"font_size,omitempty" yaml:"font_size,omitempty" json:"font_size,omitempty"`

	Hidden bool   `toml:"hidden,omitempty" yaml:"hidden,omitempty" json:"hidden,omitempty"`
	Scale  *Scale `toml:"scale,omitempty" yaml:"scale,omitempty" json:"scale,omitempty"`

	Children []Node `toml:"children,omitempty" yaml:"children,omitempty" json:"children,omitempty"`
}

// Scale is the screen scaler of a root node.
type Scale struct {
	Mode   layout.ScaleModes `toml:"mode" yaml:"mode" json:"mode"`
	Design float32           `toml:"design" yaml:"design" json:"design"`
}

// Load reads the document at path, choosing the format by extension.
func Load(path string) (*Document, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode parses and validates a document.
func Decode(data []byte, f Formats) (*Document, error) {
	doc := &Document{}
	var err error
	switch f {
	case YAML:
		err = yaml.Unmarshal(data, doc)
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(doc)
	default:
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(doc)
	}
	if err != nil {
		return nil, fmt.Errorf("sceneio: decoding %s: %w", f, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Encode writes the document in the given format.
func Encode(doc *Document, f Formats) ([]byte, error) {
	switch f {
	case YAML:
		return yaml.Marshal(doc)
	case JSON:
		return json.MarshalIndent(doc, "", "  ")
	}
	return toml.Marshal(doc)
}

// Validate checks the document version and node fields.
func (d *Document) Validate() error {
	v, err := semver.NewVersion(d.Version)
	if err != nil {
		return fmt.Errorf("sceneio: invalid version %q: %w", d.Version, err)
	}
	c, err := semver.NewConstraint(Versions)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("sceneio: version %s is not in %s", v, Versions)
	}
	for i := range d.Nodes {
		if err := d.Nodes[i].validate(fmt.Sprintf("nodes[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) validate(path string) error {
	if n.Name != "" {
		path = n.Name
	}
	switch n.Kind {
	case "", "view", "content", "stack", "grid":
	default:
		return fmt.Errorf("sceneio: %s: unknown kind %q", path, n.Kind)
	}
	for _, v := range []struct {
		name string
		vals []float32
	}{{"size", n.Size}, {"pos", n.Pos}, {"anchor", n.Anchor}} {
		if len(v.vals) != 0 && len(v.vals) != 2 {
			return fmt.Errorf("sceneio: %s: %s needs 2 values, got %d", path, v.name, len(v.vals))
		}
	}
	for i := range n.Children {
		if err := n.Children[i].validate(fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}
