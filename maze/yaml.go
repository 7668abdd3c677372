package maze

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a map.
//
//	diagonal: true
//	cut_corners: false
//	map: |
//	  S..#
//	  .#.G
//
// The map may also be given as a list of rows, which is used when map is
// empty:
//
//	rows:
//	  - S..#
//	  - .#.G
type Document struct {
	Diagonal   bool     `yaml:"diagonal"`
	CutCorners bool     `yaml:"cut_corners"`
	Map        string   `yaml:"map"`
	Rows       []string `yaml:"rows"`
}

// ParseYAML decodes a Document and parses its map.
func ParseYAML(data []byte) (*Map, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode maze document")
	}
	text := doc.Map
	if text == "" {
		text = strings.Join(doc.Rows, "\n")
	}
	m, err := ParseString(text)
	if err != nil {
		return nil, errors.Wrap(err, "invalid map")
	}
	m.SetDiagonal(doc.Diagonal)
	m.SetCutCorners(doc.CutCorners)
	return m, nil
}

// Load reads a map from a file. Files ending in .yaml or .yml are parsed
// as a Document, anything else as a plain ASCII map.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read maze %s", path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		m, err := ParseYAML(data)
		return m, errors.Wrapf(err, "failed to load maze %s", path)
	default:
		m, err := ParseString(string(data))
		return m, errors.Wrapf(err, "failed to load maze %s", path)
	}
}
