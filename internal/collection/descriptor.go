package collection

import (
	"fmt"
	"io/ioutil"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/chesscoach/puzzlebuild/pkg/convert"
)

// DescriptorFile is the metadata record every collection folder must
// carry; a folder without one is skipped.
const DescriptorFile = "collection.yaml"

// Descriptor is the hand-maintained metadata of one puzzle collection.
// It is loaded once per collection and never changes during a build.
type Descriptor struct {
	ID             string `yaml:"id"`
	Name           string `yaml:"name"`
	Source         string `yaml:"source"`
	PuzzleIDPrefix string `yaml:"puzzleIdPrefix"`
	DefaultType    string `yaml:"defaultType"`
	PuzzlesPerFile int    `yaml:"puzzlesPerFile"`
}

// LoadDescriptor reads and validates the descriptor of one collection
// folder.
func LoadDescriptor(dir string) (Descriptor, error) {
	raw, err := ioutil.ReadFile(filepath.Join(dir, DescriptorFile))
	if err != nil {
		return Descriptor{}, err
	}
	var desc Descriptor
	if err := yaml.Unmarshal(raw, &desc); err != nil {
		return Descriptor{}, fmt.Errorf("parse %s: %v", DescriptorFile, err)
	}
	if desc.ID == "" || desc.PuzzleIDPrefix == "" {
		return Descriptor{}, fmt.Errorf("%s: id and puzzleIdPrefix are required", DescriptorFile)
	}
	switch desc.DefaultType {
	case convert.TypeStatic, convert.TypeDynamic:
	default:
		return Descriptor{}, fmt.Errorf("%s: defaultType must be %q or %q, got %q",
			DescriptorFile, convert.TypeStatic, convert.TypeDynamic, desc.DefaultType)
	}
	if desc.PuzzlesPerFile < 0 {
		return Descriptor{}, fmt.Errorf("%s: puzzlesPerFile must be positive", DescriptorFile)
	}
	return desc, nil
}
