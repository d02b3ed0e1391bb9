package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/scigolib/region"
)

// document is the YAML input of every subcommand.
type document struct {
	Dim int         `yaml:"dim"`
	A   [][][]int64 `yaml:"a"`
	B   [][][]int64 `yaml:"b"`
}

func loadDocument(path string) (*document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided input file
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return parseDocument(data)
}

func parseDocument(data []byte) (*document, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}
	if doc.Dim < 0 || doc.Dim > region.MaxRank {
		return nil, fmt.Errorf("%w: %d", region.ErrUnsupportedDimension, doc.Dim)
	}
	return &doc, nil
}

// boxes converts corner pairs to boxes of the document's dimension.
func (d *document) boxes(pairs [][][]int64) ([]region.DBox[int64], error) {
	out := make([]region.DBox[int64], 0, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("box %d: want [lower, upper], got %d corners", i, len(pair))
		}
		b, err := region.MakeDBox(d.Dim, pair[0], pair[1])
		if err != nil {
			return nil, fmt.Errorf("box %d: %w", i, err)
		}
		out = append(out, b)
	}
	return out, nil
}

// toRegion builds a region from possibly overlapping boxes.
func (d *document) toRegion(pairs [][][]int64) (region.DRegion[int64], error) {
	boxes, err := d.boxes(pairs)
	if err != nil {
		return region.DRegion[int64]{}, err
	}
	r, err := region.EmptyDRegion[int64](d.Dim)
	if err != nil {
		return r, err
	}
	for _, b := range boxes {
		r = r.Union(b.Region())
	}
	return r, nil
}

func (d *document) regions() (a, b region.DRegion[int64], err error) {
	if a, err = d.toRegion(d.A); err != nil {
		return a, b, fmt.Errorf("a: %w", err)
	}
	if b, err = d.toRegion(d.B); err != nil {
		return a, b, fmt.Errorf("b: %w", err)
	}
	return a, b, nil
}
