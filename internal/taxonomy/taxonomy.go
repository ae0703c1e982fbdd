// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package taxonomy maps human-facing research fields to arXiv category codes.
// The mapping is read-only after construction; callers may share one
// Taxonomy across goroutines without coordination.
package taxonomy

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Field describes one research discipline: its display name, the ordered
// arXiv category codes it expands to, and the keyword set substituted when
// a search arrives with no keywords at all.
type Field struct {
	Name            string   `yaml:"name"`
	Codes           []string `yaml:"codes"`
	DefaultKeywords []string `yaml:"default_keywords,omitempty"`
}

// Taxonomy is an immutable field → category-code mapping.
type Taxonomy struct {
	fields []Field
	byName map[string]int
}

// New builds a Taxonomy from a field list and validates it: field names
// must be unique and non-empty, every field needs at least one code, and
// codes may not repeat within a field.
func New(fields []Field) (*Taxonomy, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("taxonomy has no fields")
	}

	byName := make(map[string]int, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("taxonomy field %d has an empty name", i)
		}
		if _, dup := byName[f.Name]; dup {
			return nil, fmt.Errorf("duplicate taxonomy field %q", f.Name)
		}
		if len(f.Codes) == 0 {
			return nil, fmt.Errorf("taxonomy field %q has no category codes", f.Name)
		}
		seen := make(map[string]bool, len(f.Codes))
		for _, c := range f.Codes {
			if c == "" {
				return nil, fmt.Errorf("taxonomy field %q has an empty category code", f.Name)
			}
			if seen[c] {
				return nil, fmt.Errorf("taxonomy field %q repeats category code %q", f.Name, c)
			}
			seen[c] = true
		}
		byName[f.Name] = i
	}

	return &Taxonomy{fields: fields, byName: byName}, nil
}

// LoadFile reads a taxonomy from a YAML file, for installations that want
// a different field layout than the built-in one.
func LoadFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading taxonomy file: %w", err)
	}
	var fields []Field
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("parsing taxonomy file %s: %w", path, err)
	}
	return New(fields)
}

// Has reports whether name is a known field.
func (t *Taxonomy) Has(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Codes returns a copy of the ordered category codes for the field, or
// false if the field is unknown.
func (t *Taxonomy) Codes(name string) ([]string, bool) {
	i, ok := t.byName[name]
	if !ok {
		return nil, false
	}
	codes := make([]string, len(t.fields[i].Codes))
	copy(codes, t.fields[i].Codes)
	return codes, true
}

// DefaultKeywords returns a copy of the field's default keyword set.
// Fields without one return nil.
func (t *Taxonomy) DefaultKeywords(name string) []string {
	i, ok := t.byName[name]
	if !ok || len(t.fields[i].DefaultKeywords) == 0 {
		return nil
	}
	kws := make([]string, len(t.fields[i].DefaultKeywords))
	copy(kws, t.fields[i].DefaultKeywords)
	return kws
}

// Fields returns the field names in declaration order.
func (t *Taxonomy) Fields() []string {
	names := make([]string, len(t.fields))
	for i, f := range t.fields {
		names[i] = f.Name
	}
	return names
}
