// Package catalog holds the predefined open-data feed catalog: the five
// NBU statdirectory categories and their named datasets with fixed URLs.
// The catalog is embedded at build time and validated at load, so an
// invalid catalog fails startup rather than a user interaction.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"nbu-dashboard/internal/domain/entity"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Dataset is one predefined feed: a stable key for request routing, a
// display name, and the fixed upstream URL.
type Dataset struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Category groups datasets under one of the five predefined categories.
type Category struct {
	Key      string    `yaml:"key"`
	Name     string    `yaml:"name"`
	Datasets []Dataset `yaml:"datasets"`
}

// Catalog is the loaded, validated feed catalog. It is immutable after
// Load and safe for concurrent use.
type Catalog struct {
	categories []Category
	index      map[string]map[string]Dataset
}

// Load parses and validates the embedded catalog.
func Load() (*Catalog, error) {
	return parse(catalogYAML)
}

func parse(raw []byte) (*Catalog, error) {
	var doc struct {
		Categories []Category `yaml:"categories"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(doc.Categories) == 0 {
		return nil, fmt.Errorf("catalog: no categories defined")
	}

	index := make(map[string]map[string]Dataset, len(doc.Categories))
	for _, cat := range doc.Categories {
		if cat.Key == "" || cat.Name == "" {
			return nil, fmt.Errorf("catalog: category key and name are required")
		}
		if _, dup := index[cat.Key]; dup {
			return nil, fmt.Errorf("catalog: duplicate category key %q", cat.Key)
		}
		if len(cat.Datasets) == 0 {
			return nil, fmt.Errorf("catalog: category %q has no datasets", cat.Key)
		}
		byKey := make(map[string]Dataset, len(cat.Datasets))
		for _, ds := range cat.Datasets {
			if ds.Key == "" || ds.Name == "" {
				return nil, fmt.Errorf("catalog: dataset key and name are required in category %q", cat.Key)
			}
			if _, dup := byKey[ds.Key]; dup {
				return nil, fmt.Errorf("catalog: duplicate dataset key %q in category %q", ds.Key, cat.Key)
			}
			if err := entity.ValidateURL(ds.URL); err != nil {
				return nil, fmt.Errorf("catalog: dataset %q/%q: %w", cat.Key, ds.Key, err)
			}
			byKey[ds.Key] = ds
		}
		index[cat.Key] = byKey
	}

	return &Catalog{categories: doc.Categories, index: index}, nil
}

// Categories returns the categories in declaration order.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// Lookup resolves a category/dataset key pair to its catalog entry.
// Returns entity.ErrNotFound when either key is unknown.
func (c *Catalog) Lookup(categoryKey, datasetKey string) (Category, Dataset, error) {
	byKey, ok := c.index[categoryKey]
	if !ok {
		return Category{}, Dataset{}, fmt.Errorf("category %q: %w", categoryKey, entity.ErrNotFound)
	}
	ds, ok := byKey[datasetKey]
	if !ok {
		return Category{}, Dataset{}, fmt.Errorf("dataset %q/%q: %w", categoryKey, datasetKey, entity.ErrNotFound)
	}
	for _, cat := range c.categories {
		if cat.Key == categoryKey {
			return cat, ds, nil
		}
	}
	// index and categories are built together; unreachable
	return Category{}, Dataset{}, fmt.Errorf("category %q: %w", categoryKey, entity.ErrNotFound)
}

// DatasetCount returns the total number of predefined datasets.
func (c *Catalog) DatasetCount() int {
	n := 0
	for _, cat := range c.categories {
		n += len(cat.Datasets)
	}
	return n
}
