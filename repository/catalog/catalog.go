package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/muhammadheryan/resource-matcher/model"
	validatorx "github.com/muhammadheryan/resource-matcher/utils/validator"
	"gopkg.in/yaml.v3"
)

// CatalogRepository loads the category/resource catalog. The catalog is
// read once at startup and treated as immutable afterwards.
type CatalogRepository interface {
	Load(ctx context.Context) (*model.Catalog, error)
}

type File struct {
	FilePath string
}

func NewFileCatalog(filePath string) CatalogRepository {
	return &File{FilePath: filePath}
}

func (f *File) Load(ctx context.Context) (*model.Catalog, error) {
	data, err := os.ReadFile(f.FilePath)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a YAML catalog and checks it is usable: at least one
// category, no empty or duplicate names.
func Parse(data []byte) (*model.Catalog, error) {
	var c model.Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := validatorx.ValidateStruct(&c); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	categories := make(map[string]bool, len(c.Categories))
	for _, category := range c.Categories {
		if categories[category.Name] {
			return nil, fmt.Errorf("invalid catalog: duplicate category %q", category.Name)
		}
		categories[category.Name] = true

		resources := make(map[string]bool, len(category.Resources))
		for _, resource := range category.Resources {
			if resources[resource.Name] {
				return nil, fmt.Errorf("invalid catalog: duplicate resource %q in %q", resource.Name, category.Name)
			}
			resources[resource.Name] = true
		}
	}
	return &c, nil
}
