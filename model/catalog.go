package model

// Catalog is the fixed set of categories and resources users can offer.
type Catalog struct {
	Categories []CatalogCategory `yaml:"categories" json:"categories" validate:"required,min=1,dive"`
}

type CatalogCategory struct {
	Name      string            `yaml:"name" json:"name" validate:"required"`
	Resources []CatalogResource `yaml:"resources" json:"resources" validate:"required,min=1,dive"`
}

type CatalogResource struct {
	Name string `yaml:"name" json:"name" validate:"required"`
	Unit string `yaml:"unit" json:"unit,omitempty"`
}

func (c *Catalog) CategoryNames() []string {
	names := make([]string, 0, len(c.Categories))
	for _, category := range c.Categories {
		names = append(names, category.Name)
	}
	return names
}

// Category returns the category with the exact name, or nil.
func (c *Catalog) Category(name string) *CatalogCategory {
	for i := range c.Categories {
		if c.Categories[i].Name == name {
			return &c.Categories[i]
		}
	}
	return nil
}

func (c *CatalogCategory) ResourceNames() []string {
	names := make([]string, 0, len(c.Resources))
	for _, resource := range c.Resources {
		names = append(names, resource.Name)
	}
	return names
}

func (c *CatalogCategory) HasResource(name string) bool {
	for _, resource := range c.Resources {
		if resource.Name == name {
			return true
		}
	}
	return false
}
