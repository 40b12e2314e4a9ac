package catalog

import "errors"

var (
	// ErrNotFound is returned by lookups that miss.
	ErrNotFound = errors.New("catalog: not found")
	// ErrUnsupportedSource is returned by ParseSource for unknown schemes.
	ErrUnsupportedSource = errors.New("catalog: unsupported source")
)

// Pricing describes the commercial terms of a tool.
type Pricing struct {
	StartingPrice string `json:"startingPrice" yaml:"startingPrice" firestore:"startingPrice"`
	PricingType   string `json:"pricingType" yaml:"pricingType" firestore:"pricingType"`
	HasFree       bool   `json:"hasFree" yaml:"hasFree" firestore:"hasFree"`
	HasFreeTrial  bool   `json:"hasFreeTrial" yaml:"hasFreeTrial" firestore:"hasFreeTrial"`
}

// Tool is one directory listing. Category holds the category name, not its id.
type Tool struct {
	ID              string   `json:"id" yaml:"id" firestore:"id"`
	Name            string   `json:"name" yaml:"name" firestore:"name"`
	Description     string   `json:"description" yaml:"description" firestore:"description"`
	LongDescription string   `json:"longDescription" yaml:"longDescription" firestore:"longDescription"`
	Category        string   `json:"category" yaml:"category" firestore:"category"`
	Tags            []string `json:"tags" yaml:"tags" firestore:"tags"`
	Developer       string   `json:"developer" yaml:"developer" firestore:"developer"`
	URL             string   `json:"url" yaml:"url" firestore:"url"`
	Rating          float64  `json:"rating" yaml:"rating" firestore:"rating"`
	ReviewCount     int      `json:"reviewCount" yaml:"reviewCount" firestore:"reviewCount"`
	IsPopular       bool     `json:"isPopular" yaml:"isPopular" firestore:"isPopular"`
	IsNew           bool     `json:"isNew" yaml:"isNew" firestore:"isNew"`
	Screenshots     []string `json:"screenshots" yaml:"screenshots" firestore:"screenshots"`
	Pricing         Pricing  `json:"pricing" yaml:"pricing" firestore:"pricing"`
	Features        []string `json:"features" yaml:"features" firestore:"features"`
	UseCases        []string `json:"useCases" yaml:"useCases" firestore:"useCases"`
}

// Category groups tools. Name is the join key used by Tool.Category.
type Category struct {
	ID          string `json:"id" yaml:"id" firestore:"id"`
	Name        string `json:"name" yaml:"name" firestore:"name"`
	Description string `json:"description" yaml:"description" firestore:"description"`
	Icon        string `json:"icon" yaml:"icon" firestore:"icon"`
}

// Catalog is the whole document. Values are treated as read-only once loaded.
type Catalog struct {
	Tools      []Tool     `json:"tools" yaml:"tools"`
	Categories []Category `json:"categories" yaml:"categories"`
}

// Empty returns the catalog substituted when loading fails.
func Empty() Catalog {
	return Catalog{Tools: []Tool{}, Categories: []Category{}}
}

// IsEmpty reports whether the catalog holds neither tools nor categories.
func (c Catalog) IsEmpty() bool {
	return len(c.Tools) == 0 && len(c.Categories) == 0
}

// ToolByID returns the tool with the given id.
func (c Catalog) ToolByID(id string) (Tool, error) {
	for _, t := range c.Tools {
		if t.ID == id {
			return t, nil
		}
	}
	return Tool{}, ErrNotFound
}

// CategoryByID returns the category with the given id.
func (c Catalog) CategoryByID(id string) (Category, error) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, nil
		}
	}
	return Category{}, ErrNotFound
}

// CategoryByName returns the category whose name equals name exactly.
func (c Catalog) CategoryByName(name string) (Category, error) {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat, nil
		}
	}
	return Category{}, ErrNotFound
}

// normalize replaces nil slices so renderers never see nil.
func (c Catalog) normalize() Catalog {
	if c.Tools == nil {
		c.Tools = []Tool{}
	}
	if c.Categories == nil {
		c.Categories = []Category{}
	}
	for i := range c.Tools {
		t := &c.Tools[i]
		if t.Tags == nil {
			t.Tags = []string{}
		}
		if t.Screenshots == nil {
			t.Screenshots = []string{}
		}
		if t.Features == nil {
			t.Features = []string{}
		}
		if t.UseCases == nil {
			t.UseCases = []string{}
		}
	}
	return c
}
