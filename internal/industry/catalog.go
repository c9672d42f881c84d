// Package industry infers a coarse industry label for a company from its name
// and email domain using weighted keyword matching.
package industry

// General is the label used when no category scores at least one point.
const General = "general"

// Category is one industry with its keyword indicators. Domains holds
// top-level-domain suffixes that count as a strong signal for the category.
type Category struct {
	Name     string
	Keywords []string
	Domains  []string
}

// Catalog is the ordered set of categories. Order breaks ties.
type Catalog struct {
	Categories []Category
}

// Labels returns the category names in catalog order followed by General.
func (c *Catalog) Labels() []string {
	out := make([]string, 0, len(c.Categories)+1)
	for _, cat := range c.Categories {
		out = append(out, cat.Name)
	}
	return append(out, General)
}

// DefaultCatalog returns the built-in ten-category catalog.
func DefaultCatalog() *Catalog {
	return &Catalog{Categories: []Category{
		{
			Name: "technology",
			Keywords: []string{
				"tech", "software", "app", "digital", "data", "cloud", "ai", "ml",
				"startup", "saas", "platform", "dev", "code", "cyber", "analytics",
				"innovation", "solutions", "systems", "technologies", "computing",
			},
			Domains: []string{".io", ".ly", ".co", ".dev", ".app", ".tech", ".ai"},
		},
		{
			Name: "healthcare",
			Keywords: []string{
				"health", "medical", "med", "pharma", "bio", "clinic", "hospital", "care",
				"wellness", "medicine", "therapeutic", "diagnostics", "device",
				"pharmaceutical", "biotech", "medtech", "healthcare",
			},
		},
		{
			Name: "finance",
			Keywords: []string{
				"bank", "finance", "capital", "invest", "fund", "credit", "loan",
				"insurance", "wealth", "financial", "asset", "trading", "fintech",
				"payment", "money", "fiscal", "equity", "securities",
			},
		},
		{
			Name: "manufacturing",
			Keywords: []string{
				"manufacturing", "industrial", "factory", "production", "assembly",
				"automotive", "aerospace", "chemical", "materials", "machinery",
				"equipment", "tools", "engineering", "fabrication", "supply",
			},
		},
		{
			Name: "retail",
			Keywords: []string{
				"retail", "store", "shop", "market", "commerce", "ecommerce", "sales",
				"fashion", "clothing", "apparel", "consumer", "brand", "merchandise",
				"outlet", "marketplace", "shopping",
			},
		},
		{
			Name: "consulting",
			Keywords: []string{
				"consulting", "advisory", "services", "consultant", "strategy",
				"management", "business", "professional", "expertise", "guidance",
				"optimization", "transformation", "improvement",
			},
		},
		{
			Name: "education",
			Keywords: []string{
				"education", "school", "university", "college", "academy", "learning",
				"training", "institute", "educational", "academic", "student",
			},
		},
		{
			Name: "real_estate",
			Keywords: []string{
				"real estate", "property", "realty", "housing", "construction",
				"development", "building", "architecture", "land",
			},
		},
		{
			Name: "energy",
			Keywords: []string{
				"energy", "oil", "gas", "renewable", "solar", "wind", "electric",
				"power", "utility", "petroleum", "utilities",
			},
		},
		{
			Name: "media",
			Keywords: []string{
				"media", "marketing", "advertising", "communications", "pr", "creative",
				"agency", "branding", "design", "content", "publishing", "broadcast",
			},
		},
	}}
}
