package industry

// Characteristics describes how to address an industry in outreach.
type Characteristics struct {
	Tone        string   `json:"tone" yaml:"tone"`
	FocusAreas  []string `json:"focus_areas" yaml:"focus_areas"`
	PainPoints  []string `json:"pain_points" yaml:"pain_points"`
	ValueProps  []string `json:"value_props" yaml:"value_props"`
	Terminology []string `json:"terminology" yaml:"terminology"`
}

var characteristics = map[string]Characteristics{
	"technology": {
		Tone:        "innovative",
		FocusAreas:  []string{"scalability", "innovation", "digital transformation", "efficiency"},
		PainPoints:  []string{"rapid growth challenges", "technical scalability", "competitive advantage"},
		ValueProps:  []string{"cutting-edge solutions", "competitive edge", "future-ready technology"},
		Terminology: []string{"innovation", "disruption", "scalability", "optimization"},
	},
	"healthcare": {
		Tone:        "professional",
		FocusAreas:  []string{"patient outcomes", "compliance", "efficiency", "cost reduction"},
		PainPoints:  []string{"regulatory compliance", "patient care quality", "operational efficiency"},
		ValueProps:  []string{"improved outcomes", "compliance assurance", "cost-effective solutions"},
		Terminology: []string{"outcomes", "compliance", "quality", "efficiency"},
	},
	"finance": {
		Tone:        "formal",
		FocusAreas:  []string{"ROI", "security", "compliance", "risk management"},
		PainPoints:  []string{"regulatory requirements", "security concerns", "market volatility"},
		ValueProps:  []string{"measurable ROI", "enhanced security", "regulatory compliance"},
		Terminology: []string{"ROI", "security", "compliance", "risk mitigation"},
	},
	"manufacturing": {
		Tone:        "results_focused",
		FocusAreas:  []string{"operational efficiency", "cost reduction", "quality control", "supply chain"},
		PainPoints:  []string{"production costs", "supply chain disruptions", "quality consistency"},
		ValueProps:  []string{"cost savings", "operational excellence", "quality improvement"},
		Terminology: []string{"efficiency", "lean operations", "cost reduction", "optimization"},
	},
	"retail": {
		Tone:        "customer_focused",
		FocusAreas:  []string{"customer experience", "sales growth", "inventory management", "market reach"},
		PainPoints:  []string{"customer acquisition", "inventory optimization", "market competition"},
		ValueProps:  []string{"customer satisfaction", "sales increase", "market advantage"},
		Terminology: []string{"customer experience", "growth", "engagement", "conversion"},
	},
	"consulting": {
		Tone:        "strategic",
		FocusAreas:  []string{"client success", "expertise", "strategic advantage", "efficiency"},
		PainPoints:  []string{"client expectations", "competitive differentiation", "service delivery"},
		ValueProps:  []string{"strategic insights", "competitive advantage", "client success"},
		Terminology: []string{"strategy", "optimization", "transformation", "excellence"},
	},
	"education": {
		Tone:        "supportive",
		FocusAreas:  []string{"student outcomes", "efficiency", "engagement", "accessibility"},
		PainPoints:  []string{"budget constraints", "student engagement", "outcome measurement"},
		ValueProps:  []string{"improved outcomes", "cost-effective solutions", "enhanced engagement"},
		Terminology: []string{"outcomes", "engagement", "accessibility", "efficiency"},
	},
	"real_estate": {
		Tone:        "relationship_focused",
		FocusAreas:  []string{"client satisfaction", "market advantage", "efficiency", "growth"},
		PainPoints:  []string{"market competition", "client acquisition", "operational efficiency"},
		ValueProps:  []string{"competitive edge", "client satisfaction", "operational improvement"},
		Terminology: []string{"growth", "opportunity", "advantage", "success"},
	},
	"energy": {
		Tone:        "sustainability_focused",
		FocusAreas:  []string{"sustainability", "efficiency", "cost reduction", "innovation"},
		PainPoints:  []string{"regulatory changes", "sustainability requirements", "operational costs"},
		ValueProps:  []string{"sustainable solutions", "cost efficiency", "regulatory compliance"},
		Terminology: []string{"sustainability", "efficiency", "innovation", "optimization"},
	},
	"media": {
		Tone:        "creative",
		FocusAreas:  []string{"audience engagement", "brand growth", "creativity", "reach"},
		PainPoints:  []string{"audience acquisition", "content creation", "brand differentiation"},
		ValueProps:  []string{"enhanced engagement", "brand growth", "creative solutions"},
		Terminology: []string{"engagement", "creativity", "growth", "impact"},
	},
	General: {
		Tone:        "professional",
		FocusAreas:  []string{"business growth", "efficiency", "success", "optimization"},
		PainPoints:  []string{"operational challenges", "growth obstacles", "competitive pressure"},
		ValueProps:  []string{"business improvement", "operational excellence", "competitive advantage"},
		Terminology: []string{"growth", "success", "optimization", "excellence"},
	},
}

// CharacteristicsOf returns the outreach profile for an industry label.
// Unknown labels get the General profile.
func CharacteristicsOf(industry string) Characteristics {
	if c, ok := characteristics[industry]; ok {
		return c
	}
	return characteristics[General]
}
