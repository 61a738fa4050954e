package synth

import (
	"fmt"
	"strings"
)

// A rule pairs a matcher with a generator. Resolve evaluates the chain in
// order and the first match wins; the final rule always matches, so no field
// is ever left empty by an unmapped name.
type rule struct {
	name  string
	match func(c *Context, field string) bool
	gen   func(c *Context, field string) any
}

// tableOverrides resolve a handful of generic fields differently depending on
// a substring of the current table name, keeping themed tables coherent.
var tableOverrides = map[string]map[string][]string{
	"product_name": {
		"bakery": {
			"Sourdough Loaf", "Croissant", "Baguette", "Whole Wheat Bread", "Chocolate Cake",
			"Cinnamon Roll", "Oat Cookies", "Blueberry Muffin", "Sweet Bread", "Brioche",
			"Rye Bread", "Tres Leches Cake", "Cupcake", "French Bread", "Glazed Donut",
		},
		"hardware": {
			"Self-Tapping Screws", "Electric Cable", "PVC Pipe", "Hammer", "Screwdriver",
			"Latex Paint", "Contact Cement", "Sandpaper", "Padlock", "Hinges",
			"Light Switch", "Adjustable Wrench", "Garden Hose", "Power Drill", "Nails",
		},
		"soap": {
			"Lavender Soap", "Rose Soap", "Honey Soap", "Oatmeal Soap", "Artisan Soap",
			"Coconut Soap", "Exfoliating Soap", "Moisturizing Soap", "Charcoal Soap", "Green Tea Soap",
		},
	},
	"test_name": {
		"lab": {
			"Complete Blood Count", "Glucose", "Total Cholesterol", "Creatinine", "Urea",
			"Triglycerides", "TSH", "PSA", "Urinalysis", "Lipid Panel", "HbA1c", "Vitamin D",
		},
	},
	"equipment_name": {
		"lab": {
			"Hematology Analyzer", "Microscope", "Centrifuge", "Incubator",
			"Spectrophotometer", "Chemistry Analyzer", "Cell Counter",
		},
	},
	"equipment_required": {
		"bakery":   {"Basic Oven", "Mixer", "Special Molds", "Decorating Kit", "Deck Oven"},
		"hardware": {"Basic Tools", "Specialized Equipment", "Heavy Machinery", "Measuring Instruments"},
		"lab":      {"Analyzer", "Microscope", "Centrifuge", "Incubator", "Spectrophotometer"},
		"soap":     {"Mixer", "Molds", "Kettle", "Press", "Curing Rack"},
	},
}

func tableOverrideFor(c *Context, field string) []string {
	byTheme, ok := tableOverrides[field]
	if !ok || c.Table == "" {
		return nil
	}
	for theme, opts := range byTheme {
		if strings.Contains(c.Table, theme) {
			return opts
		}
	}
	return nil
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// chain is the full resolution order. It is data, not control flow: the order
// of this slice is the contract.
var chain = []rule{
	{
		name:  "table-context",
		match: func(c *Context, f string) bool { return tableOverrideFor(c, f) != nil },
		gen:   func(c *Context, f string) any { return c.choice(tableOverrideFor(c, f)) },
	},
	{
		name:  "exact",
		match: func(c *Context, f string) bool { _, ok := registry[f]; return ok },
		gen:   func(c *Context, f string) any { return registry[f](c) },
	},
	{
		name:  "suffix-id-hash",
		match: func(c *Context, f string) bool { return strings.HasSuffix(f, "_id_hash") },
		gen:   func(c *Context, f string) any { return shortHash(fmt.Sprintf("%s:%d", f, c.randInt(1, 10_000_000))) },
	},
	{
		name:  "suffix-id",
		match: func(c *Context, f string) bool { return strings.HasSuffix(f, "_id") },
		gen:   func(c *Context, f string) any { return c.randInt(1, 10_000_000) },
	},
	{
		name:  "suffix-code",
		match: func(c *Context, f string) bool { return strings.HasSuffix(f, "_code") },
		gen:   func(c *Context, f string) any { return fmt.Sprintf("C%d", c.randInt(100, 999)) },
	},
	{
		name:  "suffix-number",
		match: func(c *Context, f string) bool { return strings.HasSuffix(f, "_number") },
		gen:   func(c *Context, f string) any { return fmt.Sprintf("N%d", c.randInt(1000, 9999)) },
	},
	{
		name:  "keyword-date",
		match: func(c *Context, f string) bool { return containsAny(f, "date", "time", "timestamp") },
		gen:   func(c *Context, f string) any { return c.randDate(365) },
	},
	{
		name:  "keyword-money",
		match: func(c *Context, f string) bool { return containsAny(f, "price", "cost", "amount", "total", "balance", "salary") },
		gen:   func(c *Context, f string) any { return c.randFloat(1, 1000, 2) },
	},
	{
		name:  "keyword-quantity",
		match: func(c *Context, f string) bool { return containsAny(f, "quantity", "qty", "count", "hours", "days", "points") },
		gen:   func(c *Context, f string) any { return c.randInt(1, 100) },
	},
	{
		name:  "keyword-name",
		match: func(c *Context, f string) bool { return containsAny(f, "name", "title", "description") },
		gen:   func(c *Context, f string) any { return "Generic " + f },
	},
	{
		name:  "keyword-flag",
		match: func(c *Context, f string) bool { return containsAny(f, "flag", "active", "enabled", "voluntary") },
		gen:   func(c *Context, f string) any { return c.randBool() },
	},
	{
		name:  "keyword-category",
		match: func(c *Context, f string) bool { return containsAny(f, "status", "type", "category", "method", "reason") },
		gen:   func(c *Context, f string) any { return c.choice([]string{"Active", "Pending", "Closed", "Type_A", "Category_1"}) },
	},
	{
		name:  "keyword-email",
		match: func(c *Context, f string) bool { return strings.Contains(f, "email") },
		gen:   func(c *Context, f string) any { return c.email("company.com") },
	},
	{
		name:  "keyword-phone",
		match: func(c *Context, f string) bool { return strings.Contains(f, "phone") },
		gen:   func(c *Context, f string) any { return c.phone() },
	},
	{
		name:  "fallback",
		match: func(c *Context, f string) bool { return true },
		gen:   func(c *Context, f string) any { return fmt.Sprintf("value_%d", c.randInt(1, 9999)) },
	},
}

// Resolve maps a field name to a value by walking the rule chain.
func Resolve(c *Context, field string) any {
	lower := strings.ToLower(field)
	for _, r := range chain {
		if r.match(c, lower) {
			return r.gen(c, lower)
		}
	}
	// unreachable: the fallback rule always matches
	return nil
}

// GenerateRow synthesizes one value per declared field, independently.
func GenerateRow(c *Context, fields []string) map[string]any {
	row := make(map[string]any, len(fields))
	for _, f := range fields {
		row[f] = Resolve(c, f)
	}
	return row
}
