package synth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

type Generator func(*Context) any

var firstNames = []string{"John", "Jane", "Alice", "Bob", "Charlie", "Diana", "Eve", "Frank", "Grace", "Henry", "Maria", "Luis", "Sofia", "Carlos", "Ana"}
var lastNames = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez", "Lopez", "Gonzalez", "Perez", "Torres"}
var companySuffixes = []string{"Corp", "Ltd", "Group", "Partners", "Holdings", "Labs", "Industries"}
var genericWords = []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta", "sigma", "omega"}
var sentences = []string{
	"This is a sample text generated for testing purposes.",
	"Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
	"The quick brown fox jumps over the lazy dog.",
	"Generated record for demo and validation use.",
	"Synthetic content, not derived from real data.",
}

func (c *Context) firstName() string { return c.choice(firstNames) }
func (c *Context) lastName() string  { return c.choice(lastNames) }

func (c *Context) fullName() string {
	return c.firstName() + " " + c.lastName()
}

func (c *Context) companyName() string {
	return c.choice(genericWords) + " " + c.choice(companySuffixes)
}

func (c *Context) word() string { return c.choice(genericWords) }

func (c *Context) sentence() string { return c.choice(sentences) }

func (c *Context) email(domain string) string {
	return fmt.Sprintf("user%d_%d@%s", c.nextCounter(), c.randInt(0, 99999), domain)
}

func shortHash(seed string) string {
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])[:16]
}

// registry maps exact field names to generators. Field names not found here
// fall through to the suffix and keyword rules in rules.go.
var registry = map[string]Generator{
	// identifiers
	"id":            func(c *Context) any { return c.randInt(1, 10_000_000) },
	"employee_id":   func(c *Context) any { return c.randInt(10000, 99999) },
	"customer_id":   func(c *Context) any { return c.randInt(100000, 999999) },
	"transaction_id": func(c *Context) any { return c.randInt(1000000, 9999999) },
	"ticket_id":     func(c *Context) any { return c.randInt(100000, 999999) },
	"account_id":    func(c *Context) any { return c.randInt(100000, 999999) },
	"loan_id":       func(c *Context) any { return c.randInt(1000000, 9999999) },
	"cashier_id":    func(c *Context) any { return c.randInt(1000, 9999) },
	"patient_id":    func(c *Context) any { return c.randInt(100000, 999999) },
	"provider_id":   func(c *Context) any { return c.randInt(10000, 99999) },
	"policy_id":     func(c *Context) any { return fmt.Sprintf("POL%d", c.randInt(1000, 9999)) },
	"sku":           func(c *Context) any { return fmt.Sprintf("SKU%d", c.randInt(10000, 99999)) },
	"ean_upc":       func(c *Context) any { return fmt.Sprintf("%d", c.randInt(100000000, 999999999)) },

	// people
	"first_name":             func(c *Context) any { return c.firstName() },
	"last_name":              func(c *Context) any { return c.lastName() },
	"full_name":              func(c *Context) any { return c.fullName() },
	"owner_name":             func(c *Context) any { return c.fullName() },
	"customer_name":          func(c *Context) any { return c.fullName() },
	"emergency_contact_name": func(c *Context) any { return c.fullName() },
	"email":                  func(c *Context) any { return c.email("example.com") },
	"email_corp":             func(c *Context) any { return c.email("company.com") },
	"email_personal":         func(c *Context) any { return c.email("mail.com") },
	"gender":                 func(c *Context) any { return c.choice([]string{"F", "M", "X"}) },
	"birth_date":             func(c *Context) any { return c.randDate(18250) },
	"marital_status":         func(c *Context) any { return c.choice([]string{"Single", "Married", "Divorced", "Widowed"}) },

	// geography, locale-aware
	"city":           func(c *Context) any { return c.cityName() },
	"city_name":      func(c *Context) any { return c.cityName() },
	"state":          func(c *Context) any { return c.province() },
	"province":       func(c *Context) any { return c.province() },
	"state_province": func(c *Context) any { return c.province() },
	"country":        func(c *Context) any { return c.country() },
	"country_name":   func(c *Context) any { return c.country() },
	"address":        func(c *Context) any { return c.address() },
	"street_address": func(c *Context) any { return c.address() },
	"postal_code":    func(c *Context) any { return c.postalCode() },
	"zip_code":       func(c *Context) any { return c.postalCode() },
	"currency_code":  func(c *Context) any { return c.currencyCode() },
	"phone":          func(c *Context) any { return c.phone() },
	"phone_number":   func(c *Context) any { return c.phone() },
	"contact_phone":  func(c *Context) any { return c.phone() },

	// HR
	"job_title":            func(c *Context) any { return c.choice([]string{"Analyst", "Manager", "Director", "Specialist", "Coordinator"}) },
	"job_family":           func(c *Context) any { return c.choice([]string{"Engineering", "Sales", "Marketing", "HR", "Finance"}) },
	"job_level":            func(c *Context) any { return c.choice([]string{"Junior", "Mid", "Senior", "Lead", "Principal"}) },
	"grade":                func(c *Context) any { return c.choice([]string{"A", "B", "C", "D", "E"}) },
	"salary_base_annual":   func(c *Context) any { return c.randFloat(30000, 150000, 2) },
	"org_unit_name":        func(c *Context) any { return c.choice([]string{"Engineering", "Sales", "Marketing", "HR", "Finance", "Operations"}) },
	"manager_employee_id":  func(c *Context) any { return c.randInt(10000, 99999) },
	"parent_org_unit_id":   func(c *Context) any { return c.randInt(100, 999) },
	"headcount_date":       func(c *Context) any { return c.randDate(365) },
	"hire_date":            func(c *Context) any { return c.randDate(3650) },
	"termination_reason":   func(c *Context) any { return c.choice([]string{"Resignation", "Layoff", "Performance", "Retirement"}) },
	"voluntary_flag":       func(c *Context) any { return c.randBool() },
	"active_flag":          func(c *Context) any { return c.randBool() },
	"hours_overtime":       func(c *Context) any { return c.randFloat(0, 20, 2) },
	"overtime_rate":        func(c *Context) any { return c.randFloat(1.5, 2.0, 2) },
	"pto_type":             func(c *Context) any { return c.choice([]string{"Vacation", "Sick", "Personal", "Holiday"}) },
	"hours_pto":            func(c *Context) any { return c.randFloat(1, 8, 2) },
	"approval_status":      func(c *Context) any { return c.choice([]string{"Approved", "Pending", "Rejected"}) },
	"employment_status":    func(c *Context) any { return c.choice([]string{"Full-time", "Part-time", "Contract", "Intern"}) },

	// retail / microbusiness
	"product_name":          func(c *Context) any { return c.word() },
	"category":              func(c *Context) any { return c.choice([]string{"Electronics", "Clothing", "Food", "Books", "Home"}) },
	"brand":                 func(c *Context) any { return c.companyName() },
	"unit_size":             func(c *Context) any { return fmt.Sprintf("%d%s", c.randInt(1, 1000), c.choice([]string{"ml", "g", "kg", "L", "units"})) },
	"uom":                   func(c *Context) any { return c.choice([]string{"each", "kg", "liter", "box", "pack"}) },
	"list_price":            func(c *Context) any { return c.randFloat(5, 500, 2) },
	"cost_unit":             func(c *Context) any { return c.randFloat(1, 250, 2) },
	"unit_price":            func(c *Context) any { return c.randFloat(1, 500, 2) },
	"unit_cost":             func(c *Context) any { return c.randFloat(1, 250, 2) },
	"supplier_name":         func(c *Context) any { return c.companyName() },
	"credit_terms_days":     func(c *Context) any { return c.randInt(15, 90) },
	"lead_time_days":        func(c *Context) any { return c.randInt(1, 30) },
	"store_name":            func(c *Context) any { return c.cityName() + " Store" },
	"store_type":            func(c *Context) any { return c.choice([]string{"Convenience", "Grocery", "Specialty", "Department"}) },
	"loyalty_points":        func(c *Context) any { return c.randInt(0, 10000) },
	"loyalty_tier":          func(c *Context) any { return c.choice([]string{"Bronze", "Silver", "Gold", "Platinum"}) },
	"loyalty_points_balance": func(c *Context) any { return c.randInt(0, 50000) },
	"registration_date":     func(c *Context) any { return c.randDate(1000) },
	"opening_date":          func(c *Context) any { return c.randDate(2000) },
	"line_total":            func(c *Context) any { return c.randFloat(1, 1000, 2) },
	"payment_method":        func(c *Context) any { return c.choice([]string{"Cash", "Credit", "Debit", "Mobile"}) },
	"tax_amount":            func(c *Context) any { return c.randFloat(0, 50, 2) },
	"discount_amount":       func(c *Context) any { return c.randFloat(0, 100, 2) },
	"void_reason":           func(c *Context) any { return c.choice([]string{"Customer Request", "Wrong Item", "Price Error"}) },
	"return_reason":         func(c *Context) any { return c.choice([]string{"Defective", "Wrong Size", "Customer Change"}) },
	"shift_type":            func(c *Context) any { return c.choice([]string{"Morning", "Afternoon", "Night"}) },
	"qty":                   func(c *Context) any { return c.randInt(1, 20) },
	"quantity_on_hand":      func(c *Context) any { return c.randInt(0, 500) },
	"reorder_level":         func(c *Context) any { return c.randInt(5, 50) },
	"batch_size":            func(c *Context) any { return c.randInt(10, 200) },
	"production_date":       func(c *Context) any { return c.randDate(90) },
	"expiry_date":           func(c *Context) any { return c.randDate(30) },
	"ingredient_name":       func(c *Context) any { return c.choice([]string{"Flour", "Sugar", "Butter", "Yeast", "Salt", "Milk", "Eggs", "Cocoa", "Vanilla", "Honey"}) },
	"shelf_life_days":       func(c *Context) any { return c.randInt(1, 30) },

	// healthcare
	"provider_name":   func(c *Context) any { return c.companyName() },
	"procedure_name":  func(c *Context) any { return c.choice([]string{"Consultation", "X-Ray", "Blood Panel", "Vaccination", "Physical Therapy"}) },
	"diagnosis_name":  func(c *Context) any { return c.choice([]string{"Hypertension", "Diabetes Type 2", "Influenza", "Migraine", "Asthma"}) },
	"diagnosis_code":  func(c *Context) any { return fmt.Sprintf("ICD-%d.%d", c.randInt(10, 99), c.randInt(0, 9)) },
	"visit_name":      func(c *Context) any { return fmt.Sprintf("Visit %d", c.randInt(1, 20)) },
	"test_name":       func(c *Context) any { return c.choice([]string{"Blood Count", "Glucose", "Cholesterol", "Creatinine", "Urea"}) },
	"result_value":    func(c *Context) any { return c.randFloat(0.1, 300, 2) },
	"result_unit":     func(c *Context) any { return c.choice([]string{"mg/dL", "mmol/L", "g/L", "%", "U/L"}) },
	"blood_type":      func(c *Context) any { return c.choice([]string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}) },
	"coverage_limit":  func(c *Context) any { return c.randFloat(10000, 1000000, 2) },
	"deductible":      func(c *Context) any { return c.randFloat(500, 5000, 2) },
	"premium_amount":  func(c *Context) any { return c.randFloat(100, 2000, 2) },
	"claim_amount":    func(c *Context) any { return c.randFloat(100, 50000, 2) },
	"approval_amount": func(c *Context) any { return c.randFloat(100, 45000, 2) },

	// finance
	"outstanding_balance": func(c *Context) any { return c.randFloat(0, 10000, 2) },
	"credit_limit":        func(c *Context) any { return c.randFloat(1000, 50000, 2) },
	"interest_rate":       func(c *Context) any { return c.randFloat(0.01, 0.25, 4) },
	"transaction_amount":  func(c *Context) any { return c.randFloat(1, 10000, 2) },
	"fee_amount":          func(c *Context) any { return c.randFloat(0, 100, 2) },
	"account_type":        func(c *Context) any { return c.choice([]string{"Checking", "Savings", "Credit", "Investment"}) },
	"account_status":      func(c *Context) any { return c.choice([]string{"Open", "Closed", "Frozen", "Dormant"}) },
	"credit_score":        func(c *Context) any { return c.randInt(300, 850) },
	"transaction_category": func(c *Context) any { return c.choice([]string{"Groceries", "Utilities", "Travel", "Dining", "Transfer"}) },
	"merchant_name":       func(c *Context) any { return c.companyName() },
	"branch_name":         func(c *Context) any { return c.cityName() + " Branch" },

	// product lines, channels
	"product_line": func(c *Context) any { return c.word() },
	"channel_name": func(c *Context) any { return c.word() },
	"site_name":    func(c *Context) any { return c.word() },

	// metadata envelope fields that carry their own semantics
	"pii_sensitivity":   func(c *Context) any { return c.choice([]string{"PUBLIC", "INTERNAL", "CONFIDENTIAL", "RESTRICTED"}) },
	"source_system":     func(c *Context) any { return fmt.Sprintf("SYS_%s", c.choice([]string{"PROD", "STG", "DEV"})) },
	"geo_region":        func(c *Context) any { return c.choice([]string{"North", "South", "East", "West", "Central"}) },
	"geo_lat":           func(c *Context) any { return c.randFloat(-90, 90, 6) },
	"geo_lon":           func(c *Context) any { return c.randFloat(-180, 180, 6) },
	"fx_rate_to_usd":    func(c *Context) any { return c.randFloat(0.5, 2.0, 4) },
	"notes":             func(c *Context) any { return c.sentence() },
	"valid_from_utc":    func(c *Context) any { return c.randDate(1000) },
	"created_at_utc":    func(c *Context) any { return c.randDate(800) },
	"description":       func(c *Context) any { return c.sentence() },
	"title":             func(c *Context) any { return c.choice([]string{"Getting Started", "Quarterly Review", "Operations Summary", "Performance Report"}) },
	"url":               func(c *Context) any { return fmt.Sprintf("https://example.com/page/%d", c.randInt(0, 999)) },
}
