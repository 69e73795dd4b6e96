package entity

import (
	"ledger/internal/errors"
)

// Category is an expense category. The set is closed: every expense carries
// exactly one of the values below. Categories serialize using their display
// label (e.g. "Dining Out"), not the internal symbol.
type Category string

const (
	CategoryGroceries       Category = "GROCERIES"
	CategoryRent            Category = "RENT"
	CategoryUtilities       Category = "UTILITIES"
	CategoryTransportation  Category = "TRANSPORTATION"
	CategoryInsurance       Category = "INSURANCE"
	CategoryMedical         Category = "MEDICAL"
	CategoryEntertainment   Category = "ENTERTAINMENT"
	CategoryDiningOut       Category = "DINING_OUT"
	CategoryEducation       Category = "EDUCATION"
	CategoryChildcare       Category = "CHILDCARE"
	CategoryKidsExpenses    Category = "KIDS_EXPENSES"
	CategoryClothing        Category = "CLOTHING"
	CategoryPersonalCare    Category = "PERSONAL_CARE"
	CategoryGifts           Category = "GIFTS"
	CategoryDonations       Category = "DONATIONS"
	CategorySubscriptions   Category = "SUBSCRIPTIONS"
	CategoryInternet        Category = "INTERNET"
	CategoryPhone           Category = "PHONE"
	CategoryHomeMaintenance Category = "HOME_MAINTENANCE"
	CategoryPets            Category = "PETS"
	CategoryTravel          Category = "TRAVEL"
	CategoryTaxes           Category = "TAXES"
	CategoryLoanPayments    Category = "LOAN_PAYMENTS"
	CategorySavings         Category = "SAVINGS"
	CategoryInvestments     Category = "INVESTMENTS"
	CategoryMisc            Category = "MISC"
)

// categoryLabels maps each internal symbol to its display label.
// Declaration order defines the order returned by Categories().
var categoryOrder = []Category{
	CategoryGroceries, CategoryRent, CategoryUtilities, CategoryTransportation,
	CategoryInsurance, CategoryMedical, CategoryEntertainment, CategoryDiningOut,
	CategoryEducation, CategoryChildcare, CategoryKidsExpenses, CategoryClothing,
	CategoryPersonalCare, CategoryGifts, CategoryDonations, CategorySubscriptions,
	CategoryInternet, CategoryPhone, CategoryHomeMaintenance, CategoryPets,
	CategoryTravel, CategoryTaxes, CategoryLoanPayments, CategorySavings,
	CategoryInvestments, CategoryMisc,
}

var categoryLabels = map[Category]string{
	CategoryGroceries:       "Groceries",
	CategoryRent:            "Rent",
	CategoryUtilities:       "Utilities",
	CategoryTransportation:  "Transportation",
	CategoryInsurance:       "Insurance",
	CategoryMedical:         "Medical",
	CategoryEntertainment:   "Entertainment",
	CategoryDiningOut:       "Dining Out",
	CategoryEducation:       "Education",
	CategoryChildcare:       "Childcare",
	CategoryKidsExpenses:    "Kids Expenses",
	CategoryClothing:        "Clothing",
	CategoryPersonalCare:    "Personal Care",
	CategoryGifts:           "Gifts",
	CategoryDonations:       "Donations",
	CategorySubscriptions:   "Subscriptions",
	CategoryInternet:        "Internet",
	CategoryPhone:           "Phone",
	CategoryHomeMaintenance: "Home Maintenance",
	CategoryPets:            "Pets",
	CategoryTravel:          "Travel",
	CategoryTaxes:           "Taxes",
	CategoryLoanPayments:    "Loan Payments",
	CategorySavings:         "Savings",
	CategoryInvestments:     "Investments",
	CategoryMisc:            "Misc",
}

// labelToCategory is the reverse index, accepting both the display label and
// the internal symbol so clients can send either form.
var labelToCategory = func() map[string]Category {
	m := make(map[string]Category, len(categoryLabels)*2)
	for cat, label := range categoryLabels {
		m[label] = cat
		m[string(cat)] = cat
	}

	return m
}()

// Categories returns all categories in declaration order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)

	return out
}

// CategoryLabels returns the display labels of all categories in declaration order.
func CategoryLabels() []string {
	out := make([]string, 0, len(categoryOrder))
	for _, cat := range categoryOrder {
		out = append(out, cat.Label())
	}

	return out
}

// ParseCategory resolves a display label or internal symbol to a Category.
func ParseCategory(s string) (Category, error) {
	if cat, ok := labelToCategory[s]; ok {
		return cat, nil
	}

	return "", errors.Errorf("unknown expense category %q", s)
}

// Label returns the display label for the category.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}

	return string(c)
}

// Valid reports whether the category is one of the closed set.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]

	return ok
}

// MarshalJSON serializes the category as its display label.
func (c Category) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.Label() + `"`), nil
}

// UnmarshalJSON parses a display label (or internal symbol) into a Category.
// Unknown values are rejected.
func (c *Category) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.Errorf("invalid category literal %s", string(data))
	}

	cat, err := ParseCategory(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*c = cat

	return nil
}
