package valuation

// PurchaseYearSpan is how many purchase years the form offers.
const PurchaseYearSpan = 30

// Option is a selectable enumeration value with its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FormOptions are the choices a valuation form presents.
type FormOptions struct {
	Categories    []Option `json:"categories"`
	Conditions    []Option `json:"conditions"`
	BrandTiers    []Option `json:"brand_tiers"`
	PurchaseYears []int    `json:"purchase_years"`
}

// PurchaseYears returns the selectable purchase years, newest first.
func PurchaseYears(currentYear int) []int {
	years := make([]int, PurchaseYearSpan)
	for i := range years {
		years[i] = currentYear - i
	}
	return years
}

// Options builds the form choices for currentYear.
func Options(currentYear int) FormOptions {
	opts := FormOptions{PurchaseYears: PurchaseYears(currentYear)}
	for _, c := range Categories {
		opts.Categories = append(opts.Categories, Option{Value: string(c), Label: Label(string(c))})
	}
	for _, c := range Conditions {
		opts.Conditions = append(opts.Conditions, Option{Value: string(c), Label: Label(string(c))})
	}
	for _, b := range BrandTiers {
		opts.BrandTiers = append(opts.BrandTiers, Option{Value: string(b), Label: Label(string(b))})
	}
	return opts
}
