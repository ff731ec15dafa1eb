package domain

// CostLine is one priced material row of a cost report.
type CostLine struct {
	MaterialID ItemID  `json:"material_id"`
	Name       string  `json:"name,omitempty"`
	Quantity   int64   `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	Subtotal   float64 `json:"subtotal"`
}

// CostReport prices a flattened material aggregate against market prices and
// compares it to the product's revenue.
type CostReport struct {
	Lines         []CostLine `json:"lines"`
	TotalCost     float64    `json:"total_cost"`
	Revenue       float64    `json:"revenue"`
	Profit        float64    `json:"profit"`
	MarginPercent float64    `json:"margin_percent"`
	MissingPrices []ItemID   `json:"missing_prices,omitempty"`
	Display       string     `json:"display,omitempty"`
}
