package pricing

import (
	"context"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tvarnsen/indyplan/internal/domain"
	"github.com/tvarnsen/indyplan/internal/logger"
)

// NameLookup resolves item display names. Satisfied by catalog.Lookup.
type NameLookup interface {
	GetItemName(ctx context.Context, itemID domain.ItemID) (string, error)
}

// Reporter prices a flattened material aggregate and compares it to the
// product's market value. Implements industry.CostReporter.
type Reporter struct {
	prices  Provider
	names   NameLookup
	printer *message.Printer
}

// NewReporter creates a cost reporter.
func NewReporter(prices Provider, names NameLookup) *Reporter {
	return &Reporter{
		prices:  prices,
		names:   names,
		printer: message.NewPrinter(language.English),
	}
}

// Report builds a cost/profit report. A failed price fetch degrades to an
// all-zero report with every material listed as missing a price; materials
// the market does not know count as free.
func (r *Reporter) Report(ctx context.Context, materials domain.AggregateMaterials, product domain.RecipeProduct) (*domain.CostReport, error) {
	log := logger.FromContext(ctx)

	ids := make([]domain.ItemID, 0, len(materials)+1)
	for id := range materials {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	prices, err := r.prices.PricesFor(ctx, append(append([]domain.ItemID{}, ids...), product.OutputID))
	if err != nil {
		log.Warn("Price lookup failed, pricing report degrades to zero prices", "error", err)
		prices = domain.PriceMap{}
	}

	report := &domain.CostReport{Lines: make([]domain.CostLine, 0, len(ids))}
	for _, id := range ids {
		quantity := materials[id]
		unitPrice, known := prices[id]
		if !known {
			report.MissingPrices = append(report.MissingPrices, id)
		}
		subtotal := unitPrice * float64(quantity)
		report.TotalCost += subtotal
		report.Lines = append(report.Lines, domain.CostLine{
			MaterialID: id,
			Name:       r.itemName(ctx, id),
			Quantity:   quantity,
			UnitPrice:  unitPrice,
			Subtotal:   subtotal,
		})
	}

	report.Revenue = prices.Price(product.OutputID) * float64(product.OutputQuantity)
	report.Profit = report.Revenue - report.TotalCost
	if report.TotalCost > 0 {
		report.MarginPercent = report.Profit / report.TotalCost * 100
	}

	report.Display = r.printer.Sprintf("cost %.2f ISK, revenue %.2f ISK, profit %.2f ISK",
		report.TotalCost, report.Revenue, report.Profit)
	return report, nil
}

func (r *Reporter) itemName(ctx context.Context, id domain.ItemID) string {
	if r.names == nil {
		return ""
	}
	name, err := r.names.GetItemName(ctx, id)
	if err != nil {
		return ""
	}
	return name
}
