package extract

// FieldStrategy is one zone-scoped extraction pass over the shared context.
// Strategies run in the fixed order returned by DefaultStrategies and mutate
// ctx.Invoice in place; field-not-found is never an error, every field has a
// documented default.
type FieldStrategy interface {
	Name() string
	Extract(ctx *Context)
}

// DefaultStrategies returns the four strategies in their required order:
// vendor identity, invoice details, line items, financial totals.
func DefaultStrategies() []FieldStrategy {
	return []FieldStrategy{
		VendorStrategy{},
		DetailsStrategy{},
		ItemsStrategy{},
		FinancialStrategy{},
	}
}
