package extract

import (
	"strings"

	"github.com/joseph-ayodele/invoice-parser/constants"
	"github.com/joseph-ayodele/invoice-parser/internal/entity"
	"github.com/joseph-ayodele/invoice-parser/internal/layout"
	"github.com/joseph-ayodele/invoice-parser/internal/normalize"
)

// ItemsStrategy extracts the line-item table from the body zone: every row
// strictly between the table-header row and the first terminator row is a
// candidate. Quantity and tax rate are not parsed from table columns in this
// design; they default.
//
// Reads: body lines. Writes: Items.
type ItemsStrategy struct{}

func (ItemsStrategy) Name() string { return "items" }

func (s ItemsStrategy) Extract(ctx *Context) {
	body := ctx.ZoneLines(constants.ZoneBody)

	headerIdx := -1
	for i, ln := range body {
		if containsAny(normalize.Lower(ln.Text), constants.TableHeaderKeywords) {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return
	}

	footerIdx := len(body)
	for i := headerIdx + 1; i < len(body); i++ {
		if containsAny(normalize.Lower(body[i].Text), constants.TableFooterKeywords) {
			footerIdx = i
			break
		}
	}

	rows := body[headerIdx+1 : footerIdx]
	if len(rows) == 0 {
		return
	}
	anchors := layout.DetectColumns(body[headerIdx:footerIdx])

	var items []entity.LineItem
	tableRect := body[headerIdx].Rect
	for _, row := range rows {
		item, ok := parseItemRow(row, anchors)
		if !ok {
			continue
		}
		items = append(items, item)
		tableRect = tableRect.Union(row.Rect)
	}
	if len(items) == 0 {
		return
	}
	ctx.Invoice.Items = items
	ctx.Invoice.SetFieldScore("items", 0.8)
	ctx.MarkRegion(entity.RegionItemTable, tableRect)
}

// parseItemRow treats the rightmost fragment as the row total when the
// column anchors confirm it sits in the last column (or, without anchors,
// when it simply parses as an amount); the remaining fragments join into the
// item name. Rows missing either part are discarded.
func parseItemRow(row layout.Line, anchors []float64) (entity.LineItem, bool) {
	n := len(row.Fragments)
	if n < 2 {
		return entity.LineItem{}, false
	}
	last := row.Fragments[n-1]

	if len(anchors) > 1 {
		if layout.ColumnIndex(last, anchors) != len(anchors)-1 {
			return entity.LineItem{}, false
		}
	}
	price, ok := normalize.ParseAmount(last.Text)
	if !ok {
		return entity.LineItem{}, false
	}

	names := make([]string, 0, n-1)
	for _, f := range row.Fragments[:n-1] {
		names = append(names, f.Text)
	}
	name := strings.TrimSpace(strings.Join(names, " "))
	if name == "" {
		return entity.LineItem{}, false
	}

	return entity.LineItem{
		Name:      name,
		Quantity:  constants.DefaultItemQuantity,
		UnitPrice: price,
		Total:     price,
		TaxRate:   constants.DefaultItemTaxRate,
	}, true
}
