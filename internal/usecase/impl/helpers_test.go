package impl

import (
	"io"
	"log/slog"

	"boutique/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testItem(variantID, price string, qty int) entity.LineItem {
	return entity.LineItem{
		VariantID: variantID,
		ProductID: "prod-" + variantID,
		Name:      "Item " + variantID,
		UnitPrice: decimal.RequireFromString(price),
		Quantity:  qty,
	}
}
