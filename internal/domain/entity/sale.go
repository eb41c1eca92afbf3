package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta confirmada. Una vez anexada al libro de ventas
// es inmutable: sin ediciones in-place ni eliminación.
type Sale struct {
	ID         string
	Number     int64 // consecutivo monótono asignado por el libro de ventas
	CustomerID string // opcional; referencia por ID, no propiedad
	Date       time.Time
	Items      []SaleItem
	Total      decimal.Decimal // siempre igual a la suma de los subtotales
	CreatedAt  time.Time
}

// SaleItem es una línea de la venta: producto, cantidad y el precio unitario
// capturado al momento del commit.
type SaleItem struct {
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal // Quantity × UnitPrice
}

// ComputeTotal suma los subtotales de las líneas. El Total de la venta es una
// función pura de sus líneas y nunca se edita por separado.
func ComputeTotal(items []SaleItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal)
	}
	return total
}
