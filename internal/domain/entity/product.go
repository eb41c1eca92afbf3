package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Stock es el único campo mutable y solo se reduce por la vía autorizada
// (ProductRepository.DecrementStock); nunca puede quedar negativo.
type Product struct {
	ID           string
	Name         string
	Description  string
	Price        decimal.Decimal // precio de venta unitario, nunca negativo
	Stock        int             // unidades disponibles, >= 0 siempre
	InitialStock int             // estoque al momento del registro (para conciliación)
	CreatedAt    time.Time
}
