package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// Los nombres de campo vienen del frontend legado (estoque, descricao).
// Estoque llega como número JSON y se valida que sea un entero no negativo.
type CreateProductRequest struct {
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Estoque   decimal.Decimal `json:"estoque"`
	Descricao string          `json:"descricao"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Estoque   int             `json:"estoque"`
	Descricao string          `json:"descricao,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
