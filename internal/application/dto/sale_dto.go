package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterSaleRequest body para POST /api/sales.
// A diferencia del frontend legado (que enviaba un item por petición), items
// acepta una venta multilínea genuina: todas las líneas se confirman o se
// rechaza la venta completa.
type RegisterSaleRequest struct {
	Items     []SaleItemRequest `json:"items"`
	ClienteID string            `json:"clienteId,omitempty"`
	Data      string            `json:"data,omitempty"` // "2006-01-02" o RFC3339; vacío = hoy
}

// SaleItemRequest línea solicitada: producto y cantidad.
// Quantidade llega como número JSON y se valida que sea un entero positivo.
type SaleItemRequest struct {
	ProdutoID  string          `json:"produtoId"`
	Quantidade decimal.Decimal `json:"quantidade"`
}

// SaleResponse venta confirmada.
type SaleResponse struct {
	ID        string             `json:"id"`
	Numero    int64              `json:"numero"`
	ClienteID string             `json:"clienteId,omitempty"`
	Data      time.Time          `json:"data"`
	Items     []SaleItemResponse `json:"items"`
	Total     decimal.Decimal    `json:"total"`
	CreatedAt time.Time          `json:"created_at"`
}

// SaleItemResponse línea confirmada con el precio unitario capturado al commit.
type SaleItemResponse struct {
	ProdutoID     string          `json:"produtoId"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"precoUnitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

// StatsResponse respuesta de GET /api/dashboard/summary.
// Faturamento = suma de los totales del libro de ventas; se recalcula en cada
// llamada (sin caché) y siempre concilia con las ventas registradas.
type StatsResponse struct {
	TotalProdutos int             `json:"total_produtos"`
	TotalClientes int             `json:"total_clientes"`
	TotalVendas   int             `json:"total_vendas"`
	Faturamento   decimal.Decimal `json:"faturamento"`
}
