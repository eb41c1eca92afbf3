package repository

import "github.com/jhoicas/ventas-api/internal/domain/entity"

// SaleRepository define el puerto del libro de ventas (append-only).
// Solo anexa y lee: sin updates ni deletes — una venta anexada es inmutable.
type SaleRepository interface {
	// Append anexa la venta y asigna ID, consecutivo (Number) y CreatedAt
	// si no vienen ya asignados. No valida: la validación es responsabilidad
	// del caso de uso de registro de venta.
	Append(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	// List devuelve las ventas en orden de inserción, la más antigua primero.
	List() ([]*entity.Sale, error)
	Count() (int, error)
	Clear()
}
