package repository

import "github.com/jhoicas/ventas-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// List devuelve los productos en orden de inserción.
	List() ([]*entity.Product, error)
	// DecrementStock es la única vía autorizada para reducir estoque.
	// Retorna ErrProductNotFound si el id no existe y *InsufficientStockError
	// si quantity excede el estoque actual; en éxito devuelve el producto ya
	// actualizado. No existe ninguna otra ruta de mutación que pueda dejar
	// el estoque negativo.
	DecrementStock(id string, quantity int) (*entity.Product, error)
	Count() (int, error)
	// Clear vacía el repositorio (tests y reinicios de demo).
	Clear()
}
