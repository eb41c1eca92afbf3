package repository

import "github.com/jhoicas/ventas-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
// Los clientes nunca participan en la lógica de estoque.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// List devuelve los clientes en orden de inserción.
	List() ([]*entity.Customer, error)
	Count() (int, error)
	Clear()
}
