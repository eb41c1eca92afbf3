package memory

import (
	"sync"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// CustomerRepository implementación en memoria de repository.CustomerRepository.
type CustomerRepository struct {
	mu        sync.RWMutex
	customers []entity.Customer
	index     map[string]int
}

// NewCustomerRepository construye el repositorio vacío.
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{index: make(map[string]int)}
}

// Create agrega un cliente.
func (r *CustomerRepository) Create(customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index[customer.ID] = len(r.customers)
	r.customers = append(r.customers, *customer)
	return nil
}

// GetByID devuelve una copia del cliente o ErrCustomerNotFound.
func (r *CustomerRepository) GetByID(id string) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	c := r.customers[i]
	return &c, nil
}

// List devuelve los clientes en orden de inserción.
func (r *CustomerRepository) List() ([]*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Customer, 0, len(r.customers))
	for i := range r.customers {
		c := r.customers[i]
		out = append(out, &c)
	}
	return out, nil
}

// Count devuelve la cantidad de clientes registrados.
func (r *CustomerRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.customers), nil
}

// Clear vacía el repositorio.
func (r *CustomerRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers = nil
	r.index = make(map[string]int)
}
