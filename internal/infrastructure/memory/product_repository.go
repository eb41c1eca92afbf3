// Package memory contiene las implementaciones en memoria de los puertos de
// persistencia. Todo el estado vive en el proceso y se pierde al reiniciar;
// cada repositorio protege su estado con su propio RWMutex.
package memory

import (
	"sync"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// ProductRepository implementación en memoria de repository.ProductRepository.
// Mantiene el orden de inserción en un slice y un índice por ID.
type ProductRepository struct {
	mu       sync.RWMutex
	products []entity.Product
	index    map[string]int // ID -> posición en products
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{index: make(map[string]int)}
}

// Create agrega un producto al catálogo.
func (r *ProductRepository) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index[product.ID] = len(r.products)
	r.products = append(r.products, *product)
	return nil
}

// GetByID devuelve una copia del producto o ErrProductNotFound.
func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	p := r.products[i]
	return &p, nil
}

// List devuelve los productos en orden de inserción.
func (r *ProductRepository) List() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.products))
	for i := range r.products {
		p := r.products[i]
		out = append(out, &p)
	}
	return out, nil
}

// DecrementStock descuenta quantity unidades del estoque del producto.
// Única vía de reducción de estoque: el invariante estoque >= 0 se garantiza
// aquí, antes de mutar.
func (r *ProductRepository) DecrementStock(id string, quantity int) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	p := &r.products[i]
	if quantity > p.Stock {
		return nil, &domain.InsufficientStockError{
			ProductID:   p.ID,
			ProductName: p.Name,
			Requested:   quantity,
			Available:   p.Stock,
		}
	}
	p.Stock -= quantity
	out := *p
	return &out, nil
}

// Count devuelve la cantidad de productos registrados.
func (r *ProductRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products), nil
}

// Clear vacía el repositorio.
func (r *ProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = nil
	r.index = make(map[string]int)
}
