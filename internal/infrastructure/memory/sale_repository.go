package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// SaleRepository implementación en memoria del libro de ventas (append-only).
// Asigna un consecutivo monótono por venta; el listado conserva el orden de
// inserción, la más antigua primero.
type SaleRepository struct {
	mu         sync.RWMutex
	sales      []entity.Sale
	index      map[string]int
	nextNumber int64
}

// NewSaleRepository construye el libro vacío. El consecutivo arranca en 1.
func NewSaleRepository() *SaleRepository {
	return &SaleRepository{index: make(map[string]int), nextNumber: 1}
}

// Append anexa la venta. Asigna ID (UUID), Number y CreatedAt si no vienen
// asignados. No valida nada: eso es responsabilidad del caso de uso.
func (r *SaleRepository) Append(sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	if sale.Number == 0 {
		sale.Number = r.nextNumber
		r.nextNumber++
	} else if sale.Number >= r.nextNumber {
		r.nextNumber = sale.Number + 1
	}
	if sale.CreatedAt.IsZero() {
		sale.CreatedAt = time.Now()
	}
	r.index[sale.ID] = len(r.sales)
	r.sales = append(r.sales, cloneSale(sale))
	return nil
}

// GetByID devuelve una copia de la venta o ErrNotFound.
func (r *SaleRepository) GetByID(id string) (*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	s := cloneSale(&r.sales[i])
	return &s, nil
}

// List devuelve las ventas en orden de inserción.
func (r *SaleRepository) List() ([]*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Sale, 0, len(r.sales))
	for i := range r.sales {
		s := cloneSale(&r.sales[i])
		out = append(out, &s)
	}
	return out, nil
}

// Count devuelve la cantidad de ventas anexadas.
func (r *SaleRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sales), nil
}

// Clear vacía el libro y reinicia el consecutivo.
func (r *SaleRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales = nil
	r.index = make(map[string]int)
	r.nextNumber = 1
}

// cloneSale copia la venta incluyendo el slice de líneas, para que ninguna
// referencia externa pueda mutar lo ya anexado.
func cloneSale(s *entity.Sale) entity.Sale {
	out := *s
	out.Items = make([]entity.SaleItem, len(s.Items))
	copy(out.Items, s.Items)
	return out
}
