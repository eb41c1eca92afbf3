package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// StatsUseCase agrega las estadísticas del dashboard: conteos y facturación.
//
// Lectura pura sobre los tres repositorios, sin caché ni estado propio: el
// resultado siempre es consistente con el contenido actual de los stores.
type StatsUseCase struct {
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
) *StatsUseCase {
	return &StatsUseCase{
		productRepo:  productRepo,
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
	}
}

// ComputeStats recorre los tres stores y devuelve conteos y facturación.
// Faturamento = Σ sale.Total sobre el libro de ventas.
func (uc *StatsUseCase) ComputeStats() (*dto.StatsResponse, error) {
	productCount, err := uc.productRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("stats: contar productos: %w", err)
	}
	customerCount, err := uc.customerRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("stats: contar clientes: %w", err)
	}
	sales, err := uc.saleRepo.List()
	if err != nil {
		return nil, fmt.Errorf("stats: listar ventas: %w", err)
	}

	revenue := decimal.Zero
	for _, s := range sales {
		revenue = revenue.Add(s.Total)
	}

	return &dto.StatsResponse{
		TotalProdutos: productCount,
		TotalClientes: customerCount,
		TotalVendas:   len(sales),
		Faturamento:   revenue,
	}, nil
}
