package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/jhoicas/ventas-api/pkg/metrics"
)

// ProductUseCase casos de uso del catálogo: registro y lectura.
// El estoque solo se modifica desde el caso de uso de ventas, nunca aquí.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Register valida y registra un producto nuevo con un ID fresco.
// El ID es un UUID: el frontend legado usaba Date.now() y colisionaba con
// registros consecutivos rápidos.
func (uc *ProductUseCase) Register(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
	}
	if !in.Estoque.IsInteger() {
		return nil, fmt.Errorf("%w: estoque debe ser un número entero", domain.ErrInvalidInput)
	}
	stock := int(in.Estoque.IntPart())
	if stock < 0 {
		return nil, fmt.Errorf("%w: estoque no puede ser negativo", domain.ErrInvalidInput)
	}

	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Description:  in.Descricao,
		Price:        in.Price,
		Stock:        stock,
		InitialStock: stock,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	metrics.ProductosCreated.Inc()
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista el catálogo en orden de registro.
func (uc *ProductUseCase) List() ([]*dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Estoque:   p.Stock,
		Descricao: p.Description,
		CreatedAt: p.CreatedAt,
	}
}
