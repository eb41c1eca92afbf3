package sales

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/infrastructure/memory"
	"github.com/jhoicas/ventas-api/pkg/logger"
)

type fixture struct {
	productRepo  *memory.ProductRepository
	customerRepo *memory.CustomerRepository
	saleRepo     *memory.SaleRepository
	uc           *RegisterSaleUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		productRepo:  memory.NewProductRepository(),
		customerRepo: memory.NewCustomerRepository(),
		saleRepo:     memory.NewSaleRepository(),
	}
	f.uc = NewRegisterSaleUseCase(f.productRepo, f.customerRepo, f.saleRepo, logger.NewNop())
	return f
}

func (f *fixture) addProduct(t *testing.T, id, name string, price float64, stock int) {
	t.Helper()
	require.NoError(t, f.productRepo.Create(&entity.Product{
		ID:           id,
		Name:         name,
		Price:        decimal.NewFromFloat(price),
		Stock:        stock,
		InitialStock: stock,
		CreatedAt:    time.Now(),
	}))
}

func (f *fixture) stockOf(t *testing.T, id string) int {
	t.Helper()
	p, err := f.productRepo.GetByID(id)
	require.NoError(t, err)
	return p.Stock
}

func line(productID string, qty int64) dto.SaleItemRequest {
	return dto.SaleItemRequest{ProdutoID: productID, Quantidade: decimal.NewFromInt(qty)}
}

func TestRegisterSale_VentaSimpleDescuentaEstoque(t *testing.T) {
	f := newFixture(t)
	f.addProduct(t, "p1", "Widget", 10.00, 5)

	resp, err := f.uc.RegisterSale(dto.RegisterSaleRequest{
		Items: []dto.SaleItemRequest{line("p1", 3)},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.EqualValues(t, 1, resp.Numero)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].Quantidade)
	assert.True(t, resp.Items[0].PrecoUnitario.Equal(decimal.NewFromFloat(10.00)))
	assert.True(t, resp.Total.Equal(decimal.NewFromFloat(30.00)))
	assert.Equal(t, 2, f.stockOf(t, "p1"))
}

func TestRegisterSale_EstoqueInsuficienteRechazaSinMutar(t *testing.T) {
	f := newFixture(t)
	f.addProduct(t, "p1", "Widget", 10.00, 5)

	// Primera venta deja 2 en estoque
	_, err := f.uc.RegisterSale(dto.RegisterSaleRequest{
		Items: []dto.SaleItemRequest{line("p1", 3)},
	})
	require.NoError(t, err)

	// La segunda pide 3 pero solo quedan 2
	_, err = f.uc.RegisterSale(dto.RegisterSaleRequest{
		Items: []dto.SaleItemRequest{line("p1", 3)},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficientErr *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficientErr))
	assert.Equal(t, "Widget", insufficientErr.ProductName)
	assert.Equal(t, 2, insufficientErr.Available)
	assert.Equal(t, 3, insufficientErr.Requested)

	// El rechazo no tocó el estoque ni el libro
	assert.Equal(t, 2, f.stockOf(t, "p1"))
	count, err := f.saleRepo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRegisterSale_MultilineaTodoONada(t *testing.T) {
	f := newFixture(t)
	f.addProduct(t, "a", "Producto A", 5.00, 5)
	f.addProduct(t, "b", "Producto B", 7.00, 0)

	// B no tiene estoque: la venta completa se rechaza y A queda intacto
	_, err := f.uc.RegisterSale(dto.RegisterSaleRequest{
		Items: []dto.SaleItemRequest{line("a", 1), line("b", 1)},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 5, f.stockOf(t, "a"))
	assert.Equal(t, 0, f.stockOf(t, "b"))
}

func TestRegisterSale_LineasRepetidasSeAcumulan(t *testing.T) {
	f := newFixture(t)
	f.addProduct(t, "p1", "Widget", 10.00, 5)

	// Cada línea cabe por separado (3 <= 5) pero juntas piden 6
	_, err := f.uc.RegisterSale(dto.RegisterSaleRequest{
		Items: []dto.SaleItemRequest{line("p1", 3), line("p1", 3)},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 5, f.stockOf(t, "p1"))

	// Juntas caben (2+3 = 5): la venta agota el estoque
	resp, err := f.uc.RegisterSale(dto.RegisterSaleRequest{
		Items: []dto.SaleItemRequest{line("p1", 2), line("p1", 3)},
	})
	require.NoError(t, err)
	assert.True(t, resp.Total.Equal(decimal.NewFromFloat(50.00)))
	assert.Equal(t, 0, f.stockOf(t, "p1"))
}

func TestRegisterSale_ProductoDesconocido(t *testing.T) {
	f := newFixture(t)
	f.addProduct(t, "p1", "Widget", 10.00, 5)

	_, err := f.uc.RegisterSale(dto.RegisterSaleRequest{
		Items: []dto.SaleItemRequest{line("p1", 1), line("fantasma", 1)},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Equal(t, 5, f.stockOf(t, "p1"))
}

func TestRegisterSale_ClienteDesconocido(t *testing.T) {
	f := newFixture(t)
	f.addProduct(t, "p1", "Widget", 10.00, 5)

	_, err := f.uc.RegisterSale(dto.RegisterSaleRequest{
		Items:     []dto.SaleItemRequest{line("p1", 1)},
		ClienteID: "no-existe",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
	assert.Equal(t, 5, f.stockOf(t, "p1"))
}

func TestRegisterSale_ClienteValidoSeAsocia(t *testing.T) {
	f := newFixture(t)
	f.addProduct(t, "p1", "Widget", 10.00, 5)
	require.NoError(t, f.customerRepo.Create(&entity.Customer{ID: "c1", Name: "María", Email: "maria@example.com"}))

	resp, err := f.uc.RegisterSale(dto.RegisterSaleRequest{
		Items:     []dto.SaleItemRequest{line("p1", 1)},
		ClienteID: "c1",
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", resp.ClienteID)
}

func TestRegisterSale_ValidacionDeLineas(t *testing.T) {
	f := newFixture(t)
	f.addProduct(t, "p1", "Widget", 10.00, 5)

	cases := []struct {
		name  string
		items []dto.SaleItemRequest
	}{
		{"sin items", nil},
		{"items vacío", []dto.SaleItemRequest{}},
		{"sin produtoId", []dto.SaleItemRequest{{Quantidade: decimal.NewFromInt(1)}}},
		{"cantidad cero", []dto.SaleItemRequest{line("p1", 0)}},
		{"cantidad negativa", []dto.SaleItemRequest{line("p1", -2)}},
		{"cantidad no entera", []dto.SaleItemRequest{{ProdutoID: "p1", Quantidade: decimal.NewFromFloat(1.5)}}},
		{"cantidad excesiva", []dto.SaleItemRequest{line("p1", 10000)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.RegisterSale(dto.RegisterSaleRequest{Items: tc.items})
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	// Ningún rechazo de forma tocó el estoque
	assert.Equal(t, 5, f.stockOf(t, "p1"))
}

func TestRegisterSale_FechaDelFrontendLegado(t *testing.T) {
	f := newFixture(t)
	f.addProduct(t, "p1", "Widget", 10.00, 5)

	resp, err := f.uc.RegisterSale(dto.RegisterSaleRequest{
		Items: []dto.SaleItemRequest{line("p1", 1)},
		Data:  "2026-08-15",
	})
	require.NoError(t, err)
	assert.Equal(t, 2026, resp.Data.Year())
	assert.Equal(t, time.August, resp.Data.Month())
	assert.Equal(t, 15, resp.Data.Day())

	_, err = f.uc.RegisterSale(dto.RegisterSaleRequest{
		Items: []dto.SaleItemRequest{line("p1", 1)},
		Data:  "15/08/2026",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterSale_PrecioCapturadoAlCommit(t *testing.T) {
	f := newFixture(t)
	f.addProduct(t, "p1", "Widget", 10.00, 10)

	first, err := f.uc.RegisterSale(dto.RegisterSaleRequest{
		Items: []dto.SaleItemRequest{line("p1", 1)},
	})
	require.NoError(t, err)

	// La venta ya confirmada conserva su precio aunque el catálogo cambie luego
	got, err := f.uc.GetByID(first.ID)
	require.NoError(t, err)
	assert.True(t, got.Items[0].PrecoUnitario.Equal(decimal.NewFromFloat(10.00)))
	assert.True(t, got.Total.Equal(decimal.NewFromFloat(10.00)))
}

func TestRegisterSale_ConciliacionDeDescuentos(t *testing.T) {
	f := newFixture(t)
	f.addProduct(t, "p1", "Widget", 10.00, 20)
	f.addProduct(t, "p2", "Gadget", 3.50, 20)

	requests := []dto.RegisterSaleRequest{
		{Items: []dto.SaleItemRequest{line("p1", 4)}},
		{Items: []dto.SaleItemRequest{line("p1", 2), line("p2", 5)}},
		{Items: []dto.SaleItemRequest{line("p2", 30)}}, // rechazada
		{Items: []dto.SaleItemRequest{line("p2", 1)}},
	}
	for _, req := range requests {
		_, _ = f.uc.RegisterSale(req)
	}

	// Σ descuentos por producto == Σ cantidades de las ventas confirmadas
	sold := map[string]int{}
	sales, err := f.saleRepo.List()
	require.NoError(t, err)
	for _, s := range sales {
		for _, it := range s.Items {
			sold[it.ProductID] += it.Quantity
		}
	}
	assert.Equal(t, 20-sold["p1"], f.stockOf(t, "p1"))
	assert.Equal(t, 20-sold["p2"], f.stockOf(t, "p2"))
	assert.Equal(t, 6, sold["p1"])
	assert.Equal(t, 6, sold["p2"])
}

func TestRegisterSale_ListYGetByID(t *testing.T) {
	f := newFixture(t)
	f.addProduct(t, "p1", "Widget", 10.00, 10)

	for i := 0; i < 3; i++ {
		_, err := f.uc.RegisterSale(dto.RegisterSaleRequest{
			Items: []dto.SaleItemRequest{line("p1", 1)},
		})
		require.NoError(t, err)
	}

	list, err := f.uc.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, s := range list {
		assert.EqualValues(t, i+1, s.Numero)
	}

	_, err = f.uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
