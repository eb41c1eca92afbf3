// Package sales contiene el caso de uso central del sistema: el registro
// transaccional de una venta multilínea contra el catálogo.
package sales

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/jhoicas/ventas-api/pkg/logger"
	"github.com/jhoicas/ventas-api/pkg/metrics"
)

// maxLineQuantity cota superior de sanidad por línea.
const maxLineQuantity = 9999

// RegisterSaleUseCase registra ventas con protocolo de dos fases:
// primero se valida TODO (líneas, productos, cliente, estoque) y solo si todo
// pasa se muta: descuento de estoque línea por línea y anexo al libro.
// Una venta de N líneas es todo-o-nada; ningún rechazo deja estoque
// parcialmente descontado.
//
// El mutex serializa la ventana validar→descontar→anexar completa: una venta
// a la vez. Las lecturas (stats, listados) ven el estado pre o post commit,
// nunca uno intermedio.
type RegisterSaleUseCase struct {
	mu           sync.Mutex
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
	log          *logger.Logger
}

// NewRegisterSaleUseCase construye el caso de uso.
func NewRegisterSaleUseCase(
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
	log *logger.Logger,
) *RegisterSaleUseCase {
	return &RegisterSaleUseCase{
		productRepo:  productRepo,
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
		log:          log,
	}
}

// RegisterSale valida y confirma una venta.
//
// Orden del contrato (no reordenar: de esto depende que un fallo parcial
// jamás corrompa el estado):
//  1. líneas bien formadas (no vacías, cantidades enteras positivas <= 9999)
//  2. todos los productos existen — sin mutar nada
//  3. el cliente existe, si viene clienteId
//  4. toda línea cabe en el estoque (acumulando líneas repetidas del mismo
//     producto); el primer fallo se reporta con el disponible
//  5. recién entonces: descontar estoque y capturar el precio unitario vigente
//  6. construir la venta (total = Σ cantidad × precio) y anexarla al libro
//  7. devolver la venta confirmada
func (uc *RegisterSaleUseCase) RegisterSale(in dto.RegisterSaleRequest) (*dto.SaleResponse, error) {
	// 1) Validación de forma, antes de tomar el lock
	if len(in.Items) == 0 {
		return nil, uc.reject("validation", fmt.Errorf("%w: items no puede estar vacío", domain.ErrInvalidInput))
	}
	quantities := make([]int, len(in.Items))
	for i, item := range in.Items {
		if item.ProdutoID == "" {
			return nil, uc.reject("validation", fmt.Errorf("%w: produtoId es obligatorio", domain.ErrInvalidInput))
		}
		if !item.Quantidade.IsInteger() {
			return nil, uc.reject("validation", fmt.Errorf("%w: quantidade debe ser un número entero", domain.ErrInvalidInput))
		}
		qty := int(item.Quantidade.IntPart())
		if qty <= 0 {
			return nil, uc.reject("validation", fmt.Errorf("%w: quantidade debe ser positiva", domain.ErrInvalidInput))
		}
		if qty > maxLineQuantity {
			return nil, uc.reject("validation", fmt.Errorf("%w: quantidade excede el máximo de %d", domain.ErrInvalidInput, maxLineQuantity))
		}
		quantities[i] = qty
	}

	saleDate, err := parseSaleDate(in.Data)
	if err != nil {
		return nil, uc.reject("validation", err)
	}

	// Pasos 2–6 bajo un solo lock: una venta a la vez
	uc.mu.Lock()
	defer uc.mu.Unlock()

	// 2) Resolver todos los productos antes de mutar cualquiera
	products := make([]*entity.Product, len(in.Items))
	for i, item := range in.Items {
		p, err := uc.productRepo.GetByID(item.ProdutoID)
		if err != nil {
			return nil, uc.reject("not_found", fmt.Errorf("%w: %s", domain.ErrProductNotFound, item.ProdutoID))
		}
		products[i] = p
	}

	// 3) Resolver el cliente, si viene
	if in.ClienteID != "" {
		if _, err := uc.customerRepo.GetByID(in.ClienteID); err != nil {
			return nil, uc.reject("not_found", fmt.Errorf("%w: %s", domain.ErrCustomerNotFound, in.ClienteID))
		}
	}

	// 4) Verificar estoque de TODAS las líneas antes de descontar cualquiera.
	// Las cantidades se acumulan por producto: dos líneas del mismo producto
	// deben caber juntas, no cada una por separado.
	required := make(map[string]int, len(in.Items))
	for i, item := range in.Items {
		required[item.ProdutoID] += quantities[i]
		if required[item.ProdutoID] > products[i].Stock {
			insufficientErr := &domain.InsufficientStockError{
				ProductID:   products[i].ID,
				ProductName: products[i].Name,
				Requested:   quantities[i],
				Available:   products[i].Stock,
			}
			uc.log.Warn().
				Str("produto_id", products[i].ID).
				Int("disponible", products[i].Stock).
				Int("solicitado", quantities[i]).
				Msg("venta rechazada por estoque insuficiente")
			metrics.VentasRejected.WithLabelValues("insufficient_stock").Inc()
			return nil, insufficientErr
		}
	}

	// 5) Todo validado: descontar estoque y capturar el precio vigente
	items := make([]entity.SaleItem, len(in.Items))
	for i, item := range in.Items {
		updated, err := uc.productRepo.DecrementStock(item.ProdutoID, quantities[i])
		if err != nil {
			// No puede ocurrir tras el paso 4; si ocurre, el estado quedó
			// corrupto y no hay forma de deshacer los descuentos previos.
			return nil, fmt.Errorf("descontar estoque de %s: %w", item.ProdutoID, err)
		}
		unitPrice := updated.Price
		items[i] = entity.SaleItem{
			ProductID: updated.ID,
			Quantity:  quantities[i],
			UnitPrice: unitPrice,
			Subtotal:  unitPrice.Mul(decimalFromInt(quantities[i])),
		}
	}

	// 6) Construir y anexar la venta; el libro asigna ID, consecutivo y CreatedAt
	sale := &entity.Sale{
		CustomerID: in.ClienteID,
		Date:       saleDate,
		Items:      items,
		Total:      entity.ComputeTotal(items),
	}
	if err := uc.saleRepo.Append(sale); err != nil {
		return nil, fmt.Errorf("anexar venta: %w", err)
	}

	uc.log.Info().
		Str("venta_id", sale.ID).
		Int64("numero", sale.Number).
		Int("lineas", len(sale.Items)).
		Str("total", sale.Total.String()).
		Msg("venta registrada")
	metrics.VentasCommitted.Inc()

	// 7) Venta confirmada
	return toSaleResponse(sale), nil
}

// GetByID obtiene una venta confirmada por ID.
func (uc *RegisterSaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// List lista las ventas en orden de registro, la más antigua primero.
func (uc *RegisterSaleUseCase) List() ([]*dto.SaleResponse, error) {
	sales, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

// reject registra la métrica de rechazo y devuelve el error tal cual.
func (uc *RegisterSaleUseCase) reject(reason string, err error) error {
	metrics.VentasRejected.WithLabelValues(reason).Inc()
	return err
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

// parseSaleDate acepta la fecha del frontend legado ("2006-01-02"), RFC3339,
// o vacío (hoy).
func parseSaleDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: data debe ser YYYY-MM-DD o RFC3339", domain.ErrInvalidInput)
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, len(s.Items))
	for i, it := range s.Items {
		items[i] = dto.SaleItemResponse{
			ProdutoID:     it.ProductID,
			Quantidade:    it.Quantity,
			PrecoUnitario: it.UnitPrice,
			Subtotal:      it.Subtotal,
		}
	}
	return &dto.SaleResponse{
		ID:        s.ID,
		Numero:    s.Number,
		ClienteID: s.CustomerID,
		Data:      s.Date,
		Items:     items,
		Total:     s.Total,
		CreatedAt: s.CreatedAt,
	}
}
