package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/sales"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/infrastructure/memory"
	httpRouter "github.com/jhoicas/ventas-api/internal/interfaces/http"
	"github.com/jhoicas/ventas-api/pkg/config"
	"github.com/jhoicas/ventas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Stores en memoria: todo el estado vive en el proceso y se pierde al
	// reiniciar. Un solo composition root construye los tres y los pasa
	// explícitamente — sin globals.
	productRepo := memory.NewProductRepository()
	customerRepo := memory.NewCustomerRepository()
	saleRepo := memory.NewSaleRepository()

	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	statsUC := usecase.NewStatsUseCase(productRepo, customerRepo, saleRepo)
	registerSaleUC := sales.NewRegisterSaleUseCase(productRepo, customerRepo, saleRepo, log)

	if cfg.App.SeedDemo {
		seedDemo(productUC, customerUC, log)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ventas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:    productUC,
		RegisterSale: registerSaleUC,
		StatsUC:      statsUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}

// seedDemo carga productos y clientes de muestra. La memoria inicia vacía en
// cada boot; útil para probar el frontend sin cargar datos a mano.
func seedDemo(productUC *usecase.ProductUseCase, customerUC *usecase.CustomerUseCase, log *logger.Logger) {
	demoProducts := []dto.CreateProductRequest{
		{Name: "Caderno universitario", Price: decimal.NewFromFloat(12.50), Estoque: decimal.NewFromInt(40), Descricao: "96 hojas"},
		{Name: "Caneta esferográfica", Price: decimal.NewFromFloat(2.30), Estoque: decimal.NewFromInt(200)},
		{Name: "Mochila escolar", Price: decimal.NewFromFloat(89.90), Estoque: decimal.NewFromInt(15), Descricao: "20 litros"},
	}
	for _, p := range demoProducts {
		if _, err := productUC.Register(p); err != nil {
			log.Warn().Err(err).Str("name", p.Name).Msg("seed: producto no registrado")
		}
	}

	demoCustomers := []dto.CreateCustomerRequest{
		{Nome: "María Gómez", Email: "maria@example.com", Telefone: "3001234567"},
		{Nome: "João Pereira", Email: "joao@example.com", Endereco: "Rua das Flores 123"},
	}
	for _, c := range demoCustomers {
		if _, err := customerUC.Register(c); err != nil {
			log.Warn().Err(err).Str("nome", c.Nome).Msg("seed: cliente no registrado")
		}
	}
	log.Info().Int("productos", len(demoProducts)).Int("clientes", len(demoCustomers)).Msg("datos de demostración cargados")
}
