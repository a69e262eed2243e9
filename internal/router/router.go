package router

import (
	"strings"

	"estoque-backend/internal/inventory"
	"estoque-backend/internal/sales"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// New assembles the Fiber application: middleware, error mapping and every
// route, with repositories constructed over the given store handle.
func New(db *gorm.DB, logger *zap.Logger, corsOrigins string) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			logger.Error("unexpected error", zap.String("path", c.Path()), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erro interno do servidor",
			})
		},
	})

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	origins := strings.Split(corsOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(origins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	productRepo := inventory.NewRepository(db)
	saleRepo := sales.NewRepository(db)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/products", inventory.ListProductsHandler(productRepo, logger))
	app.Post("/products", inventory.CreateProductHandler(productRepo, logger))
	app.Put("/products/:item_id", inventory.UpdateProductHandler(productRepo, logger))
	app.Delete("/products/:item_id", inventory.DeleteProductHandler(productRepo, logger))

	api := app.Group("/api")
	api.Post("/vendas", sales.CreateSaleHandler(saleRepo, logger))
	api.Get("/vendas", sales.ListSalesHandler(saleRepo, logger))

	return app
}
