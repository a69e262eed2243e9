package sales

import (
	"errors"

	"estoque-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CreateSaleRequest struct {
	ItemID   *string          `json:"item_id"`
	Quantity *int             `json:"quantidade"`
	SaleDate *models.DateOnly `json:"data_venda"`
}

// POST /api/vendas
func CreateSaleHandler(repo *Repository, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		sale := models.Sale{
			ItemID:   body.ItemID,
			Quantity: body.Quantity,
		}
		if body.SaleDate != nil {
			sale.SaleDate = *body.SaleDate
		}

		if err := repo.Append(c.UserContext(), &sale); err != nil {
			if errors.Is(err, ErrInvalid) {
				return fiber.NewError(fiber.StatusBadRequest, "Campos obrigatórios não informados")
			}
			log.Error("registering sale", zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao registrar venda")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "Venda registrada com sucesso",
		})
	}
}

// GET /api/vendas
func ListSalesHandler(repo *Repository, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sales, err := repo.ListAll(c.UserContext())
		if err != nil {
			log.Error("listing sales", zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao buscar vendas")
		}
		return c.JSON(sales)
	}
}
