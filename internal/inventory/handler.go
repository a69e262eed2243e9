package inventory

import (
	"errors"
	"strings"

	"estoque-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CreateProductRequest struct {
	ItemID           string `json:"item_id"`
	ModelID          int    `json:"model_id"`
	Name             string `json:"nome_produto"`
	CurrentStock     *int   `json:"estoque_atual"` // pointer: 0 is a valid stock level, absent is not
	PromotionalStock int    `json:"estoque_promocional"`
	Location         string `json:"localizacao"`
}

type UpdateProductRequest struct {
	ModelID          *int    `json:"model_id"`
	Name             *string `json:"nome_produto"`
	CurrentStock     *int    `json:"estoque_atual"`
	PromotionalStock *int    `json:"estoque_promocional"`
	Location         *string `json:"localizacao"`
}

// GET /products
func ListProductsHandler(repo *Repository, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := repo.ListAll(c.UserContext())
		if err != nil {
			log.Error("listing products", zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao buscar produtos")
		}
		return c.JSON(products)
	}
}

// POST /products
func CreateProductHandler(repo *Repository, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		body.ItemID = strings.TrimSpace(body.ItemID)
		body.Name = strings.TrimSpace(body.Name)

		if body.Name == "" || body.CurrentStock == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Campos obrigatórios não informados")
		}

		p := models.Product{
			ItemID:           body.ItemID,
			ModelID:          body.ModelID,
			Name:             body.Name,
			CurrentStock:     *body.CurrentStock,
			PromotionalStock: body.PromotionalStock,
			Location:         body.Location,
		}

		if err := repo.Create(c.UserContext(), &p); err != nil {
			if errors.Is(err, ErrDuplicate) {
				return fiber.NewError(fiber.StatusConflict, "Produto já cadastrado")
			}
			if errors.Is(err, ErrInvalid) {
				return fiber.NewError(fiber.StatusBadRequest, "Campos obrigatórios não informados")
			}
			log.Error("creating product", zap.String("item_id", p.ItemID), zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao criar produto")
		}

		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// PUT /products/:item_id
func UpdateProductHandler(repo *Repository, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		itemID := c.Params("item_id")

		var body UpdateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		updated, err := repo.Update(c.UserContext(), itemID, UpdateFields{
			ModelID:          body.ModelID,
			Name:             body.Name,
			CurrentStock:     body.CurrentStock,
			PromotionalStock: body.PromotionalStock,
			Location:         body.Location,
		})
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Produto não encontrado")
			}
			log.Error("updating product", zap.String("item_id", itemID), zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao atualizar produto")
		}

		return c.JSON(updated)
	}
}

// DELETE /products/:item_id
func DeleteProductHandler(repo *Repository, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		itemID := c.Params("item_id")

		if err := repo.Delete(c.UserContext(), itemID); err != nil {
			if errors.Is(err, ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Produto não encontrado")
			}
			log.Error("deleting product", zap.String("item_id", itemID), zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao remover produto")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
