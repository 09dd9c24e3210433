package middlewares

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"netson-backend/database"
)

// ErrorHandler centralizes error responses and keeps messages sanitized.
// Every error body is {"success": false, "message": ...}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var valErr *database.ValidationError
	if errors.As(err, &valErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": valErr.Message,
			"field":   valErr.Field,
		})
	}

	if errors.Is(err, database.ErrNothingToUpdate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Không có trường nào để cập nhật",
		})
	}

	var nfErr *database.NotFoundError
	if errors.As(err, &nfErr) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": nfErr.Message,
		})
	}

	var cfErr *database.ConflictError
	if errors.As(err, &cfErr) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": cfErr.Message,
		})
	}

	if fe, ok := err.(*fiber.Error); ok {
		return c.Status(fe.Code).JSON(fiber.Map{"success": false, "message": fe.Message})
	}

	if ve, ok := err.(validator.ValidationErrors); ok {
		out := make(map[string]string, len(ve))
		for _, fe := range ve {
			out[fe.Field()] = fe.Tag()
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Dữ liệu không hợp lệ",
			"errors":  out,
		})
	}

	log.Printf("internal error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Lỗi máy chủ nội bộ",
	})
}
