package controllers

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"netson-backend/database"
	"netson-backend/models"
	"netson-backend/services"
	"netson-backend/utils"
)

// MaxImageBytes is the upload size limit (5 MiB).
const MaxImageBytes = 5 * 1024 * 1024

func parseImageFilters(c *fiber.Ctx) (models.ImageFilters, error) {
	f := models.ImageFilters{
		Featured: c.Query("is_featured") == "true",
		Limit:    utils.ParseIntDefault(c.Query("limit"), 50),
		Offset:   utils.ParseIntDefault(c.Query("offset"), 0),
	}
	if raw := c.Query("product_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 1 {
			return f, fiber.NewError(fiber.StatusBadRequest, "product_id không hợp lệ")
		}
		f.ProductId = &id
	}
	return f, nil
}

func ListImages(c *fiber.Ctx) error {
	f, err := parseImageFilters(c)
	if err != nil {
		return err
	}
	images, err := database.ListImages(c.Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": images})
}

// UploadImage validates the file before any network call, stores it
// remotely, then records the descriptor. A failed insert removes the
// remote object again so no orphan is left behind.
func UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Chưa chọn hình ảnh")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return fiber.NewError(fiber.StatusBadRequest, "File phải là hình ảnh")
	}
	if fileHeader.Size > MaxImageBytes {
		return fiber.NewError(fiber.StatusBadRequest, "Hình ảnh không được vượt quá 5MB")
	}

	// A missing product drops the association instead of failing the upload.
	var productId *int
	if raw := c.FormValue("product_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "product_id không hợp lệ")
		}
		exists, err := database.ProductExists(c.Context(), id)
		if err != nil {
			return err
		}
		if exists {
			productId = &id
		}
	}

	f, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Không thể đọc hình ảnh")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxImageBytes+1))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Không thể đọc hình ảnh")
	}
	if int64(len(data)) > MaxImageBytes {
		return fiber.NewError(fiber.StatusBadRequest, "Hình ảnh không được vượt quá 5MB")
	}

	// Best effort; formats the stdlib cannot decode keep 0x0 and fall back
	// to the declared content type.
	var width, height int
	format := ""
	if cfg, name, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		width, height = cfg.Width, cfg.Height
		format = name
	}

	if services.Storage == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Dịch vụ lưu trữ chưa sẵn sàng")
	}

	key := fmt.Sprintf("netson-products/%s%s", uuid.NewString(), strings.ToLower(path.Ext(fileHeader.Filename)))
	result, err := services.Storage.Upload(c.Context(), key, bytes.NewReader(data), int64(len(data)), contentType)
	if err != nil {
		return fmt.Errorf("upload hình ảnh: %w", err)
	}
	if format == "" {
		format = result.Format
	}

	img, err := database.CreateImage(c.Context(), models.ImageCreate{
		PublicId:   result.PublicId,
		URL:        result.URL,
		SecureURL:  result.SecureURL,
		Width:      width,
		Height:     height,
		Format:     format,
		Bytes:      result.Bytes,
		Folder:     "netson-products",
		AltText:    c.FormValue("alt_text"),
		Title:      c.FormValue("title"),
		ProductId:  productId,
		IsFeatured: c.FormValue("is_featured") == "true",
	})
	if err != nil {
		// The remote object is already stored; undo it so the failed
		// insert leaves nothing behind.
		if rmErr := services.Storage.Remove(c.Context(), result.PublicId); rmErr != nil {
			return fmt.Errorf("lưu hình ảnh: %w (dọn dẹp thất bại: %v)", err, rmErr)
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    img,
		"message": "Tải hình ảnh lên thành công",
	})
}

// SetFeaturedImage marks one image featured and clears its siblings.
func SetFeaturedImage(c *fiber.Ctx) error {
	id, err := parseIdParam(c)
	if err != nil {
		return err
	}
	img, err := database.SetImageFeatured(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    img,
		"message": "Đã đặt làm hình ảnh nổi bật",
	})
}

// DeleteImage removes the local row first, then the remote object. A failed
// remote delete is reported but the row stays gone.
func DeleteImage(c *fiber.Ctx) error {
	id, err := parseIdParam(c)
	if err != nil {
		return err
	}
	publicId, err := database.DeleteImage(c.Context(), id)
	if err != nil {
		return err
	}
	if services.Storage != nil {
		if err := services.Storage.Remove(c.Context(), publicId); err != nil {
			return c.JSON(fiber.Map{
				"success": true,
				"message": "Đã xóa bản ghi, nhưng xóa file từ kho lưu trữ thất bại",
			})
		}
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Xóa hình ảnh thành công",
	})
}
