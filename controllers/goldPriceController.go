package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"netson-backend/database"
	"netson-backend/middlewares"
	"netson-backend/models"
	"netson-backend/services"
	"netson-backend/utils"
)

// ListGoldPrices serves the dashboard queries: latest per brand by default,
// a recent-days window with ?days, or filtered history with brand/dates.
func ListGoldPrices(c *fiber.Ctx) error {
	f := models.GoldPriceFilters{
		Brand:     c.Query("brand"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Days:      utils.ParseIntDefault(c.Query("days"), 0),
		Limit:     utils.ParseIntDefault(c.Query("limit"), 0),
	}
	prices, err := database.ListGoldPrices(c.Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": prices})
}

// GoldPriceChart returns per-brand series for the chart, default 7 days.
func GoldPriceChart(c *fiber.Ctx) error {
	days := utils.ParseIntDefault(c.Query("days"), 7)
	series, err := database.GoldPriceChart(c.Context(), days)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": series})
}

// UpsertGoldPrice records one manual observation per (brand, date).
func UpsertGoldPrice(c *fiber.Ctx) error {
	var in models.GoldPriceUpsert
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Dữ liệu gửi lên không hợp lệ")
	}
	utils.NormalizeDTO(&in)
	if err := middlewares.ValidateStruct(in); err != nil {
		return err
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Ngày không hợp lệ (YYYY-MM-DD)")
	}

	active, err := database.BrandActive(c.Context(), in.Brand)
	if err != nil {
		return err
	}
	if !active {
		return fiber.NewError(fiber.StatusBadRequest, "Thương hiệu không tồn tại hoặc đã ngừng hoạt động")
	}

	price, err := database.UpsertGoldPrice(c.Context(), in.Brand, in.BuyPrice, in.SellPrice, in.Date)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    price,
		"message": "Cập nhật giá vàng thành công",
	})
}

// UploadGoldPriceExcel ingests a spreadsheet of observations and reports a
// per-row tally. Parse errors on some rows do not abort the valid ones.
func UploadGoldPriceExcel(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Chưa chọn file Excel")
	}
	f, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Không thể đọc file Excel")
	}
	defer f.Close()

	rows, rowErrs, err := services.ParseGoldPriceRows(f)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Lỗi xử lý file Excel")
	}

	updated := 0
	for _, r := range rows {
		if _, err := database.UpsertGoldPrice(c.Context(), r.Brand, r.BuyPrice, r.SellPrice, r.Date); err != nil {
			rowErrs = append(rowErrs, fmt.Sprintf("%s %s: %v", r.Brand, r.Date, err))
			continue
		}
		updated++
	}

	if updated == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Không có dữ liệu nào được cập nhật",
			"errors":  rowErrs,
		})
	}
	resp := fiber.Map{
		"success":      true,
		"message":      fmt.Sprintf("Upload thành công! Đã cập nhật %d bản ghi", updated),
		"updatedCount": updated,
	}
	if len(rowErrs) > 0 {
		resp["errors"] = rowErrs
	}
	return c.JSON(resp)
}

// DownloadGoldPriceTemplate streams the sample import spreadsheet.
func DownloadGoldPriceTemplate(c *fiber.Ctx) error {
	buf, err := services.BuildGoldPriceTemplate()
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="gold-prices-template.xlsx"`)
	return c.Send(buf.Bytes())
}
