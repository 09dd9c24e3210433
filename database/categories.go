package database

import (
	"context"
	"strings"

	"netson-backend/models"
	"netson-backend/utils"
)

const categoryCols = `id, name, COALESCE(description, ''), slug, image_url, banner_url,
	is_active, sort_order, created_at, updated_at`

func scanCategory(r rowScanner) (*models.Category, error) {
	var c models.Category
	err := r.Scan(&c.Id, &c.Name, &c.Description, &c.Slug, &c.ImageURL,
		&c.BannerURL, &c.IsActive, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCategories returns active categories in display order; admins see all.
func ListCategories(ctx context.Context, activeOnly bool) ([]*models.Category, error) {
	query := "SELECT " + categoryCols + " FROM categories"
	if activeOnly {
		query += " WHERE is_active = true"
	}
	query += " ORDER BY sort_order ASC, name ASC"

	rows, err := Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []*models.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func CreateCategory(ctx context.Context, in models.CategoryCreate) (*models.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, validationErr("name", "Tên danh mục không được để trống")
	}
	slug := utils.Slugify(name)

	row := Pool.QueryRow(ctx, `
		INSERT INTO categories (name, description, slug, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING `+categoryCols,
		name, in.Description, slug, in.SortOrder)
	c, err := scanCategory(row)
	if isUniqueViolation(err) {
		return nil, conflictErr("Danh mục này đã tồn tại")
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCategory refuses to remove a category that products still reference.
// The RESTRICT foreign key backs this check at the database level.
func DeleteCategory(ctx context.Context, id int) error {
	var refs int
	if err := Pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM products WHERE category_id = $1", id).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		return conflictErr("Danh mục đang được sử dụng bởi sản phẩm, không thể xóa")
	}
	tag, err := Pool.Exec(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notFoundErr("Danh mục không tồn tại")
	}
	return nil
}
