package database

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"netson-backend/models"
)

const brandCols = `id, name, COALESCE(description, ''), is_active, created_at, updated_at`

func scanBrand(r rowScanner) (*models.Brand, error) {
	var b models.Brand
	err := r.Scan(&b.Id, &b.Name, &b.Description, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func ListBrands(ctx context.Context, activeOnly bool) ([]*models.Brand, error) {
	query := "SELECT " + brandCols + " FROM brands"
	if activeOnly {
		query += " WHERE is_active = true"
	}
	query += " ORDER BY name ASC"

	rows, err := Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	brands := []*models.Brand{}
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

func CreateBrand(ctx context.Context, in models.BrandCreate) (*models.Brand, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, validationErr("name", "Tên thương hiệu không được để trống")
	}
	row := Pool.QueryRow(ctx, `
		INSERT INTO brands (name, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING `+brandCols,
		name, in.Description, in.IsActive == nil || *in.IsActive)
	b, err := scanBrand(row)
	if isUniqueViolation(err) {
		return nil, conflictErr("Thương hiệu này đã tồn tại")
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// UpdateBrand applies a partial update; a new name is checked for
// uniqueness excluding the brand itself.
func UpdateBrand(ctx context.Context, id int, patch models.BrandPatch) (*models.Brand, error) {
	b := &updateBuilder{}

	if patch.Name.Set {
		name, ok := patch.Name.Get()
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, validationErr("name", "Tên thương hiệu không được để trống")
		}
		var found int
		err := Pool.QueryRow(ctx,
			"SELECT id FROM brands WHERE name = $1 AND id != $2", name, id).Scan(&found)
		if err == nil {
			return nil, conflictErr("Tên thương hiệu này đã tồn tại")
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		b.Set("name", name)
	}
	if patch.Description.Set {
		b.Set("description", patch.Description.Value)
	}
	if patch.IsActive.Set {
		b.Set("is_active", patch.IsActive.Value)
	}

	query, args, err := b.Build("brands", brandCols, id)
	if err != nil {
		return nil, err
	}
	brand, err := scanBrand(Pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFoundErr("Không tìm thấy thương hiệu")
	}
	if isUniqueViolation(err) {
		return nil, conflictErr("Tên thương hiệu này đã tồn tại")
	}
	if err != nil {
		return nil, err
	}
	return brand, nil
}

// DeactivateBrand is the DELETE semantics for brands: soft delete only,
// since gold price rows reference the brand by name.
func DeactivateBrand(ctx context.Context, id int) error {
	tag, err := Pool.Exec(ctx,
		"UPDATE brands SET is_active = false, updated_at = NOW() WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notFoundErr("Không tìm thấy thương hiệu")
	}
	return nil
}

// BrandActive reports whether an active brand with this name exists.
func BrandActive(ctx context.Context, name string) (bool, error) {
	var found int
	err := Pool.QueryRow(ctx,
		"SELECT id FROM brands WHERE name = $1 AND is_active = true", name).Scan(&found)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}
