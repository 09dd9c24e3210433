package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"netson-backend/models"
)

const imageCols = `id, public_id, url, secure_url, width, height, format, bytes,
	COALESCE(folder, ''), COALESCE(alt_text, ''), COALESCE(title, ''),
	product_id, is_featured, sort_order, created_at, updated_at`

func scanImage(r rowScanner) (*models.Image, error) {
	var img models.Image
	err := r.Scan(&img.Id, &img.PublicId, &img.URL, &img.SecureURL, &img.Width,
		&img.Height, &img.Format, &img.Bytes, &img.Folder, &img.AltText,
		&img.Title, &img.ProductId, &img.IsFeatured, &img.SortOrder,
		&img.CreatedAt, &img.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func ListImages(ctx context.Context, f models.ImageFilters) ([]*models.Image, error) {
	where := []string{"1=1"}
	var args []any
	if f.ProductId != nil {
		args = append(args, *f.ProductId)
		where = append(where, fmt.Sprintf("product_id = $%d", len(args)))
	}
	if f.Featured {
		where = append(where, "is_featured = true")
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit, f.Offset)
	query := fmt.Sprintf(`
		SELECT %s FROM images
		WHERE %s
		ORDER BY sort_order ASC, created_at DESC
		LIMIT $%d OFFSET $%d`, imageCols, strings.Join(where, " AND "), len(args)-1, len(args))

	rows, err := Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := []*models.Image{}
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func GetImage(ctx context.Context, id int) (*models.Image, error) {
	row := Pool.QueryRow(ctx, `SELECT `+imageCols+` FROM images WHERE id = $1`, id)
	img, err := scanImage(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFoundErr("Không tìm thấy hình ảnh")
	}
	return img, err
}

func CreateImage(ctx context.Context, in models.ImageCreate) (*models.Image, error) {
	row := Pool.QueryRow(ctx, `
		INSERT INTO images (public_id, url, secure_url, width, height, format,
			bytes, folder, alt_text, title, product_id, is_featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+imageCols,
		in.PublicId, in.URL, in.SecureURL, in.Width, in.Height, in.Format,
		in.Bytes, in.Folder, in.AltText, in.Title, in.ProductId, in.IsFeatured)
	img, err := scanImage(row)
	if err != nil && isUniqueViolation(err) {
		return nil, conflictErr("Hình ảnh này đã tồn tại")
	}
	return img, err
}

// SetImageFeatured marks one image featured and clears the flag on every
// sibling of the same product, so the partial unique index never trips.
func SetImageFeatured(ctx context.Context, id int) (*models.Image, error) {
	var img *models.Image
	err := pgx.BeginFunc(ctx, Pool, func(tx pgx.Tx) error {
		var productId *int
		err := tx.QueryRow(ctx, `SELECT product_id FROM images WHERE id = $1`, id).Scan(&productId)
		if errors.Is(err, pgx.ErrNoRows) {
			return notFoundErr("Không tìm thấy hình ảnh")
		}
		if err != nil {
			return err
		}
		if productId != nil {
			_, err = tx.Exec(ctx, `
				UPDATE images SET is_featured = false, updated_at = NOW()
				WHERE product_id = $1 AND is_featured = true AND id != $2`, *productId, id)
			if err != nil {
				return err
			}
		}
		row := tx.QueryRow(ctx, `
			UPDATE images SET is_featured = true, updated_at = NOW()
			WHERE id = $1
			RETURNING `+imageCols, id)
		img, err = scanImage(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return img, nil
}

// DeleteImage removes the row and reports the public_id so the caller can
// delete the remote object afterwards.
func DeleteImage(ctx context.Context, id int) (string, error) {
	var publicId string
	err := Pool.QueryRow(ctx, `
		DELETE FROM images WHERE id = $1 RETURNING public_id`, id).Scan(&publicId)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", notFoundErr("Không tìm thấy hình ảnh")
	}
	return publicId, err
}
