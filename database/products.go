package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"netson-backend/models"
	"netson-backend/utils"
)

const productCols = `id, title, COALESCE(description, ''), category_id, price::text,
	featured_image, COALESCE(meta_description, ''), COALESCE(slug, ''), is_featured,
	is_active, stock_quantity, weight_grams::text, dimensions_cm, COALESCE(materials, ''),
	customization_available, sort_order, view_count, likes, rating::text, created_at, updated_at`

const productColsP = `p.id, p.title, COALESCE(p.description, ''), p.category_id, p.price::text,
	p.featured_image, COALESCE(p.meta_description, ''), COALESCE(p.slug, ''), p.is_featured,
	p.is_active, p.stock_quantity, p.weight_grams::text, p.dimensions_cm, COALESCE(p.materials, ''),
	p.customization_available, p.sort_order, p.view_count, p.likes, p.rating::text, p.created_at, p.updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(r rowScanner, extra ...any) (*models.Product, error) {
	var (
		p             models.Product
		price, weight *string
		rating        *string
		dims          []byte
	)
	dest := []any{
		&p.Id, &p.Title, &p.Description, &p.CategoryId, &price,
		&p.FeaturedImage, &p.MetaDescription, &p.Slug, &p.IsFeatured,
		&p.IsActive, &p.StockQuantity, &weight, &dims, &p.Materials,
		&p.CustomizationAvailable, &p.SortOrder, &p.ViewCount, &p.Likes,
		&rating, &p.CreatedAt, &p.UpdatedAt,
	}
	dest = append(dest, extra...)
	if err := r.Scan(dest...); err != nil {
		return nil, err
	}
	if price != nil {
		d, err := decimal.NewFromString(*price)
		if err != nil {
			return nil, fmt.Errorf("bad price value: %w", err)
		}
		p.Price = &d
	}
	if weight != nil {
		d, err := decimal.NewFromString(*weight)
		if err != nil {
			return nil, fmt.Errorf("bad weight value: %w", err)
		}
		p.WeightGrams = &d
	}
	if rating != nil {
		d, err := decimal.NewFromString(*rating)
		if err != nil {
			return nil, fmt.Errorf("bad rating value: %w", err)
		}
		p.Rating = d
	}
	if len(dims) > 0 {
		if err := json.Unmarshal(dims, &p.DimensionsCm); err != nil {
			return nil, fmt.Errorf("bad dimensions value: %w", err)
		}
	}
	p.Images = []string{}
	return &p, nil
}

// attachProductImages fills Images with the secure URLs of every image row
// linked to each product, one aggregate query for the whole page.
func attachProductImages(ctx context.Context, products []*models.Product) error {
	if len(products) == 0 {
		return nil
	}
	ids := make([]int, 0, len(products))
	byID := make(map[int]*models.Product, len(products))
	for _, p := range products {
		ids = append(ids, p.Id)
		byID[p.Id] = p
	}
	rows, err := Pool.Query(ctx, `
		SELECT product_id, array_agg(secure_url ORDER BY sort_order, id)
		FROM images WHERE product_id = ANY($1)
		GROUP BY product_id`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var pid int
		var urls []string
		if err := rows.Scan(&pid, &urls); err != nil {
			return err
		}
		if p, ok := byID[pid]; ok {
			p.Images = urls
		}
	}
	return rows.Err()
}

// ListProducts returns the public catalog page (active products only) and
// the total count matching the filters.
func ListProducts(ctx context.Context, f models.ProductFilters) ([]*models.Product, int, error) {
	where := []string{"p.is_active = true"}
	var args []any

	add := func(cond string, vals ...any) {
		for _, v := range vals {
			args = append(args, v)
			cond = strings.Replace(cond, "?", fmt.Sprintf("$%d", len(args)), 1)
		}
		where = append(where, cond)
	}

	if f.CategorySlug != "" {
		add("c.slug = ?", f.CategorySlug)
	}
	if f.PriceMin != nil {
		add("p.price >= ?", f.PriceMin.String())
	}
	if f.PriceMax != nil {
		add("p.price <= ?", f.PriceMax.String())
	}
	if f.Featured {
		where = append(where, "p.is_featured = true")
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		add("(p.title ILIKE ? OR p.description ILIKE ?)", "%"+s+"%", "%"+s+"%")
	}

	whereSQL := strings.Join(where, " AND ")

	var total int
	countSQL := "SELECT COUNT(*) FROM products p LEFT JOIN categories c ON p.category_id = c.id WHERE " + whereSQL
	if err := Pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order := "p.sort_order ASC, p.created_at DESC"
	switch f.SortBy {
	case "popular":
		order = "p.view_count DESC, p.likes DESC"
	case "rating":
		order = "p.rating DESC, p.likes DESC"
	case "latest":
		order = "p.created_at DESC"
	case "price_low":
		order = "p.price ASC"
	case "price_high":
		order = "p.price DESC"
	}

	offset := (f.Page - 1) * f.Limit
	query := fmt.Sprintf(`
		SELECT %s, c.name, c.slug
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d`, productColsP, whereSQL, order, len(args)+1, len(args)+2)
	args = append(args, f.Limit, offset)

	products, err := queryProductsJoined(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	if err := attachProductImages(ctx, products); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// AdminListProducts returns every product regardless of active status.
func AdminListProducts(ctx context.Context) ([]*models.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s, c.name, c.slug
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		ORDER BY p.created_at DESC`, productColsP)
	products, err := queryProductsJoined(ctx, query)
	if err != nil {
		return nil, err
	}
	if err := attachProductImages(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

func queryProductsJoined(ctx context.Context, query string, args ...any) ([]*models.Product, error) {
	rows, err := Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []*models.Product{}
	for rows.Next() {
		var catName, catSlug *string
		p, err := scanProduct(rows, &catName, &catSlug)
		if err != nil {
			return nil, err
		}
		if catName != nil && p.CategoryId != nil {
			p.Category = &models.Category{Id: *p.CategoryId, Name: *catName, Slug: *catSlug, IsActive: true}
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// GetProduct returns one product by id with its images.
func GetProduct(ctx context.Context, id int) (*models.Product, error) {
	row := Pool.QueryRow(ctx, "SELECT "+productCols+" FROM products WHERE id = $1", id)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFoundErr("Sản phẩm không tồn tại")
	}
	if err != nil {
		return nil, err
	}
	if err := attachProductImages(ctx, []*models.Product{p}); err != nil {
		return nil, err
	}
	return p, nil
}

// ProductExists reports whether the id has a row.
func ProductExists(ctx context.Context, id int) (bool, error) {
	var found int
	err := Pool.QueryRow(ctx, "SELECT id FROM products WHERE id = $1", id).Scan(&found)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

// CreateProduct validates the category reference and slug uniqueness, then
// inserts; the whole sequence runs in one transaction.
func CreateProduct(ctx context.Context, in models.ProductCreate) (*models.Product, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, validationErr("title", "Tên sản phẩm không được để trống")
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, validationErr("price", "Giá sản phẩm không hợp lệ")
	}
	slug := utils.Slugify(title)

	var p *models.Product
	err := pgx.BeginFunc(ctx, Pool, func(tx pgx.Tx) error {
		if in.CategoryId != nil {
			if err := categoryMustExist(ctx, tx, *in.CategoryId); err != nil {
				return err
			}
		}
		var existing int
		err := tx.QueryRow(ctx, "SELECT id FROM products WHERE slug = $1", slug).Scan(&existing)
		if err == nil {
			return conflictErr("Tên sản phẩm đã tồn tại, vui lòng chọn tên khác")
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		var dims any
		if in.DimensionsCm != nil {
			b, err := json.Marshal(in.DimensionsCm)
			if err != nil {
				return err
			}
			dims = b
		}
		row := tx.QueryRow(ctx, `
			INSERT INTO products (
				title, description, category_id, price, meta_description, slug,
				is_featured, is_active, stock_quantity, weight_grams, dimensions_cm,
				materials, customization_available, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
			RETURNING `+productCols,
			title,
			in.Description,
			in.CategoryId,
			decimalArg(in.Price),
			in.MetaDescription,
			slug,
			in.IsFeatured,
			in.IsActive == nil || *in.IsActive,
			in.StockQuantity,
			decimalArg(in.WeightGrams),
			dims,
			in.Materials,
			in.CustomizationAvailable == nil || *in.CustomizationAvailable,
		)
		p, err = scanProduct(row)
		if isUniqueViolation(err) {
			return conflictErr("Tên sản phẩm đã tồn tại, vui lòng chọn tên khác")
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProduct applies a partial update: only supplied fields are touched,
// each re-validated before inclusion. Any failed validation aborts the whole
// operation with no partial write.
func UpdateProduct(ctx context.Context, id int, patch models.ProductPatch) (*models.Product, error) {
	b := &updateBuilder{}

	if patch.Title.Set {
		title, ok := patch.Title.Get()
		title = strings.TrimSpace(title)
		if !ok || title == "" {
			return nil, validationErr("title", "Tên sản phẩm không được để trống")
		}
		slug := utils.Slugify(title)
		taken, err := slugTaken(ctx, "products", slug, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, conflictErr("Tên sản phẩm đã tồn tại, vui lòng chọn tên khác")
		}
		b.SetPair("title", title, "slug", slug)
	}
	if patch.Description.Set {
		b.Set("description", patch.Description.Value)
	}
	if patch.CategoryId.Set {
		if cid, ok := patch.CategoryId.Get(); ok {
			if err := categoryMustExist(ctx, Pool, cid); err != nil {
				return nil, err
			}
		}
		b.Set("category_id", patch.CategoryId.Value)
	}
	if patch.Price.Set {
		if v, ok := patch.Price.Get(); ok && v.IsNegative() {
			return nil, validationErr("price", "Giá sản phẩm không hợp lệ")
		}
		b.Set("price", decimalArg(patch.Price.Value))
	}
	if patch.MetaDescription.Set {
		b.Set("meta_description", patch.MetaDescription.Value)
	}
	if patch.IsFeatured.Set {
		b.Set("is_featured", patch.IsFeatured.Value)
	}
	if patch.IsActive.Set {
		b.Set("is_active", patch.IsActive.Value)
	}
	if patch.StockQuantity.Set {
		if v, ok := patch.StockQuantity.Get(); !ok || v < 0 {
			return nil, validationErr("stock_quantity", "Số lượng tồn kho không hợp lệ")
		}
		b.Set("stock_quantity", patch.StockQuantity.Value)
	}
	if patch.WeightGrams.Set {
		b.Set("weight_grams", decimalArg(patch.WeightGrams.Value))
	}
	if patch.DimensionsCm.Set {
		var dims any
		if patch.DimensionsCm.Value != nil {
			bts, err := json.Marshal(patch.DimensionsCm.Value)
			if err != nil {
				return nil, err
			}
			dims = bts
		}
		b.Set("dimensions_cm", dims)
	}
	if patch.Materials.Set {
		b.Set("materials", patch.Materials.Value)
	}
	if patch.CustomizationAvailable.Set {
		b.Set("customization_available", patch.CustomizationAvailable.Value)
	}

	query, args, err := b.Build("products", productCols, id)
	if err != nil {
		return nil, err
	}
	p, err := scanProduct(Pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFoundErr("Sản phẩm không tồn tại")
	}
	if isUniqueViolation(err) {
		return nil, conflictErr("Tên sản phẩm đã tồn tại, vui lòng chọn tên khác")
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProduct hard-deletes; linked images go with it via the FK cascade.
func DeleteProduct(ctx context.Context, id int) error {
	tag, err := Pool.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notFoundErr("Sản phẩm không tồn tại")
	}
	return nil
}

// slugTaken checks uniqueness excluding the row being updated, so renaming
// a resource to its own current slug is never a conflict.
func slugTaken(ctx context.Context, table, slug string, excludeID int) (bool, error) {
	var found int
	err := Pool.QueryRow(ctx,
		fmt.Sprintf("SELECT id FROM %s WHERE slug = $1 AND id != $2", table),
		slug, excludeID).Scan(&found)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func categoryMustExist(ctx context.Context, q querier, id int) error {
	var found int
	err := q.QueryRow(ctx, "SELECT id FROM categories WHERE id = $1", id).Scan(&found)
	if errors.Is(err, pgx.ErrNoRows) {
		return validationErr("category_id", "Danh mục không tồn tại")
	}
	return err
}

func decimalArg(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}
