package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"netson-backend/models"
	"netson-backend/utils"
)

const articleCols = `id, title, content, COALESCE(excerpt, ''), COALESCE(slug, ''),
	COALESCE(meta_title, ''), COALESCE(meta_description, ''), COALESCE(keywords, ''),
	og_image, COALESCE(author, 'NetSon'), is_published, published_at, featured,
	view_count, COALESCE(reading_time_minutes, 0), COALESCE(category, ''), tags,
	created_at, updated_at`

func scanArticle(r rowScanner) (*models.Article, error) {
	var a models.Article
	err := r.Scan(&a.Id, &a.Title, &a.Content, &a.Excerpt, &a.Slug,
		&a.MetaTitle, &a.MetaDescription, &a.Keywords, &a.OgImage, &a.Author,
		&a.IsPublished, &a.PublishedAt, &a.Featured, &a.ViewCount,
		&a.ReadingTimeMinutes, &a.Category, &a.Tags, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if a.Tags == nil {
		a.Tags = []string{}
	}
	return &a, nil
}

// ListArticles serves both the public listing (published only, optional
// search and featured filters) and the admin listing (status filter). The
// article body is omitted from list rows.
func ListArticles(ctx context.Context, f models.ArticleFilters) ([]*models.Article, int, error) {
	where := []string{"1=1"}
	var args []any

	switch f.Status {
	case "published":
		where = append(where, "is_published = true")
	case "draft":
		where = append(where, "is_published = false")
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, "%"+s+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(title ILIKE $%d OR content ILIKE $%d OR excerpt ILIKE $%d)", n, n, n))
	}
	if f.Featured {
		where = append(where, "featured = true")
	}
	whereSQL := strings.Join(where, " AND ")

	var total int
	if err := Pool.QueryRow(ctx, "SELECT COUNT(*) FROM articles WHERE "+whereSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (f.Page - 1) * f.Limit
	query := fmt.Sprintf(`
		SELECT id, title, '' AS content, COALESCE(excerpt, ''), COALESCE(slug, ''),
			COALESCE(meta_title, ''), COALESCE(meta_description, ''), COALESCE(keywords, ''),
			og_image, COALESCE(author, 'NetSon'), is_published, published_at, featured,
			view_count, COALESCE(reading_time_minutes, 0), COALESCE(category, ''), tags,
			created_at, updated_at
		FROM articles
		WHERE %s
		ORDER BY published_at DESC NULLS LAST, created_at DESC
		LIMIT $%d OFFSET $%d`, whereSQL, len(args)+1, len(args)+2)
	args = append(args, f.Limit, offset)

	rows, err := Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	articles := []*models.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, 0, err
		}
		articles = append(articles, a)
	}
	return articles, total, rows.Err()
}

// GetArticleBySlug returns a published article and increments its view
// counter in the same statement, so concurrent reads never lose a count.
func GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	row := Pool.QueryRow(ctx, `
		UPDATE articles SET view_count = view_count + 1
		WHERE slug = $1 AND is_published = true
		RETURNING `+articleCols, slug)
	a, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFoundErr("Bài viết không tồn tại")
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func CreateArticle(ctx context.Context, in models.ArticleCreate) (*models.Article, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || strings.TrimSpace(in.Content) == "" {
		return nil, validationErr("title", "Tiêu đề và nội dung là bắt buộc")
	}
	slug := strings.TrimSpace(in.Slug)
	if slug == "" {
		slug = utils.Slugify(title)
	}
	author := in.Author
	if author == "" {
		author = "NetSon"
	}
	publishedAt := in.PublishedAt
	if publishedAt == nil {
		now := time.Now()
		publishedAt = &now
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	row := Pool.QueryRow(ctx, `
		INSERT INTO articles (
			title, content, excerpt, slug, meta_title, meta_description, keywords,
			og_image, author, is_published, published_at, featured,
			reading_time_minutes, category, tags
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING `+articleCols,
		title, in.Content, in.Excerpt, slug, in.MetaTitle, in.MetaDescription,
		in.Keywords, in.OgImage, author,
		in.IsPublished == nil || *in.IsPublished,
		publishedAt, in.Featured,
		utils.ReadingTimeMinutes(in.Content), in.Category, tags)
	a, err := scanArticle(row)
	if isUniqueViolation(err) {
		return nil, conflictErr("Bài viết với slug này đã tồn tại")
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateArticle applies a partial update. A new title re-derives the slug;
// new content recomputes the reading time; an explicit slug wins over the
// derived one.
func UpdateArticle(ctx context.Context, id int, patch models.ArticlePatch) (*models.Article, error) {
	b := &updateBuilder{}

	if patch.Title.Set {
		title, ok := patch.Title.Get()
		title = strings.TrimSpace(title)
		if !ok || title == "" {
			return nil, validationErr("title", "Tiêu đề không được để trống")
		}
		if patch.Slug.Set {
			b.Set("title", title)
		} else {
			slug := utils.Slugify(title)
			taken, err := slugTaken(ctx, "articles", slug, id)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, conflictErr("Bài viết với slug này đã tồn tại")
			}
			b.SetPair("title", title, "slug", slug)
		}
	}
	if patch.Slug.Set {
		slug, ok := patch.Slug.Get()
		slug = strings.TrimSpace(slug)
		if !ok || slug == "" {
			return nil, validationErr("slug", "Slug không được để trống")
		}
		taken, err := slugTaken(ctx, "articles", slug, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, conflictErr("Bài viết với slug này đã tồn tại")
		}
		b.Set("slug", slug)
	}
	if patch.Content.Set {
		content, ok := patch.Content.Get()
		if !ok || strings.TrimSpace(content) == "" {
			return nil, validationErr("content", "Nội dung không được để trống")
		}
		b.SetPair("content", content, "reading_time_minutes", utils.ReadingTimeMinutes(content))
	}
	if patch.Excerpt.Set {
		b.Set("excerpt", patch.Excerpt.Value)
	}
	if patch.MetaTitle.Set {
		b.Set("meta_title", patch.MetaTitle.Value)
	}
	if patch.MetaDescription.Set {
		b.Set("meta_description", patch.MetaDescription.Value)
	}
	if patch.Keywords.Set {
		b.Set("keywords", patch.Keywords.Value)
	}
	if patch.OgImage.Set {
		b.Set("og_image", patch.OgImage.Value)
	}
	if patch.Author.Set {
		b.Set("author", patch.Author.Value)
	}
	if patch.IsPublished.Set {
		b.Set("is_published", patch.IsPublished.Value)
	}
	if patch.PublishedAt.Set {
		b.Set("published_at", patch.PublishedAt.Value)
	}
	if patch.Featured.Set {
		b.Set("featured", patch.Featured.Value)
	}
	if patch.Category.Set {
		b.Set("category", patch.Category.Value)
	}
	if patch.Tags.Set {
		tags, _ := patch.Tags.Get()
		if tags == nil {
			tags = []string{}
		}
		b.Set("tags", tags)
	}

	query, args, err := b.Build("articles", articleCols, id)
	if err != nil {
		return nil, err
	}
	a, err := scanArticle(Pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFoundErr("Bài viết không tồn tại")
	}
	if isUniqueViolation(err) {
		return nil, conflictErr("Bài viết với slug này đã tồn tại")
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func DeleteArticle(ctx context.Context, id int) error {
	tag, err := Pool.Exec(ctx, "DELETE FROM articles WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notFoundErr("Bài viết không tồn tại")
	}
	return nil
}
