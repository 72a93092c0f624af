package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("product not found")
)

// Filter narrows product listings. Zero value lists every available product.
type Filter struct {
	CategoryID string
	Featured   *bool
	Limit      int
	Offset     int
}

type Repository interface {
	Categories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, c *Category) error
	CountCategories(ctx context.Context) (int, error)
	Products(ctx context.Context, f Filter) ([]Product, error)
	ProductByID(ctx context.Context, id string) (*Product, error)
	CreateProduct(ctx context.Context, p *Product) error
	UpdateProduct(ctx context.Context, p *Product) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Categories(ctx context.Context) ([]Category, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, COALESCE(description,''), COALESCE(image_url,''), is_active, sort_order, created_at
		FROM categories
		WHERE is_active
		ORDER BY sort_order
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL, &c.IsActive, &c.SortOrder, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PGRepo) CreateCategory(ctx context.Context, c *Category) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO categories (id, name, description, image_url, is_active, sort_order, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,NOW())
	`, c.ID, c.Name, c.Description, c.ImageURL, c.IsActive, c.SortOrder)
	return err
}

func (r *PGRepo) CountCategories(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n)
	return n, err
}

func (r *PGRepo) Products(ctx context.Context, f Filter) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, name, COALESCE(description,''), category_id, price::text, COALESCE(image_url,''),
		       ingredients, sizes, is_available, is_featured, created_at, updated_at
		FROM products
		WHERE is_available
		  AND ($1 = '' OR category_id::text = $1)
		  AND ($2::boolean IS NULL OR is_featured = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`, f.CategoryID, f.Featured, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *PGRepo) ProductByID(ctx context.Context, id string) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	row := r.db.QueryRow(ctx, `
		SELECT id, name, COALESCE(description,''), category_id, price::text, COALESCE(image_url,''),
		       ingredients, sizes, is_available, is_featured, created_at, updated_at
		FROM products WHERE id=$1
	`, id)
	p, err := scanProduct(row.Scan)
	if err != nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (r *PGRepo) CreateProduct(ctx context.Context, p *Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	ingredients, sizes, err := encodeJSONB(p)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO products (id, name, description, category_id, price, image_url,
		                      ingredients, sizes, is_available, is_featured, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,NOW(),NOW())
	`, p.ID, p.Name, p.Description, p.CategoryID, p.Price.String(), p.ImageURL,
		ingredients, sizes, p.IsAvailable, p.IsFeatured)
	return err
}

func (r *PGRepo) UpdateProduct(ctx context.Context, p *Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	ingredients, sizes, err := encodeJSONB(p)
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET name = $2, description = $3, category_id = $4, price = $5, image_url = $6,
		    ingredients = $7, sizes = $8, is_available = $9, is_featured = $10, updated_at = NOW()
		WHERE id = $1
	`, p.ID, p.Name, p.Description, p.CategoryID, p.Price.String(), p.ImageURL,
		ingredients, sizes, p.IsAvailable, p.IsFeatured)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func encodeJSONB(p *Product) (ingredients, sizes []byte, err error) {
	if ingredients, err = json.Marshal(p.Ingredients); err != nil {
		return nil, nil, err
	}
	if sizes, err = json.Marshal(p.Sizes); err != nil {
		return nil, nil, err
	}
	return ingredients, sizes, nil
}

func scanProduct(scan func(dest ...any) error) (*Product, error) {
	var (
		p           Product
		price       string
		ingredients []byte
		sizes       []byte
	)
	if err := scan(&p.ID, &p.Name, &p.Description, &p.CategoryID, &price, &p.ImageURL,
		&ingredients, &sizes, &p.IsAvailable, &p.IsFeatured, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	var err error
	if p.Price, err = decimal.NewFromString(price); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(ingredients, &p.Ingredients); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(sizes, &p.Sizes); err != nil {
		return nil, err
	}
	return &p, nil
}
