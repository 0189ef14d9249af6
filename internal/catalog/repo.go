// Package catalog provides the repository interface and PostgreSQL
// implementation for the product table and its per-size stock rows.
package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("product not found")

type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	SizesByProduct(ctx context.Context, productID string) ([]Size, error)
	SizesByProducts(ctx context.Context) ([]Size, error)
	SetStock(ctx context.Context, sizeID string, stock int) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// List returns every product, oldest first. The ordering is stable so
// refetching without intervening writes yields the same sequence.
func (r *PGRepo) List(ctx context.Context) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, price::text, image_url, design_name, created_at
		FROM products
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.DesignName, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p Product
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description, price::text, image_url, design_name, created_at
		FROM products WHERE id=$1
	`, id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.DesignName, &p.CreatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *PGRepo) SizesByProduct(ctx context.Context, productID string) ([]Size, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, product_id, size, stock
		FROM product_sizes WHERE product_id=$1
		ORDER BY id
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Size
	for rows.Next() {
		var s Size
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Size, &s.Stock); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PGRepo) SizesByProducts(ctx context.Context) ([]Size, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, product_id, size, stock
		FROM product_sizes
		ORDER BY product_id, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Size
	for rows.Next() {
		var s Size
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Size, &s.Stock); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// SetStock overwrites the stock count for one size row. Last write wins;
// there is no concurrency token on the row.
func (r *PGRepo) SetStock(ctx context.Context, sizeID string, stock int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE product_sizes SET stock=$2 WHERE id=$1
	`, sizeID, stock)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
