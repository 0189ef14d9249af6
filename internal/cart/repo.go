package cart

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aquilaclo/storefront/internal/catalog"
)

var ErrNotFound = errors.New("cart item not found")

type Repository interface {
	AddOrIncrement(ctx context.Context, userID, productID, size string, qty int) error
	ListByUser(ctx context.Context, userID string) ([]Line, error)
	Count(ctx context.Context, userID string) (int, error)
	UpdateQuantity(ctx context.Context, itemID, userID string, qty int) error
	Remove(ctx context.Context, itemID, userID string) error
	Clear(ctx context.Context, userID string) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// AddOrIncrement upserts one (user, product, size) row in a single statement.
// Two concurrent adds for the same key both land on the one row; the
// check-then-insert race the screens used to have cannot produce duplicates.
func (r *PGRepo) AddOrIncrement(ctx context.Context, userID, productID, size string, qty int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO cart_items (id, user_id, product_id, size, quantity)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (user_id, product_id, size)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
	`, uuid.NewString(), userID, productID, size, qty)
	return err
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Line, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT ci.id, ci.user_id, ci.product_id, ci.size, ci.quantity,
		       p.id, p.name, p.description, p.price::text, p.image_url, p.design_name, p.created_at
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.user_id=$1
		ORDER BY ci.id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Line
	for rows.Next() {
		var l Line
		var p catalog.Product
		if err := rows.Scan(&l.ID, &l.UserID, &l.ProductID, &l.Size, &l.Quantity,
			&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.DesignName, &p.CreatedAt); err != nil {
			return nil, err
		}
		l.Product = p
		out = append(out, l)
	}
	return out, rows.Err()
}

// Count returns the badge number: the sum of all quantities for the user.
func (r *PGRepo) Count(ctx context.Context, userID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var n int
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(quantity), 0) FROM cart_items WHERE user_id=$1
	`, userID).Scan(&n)
	return n, err
}

// UpdateQuantity sets a line's quantity; qty <= 0 removes the line instead.
func (r *PGRepo) UpdateQuantity(ctx context.Context, itemID, userID string, qty int) error {
	if qty <= 0 {
		return r.Remove(ctx, itemID, userID)
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE cart_items SET quantity=$3 WHERE id=$1 AND user_id=$2
	`, itemID, userID, qty)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Remove(ctx context.Context, itemID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		DELETE FROM cart_items WHERE id=$1 AND user_id=$2
	`, itemID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Clear(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE user_id=$1`, userID)
	return err
}
