package order

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aquilaclo/storefront/internal/catalog"
)

var ErrNotFound = errors.New("order not found")

type Repository interface {
	// Create writes the order, its items, and clears the user's cart rows in
	// one transaction. Partial failure rolls everything back.
	Create(ctx context.Context, o *Order, items []Item) error
	ListByUser(ctx context.Context, userID string) ([]WithItems, error)
	ListAll(ctx context.Context) ([]WithItems, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, o *Order, items []Item) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
    INSERT INTO orders (id, user_id, customer_name, customer_email, customer_phone,
                        shipping_address, total_amount, status, created_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,NOW())
  `, o.ID, o.UserID, o.CustomerName, o.CustomerEmail, o.CustomerPhone,
		o.ShippingAddress, o.TotalAmount, o.Status); err != nil {
		return err
	}

	for _, it := range items {
		if _, err := tx.Exec(ctx, `
      INSERT INTO order_items (id, order_id, product_id, size, quantity, price)
      VALUES ($1,$2,$3,$4,$5,$6)
    `, it.ID, o.ID, it.ProductID, it.Size, it.Quantity, it.Price); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id=$1`, o.UserID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]WithItems, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
    SELECT id, user_id, customer_name, customer_email, customer_phone,
           shipping_address, total_amount::text, status, created_at
    FROM orders WHERE user_id=$1
    ORDER BY created_at DESC
  `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}
	return r.attachItems(ctx, out)
}

func (r *PGRepo) ListAll(ctx context.Context) ([]WithItems, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
    SELECT id, user_id, customer_name, customer_email, customer_phone,
           shipping_address, total_amount::text, status, created_at
    FROM orders
    ORDER BY created_at DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}
	return r.attachItems(ctx, out)
}

func scanOrders(rows pgx.Rows) ([]WithItems, error) {
	var out []WithItems
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
			&o.ShippingAddress, &o.TotalAmount, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, WithItems{Order: o})
	}
	return out, rows.Err()
}

func (r *PGRepo) attachItems(ctx context.Context, orders []WithItems) ([]WithItems, error) {
	for i := range orders {
		rows, err := r.db.Query(ctx, `
      SELECT oi.id, oi.order_id, oi.product_id, oi.size, oi.quantity, oi.price::text,
             p.id, p.name, p.description, p.price::text, p.image_url, p.design_name, p.created_at
      FROM order_items oi
      JOIN products p ON p.id = oi.product_id
      WHERE oi.order_id=$1
      ORDER BY oi.id
    `, orders[i].ID)
		if err != nil {
			return nil, err
		}
		var items []ItemWithProduct
		for rows.Next() {
			var it ItemWithProduct
			var p catalog.Product
			if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Size, &it.Quantity, &it.Price,
				&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.DesignName, &p.CreatedAt); err != nil {
				rows.Close()
				return nil, err
			}
			it.Product = p
			items = append(items, it)
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}
