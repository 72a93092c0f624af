package order

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Order, error)
	ListAll(ctx context.Context, limit, offset int) ([]Order, error)
	// UpdateStatus writes the new status only if the stored one still equals
	// from. It returns false (and no error) when the guard missed.
	UpdateStatus(ctx context.Context, id string, from, to Status) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
    INSERT INTO orders (id, user_id, status, total_amount, phone, delivery_address, notes, created_at, updated_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
  `, o.ID, o.UserID, o.Status.String(), o.TotalAmount.String(), o.Phone,
		nullable(o.DeliveryAddress), nullable(o.Notes), o.CreatedAt, o.UpdatedAt); err != nil {
		return err
	}

	for _, l := range o.Lines {
		if _, err := tx.Exec(ctx, `
      INSERT INTO order_items (id, order_id, product_id, size, quantity, unit_price)
      VALUES ($1,$2,$3,$4,$5,$6)
    `, l.ID, o.ID, l.ProductID, nullable(l.Size), l.Quantity, l.UnitPrice.String()); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var (
		o      Order
		status string
		total  string
	)
	if err := r.db.QueryRow(ctx, `
    SELECT id, user_id, status, total_amount::text, phone,
           COALESCE(delivery_address,''), COALESCE(notes,''), created_at, updated_at
    FROM orders WHERE id=$1
  `, id).Scan(&o.ID, &o.UserID, &status, &total, &o.Phone,
		&o.DeliveryAddress, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, ErrNotFound
	}
	o.Status = Status(status)
	var err error
	if o.TotalAmount, err = decimal.NewFromString(total); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
    SELECT id, order_id, product_id, COALESCE(size,''), quantity, unit_price::text
    FROM order_items WHERE order_id=$1
    ORDER BY id
  `, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			l     Line
			price string
		)
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.Size, &l.Quantity, &price); err != nil {
			return nil, err
		}
		if l.UnitPrice, err = decimal.NewFromString(price); err != nil {
			return nil, err
		}
		o.Lines = append(o.Lines, l)
	}
	return &o, rows.Err()
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Order, error) {
	return r.list(ctx, `
    SELECT id, user_id, status, total_amount::text, phone,
           COALESCE(delivery_address,''), COALESCE(notes,''), created_at, updated_at
    FROM orders WHERE user_id=$1
    ORDER BY created_at DESC LIMIT $2 OFFSET $3
  `, userID, limit, offset)
}

func (r *PGRepo) ListAll(ctx context.Context, limit, offset int) ([]Order, error) {
	return r.list(ctx, `
    SELECT id, user_id, status, total_amount::text, phone,
           COALESCE(delivery_address,''), COALESCE(notes,''), created_at, updated_at
    FROM orders
    ORDER BY created_at DESC LIMIT $1 OFFSET $2
  `, limit, offset)
}

func (r *PGRepo) list(ctx context.Context, query string, args ...any) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// shared limit/offset clamping: args end with limit, offset
	n := len(args)
	if lim, ok := args[n-2].(int); ok && (lim <= 0 || lim > 100) {
		args[n-2] = 20
	}
	if off, ok := args[n-1].(int); ok && off < 0 {
		args[n-1] = 0
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var (
			o      Order
			status string
			total  string
		)
		if err := rows.Scan(&o.ID, &o.UserID, &status, &total, &o.Phone,
			&o.DeliveryAddress, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		o.Status = Status(status)
		if o.TotalAmount, err = decimal.NewFromString(total); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *PGRepo) UpdateStatus(ctx context.Context, id string, from, to Status) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
    UPDATE orders
    SET status = $3, updated_at = NOW()
    WHERE id = $1 AND status = $2
  `, id, from.String(), to.String())
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
