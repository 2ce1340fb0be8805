package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/aidex-platform/aidex-server/internal/entity"
)

func (r *Repository) CreateFund(ctx context.Context, f entity.Fund) error {
	const q = `
	INSERT INTO funds (
		id,
		transaction_id,
		amount,
		email,
		donor_name,
		avatar,
		funding_date
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		f.ID,
		f.TransactionID,
		f.Amount,
		f.Email,
		f.DonorName,
		f.Avatar,
		f.FundingDate,
	)
	if err != nil {
		if uniqueViolation(err, "transaction_id") {
			return entity.ErrDuplicateTransaction
		}

		return err
	}

	return nil
}

func (r *Repository) Funds(ctx context.Context, page, limit uint64) ([]entity.Fund, int, error) {
	stmt := sq.Select(
		"id",
		"transaction_id",
		"amount",
		"email",
		"donor_name",
		"avatar",
		"funding_date",
		"COUNT(*) OVER() AS total_count",
	).From("funds").
		OrderBy("funding_date DESC").
		Limit(limit).
		Offset(page*limit - limit).
		PlaceholderFormat(sq.Dollar)

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	funds := make([]entity.Fund, 0, limit)

	var totalCount int

	for rows.Next() {
		var f entity.Fund

		var count int

		err = rows.Scan(
			&f.ID,
			&f.TransactionID,
			&f.Amount,
			&f.Email,
			&f.DonorName,
			&f.Avatar,
			&f.FundingDate,
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		funds = append(funds, f)
	}

	return funds, totalCount, nil
}

func (r *Repository) SumFunds(ctx context.Context) (decimal.Decimal, error) {
	const q = `SELECT COALESCE(SUM(amount), 0) FROM funds`

	var sum decimal.Decimal

	err := r.db.QueryRow(ctx, q).Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	return sum, nil
}

func (r *Repository) CreateCheckoutSession(ctx context.Context, s entity.CheckoutSession) error {
	const q = `
	INSERT INTO checkout_sessions (
		id,
		session_id,
		email,
		name,
		avatar,
		amount,
		status,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		s.ID,
		s.SessionID,
		s.Email,
		s.Name,
		s.Avatar,
		s.Amount,
		s.Status,
		s.CreatedAt,
		s.UpdatedAt,
	)

	return err
}

func (r *Repository) CheckoutSessionBySessionID(ctx context.Context, sessionID string) (entity.CheckoutSession, error) {
	q := selectCheckoutSession + " WHERE session_id = $1"
	return scanCheckoutSession(r.db.QueryRow(ctx, q, sessionID))
}

// UnresolvedCheckoutSessions returns created sessions younger than maxAge,
// oldest first, for the status poller.
func (r *Repository) UnresolvedCheckoutSessions(ctx context.Context, maxAge time.Duration) ([]entity.CheckoutSession, error) {
	q := selectCheckoutSession + " WHERE status = $1 AND created_at > $2 ORDER BY created_at ASC"

	rows, err := r.db.Query(ctx, q, entity.CheckoutStatusCreated, time.Now().Add(-maxAge))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []entity.CheckoutSession

	for rows.Next() {
		s, err := scanCheckoutSession(rows)
		if err != nil {
			return nil, err
		}

		sessions = append(sessions, s)
	}

	return sessions, nil
}

func (r *Repository) UpdateCheckoutSessionStatus(
	ctx context.Context,
	id uuid.UUID,
	status entity.CheckoutStatus,
	updatedAt time.Time,
) error {
	const q = `UPDATE checkout_sessions SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, q, status, updatedAt, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func scanCheckoutSession(row pgx.Row) (s entity.CheckoutSession, err error) {
	err = row.Scan(
		&s.ID,
		&s.SessionID,
		&s.Email,
		&s.Name,
		&s.Avatar,
		&s.Amount,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.CheckoutSession{}, entity.ErrNotFound
		}

		return entity.CheckoutSession{}, err
	}

	return s, nil
}
