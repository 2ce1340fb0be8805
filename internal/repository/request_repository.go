package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/aidex-platform/aidex-server/internal/entity"
)

func (r *Repository) CreateRequest(ctx context.Context, req entity.DonationRequest) error {
	const q = `
	INSERT INTO donation_requests (
		id,
		requester_email,
		recipient_name,
		blood_group,
		district,
		upazila,
		hospital,
		address,
		donation_date,
		donation_time,
		message,
		status,
		donor_name,
		donor_email,
		requested_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		req.ID,
		req.RequesterEmail,
		req.RecipientName,
		req.BloodGroup,
		req.District,
		req.Upazila,
		req.Hospital,
		req.Address,
		req.DonationDate,
		req.DonationTime,
		req.Message,
		req.Status,
		zeronull.Text(req.DonorName),
		zeronull.Text(req.DonorEmail),
		req.RequestedAt,
		req.UpdatedAt,
	)

	return err
}

func (r *Repository) RequestByID(ctx context.Context, id uuid.UUID) (entity.DonationRequest, error) {
	q := selectRequest + " WHERE id = $1"
	return scanRequest(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) Requests(ctx context.Context, f entity.RequestFilter) ([]entity.DonationRequest, int, error) {
	stmt := sq.Select(
		"id",
		"requester_email",
		"recipient_name",
		"blood_group",
		"district",
		"upazila",
		"hospital",
		"address",
		"donation_date",
		"donation_time",
		"message",
		"status",
		"donor_name",
		"donor_email",
		"requested_at",
		"updated_at",
		"COUNT(*) OVER() AS total_count",
	).From("donation_requests").PlaceholderFormat(sq.Dollar)

	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"status": *f.Status})
	}

	stmt = stmt.
		OrderBy("requested_at DESC").
		Limit(f.Limit).
		Offset(f.Page*f.Limit - f.Limit)

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	requests := make([]entity.DonationRequest, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		var req entity.DonationRequest

		var count int

		err = rows.Scan(
			&req.ID,
			&req.RequesterEmail,
			&req.RecipientName,
			&req.BloodGroup,
			&req.District,
			&req.Upazila,
			&req.Hospital,
			&req.Address,
			&req.DonationDate,
			&req.DonationTime,
			&req.Message,
			&req.Status,
			(*zeronull.Text)(&req.DonorName),
			(*zeronull.Text)(&req.DonorEmail),
			&req.RequestedAt,
			&req.UpdatedAt,
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		requests = append(requests, req)
	}

	return requests, totalCount, nil
}

func (r *Repository) RequestsByRequester(ctx context.Context, email string) (requests []entity.DonationRequest, err error) {
	q := selectRequest + " WHERE requester_email = $1 ORDER BY requested_at DESC"

	rows, err := r.db.Query(ctx, q, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}

		requests = append(requests, req)
	}

	return requests, nil
}

func (r *Repository) UpdateRequestDetails(
	ctx context.Context,
	id uuid.UUID,
	d entity.RequestDetails,
	updatedAt time.Time,
) error {
	// Conditional on status so a concurrent accept cannot race the edit.
	const q = `
	UPDATE donation_requests
	SET recipient_name = $1,
		blood_group = $2,
		district = $3,
		upazila = $4,
		hospital = $5,
		address = $6,
		donation_date = $7,
		donation_time = $8,
		message = $9,
		updated_at = $10
	WHERE id = $11 AND status = $12`

	result, err := r.db.Exec(
		ctx,
		q,
		d.RecipientName,
		d.BloodGroup,
		d.District,
		d.Upazila,
		d.Hospital,
		d.Address,
		d.DonationDate,
		d.DonationTime,
		d.Message,
		updatedAt,
		id,
		entity.RequestStatusPending,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// AcceptRequest applies the donor patch only if the request is still pending
// at write time, guaranteeing at-most-one acceptance per request.
func (r *Repository) AcceptRequest(ctx context.Context, id uuid.UUID, p entity.DonorPatch, updatedAt time.Time) error {
	const q = `
	UPDATE donation_requests
	SET status = $1, donor_name = $2, donor_email = $3, updated_at = $4
	WHERE id = $5 AND status = $6`

	result, err := r.db.Exec(ctx, q, p.Status, p.DonorName, p.DonorEmail, updatedAt, id, entity.RequestStatusPending)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) UpdateRequestStatus(
	ctx context.Context,
	id uuid.UUID,
	status entity.RequestStatus,
	updatedAt time.Time,
) error {
	const q = `UPDATE donation_requests SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, q, status, updatedAt, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteRequest(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM donation_requests WHERE id = $1`

	result, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) CountRequests(ctx context.Context) (int64, error) {
	const q = `SELECT COUNT(*) FROM donation_requests`

	var count int64

	err := r.db.QueryRow(ctx, q).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func scanRequest(row pgx.Row) (req entity.DonationRequest, err error) {
	err = row.Scan(
		&req.ID,
		&req.RequesterEmail,
		&req.RecipientName,
		&req.BloodGroup,
		&req.District,
		&req.Upazila,
		&req.Hospital,
		&req.Address,
		&req.DonationDate,
		&req.DonationTime,
		&req.Message,
		&req.Status,
		(*zeronull.Text)(&req.DonorName),
		(*zeronull.Text)(&req.DonorEmail),
		&req.RequestedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.DonationRequest{}, entity.ErrNotFound
		}

		return entity.DonationRequest{}, err
	}

	return req, nil
}
