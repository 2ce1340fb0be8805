package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/aidex-platform/aidex-server/internal/entity"
)

func (r *Repository) CreateUser(ctx context.Context, u entity.User) error {
	const q = `
	INSERT INTO users (
		id,
		email,
		name,
		role,
		status,
		blood_group,
		district,
		upazila,
		avatar,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		u.ID,
		u.Email,
		u.Name,
		u.Role,
		u.Status,
		u.BloodGroup,
		u.District,
		u.Upazila,
		u.Avatar,
		u.CreatedAt,
		u.UpdatedAt,
	)
	if err != nil {
		if uniqueViolation(err, "email") {
			return entity.ErrDuplicateEmail
		}

		return err
	}

	return nil
}

func (r *Repository) UserByEmail(ctx context.Context, email string) (entity.User, error) {
	q := selectUser + " WHERE email = $1"
	return scanUser(r.db.QueryRow(ctx, q, email))
}

func (r *Repository) Users(ctx context.Context, f entity.UserFilter) ([]entity.User, int, error) {
	stmt := sq.Select(
		"id",
		"email",
		"name",
		"role",
		"status",
		"blood_group",
		"district",
		"upazila",
		"avatar",
		"created_at",
		"updated_at",
		"COUNT(*) OVER() AS total_count",
	).From("users").PlaceholderFormat(sq.Dollar)

	if f.Role != nil {
		stmt = stmt.Where(sq.Eq{"role": *f.Role})
	}

	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"status": *f.Status})
	}

	stmt = stmt.
		OrderBy("created_at DESC").
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

	users := make([]entity.User, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		var u entity.User

		var count int

		err = rows.Scan(
			&u.ID,
			&u.Email,
			&u.Name,
			&u.Role,
			&u.Status,
			&u.BloodGroup,
			&u.District,
			&u.Upazila,
			&u.Avatar,
			&u.CreatedAt,
			&u.UpdatedAt,
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		users = append(users, u)
	}

	return users, totalCount, nil
}

// Donors returns active donor-role users matching the public search filter.
func (r *Repository) Donors(ctx context.Context, f entity.DonorFilter) ([]entity.User, error) {
	stmt := sq.Select(
		"id",
		"email",
		"name",
		"role",
		"status",
		"blood_group",
		"district",
		"upazila",
		"avatar",
		"created_at",
		"updated_at",
	).From("users").
		Where(sq.Eq{"role": entity.RoleDonor, "status": entity.UserStatusActive}).
		PlaceholderFormat(sq.Dollar)

	if f.BloodGroup != "" {
		stmt = stmt.Where(sq.Eq{"blood_group": f.BloodGroup})
	}

	if f.District != "" {
		stmt = stmt.Where(sq.Eq{"district": f.District})
	}

	if f.Upazila != "" {
		stmt = stmt.Where(sq.Eq{"upazila": f.Upazila})
	}

	sql, args, err := stmt.OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var donors []entity.User

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}

		donors = append(donors, u)
	}

	return donors, nil
}

func (r *Repository) UpdateProfile(ctx context.Context, email string, p entity.ProfilePatch, updatedAt time.Time) error {
	const q = `
	UPDATE users
	SET name = $1, blood_group = $2, district = $3, upazila = $4, avatar = $5, updated_at = $6
	WHERE email = $7`

	result, err := r.db.Exec(ctx, q, p.Name, p.BloodGroup, p.District, p.Upazila, p.Avatar, updatedAt, email)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) SetUserRoleStatus(ctx context.Context, email string, p entity.RoleStatusPatch, updatedAt time.Time) error {
	stmt := sq.Update("users").
		Set("updated_at", updatedAt).
		Where(sq.Eq{"email": email}).
		PlaceholderFormat(sq.Dollar)

	if p.Role != nil {
		stmt = stmt.Set("role", *p.Role)
	}

	if p.Status != nil {
		stmt = stmt.Set("status", *p.Status)
	}

	sql, args, err := stmt.ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) CountUsersByRole(ctx context.Context, role entity.Role) (int64, error) {
	const q = `SELECT COUNT(*) FROM users WHERE role = $1`

	var count int64

	err := r.db.QueryRow(ctx, q, role).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func scanUser(row pgx.Row) (u entity.User, err error) {
	err = row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.Role,
		&u.Status,
		&u.BloodGroup,
		&u.District,
		&u.Upazila,
		&u.Avatar,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrNotFound
		}

		return entity.User{}, err
	}

	return u, nil
}
