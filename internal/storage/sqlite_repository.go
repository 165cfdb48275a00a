package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteTimeLayout = time.RFC3339Nano

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

// OpenSQLite opens the database at path and applies pending migrations.
func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// foreign_keys is per connection.
	db.SetMaxOpenConns(1)
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) CreateRegistration(ctx context.Context, in Registration) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin registration tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO registrations (id, name, email, job_role, other_job_role, design, color, payment_method, card_last4, total_cost, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.Name, in.Email, in.JobRole, in.OtherJobRole, in.Design, in.Color,
		in.PaymentMethod, in.CardLast4, in.TotalCost, mustTime(in.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert registration: %w", err)
	}
	for i, activityID := range in.ActivityIDs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO registration_activities (registration_id, activity_id, position)
			VALUES (?, ?, ?)`, in.ID, activityID, i); err != nil {
			return fmt.Errorf("insert activity %s: %w", activityID, err)
		}
	}
	return tx.Commit()
}

func (r *SQLiteRepository) GetRegistration(ctx context.Context, id string) (Registration, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, job_role, other_job_role, design, color, payment_method, card_last4, total_cost, created_at
		FROM registrations WHERE id = ?`, id)
	item, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Registration{}, ErrNotFound
		}
		return Registration{}, err
	}
	activities, err := r.listActivityIDs(ctx, item.ID)
	if err != nil {
		return Registration{}, err
	}
	item.ActivityIDs = activities
	return item, nil
}

func (r *SQLiteRepository) DeleteRegistration(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM registrations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListRegistrations(ctx context.Context, filter RegistrationListFilter) ([]Registration, error) {
	query := `SELECT id, name, email, job_role, other_job_role, design, color, payment_method, card_last4, total_cost, created_at FROM registrations`
	clauses := make([]string, 0, 3)
	args := make([]any, 0, 5)
	if filter.Email != "" {
		clauses = append(clauses, "email = ?")
		args = append(args, filter.Email)
	}
	if filter.PaymentMethod != "" {
		clauses = append(clauses, "payment_method = ?")
		args = append(args, filter.PaymentMethod)
	}
	if filter.ActivityID != "" {
		clauses = append(clauses, "id IN (SELECT registration_id FROM registration_activities WHERE activity_id = ?)")
		args = append(args, filter.ActivityID)
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY created_at DESC, id ASC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	out := make([]Registration, 0)
	for rows.Next() {
		item, scanErr := scanRegistration(rows)
		if scanErr != nil {
			_ = rows.Close()
			return nil, scanErr
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	_ = rows.Close()

	// Activities are loaded after the outer cursor is closed; the pool may
	// hold a single connection.
	for i := range out {
		activities, err := r.listActivityIDs(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].ActivityIDs = activities
	}
	return out, nil
}

func (r *SQLiteRepository) listActivityIDs(ctx context.Context, registrationID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT activity_id FROM registration_activities
		WHERE registration_id = ? ORDER BY position ASC`, registrationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	} else if offset > 0 {
		// SQLite only accepts OFFSET after a LIMIT clause.
		sql += " LIMIT -1"
	}
	if offset > 0 {
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRegistration(s scanner) (Registration, error) {
	var out Registration
	var created string
	if err := s.Scan(&out.ID, &out.Name, &out.Email, &out.JobRole, &out.OtherJobRole, &out.Design, &out.Color,
		&out.PaymentMethod, &out.CardLast4, &out.TotalCost, &created); err != nil {
		return Registration{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return Registration{}, err
	}
	out.CreatedAt = createdAt
	return out, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
