package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	intconfig "tripbooking/internal/config"
	intdb "tripbooking/internal/db"
	"tripbooking/internal/domain"
	"tripbooking/internal/domain/models"
)

const createSubmissionsTable = `
	CREATE TABLE IF NOT EXISTS booking_submissions (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		booking_id BIGINT NOT NULL,
		draft_id VARCHAR(64) NOT NULL,
		trip_id BIGINT NOT NULL,
		total_pax INT NOT NULL DEFAULT 0,
		total_price BIGINT NOT NULL DEFAULT 0,
		payload JSON NULL,
		created_at DATETIME NOT NULL,
		KEY idx_booking_submissions_booking (booking_id)
	)`

// SubmissionRepo is the MySQL ledger of bookings accepted by the landing API.
type SubmissionRepo struct {
	DB *sql.DB
}

func (r SubmissionRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r SubmissionRepo) table() string {
	return "booking_submissions"
}

// Enabled reports whether a database is configured.
func (r SubmissionRepo) Enabled() bool {
	return r.db() != nil
}

// EnsureTable creates the ledger table when it is missing.
func (r SubmissionRepo) EnsureTable(ctx context.Context) error {
	db := r.db()
	if db == nil {
		return fmt.Errorf("database belum dikonfigurasi")
	}
	if intdb.HasTable(ctx, db, r.table()) {
		return nil
	}
	if _, err := db.ExecContext(ctx, createSubmissionsTable); err != nil {
		return fmt.Errorf("buat tabel %s: %w", r.table(), err)
	}
	return nil
}

// Record inserts one submission and returns its ledger id.
func (r SubmissionRepo) Record(ctx context.Context, s models.Submission) (int64, error) {
	if s.BookingID <= 0 {
		return 0, fmt.Errorf("booking_id tidak valid")
	}
	if err := r.EnsureTable(ctx); err != nil {
		return 0, err
	}

	var payload any
	if len(s.Payload) > 0 {
		payload = string(s.Payload)
	}
	res, err := r.db().ExecContext(ctx, `
		INSERT INTO `+r.table()+` (booking_id, draft_id, trip_id, total_pax, total_price, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.BookingID, s.DraftID, s.TripID, s.TotalPax, s.TotalPrice, payload, s.CreatedAt,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByBookingID returns the latest ledger row for a landing API booking id.
func (r SubmissionRepo) GetByBookingID(ctx context.Context, bookingID int64) (models.Submission, error) {
	if bookingID <= 0 {
		return models.Submission{}, fmt.Errorf("booking_id tidak valid")
	}
	db := r.db()
	if db == nil || !intdb.HasTable(ctx, db, r.table()) {
		return models.Submission{}, domain.NotFoundError{Resource: "submission"}
	}

	var (
		s       models.Submission
		payload sql.NullString
	)
	err := db.QueryRowContext(ctx, `
		SELECT id, booking_id, draft_id, trip_id, total_pax, total_price, payload, created_at
		FROM `+r.table()+`
		WHERE booking_id=?
		ORDER BY id DESC
		LIMIT 1`, bookingID).Scan(
		&s.ID, &s.BookingID, &s.DraftID, &s.TripID, &s.TotalPax, &s.TotalPrice, &payload, &s.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Submission{}, domain.NotFoundError{Resource: "submission", Err: err}
	}
	if err != nil {
		return models.Submission{}, err
	}
	if payload.Valid {
		s.Payload = []byte(payload.String)
	}
	return s, nil
}
