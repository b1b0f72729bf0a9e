package database

import (
	"context"
	"fmt"
	"time"

	"restaurant/internal/models"
)

func (db *DB) CreateBooking(ctx context.Context, booking *models.Booking) error {
	query := `INSERT INTO bookings (booking_datetime, date, time, guests, comment, user_id, name, created_at)
              VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	now := time.Now()
	result, err := db.ExecContext(ctx, query,
		booking.BookingDatetime,
		booking.Date,
		booking.Slot,
		booking.Guests,
		booking.Comment,
		booking.UserID,
		booking.Name,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	booking.ID = id
	booking.CreatedAt = now
	return nil
}

// CreateBookingChecked re-checks the per-slot capacity inside the same
// transaction as the insert. A full slot yields ErrSlotFull and nothing
// is persisted.
func (db *DB) CreateBookingChecked(ctx context.Context, booking *models.Booking, capacity int64) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var booked int64
	queryCount := `SELECT COUNT(*) FROM bookings WHERE date = ? AND time = ?`
	err = tx.QueryRowContext(ctx, queryCount, booking.Date, booking.Slot).Scan(&booked)
	if err != nil {
		return fmt.Errorf("failed to count bookings in tx: %w", err)
	}
	if booked >= capacity {
		return ErrSlotFull
	}

	queryInsert := `INSERT INTO bookings (booking_datetime, date, time, guests, comment, user_id, name, created_at)
                    VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	now := time.Now()
	result, err := tx.ExecContext(ctx, queryInsert,
		booking.BookingDatetime,
		booking.Date,
		booking.Slot,
		booking.Guests,
		booking.Comment,
		booking.UserID,
		booking.Name,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking in tx: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id in tx: %w", err)
	}
	booking.ID = id
	booking.CreatedAt = now

	return tx.Commit()
}

// GetSlotCounts returns the number of bookings per slot for one date.
// Slots without bookings are absent from the map.
func (db *DB) GetSlotCounts(ctx context.Context, date string) (map[string]int64, error) {
	query := `SELECT time, COUNT(*) FROM bookings WHERE date = ? GROUP BY time`
	rows, err := db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get slot counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var slot string
		var count int64
		if err := rows.Scan(&slot, &count); err != nil {
			return nil, fmt.Errorf("failed to scan slot count: %w", err)
		}
		counts[slot] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read slot counts: %w", err)
	}
	return counts, nil
}

func (db *DB) GetBookedCount(ctx context.Context, date, slot string) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE date = ? AND time = ?`
	var count int64
	if err := db.QueryRowContext(ctx, query, date, slot).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to get booked count: %w", err)
	}
	return count, nil
}

// GetBookingsByDateRange returns bookings between two dates inclusive,
// ordered chronologically. Used by the admin export.
func (db *DB) GetBookingsByDateRange(ctx context.Context, startDate, endDate string) ([]*models.Booking, error) {
	query := `SELECT id, booking_datetime, date, time, guests, comment, user_id, name, created_at
              FROM bookings WHERE date >= ? AND date <= ? ORDER BY date, time, id`
	rows, err := db.QueryContext(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings by date range: %w", err)
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		b := &models.Booking{}
		err := rows.Scan(
			&b.ID, &b.BookingDatetime, &b.Date, &b.Slot, &b.Guests,
			&b.Comment, &b.UserID, &b.Name, &b.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}
	return bookings, nil
}
