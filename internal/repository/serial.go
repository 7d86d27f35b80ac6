package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Heman1223/bhuvik-enterprises/internal/domain"

	"github.com/jmoiron/sqlx"
)

// nextSerial bumps the per-year counter and returns its new value. The
// INSERT ... ON DUPLICATE KEY UPDATE with LAST_INSERT_ID is a single atomic
// increment-and-fetch: MySQL serializes concurrent callers on the row lock,
// which holds until the surrounding transaction commits, so two commits can
// never observe the same value and a rolled-back commit returns its number.
func nextSerial(ctx context.Context, tx *sqlx.Tx, year int) (int64, error) {
	const query = `
		INSERT INTO serial_counter (year, counter) VALUES (?, LAST_INSERT_ID(1))
		ON DUPLICATE KEY UPDATE counter = LAST_INSERT_ID(counter + 1)
	`
	res, err := tx.ExecContext(ctx, query, year)
	if err != nil {
		return 0, fmt.Errorf("serial counter upsert: %w", errors.Join(domain.ErrSerialUnavailable, err))
	}

	n, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("serial counter last insert id: %w", errors.Join(domain.ErrSerialUnavailable, err))
	}

	return n, nil
}

// FormatSerial renders a counter value as the human-readable serial number,
// e.g. JF2026-001.
func FormatSerial(prefix string, year int, counter int64) string {
	return fmt.Sprintf("%s%d-%03d", prefix, year, counter)
}
