package errors

import (
	"errors"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgres error code for unique constraint violations
const pgUniqueViolation = "23505"

// reports whether err is a unique-constraint violation from postgres
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	return false
}

// reports whether err means the queried row does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// sanitizes error messages for production
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}

	errMsg := err.Error()
	env := os.Getenv("ENVIRONMENT")

	if env != "production" {
		return errMsg
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return "database operation failed"
	}

	lower := strings.ToLower(errMsg)

	if strings.Contains(lower, "database") || strings.Contains(lower, "sql") ||
		strings.Contains(lower, "postgres") || strings.Contains(lower, "pgx") {
		return "database operation failed"
	}

	if strings.Contains(lower, "connection") || strings.Contains(lower, "network") ||
		strings.Contains(lower, "dial") {
		return "connection error occurred"
	}

	if strings.Contains(lower, "timeout") || strings.Contains(lower, "deadline") {
		return "request timed out"
	}

	if strings.Contains(lower, "not found") || strings.Contains(lower, "no rows") {
		return "resource not found"
	}

	return "an error occurred"
}
