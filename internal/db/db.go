package db

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

const (
	PG_UNIQUE_CONSTRAINT_ERR_CODE      = "23505"
	PG_FOREIGN_KEY_CONSTRAINT_ERR_CODE = "23503"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// IsConstraintViolation reports whether err is a Postgres error with the given code
// raised by the named constraint. An empty constraint matches any constraint.
func IsConstraintViolation(err error, code string, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == code && (constraint == "" || pgErr.ConstraintName == constraint)
}

func EncodeText(value string, isPresent bool) pgtype.Text {
	if !isPresent {
		return pgtype.Text{Status: pgtype.Null}
	}
	return pgtype.Text{String: value, Status: pgtype.Present}
}

func DecodeText(value pgtype.Text) (string, bool) {
	if value.Status != pgtype.Present {
		return "", false
	}
	return value.String, true
}

func EncodeBool(value bool, isPresent bool) pgtype.Bool {
	if !isPresent {
		return pgtype.Bool{Status: pgtype.Null}
	}
	return pgtype.Bool{Bool: value, Status: pgtype.Present}
}

func EncodeInt8(value int64, isPresent bool) pgtype.Int8 {
	if !isPresent {
		return pgtype.Int8{Status: pgtype.Null}
	}
	return pgtype.Int8{Int: value, Status: pgtype.Present}
}
