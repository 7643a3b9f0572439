package user

import (
	c "collegereminders/internal/core/domain/common"
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/user"
	"collegereminders/internal/db"
	"context"
	"errors"
	"time"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

const EMAIL_CONSTRAINT_NAME = "user_email_idx"

const userColumns = `id, email, password_hash, name, phone_number, notifications_enabled, is_admin, created_at`

type PgxUserRepository struct {
	db db.DBTX
}

func NewPgxRepository(dbtx db.DBTX) *PgxUserRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{db: dbtx}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO "user" (email, password_hash, name, phone_number, notifications_enabled, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+userColumns,
		string(input.Email),
		string(input.PasswordHash),
		input.Name,
		encodePhoneNumber(input.PhoneNumber),
		input.NotificationsEnabled,
		input.CreatedAt,
	)
	u, err = scanUser(row)
	if db.IsConstraintViolation(err, db.PG_UNIQUE_CONSTRAINT_ERR_CODE, EMAIL_CONSTRAINT_NAME) {
		return u, user.ErrEmailAlreadyExists
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM "user" WHERE id = $1`, int64(id))
	return r.get(row)
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM "user" WHERE email = $1`, string(email))
	return r.get(row)
}

func (r *PgxUserRepository) get(row pgx.Row) (u user.User, err error) {
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) Update(ctx context.Context, input user.UpdateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE "user" SET
			name = CASE WHEN $2::boolean THEN $3 ELSE name END,
			phone_number = CASE WHEN $4::boolean THEN $5 ELSE phone_number END,
			notifications_enabled = CASE WHEN $6::boolean THEN $7 ELSE notifications_enabled END
		WHERE id = $1
		RETURNING `+userColumns,
		int64(input.ID),
		input.DoNameUpdate,
		input.Name,
		input.DoPhoneNumberUpdate,
		encodePhoneNumber(input.PhoneNumber),
		input.DoNotificationsEnabledUpdate,
		input.NotificationsEnabled,
	)
	return r.get(row)
}

func (r *PgxUserRepository) SetPassword(ctx context.Context, id user.ID, hash user.PasswordHash) error {
	tag, err := r.db.Exec(ctx, `UPDATE "user" SET password_hash = $2 WHERE id = $1`, int64(id), string(hash))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) Read(ctx context.Context, options user.ReadOptions) ([]user.User, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+userColumns+` FROM "user"
		WHERE id > $1 AND ($2::boolean IS NULL OR notifications_enabled = $2)
		ORDER BY id
		LIMIT $3`,
		int64(options.AfterID),
		db.EncodeBool(options.NotificationsEnabled.Value, options.NotificationsEnabled.IsPresent),
		db.EncodeInt8(int64(options.Limit.Value), options.Limit.IsPresent),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func encodePhoneNumber(phoneNumber c.Optional[c.PhoneNumber]) pgtype.Text {
	return db.EncodeText(string(phoneNumber.Value), phoneNumber.IsPresent)
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var (
		id           int64
		email        string
		passwordHash string
		phoneNumber  pgtype.Text
		createdAt    time.Time
	)
	err = row.Scan(
		&id,
		&email,
		&passwordHash,
		&u.Name,
		&phoneNumber,
		&u.NotificationsEnabled,
		&u.IsAdmin,
		&createdAt,
	)
	if err != nil {
		return u, err
	}
	u.ID = user.ID(id)
	u.Email = c.Email(email)
	u.PasswordHash = user.PasswordHash(passwordHash)
	value, ok := db.DecodeText(phoneNumber)
	u.PhoneNumber = c.NewOptional(c.PhoneNumber(value), ok)
	u.CreatedAt = createdAt.UTC()
	return u, nil
}
