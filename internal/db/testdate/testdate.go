package testdate

import (
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/testdate"
	"collegereminders/internal/db"
	"context"
	"time"
)

type PgxTestDateRepository struct {
	db db.DBTX
}

func NewPgxRepository(dbtx db.DBTX) *PgxTestDateRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxTestDateRepository{db: dbtx}
}

func (r *PgxTestDateRepository) CreateTest(ctx context.Context, input testdate.CreateTestInput) (t testdate.Test, err error) {
	var id int64
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO test (type, registration_message, registration_detail, admin_message, admin_detail)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, type, registration_message, registration_detail, admin_message, admin_detail`,
		input.Type,
		input.RegistrationMessage,
		input.RegistrationDetail,
		input.AdminMessage,
		input.AdminDetail,
	).Scan(&id, &t.Type, &t.RegistrationMessage, &t.RegistrationDetail, &t.AdminMessage, &t.AdminDetail)
	if err != nil {
		return t, err
	}
	t.ID = testdate.TestID(id)
	return t, nil
}

func (r *PgxTestDateRepository) CreateTestDate(
	ctx context.Context,
	input testdate.CreateTestDateInput,
) (td testdate.TestDate, err error) {
	var id int64
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO test_date (test_id, registration_date, admin_date) VALUES ($1, $2, $3) RETURNING id`,
		int64(input.TestID),
		input.RegistrationDate,
		input.AdminDate,
	).Scan(&id)
	if db.IsConstraintViolation(err, db.PG_FOREIGN_KEY_CONSTRAINT_ERR_CODE, "") {
		return td, testdate.ErrTestDoesNotExist
	}
	if err != nil {
		return td, err
	}

	all, err := r.read(ctx, `WHERE d.id = $1`, id)
	if err != nil {
		return td, err
	}
	if len(all) == 0 {
		return td, testdate.ErrTestDateDoesNotExist
	}
	return all[0], nil
}

func (r *PgxTestDateRepository) ReadWithTests(ctx context.Context) ([]testdate.TestDate, error) {
	return r.read(ctx, "")
}

func (r *PgxTestDateRepository) read(ctx context.Context, where string, args ...interface{}) ([]testdate.TestDate, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT d.id, d.registration_date, d.admin_date,
			t.id, t.type, t.registration_message, t.registration_detail, t.admin_message, t.admin_detail
		FROM test_date d JOIN test t ON t.id = d.test_id `+where+`
		ORDER BY d.registration_date, d.id`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	testDates := make([]testdate.TestDate, 0)
	for rows.Next() {
		var (
			td                      testdate.TestDate
			id, testID              int64
			registration, adminDate time.Time
		)
		err := rows.Scan(
			&id, &registration, &adminDate,
			&testID, &td.Test.Type, &td.Test.RegistrationMessage, &td.Test.RegistrationDetail,
			&td.Test.AdminMessage, &td.Test.AdminDetail,
		)
		if err != nil {
			return nil, err
		}
		td.ID = testdate.ID(id)
		td.TestID = testdate.TestID(testID)
		td.Test.ID = td.TestID
		td.RegistrationDate = registration.UTC()
		td.AdminDate = adminDate.UTC()
		testDates = append(testDates, td)
	}
	return testDates, rows.Err()
}
