package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datanexus/crm-service/internal/middlewares"
	"github.com/datanexus/crm-service/internal/models"
)

func customerRows(customers ...models.CustomerDB) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"customer_id", "user_id", "first_name", "last_name", "email", "phone_number",
		"age", "country", "gender", "created_at", "updated_at",
	})
	for _, c := range customers {
		rows.AddRow(c.CustomerID, c.UserID, c.FirstName, c.LastName, c.Email, c.PhoneNumber,
			c.Age, c.Country, c.Gender, c.CreatedAt, c.UpdatedAt)
	}
	return rows
}

func sampleCustomer(ownerID uuid.UUID) models.CustomerDB {
	now := time.Now()
	return models.CustomerDB{
		CustomerID:  uuid.New(),
		UserID:      ownerID,
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "john@example.com",
		PhoneNumber: "555-0100",
		Age:         30,
		Country:     "US",
		Gender:      "male",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestCustomerReadRepository_ListByOwner(t *testing.T) {
	ownerID := uuid.New()

	t.Run("returns owner's records", func(t *testing.T) {
		db, mock := newSqlxMock(t)
		repo := NewCustomerReadRepository(db)

		c1 := sampleCustomer(ownerID)
		c2 := sampleCustomer(ownerID)
		mock.ExpectQuery(`SELECT (.+) FROM customers WHERE user_id = \$1 ORDER BY created_at, customer_id`).
			WithArgs(ownerID).
			WillReturnRows(customerRows(c1, c2))

		got, err := repo.ListByOwner(context.Background(), ownerID)

		assert.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, c1.CustomerID, got[0].CustomerID)
		assert.Equal(t, c2.CustomerID, got[1].CustomerID)
	})

	t.Run("no records is an empty slice", func(t *testing.T) {
		db, mock := newSqlxMock(t)
		repo := NewCustomerReadRepository(db)

		mock.ExpectQuery(`SELECT (.+) FROM customers WHERE user_id = \$1`).
			WithArgs(ownerID).
			WillReturnRows(customerRows())

		got, err := repo.ListByOwner(context.Background(), ownerID)

		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newSqlxMock(t)
		repo := NewCustomerReadRepository(db)

		mock.ExpectQuery(`SELECT (.+) FROM customers WHERE user_id = \$1`).
			WithArgs(ownerID).
			WillReturnError(errors.New("db error"))

		got, err := repo.ListByOwner(context.Background(), ownerID)

		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestCustomerReadRepository_GetByID(t *testing.T) {
	ownerID := uuid.New()
	customer := sampleCustomer(ownerID)

	t.Run("found", func(t *testing.T) {
		db, mock := newSqlxMock(t)
		repo := NewCustomerReadRepository(db)

		mock.ExpectQuery(`SELECT (.+) FROM customers WHERE customer_id = \$1 AND user_id = \$2`).
			WithArgs(customer.CustomerID, ownerID).
			WillReturnRows(customerRows(customer))

		got, err := repo.GetByID(context.Background(), ownerID, customer.CustomerID)

		assert.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, customer.CustomerID, got.CustomerID)
	})

	t.Run("other owner's record is nil, nil", func(t *testing.T) {
		db, mock := newSqlxMock(t)
		repo := NewCustomerReadRepository(db)

		otherOwner := uuid.New()
		mock.ExpectQuery(`SELECT (.+) FROM customers WHERE customer_id = \$1 AND user_id = \$2`).
			WithArgs(customer.CustomerID, otherOwner).
			WillReturnError(sql.ErrNoRows)

		got, err := repo.GetByID(context.Background(), otherOwner, customer.CustomerID)

		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestCustomerReadRepository_Search(t *testing.T) {
	ownerID := uuid.New()
	customer := sampleCustomer(ownerID)

	t.Run("matches by name", func(t *testing.T) {
		db, mock := newSqlxMock(t)
		repo := NewCustomerReadRepository(db)

		mock.ExpectQuery(`SELECT (.+) FROM customers WHERE user_id = \$1 AND \(first_name = \$2 OR last_name = \$2\)`).
			WithArgs(ownerID, "John").
			WillReturnRows(customerRows(customer))

		got, err := repo.Search(context.Background(), ownerID, "John")

		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("no matches is an empty slice", func(t *testing.T) {
		db, mock := newSqlxMock(t)
		repo := NewCustomerReadRepository(db)

		mock.ExpectQuery(`SELECT (.+) FROM customers WHERE user_id = \$1 AND \(first_name = \$2 OR last_name = \$2\)`).
			WithArgs(ownerID, "Nobody").
			WillReturnRows(customerRows())

		got, err := repo.Search(context.Background(), ownerID, "Nobody")

		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestCustomerWriteRepository_Insert(t *testing.T) {
	ownerID := uuid.New()
	customer := sampleCustomer(ownerID)

	t.Run("inserts", func(t *testing.T) {
		db, mock := newSqlxMock(t)
		repo := NewCustomerWriteRepository(db)

		mock.ExpectExec(`INSERT INTO customers`).
			WithArgs(customer.CustomerID, customer.UserID,
				customer.FirstName, customer.LastName, customer.Email, customer.PhoneNumber,
				customer.Age, customer.Country, customer.Gender, customer.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Insert(context.Background(), &customer))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("uses the transaction from context", func(t *testing.T) {
		db, mock := newSqlxMock(t)
		repo := NewCustomerWriteRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO customers`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.Beginx()
		require.NoError(t, err)

		ctx := middlewares.SetTxToContext(context.Background(), tx)
		assert.NoError(t, repo.Insert(ctx, &customer))
		assert.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCustomerWriteRepository_Update(t *testing.T) {
	ownerID := uuid.New()
	customerID := uuid.New()
	fields := &models.CustomerFields{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "john@example.com",
		PhoneNumber: "555-0100",
		Age:         31,
		Country:     "US",
		Gender:      "male",
	}

	t.Run("updates", func(t *testing.T) {
		db, mock := newSqlxMock(t)
		repo := NewCustomerWriteRepository(db)

		mock.ExpectExec(`UPDATE customers SET`).
			WithArgs(customerID, ownerID,
				fields.FirstName, fields.LastName, fields.Email, fields.PhoneNumber,
				fields.Age, fields.Country, fields.Gender).
			WillReturnResult(sqlmock.NewResult(0, 1))

		affected, err := repo.Update(context.Background(), ownerID, customerID, fields)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("missing record touches zero rows", func(t *testing.T) {
		db, mock := newSqlxMock(t)
		repo := NewCustomerWriteRepository(db)

		mock.ExpectExec(`UPDATE customers SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		affected, err := repo.Update(context.Background(), ownerID, customerID, fields)

		assert.NoError(t, err)
		assert.Zero(t, affected)
	})

	t.Run("exec error", func(t *testing.T) {
		db, mock := newSqlxMock(t)
		repo := NewCustomerWriteRepository(db)

		mock.ExpectExec(`UPDATE customers SET`).
			WillReturnError(errors.New("db error"))

		affected, err := repo.Update(context.Background(), ownerID, customerID, fields)

		assert.Error(t, err)
		assert.Zero(t, affected)
	})
}

func TestCustomerWriteRepository_Delete(t *testing.T) {
	ownerID := uuid.New()
	customerID := uuid.New()

	t.Run("deletes", func(t *testing.T) {
		db, mock := newSqlxMock(t)
		repo := NewCustomerWriteRepository(db)

		mock.ExpectExec(`DELETE FROM customers WHERE customer_id = \$1 AND user_id = \$2`).
			WithArgs(customerID, ownerID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		affected, err := repo.Delete(context.Background(), ownerID, customerID)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("missing record touches zero rows", func(t *testing.T) {
		db, mock := newSqlxMock(t)
		repo := NewCustomerWriteRepository(db)

		mock.ExpectExec(`DELETE FROM customers`).
			WithArgs(customerID, ownerID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		affected, err := repo.Delete(context.Background(), ownerID, customerID)

		assert.NoError(t, err)
		assert.Zero(t, affected)
	})
}
