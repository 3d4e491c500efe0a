package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/datanexus/crm-service/internal/logger"
	"github.com/datanexus/crm-service/internal/models"
)

const customerColumns = `
	customer_id, user_id, first_name, last_name, email, phone_number,
	age, country, gender, created_at, updated_at
`

// CustomerReadRepository reads customer records from PostgreSQL.
// Every query is scoped to the owning user.
type CustomerReadRepository struct {
	db *sqlx.DB
}

func NewCustomerReadRepository(db *sqlx.DB) *CustomerReadRepository {
	return &CustomerReadRepository{db: db}
}

// ListByOwner returns the owner's records in insertion order.
func (r *CustomerReadRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.CustomerDB, error) {
	const query = `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE user_id = $1
		ORDER BY created_at, customer_id
	`

	customers := []models.CustomerDB{}
	if err := r.db.SelectContext(ctx, &customers, query, ownerID); err != nil {
		logger.Log.Errorw("failed to list customers", "owner_id", ownerID, "error", err)
		return nil, err
	}

	return customers, nil
}

// GetByID returns the owner's record with the given id, or (nil, nil)
// when the id matches nothing the owner holds.
func (r *CustomerReadRepository) GetByID(ctx context.Context, ownerID, customerID uuid.UUID) (*models.CustomerDB, error) {
	const query = `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE customer_id = $1 AND user_id = $2
	`

	var customer models.CustomerDB
	err := r.db.GetContext(ctx, &customer, query, customerID, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to get customer", "customer_id", customerID, "error", err)
		return nil, err
	}

	return &customer, nil
}

// Search returns the owner's records whose first or last name equals text.
// Exact match, not substring.
func (r *CustomerReadRepository) Search(ctx context.Context, ownerID uuid.UUID, text string) ([]models.CustomerDB, error) {
	const query = `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE user_id = $1 AND (first_name = $2 OR last_name = $2)
		ORDER BY created_at, customer_id
	`

	customers := []models.CustomerDB{}
	if err := r.db.SelectContext(ctx, &customers, query, ownerID, text); err != nil {
		logger.Log.Errorw("failed to search customers", "owner_id", ownerID, "error", err)
		return nil, err
	}

	return customers, nil
}

// CustomerWriteRepository writes customer records to PostgreSQL.
type CustomerWriteRepository struct {
	db *sqlx.DB
}

func NewCustomerWriteRepository(db *sqlx.DB) *CustomerWriteRepository {
	return &CustomerWriteRepository{db: db}
}

// Insert appends a new record to the owner's sequence.
func (r *CustomerWriteRepository) Insert(ctx context.Context, customer *models.CustomerDB) error {
	const query = `
		INSERT INTO customers (
			customer_id, user_id, first_name, last_name, email, phone_number,
			age, country, gender, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
	`

	_, err := execer(ctx, r.db).ExecContext(ctx, query,
		customer.CustomerID, customer.UserID,
		customer.FirstName, customer.LastName, customer.Email, customer.PhoneNumber,
		customer.Age, customer.Country, customer.Gender, customer.CreatedAt,
	)
	if err != nil {
		logger.Log.Errorw("failed to insert customer", "customer_id", customer.CustomerID, "error", err)
	}

	return err
}

// Update overwrites the record's attributes and bumps updated_at.
// Returns the number of rows touched; zero means the owner holds no such record.
func (r *CustomerWriteRepository) Update(ctx context.Context, ownerID, customerID uuid.UUID, fields *models.CustomerFields) (int64, error) {
	const query = `
		UPDATE customers
		SET first_name = $3, last_name = $4, email = $5, phone_number = $6,
		    age = $7, country = $8, gender = $9, updated_at = NOW()
		WHERE customer_id = $1 AND user_id = $2
	`

	res, err := execer(ctx, r.db).ExecContext(ctx, query,
		customerID, ownerID,
		fields.FirstName, fields.LastName, fields.Email, fields.PhoneNumber,
		fields.Age, fields.Country, fields.Gender,
	)
	if err != nil {
		logger.Log.Errorw("failed to update customer", "customer_id", customerID, "error", err)
		return 0, err
	}

	return res.RowsAffected()
}

// Delete removes the record from the owner's sequence.
// Returns the number of rows removed.
func (r *CustomerWriteRepository) Delete(ctx context.Context, ownerID, customerID uuid.UUID) (int64, error) {
	const query = `
		DELETE FROM customers
		WHERE customer_id = $1 AND user_id = $2
	`

	res, err := execer(ctx, r.db).ExecContext(ctx, query, customerID, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to delete customer", "customer_id", customerID, "error", err)
		return 0, err
	}

	return res.RowsAffected()
}
