package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/datanexus/crm-service/internal/logger"
	"github.com/datanexus/crm-service/internal/models"
)

// ErrCustomerNotFound is returned when a record does not exist or belongs
// to another owner.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerReader reads customer records scoped to their owner.
type CustomerReader interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.CustomerDB, error)
	GetByID(ctx context.Context, ownerID uuid.UUID, customerID uuid.UUID) (*models.CustomerDB, error)
	Search(ctx context.Context, ownerID uuid.UUID, name string) ([]models.CustomerDB, error)
}

// CustomerWriter mutates customer records scoped to their owner.
type CustomerWriter interface {
	Insert(ctx context.Context, customer *models.CustomerDB) error
	Update(ctx context.Context, ownerID uuid.UUID, customerID uuid.UUID, fields *models.CustomerFields) (int64, error)
	Delete(ctx context.Context, ownerID uuid.UUID, customerID uuid.UUID) (int64, error)
}

// KafkaWriter publishes messages to the customer events topic.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// CustomerService implements owner-scoped CRUD over customer records and
// publishes a change event for every mutation.
type CustomerService struct {
	reader CustomerReader
	writer CustomerWriter
	events KafkaWriter
}

// NewCustomerService builds the service. The events writer may be nil, in
// which case mutations are not published.
func NewCustomerService(
	reader CustomerReader,
	writer CustomerWriter,
	events KafkaWriter,
) *CustomerService {
	return &CustomerService{
		reader: reader,
		writer: writer,
		events: events,
	}
}

// Add creates a customer record owned by ownerID and returns its id.
func (svc *CustomerService) Add(
	ctx context.Context,
	ownerID uuid.UUID,
	fields *models.CustomerFields,
) (uuid.UUID, error) {
	now := time.Now()
	customer := &models.CustomerDB{
		CustomerID:  uuid.New(),
		UserID:      ownerID,
		FirstName:   fields.FirstName,
		LastName:    fields.LastName,
		Email:       fields.Email,
		PhoneNumber: fields.PhoneNumber,
		Age:         fields.Age,
		Country:     fields.Country,
		Gender:      fields.Gender,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := svc.writer.Insert(ctx, customer); err != nil {
		logger.Log.Errorw("failed to insert customer", "error", err)
		return uuid.Nil, err
	}

	svc.publishEvent(ctx, "created", customer.CustomerID, ownerID)
	return customer.CustomerID, nil
}

// List returns every record owned by ownerID in creation order.
func (svc *CustomerService) List(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]models.CustomerDB, error) {
	return svc.reader.ListByOwner(ctx, ownerID)
}

// Get returns a single record owned by ownerID.
// Returns ErrCustomerNotFound when no such record exists for this owner.
func (svc *CustomerService) Get(
	ctx context.Context,
	ownerID uuid.UUID,
	customerID uuid.UUID,
) (*models.CustomerDB, error) {
	customer, err := svc.reader.GetByID(ctx, ownerID, customerID)
	if err != nil {
		logger.Log.Errorw("failed to get customer", "error", err)
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

// Search returns ownerID's records whose first or last name matches name
// exactly. An empty result is not an error.
func (svc *CustomerService) Search(
	ctx context.Context,
	ownerID uuid.UUID,
	name string,
) ([]models.CustomerDB, error) {
	return svc.reader.Search(ctx, ownerID, name)
}

// Update replaces the client-supplied attributes of a record owned by
// ownerID. Returns ErrCustomerNotFound when no such record exists.
func (svc *CustomerService) Update(
	ctx context.Context,
	ownerID uuid.UUID,
	customerID uuid.UUID,
	fields *models.CustomerFields,
) error {
	affected, err := svc.writer.Update(ctx, ownerID, customerID, fields)
	if err != nil {
		logger.Log.Errorw("failed to update customer", "error", err)
		return err
	}
	if affected == 0 {
		return ErrCustomerNotFound
	}

	svc.publishEvent(ctx, "updated", customerID, ownerID)
	return nil
}

// Delete removes a record owned by ownerID.
// Returns ErrCustomerNotFound when no such record exists.
func (svc *CustomerService) Delete(
	ctx context.Context,
	ownerID uuid.UUID,
	customerID uuid.UUID,
) error {
	affected, err := svc.writer.Delete(ctx, ownerID, customerID)
	if err != nil {
		logger.Log.Errorw("failed to delete customer", "error", err)
		return err
	}
	if affected == 0 {
		return ErrCustomerNotFound
	}

	svc.publishEvent(ctx, "deleted", customerID, ownerID)
	return nil
}

// publishEvent sends a change event to kafka. Publishing is best effort:
// a broker failure is logged and never fails the mutation.
func (svc *CustomerService) publishEvent(
	ctx context.Context,
	operation string,
	customerID uuid.UUID,
	ownerID uuid.UUID,
) {
	if svc.events == nil {
		return
	}

	event := models.CustomerEvent{
		EventID:    uuid.NewString(),
		Operation:  operation,
		CustomerID: customerID.String(),
		OwnerID:    ownerID.String(),
		Timestamp:  time.Now().Unix(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal customer event", "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(customerID.String()),
		Value: payload,
	}
	if err := svc.events.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish customer event", "error", err)
		return
	}

	logger.Log.Infow("customer event published",
		"operation", operation,
		"customer_id", customerID,
	)
}
