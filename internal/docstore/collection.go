package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fintrack-app/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"gorm.io/gorm/clause"
)

// Collection is a handle on one document collection within one namespace.
type Collection[T models.Document] struct {
	client    *Client
	namespace string
	name      string
	less      func(a, b T) bool
}

// NewCollection returns a handle on the named collection in the namespace.
func NewCollection[T models.Document](client *Client, namespace, name string) *Collection[T] {
	return &Collection[T]{
		client:    client,
		namespace: namespace,
		name:      name,
	}
}

// WithOrder sets the order List returns records in.
func (c *Collection[T]) WithOrder(less func(a, b T) bool) *Collection[T] {
	c.less = less
	return c
}

// IncomeSources returns the income source collection for a namespace.
func IncomeSources(client *Client, namespace string) *Collection[models.IncomeSource] {
	return NewCollection[models.IncomeSource](client, namespace, NameIncomeSources)
}

// Expenses returns the expense collection for a namespace.
// Expenses are listed by date, newest first.
func Expenses(client *Client, namespace string) *Collection[models.Expense] {
	return NewCollection[models.Expense](client, namespace, NameExpenses).
		WithOrder(func(a, b models.Expense) bool {
			return a.Date.After(b.Date)
		})
}

// Goals returns the goal collection for a namespace.
func Goals(client *Client, namespace string) *Collection[models.Goal] {
	return NewCollection[models.Goal](client, namespace, NameGoals)
}

// Appointments returns the appointment collection for a namespace.
func Appointments(client *Client, namespace string) *Collection[models.Appointment] {
	return NewCollection[models.Appointment](client, namespace, NameAppointments)
}

func (c *Collection[T]) key() string {
	return c.namespace + "/" + c.name
}

// Save upserts the record by its ID. Saving the same record twice
// produces the same stored state, only the updated timestamp moves.
func (c *Collection[T]) Save(ctx context.Context, record T) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding document for %s: %w", c.name, err)
	}

	err = c.client.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "namespace"}, {Name: "collection"}, {Name: "id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"data":       data,
			"updated_at": time.Now().In(time.UTC),
		}),
	}).Create(&row{
		Namespace:  c.namespace,
		Collection: c.name,
		ID:         record.DocumentID().String(),
		Data:       data,
	}).Error
	if err != nil {
		return translate(err)
	}

	c.client.hub.publish(c.key())
	return nil
}

// List returns all records of the collection in the namespace.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	var rows []row
	err := c.client.db.WithContext(ctx).
		Where(&row{Namespace: c.namespace, Collection: c.name}).
		Find(&rows).Error
	if err != nil {
		return nil, translate(err)
	}

	records := make([]T, 0, len(rows))
	for _, r := range rows {
		var record T
		if err := json.Unmarshal(r.Data, &record); err != nil {
			return nil, fmt.Errorf("decoding document %s in %s: %w", r.ID, c.name, err)
		}
		records = append(records, record)
	}

	if c.less != nil {
		slices.SortStableFunc(records, func(a, b T) int {
			switch {
			case c.less(a, b):
				return -1
			case c.less(b, a):
				return 1
			default:
				return 0
			}
		})
	}

	return records, nil
}

// GetOne returns the record with the given ID or ErrNotFound.
func (c *Collection[T]) GetOne(ctx context.Context, id uuid.UUID) (T, error) {
	var record T

	var r row
	err := c.client.db.WithContext(ctx).
		Where(&row{Namespace: c.namespace, Collection: c.name, ID: id.String()}).
		First(&r).Error
	if err != nil {
		return record, translate(err)
	}

	if err := json.Unmarshal(r.Data, &record); err != nil {
		return record, fmt.Errorf("decoding document %s in %s: %w", id, c.name, err)
	}

	return record, nil
}

// Delete removes the record with the given ID.
// Deleting an ID that does not exist is not an error.
func (c *Collection[T]) Delete(ctx context.Context, id uuid.UUID) error {
	result := c.client.db.WithContext(ctx).
		Where(&row{Namespace: c.namespace, Collection: c.name, ID: id.String()}).
		Delete(&row{})
	if result.Error != nil {
		return translate(result.Error)
	}

	if result.RowsAffected > 0 {
		c.client.hub.publish(c.key())
	}

	return nil
}

// Subscribe registers a change listener for the collection.
//
// onChange is invoked once immediately with the current state and again with
// a full snapshot after every change to the collection. The returned function
// removes the registration and must be called to release it.
func (c *Collection[T]) Subscribe(onChange func([]T)) (func(), error) {
	records, err := c.List(context.Background())
	if err != nil {
		return nil, err
	}
	onChange(records)

	unsubscribe := c.client.hub.subscribe(c.key(), func() {
		records, err := c.List(context.Background())
		if err != nil {
			log.Error().Err(err).Str("collection", c.name).Msg("listing for subscription update failed")
			return
		}
		onChange(records)
	})

	return unsubscribe, nil
}
