// Package docstore implements the remote document store the tracker syncs to.
//
// Records are stored as schema-less JSON documents in per-user namespaces,
// one flat collection per record type. The store itself knows nothing about
// the fields of a record, mirroring the hosted document database it stands
// in for.
package docstore

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Collection names as laid out in the remote store.
const (
	NameIncomeSources = "incomeSources"
	NameExpenses      = "expenses"
	NameGoals         = "goals"
	NameAppointments  = "appointments"
)

// row is a single document. The JSON encoding of the record is kept opaque.
type row struct {
	Namespace  string `gorm:"primaryKey"`
	Collection string `gorm:"primaryKey"`
	ID         string `gorm:"primaryKey"`
	Data       []byte
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (row) TableName() string {
	return "documents"
}

// Client is a connection to the document store.
type Client struct {
	db  *gorm.DB
	hub *hub
}

// Connect opens the document store and configures the connection pool.
func Connect(dsn string) (*Client, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(row{})
	if err != nil {
		return nil, fmt.Errorf("error during document store migration: %w", err)
	}

	return &Client{
		db:  db,
		hub: newHub(),
	}, nil
}

// Ping verifies that the document store can be reached.
func (c *Client) Ping(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
