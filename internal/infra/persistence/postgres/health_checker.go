package postgres

import (
	"context"
	"time"

	"catalog/internal/domain/service"
	"catalog/internal/errors"
	"catalog/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type databaseHealthChecker struct {
	db *gorm.DB
}

// NewDatabaseHealthChecker pings the connection pool.
func NewDatabaseHealthChecker(db *gorm.DB) service.HealthChecker {
	return &databaseHealthChecker{db: db}
}

func (c *databaseHealthChecker) Name() string {
	return "database"
}

func (c *databaseHealthChecker) Check(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}

	return errors.WithStack(sqlDB.PingContext(ctx))
}

type sessionTableHealthChecker struct {
	db *gorm.DB
}

// NewSessionStoreHealthChecker reads the session table when sessions live in the database.
func NewSessionStoreHealthChecker(db *gorm.DB) service.HealthChecker {
	return &sessionTableHealthChecker{db: db}
}

func (c *sessionTableHealthChecker) Name() string {
	return "session_store"
}

func (c *sessionTableHealthChecker) Check(ctx context.Context) error {
	var live int64
	err := c.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("expires_at > ?", time.Now().UTC()).
		Count(&live).Error

	return errors.Wrap(err, "failed to read session table")
}
