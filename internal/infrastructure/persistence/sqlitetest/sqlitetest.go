// Package sqlitetest opens throwaway in-memory databases carrying the full
// engine schema for service-level tests.
package sqlitetest

import (
	"fmt"
	"testing"

	"github.com/erp/production/internal/infrastructure/persistence"
	"github.com/erp/production/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open returns a private in-memory database. All access goes through one
// connection, so row locks degrade to the single writer lock sqlite has.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), persistence.GormConfig(nil))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}
