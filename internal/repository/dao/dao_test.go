package dao_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wishwell/wishwell-api/internal/repository/dao"
)

// openTestDB gives each test its own in-memory database with the same
// TranslateError setting production uses, so unique violations surface as
// gorm.ErrDuplicatedKey on both drivers.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, dao.InitTables(db))

	return db
}
