// Package testutil wires in-memory stores for package tests.
package testutil

import (
	"io"
	"testing"

	"voter-pledge-admin/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a private in-memory SQLite database with the full schema.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.VoterRecord{}, &entity.Pledge{}))
	return db
}

// SetupTestRedis starts a miniredis server and a client connected to it.
func SetupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

// NewTestLogger returns a logger that discards output and records entries.
func NewTestLogger() (*logrus.Logger, *test.Hook) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	log.SetOutput(io.Discard)
	return log, hook
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// Voter builds a voter record with an optional pledge.
func Voter(listNumber uint, dhaairaa *string, pledge *entity.Pledge) *entity.VoterRecord {
	return &entity.VoterRecord{
		ListNumber: listNumber,
		Dhaairaa:   dhaairaa,
		Pledge:     pledge,
	}
}

// Choice returns a pointer to a pledge value, canonical or not.
func Choice(value string) *entity.PledgeChoice {
	c := entity.PledgeChoice(value)
	return &c
}
