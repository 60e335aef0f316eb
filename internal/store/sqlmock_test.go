package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB wires gorm's postgres dialector to a sqlmock connection.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestMealStore_ListPropagatesErrors(t *testing.T) {
	db, mock := newMockDB(t)
	meals := NewMealStore(db)

	boom := errors.New("connection reset")
	mock.ExpectQuery(`SELECT \* FROM "meals" WHERE user_id = \$1 ORDER BY created_at ASC, id ASC`).
		WithArgs("u1").
		WillReturnError(boom)

	list, err := meals.ListByOwner(context.Background(), "u1")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, list)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMealStore_ListFiltersByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	meals := NewMealStore(db)

	mock.ExpectQuery(`SELECT \* FROM "meals" WHERE user_id = \$1`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "in_diet"}).
			AddRow("m1", "u1", "salad", true).
			AddRow("m2", "u1", "cake", false))

	list, err := meals.ListByOwner(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "salad", list[0].Name)
	assert.True(t, list[0].InDiet)
	assert.False(t, list[1].InDiet)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMealStore_FindPropagatesErrors(t *testing.T) {
	db, mock := newMockDB(t)
	meals := NewMealStore(db)

	boom := errors.New("timeout")
	mock.ExpectQuery(`SELECT \* FROM "meals" WHERE id = \$1 AND user_id = \$2`).
		WithArgs("m1", "u1").
		WillReturnError(boom)

	_, err := meals.FindByOwner(context.Background(), "u1", "m1")
	assert.ErrorIs(t, err, boom)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStore_FindByEmailPropagatesErrors(t *testing.T) {
	db, mock := newMockDB(t)
	users := NewUserStore(db)

	boom := errors.New("db down")
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnError(boom)

	_, err := users.FindByEmail(context.Background(), "a@b.c")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
