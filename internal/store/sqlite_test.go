package store

import (
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvelasco/cryptofolio/internal/logger"
)

func newTestSQLiteStore(t *testing.T) (*sqliteStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := &sqliteStore{
		db:      db,
		logger:  logger.Nop(),
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}

	return s, mock
}

func TestSQLiteStore_Get(t *testing.T) {
	s, mock := newTestSQLiteStore(t)

	mock.ExpectQuery("SELECT v FROM kv WHERE k = ?").
		WithArgs("app_settings_v1_u@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"v"}).AddRow(`{"showBalances":false}`))

	v, ok := s.Get("app_settings_v1_u@x.com")
	require.True(t, ok)
	assert.Equal(t, `{"showBalances":false}`, v)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_GetMissingReadsAsAbsence(t *testing.T) {
	s, mock := newTestSQLiteStore(t)

	mock.ExpectQuery("SELECT v FROM kv WHERE k = ?").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"v"}))

	_, ok := s.Get("missing")
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_GetDriverErrorReadsAsAbsence(t *testing.T) {
	s, mock := newTestSQLiteStore(t)

	mock.ExpectQuery("SELECT v FROM kv WHERE k = ?").
		WithArgs("k").
		WillReturnError(errors.New("database is locked"))

	_, ok := s.Get("k")
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_SetUpserts(t *testing.T) {
	s, mock := newTestSQLiteStore(t)

	mock.ExpectExec("INSERT INTO kv \\(k,v\\) VALUES \\(\\?,\\?\\) ON CONFLICT\\(k\\) DO UPDATE SET v = excluded.v").
		WithArgs("k", "v").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Set("k", "v"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_SetSurfacesError(t *testing.T) {
	s, mock := newTestSQLiteStore(t)

	mock.ExpectExec("INSERT INTO kv").
		WithArgs("k", "v").
		WillReturnError(errors.New("disk full"))

	assert.Error(t, s.Set("k", "v"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_Remove(t *testing.T) {
	s, mock := newTestSQLiteStore(t)

	mock.ExpectExec("DELETE FROM kv WHERE k = ?").
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 1))

	s.Remove("k")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_Clear(t *testing.T) {
	s, mock := newTestSQLiteStore(t)

	mock.ExpectExec("DELETE FROM kv").
		WillReturnResult(sqlmock.NewResult(0, 3))

	s.Clear()
	assert.NoError(t, mock.ExpectationsWereMet())
}
