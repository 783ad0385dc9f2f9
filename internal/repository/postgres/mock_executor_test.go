// internal/repository/postgres/mock_executor_test.go
package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/stretchr/testify/mock"
)

// MockDBExecutor is a mock implementation of repository.DBExecutor.
type MockDBExecutor struct {
	mock.Mock
}

func (m *MockDBExecutor) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	argsCalled := m.Called(ctx, query, args)
	if argsCalled.Get(0) == nil {
		return nil, argsCalled.Error(1)
	}
	return argsCalled.Get(0).(sql.Result), argsCalled.Error(1)
}

// fakeResult is a canned sql.Result.
type fakeResult struct {
	rowsAffected int64
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rowsAffected, nil }

// queryContaining matches a SQL string that contains every fragment.
func queryContaining(fragments ...string) interface{} {
	return mock.MatchedBy(func(query string) bool {
		for _, f := range fragments {
			if !strings.Contains(query, f) {
				return false
			}
		}
		return true
	})
}
