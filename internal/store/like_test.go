package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%крем%", ContainsPattern("Крем"))
	assert.Equal(t, "%50!% off!_now!!%", ContainsPattern("50% OFF_now!"))
}

func TestAnyContains(t *testing.T) {
	sql, args := AnyContains([]string{"posts.title", "posts.content"}, []string{"Мята", "чай"})
	assert.Equal(t,
		"(LOWER(posts.title) LIKE ? ESCAPE '!' OR LOWER(posts.content) LIKE ? ESCAPE '!' OR "+
			"LOWER(posts.title) LIKE ? ESCAPE '!' OR LOWER(posts.content) LIKE ? ESCAPE '!')",
		sql)
	assert.Equal(t, []any{"%мята%", "%мята%", "%чай%", "%чай%"}, args)

	sql, args = AnyContains([]string{"posts.title"}, nil)
	assert.Empty(t, sql)
	assert.Nil(t, args)
}

func TestIsUnavailable(t *testing.T) {
	assert.False(t, IsUnavailable(nil))
	assert.False(t, IsUnavailable(errors.New("syntax error")))
	assert.True(t, IsUnavailable(fmt.Errorf("query: %w", mysql.ErrInvalidConn)))
	assert.True(t, IsUnavailable(&pgconn.ConnectError{}))
}
