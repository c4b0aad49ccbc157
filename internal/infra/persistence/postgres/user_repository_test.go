package postgres

import (
	"context"
	"testing"

	"todo/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewUserRepository(db)

	user := &entity.User{Email: "jane@example.com", Password: "$2a$10$hash"}
	require.NoError(t, repo.Create(context.Background(), user))

	insertSQL := recorder.last(t)
	assert.Contains(t, insertSQL, `INSERT INTO "users"`)
	assert.Contains(t, insertSQL, `'jane@example.com'`)
	assert.Contains(t, insertSQL, `"createdAt"`)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewUserRepository(db)

	_, err := repo.FindByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)

	selectSQL := recorder.last(t)
	assert.Contains(t, selectSQL, `FROM "users"`)
	assert.Contains(t, selectSQL, `email = 'jane@example.com'`)
}

func TestUserMapping_RoundTripKeepsHash(t *testing.T) {
	user := &entity.User{ID: 5, Email: "a@b.co", Password: "hash"}

	got := toUserDomain(fromUserDomain(user))

	assert.Equal(t, user, got)
	assert.Nil(t, toUserDomain(nil))
	assert.Nil(t, fromUserDomain(nil))
}
