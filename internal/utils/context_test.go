package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmelikhov/orderdesk/models"
)

func TestGetUserFromContext_Present(t *testing.T) {
	user := &models.User{ID: 7, Username: "bob"}
	ctx := context.WithValue(context.Background(), UserCtxKey, user)

	got, ok := GetUserFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, user, got)
}

func TestGetUserFromContext_Absent(t *testing.T) {
	_, ok := GetUserFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, "not a user")
	_, ok := GetUserFromContext(ctx)
	assert.False(t, ok)
}

func TestGetUserFromContext_NilPointer(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, (*models.User)(nil))
	_, ok := GetUserFromContext(ctx)
	assert.False(t, ok)
}
