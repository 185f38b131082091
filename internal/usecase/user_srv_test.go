package usecase

import (
	"testing"

	"cinema-tickets/internal/dto/request"
	"cinema-tickets/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_CreateUser(t *testing.T) {
	w, repo := newWorld(t)

	user, err := w.svc.User.CreateUser(w.ctx, &request.CreateUserRequest{
		Username: "admin",
		Password: "correct horse",
		IsStaff:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.True(t, user.IsStaff)

	stored, err := repo.User.FindByUsername(w.ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct horse", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse")))

	_, err = w.svc.User.CreateUser(w.ctx, &request.CreateUserRequest{Username: "admin", Password: "another one"})
	assert.Equal(t, utils.FieldErrors{"username": {msgUsernameTaken}}, requireFieldErrors(t, err))
}

func TestUserService_Validation(t *testing.T) {
	w, _ := newWorld(t)

	_, err := w.svc.User.CreateUser(w.ctx, &request.CreateUserRequest{Username: "", Password: "short"})
	assert.Equal(t, utils.FieldErrors{
		"username": {utils.MsgRequired},
		"password": {"must be at least 8 characters"},
	}, requireFieldErrors(t, err))
}
