// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/credstore/internal/config"
	"github.com/MKhiriev/credstore/internal/logger"
	"github.com/MKhiriev/credstore/internal/store"
	"github.com/MKhiriev/credstore/internal/utils"
	"github.com/MKhiriev/credstore/models"
)

func testAuthConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "credstore-test",
		TokenDuration: time.Hour,
		Version:       "0.1.0",
	}
}

func TestRegisterUser_HashesPassword(t *testing.T) {
	var savedUser models.User
	repo := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			savedUser = user
			user.UserID = 1
			return user, nil
		},
	}

	auth := NewAuthService(repo, testAuthConfig(), logger.NewLogger("test"))

	registered, err := auth.RegisterUser(context.Background(), models.User{
		Login:    "john",
		Name:     "John",
		Password: "s3cret-password",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, registered.UserID)

	// plaintext must never reach the repository
	assert.Empty(t, savedUser.Password)
	require.NotEmpty(t, savedUser.PasswordHash)
	assert.NotEqual(t, "s3cret-password", savedUser.PasswordHash)

	// the stored hash must verify against the original password
	ok, err := utils.VerifyPassword("s3cret-password", savedUser.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegisterUser_EmptyFields(t *testing.T) {
	auth := NewAuthService(&mockUserRepository{}, testAuthConfig(), logger.NewLogger("test"))

	_, err := auth.RegisterUser(context.Background(), models.User{Login: "john"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = auth.RegisterUser(context.Background(), models.User{Password: "secret"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRegisterUser_LoginTaken(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrLoginAlreadyExists
		},
	}
	auth := NewAuthService(repo, testAuthConfig(), logger.NewLogger("test"))

	_, err := auth.RegisterUser(context.Background(), models.User{Login: "john", Password: "secret"})
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-password")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByLoginFn: func(ctx context.Context, login string) (models.User, error) {
			return models.User{UserID: 7, Login: login, PasswordHash: hash}, nil
		},
	}
	auth := NewAuthService(repo, testAuthConfig(), logger.NewLogger("test"))

	user, err := auth.Login(context.Background(), models.User{Login: "john", Password: "s3cret-password"})
	require.NoError(t, err)
	assert.EqualValues(t, 7, user.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("correct-password")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByLoginFn: func(ctx context.Context, login string) (models.User, error) {
			return models.User{UserID: 7, Login: login, PasswordHash: hash}, nil
		},
	}
	auth := NewAuthService(repo, testAuthConfig(), logger.NewLogger("test"))

	_, err = auth.Login(context.Background(), models.User{Login: "john", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_UserNotFound(t *testing.T) {
	repo := &mockUserRepository{
		findUserByLoginFn: func(ctx context.Context, login string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	auth := NewAuthService(repo, testAuthConfig(), logger.NewLogger("test"))

	_, err := auth.Login(context.Background(), models.User{Login: "nobody", Password: "whatever"})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestCreateToken_ParseToken_RoundTrip(t *testing.T) {
	auth := NewAuthService(&mockUserRepository{}, testAuthConfig(), logger.NewLogger("test"))

	token, err := auth.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := auth.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.EqualValues(t, 42, parsed.UserID)
}

func TestParseToken_Invalid(t *testing.T) {
	auth := NewAuthService(&mockUserRepository{}, testAuthConfig(), logger.NewLogger("test"))

	_, err := auth.ParseToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_WrongIssuer(t *testing.T) {
	otherConfig := testAuthConfig()
	otherConfig.TokenIssuer = "someone-else"
	otherAuth := NewAuthService(&mockUserRepository{}, otherConfig, logger.NewLogger("test"))

	token, err := otherAuth.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	auth := NewAuthService(&mockUserRepository{}, testAuthConfig(), logger.NewLogger("test"))
	_, err = auth.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestLogin_RepositoryError(t *testing.T) {
	repo := &mockUserRepository{
		findUserByLoginFn: func(ctx context.Context, login string) (models.User, error) {
			return models.User{}, errors.New("db down")
		},
	}
	auth := NewAuthService(repo, testAuthConfig(), logger.NewLogger("test"))

	_, err := auth.Login(context.Background(), models.User{Login: "john", Password: "secret"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrWrongPassword)
}
