package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/abidbilal/deskservice/internal/config"
	"github.com/abidbilal/deskservice/internal/entity"
	"github.com/abidbilal/deskservice/internal/errs"
)

type fakeUserStore struct {
	created *entity.User
	byName  map[string]*entity.User
	nextID  int64
}

func (f *fakeUserStore) Create(_ context.Context, user *entity.User) (int64, error) {
	f.created = user
	return f.nextID, nil
}

func (f *fakeUserStore) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	if u, ok := f.byName[username]; ok {
		return u, nil
	}
	return nil, pgx.ErrNoRows
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{SecretKey: "test-secret", TokenTTL: 60}
}

func TestAuthService_RegisterHashesPassword(t *testing.T) {
	store := &fakeUserStore{nextID: 1}
	svc := NewAuthService(store, testAuthConfig())

	id, err := svc.Register(context.Background(), " frontdesk ", "correct horse battery")

	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, "frontdesk", store.created.Username)
	assert.NotEqual(t, "correct horse battery", store.created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(store.created.PasswordHash), []byte("correct horse battery")))
}

func TestAuthService_RegisterRejectsShortPassword(t *testing.T) {
	svc := NewAuthService(&fakeUserStore{}, testAuthConfig())

	_, err := svc.Register(context.Background(), "frontdesk", "short")

	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestAuthService_LoginReturnsVerifiableToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse battery"), bcrypt.MinCost)
	require.NoError(t, err)

	store := &fakeUserStore{byName: map[string]*entity.User{
		"frontdesk": {ID: 7, Username: "frontdesk", PasswordHash: string(hash)},
	}}
	svc := NewAuthService(store, testAuthConfig())

	signed, err := svc.Login(context.Background(), "frontdesk", "correct horse battery")
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(7), claims["sub"])
	assert.Equal(t, "frontdesk", claims["usr"])
}

func TestAuthService_LoginRejectsWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse battery"), bcrypt.MinCost)
	require.NoError(t, err)

	store := &fakeUserStore{byName: map[string]*entity.User{
		"frontdesk": {ID: 7, Username: "frontdesk", PasswordHash: string(hash)},
	}}
	svc := NewAuthService(store, testAuthConfig())

	_, err = svc.Login(context.Background(), "frontdesk", "wrong")

	require.Error(t, err)
	assert.True(t, errs.HasCode(err, "UNAUTHORIZED"))
}

func TestAuthService_LoginUnknownUserMatchesWrongPassword(t *testing.T) {
	svc := NewAuthService(&fakeUserStore{}, testAuthConfig())

	_, err := svc.Login(context.Background(), "nobody", "whatever")

	require.Error(t, err)
	assert.True(t, errs.HasCode(err, "UNAUTHORIZED"))
}
