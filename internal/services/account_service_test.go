package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"funtrip/internal/models/db_models"
	"funtrip/internal/models/request_models"
	"funtrip/internal/repositories"
	"funtrip/internal/services"
	"funtrip/pkg/utils"
)

type mockAccountRepo struct {
	insert          func(ctx context.Context, account *db_models.Account) error
	findByID        func(ctx context.Context, id uint) (*db_models.Account, error)
	findByUsername  func(ctx context.Context, username string) (*db_models.Account, error)
	findByEmail     func(ctx context.Context, email string) (*db_models.Account, error)
	updateLastLogin func(ctx context.Context, id uint, lastLogin int64) error
}

func (m *mockAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	return m.insert(ctx, account)
}
func (m *mockAccountRepo) FindByID(ctx context.Context, id uint) (*db_models.Account, error) {
	return m.findByID(ctx, id)
}
func (m *mockAccountRepo) FindByUsername(ctx context.Context, username string) (*db_models.Account, error) {
	return m.findByUsername(ctx, username)
}
func (m *mockAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return m.findByEmail(ctx, email)
}
func (m *mockAccountRepo) UpdateLastLogin(ctx context.Context, id uint, lastLogin int64) error {
	return m.updateLastLogin(ctx, id, lastLogin)
}

var _ repositories.AccountRepository = (*mockAccountRepo)(nil)

func sampleSignUp() request_models.SignUpRequest {
	return request_models.SignUpRequest{
		Username:  "wanderer",
		Email:     "Wanderer@Example.com",
		FirstName: "Ada",
		LastName:  "Nguyen",
		Password:  "correct-horse-battery",
	}
}

func emptyAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{
		findByUsername: func(_ context.Context, _ string) (*db_models.Account, error) { return nil, nil },
		findByEmail:    func(_ context.Context, _ string) (*db_models.Account, error) { return nil, nil },
	}
}

func TestAccountService_Register_HashesPasswordAndLowercasesEmail(t *testing.T) {
	repo := emptyAccountRepo()
	var inserted *db_models.Account
	repo.insert = func(_ context.Context, account *db_models.Account) error {
		inserted = account
		account.ID = 7
		return nil
	}
	svc := services.NewAccountService(repo)

	got, err := svc.Register(context.Background(), sampleSignUp())

	require.NoError(t, err)
	require.NotNil(t, inserted)
	assert.Equal(t, uint(7), got.ID)
	assert.Equal(t, "wanderer@example.com", got.Email)
	assert.True(t, got.IsActive)
	assert.False(t, got.IsVerified)
	assert.NotEqual(t, "correct-horse-battery", inserted.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(inserted.PasswordHash, "correct-horse-battery"))
}

func TestAccountService_Register_UsernameTaken(t *testing.T) {
	repo := emptyAccountRepo()
	repo.findByUsername = func(_ context.Context, _ string) (*db_models.Account, error) {
		return &db_models.Account{Username: "wanderer"}, nil
	}
	svc := services.NewAccountService(repo)

	_, err := svc.Register(context.Background(), sampleSignUp())

	assert.ErrorIs(t, err, utils.ErrUsernameTaken)
}

func TestAccountService_Register_EmailExists(t *testing.T) {
	repo := emptyAccountRepo()
	repo.findByEmail = func(_ context.Context, _ string) (*db_models.Account, error) {
		return &db_models.Account{Email: "wanderer@example.com"}, nil
	}
	svc := services.NewAccountService(repo)

	_, err := svc.Register(context.Background(), sampleSignUp())

	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func storedAccount(t *testing.T) *db_models.Account {
	t.Helper()
	hash, err := utils.HashPassword("correct-horse-battery")
	require.NoError(t, err)
	return &db_models.Account{
		BaseModel:    db_models.BaseModel{ID: 7},
		Username:     "wanderer",
		Email:        "wanderer@example.com",
		PasswordHash: hash,
		IsActive:     true,
	}
}

func TestAccountService_Login_ByUsername(t *testing.T) {
	account := storedAccount(t)
	repo := &mockAccountRepo{
		findByUsername: func(_ context.Context, username string) (*db_models.Account, error) {
			if username == "wanderer" {
				return account, nil
			}
			return nil, nil
		},
		updateLastLogin: func(_ context.Context, id uint, _ int64) error {
			assert.Equal(t, uint(7), id)
			return nil
		},
	}
	svc := services.NewAccountService(repo)

	got, err := svc.Login(context.Background(), request_models.LoginRequest{
		UsernameOrEmail: "wanderer",
		Password:        "correct-horse-battery",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, got.AccessToken)
	assert.Equal(t, "bearer", got.TokenType)
	assert.Equal(t, 3600, got.ExpiresIn)
}

func TestAccountService_Login_ByEmail(t *testing.T) {
	account := storedAccount(t)
	repo := &mockAccountRepo{
		findByUsername: func(_ context.Context, _ string) (*db_models.Account, error) { return nil, nil },
		findByEmail: func(_ context.Context, email string) (*db_models.Account, error) {
			if email == "wanderer@example.com" {
				return account, nil
			}
			return nil, nil
		},
		updateLastLogin: func(_ context.Context, _ uint, _ int64) error { return nil },
	}
	svc := services.NewAccountService(repo)

	got, err := svc.Login(context.Background(), request_models.LoginRequest{
		UsernameOrEmail: "Wanderer@Example.com",
		Password:        "correct-horse-battery",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, got.AccessToken)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	account := storedAccount(t)
	repo := &mockAccountRepo{
		findByUsername: func(_ context.Context, _ string) (*db_models.Account, error) { return account, nil },
	}
	svc := services.NewAccountService(repo)

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		UsernameOrEmail: "wanderer",
		Password:        "wrong",
	})

	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestAccountService_Login_UnknownIdentifier(t *testing.T) {
	repo := &mockAccountRepo{
		findByUsername: func(_ context.Context, _ string) (*db_models.Account, error) { return nil, nil },
	}
	svc := services.NewAccountService(repo)

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		UsernameOrEmail: "nobody",
		Password:        "whatever",
	})

	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestAccountService_GetByID_NotFound(t *testing.T) {
	repo := &mockAccountRepo{
		findByID: func(_ context.Context, _ uint) (*db_models.Account, error) { return nil, nil },
	}
	svc := services.NewAccountService(repo)

	_, err := svc.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}
