package services

import (
	"context"
	"strings"
	"time"

	"funtrip/internal/models/db_models"
	"funtrip/internal/models/request_models"
	"funtrip/internal/models/response_models"
	"funtrip/internal/repositories"
	"funtrip/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, req request_models.SignUpRequest) (*response_models.AccountResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.TokenResponse, error)
	GetByID(ctx context.Context, accountID uint) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{accountRepo: accountRepo}
}

func (s *AccountService) Register(ctx context.Context, req request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	existing, err := s.accountRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrUsernameTaken
	}

	existing, err = s.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &db_models.Account{
		Username:     req.Username,
		Email:        strings.ToLower(req.Email),
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		IsActive:     true,
	}
	if err := s.accountRepo.Insert(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return buildAccountResponse(account), nil
}

// Login accepts either a username or an email as the identifier. Unknown
// identifiers and wrong passwords both map to the same credential error so
// the response leaks nothing about which part failed.
func (s *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.TokenResponse, error) {
	account, err := s.accountRepo.FindByUsername(ctx, req.UsernameOrEmail)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil && strings.Contains(req.UsernameOrEmail, "@") {
		account, err = s.accountRepo.FindByEmail(ctx, strings.ToLower(req.UsernameOrEmail))
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Username)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.UpdateLastLogin(ctx, account.ID, time.Now().Unix()); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(utils.TokenTTL.Seconds()),
	}, nil
}

func (s *AccountService) GetByID(ctx context.Context, accountID uint) (*response_models.AccountResponse, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return buildAccountResponse(account), nil
}

func buildAccountResponse(account *db_models.Account) *response_models.AccountResponse {
	return &response_models.AccountResponse{
		ID:         account.ID,
		Username:   account.Username,
		Email:      account.Email,
		FirstName:  account.FirstName,
		LastName:   account.LastName,
		IsActive:   account.IsActive,
		IsVerified: account.IsVerified,
	}
}
