package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/devlinkhq/devlink-api/internal/auth"
	"github.com/devlinkhq/devlink-api/internal/gravatar"
	"github.com/devlinkhq/devlink-api/internal/model"
	"github.com/devlinkhq/devlink-api/internal/repository"
	"github.com/devlinkhq/devlink-api/internal/security"
)

// AuthUsecase defines the interface for authentication-related use cases.
type AuthUsecase interface {
	Register(ctx context.Context, params RegisterParams) (string, error)
	Login(ctx context.Context, params LoginParams) (string, error)
	CurrentAccount(ctx context.Context, accountID string) (*model.User, error)
}

// RegisterParams defines the parameters for account registration.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
}

// LoginParams defines the parameters for account login.
type LoginParams struct {
	Email    string
	Password string
}

var (
	// ErrAccountExists is returned when registering an email that is taken.
	ErrAccountExists = errors.New("account already exists")
	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password so a caller cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountNotFound is returned when a keyed account lookup finds nothing.
	ErrAccountNotFound = errors.New("account not found")
)

type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenService
}

// NewAuthUsecase creates the authentication use case.
func NewAuthUsecase(userRepo repository.UserRepository, tokens *auth.TokenService) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (u *authUsecase) Register(ctx context.Context, params RegisterParams) (string, error) {
	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return "", err
	}

	user, err := u.userRepo.CreateUser(ctx, &model.User{
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: passwordHash,
		Avatar:       gravatar.URL(params.Email),
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrAccountExists
		}

		return "", err
	}

	return u.tokens.Issue(user.ID.Hex())
}

func (u *authUsecase) Login(ctx context.Context, params LoginParams) (string, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrInvalidCredentials
		}

		return "", err
	}

	if ok, err := security.VerifyPassword(params.Password, user.PasswordHash); err != nil {
		return "", err
	} else if !ok {
		return "", ErrInvalidCredentials
	}

	return u.tokens.Issue(user.ID.Hex())
}

func (u *authUsecase) CurrentAccount(ctx context.Context, accountID string) (*model.User, error) {
	user, err := u.userRepo.GetUser(ctx, accountID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAccountNotFound
		}

		return nil, err
	}

	return user, nil
}
