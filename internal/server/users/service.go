package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/config"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/google/uuid"
)

// Service handles registration and login.
type Service struct {
	repo       Repository
	jwtSecret  []byte
	bcryptCost int
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:       repo,
		jwtSecret:  []byte(cfg.SecretKey),
		bcryptCost: cfg.BCryptCost,
	}
}

// Register creates a new user with a hashed password. An existing username
// yields common.ErrorAlreadyExists. The existence check and the insert are
// two separate statements; the unique index on username backstops the gap
// between them.
func (s *Service) Register(ctx context.Context, username string, password string) (*models.User, error) {

	_, err := s.repo.GetUserByLogin(ctx, username)
	if err == nil {
		return nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		UserName:     username,
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the password against the stored hash and, on success,
// returns a signed identity token. Unknown usernames and wrong passwords
// stay distinct errors because the client messages differ.
func (s *Service) Login(ctx context.Context, username string, password string) (string, error) {

	user, err := s.repo.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUserNotFound
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}
