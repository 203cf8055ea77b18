package service

import (
	"fmt"

	"github.com/eligiorbautista/niyoghub-server/internal/domain"
	"github.com/eligiorbautista/niyoghub-server/internal/token"
)

// AuthService provides account registration, login and resolution of session
// credentials into identities.
type AuthService struct {
	users  IUserRepository
	tokens *token.Manager
}

// NewAuthService creates a new AuthService.
func NewAuthService(users IUserRepository, tokens *token.Manager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new user account and returns it with a freshly issued
// session credential.
func (s *AuthService) Register(email, fullName, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", domain.ErrMissingCredentials
	}

	existing, err := s.users.GetUserByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up email: %w", err)
	}
	if existing != nil {
		return nil, "", domain.ErrEmailTaken
	}

	user, err := domain.NewUser(email, fullName, password)
	if err != nil {
		return nil, "", err
	}
	if err := s.users.CreateUser(user); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	credential, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, credential, nil
}

// Login authenticates a user and issues a session credential.
func (s *AuthService) Login(email, password string) (*domain.User, string, error) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if user == nil || !user.CheckPassword(password) {
		return nil, "", domain.ErrUnauthorized
	}

	credential, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, credential, nil
}

// Resolve verifies a session credential and confirms the account still
// exists, returning the identity it carries.
func (s *AuthService) Resolve(credential string) (*domain.Identity, error) {
	identity, err := s.tokens.Verify(credential)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(identity.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return identity, nil
}
