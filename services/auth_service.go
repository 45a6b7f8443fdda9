package services

import (
	"errors"
	"strings"
	"time"

	"srvices-backend/entity"
	"srvices-backend/pkg/apperr"
	"srvices-backend/repository"
	"srvices-backend/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles register/login and session profiles.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

type RegisterInput struct {
	Email       string
	Password    string
	FullName    string
	PhoneNumber string
	Language    string
	AsDriver    bool
}

// Register creates a user. Customers start active; drivers start in
// pending_approval and stay there until the document gate clears them.
func (s *AuthService) Register(in RegisterInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, apperr.Validation("email and password are required")
	}

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Validation("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	lang := in.Language
	if lang != "ar" {
		lang = "en"
	}

	user := &entity.User{
		Email:       email,
		Password:    string(hashed),
		FullName:    strings.TrimSpace(in.FullName),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		UserType:    entity.UserTypeCustomer,
		Status:      entity.UserStatusActive,
		Language:    lang,
	}
	if in.AsDriver {
		user.UserType = entity.UserTypeDriver
		user.Status = entity.UserStatusPendingApproval
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a JWT. Suspended accounts cannot
// sign in.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, apperr.Validation("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.Validation("invalid credentials")
	}
	if user.Status == entity.UserStatusSuspended {
		return "", nil, apperr.Validation("account suspended")
	}

	token, err := utils.GenerateToken(user.ID, string(user.UserType), user.Email, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, user, nil
}

// GetProfile loads the session profile, re-provisioning a default customer
// profile when the authenticated identity has no row (first-login
// bootstrap). Provisioning needs the token's email claim; without one the
// lookup miss stays a miss, since a row with a blank email would collide on
// the unique index the next time this happened.
func (s *AuthService) GetProfile(userID, email string) (*entity.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if errors.Is(err, apperr.ErrNotFound) && email != "" {
		return s.userRepo.EnsureProfile(userID, email)
	}
	return user, err
}

// UpdateProfile applies a self-service edit; role and status are not
// editable here.
func (s *AuthService) UpdateProfile(userID string, updates map[string]any) (*entity.User, error) {
	for _, forbidden := range []string{"user_type", "status", "wallet_balance", "email", "password"} {
		delete(updates, forbidden)
	}
	if len(updates) == 0 {
		return nil, apperr.Validation("nothing to update")
	}
	if err := s.userRepo.Update(userID, updates); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(userID)
}
