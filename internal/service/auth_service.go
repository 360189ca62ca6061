package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alcyxob/fitness-ai/internal/domain"
	"github.com/alcyxob/fitness-ai/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Messages ---
const (
	msgRegisterFieldsRequired = "Username, email, and password are required"
	msgLoginFieldsRequired    = "Email and password are required"
	msgInvalidCredentials     = "Invalid email or password"
	msgEmailTaken             = "Email is already registered"
	msgUsernameTaken          = "Username is already taken"
	msgInvalidToken           = "Invalid or expired token"
	msgUserNotFound           = "User not found"
)

const tokenIssuer = "fitness-ai"

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (token string, user *domain.User, err error)
	// LoginWithIdentity signs in a user vouched for by an external identity
	// provider, linking or creating the local account as needed.
	LoginWithIdentity(ctx context.Context, identity domain.ExternalIdentity) (token string, user *domain.User, err error)
	// Authenticate resolves a bearer token to the session of an existing user.
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
}

// authService implements the AuthService interface.
type authService struct {
	userRepo      repository.UserRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo repository.UserRepository, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty")
	}
	if jwtExpiration <= 0 {
		jwtExpiration = 24 * time.Hour
	}
	return &authService{
		userRepo:      userRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

func (s *authService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	username, email = strings.TrimSpace(username), strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, domain.Validation(msgRegisterFieldsRequired)
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domain.Validation(msgEmailTaken)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, domain.Internal("Internal Server Error", err)
	}

	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, domain.Validation(msgUsernameTaken)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, domain.Internal("Internal Server Error", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.Internal("Could not process registration", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if _, err := s.userRepo.Create(ctx, user); err != nil {
		// lost a race against another registration with the same email or username
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.Validation(msgEmailTaken)
		}
		return nil, domain.Internal("Internal Server Error", err)
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.Validation(msgLoginFieldsRequired)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, domain.Unauthorized(msgInvalidCredentials)
		}
		return "", nil, domain.Internal("Internal Server Error", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.Unauthorized(msgInvalidCredentials)
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", nil, domain.Internal("Could not process login", err)
	}

	user.PasswordHash = ""
	return token, user, nil
}

func (s *authService) LoginWithIdentity(ctx context.Context, identity domain.ExternalIdentity) (string, *domain.User, error) {
	user, err := s.resolveIdentity(ctx, identity)
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", nil, domain.Internal("Could not process login", err)
	}

	user.PasswordHash = ""
	return token, user, nil
}

func (s *authService) resolveIdentity(ctx context.Context, identity domain.ExternalIdentity) (*domain.User, error) {
	logger := log.WithFields(log.Fields{
		"provider":   identity.Provider,
		"externalId": identity.ExternalID,
	})

	if identity.ExternalID != "" {
		user, err := s.userRepo.GetByExternalID(ctx, identity.Provider, identity.ExternalID)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, domain.Internal("Internal Server Error", err)
		}
	}

	if identity.Email != "" {
		user, err := s.userRepo.GetByEmail(ctx, identity.Email)
		if err == nil {
			if identity.ExternalID != "" {
				if err := s.userRepo.LinkExternalID(ctx, user.ID, identity.Provider, identity.ExternalID); err != nil {
					logger.Errorf("link external id: %s", err)
				}
			}
			return user, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, domain.Internal("Internal Server Error", err)
		}
	}

	return s.createExternalUser(ctx, identity)
}

// createExternalUser stores an account for a first-time provider login.
// The password is random, so the account can only sign in through the provider.
func (s *authService) createExternalUser(ctx context.Context, identity domain.ExternalIdentity) (*domain.User, error) {
	placeholder, err := randomHex(16)
	if err != nil {
		return nil, domain.Internal("Internal Server Error", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(placeholder), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.Internal("Internal Server Error", err)
	}

	user := &domain.User{
		Username:     identity.DisplayName,
		Email:        identity.Email,
		PasswordHash: string(hash),
	}
	if user.Username == "" {
		user.Username = strings.Split(identity.Email, "@")[0]
	}
	if identity.ExternalID != "" {
		externalID := identity.ExternalID
		switch identity.Provider {
		case domain.ProviderGoogle:
			user.GoogleID = &externalID
		case domain.ProviderStrava:
			user.StravaID = &externalID
		}
	}

	base := user.Username
	const attempts = 3
	for i := 0; i < attempts; i++ {
		_, err = s.userRepo.Create(ctx, user)
		if !errors.Is(err, repository.ErrDuplicate) {
			break
		}
		suffix, rerr := randomHex(2)
		if rerr != nil {
			return nil, domain.Internal("Internal Server Error", rerr)
		}
		user.Username = base + "_" + suffix
	}
	if err != nil {
		return nil, domain.Internal("Internal Server Error", err)
	}

	log.WithFields(log.Fields{
		"provider": identity.Provider,
		"userId":   user.ID,
	}).Info("created user from external identity")
	return user, nil
}

func (s *authService) Authenticate(ctx context.Context, tokenString string) (*domain.Session, error) {
	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, domain.Unauthorized(msgInvalidToken)
	}

	userID, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil {
		return nil, domain.Unauthorized(msgInvalidToken)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.Unauthorized(msgUserNotFound)
		}
		return nil, domain.Internal("Internal Server Error", err)
	}

	return &domain.Session{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
	}, nil
}

// --- JWT Helper ---

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	UserID   string `json:"uid"`
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func (s *authService) generateJWT(user *domain.User) (string, error) {
	now := time.Now()
	userID := strconv.FormatInt(user.ID, 10)
	claims := &jwtClaims{
		UserID:   userID,
		Email:    user.Email,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
