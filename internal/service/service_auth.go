// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/logger"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/store"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/validators"
	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

// authService is the concrete implementation of AuthService.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	hasher    PasswordHasher
	tokens    TokenIssuer
	validator validators.Validator

	// dummyHash is compared against when the email is unknown, so a failed
	// login costs one hash comparison whether or not the user exists.
	dummyHash string

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher PasswordHasher, tokens TokenIssuer, validator validators.Validator, logger *logger.Logger) (AuthService, error) {
	dummyHash, err := hasher.Hash("easy-travel-dummy-password")
	if err != nil {
		return nil, fmt.Errorf("error preparing dummy password hash: %w", err)
	}

	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		validator:      validator,
		dummyHash:      dummyHash,
		now:            time.Now,
		logger:         logger,
	}, nil
}

// RegisterUser creates a new user account.
//
// The email is normalized (trimmed, lower-cased) before validation and
// storage, so registration is case-insensitive.
//
// Returns the persisted user or:
//   - a *validators.ValidationError for a malformed email or a short password;
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
func (a *authService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	creds.Email = normalizeEmail(creds.Email)
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.User{}, err
	}

	hash, err := a.hasher.Hash(creds.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        creds.Email,
		PasswordHash: hash,
		CreatedAt:    a.now().UTC(),
	})
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Returns the authenticated user record or:
//   - a *validators.ValidationError for a malformed email or empty password;
//   - ErrInvalidCredentials for an unknown email or a wrong password.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	creds.Email = normalizeEmail(creds.Email)
	if err := a.validator.Validate(ctx, creds, validators.FieldEmail, validators.FieldPasswordPresent); err != nil {
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, creds.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		_ = a.hasher.Compare(a.dummyHash, creds.Password)
		log.Info().Str("email", creds.Email).Msg("login for unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = a.hasher.Compare(foundUser.PasswordHash, creds.Password); err != nil {
		log.Info().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed session token for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := a.tokens.Issue(models.Identity{UserID: user.UserID, Email: user.Email})
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw token string. Any validation failure (expired,
// wrong issuer, wrong signature, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Identity, error) {
	identity, err := a.tokens.Parse(tokenString)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Identity{}, ErrTokenIsExpiredOrInvalid
	}

	return identity, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
