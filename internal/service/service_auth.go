package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lcmendes/weather-gist/internal/config"
	"github.com/lcmendes/weather-gist/internal/logger"
	"github.com/lcmendes/weather-gist/internal/mailer"
	"github.com/lcmendes/weather-gist/internal/store"
	"github.com/lcmendes/weather-gist/internal/utils"
	"github.com/lcmendes/weather-gist/models"
)

// pinLifetime is how long a freshly issued reset PIN stays valid.
const pinLifetime = 5 * time.Minute

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, JWT lifecycle including
// revocation, and the PIN-based password reset flow. Passwords are stored as
// bcrypt hashes.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenRepository tracks revoked token identifiers for logout.
	tokenRepository store.TokenRepository

	// mailer delivers reset PINs to account emails.
	mailer mailer.Mailer

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, tokenRepository store.TokenRepository, mail mailer.Mailer, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		mailer:          mail,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		logger:          logger,
	}
}

// RegisterUser creates a new user account.
//
// The plaintext password is hashed with bcrypt before persistence.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if a required field is empty.
//   - A wrapped storage error if the repository call fails (e.g. email already
//     taken — see store.ErrUserAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Name:     req.Name,
		CPF:      req.CPF,
		CNPJ:     req.CNPJ,
		Password: passwordHash,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates a user by email and password and issues a fresh token.
//
// Unknown email and wrong password both map to ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, email, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.Token{}, ErrInvalidCredentials
	}

	if !utils.VerifyPassword(foundUser.Password, password) {
		log.Error().Int64("id", foundUser.ID).Str("email", email).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	return a.CreateToken(ctx, foundUser)
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, a fresh jti for revocation, and expires
// after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// IsTokenRevoked reports whether the token identifier was revoked by a
// logout.
func (a *authService) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	return a.tokenRepository.IsRevoked(ctx, tokenID)
}

// Logout revokes the given token by its jti claim. Revoking an already
// revoked token succeeds silently.
func (a *authService) Logout(ctx context.Context, token models.Token) error {
	log := logger.FromContext(ctx)

	if token.TokenID == "" {
		return ErrTokenIsExpiredOrInvalid
	}

	expiresAt := time.Now().Add(a.tokenDuration)
	if token.Token != nil {
		if exp, expErr := token.Claims.GetExpirationTime(); expErr == nil && exp != nil {
			expiresAt = exp.Time
		}
	}

	if err := a.tokenRepository.Revoke(ctx, token.TokenID, token.UserID, expiresAt); err != nil {
		log.Err(err).Int64("user_id", token.UserID).Msg("token revocation failed")
		return fmt.Errorf("token revocation failed: %w", err)
	}

	return nil
}

// ForgotPassword starts the PIN-based reset flow: generate a 6-digit PIN,
// store it with a 5-minute expiration (overwriting any pending PIN) and mail
// it to the account address.
//
// Returns store.ErrNoUserWasFound when no account with that email exists.
func (a *authService) ForgotPassword(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		return ErrInvalidDataProvided
	}

	if _, err := a.userRepository.FindUserByEmail(ctx, email); err != nil {
		return err
	}

	pin, err := utils.GeneratePIN()
	if err != nil {
		log.Err(err).Msg("reset PIN generation failed")
		return fmt.Errorf("reset PIN generation failed: %w", err)
	}

	expiration := time.Now().Add(pinLifetime)
	if err := a.userRepository.SavePIN(ctx, email, pin, expiration); err != nil {
		log.Err(err).Str("email", email).Msg("saving reset PIN failed")
		return fmt.Errorf("saving reset PIN failed: %w", err)
	}

	if err := a.mailer.SendPINEmail(ctx, email, pin); err != nil {
		return fmt.Errorf("sending reset PIN failed: %w", err)
	}

	return nil
}

// ResetPassword completes the PIN-based reset flow.
//
// The PIN match is checked before its expiration, so a wrong PIN on an
// expired reset still reports ErrInvalidPin. The expiry check is
// boundary-inclusive: a PIN used exactly at its expiration instant is
// accepted. A successful reset stores the new password hash and clears the
// PIN fields in one statement.
//
// Failure modes: store.ErrNoUserWasFound, ErrInvalidPin, ErrExpiredPin.
// Failures leave the pending PIN untouched.
func (a *authService) ResetPassword(ctx context.Context, email, pin, newPassword string) error {
	log := logger.FromContext(ctx)

	if email == "" || pin == "" || newPassword == "" {
		return ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	if user.ResetPIN == nil || *user.ResetPIN != pin {
		log.Error().Str("email", email).Msg("reset PIN mismatch")
		return ErrInvalidPin
	}

	if user.ResetPINExpiration == nil || time.Now().After(*user.ResetPINExpiration) {
		log.Error().Str("email", email).Msg("reset PIN expired")
		return ErrExpiredPin
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.userRepository.UpdatePassword(ctx, email, passwordHash); err != nil {
		log.Err(err).Str("email", email).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}

// ChangePassword rotates the password of an authenticated user after
// verifying the old one. A wrong old password maps to ErrInvalidCredentials.
func (a *authService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	if oldPassword == "" || newPassword == "" {
		return ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if !utils.VerifyPassword(user.Password, oldPassword) {
		log.Error().Int64("id", userID).Msg("wrong old password")
		return ErrInvalidCredentials
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.userRepository.UpdatePassword(ctx, user.Email, passwordHash); err != nil {
		log.Err(err).Int64("id", userID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}
