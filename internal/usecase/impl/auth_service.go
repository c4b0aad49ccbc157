// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "todo/internal/delivery/context"
	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	"todo/internal/domain/service"
	"todo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	// dummyPassword is hashed once at startup. Logins for unknown emails compare
	// against that hash so both failure paths spend the same bcrypt work.
	dummyPassword = "todo-dummy-password"
	// fallbackDummyHash is a cost 10 hash used only if hashing dummyPassword fails.
	fallbackDummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

	defaultAuditPublishTimeout = 2 * time.Second
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	publisher    service.EventPublisher
	logger       *slog.Logger

	dummyHash    string
	auditTimeout time.Duration
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.AuthUsecase {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		logger.Warn("Failed to hash dummy password, using fallback hash", slog.Any("error", err))
		dummyHash = fallbackDummyHash
	}

	return &authService{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		publisher:    publisher,
		logger:       logger,
		dummyHash:    dummyHash,
		auditTimeout: defaultAuditPublishTimeout,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the credentials, hashes the password and stores the account.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:    input.Email,
		Password: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrEmailAlreadyExists) {
			srv.log(ctx).Warn("Registration rejected, email taken", slog.String("email", input.Email))

			return nil, domainerrors.ErrEmailAlreadyExists.WrapMessage("failed to register user")
		}

		srv.log(ctx).Error("Failed to create user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.publishAudit(ctx, service.AuditUserRegistered, newUser.ID, newUser.Email)
	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// validateRegistration reports the first missing or malformed field.
func validateRegistration(input *usecase.RegisterInput) error {
	switch {
	case input.Email == "":
		return domainerrors.ErrEmailRequired
	case !entity.IsValidEmail(input.Email):
		return domainerrors.ErrEmailInvalid
	case input.Password == "":
		return domainerrors.ErrPasswordRequired
	}

	return nil
}

// Login verifies the credentials and issues an access token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.validateUser(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to sign access token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.publishAudit(ctx, service.AuditUserLoggedIn, user.ID, user.Email)
	srv.log(ctx).Debug("User logged in successfully", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		User:        user,
	}, nil
}

// validateUser loads the account and checks the password. Unknown email and wrong
// password are indistinguishable to the caller.
func (srv *authService) validateUser(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.hasher.Check(password, srv.dummyHash)

			return nil, domainerrors.ErrUserNotExist.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(password, user.Password) {
		return nil, domainerrors.ErrUserNotExist.WrapMessage("login failed")
	}

	return user, nil
}

// Logout records the logout. Tokens stay valid until they expire.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Logging out user", slog.String("email", input.Email))

	srv.publishAudit(ctx, service.AuditUserLoggedOut, input.UserID, input.Email)

	return nil
}

// publishAudit logs and drops publish failures. The publish keeps the request's
// values but not its cancellation, and gives up after auditTimeout.
func (srv *authService) publishAudit(ctx context.Context, eventType string, userID int64, email string) {
	event := &service.AuditEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		UserID:     userID,
		Email:      email,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt: time.Now().UTC(),
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), srv.auditTimeout)
	defer cancel()

	if err := srv.publisher.PublishAuditEvent(publishCtx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish audit event",
			slog.String("type", eventType),
			slog.Int64("userID", userID),
			slog.Any("error", err),
		)
	}
}
