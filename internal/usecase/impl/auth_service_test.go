package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "todo/internal/delivery/context"
	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	"todo/internal/domain/service"
	mockRepo "todo/internal/mocks/repository"
	mockSvc "todo/internal/mocks/service"
	"todo/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testDummyHash = "$2a$12$dummy.hash.for.tests"

type authMocks struct {
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	publisher    *mockSvc.MockEventPublisher
}

func newAuthServiceForTest(t *testing.T) (usecase.AuthUsecase, *authMocks) {
	t.Helper()

	m := &authMocks{
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}
	m.hasher.EXPECT().Hash(dummyPassword).Return(testDummyHash, nil).Once()

	return NewAuthService(m.userRepo, m.hasher, m.tokenService, m.publisher, newDiscardLogger()), m
}

func auditOfType(eventType string) any {
	return mock.MatchedBy(func(event *service.AuditEvent) bool {
		return event.Type == eventType && event.EventID != ""
	})
}

func TestAuthService_Register_Success(t *testing.T) {
	srv, m := newAuthServiceForTest(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	m.hasher.EXPECT().Hash("secret").Return("$2a$10$hashed", nil)
	m.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			assert.Equal(t, "jane@example.com", user.Email)
			assert.Equal(t, "$2a$10$hashed", user.Password)
			user.ID = 7

			return nil
		})
	m.publisher.EXPECT().
		PublishAuditEvent(mock.Anything, mock.MatchedBy(func(event *service.AuditEvent) bool {
			return event.Type == service.AuditUserRegistered &&
				event.UserID == 7 &&
				event.Email == "jane@example.com" &&
				event.RequestID == "req-42"
		})).
		Return(nil)

	out, err := srv.Register(ctx, &usecase.RegisterInput{Email: "jane@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), out.User.ID)
}

func TestAuthService_Register_ValidationOrder(t *testing.T) {
	cases := []struct {
		name  string
		input usecase.RegisterInput
		want  error
	}{
		{"everything missing reports email first", usecase.RegisterInput{}, domainerrors.ErrEmailRequired},
		{"malformed email before missing password", usecase.RegisterInput{Email: "not-an-email"}, domainerrors.ErrEmailInvalid},
		{"missing password", usecase.RegisterInput{Email: "jane@example.com"}, domainerrors.ErrPasswordRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv, _ := newAuthServiceForTest(t)

			_, err := srv.Register(context.Background(), &tc.input)

			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	srv, m := newAuthServiceForTest(t)
	ctx := context.Background()

	m.hasher.EXPECT().Hash("secret").Return("hash", nil)
	m.userRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(errors.Wrap(repository.ErrEmailAlreadyExists, "duplicate key"))

	_, err := srv.Register(ctx, &usecase.RegisterInput{Email: "jane@example.com", Password: "secret"})

	require.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
}

func TestAuthService_Register_StorageFailureIsNotAConflict(t *testing.T) {
	srv, m := newAuthServiceForTest(t)
	ctx := context.Background()

	m.hasher.EXPECT().Hash("secret").Return("hash", nil)
	m.userRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to create user"))

	_, err := srv.Register(ctx, &usecase.RegisterInput{Email: "jane@example.com", Password: "secret"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	srv, m := newAuthServiceForTest(t)

	m.hasher.EXPECT().Hash("secret").Return("", errors.New("bcrypt: cost out of range"))

	_, err := srv.Register(context.Background(), &usecase.RegisterInput{Email: "jane@example.com", Password: "secret"})

	require.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAuthService_Register_PublishFailureIsIgnored(t *testing.T) {
	srv, m := newAuthServiceForTest(t)
	ctx := context.Background()

	m.hasher.EXPECT().Hash("secret").Return("hash", nil)
	m.userRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	m.publisher.EXPECT().PublishAuditEvent(mock.Anything, auditOfType(service.AuditUserRegistered)).Return(errors.New("broker down"))

	out, err := srv.Register(ctx, &usecase.RegisterInput{Email: "jane@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.NotNil(t, out.User)
}

func TestAuthService_Login_Success(t *testing.T) {
	srv, m := newAuthServiceForTest(t)
	ctx := context.Background()
	user := &entity.User{ID: 3, Email: "jane@example.com", Password: "stored-hash"}

	m.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)
	m.hasher.EXPECT().Check("secret", "stored-hash").Return(true)
	m.tokenService.EXPECT().GenerateAccessToken(int64(3), "jane@example.com").Return("signed.jwt.token", nil)
	m.publisher.EXPECT().PublishAuditEvent(mock.Anything, auditOfType(service.AuditUserLoggedIn)).Return(nil)

	out, err := srv.Login(ctx, &usecase.LoginInput{Email: "jane@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", out.AccessToken)
	assert.Equal(t, user, out.User)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	srv, m := newAuthServiceForTest(t)
	ctx := context.Background()

	m.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
	m.hasher.EXPECT().Check("secret", testDummyHash).Return(false)

	_, err := srv.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "secret"})

	require.ErrorIs(t, err, domainerrors.ErrUserNotExist)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	srv, m := newAuthServiceForTest(t)
	ctx := context.Background()

	m.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").
		Return(&entity.User{ID: 3, Email: "jane@example.com", Password: "stored-hash"}, nil)
	m.hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

	_, err := srv.Login(ctx, &usecase.LoginInput{Email: "jane@example.com", Password: "wrong"})

	require.ErrorIs(t, err, domainerrors.ErrUserNotExist)
}

func TestAuthService_Login_StorageFailure(t *testing.T) {
	srv, m := newAuthServiceForTest(t)
	ctx := context.Background()

	m.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(nil, errors.New("connection reset"))

	_, err := srv.Login(ctx, &usecase.LoginInput{Email: "jane@example.com", Password: "secret"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrUserNotExist)
}

func TestAuthService_Logout(t *testing.T) {
	srv, m := newAuthServiceForTest(t)
	ctx := context.Background()

	m.publisher.EXPECT().
		PublishAuditEvent(mock.Anything, mock.MatchedBy(func(event *service.AuditEvent) bool {
			return event.Type == service.AuditUserLoggedOut && event.UserID == 3 && event.Email == "jane@example.com"
		})).
		Return(nil)

	err := srv.Logout(ctx, &usecase.LogoutInput{UserID: 3, Email: "jane@example.com"})

	require.NoError(t, err)
}

func TestNewAuthService_DummyHashFallback(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	ctx := context.Background()

	hasher.EXPECT().Hash(dummyPassword).Return("", errors.New("entropy exhausted"))
	srv := NewAuthService(userRepo, hasher, mockSvc.NewMockTokenService(t), mockSvc.NewMockEventPublisher(t), newDiscardLogger())

	userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
	hasher.EXPECT().Check("secret", fallbackDummyHash).Return(false)

	_, err := srv.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "secret"})

	require.ErrorIs(t, err, domainerrors.ErrUserNotExist)
}

func TestAuthService_Login_BlockedPublisherDoesNotHang(t *testing.T) {
	srv, m := newAuthServiceForTest(t)
	srv.(*authService).auditTimeout = 20 * time.Millisecond
	ctx := context.Background()
	user := &entity.User{ID: 3, Email: "jane@example.com", Password: "stored-hash"}

	m.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)
	m.hasher.EXPECT().Check("secret", "stored-hash").Return(true)
	m.tokenService.EXPECT().GenerateAccessToken(int64(3), "jane@example.com").Return("signed.jwt.token", nil)
	m.publisher.EXPECT().
		PublishAuditEvent(mock.Anything, auditOfType(service.AuditUserLoggedIn)).
		RunAndReturn(func(publishCtx context.Context, _ *service.AuditEvent) error {
			<-publishCtx.Done()

			return publishCtx.Err()
		})

	type result struct {
		out *usecase.LoginOutput
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, err := srv.Login(ctx, &usecase.LoginInput{Email: "jane@example.com", Password: "secret"})
		done <- result{out: out, err: err}
	}()

	select {
	case res := <-done:
		require.NoError(t, res.err)
		assert.Equal(t, "signed.jwt.token", res.out.AccessToken)
	case <-time.After(2 * time.Second):
		t.Fatal("Login blocked on the audit publisher")
	}
}

func TestAuthService_Logout_PublishOutlivesCanceledRequest(t *testing.T) {
	srv, m := newAuthServiceForTest(t)
	ctx, cancel := context.WithCancel(deliverycontext.WithRequestID(context.Background(), "req-9"))
	cancel()

	m.publisher.EXPECT().
		PublishAuditEvent(mock.Anything, auditOfType(service.AuditUserLoggedOut)).
		RunAndReturn(func(publishCtx context.Context, _ *service.AuditEvent) error {
			assert.NoError(t, publishCtx.Err())
			assert.Equal(t, "req-9", deliverycontext.GetRequestIDFromContext(publishCtx))

			deadline, ok := publishCtx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(defaultAuditPublishTimeout), deadline, time.Second)

			return nil
		})

	require.NoError(t, srv.Logout(ctx, &usecase.LogoutInput{UserID: 3, Email: "jane@example.com"}))
}
