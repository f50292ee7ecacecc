package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/khussac/proconnect-api/internal/lib/jwt"
	"github.com/khussac/proconnect-api/internal/models"
	"github.com/khussac/proconnect-api/internal/storage"
)

type RepoMock struct {
	mock.Mock
}

func (m *RepoMock) GetByEmail(ctx context.Context, email string) (*models.Professional, error) {
	args := m.Called(ctx, email)
	if p := args.Get(0); p != nil {
		return p.(*models.Professional), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RepoMock) Create(ctx context.Context, p *models.Professional) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type SessionsMock struct {
	mock.Mock
}

func (m *SessionsMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}

func (m *SessionsMock) Set(key string, value any, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *SessionsMock) Invalidate(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func testMaker(t *testing.T) jwt.Maker {
	t.Helper()
	return jwt.NewMaker("test-secret", time.Hour)
}

func mariaRecord() *models.Professional {
	return &models.Professional{
		ID:           1,
		Name:         "María González",
		Profession:   "Diseñadora Gráfica",
		Email:        "maria@email.com",
		PasswordHash: "123456",
		IsActive:     true,
	}
}

func TestLogin_Success(t *testing.T) {
	repo := new(RepoMock)
	sessions := new(SessionsMock)
	repo.On("GetByEmail", mock.Anything, "maria@email.com").Return(mariaRecord(), nil)
	sessions.On("Set", mock.MatchedBy(func(key string) bool {
		return len(key) > len("session:")
	}), mock.Anything, time.Hour).Return(nil)

	service := New(repo, sessions, testMaker(t), discardLogger())

	user, token, err := service.Login(context.Background(), "maria@email.com", "123456")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "María González", user.Name)
	assert.Equal(t, "maria@email.com", user.Email)
	sessions.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(RepoMock)
	sessions := new(SessionsMock)
	repo.On("GetByEmail", mock.Anything, "maria@email.com").Return(mariaRecord(), nil)

	service := New(repo, sessions, testMaker(t), discardLogger())

	user, token, err := service.Login(context.Background(), "maria@email.com", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, user)
	assert.Empty(t, token)
	sessions.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := new(RepoMock)
	sessions := new(SessionsMock)
	repo.On("GetByEmail", mock.Anything, "nobody@email.com").Return(nil, storage.ErrNotFound)

	service := New(repo, sessions, testMaker(t), discardLogger())

	_, _, err := service.Login(context.Background(), "nobody@email.com", "123456")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_Success(t *testing.T) {
	repo := new(RepoMock)
	sessions := new(SessionsMock)
	repo.On("GetByEmail", mock.Anything, "nuevo@email.com").Return(nil, storage.ErrNotFound)

	var created *models.Professional
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*models.Professional)
	}).Return(nil)
	sessions.On("Set", mock.Anything, mock.Anything, time.Hour).Return(nil)

	service := New(repo, sessions, testMaker(t), discardLogger())

	user, token, err := service.Register(context.Background(), RegisterInput{
		Name:       "Lucía Torres",
		Email:      "nuevo@email.com",
		Password:   "secreto1",
		Profession: "Fotógrafa",
		Phone:      "+51 999 111 222",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, token)
	assert.Equal(t, created.ID, user.ID)
	assert.Greater(t, created.ID, 0)
	assert.Equal(t, "Lucía Torres", created.Name)
	assert.Equal(t, "Fotógrafa", created.Profession)
	assert.Equal(t, "Lima", created.Location.City)
	assert.Equal(t, "PEN", created.Rate.Currency)
	assert.Equal(t, "por hora", created.Rate.Type)
	assert.True(t, created.IsActive)
	assert.Empty(t, created.Services)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secreto1")))
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := new(RepoMock)
	sessions := new(SessionsMock)
	repo.On("GetByEmail", mock.Anything, "maria@email.com").Return(mariaRecord(), nil)

	service := New(repo, sessions, testMaker(t), discardLogger())

	_, _, err := service.Register(context.Background(), RegisterInput{
		Name:     "Otra María",
		Email:    "maria@email.com",
		Password: "secreto1",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogout(t *testing.T) {
	maker := testMaker(t)
	token, jti, err := maker.GenerateToken(1, "María González", "maria@email.com")
	require.NoError(t, err)

	repo := new(RepoMock)
	sessions := new(SessionsMock)
	sessions.On("Invalidate", "session:"+jti).Return(nil)

	service := New(repo, sessions, maker, discardLogger())

	require.NoError(t, service.Logout(context.Background(), token))
	sessions.AssertExpectations(t)
}

func TestLogout_InvalidToken(t *testing.T) {
	repo := new(RepoMock)
	sessions := new(SessionsMock)

	service := New(repo, sessions, testMaker(t), discardLogger())

	require.NoError(t, service.Logout(context.Background(), "not-a-token"))
	sessions.AssertNotCalled(t, "Invalidate", mock.Anything)
}

func TestAuthenticate(t *testing.T) {
	maker := testMaker(t)
	token, jti, err := maker.GenerateToken(1, "María González", "maria@email.com")
	require.NoError(t, err)

	t.Run("active session", func(t *testing.T) {
		repo := new(RepoMock)
		sessions := new(SessionsMock)
		sessions.On("Get", "session:"+jti, mock.Anything).Run(func(args mock.Arguments) {
			user := args.Get(1).(*models.SessionUser)
			*user = models.SessionUser{ID: 1, Name: "María González", Email: "maria@email.com"}
		}).Return(true, nil)

		service := New(repo, sessions, maker, discardLogger())

		user, err := service.Authenticate(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, "maria@email.com", user.Email)
	})

	t.Run("session slot missing", func(t *testing.T) {
		repo := new(RepoMock)
		sessions := new(SessionsMock)
		sessions.On("Get", "session:"+jti, mock.Anything).Return(false, nil)

		service := New(repo, sessions, maker, discardLogger())

		_, err := service.Authenticate(context.Background(), token)
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("garbage token", func(t *testing.T) {
		service := New(new(RepoMock), new(SessionsMock), maker, discardLogger())

		_, err := service.Authenticate(context.Background(), "garbage")
		assert.ErrorIs(t, err, ErrNoSession)
	})
}
