package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/toy-store-api/infrastructure/repository"
	"github.com/vfg2006/toy-store-api/infrastructure/repository/mocks"
	"github.com/vfg2006/toy-store-api/internal/config"
	"github.com/vfg2006/toy-store-api/internal/domain"
	"github.com/vfg2006/toy-store-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var authConfig = config.Auth{Secret: "test-secret", TokenTTL: time.Hour}

func newService(t *testing.T) (*Service, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	return NewService(repo, authConfig), repo
}

func hashed(t *testing.T, password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestService_Register(t *testing.T) {
	t.Run("Sucesso deve normalizar email e devolver token", func(t *testing.T) {
		service, repo := newService(t)

		repo.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(nil, nil)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
				assert.Equal(t, "Ana", u.Name)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))
				u.ID = 10
				return u, nil
			})

		resp, err := service.Register(context.Background(), domain.RegisterRequest{
			Name:     " Ana ",
			Email:    " Ana@Example.com ",
			Password: "secret1",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, 10, resp.User.ID)
		assert.Equal(t, "ana@example.com", resp.User.Email)
		assert.Empty(t, resp.User.PasswordHash)

		claims, err := service.ValidateToken(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, 10, claims.UserID)
		assert.Equal(t, "10", claims.Subject)
	})

	validationCases := []struct {
		name string
		req  domain.RegisterRequest
		err  error
		code string
	}{
		{"Nome ausente", domain.RegisterRequest{Email: "a@b.com", Password: "123456"}, ErrMissingRequiredData, apiErrors.ErrMissingRequiredData},
		{"Email inválido", domain.RegisterRequest{Name: "Ana", Email: "ana", Password: "123456"}, ErrInvalidFormat, apiErrors.ErrInvalidFormat},
		{"Senha curta", domain.RegisterRequest{Name: "Ana", Email: "a@b.com", Password: "12345"}, ErrWeakPassword, apiErrors.ErrInvalidRequest},
	}
	for _, tc := range validationCases {
		t.Run(tc.name, func(t *testing.T) {
			service, _ := newService(t)

			_, err := service.Register(context.Background(), tc.req)

			assert.ErrorIs(t, err, tc.err)
			var authErr *AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tc.code, authErr.Code)
		})
	}

	t.Run("Email já cadastrado", func(t *testing.T) {
		service, repo := newService(t)
		repo.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(&domain.User{ID: 1}, nil)

		_, err := service.Register(context.Background(), domain.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "123456"})

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Corrida no cadastro cai na constraint unique", func(t *testing.T) {
		service, repo := newService(t)
		repo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, repository.ErrUniqueViolation)

		_, err := service.Register(context.Background(), domain.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "123456"})

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})
}

func TestService_Login(t *testing.T) {
	user := func() *domain.User {
		return &domain.User{ID: 5, Name: "Ana", Email: "ana@example.com", PasswordHash: hashed(t, "secret1")}
	}

	t.Run("Sucesso", func(t *testing.T) {
		service, repo := newService(t)
		repo.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(user(), nil)

		resp, err := service.Login(context.Background(), domain.LoginRequest{Email: "ANA@example.com", Password: "secret1"})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Empty(t, resp.User.PasswordHash)
	})

	t.Run("Senha incorreta", func(t *testing.T) {
		service, repo := newService(t)
		repo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(user(), nil)

		_, err := service.Login(context.Background(), domain.LoginRequest{Email: "ana@example.com", Password: "wrong"})

		assert.True(t, IsCredentialsError(err))
	})

	t.Run("Email inexistente responde como credencial inválida", func(t *testing.T) {
		service, repo := newService(t)
		repo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := service.Login(context.Background(), domain.LoginRequest{Email: "x@example.com", Password: "secret1"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Erro de banco", func(t *testing.T) {
		service, repo := newService(t)
		boom := errors.New("db down")
		repo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, boom)

		_, err := service.Login(context.Background(), domain.LoginRequest{Email: "x@example.com", Password: "secret1"})

		assert.ErrorIs(t, err, boom)
	})
}

func TestService_ValidateToken(t *testing.T) {
	t.Run("Token expirado", func(t *testing.T) {
		service, _ := newService(t)
		service.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := service.generateJWT(&domain.User{ID: 1})
		require.NoError(t, err)

		service.now = time.Now
		_, err = service.ValidateToken(token)

		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.True(t, IsTokenError(err))
	})

	t.Run("Assinatura com outro segredo", func(t *testing.T) {
		other := NewService(nil, config.Auth{Secret: "other", TokenTTL: time.Hour})
		token, err := other.generateJWT(&domain.User{ID: 1})
		require.NoError(t, err)

		service, _ := newService(t)
		_, err = service.ValidateToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Token malformado", func(t *testing.T) {
		service, _ := newService(t)

		_, err := service.ValidateToken("not-a-token")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_GetUserProfile(t *testing.T) {
	t.Run("Usuário encontrado sem hash de senha", func(t *testing.T) {
		service, repo := newService(t)
		repo.EXPECT().GetUserByID(gomock.Any(), 5).Return(&domain.User{ID: 5, PasswordHash: "hash"}, nil)

		user, err := service.GetUserProfile(context.Background(), 5)

		require.NoError(t, err)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("Usuário inexistente", func(t *testing.T) {
		service, repo := newService(t)
		repo.EXPECT().GetUserByID(gomock.Any(), 5).Return(nil, nil)

		_, err := service.GetUserProfile(context.Background(), 5)

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
