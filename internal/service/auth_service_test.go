// internal/service/auth_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_5_tadoku_read/internal/config"
	"go_5_tadoku_read/internal/model"
	"go_5_tadoku_read/internal/repository/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "Tadoku"
	cfg.App.FrontendURL = "http://localhost:3000"
	cfg.JWT.SecretKey = "test-secret-key"
	cfg.JWT.AccessTokenTTL = time.Hour
	return cfg
}

func TestAuthService_RegisterLearner(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	cfg := newAuthTestConfig()

	req := &model.RegisterRequest{
		Name:     "hanako",
		Email:    "hanako@example.com",
		Password: "password123",
	}

	t.Run("正常系: 未有効状態で登録され、認証トークンが保存される", func(t *testing.T) {
		mockLearnerRepo := new(mocks.LearnerRepository)
		mockTokenRepo := new(mocks.TokenRepository)

		mockLearnerRepo.On("FindByEmail", ctx, mock.Anything, req.Email).Return(nil, model.ErrNotFound).Once()
		mockLearnerRepo.On("FindByName", ctx, mock.Anything, req.Name).Return(nil, model.ErrNotFound).Once()
		mockLearnerRepo.On("Create", ctx, mock.Anything, mock.AnythingOfType("*model.Learner")).Return(nil).Once()
		mockTokenRepo.On("CreateVerificationToken", ctx, mock.Anything, mock.MatchedBy(func(tok *model.LearnerVerificationToken) bool {
			return len(tok.Token) == 64 && tok.ExpiresAt.After(time.Now())
		})).Return(nil).Once()

		svc := NewAuthService(db, mockLearnerRepo, mockTokenRepo, &LogMailer{}, cfg)
		learner, err := svc.RegisterLearner(ctx, req)

		assert.NoError(t, err)
		assert.False(t, learner.IsActive)
		assert.Equal(t, "日本語", learner.NativeLanguage)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(learner.PasswordHash), []byte(req.Password)))
		mockLearnerRepo.AssertExpectations(t)
		mockTokenRepo.AssertExpectations(t)
	})

	t.Run("異常系: 既存メールアドレスはDUPLICATE_EMAIL", func(t *testing.T) {
		mockLearnerRepo := new(mocks.LearnerRepository)

		existing := &model.Learner{LearnerID: uuid.New(), Email: req.Email}
		mockLearnerRepo.On("FindByEmail", ctx, mock.Anything, req.Email).Return(existing, nil).Once()

		svc := NewAuthService(db, mockLearnerRepo, new(mocks.TokenRepository), &LogMailer{}, cfg)
		_, err := svc.RegisterLearner(ctx, req)

		assert.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrConflict))
		var appErr *model.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, "DUPLICATE_EMAIL", appErr.Detail.Code)
		mockLearnerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 既存ユーザ名はDUPLICATE_NAME", func(t *testing.T) {
		mockLearnerRepo := new(mocks.LearnerRepository)

		existing := &model.Learner{LearnerID: uuid.New(), Name: req.Name}
		mockLearnerRepo.On("FindByEmail", ctx, mock.Anything, req.Email).Return(nil, model.ErrNotFound).Once()
		mockLearnerRepo.On("FindByName", ctx, mock.Anything, req.Name).Return(existing, nil).Once()

		svc := NewAuthService(db, mockLearnerRepo, new(mocks.TokenRepository), &LogMailer{}, cfg)
		_, err := svc.RegisterLearner(ctx, req)

		assert.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrConflict))
	})
}

func TestAuthService_VerifyAccount(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	cfg := newAuthTestConfig()

	t.Run("正常系: 有効なトークンでアカウントが有効化される", func(t *testing.T) {
		learner := &model.Learner{
			LearnerID:    uuid.New(),
			Name:         "taro-" + uuid.NewString()[:8],
			Email:        uuid.NewString() + "@example.com",
			PasswordHash: "hash",
			IsActive:     false,
		}
		assert.NoError(t, db.Create(learner).Error)

		mockTokenRepo := new(mocks.TokenRepository)
		mockTokenRepo.On("FindVerificationToken", ctx, mock.Anything, "valid-token").Return(&model.LearnerVerificationToken{
			Token:     "valid-token",
			LearnerID: learner.LearnerID,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil).Once()
		mockTokenRepo.On("DeleteVerificationToken", ctx, mock.Anything, "valid-token").Return(nil).Once()

		svc := NewAuthService(db, new(mocks.LearnerRepository), mockTokenRepo, &LogMailer{}, cfg)
		err := svc.VerifyAccount(ctx, "valid-token")

		assert.NoError(t, err)

		var reloaded model.Learner
		assert.NoError(t, db.Where("learner_id = ?", learner.LearnerID).First(&reloaded).Error)
		assert.True(t, reloaded.IsActive)
		mockTokenRepo.AssertExpectations(t)
	})

	t.Run("異常系: 期限切れトークンは削除してINVALID_TOKEN", func(t *testing.T) {
		mockTokenRepo := new(mocks.TokenRepository)
		mockTokenRepo.On("FindVerificationToken", ctx, mock.Anything, "expired-token").Return(&model.LearnerVerificationToken{
			Token:     "expired-token",
			LearnerID: uuid.New(),
			ExpiresAt: time.Now().Add(-time.Hour),
		}, nil).Once()
		mockTokenRepo.On("DeleteVerificationToken", ctx, mock.Anything, "expired-token").Return(nil).Once()

		svc := NewAuthService(db, new(mocks.LearnerRepository), mockTokenRepo, &LogMailer{}, cfg)
		err := svc.VerifyAccount(ctx, "expired-token")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrInvalidInput))
		mockTokenRepo.AssertExpectations(t)
	})

	t.Run("異常系: 存在しないトークンはINVALID_TOKEN", func(t *testing.T) {
		mockTokenRepo := new(mocks.TokenRepository)
		mockTokenRepo.On("FindVerificationToken", ctx, mock.Anything, "unknown-token").Return(nil, model.ErrNotFound).Once()

		svc := NewAuthService(db, new(mocks.LearnerRepository), mockTokenRepo, &LogMailer{}, cfg)
		err := svc.VerifyAccount(ctx, "unknown-token")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrInvalidInput))
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	cfg := newAuthTestConfig()

	learnerID := uuid.New()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	activeLearner := &model.Learner{
		LearnerID:    learnerID,
		Name:         "hanako",
		Email:        "hanako@example.com",
		PasswordHash: string(hashed),
		IsActive:     true,
	}

	t.Run("正常系: 正しい認証情報で学習者IDを含むJWTが返る", func(t *testing.T) {
		mockLearnerRepo := new(mocks.LearnerRepository)
		mockLearnerRepo.On("FindByEmail", ctx, mock.Anything, "hanako@example.com").Return(activeLearner, nil).Once()

		svc := NewAuthService(db, mockLearnerRepo, new(mocks.TokenRepository), &LogMailer{}, cfg)
		res, err := svc.Login(ctx, &model.LoginRequest{Email: "hanako@example.com", Password: "password123"})

		assert.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)

		claims := &jwt.RegisteredClaims{}
		parsed, err := jwt.ParseWithClaims(res.AccessToken, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWT.SecretKey), nil
		})
		assert.NoError(t, err)
		assert.True(t, parsed.Valid)
		assert.Equal(t, learnerID.String(), claims.Subject)
		assert.Equal(t, "Tadoku", claims.Issuer)
	})

	t.Run("異常系: パスワード不一致はAUTHENTICATION_FAILED", func(t *testing.T) {
		mockLearnerRepo := new(mocks.LearnerRepository)
		mockLearnerRepo.On("FindByEmail", ctx, mock.Anything, "hanako@example.com").Return(activeLearner, nil).Once()

		svc := NewAuthService(db, mockLearnerRepo, new(mocks.TokenRepository), &LogMailer{}, cfg)
		_, err := svc.Login(ctx, &model.LoginRequest{Email: "hanako@example.com", Password: "wrong-password"})

		assert.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrInvalidInput))
	})

	t.Run("異常系: 存在しないメールアドレスも同じエラーメッセージ", func(t *testing.T) {
		mockLearnerRepo := new(mocks.LearnerRepository)
		mockLearnerRepo.On("FindByEmail", ctx, mock.Anything, "unknown@example.com").Return(nil, model.ErrNotFound).Once()

		svc := NewAuthService(db, mockLearnerRepo, new(mocks.TokenRepository), &LogMailer{}, cfg)
		_, err := svc.Login(ctx, &model.LoginRequest{Email: "unknown@example.com", Password: "password123"})

		assert.Error(t, err)
		var appErr *model.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, "AUTHENTICATION_FAILED", appErr.Detail.Code)
	})

	t.Run("異常系: 未有効化アカウントはACCOUNT_NOT_ACTIVE", func(t *testing.T) {
		inactive := &model.Learner{
			LearnerID:    uuid.New(),
			Email:        "inactive@example.com",
			PasswordHash: string(hashed),
			IsActive:     false,
		}
		mockLearnerRepo := new(mocks.LearnerRepository)
		mockLearnerRepo.On("FindByEmail", ctx, mock.Anything, "inactive@example.com").Return(inactive, nil).Once()

		svc := NewAuthService(db, mockLearnerRepo, new(mocks.TokenRepository), &LogMailer{}, cfg)
		_, err := svc.Login(ctx, &model.LoginRequest{Email: "inactive@example.com", Password: "password123"})

		assert.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrForbidden))
	})
}

func TestAuthService_RequestPasswordReset(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	cfg := newAuthTestConfig()

	t.Run("正常系: 登録済みメールにはリセットトークンを発行する", func(t *testing.T) {
		learner := &model.Learner{LearnerID: uuid.New(), Email: "hanako@example.com", IsActive: true}

		mockLearnerRepo := new(mocks.LearnerRepository)
		mockTokenRepo := new(mocks.TokenRepository)
		mockLearnerRepo.On("FindByEmail", ctx, mock.Anything, "hanako@example.com").Return(learner, nil).Once()
		mockTokenRepo.On("CreatePasswordResetToken", ctx, mock.Anything, mock.MatchedBy(func(tok *model.PasswordResetToken) bool {
			return tok.LearnerID == learner.LearnerID && len(tok.Token) == 64
		})).Return(nil).Once()

		svc := NewAuthService(db, mockLearnerRepo, mockTokenRepo, &LogMailer{}, cfg)
		err := svc.RequestPasswordReset(ctx, "hanako@example.com")

		assert.NoError(t, err)
		mockTokenRepo.AssertExpectations(t)
	})

	t.Run("正常系: 未登録メールでも成功として扱う", func(t *testing.T) {
		mockLearnerRepo := new(mocks.LearnerRepository)
		mockTokenRepo := new(mocks.TokenRepository)
		mockLearnerRepo.On("FindByEmail", ctx, mock.Anything, "unknown@example.com").Return(nil, model.ErrNotFound).Once()

		svc := NewAuthService(db, mockLearnerRepo, mockTokenRepo, &LogMailer{}, cfg)
		err := svc.RequestPasswordReset(ctx, "unknown@example.com")

		assert.NoError(t, err)
		mockTokenRepo.AssertNotCalled(t, "CreatePasswordResetToken", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	cfg := newAuthTestConfig()

	t.Run("正常系: 有効なトークンでパスワードが更新される", func(t *testing.T) {
		oldHash, err := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.DefaultCost)
		assert.NoError(t, err)

		learner := &model.Learner{
			LearnerID:    uuid.New(),
			Name:         "taro-" + uuid.NewString()[:8],
			Email:        uuid.NewString() + "@example.com",
			PasswordHash: string(oldHash),
			IsActive:     true,
		}
		assert.NoError(t, db.Create(learner).Error)

		mockTokenRepo := new(mocks.TokenRepository)
		mockTokenRepo.On("FindPasswordResetToken", ctx, mock.Anything, "reset-token").Return(&model.PasswordResetToken{
			Token:     "reset-token",
			LearnerID: learner.LearnerID,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil).Once()
		mockTokenRepo.On("DeletePasswordResetToken", ctx, mock.Anything, "reset-token").Return(nil).Once()

		svc := NewAuthService(db, new(mocks.LearnerRepository), mockTokenRepo, &LogMailer{}, cfg)
		err = svc.ResetPassword(ctx, "reset-token", "new-password-456")

		assert.NoError(t, err)

		var reloaded model.Learner
		assert.NoError(t, db.Where("learner_id = ?", learner.LearnerID).First(&reloaded).Error)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(reloaded.PasswordHash), []byte("new-password-456")))
		mockTokenRepo.AssertExpectations(t)
	})

	t.Run("異常系: 期限切れトークンはINVALID_TOKEN", func(t *testing.T) {
		mockTokenRepo := new(mocks.TokenRepository)
		mockTokenRepo.On("FindPasswordResetToken", ctx, mock.Anything, "expired-token").Return(&model.PasswordResetToken{
			Token:     "expired-token",
			LearnerID: uuid.New(),
			ExpiresAt: time.Now().Add(-time.Minute),
		}, nil).Once()
		mockTokenRepo.On("DeletePasswordResetToken", ctx, mock.Anything, "expired-token").Return(nil).Once()

		svc := NewAuthService(db, new(mocks.LearnerRepository), mockTokenRepo, &LogMailer{}, cfg)
		err := svc.ResetPassword(ctx, "expired-token", "new-password-456")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrInvalidInput))
	})
}
