package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"offcampus/internal/models/db_models"
	"offcampus/internal/models/request_models"
	"offcampus/internal/repositories"
	mem "offcampus/pkg/memcache"
	"offcampus/pkg/utils"
)

func newAccountFixture(db *gorm.DB) (AccountServiceInterface, *fakeMail) {
	mail := &fakeMail{}
	svc := NewAccountService(
		repositories.NewAccountRepository(db),
		repositories.NewUserDetailsRepository(db),
		mem.NewResetTokens(),
		mail,
	)
	return svc, mail
}

func TestSignUpAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newAccountFixture(db)
	ctx := context.Background()

	signUp := request_models.SignUpRequest{
		DisplayName: "Asha",
		Email:       "asha@example.com",
		Password:    "secret123",
	}
	created, err := svc.SignUp(ctx, signUp)
	require.NoError(t, err)
	assert.NotEmpty(t, created.Token)
	assert.Equal(t, "user", created.Role)

	var details db_models.UserDetails
	require.NoError(t, db.First(&details, "user_id = ?", created.UserID).Error)
	assert.Equal(t, "free", details.UserType)

	_, err = svc.SignUp(ctx, signUp)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)

	logged, err := svc.Login(ctx, request_models.LoginRequest{
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, created.UserID, logged.UserID)

	claims, err := utils.ValidateToken(logged.Token)
	require.NoError(t, err)
	assert.Equal(t, created.UserID, claims.UserID)
	assert.Equal(t, "user", claims.Role)

	_, err = svc.Login(ctx, request_models.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrongpass",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(ctx, request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestStoredPasswordIsHashed(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newAccountFixture(db)

	created, err := svc.SignUp(context.Background(), request_models.SignUpRequest{
		DisplayName: "Asha",
		Email:       "asha@example.com",
		Password:    "secret123",
	})
	require.NoError(t, err)

	var account db_models.Account
	require.NoError(t, db.First(&account, "id = ?", created.UserID).Error)
	assert.NotEqual(t, "secret123", account.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(account.PasswordHash, "secret123"))
}

func TestPasswordResetFlow(t *testing.T) {
	db := newTestDB(t)
	svc, mail := newAccountFixture(db)
	ctx := context.Background()

	created, err := svc.SignUp(ctx, request_models.SignUpRequest{
		DisplayName: "Asha",
		Email:       "asha@example.com",
		Password:    "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword(ctx, "asha@example.com"))
	otp := mail.lastOTP("asha@example.com")
	require.Len(t, otp, utils.OTPLength)

	// A refresh invalidates the first code and mails a replacement.
	require.NoError(t, svc.RefreshResetOTP(ctx, "asha@example.com"))
	refreshed := mail.lastOTP("asha@example.com")
	require.NotEqual(t, otp, refreshed)

	_, err = svc.VerifyResetOTP(ctx, "asha@example.com", otp)
	assert.ErrorIs(t, err, utils.ErrValidation, "a replaced code no longer verifies")

	verified, err := svc.VerifyResetOTP(ctx, "asha@example.com", refreshed)
	require.NoError(t, err)
	assert.Equal(t, created.UserID, verified.UserID)
	assert.True(t, verified.ResetPassword)

	_, err = svc.VerifyResetOTP(ctx, "asha@example.com", refreshed)
	assert.ErrorIs(t, err, utils.ErrValidation, "codes are single use")

	require.NoError(t, svc.ResetPassword(ctx, created.UserID, "newsecret456"))

	_, err = svc.Login(ctx, request_models.LoginRequest{Email: "asha@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	logged, err := svc.Login(ctx, request_models.LoginRequest{Email: "asha@example.com", Password: "newsecret456"})
	require.NoError(t, err)
	assert.Equal(t, created.UserID, logged.UserID)
}

func TestPasswordResetGuards(t *testing.T) {
	db := newTestDB(t)
	svc, mail := newAccountFixture(db)
	ctx := context.Background()

	created, err := svc.SignUp(ctx, request_models.SignUpRequest{
		DisplayName: "Asha",
		Email:       "asha@example.com",
		Password:    "secret123",
	})
	require.NoError(t, err)

	// Unknown addresses succeed silently and nothing is mailed.
	require.NoError(t, svc.ForgotPassword(ctx, "nobody@example.com"))
	assert.Empty(t, mail.lastOTP("nobody@example.com"))

	err = svc.RefreshResetOTP(ctx, "asha@example.com")
	assert.ErrorIs(t, err, utils.ErrNotFound, "refresh needs an active request")

	err = svc.ResetPassword(ctx, created.UserID, "newsecret456")
	assert.ErrorIs(t, err, utils.ErrForbidden, "no reset without a verified otp")

	require.NoError(t, svc.ForgotPassword(ctx, "asha@example.com"))
	verified, err := svc.VerifyResetOTP(ctx, "asha@example.com", mail.lastOTP("asha@example.com"))
	require.NoError(t, err)

	err = svc.ResetPassword(ctx, verified.UserID, "tiny")
	assert.ErrorIs(t, err, utils.ErrValidation)

	require.NoError(t, svc.ResetPassword(ctx, verified.UserID, "newsecret456"))
	err = svc.ResetPassword(ctx, verified.UserID, "another789")
	assert.ErrorIs(t, err, utils.ErrForbidden, "the reset permission is single use")
}
