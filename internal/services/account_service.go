package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"offcampus/internal/models/db_models"
	"offcampus/internal/models/request_models"
	"offcampus/internal/models/response_models"
	"offcampus/internal/repositories"
	mem "offcampus/pkg/memcache"
	"offcampus/pkg/utils"
)

const (
	// The OTP and the verified reset permission share the original window.
	resetOTPTTL       = 5 * time.Minute
	resetGrantTTL     = 5 * time.Minute
	minPasswordLength = 6
)

type AccountServiceInterface interface {
	SignUp(ctx context.Context, req request_models.SignUpRequest) (*response_models.LoginResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error)
	// ForgotPassword mails a one-time code. It succeeds for unknown addresses
	// too so the endpoint never reveals whether an account exists.
	ForgotPassword(ctx context.Context, email string) error
	RefreshResetOTP(ctx context.Context, email string) error
	VerifyResetOTP(ctx context.Context, email, otp string) (*response_models.VerifyOTPResponse, error)
	ResetPassword(ctx context.Context, userID, newPassword string) error
}

type accountService struct {
	accounts    repositories.AccountRepositoryInterface
	userDetails repositories.UserDetailsRepositoryInterface
	resets      mem.ResetStore
	mail        MailServiceInterface
}

func NewAccountService(
	accounts repositories.AccountRepositoryInterface,
	userDetails repositories.UserDetailsRepositoryInterface,
	resets mem.ResetStore,
	mail MailServiceInterface,
) AccountServiceInterface {
	return &accountService{accounts: accounts, userDetails: userDetails, resets: resets, mail: mail}
}

func (a *accountService) SignUp(ctx context.Context, req request_models.SignUpRequest) (*response_models.LoginResponse, error) {
	existing, err := a.accounts.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: hash password: %v", utils.ErrDatabaseError, err)
	}

	account := &db_models.Account{
		Name:         req.DisplayName,
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         "user",
	}
	if err := a.accounts.Insert(ctx, account); err != nil {
		return nil, fmt.Errorf("%w: insert account: %v", utils.ErrDatabaseError, err)
	}

	// The entitlement row starts on the free tier; a failure here is
	// recoverable because paid flows lazily recreate it.
	if err := a.userDetails.EnsureDefault(ctx, account.ID); err != nil {
		log.Printf("ensure user_details for %s: %v", account.ID, err)
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMisconfigured, err)
	}
	return &response_models.LoginResponse{Token: token, UserID: account.ID, Role: account.Role}, nil
}

func (a *accountService) ForgotPassword(ctx context.Context, email string) error {
	account, err := a.accounts.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil
	}

	otp := utils.GenerateOTP()
	a.resets.SetOTP(account.Email, otp, resetOTPTTL)
	if err := a.mail.SendPasswordResetOTP(account.Email, account.Name, otp); err != nil {
		return fmt.Errorf("%w: send reset code: %v", utils.ErrUpstreamUnavailable, err)
	}
	return nil
}

// RefreshResetOTP replaces the code of an active reset request. Unlike
// ForgotPassword it reports when no request exists, because the caller has
// already proven the address by receiving the first mail.
func (a *accountService) RefreshResetOTP(ctx context.Context, email string) error {
	account, err := a.accounts.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return fmt.Errorf("%w: no reset request for this email", utils.ErrNotFound)
	}

	otp := utils.GenerateOTP()
	if !a.resets.RefreshOTP(account.Email, otp, resetOTPTTL) {
		return fmt.Errorf("%w: no active reset request", utils.ErrNotFound)
	}
	if err := a.mail.SendPasswordResetOTP(account.Email, account.Name, otp); err != nil {
		return fmt.Errorf("%w: send reset code: %v", utils.ErrUpstreamUnavailable, err)
	}
	return nil
}

func (a *accountService) VerifyResetOTP(ctx context.Context, email, otp string) (*response_models.VerifyOTPResponse, error) {
	if email == "" || otp == "" {
		return nil, fmt.Errorf("%w: email and otp are required", utils.ErrValidation)
	}
	if !a.resets.VerifyOTP(email, otp) {
		return nil, fmt.Errorf("%w: invalid or expired otp", utils.ErrValidation)
	}

	account, err := a.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	a.resets.GrantReset(account.ID, resetGrantTTL)
	return &response_models.VerifyOTPResponse{UserID: account.ID, ResetPassword: true}, nil
}

func (a *accountService) ResetPassword(ctx context.Context, userID, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", utils.ErrValidation, minPasswordLength)
	}
	if !a.resets.ConsumeReset(userID) {
		return fmt.Errorf("%w: no valid reset permission, verify the otp first", utils.ErrForbidden)
	}

	account, err := a.accounts.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("%w: hash password: %v", utils.ErrDatabaseError, err)
	}
	if err := a.accounts.UpdatePassword(ctx, account.ID, hashed); err != nil {
		return fmt.Errorf("%w: update password: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (a *accountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := a.accounts.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMisconfigured, err)
	}
	return &response_models.LoginResponse{Token: token, UserID: account.ID, Role: account.Role}, nil
}
