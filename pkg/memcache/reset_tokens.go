// pkg/memcache/reset_tokens.go
package mem

import (
	"sync"
	"time"
)

// ResetStore holds the short-lived state of the password reset flow: the OTP
// mailed to an address, and the permission granted once that OTP is verified.
// Both sides are single-use and expire on their own.
type ResetStore interface {
	SetOTP(email, otp string, ttl time.Duration)

	// RefreshOTP replaces the code only while a previous one is still live.
	// Returns false when no active reset request exists for email.
	RefreshOTP(email, otp string, ttl time.Duration) bool

	// VerifyOTP consumes the code when it matches and has not expired.
	VerifyOTP(email, otp string) bool

	GrantReset(userID string, ttl time.Duration)

	// ConsumeReset reports whether userID holds a live reset permission and
	// revokes it.
	ConsumeReset(userID string) bool
}

type otpEntry struct {
	code      string
	expiresAt time.Time
}

type ResetTokens struct {
	mu     sync.Mutex
	otps   map[string]otpEntry  // keyed by email
	grants map[string]time.Time // keyed by user id
}

func NewResetTokens() *ResetTokens {
	return &ResetTokens{
		otps:   make(map[string]otpEntry),
		grants: make(map[string]time.Time),
	}
}

func (s *ResetTokens) SetOTP(email, otp string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.otps[email] = otpEntry{code: otp, expiresAt: time.Now().Add(ttl)}
}

func (s *ResetTokens) RefreshOTP(email, otp string, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.otps[email]
	if !ok || time.Now().After(e.expiresAt) {
		delete(s.otps, email)
		return false
	}
	s.otps[email] = otpEntry{code: otp, expiresAt: time.Now().Add(ttl)}
	return true
}

func (s *ResetTokens) VerifyOTP(email, otp string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.otps[email]
	if !ok {
		return false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.otps, email) // cleanup expired
		return false
	}
	if e.code != otp {
		return false
	}
	delete(s.otps, email) // single-use
	return true
}

func (s *ResetTokens) GrantReset(userID string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grants[userID] = time.Now().Add(ttl)
}

func (s *ResetTokens) ConsumeReset(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.grants[userID]
	if !ok {
		return false
	}
	delete(s.grants, userID)
	return !time.Now().After(expiresAt)
}
