package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"offcampus/internal/infra"
	"offcampus/internal/models/db_models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see a different in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, infra.Migrate(db))
	return db
}

var testRazorpayConfig = RazorpayConfig{
	KeyID:     "rzp_test_key",
	KeySecret: "test_secret",
}

// fakeGateway counts upstream calls so tests can assert that rejected
// requests never reach the payment provider.
type fakeGateway struct {
	mu         sync.Mutex
	fetchCalls int
	status     string
	err        error
}

func (f *fakeGateway) FetchPayment(ctx context.Context, paymentID string) (*infra.GatewayPayment, error) {
	f.mu.Lock()
	f.fetchCalls++
	f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	status := f.status
	if status == "" {
		status = "captured"
	}
	return &infra.GatewayPayment{
		ID:     paymentID,
		Status: status,
		Raw:    map[string]interface{}{"id": paymentID, "status": status},
	}, nil
}

func (f *fakeGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*infra.GatewayOrder, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &infra.GatewayOrder{ID: "order_fake", Amount: amount, Currency: currency}, nil
}

func (f *fakeGateway) KeyID() string { return testRazorpayConfig.KeyID }

func (f *fakeGateway) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetchCalls
}

type fakeMail struct {
	mu            sync.Mutex
	confirmations []string
	alerts        []string
	otps          map[string]string // email -> last mailed code
}

func (f *fakeMail) SendBookingConfirmation(booking *db_models.ServiceBooking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confirmations = append(f.confirmations, booking.Email)
	return nil
}

func (f *fakeMail) SendBookingAlert(booking *db_models.ServiceBooking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alerts = append(f.alerts, booking.ServiceNeeded)
	return nil
}

func (f *fakeMail) SendPasswordResetOTP(email, name, otp string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.otps == nil {
		f.otps = make(map[string]string)
	}
	f.otps[email] = otp
	return nil
}

func (f *fakeMail) lastOTP(email string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.otps[email]
}
