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
	"offcampus/pkg/utils"
)

func newNotificationService(db *gorm.DB) NotificationServiceInterface {
	return NewNotificationService(repositories.NewNotificationRepository(db))
}

func TestGlobalNotificationVisibleToEveryUser(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	ctx := context.Background()

	_, err := svc.CreateGlobal(ctx, request_models.CreateGlobalNotificationRequest{
		Type:  db_models.NotificationTypeNewJob,
		Title: "New job posted",
	})
	require.NoError(t, err)

	for _, userID := range []string{"user_1", "user_2"} {
		list, err := svc.GetForUser(ctx, userID, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, list.Count, "user %s should see the broadcast", userID)
	}

	var rows int64
	require.NoError(t, db.Model(&db_models.Notification{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows, "a broadcast is stored once, not per user")
}

func TestDismissGlobalHidesOnlyForDismisser(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	ctx := context.Background()

	created, err := svc.CreateGlobal(ctx, request_models.CreateGlobalNotificationRequest{
		Type:  db_models.NotificationTypeNewInternship,
		Title: "New internship posted",
	})
	require.NoError(t, err)

	require.NoError(t, svc.MarkAsRead(ctx, "user_1", created.NotificationID))
	// Dismissing again is a no-op, not an error.
	require.NoError(t, svc.MarkAsRead(ctx, "user_1", created.NotificationID))

	listOne, err := svc.GetForUser(ctx, "user_1", 0)
	require.NoError(t, err)
	assert.Zero(t, listOne.Count)

	listTwo, err := svc.GetForUser(ctx, "user_2", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, listTwo.Count, "another user's view is unaffected")

	var rows int64
	require.NoError(t, db.Model(&db_models.Notification{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows, "the shared row survives a dismissal")
}

func TestTargetedNotificationDeletedOnRead(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, request_models.CreateNotificationRequest{
		UserID: "user_1",
		Type:   db_models.NotificationTypeNewService,
		Title:  "Your session is confirmed",
	})
	require.NoError(t, err)

	require.NoError(t, svc.MarkAsRead(ctx, "user_1", created.NotificationID))

	var rows int64
	require.NoError(t, db.Model(&db_models.Notification{}).Count(&rows).Error)
	assert.Zero(t, rows, "a read targeted notification is removed")
}

func TestMarkAsReadRejectsForeignTargeted(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, request_models.CreateNotificationRequest{
		UserID: "user_1",
		Type:   db_models.NotificationTypeNewService,
		Title:  "Your session is confirmed",
	})
	require.NoError(t, err)

	err = svc.MarkAsRead(ctx, "user_2", created.NotificationID)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	err = svc.MarkAsRead(ctx, "user_1", "missing_id_00")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestUnreadCountTracksVisibility(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	ctx := context.Background()

	global, err := svc.CreateGlobal(ctx, request_models.CreateGlobalNotificationRequest{
		Type:  db_models.NotificationTypeNewJob,
		Title: "New job posted",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, request_models.CreateNotificationRequest{
		UserID: "user_1",
		Type:   db_models.NotificationTypeNewService,
		Title:  "Your session is confirmed",
	})
	require.NoError(t, err)

	count, err := svc.GetUnreadCount(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count.Count)

	require.NoError(t, svc.MarkAsRead(ctx, "user_1", global.NotificationID))

	count, err = svc.GetUnreadCount(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count.Count)
}

func TestMarkAllAsRead(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	ctx := context.Background()

	_, err := svc.CreateGlobal(ctx, request_models.CreateGlobalNotificationRequest{
		Type:  db_models.NotificationTypeNewJob,
		Title: "New job posted",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, request_models.CreateNotificationRequest{
		UserID: "user_1",
		Type:   db_models.NotificationTypeNewService,
		Title:  "Your session is confirmed",
	})
	require.NoError(t, err)

	require.NoError(t, svc.MarkAllAsRead(ctx, "user_1"))

	count, err := svc.GetUnreadCount(ctx, "user_1")
	require.NoError(t, err)
	assert.Zero(t, count.Count)

	countOther, err := svc.GetUnreadCount(ctx, "user_2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), countOther.Count, "the broadcast still reaches other users")
}

func TestCreateAcceptsAnyTypeButRequiresTypeAndTitle(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, request_models.CreateNotificationRequest{
		Type:  "maintenance_window",
		Title: "Scheduled downtime",
	})
	require.NoError(t, err, "admin-defined types are not restricted to the built-in ones")
	assert.Equal(t, "maintenance_window", created.Type)

	_, err = svc.Create(ctx, request_models.CreateNotificationRequest{Title: "No type"})
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = svc.Create(ctx, request_models.CreateNotificationRequest{Type: "new_job"})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestDeleteOldPrunesNotificationsAndDismissals(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	ctx := context.Background()

	old, err := svc.CreateGlobal(ctx, request_models.CreateGlobalNotificationRequest{
		Type:  db_models.NotificationTypeNewJob,
		Title: "Old broadcast",
	})
	require.NoError(t, err)
	fresh, err := svc.CreateGlobal(ctx, request_models.CreateGlobalNotificationRequest{
		Type:  db_models.NotificationTypeNewJob,
		Title: "Fresh broadcast",
	})
	require.NoError(t, err)

	require.NoError(t, svc.MarkAsRead(ctx, "user_1", old.NotificationID))

	// Age the first broadcast past the retention window.
	require.NoError(t, db.Model(&db_models.Notification{}).
		Where("notification_id = ?", old.NotificationID).
		Update("created_at", 1000).Error)

	deleted, err := svc.DeleteOld(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var notifications int64
	require.NoError(t, db.Model(&db_models.Notification{}).Count(&notifications).Error)
	assert.Equal(t, int64(1), notifications)

	var dismissals int64
	require.NoError(t, db.Model(&db_models.DismissedNotification{}).Count(&dismissals).Error)
	assert.Zero(t, dismissals, "orphaned dismissals are swept with their notification")

	remaining, err := svc.GetForUser(ctx, "user_1", 0)
	require.NoError(t, err)
	require.Equal(t, 1, remaining.Count)
	assert.Equal(t, fresh.NotificationID, remaining.Items[0].NotificationID)
}
