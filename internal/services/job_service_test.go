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

func newJobFixture(db *gorm.DB) (JobServiceInterface, NotificationServiceInterface) {
	notifications := NewNotificationService(repositories.NewNotificationRepository(db))
	return NewJobService(repositories.NewJobRepository(db), notifications), notifications
}

func jobRequest(published bool) request_models.UpsertJobRequest {
	return request_models.UpsertJobRequest{
		Type:          db_models.JobTypeJob,
		JobRole:       "Backend Engineer",
		CompanyGiving: "Acme",
		Location:      "Remote",
		RedirectLink:  "https://acme.example/apply",
		Published:     published,
	}
}

func TestPublishedJobBroadcastsNotification(t *testing.T) {
	db := newTestDB(t)
	jobs, notifications := newJobFixture(db)
	ctx := context.Background()

	created, err := jobs.Create(ctx, jobRequest(true))
	require.NoError(t, err)

	list, err := notifications.GetForUser(ctx, "user_1", 0)
	require.NoError(t, err)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, db_models.NotificationTypeNewJob, list.Items[0].Type)
	assert.Equal(t, created.JobID, list.Items[0].ReferenceID)
	assert.Equal(t, "New Job: Backend Engineer at Acme", list.Items[0].Title)
	assert.Equal(t, "Location: Remote", list.Items[0].Message)
	assert.Contains(t, string(list.Items[0].Meta), created.JobID, "posting snapshot travels in meta")
	assert.Nil(t, list.Items[0].UserID, "job broadcasts are global")
}

func TestDraftJobStaysSilent(t *testing.T) {
	db := newTestDB(t)
	jobs, notifications := newJobFixture(db)
	ctx := context.Background()

	_, err := jobs.Create(ctx, jobRequest(false))
	require.NoError(t, err)

	count, err := notifications.GetUnreadCount(ctx, "user_1")
	require.NoError(t, err)
	assert.Zero(t, count.Count)
}

func TestPublishingADraftBroadcastsOnce(t *testing.T) {
	db := newTestDB(t)
	jobs, notifications := newJobFixture(db)
	ctx := context.Background()

	created, err := jobs.Create(ctx, jobRequest(false))
	require.NoError(t, err)

	published := jobRequest(true)
	_, err = jobs.Update(ctx, created.JobID, published)
	require.NoError(t, err)

	// A second update of the already-published posting stays silent.
	published.Location = "Bengaluru"
	_, err = jobs.Update(ctx, created.JobID, published)
	require.NoError(t, err)

	count, err := notifications.GetUnreadCount(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count.Count)
}

func TestRepostedJobIsFreshlyDismissible(t *testing.T) {
	db := newTestDB(t)
	jobs, notifications := newJobFixture(db)
	ctx := context.Background()

	_, err := jobs.Create(ctx, jobRequest(true))
	require.NoError(t, err)

	require.NoError(t, notifications.MarkAllAsRead(ctx, "user_1"))

	internship := jobRequest(true)
	internship.Type = db_models.JobTypeInternship
	_, err = jobs.Create(ctx, internship)
	require.NoError(t, err)

	count, err := notifications.GetUnreadCount(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count.Count, "a new posting gets its own dismissible broadcast")

	list, err := notifications.GetForUser(ctx, "user_1", 0)
	require.NoError(t, err)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, "New Internship: Backend Engineer at Acme", list.Items[0].Title)
}

func TestJobValidationAndLifecycle(t *testing.T) {
	db := newTestDB(t)
	jobs, _ := newJobFixture(db)
	ctx := context.Background()

	req := jobRequest(true)
	req.Type = "gig"
	_, err := jobs.Create(ctx, req)
	assert.ErrorIs(t, err, utils.ErrValidation)

	created, err := jobs.Create(ctx, jobRequest(false))
	require.NoError(t, err)

	publicList, err := jobs.ListPublished(ctx)
	require.NoError(t, err)
	assert.Empty(t, publicList, "drafts stay off the public list")

	adminList, err := jobs.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, adminList, 1)

	require.NoError(t, jobs.Delete(ctx, created.JobID))
	err = jobs.Delete(ctx, created.JobID)
	assert.ErrorIs(t, err, utils.ErrNotFound)

	_, err = jobs.GetByID(ctx, created.JobID)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}
