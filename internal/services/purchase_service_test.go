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

func newPurchaseService(db *gorm.DB) PurchaseServiceInterface {
	return NewPurchaseService(
		testRazorpayConfig,
		repositories.NewResourceRepository(db),
		repositories.NewKitRepository(db),
		repositories.NewGrantRepository(db),
		repositories.NewUserDetailsRepository(db),
	)
}

func seedResource(t *testing.T, db *gorm.DB, link string) db_models.Resource {
	t.Helper()
	resource := db_models.Resource{
		ResourceName: "Resume Pack",
		DownloadLink: link,
		ResourceFee:  199,
		Published:    true,
	}
	require.NoError(t, db.Create(&resource).Error)
	return resource
}

func resourcePurchaseRequest(userID, resourceID string) request_models.VerifyResourcePurchaseRequest {
	orderID := "order_res_1"
	paymentID := "pay_res_1"
	return request_models.VerifyResourcePurchaseRequest{
		UserID:            userID,
		ResourceID:        resourceID,
		Name:              "Asha",
		Email:             "asha@example.com",
		RazorpayPaymentID: paymentID,
		RazorpayOrderID:   orderID,
		RazorpaySignature: razorpaySignature(orderID, paymentID, testRazorpayConfig.KeySecret),
	}
}

func TestVerifyResourcePurchaseGrantsAccess(t *testing.T) {
	db := newTestDB(t)
	svc := newPurchaseService(db)
	ctx := context.Background()
	resource := seedResource(t, db, "https://cdn.example/pack.zip")

	grant, err := svc.VerifyResourcePurchase(ctx, resourcePurchaseRequest("user_1", resource.ResourceID), Actor{UserID: "user_1", Role: "user"})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/pack.zip", grant.DownloadLink)

	var updated db_models.Resource
	require.NoError(t, db.First(&updated, "resource_id = ?", resource.ResourceID).Error)
	assert.Equal(t, int64(1), updated.TotalDownloads)

	access, err := svc.GetResourceAccess(ctx, "user_1", resource.ResourceID, Actor{UserID: "user_1", Role: "user"})
	require.NoError(t, err)
	assert.True(t, access.HasAccess)
	assert.Equal(t, "https://cdn.example/pack.zip", access.DownloadLink)
}

func TestVerifyResourcePurchaseOverwritesGrant(t *testing.T) {
	db := newTestDB(t)
	svc := newPurchaseService(db)
	ctx := context.Background()
	resource := seedResource(t, db, "https://cdn.example/v1.zip")
	actor := Actor{UserID: "user_1", Role: "user"}

	_, err := svc.VerifyResourcePurchase(ctx, resourcePurchaseRequest("user_1", resource.ResourceID), actor)
	require.NoError(t, err)

	require.NoError(t, db.Model(&db_models.Resource{}).
		Where("resource_id = ?", resource.ResourceID).
		Update("download_link", "https://cdn.example/v2.zip").Error)

	grant, err := svc.VerifyResourcePurchase(ctx, resourcePurchaseRequest("user_1", resource.ResourceID), actor)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/v2.zip", grant.DownloadLink)

	var count int64
	require.NoError(t, db.Model(&db_models.UserResource{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "re-verification lands on the same grant row")
}

func TestVerifyResourcePurchaseRejections(t *testing.T) {
	db := newTestDB(t)
	svc := newPurchaseService(db)
	ctx := context.Background()
	resource := seedResource(t, db, "https://cdn.example/pack.zip")

	req := resourcePurchaseRequest("user_1", resource.ResourceID)
	req.RazorpaySignature = "forged"
	_, err := svc.VerifyResourcePurchase(ctx, req, Actor{UserID: "user_1", Role: "user"})
	assert.ErrorIs(t, err, utils.ErrInvalidSignature)

	_, err = svc.VerifyResourcePurchase(ctx, resourcePurchaseRequest("user_1", "missing_res_0"), Actor{UserID: "user_1", Role: "user"})
	assert.ErrorIs(t, err, utils.ErrNotFound)

	_, err = svc.VerifyResourcePurchase(ctx, resourcePurchaseRequest("user_1", resource.ResourceID), Actor{UserID: "user_2", Role: "user"})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	var count int64
	require.NoError(t, db.Model(&db_models.UserResource{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestResourceAccessThroughPlanBundle(t *testing.T) {
	db := newTestDB(t)
	svc := newPurchaseService(db)
	ctx := context.Background()
	resource := seedResource(t, db, "https://cdn.example/pack.zip")

	SetPlanResourceBundles([]string{resource.ResourceID}, nil)
	t.Cleanup(func() { SetPlanResourceBundles(nil, nil) })

	userDetails := repositories.NewUserDetailsRepository(db)
	require.NoError(t, userDetails.EnsureDefault(ctx, "user_1"))

	access, err := svc.GetResourceAccess(ctx, "user_1", resource.ResourceID, Actor{UserID: "user_1", Role: "user"})
	require.NoError(t, err)
	assert.False(t, access.HasAccess, "free tier gets no bundle")

	_, err = userDetails.SetPlan(ctx, "user_1", "basic")
	require.NoError(t, err)

	access, err = svc.GetResourceAccess(ctx, "user_1", resource.ResourceID, Actor{UserID: "user_1", Role: "user"})
	require.NoError(t, err)
	assert.True(t, access.HasAccess)
	assert.Equal(t, "https://cdn.example/pack.zip", access.DownloadLink)
}

func TestResourceWithoutLinkNeverGrantsAccess(t *testing.T) {
	db := newTestDB(t)
	svc := newPurchaseService(db)
	ctx := context.Background()
	resource := seedResource(t, db, "")

	access, err := svc.GetResourceAccess(ctx, "user_1", resource.ResourceID, Actor{UserID: "user_1", Role: "user"})
	require.NoError(t, err)
	assert.False(t, access.HasAccess)

	_, err = svc.VerifyResourcePurchase(ctx, resourcePurchaseRequest("user_1", resource.ResourceID), Actor{UserID: "user_1", Role: "user"})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestKitAccessIsGrantOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newPurchaseService(db)
	ctx := context.Background()

	kit := db_models.InterviewKit{KitName: "SDE Kit", KitURL: "https://cdn.example/kit.pdf", Published: true}
	require.NoError(t, db.Create(&kit).Error)

	userDetails := repositories.NewUserDetailsRepository(db)
	require.NoError(t, userDetails.EnsureDefault(ctx, "user_1"))
	_, err := userDetails.SetPlan(ctx, "user_1", "booster")
	require.NoError(t, err)

	access, err := svc.GetKitAccess(ctx, "user_1", kit.KitID, Actor{UserID: "user_1", Role: "user"})
	require.NoError(t, err)
	assert.False(t, access.HasAccess, "plans never bundle kits")

	orderID := "order_kit_1"
	paymentID := "pay_kit_1"
	_, err = svc.VerifyKitPurchase(ctx, request_models.VerifyKitPurchaseRequest{
		UserID:            "user_1",
		KitID:             kit.KitID,
		Name:              "Asha",
		Email:             "asha@example.com",
		RazorpayPaymentID: paymentID,
		RazorpayOrderID:   orderID,
		RazorpaySignature: razorpaySignature(orderID, paymentID, testRazorpayConfig.KeySecret),
	}, Actor{UserID: "user_1", Role: "user"})
	require.NoError(t, err)

	access, err = svc.GetKitAccess(ctx, "user_1", kit.KitID, Actor{UserID: "user_1", Role: "user"})
	require.NoError(t, err)
	assert.True(t, access.HasAccess)
	assert.Equal(t, "https://cdn.example/kit.pdf", access.KitURL)
}
