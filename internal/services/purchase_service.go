package services

import (
	"context"
	"fmt"
	"log"

	"offcampus/internal/models/request_models"
	"offcampus/internal/models/response_models"
	"offcampus/internal/repositories"
	"offcampus/pkg/utils"
)

// Plan-bundled resource ids. Every paid tier unlocks the basic set; the two
// upper tiers add the extra set on top. Populated at startup from env so new
// bundles ship without a rebuild.
var (
	basicFreeResourceIDs     = map[string]bool{}
	standardExtraResourceIDs = map[string]bool{}
)

func SetPlanResourceBundles(basic, standardExtra []string) {
	basicFreeResourceIDs = map[string]bool{}
	standardExtraResourceIDs = map[string]bool{}
	for _, id := range basic {
		basicFreeResourceIDs[id] = true
	}
	for _, id := range standardExtra {
		standardExtraResourceIDs[id] = true
	}
}

func planIncludesResource(planType, resourceID string) bool {
	switch planType {
	case "basic":
		return basicFreeResourceIDs[resourceID]
	case "standard", "booster":
		return basicFreeResourceIDs[resourceID] || standardExtraResourceIDs[resourceID]
	default:
		return false
	}
}

type ResourceAccess struct {
	HasAccess    bool   `json:"hasAccess"`
	DownloadLink string `json:"downloadLink,omitempty"`
}

type KitAccess struct {
	HasAccess bool   `json:"hasAccess"`
	KitURL    string `json:"kitUrl,omitempty"`
}

type PurchaseServiceInterface interface {
	VerifyResourcePurchase(ctx context.Context, req request_models.VerifyResourcePurchaseRequest, actor Actor) (*response_models.GrantResponse, error)
	VerifyKitPurchase(ctx context.Context, req request_models.VerifyKitPurchaseRequest, actor Actor) (*response_models.GrantResponse, error)
	GetResourceAccess(ctx context.Context, userID, resourceID string, actor Actor) (*ResourceAccess, error)
	GetKitAccess(ctx context.Context, userID, kitID string, actor Actor) (*KitAccess, error)
}

type purchaseService struct {
	cfg         RazorpayConfig
	resources   repositories.ResourceRepositoryInterface
	kits        repositories.KitRepositoryInterface
	grants      repositories.GrantRepositoryInterface
	userDetails repositories.UserDetailsRepositoryInterface
}

func NewPurchaseService(
	cfg RazorpayConfig,
	resources repositories.ResourceRepositoryInterface,
	kits repositories.KitRepositoryInterface,
	grants repositories.GrantRepositoryInterface,
	userDetails repositories.UserDetailsRepositoryInterface,
) PurchaseServiceInterface {
	return &purchaseService{
		cfg:         cfg,
		resources:   resources,
		kits:        kits,
		grants:      grants,
		userDetails: userDetails,
	}
}

// VerifyResourcePurchase grants a single resource after a checkout. Unlike
// plan verification this trusts the signature alone and never calls the
// gateway; the grant URL is copied from the catalog row at verification time.
func (p *purchaseService) VerifyResourcePurchase(ctx context.Context, req request_models.VerifyResourcePurchaseRequest, actor Actor) (*response_models.GrantResponse, error) {
	if !actor.IsAdmin() && actor.UserID != req.UserID {
		return nil, fmt.Errorf("%w: cannot verify purchase for another user", utils.ErrForbidden)
	}
	if p.cfg.KeySecret == "" {
		return nil, fmt.Errorf("%w: razorpay keys missing", utils.ErrMisconfigured)
	}

	resource, err := p.resources.GetByID(ctx, req.ResourceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if resource == nil {
		return nil, fmt.Errorf("%w: resource %s", utils.ErrNotFound, req.ResourceID)
	}
	if resource.DownloadLink == "" {
		return nil, fmt.Errorf("%w: resource %s has no download link", utils.ErrValidation, req.ResourceID)
	}

	if !signatureMatches(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, p.cfg.KeySecret) {
		return nil, utils.ErrInvalidSignature
	}

	grant, err := p.grants.UpsertResourceGrant(ctx, req.UserID, req.ResourceID, resource.DownloadLink)
	if err != nil {
		return nil, fmt.Errorf("%w: upsert resource grant: %v", utils.ErrDatabaseError, err)
	}

	// Download counter is advisory; a miss here must not fail the purchase.
	if err := p.resources.IncrementDownloads(ctx, req.ResourceID); err != nil {
		log.Printf("increment downloads for %s: %v", req.ResourceID, err)
	}

	return &response_models.GrantResponse{
		UserID:       grant.UserID,
		ResourceID:   grant.ResourceID,
		DownloadLink: grant.SignedURL,
	}, nil
}

func (p *purchaseService) VerifyKitPurchase(ctx context.Context, req request_models.VerifyKitPurchaseRequest, actor Actor) (*response_models.GrantResponse, error) {
	if !actor.IsAdmin() && actor.UserID != req.UserID {
		return nil, fmt.Errorf("%w: cannot verify purchase for another user", utils.ErrForbidden)
	}
	if p.cfg.KeySecret == "" {
		return nil, fmt.Errorf("%w: razorpay keys missing", utils.ErrMisconfigured)
	}

	kit, err := p.kits.GetByID(ctx, req.KitID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if kit == nil {
		return nil, fmt.Errorf("%w: interview kit %s", utils.ErrNotFound, req.KitID)
	}
	if kit.KitURL == "" {
		return nil, fmt.Errorf("%w: interview kit %s has no kit url", utils.ErrValidation, req.KitID)
	}

	if !signatureMatches(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, p.cfg.KeySecret) {
		return nil, utils.ErrInvalidSignature
	}

	grant, err := p.grants.UpsertKitGrant(ctx, req.UserID, req.KitID, kit.KitURL)
	if err != nil {
		return nil, fmt.Errorf("%w: upsert kit grant: %v", utils.ErrDatabaseError, err)
	}

	return &response_models.GrantResponse{
		UserID: grant.UserID,
		KitID:  grant.KitID,
		KitURL: grant.KitURL,
	}, nil
}

// GetResourceAccess answers whether a user may download a resource, either
// through a direct grant or through their plan bundle. A negative answer is a
// normal 200 with hasAccess=false, not an error.
func (p *purchaseService) GetResourceAccess(ctx context.Context, userID, resourceID string, actor Actor) (*ResourceAccess, error) {
	if !actor.IsAdmin() && actor.UserID != userID {
		return nil, fmt.Errorf("%w: cannot check access for another user", utils.ErrForbidden)
	}

	resource, err := p.resources.GetByID(ctx, resourceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if resource == nil {
		return nil, fmt.Errorf("%w: resource %s", utils.ErrNotFound, resourceID)
	}
	if resource.DownloadLink == "" {
		return &ResourceAccess{HasAccess: false}, nil
	}

	grant, err := p.grants.GetResourceGrant(ctx, userID, resourceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if grant != nil {
		link := grant.SignedURL
		if link == "" {
			link = resource.DownloadLink
		}
		return &ResourceAccess{HasAccess: true, DownloadLink: link}, nil
	}

	details, err := p.userDetails.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if details != nil && planIncludesResource(details.PlanType, resourceID) {
		return &ResourceAccess{HasAccess: true, DownloadLink: resource.DownloadLink}, nil
	}

	return &ResourceAccess{HasAccess: false}, nil
}

// GetKitAccess is grant-only: kits never come bundled with a plan.
func (p *purchaseService) GetKitAccess(ctx context.Context, userID, kitID string, actor Actor) (*KitAccess, error) {
	if !actor.IsAdmin() && actor.UserID != userID {
		return nil, fmt.Errorf("%w: cannot check access for another user", utils.ErrForbidden)
	}

	kit, err := p.kits.GetByID(ctx, kitID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if kit == nil {
		return nil, fmt.Errorf("%w: interview kit %s", utils.ErrNotFound, kitID)
	}

	grant, err := p.grants.GetKitGrant(ctx, userID, kitID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if grant == nil {
		return &KitAccess{HasAccess: false}, nil
	}
	return &KitAccess{HasAccess: true, KitURL: grant.KitURL}, nil
}
