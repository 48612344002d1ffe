package services

import (
	"context"
	"fmt"

	"offcampus/internal/models/db_models"
	"offcampus/internal/models/request_models"
	"offcampus/internal/models/response_models"
	"offcampus/internal/repositories"
	"offcampus/pkg/utils"
)

type KitServiceInterface interface {
	Create(ctx context.Context, req request_models.UpsertKitRequest) (*response_models.KitResponse, error)
	GetByID(ctx context.Context, kitID string, includePrivate bool) (*response_models.KitResponse, error)
	ListPublished(ctx context.Context) ([]response_models.KitResponse, error)
	ListAll(ctx context.Context) ([]response_models.KitResponse, error)
	Update(ctx context.Context, kitID string, req request_models.UpsertKitRequest) (*response_models.KitResponse, error)
	Delete(ctx context.Context, kitID string) error
}

type kitService struct {
	kits repositories.KitRepositoryInterface
}

func NewKitService(kits repositories.KitRepositoryInterface) KitServiceInterface {
	return &kitService{kits: kits}
}

func (k *kitService) Create(ctx context.Context, req request_models.UpsertKitRequest) (*response_models.KitResponse, error) {
	kit := &db_models.InterviewKit{
		KitName:     req.KitName,
		Description: req.Description,
		KitURL:      req.KitURL,
		KitFee:      req.KitFee,
		Published:   req.Published,
	}
	if err := k.kits.Create(ctx, kit); err != nil {
		return nil, fmt.Errorf("%w: create kit: %v", utils.ErrDatabaseError, err)
	}
	resp := toKitResponse(kit, true)
	return &resp, nil
}

func (k *kitService) GetByID(ctx context.Context, kitID string, includePrivate bool) (*response_models.KitResponse, error) {
	kit, err := k.kits.GetByID(ctx, kitID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if kit == nil {
		return nil, fmt.Errorf("%w: interview kit %s", utils.ErrNotFound, kitID)
	}
	if !includePrivate && !kit.Published {
		return nil, fmt.Errorf("%w: interview kit %s", utils.ErrNotFound, kitID)
	}
	resp := toKitResponse(kit, includePrivate)
	return &resp, nil
}

func (k *kitService) ListPublished(ctx context.Context) ([]response_models.KitResponse, error) {
	kits, err := k.kits.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return toKitResponses(kits, false), nil
}

func (k *kitService) ListAll(ctx context.Context) ([]response_models.KitResponse, error) {
	kits, err := k.kits.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return toKitResponses(kits, true), nil
}

func (k *kitService) Update(ctx context.Context, kitID string, req request_models.UpsertKitRequest) (*response_models.KitResponse, error) {
	updated, err := k.kits.Update(ctx, kitID, map[string]interface{}{
		"kit_name":    req.KitName,
		"description": req.Description,
		"kit_url":     req.KitURL,
		"kit_fee":     req.KitFee,
		"published":   req.Published,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: update kit: %v", utils.ErrDatabaseError, err)
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: interview kit %s", utils.ErrNotFound, kitID)
	}
	resp := toKitResponse(updated, true)
	return &resp, nil
}

func (k *kitService) Delete(ctx context.Context, kitID string) error {
	existing, err := k.kits.GetByID(ctx, kitID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing == nil {
		return fmt.Errorf("%w: interview kit %s", utils.ErrNotFound, kitID)
	}
	if err := k.kits.Delete(ctx, kitID); err != nil {
		return fmt.Errorf("%w: delete kit: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

// The kit URL is the paid asset; public views never carry it.
func toKitResponse(kit *db_models.InterviewKit, includePrivate bool) response_models.KitResponse {
	resp := response_models.KitResponse{
		KitID:       kit.KitID,
		KitName:     kit.KitName,
		Description: kit.Description,
		KitFee:      kit.KitFee,
		Published:   kit.Published,
		CreatedAt:   kit.CreatedAt,
		UpdatedAt:   kit.UpdatedAt,
	}
	if includePrivate {
		resp.KitURL = kit.KitURL
	}
	return resp
}

func toKitResponses(kits []db_models.InterviewKit, includePrivate bool) []response_models.KitResponse {
	out := make([]response_models.KitResponse, 0, len(kits))
	for i := range kits {
		out = append(out, toKitResponse(&kits[i], includePrivate))
	}
	return out
}
