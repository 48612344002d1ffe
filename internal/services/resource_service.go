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

type ResourceServiceInterface interface {
	Create(ctx context.Context, req request_models.UpsertResourceRequest) (*response_models.ResourceResponse, error)
	GetByID(ctx context.Context, resourceID string, includePrivate bool) (*response_models.ResourceResponse, error)
	ListPublished(ctx context.Context) ([]response_models.ResourceResponse, error)
	ListAll(ctx context.Context) ([]response_models.ResourceResponse, error)
	Update(ctx context.Context, resourceID string, req request_models.UpsertResourceRequest) (*response_models.ResourceResponse, error)
	Delete(ctx context.Context, resourceID string) error
}

type resourceService struct {
	resources repositories.ResourceRepositoryInterface
}

func NewResourceService(resources repositories.ResourceRepositoryInterface) ResourceServiceInterface {
	return &resourceService{resources: resources}
}

func (r *resourceService) Create(ctx context.Context, req request_models.UpsertResourceRequest) (*response_models.ResourceResponse, error) {
	resource := &db_models.Resource{
		ResourceName:     req.ResourceName,
		ShortDescription: req.ShortDescription,
		WhatYouGet:       req.WhatYouGet,
		DownloadLink:     req.DownloadLink,
		BannerImage:      req.BannerImage,
		ResourceFee:      req.ResourceFee,
		Published:        req.Published,
	}
	if err := r.resources.Create(ctx, resource); err != nil {
		return nil, fmt.Errorf("%w: create resource: %v", utils.ErrDatabaseError, err)
	}
	resp := toResourceResponse(resource, true)
	return &resp, nil
}

func (r *resourceService) GetByID(ctx context.Context, resourceID string, includePrivate bool) (*response_models.ResourceResponse, error) {
	resource, err := r.resources.GetByID(ctx, resourceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if resource == nil {
		return nil, fmt.Errorf("%w: resource %s", utils.ErrNotFound, resourceID)
	}
	if !includePrivate && !resource.Published {
		return nil, fmt.Errorf("%w: resource %s", utils.ErrNotFound, resourceID)
	}
	resp := toResourceResponse(resource, includePrivate)
	return &resp, nil
}

func (r *resourceService) ListPublished(ctx context.Context) ([]response_models.ResourceResponse, error) {
	resources, err := r.resources.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return toResourceResponses(resources, false), nil
}

func (r *resourceService) ListAll(ctx context.Context) ([]response_models.ResourceResponse, error) {
	resources, err := r.resources.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return toResourceResponses(resources, true), nil
}

func (r *resourceService) Update(ctx context.Context, resourceID string, req request_models.UpsertResourceRequest) (*response_models.ResourceResponse, error) {
	updated, err := r.resources.Update(ctx, resourceID, map[string]interface{}{
		"resource_name":     req.ResourceName,
		"short_description": req.ShortDescription,
		"what_you_get":      req.WhatYouGet,
		"download_link":     req.DownloadLink,
		"banner_image":      req.BannerImage,
		"resource_fee":      req.ResourceFee,
		"published":         req.Published,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: update resource: %v", utils.ErrDatabaseError, err)
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: resource %s", utils.ErrNotFound, resourceID)
	}
	resp := toResourceResponse(updated, true)
	return &resp, nil
}

func (r *resourceService) Delete(ctx context.Context, resourceID string) error {
	existing, err := r.resources.GetByID(ctx, resourceID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing == nil {
		return fmt.Errorf("%w: resource %s", utils.ErrNotFound, resourceID)
	}
	if err := r.resources.Delete(ctx, resourceID); err != nil {
		return fmt.Errorf("%w: delete resource: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

// toResourceResponse hides the raw download link and the download counter from
// public listings; access goes through the grant flow instead.
func toResourceResponse(resource *db_models.Resource, includePrivate bool) response_models.ResourceResponse {
	resp := response_models.ResourceResponse{
		ResourceID:       resource.ResourceID,
		ResourceName:     resource.ResourceName,
		ShortDescription: resource.ShortDescription,
		WhatYouGet:       resource.WhatYouGet,
		BannerImage:      resource.BannerImage,
		ResourceFee:      resource.ResourceFee,
		Published:        resource.Published,
		CreatedAt:        resource.CreatedAt,
		UpdatedAt:        resource.UpdatedAt,
	}
	if includePrivate {
		resp.DownloadLink = resource.DownloadLink
		resp.TotalDownloads = resource.TotalDownloads
	}
	return resp
}

func toResourceResponses(resources []db_models.Resource, includePrivate bool) []response_models.ResourceResponse {
	out := make([]response_models.ResourceResponse, 0, len(resources))
	for i := range resources {
		out = append(out, toResourceResponse(&resources[i], includePrivate))
	}
	return out
}
