package services

import (
	"context"
	"encoding/json"
	"fmt"

	"offcampus/internal/models/db_models"
	"offcampus/internal/models/request_models"
	"offcampus/internal/models/response_models"
	"offcampus/internal/repositories"
	"offcampus/pkg/utils"
)

type JobServiceInterface interface {
	Create(ctx context.Context, req request_models.UpsertJobRequest) (*response_models.JobResponse, error)
	GetByID(ctx context.Context, jobID string) (*response_models.JobResponse, error)
	ListPublished(ctx context.Context) ([]response_models.JobResponse, error)
	ListAll(ctx context.Context) ([]response_models.JobResponse, error)
	Update(ctx context.Context, jobID string, req request_models.UpsertJobRequest) (*response_models.JobResponse, error)
	Delete(ctx context.Context, jobID string) error
}

type jobService struct {
	jobs          repositories.JobRepositoryInterface
	notifications NotificationServiceInterface
}

func NewJobService(jobs repositories.JobRepositoryInterface, notifications NotificationServiceInterface) JobServiceInterface {
	return &jobService{jobs: jobs, notifications: notifications}
}

// Create stores a posting and, when it goes out published, broadcasts a
// global notification. The broadcast never blocks the posting itself.
func (j *jobService) Create(ctx context.Context, req request_models.UpsertJobRequest) (*response_models.JobResponse, error) {
	if req.Type != db_models.JobTypeJob && req.Type != db_models.JobTypeInternship {
		return nil, fmt.Errorf("%w: type must be %q or %q", utils.ErrValidation, db_models.JobTypeJob, db_models.JobTypeInternship)
	}

	job := &db_models.Job{
		Type:            req.Type,
		JobRole:         req.JobRole,
		CompanyGiving:   req.CompanyGiving,
		JobType:         req.JobType,
		Location:        req.Location,
		WhoCanApply:     req.WhoCanApply,
		LastDateToApply: req.LastDateToApply,
		RedirectLink:    req.RedirectLink,
		RecruiterEmail:  req.RecruiterEmail,
		Description:     req.Description,
		Stipend:         req.Stipend,
		Duration:        req.Duration,
		Experience:      req.Experience,
		Published:       req.Published,
	}
	if err := j.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("%w: create job: %v", utils.ErrDatabaseError, err)
	}

	if job.Published {
		j.announce(ctx, job)
	}

	resp := toJobResponse(job)
	return &resp, nil
}

func (j *jobService) announce(ctx context.Context, job *db_models.Job) {
	notificationType := db_models.NotificationTypeNewJob
	kind := "New Job"
	role := job.JobRole
	if role == "" {
		role = "Position"
	}
	if job.Type == db_models.JobTypeInternship {
		notificationType = db_models.NotificationTypeNewInternship
		kind = "New Internship"
		if job.JobRole == "" {
			role = "Opportunity"
		}
	}
	company := job.CompanyGiving
	if company == "" {
		company = "Company"
	}
	title := fmt.Sprintf("%s: %s at %s", kind, role, company)

	message := ""
	if job.Location != "" {
		message = "Location: " + job.Location
	}

	meta, err := json.Marshal(toJobResponse(job))
	if err != nil {
		meta = nil
	}
	j.notifications.CreateInternal(ctx, notificationType, title, message, job.JobID, meta)
}

func (j *jobService) GetByID(ctx context.Context, jobID string) (*response_models.JobResponse, error) {
	job, err := j.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if job == nil {
		return nil, fmt.Errorf("%w: job %s", utils.ErrNotFound, jobID)
	}
	resp := toJobResponse(job)
	return &resp, nil
}

func (j *jobService) ListPublished(ctx context.Context) ([]response_models.JobResponse, error) {
	jobs, err := j.jobs.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return toJobResponses(jobs), nil
}

func (j *jobService) ListAll(ctx context.Context) ([]response_models.JobResponse, error) {
	jobs, err := j.jobs.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return toJobResponses(jobs), nil
}

// Update replaces the mutable fields. A previously unpublished posting that
// comes back published triggers a fresh broadcast.
func (j *jobService) Update(ctx context.Context, jobID string, req request_models.UpsertJobRequest) (*response_models.JobResponse, error) {
	if req.Type != db_models.JobTypeJob && req.Type != db_models.JobTypeInternship {
		return nil, fmt.Errorf("%w: type must be %q or %q", utils.ErrValidation, db_models.JobTypeJob, db_models.JobTypeInternship)
	}

	existing, err := j.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: job %s", utils.ErrNotFound, jobID)
	}

	updated, err := j.jobs.Update(ctx, jobID, map[string]interface{}{
		"type":               req.Type,
		"job_role":           req.JobRole,
		"company_giving":     req.CompanyGiving,
		"job_type":           req.JobType,
		"location":           req.Location,
		"who_can_apply":      req.WhoCanApply,
		"last_date_to_apply": req.LastDateToApply,
		"redirect_link":      req.RedirectLink,
		"recruiter_email":    req.RecruiterEmail,
		"description":        req.Description,
		"stipend":            req.Stipend,
		"duration":           req.Duration,
		"experience":         req.Experience,
		"published":          req.Published,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: update job: %v", utils.ErrDatabaseError, err)
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: job %s", utils.ErrNotFound, jobID)
	}

	if !existing.Published && updated.Published {
		j.announce(ctx, updated)
	}

	resp := toJobResponse(updated)
	return &resp, nil
}

func (j *jobService) Delete(ctx context.Context, jobID string) error {
	existing, err := j.jobs.GetByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing == nil {
		return fmt.Errorf("%w: job %s", utils.ErrNotFound, jobID)
	}
	if err := j.jobs.Delete(ctx, jobID); err != nil {
		return fmt.Errorf("%w: delete job: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func toJobResponse(job *db_models.Job) response_models.JobResponse {
	return response_models.JobResponse{
		JobID:           job.JobID,
		Type:            job.Type,
		JobRole:         job.JobRole,
		CompanyGiving:   job.CompanyGiving,
		JobType:         job.JobType,
		Location:        job.Location,
		WhoCanApply:     job.WhoCanApply,
		LastDateToApply: job.LastDateToApply,
		RedirectLink:    job.RedirectLink,
		RecruiterEmail:  job.RecruiterEmail,
		Description:     job.Description,
		Stipend:         job.Stipend,
		Duration:        job.Duration,
		Experience:      job.Experience,
		Published:       job.Published,
		CreatedAt:       job.CreatedAt,
		UpdatedAt:       job.UpdatedAt,
	}
}

func toJobResponses(jobs []db_models.Job) []response_models.JobResponse {
	out := make([]response_models.JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, toJobResponse(&jobs[i]))
	}
	return out
}
