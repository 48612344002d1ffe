package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"offcampus/internal/models/request_models"
	"offcampus/internal/services"
	"offcampus/pkg/utils"
)

type JobController struct {
	jobService services.JobServiceInterface
}

func NewJobController(jobService services.JobServiceInterface) *JobController {
	return &JobController{jobService: jobService}
}

// ListPublished godoc
// @Summary Published job and internship postings
// @Tags Jobs
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /jobs [get]
func (j *JobController) ListPublished(c *gin.Context) {
	jobs, err := j.jobService.ListPublished(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"jobs": jobs, "count": len(jobs)}, "")
}

// GetByID godoc
// @Summary One posting by id
// @Tags Jobs
// @Produce json
// @Param jobId path string true "Job id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /jobs/{jobId} [get]
func (j *JobController) GetByID(c *gin.Context) {
	job, err := j.jobService.GetByID(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, job, "")
}

// ListAll godoc
// @Summary All postings including drafts
// @Tags Jobs
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /admin/jobs [get]
func (j *JobController) ListAll(c *gin.Context) {
	jobs, err := j.jobService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"jobs": jobs, "count": len(jobs)}, "")
}

// Create godoc
// @Summary Create a posting
// @Tags Jobs
// @Accept json
// @Produce json
// @Param request body request_models.UpsertJobRequest true "Posting payload"
// @Success 201 {object} utils.APIResponse
// @Router /admin/jobs [post]
func (j *JobController) Create(c *gin.Context) {
	var req request_models.UpsertJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	job, err := j.jobService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, job, "Job created")
}

// Update godoc
// @Summary Replace a posting
// @Tags Jobs
// @Accept json
// @Produce json
// @Param jobId path string true "Job id"
// @Param request body request_models.UpsertJobRequest true "Posting payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/jobs/{jobId} [put]
func (j *JobController) Update(c *gin.Context) {
	var req request_models.UpsertJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	job, err := j.jobService.Update(c.Request.Context(), c.Param("jobId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, job, "Job updated")
}

// Delete godoc
// @Summary Delete a posting
// @Tags Jobs
// @Produce json
// @Param jobId path string true "Job id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/jobs/{jobId} [delete]
func (j *JobController) Delete(c *gin.Context) {
	if err := j.jobService.Delete(c.Request.Context(), c.Param("jobId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Job deleted")
}
