package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"offcampus/internal/services"
	"offcampus/pkg/utils"
)

type UploadController struct {
	uploadService services.UploadServiceInterface
}

func NewUploadController(uploadService services.UploadServiceInterface) *UploadController {
	return &UploadController{uploadService: uploadService}
}

// Upload godoc
// @Summary Upload a file to object storage
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param folder formData string true "Target folder: resumes, banners or kits"
// @Param file formData file true "File to upload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /uploads [post]
func (u *UploadController) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "cannot read file")
		return
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "cannot read file")
		return
	}

	result, err := u.uploadService.Upload(
		c.Request.Context(),
		c.PostForm("folder"),
		fileHeader.Filename,
		body,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, result, "File uploaded")
}

// Delete godoc
// @Summary Delete an uploaded object
// @Tags Uploads
// @Produce json
// @Param key query string true "Object key"
// @Success 200 {object} utils.APIResponse
// @Router /uploads [delete]
func (u *UploadController) Delete(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		utils.RespondError(c, http.StatusBadRequest, "key is required")
		return
	}

	if err := u.uploadService.Delete(c.Request.Context(), key); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "File deleted")
}
