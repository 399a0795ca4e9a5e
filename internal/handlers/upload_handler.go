package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hopehr/hr-api/internal/httperr"
	"github.com/hopehr/hr-api/internal/httpresp"
	"github.com/hopehr/hr-api/internal/storage"
	"github.com/hopehr/hr-api/internal/validators"
)

type UploadHandler struct {
	signer storage.UploadSigner
}

func NewUploadHandler(signer storage.UploadSigner) *UploadHandler {
	return &UploadHandler{signer: signer}
}

type PresignUploadRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

// PresignImage hands the client a time-limited URL to PUT a profile photo
// straight into object storage; the image bytes never pass through this API.
func (h *UploadHandler) PresignImage(c *gin.Context) {
	var req PresignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "File name and content type are required.")
		return
	}

	if !validators.IsAllowedImageType(req.ContentType) {
		httperr.BadRequest(c, "invalid_file_type", "Invalid file type. Only images are allowed.")
		return
	}

	target, err := h.signer.PresignUpload(c.Request.Context(), req.FileName, req.ContentType)
	if err != nil {
		httperr.Internal(c, "failed_to_presign", "Internal server error.")
		return
	}

	httpresp.OK(c, target)
}
