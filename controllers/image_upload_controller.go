package controllers

import (
	"net/http"

	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/utils"

	"github.com/gin-gonic/gin"
)

type UploadImageRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
	Prefix      string `json:"prefix"`
}

// UploadImage stores a base64 dish or category photo on S3 and hands
// back the public URL for the create/update payload.
func UploadImage(c *gin.Context) {
	var req UploadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	prefix := req.Prefix
	if prefix == "" {
		prefix = "uploads"
	}

	url, err := utils.UploadBase64ImageToS3(req.ImageBase64, prefix)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
