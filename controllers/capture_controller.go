package controllers

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chicodelphi/nutricaoBRL/services"
)

type CaptureController struct {
	Capture *services.CaptureService
}

func NewCaptureController(capture *services.CaptureService) *CaptureController {
	return &CaptureController{Capture: capture}
}

// SelectImage accepts the photographed meal as base64 and holds it for
// analysis. Re-selecting replaces the held image.
func (cc *CaptureController) SelectImage(c *gin.Context) {
	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
		MimeType    string `json:"mime_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid base64 image"})
		return
	}

	if err := cc.Capture.SelectImage(data, req.MimeType); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": cc.Capture.State()})
}

// Analyze runs the remote inference on the held image. A failure keeps the
// image so the client can simply retry.
func (cc *CaptureController) Analyze(c *gin.Context) {
	candidate, err := cc.Capture.Analyze(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAnalysisInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNoImageSelected):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "state": cc.Capture.State()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": cc.Capture.State(), "candidate": candidate})
}

// Confirm turns the reviewed candidate into a permanent log entry.
func (cc *CaptureController) Confirm(c *gin.Context) {
	entry, err := cc.Capture.Confirm()
	if err != nil {
		if errors.Is(err, services.ErrNoCandidate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (cc *CaptureController) Discard(c *gin.Context) {
	if err := cc.Capture.Discard(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (cc *CaptureController) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"state":     cc.Capture.State(),
		"candidate": cc.Capture.Candidate(),
	})
}
