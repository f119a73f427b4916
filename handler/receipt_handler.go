package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/billscan/receipt-analyzer/dto"
	"github.com/billscan/receipt-analyzer/service"
)

type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
	}
}

// Upload handles the POST /upload/ endpoint
func (h *ReceiptHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No file provided", err)
		return
	}

	request := &dto.UploadRequest{File: fileHeader}
	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	logrus.WithField("filename", fileHeader.Filename).Info("processing upload")

	response, err := h.receiptService.ProcessUpload(fileHeader)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to process receipt", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// sendError sends a structured error response
func (h *ReceiptHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		logrus.WithError(err).Error(message)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "UPLOAD_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
