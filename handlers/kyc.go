package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"nepwork/middleware"
	"nepwork/models"
	"nepwork/services/booking"
	"nepwork/services/kyc"
	"nepwork/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxKYCUpload bounds the multipart body kept in memory.
const maxKYCUpload = 32 << 20

// KYCResponse is the verification state plus the gate derived from it.
type KYCResponse struct {
	KYC        *models.KYCStatus `json:"kyc"`
	CanPublish bool              `json:"canPublish"`
	CanSubmit  bool              `json:"canSubmit"`
}

// KYCHandler serves provider identity verification.
type KYCHandler struct {
	Service kyc.KYCService
}

func NewKYCHandler(svc kyc.KYCService) *KYCHandler {
	return &KYCHandler{Service: svc}
}

func kycResponse(status *models.KYCStatus) KYCResponse {
	return KYCResponse{KYC: status, CanPublish: kyc.CanPublish(status), CanSubmit: kyc.CanSubmit(status)}
}

// GetKYCStatusHandler returns the caller's verification status.
func (h *KYCHandler) GetKYCStatusHandler(c *gin.Context) {
	status, err := h.Service.Status(c.Request.Context(), middleware.SessionFrom(c))
	if err != nil {
		utils.JSONError(c, statusFor(err), booking.MessageFor(err, "failed to load verification status"), err.Error())
		return
	}
	c.JSON(http.StatusOK, kycResponse(status))
}

// SubmitKYCHandler forwards the multipart verification form.
func (h *KYCHandler) SubmitKYCHandler(c *gin.Context) {
	logger := getLogger(c)
	if err := c.Request.ParseMultipartForm(maxKYCUpload); err != nil {
		logger.Error("Invalid KYC form", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "invalid form", err.Error())
		return
	}

	sub := models.KYCSubmission{
		FullName:    c.PostForm("full_name"),
		Address:     c.PostForm("address"),
		PhoneNumber: c.PostForm("phone_number"),
	}
	files := map[string]**multipart.FileHeader{
		"photo":           &sub.Photo,
		"citizenship":     &sub.Citizenship,
		"driving_license": &sub.DrivingLicense,
		"passport":        &sub.Passport,
	}
	for field, dst := range files {
		header, err := c.FormFile(field)
		if errors.Is(err, http.ErrMissingFile) {
			continue
		}
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid "+field, err.Error())
			return
		}
		*dst = header
	}

	status, err := h.Service.Submit(c.Request.Context(), middleware.SessionFrom(c), sub)
	if err != nil {
		utils.JSONError(c, statusFor(err), booking.MessageFor(err, "failed to submit verification"), err.Error())
		return
	}
	c.JSON(http.StatusCreated, kycResponse(status))
}
