package kyc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nepwork/models"
)

// ErrMissingFields is returned when a submission lacks a required field or document.
var ErrMissingFields = errors.New("missing required fields for KYC submission")

// KYCAPI is the slice of the backend the KYC gate needs.
type KYCAPI interface {
	KYCStatus(ctx context.Context, sess *models.Session) (*models.KYCStatus, error)
	SubmitKYC(ctx context.Context, sess *models.Session, sub models.KYCSubmission) (*models.KYCStatus, error)
}

// KYCService gates a provider's ability to publish services on identity verification.
type KYCService interface {
	Status(ctx context.Context, sess *models.Session) (*models.KYCStatus, error)
	Submit(ctx context.Context, sess *models.Session, sub models.KYCSubmission) (*models.KYCStatus, error)
}

type defaultKYCService struct {
	api KYCAPI
}

func NewKYCService(api KYCAPI) KYCService {
	return &defaultKYCService{api: api}
}

func (s *defaultKYCService) Status(ctx context.Context, sess *models.Session) (*models.KYCStatus, error) {
	return s.api.KYCStatus(ctx, sess)
}

// Submit validates the form locally, then forwards it.
func (s *defaultKYCService) Submit(ctx context.Context, sess *models.Session, sub models.KYCSubmission) (*models.KYCStatus, error) {
	if missing := missingFields(sub); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}
	return s.api.SubmitKYC(ctx, sess, sub)
}

// CanPublish reports whether a provider may create or list services.
func CanPublish(status *models.KYCStatus) bool {
	return status != nil && status.Status == models.KYCApproved
}

// CanSubmit reports whether a new submission makes sense for the status.
func CanSubmit(status *models.KYCStatus) bool {
	if status == nil {
		return true
	}
	switch status.Status {
	case models.KYCPending, models.KYCApproved:
		return false
	}
	return true
}

func missingFields(sub models.KYCSubmission) []string {
	var missing []string
	if strings.TrimSpace(sub.FullName) == "" {
		missing = append(missing, "full_name")
	}
	if strings.TrimSpace(sub.Address) == "" {
		missing = append(missing, "address")
	}
	if strings.TrimSpace(sub.PhoneNumber) == "" {
		missing = append(missing, "phone_number")
	}
	if sub.Photo == nil {
		missing = append(missing, "photo")
	}
	if sub.Citizenship == nil {
		missing = append(missing, "citizenship")
	}
	return missing
}
