package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"nepwork/models"
)

// SyncAccount stores the role preference server-side. Role must already be
// in the backend vocabulary.
func (c *Client) SyncAccount(ctx context.Context, sess *models.Session, role models.Role) error {
	body := models.AccountSyncRequest{
		Email:    sess.Email,
		Username: sess.Username,
		Role:     role,
	}
	return c.sendJSON(ctx, sess, http.MethodPost, "/accounts/sync/", body, nil)
}

// KYCStatus returns the caller's verification status.
func (c *Client) KYCStatus(ctx context.Context, sess *models.Session) (*models.KYCStatus, error) {
	var out models.KYCStatus
	if err := c.getJSON(ctx, sess, "/accounts/kyc/status/", &out); err != nil {
		return nil, err
	}
	if out.Status == "" {
		out.Status = models.KYCNotSubmitted
	}
	return &out, nil
}

// SubmitKYC forwards the identity documents as a multipart form.
func (c *Client) SubmitKYC(ctx context.Context, sess *models.Session, sub models.KYCSubmission) (*models.KYCStatus, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"full_name":    sub.FullName,
		"address":      sub.Address,
		"phone_number": sub.PhoneNumber,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	files := []struct {
		field  string
		header *multipart.FileHeader
	}{
		{"photo", sub.Photo},
		{"citizenship", sub.Citizenship},
		{"driving_license", sub.DrivingLicense},
		{"passport", sub.Passport},
	}
	for _, f := range files {
		if f.header == nil {
			continue
		}
		if err := copyFormFile(w, f.field, f.header); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize KYC form: %w", err)
	}

	var out struct {
		KYC *models.KYCStatus `json:"kyc"`
	}
	if err := c.do(ctx, sess, http.MethodPost, "/accounts/kyc/submit/", &buf, w.FormDataContentType(), &out); err != nil {
		return nil, err
	}
	if out.KYC == nil {
		return &models.KYCStatus{Status: models.KYCPending}, nil
	}
	return out.KYC, nil
}

func copyFormFile(w *multipart.Writer, field string, header *multipart.FileHeader) error {
	src, err := header.Open()
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", field, err)
	}
	defer src.Close()

	dst, err := w.CreateFormFile(field, header.Filename)
	if err != nil {
		return fmt.Errorf("failed to create %s part: %w", field, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to copy %s: %w", field, err)
	}
	return nil
}
