package models

import "mime/multipart"

type KYCState string

const (
	KYCNotSubmitted KYCState = "not_submitted"
	KYCPending      KYCState = "pending"
	KYCApproved     KYCState = "approved"
	KYCRejected     KYCState = "rejected"
)

// KYCStatus is the verification state gating a provider's ability to publish services.
type KYCStatus struct {
	Status     KYCState `json:"status"`
	AdminNotes string   `json:"admin_notes,omitempty"`
}

// KYCSubmission carries the identity documents forwarded to /accounts/kyc/submit/.
type KYCSubmission struct {
	FullName       string
	Address        string
	PhoneNumber    string
	Photo          *multipart.FileHeader
	Citizenship    *multipart.FileHeader
	DrivingLicense *multipart.FileHeader // optional
	Passport       *multipart.FileHeader // optional
}
