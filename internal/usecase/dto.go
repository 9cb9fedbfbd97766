package usecase

import (
	"github.com/coderlevi/candidate-process/internal/entity"
)

type SubmitLeadInput struct {
	FirstName      string
	LastName       string
	Email          string
	ResumeFilename string
	ResumeData     []byte
}

// LeadOutput is the wire shape of a lead. Resume bytes are never inlined;
// they only leave through the dedicated download operation.
type LeadOutput struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	ResumeFilename string `json:"resume_filename"`
	State          string `json:"state"`
}

func NewLeadOutput(lead *entity.Lead) *LeadOutput {
	return &LeadOutput{
		ID:             lead.ID,
		FirstName:      lead.FirstName,
		LastName:       lead.LastName,
		Email:          lead.Email,
		ResumeFilename: lead.ResumeFilename,
		State:          lead.State.String(),
	}
}
