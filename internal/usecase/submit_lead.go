package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/coderlevi/candidate-process/internal/entity"
)

type SubmitLeadUseCase struct {
	Repo         LeadRepositoryInterface
	Mailer       Mailer
	StaffContact string
}

func NewSubmitLeadUseCase(repo LeadRepositoryInterface, mailer Mailer, staffContact string) *SubmitLeadUseCase {
	return &SubmitLeadUseCase{
		Repo:         repo,
		Mailer:       mailer,
		StaffContact: staffContact,
	}
}

func (uc *SubmitLeadUseCase) Execute(ctx context.Context, input SubmitLeadInput) (*LeadOutput, error) {
	validationErrors := ValidateSubmitLeadInput(input)
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: errMsg,
		}
	}

	if !isPDFFilename(input.ResumeFilename) {
		return nil, &DomainError{
			Code:    CodeInvalidFileType,
			Message: "only pdf resumes are accepted",
		}
	}

	lead, err := entity.NewLead(
		input.FirstName,
		input.LastName,
		input.Email,
		input.ResumeFilename,
		input.ResumeData,
	)
	if err != nil {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: err.Error(),
		}
	}

	// Single keyed insert. The id is derived from the email, so a repeat
	// submission hits the primary key and comes back as ErrLeadAlreadyExists
	// even when two submissions race. No lookup-then-insert window.
	if err := uc.Repo.Create(ctx, lead); err != nil {
		if errors.Is(err, entity.ErrLeadAlreadyExists) {
			return nil, &DomainError{
				Code:    CodeDuplicate,
				Message: "you have already applied. you can update your resume",
			}
		}
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	// Best-effort notifications. The lead is already persisted; a failed
	// send is logged and the caller still gets a success.
	if uc.Mailer != nil {
		if err := uc.Mailer.Send(
			lead.Email,
			"Thank you for your submission!",
			fmt.Sprintf("Dear %s,\n\nThank you for submitting your lead. We will contact you soon.\n", lead.FirstName),
		); err != nil {
			log.Printf("submit lead: thank-you email to %s failed: %v", lead.Email, err)
		}

		if err := uc.Mailer.Send(
			uc.StaffContact,
			"New Lead Submitted",
			fmt.Sprintf("Lead from %s %s (%s) received.", lead.FirstName, lead.LastName, lead.Email),
		); err != nil {
			log.Printf("submit lead: staff alert to %s failed: %v", uc.StaffContact, err)
		}
	}

	return NewLeadOutput(lead), nil
}
