package usecase

import (
	"context"
	"errors"

	"github.com/coderlevi/candidate-process/internal/entity"
)

// LeadAdminUseCase covers the internal operations on existing leads. Auth
// is enforced at the transport layer before any of these run.
type LeadAdminUseCase struct {
	Repo LeadRepositoryInterface
}

func NewLeadAdminUseCase(repo LeadRepositoryInterface) *LeadAdminUseCase {
	return &LeadAdminUseCase{Repo: repo}
}

func (uc *LeadAdminUseCase) List(ctx context.Context) ([]*LeadOutput, error) {
	leads, err := uc.Repo.FindAll(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to list leads: " + err.Error(),
		}
	}

	out := make([]*LeadOutput, 0, len(leads))
	for _, lead := range leads {
		out = append(out, NewLeadOutput(lead))
	}
	return out, nil
}

func (uc *LeadAdminUseCase) Get(ctx context.Context, id string) (*LeadOutput, error) {
	lead, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "failed to load lead")
	}
	return NewLeadOutput(lead), nil
}

func (uc *LeadAdminUseCase) GetResume(ctx context.Context, id string) (filename string, data []byte, err error) {
	filename, data, err = uc.Repo.FindResume(ctx, id)
	if err != nil {
		return "", nil, mapRepoError(err, "failed to load resume")
	}
	return filename, data, nil
}

// ReplaceResume overwrites the stored file and drops the lead back to
// PENDING: a new resume means the lead needs review again, whatever state
// it was in.
func (uc *LeadAdminUseCase) ReplaceResume(ctx context.Context, id, filename string, data []byte) (*LeadOutput, error) {
	if filename == "" || len(data) == 0 {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: "resume file is required",
		}
	}

	lead, err := uc.Repo.UpdateResume(ctx, id, filename, data)
	if err != nil {
		return nil, mapRepoError(err, "failed to update resume")
	}
	return NewLeadOutput(lead), nil
}

// UpdateState sets the state unconditionally. Any valid state can follow
// any other; operators are allowed to move a lead back to PENDING.
func (uc *LeadAdminUseCase) UpdateState(ctx context.Context, id string, state entity.LeadState) (*LeadOutput, error) {
	if _, err := entity.ParseLeadState(state.String()); err != nil {
		return nil, &DomainError{
			Code:    CodeInvalidState,
			Message: err.Error(),
		}
	}

	lead, err := uc.Repo.UpdateState(ctx, id, state)
	if err != nil {
		return nil, mapRepoError(err, "failed to update state")
	}
	return NewLeadOutput(lead), nil
}

func mapRepoError(err error, msg string) error {
	if errors.Is(err, entity.ErrLeadNotFound) {
		return &DomainError{
			Code:    CodeLeadNotFound,
			Message: "lead not found",
		}
	}
	return &TechnicalError{
		Code:    "DATABASE_ERROR",
		Message: msg + ": " + err.Error(),
	}
}
