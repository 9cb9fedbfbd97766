package usecase

import (
	"context"

	"github.com/coderlevi/candidate-process/internal/entity"
)

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	FindAll(ctx context.Context) ([]*entity.Lead, error)
	FindResume(ctx context.Context, id string) (filename string, data []byte, err error)
	UpdateResume(ctx context.Context, id, filename string, data []byte) (*entity.Lead, error)
	UpdateState(ctx context.Context, id string, state entity.LeadState) (*entity.Lead, error)
}

// Mailer is the notification sink. Delivery is best-effort; callers must
// not let a send failure change the outcome of the operation that
// triggered it.
type Mailer interface {
	Send(to, subject, body string) error
}
