package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/lib/pq"

	"github.com/coderlevi/candidate-process/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, first_name, last_name, email, resume_filename, resume_data, state, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := r.DB.QueryRowContext(ctx, query,
		lead.ID,
		lead.FirstName,
		lead.LastName,
		lead.Email,
		lead.ResumeFilename,
		lead.ResumeData,
		lead.State.String(),
	).Scan(&lead.CreatedAt, &lead.UpdatedAt)

	if err != nil {
		// The primary key is derived from the email, so a unique violation
		// is the duplicate-submission signal. Two racing inserts for the
		// same email both land here; exactly one wins.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrLeadAlreadyExists
		}

		log.Printf("lead repository: insert failed: %v", err)
		return err
	}

	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `
		SELECT id, first_name, last_name, email, resume_filename, state, created_at, updated_at
		FROM leads
		WHERE id = $1
	`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, err
	}
	return lead, nil
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	// Ordered by id descending: stable, but hash-derived ids make it
	// arbitrary with respect to creation time.
	query := `
		SELECT id, first_name, last_name, email, resume_filename, state, created_at, updated_at
		FROM leads
		ORDER BY id DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

func (r *LeadRepository) FindResume(ctx context.Context, id string) (string, []byte, error) {
	query := `SELECT resume_filename, resume_data FROM leads WHERE id = $1`

	var filename string
	var data []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&filename, &data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, entity.ErrLeadNotFound
		}
		return "", nil, err
	}

	return filename, data, nil
}

func (r *LeadRepository) UpdateResume(ctx context.Context, id, filename string, data []byte) (*entity.Lead, error) {
	// A replaced resume always drops the lead back to PENDING.
	query := `
		UPDATE leads
		SET resume_filename = $2, resume_data = $3, state = 'PENDING', updated_at = NOW()
		WHERE id = $1
		RETURNING id, first_name, last_name, email, resume_filename, state, created_at, updated_at
	`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id, filename, data))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, err
	}
	return lead, nil
}

func (r *LeadRepository) UpdateState(ctx context.Context, id string, state entity.LeadState) (*entity.Lead, error) {
	query := `
		UPDATE leads
		SET state = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, first_name, last_name, email, resume_filename, state, created_at, updated_at
	`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id, state.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, err
	}
	return lead, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var state string

	err := row.Scan(
		&lead.ID,
		&lead.FirstName,
		&lead.LastName,
		&lead.Email,
		&lead.ResumeFilename,
		&state,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	parsed, err := entity.ParseLeadState(state)
	if err != nil {
		return nil, err
	}
	lead.State = parsed

	return &lead, nil
}
