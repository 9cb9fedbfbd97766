package entity

import (
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrLeadAlreadyExists = errors.New("lead already exists for this email")
)

type LeadState string

const (
	StatePending    LeadState = "PENDING"
	StateReachedOut LeadState = "REACHED_OUT"
)

func ParseLeadState(s string) (LeadState, error) {
	switch LeadState(s) {
	case StatePending, StateReachedOut:
		return LeadState(s), nil
	}
	return "", fmt.Errorf("invalid lead state: %q", s)
}

func (s LeadState) String() string {
	return string(s)
}

func (s *LeadState) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseLeadState(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

type Lead struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	ResumeFilename string    `json:"resume_filename"`
	ResumeData     []byte    `json:"-"`
	State          LeadState `json:"state"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NormalizeEmail is the canonical form used wherever a lead email is
// compared or hashed. Identity derivation depends on it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// LeadIDFromEmail derives the lead id from a normalized email: the md5
// digest rendered as a UUID string. The digest is an identity key, not a
// security boundary; two submissions with the same email collide on id on
// purpose, which is how resubmission is detected.
func LeadIDFromEmail(normalizedEmail string) string {
	sum := md5.Sum([]byte(normalizedEmail))
	return uuid.UUID(sum).String()
}

// NewLead builds a pending lead from raw submission data. The email is
// normalized and the id derived from it here, so callers cannot create a
// lead whose id disagrees with its email.
func NewLead(firstName, lastName, email, resumeFilename string, resumeData []byte) (*Lead, error) {
	normalized := NormalizeEmail(email)
	lead := &Lead{
		ID:             LeadIDFromEmail(normalized),
		FirstName:      firstName,
		LastName:       lastName,
		Email:          normalized,
		ResumeFilename: resumeFilename,
		ResumeData:     resumeData,
		State:          StatePending,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.FirstName == "" {
		return errors.New("first name is required")
	}
	if l.LastName == "" {
		return errors.New("last name is required")
	}
	if l.Email == "" {
		return errors.New("email is required")
	}
	if l.ResumeFilename == "" {
		return errors.New("resume filename is required")
	}
	if len(l.ResumeData) == 0 {
		return errors.New("resume data is required")
	}
	return nil
}
