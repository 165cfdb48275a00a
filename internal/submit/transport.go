package submit

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sandeepkv93/regform/internal/form"
	"github.com/sandeepkv93/regform/internal/model"
	"github.com/sandeepkv93/regform/internal/storage"
)

// RepositoryTransport stores accepted submissions as registrations.
type RepositoryTransport struct {
	repo  storage.Repository
	now   func() time.Time
	newID func() string
	lastID string
}

func NewRepositoryTransport(repo storage.Repository) (*RepositoryTransport, error) {
	if repo == nil {
		return nil, errors.New("submit: nil repository")
	}
	return &RepositoryTransport{
		repo:  repo,
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.NewString() },
	}, nil
}

func (t *RepositoryTransport) SubmitForm(ctx context.Context, s form.Submission) error {
	reg := Registration(s, t.newID(), t.now())
	if err := t.repo.CreateRegistration(ctx, reg); err != nil {
		return fmt.Errorf("store registration: %w", err)
	}
	t.lastID = reg.ID
	log.Printf("registration stored id=%s activities=%d total=%d payment=%s", reg.ID, len(reg.ActivityIDs), reg.TotalCost, reg.PaymentMethod)
	return nil
}

// LastRegistrationID reports the id of the most recent stored registration.
func (t *RepositoryTransport) LastRegistrationID() string {
	return t.lastID
}

// Registration maps a submission onto the stored shape. Card details other
// than the last four digits are dropped, and only for credit card payments.
func Registration(s form.Submission, id string, at time.Time) storage.Registration {
	reg := storage.Registration{
		ID:            id,
		Name:          strings.TrimSpace(s.Name),
		Email:         strings.TrimSpace(s.Email),
		JobRole:       s.JobRole,
		Design:        s.Design,
		Color:         s.Color,
		PaymentMethod: string(s.PaymentMethod),
		TotalCost:     s.Aggregate.TotalCost,
		ActivityIDs:   append([]string(nil), s.ActivityIDs...),
		CreatedAt:     at,
	}
	if s.JobRole == model.JobRoleOther {
		reg.OtherJobRole = s.OtherJobRole
	}
	if s.PaymentMethod == model.PaymentCreditCard {
		reg.CardLast4 = lastFour(s.CardNumber)
	}
	return reg
}

func lastFour(card string) string {
	if len(card) <= 4 {
		return card
	}
	return card[len(card)-4:]
}
