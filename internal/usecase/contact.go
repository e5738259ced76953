package usecase

import (
	"context"
	"fmt"

	"github.com/academiq/academiq/internal/domain/model"
	"github.com/academiq/academiq/internal/domain/repository"
)

// ContactUseCase encapsulates the contact inquiry workflow.
type ContactUseCase struct {
	contacts repository.ContactRepository
	notifier Notifier
}

// NewContactUseCase constructs ContactUseCase.
func NewContactUseCase(contacts repository.ContactRepository, notifier Notifier) *ContactUseCase {
	return &ContactUseCase{contacts: contacts, notifier: notifier}
}

// Submit validates the submission, persists the message and fires a
// notification. A model.ValidationErrors result means nothing was stored.
func (u *ContactUseCase) Submit(ctx context.Context, sub ContactSubmission) (*model.ContactMessage, error) {
	if errs := ValidateContact(sub); errs != nil {
		return nil, errs
	}

	msg, err := u.contacts.Create(ctx, model.ContactMessage{
		FullName:    sub.FullName,
		Email:       sub.Email,
		Phone:       sub.Phone,
		Subject:     sub.Subject,
		ServiceType: model.ContactServiceType(sub.ServiceType),
		Message:     sub.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}

	u.notifier.ContactReceived(ctx, msg)
	return msg, nil
}

// List returns contact messages, most recent first.
func (u *ContactUseCase) List(ctx context.Context, onlyUnread bool) ([]model.ContactMessage, error) {
	return u.contacts.List(ctx, onlyUnread)
}

// SetRead toggles the read flag of a message.
func (u *ContactUseCase) SetRead(ctx context.Context, id int64, read bool) error {
	return u.contacts.SetRead(ctx, id, read)
}
