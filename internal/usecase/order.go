package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	domainErrors "github.com/academiq/academiq/internal/domain/errors"
	"github.com/academiq/academiq/internal/domain/model"
	"github.com/academiq/academiq/internal/domain/repository"
)

// MaxAttachmentSize caps uploaded attachments at 50 MiB.
const MaxAttachmentSize = 50 << 20

const (
	msgBadAttachmentType = "Invalid file type. Allowed: PDF, DOC, DOCX, TXT, ZIP, RAR."
	msgAttachmentTooBig  = "File size exceeds the 50 MB limit."
)

var allowedAttachmentExts = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
	".txt":  {},
	".zip":  {},
	".rar":  {},
}

// Attachment carries an uploaded file through validation into storage.
type Attachment struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

// AttachmentStore persists attachment blobs and returns their media-relative
// path.
type AttachmentStore interface {
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
}

// Notifier delivers best-effort notifications about new submissions. Failures
// are the implementation's problem; callers never observe them.
type Notifier interface {
	OrderReceived(ctx context.Context, order *model.OrderRequest)
	ContactReceived(ctx context.Context, msg *model.ContactMessage)
}

// OrderUseCase encapsulates the order intake workflow and status lifecycle.
type OrderUseCase struct {
	orders      repository.OrderRepository
	attachments AttachmentStore
	notifier    Notifier
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, attachments AttachmentStore, notifier Notifier) *OrderUseCase {
	return &OrderUseCase{orders: orders, attachments: attachments, notifier: notifier}
}

// Submit validates the submission, persists a pending order request and fires
// a notification. A model.ValidationErrors result means nothing was stored;
// any other error is a storage failure.
func (u *OrderUseCase) Submit(ctx context.Context, sub OrderSubmission, att *Attachment) (*model.OrderRequest, error) {
	errs := model.ValidationErrors{}
	if fieldErrs := ValidateOrder(sub); fieldErrs != nil {
		errs.Merge(fieldErrs)
	}
	if att != nil {
		// Both attachment checks run; a bad extension does not hide an
		// oversize file.
		errs.Merge(validateAttachment(att))
	}
	if errs.HasErrors() {
		return nil, errs
	}

	var attachmentPath string
	if att != nil {
		path, err := u.attachments.Save(ctx, att.Filename, att.Reader)
		if err != nil {
			return nil, fmt.Errorf("store attachment: %w", err)
		}
		attachmentPath = path
	}

	order, err := u.orders.Create(ctx, model.OrderRequest{
		FullName:    sub.FullName,
		Email:       sub.Email,
		Phone:       sub.Phone,
		ServiceType: model.OrderServiceType(sub.ServiceType),
		Message:     sub.Message,
		Attachment:  attachmentPath,
	})
	if err != nil {
		return nil, fmt.Errorf("create order request: %w", err)
	}

	u.notifier.OrderReceived(ctx, order)
	return order, nil
}

func validateAttachment(att *Attachment) model.ValidationErrors {
	errs := model.ValidationErrors{}
	ext := strings.ToLower(filepath.Ext(att.Filename))
	if _, ok := allowedAttachmentExts[ext]; !ok {
		errs.Add("attachment", msgBadAttachmentType)
	}
	if att.Size > MaxAttachmentSize {
		errs.Add("attachment", msgAttachmentTooBig)
	}
	if !errs.HasErrors() {
		return nil
	}
	return errs
}

// Get returns a stored order request.
func (u *OrderUseCase) Get(ctx context.Context, id int64) (*model.OrderRequest, error) {
	return u.orders.GetByID(ctx, id)
}

// List returns order requests, most recent first.
func (u *OrderUseCase) List(ctx context.Context) ([]model.OrderRequest, error) {
	return u.orders.List(ctx)
}

// ChangeStatus applies an operator-triggered lifecycle transition after
// checking it against the legal-transition predicate.
func (u *OrderUseCase) ChangeStatus(ctx context.Context, id int64, next model.OrderStatus) (*model.OrderRequest, error) {
	if !next.Valid() {
		return nil, domainErrors.ErrInvalidTransition
	}

	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, domainErrors.ErrInvalidTransition
	}

	if err := u.orders.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	return u.orders.GetByID(ctx, id)
}
