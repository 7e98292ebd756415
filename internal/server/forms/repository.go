package forms

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, form *Form) (*Form, error)

	// ListByAdmin returns the admin's forms in creation order, with
	// submissions loaded.
	ListByAdmin(ctx context.Context, adminID string) ([]Form, error)

	// AppendSubmission atomically appends a submission to the form, or
	// returns common.ErrorNotFound if the form does not exist. The append
	// must be a single store-level operation so concurrent submissions
	// never overwrite one another.
	AppendSubmission(ctx context.Context, formID string, data map[string]any) error
}
