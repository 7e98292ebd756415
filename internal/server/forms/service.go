package forms

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/formhub/internal/common"
	"github.com/dmitrijs2005/formhub/internal/server/auth"
	"github.com/dmitrijs2005/formhub/internal/server/users"
	"github.com/google/uuid"
)

// Service implements form creation and listing for admins and anonymous
// submission ingestion.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create persists a new form owned by the authenticated caller. The owner
// id is always stamped from the verified claims, never from client input.
func (s *Service) Create(ctx context.Context, claims *auth.Claims, formName string, fields []FormField) (*Form, error) {

	if claims.Role != users.RoleAdmin {
		return nil, common.ErrorForbidden
	}

	if formName == "" || len(fields) == 0 {
		return nil, common.ErrorValidation
	}
	for _, f := range fields {
		if f.FieldName == "" || f.FieldType == "" {
			return nil, common.ErrorValidation
		}
	}

	form := &Form{
		AdminID:  claims.UserID,
		FormName: formName,
		Fields:   fields,
	}

	form, err := s.repo.Create(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("error creating form: %v", err)
	}

	return form, nil
}

// ListOwn returns every form owned by the authenticated admin, in creation
// order. An empty result is a valid outcome, not an error.
func (s *Service) ListOwn(ctx context.Context, claims *auth.Claims) ([]Form, error) {

	if claims.Role != users.RoleAdmin {
		return nil, common.ErrorForbidden
	}

	result, err := s.repo.ListByAdmin(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("error listing forms: %v", err)
	}

	return result, nil
}

// Submit appends an anonymous submission to the form. No authentication is
// required; anyone holding a form's id may submit.
func (s *Service) Submit(ctx context.Context, formID string, data map[string]any) error {

	// an id that is not a UUID cannot reference an existing form
	if _, err := uuid.Parse(formID); err != nil {
		return common.ErrorNotFound
	}

	if err := s.repo.AppendSubmission(ctx, formID, data); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error submitting form: %v", err)
	}

	return nil
}
