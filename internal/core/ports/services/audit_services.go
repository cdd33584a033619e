package services

import (
	"context"

	"github.com/stpaulnss/auditeasy/internal/core/domain"
)

// TextGenerator is the outbound port to the external text-generation service
// used for the free-text compliance audit.
type TextGenerator interface {
	// GenerateContent returns the model's text for a prompt. It must return
	// an error wrapping apperrors.ErrAuthRequired when the service signals
	// that project authorization is missing.
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// AuditSvcFacade runs the external compliance audit over a ledger snapshot.
// The call never mutates ledger state; failures are converted to advisory
// text, so the returned string is always displayable. No retry and no
// re-entrancy guard: serializing concurrent calls is the caller's concern.
type AuditSvcFacade interface {
	RunComplianceAudit(ctx context.Context, transactions []domain.Transaction) string
}
