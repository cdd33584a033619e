package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/stpaulnss/auditeasy/internal/apperrors"
	"github.com/stpaulnss/auditeasy/internal/core/domain"
	"github.com/stpaulnss/auditeasy/internal/core/services"
)

// stubGenerator captures the prompt and replays a canned response.
type stubGenerator struct {
	prompt string
	text   string
	err    error
}

func (s *stubGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.text, s.err
}

func TestAuditService_RunComplianceAudit(t *testing.T) {
	txs := []domain.Transaction{
		{TransactionID: "txn-1", VoucherNumber: "V-01", Type: domain.Expense, Amount: decimal.NewFromInt(450)},
	}

	t.Run("returns the generated report verbatim", func(t *testing.T) {
		gen := &stubGenerator{text: "## CRITICAL WARNINGS\nNone."}
		svc := services.NewAuditService(gen)

		out := svc.RunComplianceAudit(context.Background(), txs)
		assert.Equal(t, "## CRITICAL WARNINGS\nNone.", out)
	})

	t.Run("prompt embeds the ledger snapshot", func(t *testing.T) {
		gen := &stubGenerator{text: "ok"}
		svc := services.NewAuditService(gen)

		svc.RunComplianceAudit(context.Background(), txs)
		assert.Contains(t, gen.prompt, `"voucherNumber":"V-01"`)
		assert.Contains(t, gen.prompt, "NSS Regional Auditor")
	})

	t.Run("auth failure maps to the auth advisory", func(t *testing.T) {
		gen := &stubGenerator{err: fmt.Errorf("%w: status 403", apperrors.ErrAuthRequired)}
		svc := services.NewAuditService(gen)

		out := svc.RunComplianceAudit(context.Background(), txs)
		assert.Equal(t, services.AuthRequiredAdvisory, out)
	})

	t.Run("other failures map to the generic advisory", func(t *testing.T) {
		gen := &stubGenerator{err: fmt.Errorf("connection refused")}
		svc := services.NewAuditService(gen)

		out := svc.RunComplianceAudit(context.Background(), txs)
		assert.Contains(t, out, "unexpected technical issue")
	})
}
