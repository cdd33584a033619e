package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stpaulnss/auditeasy/internal/apperrors"
	"github.com/stpaulnss/auditeasy/internal/core/domain"
	portssvc "github.com/stpaulnss/auditeasy/internal/core/ports/services"
)

// AuthRequiredAdvisory is the sentinel shown when the external auditor needs
// paid project authorization. Callers match on the ERROR_AUTH_REQUIRED prefix.
const AuthRequiredAdvisory = "ERROR_AUTH_REQUIRED: The compliance auditor requires a paid project authorization. Configure GENAI_API_KEY with an authorized key and retry."

const failureAdvisory = "The compliance auditor encountered an unexpected technical issue. Please verify your internet connection or try again later."

const compliancePrompt = `Role: Senior Chartered Accountant & NSS Regional Auditor for Mumbai University.

Data Source: Institutional Ledger (JSON): %s

Task: Perform a deep-dive compliance audit based on the following strict NSS norms:

1. FINANCIAL CAPS (Regular Activities):
   - Refreshment: Max ₹25-30 per volunteer per activity.
   - Honorarium: Max ₹500 per guest speaker.
   - Traveling: Must be supported by specific purpose.

2. SPECIAL CAMPING (7-Day Residential):
   - Per Camper Daily Rate: Total expenditure / (Campers * 7 days). Should be ~₹450-₹500.
   - Prohibited: No "Misc" expenditure over 10%% of total camp budget.

3. ACCOUNTING INTEGRITY:
   - Sequence: Check for gaps in Voucher (V-) or Receipt (R-) numbers.
   - Chronology: Flag any expenses made before the corresponding Grant Receipt date.
   - Verification: Note which items are marked 'Audit Verified' vs 'Pending'.

Format your response in Markdown with clear sections:
- CRITICAL WARNINGS (Red Flags)
- COMPLIANCE SCORE (0-100)
- RECOMMENDATIONS FOR PROGRAMME OFFICER
- BUDGETARY INSIGHTS`

// auditService forwards a ledger snapshot to the external text-generation
// service. It reads only; failures become advisory text and never reach the
// ledger.
type auditService struct {
	BaseService
	generator portssvc.TextGenerator
}

// NewAuditService creates a new AuditService.
func NewAuditService(generator portssvc.TextGenerator) portssvc.AuditSvcFacade {
	return &auditService{generator: generator}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// RunComplianceAudit implements portssvc.AuditSvcFacade.
func (s *auditService) RunComplianceAudit(ctx context.Context, transactions []domain.Transaction) string {
	snapshot, err := json.Marshal(transactions)
	if err != nil {
		s.LogError(ctx, err, "Failed to serialize ledger for compliance audit")
		return failureAdvisory
	}

	prompt := fmt.Sprintf(compliancePrompt, string(snapshot))
	text, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		s.LogError(ctx, err, "Compliance audit call failed")
		if errors.Is(err, apperrors.ErrAuthRequired) {
			return AuthRequiredAdvisory
		}
		return failureAdvisory
	}
	return text
}
