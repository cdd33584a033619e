package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/stpaulnss/auditeasy/internal/core/domain"
)

func TestTransaction_SignedAmount(t *testing.T) {
	income := domain.Transaction{Type: domain.Income, Amount: decimal.NewFromInt(2000)}
	expense := domain.Transaction{Type: domain.Expense, Amount: decimal.NewFromInt(300)}

	assert.Equal(t, "2000", income.SignedAmount().String())
	assert.Equal(t, "-300", expense.SignedAmount().String())
}

func TestTransaction_IsCash(t *testing.T) {
	assert.True(t, domain.Transaction{PaymentMode: domain.ModeCash}.IsCash())
	assert.False(t, domain.Transaction{PaymentMode: domain.ModeCheque}.IsCash())
	assert.False(t, domain.Transaction{PaymentMode: domain.ModeOnline}.IsCash())
}

func TestTransaction_CostPerHead(t *testing.T) {
	tea := domain.Transaction{Amount: decimal.NewFromInt(450), VolunteerCount: 18}
	perHead, ok := tea.CostPerHead()
	assert.True(t, ok)
	assert.Equal(t, "25", perHead.String())

	noCount := domain.Transaction{Amount: decimal.NewFromInt(450)}
	_, ok = noCount.CostPerHead()
	assert.False(t, ok)
}

func TestIsValidAccountHead(t *testing.T) {
	for _, h := range domain.AccountHeads() {
		assert.True(t, domain.IsValidAccountHead(string(h)))
	}
	assert.False(t, domain.IsValidAccountHead("Petty Cash"))
	assert.False(t, domain.IsValidAccountHead(""))
}
