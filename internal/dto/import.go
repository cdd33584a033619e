package dto

import "github.com/stpaulnss/auditeasy/internal/core/domain"

// ImportRow is one loosely-typed spreadsheet row keyed by header name.
// Column naming varies between source files; the import service resolves the
// known aliases.
type ImportRow map[string]string

// ImportResult is the outcome of normalizing a batch of rows. Rows never
// abort the batch; DefaultedRows counts how many needed fallback values
// (unparseable amount or date, missing voucher).
type ImportResult struct {
	Transactions  []domain.Transaction `json:"transactions"`
	DefaultedRows int                  `json:"defaultedRows"`
}
