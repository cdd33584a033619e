package services

import "github.com/stpaulnss/auditeasy/internal/dto"

// ImportSvcFacade normalizes loosely-typed external rows into transaction
// records. Unparseable values fall back to defaults rather than aborting the
// batch; imported rows do not go through voucher sequencing.
type ImportSvcFacade interface {
	Normalize(rows []dto.ImportRow, actor string) dto.ImportResult
}
