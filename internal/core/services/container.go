package services

import (
	portsrepo "github.com/stpaulnss/auditeasy/internal/core/ports/repositories"
	portssvc "github.com/stpaulnss/auditeasy/internal/core/ports/services"
)

// ServicesContainer holds all service instances for dependency injection.
type ServicesContainer struct {
	Voucher   portssvc.VoucherSvcFacade
	Ledger    portssvc.LedgerSvcFacade
	Reporting portssvc.ReportingSvcFacade
	Import    portssvc.ImportSvcFacade
	Audit     portssvc.AuditSvcFacade
	Settings  portssvc.SettingsSvcFacade
}

// NewServicesContainer wires the core services onto their collaborators.
func NewServicesContainer(
	ledgerRepo portsrepo.LedgerRepository,
	profileRepo portsrepo.ProfileRepository,
	generator portssvc.TextGenerator,
) *ServicesContainer {
	voucherSvc := NewVoucherService()
	return &ServicesContainer{
		Voucher:   voucherSvc,
		Ledger:    NewLedgerService(ledgerRepo, voucherSvc),
		Reporting: NewReportingService(),
		Import:    NewImportService(),
		Audit:     NewAuditService(generator),
		Settings:  NewSettingsService(profileRepo),
	}
}
