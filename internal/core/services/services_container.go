package services

import (
	portsrepo "github.com/gobooks/books_backend/internal/core/ports/repositories"
	portssvc "github.com/gobooks/books_backend/internal/core/ports/services"
	"github.com/gobooks/books_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Party service first since documents and payments validate against it
	container.Party = NewPartyService(repos.PartyRepo)

	container.Numbering = NewNumberingService(repos.SequenceRepo)
	container.Document = NewDocumentService(
		repos.DocumentRepo,
		container.Party,
		WithHomeState(cfg.CompanyState),
	)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.DocumentRepo, container.Party)
	container.Statement = NewStatementService(repos.StatementRepo, repos.PartyRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.PartySvcFacade    = (*partyService)(nil)
	_ portssvc.DocumentSvcFacade = (*documentService)(nil)
	_ portssvc.PaymentSvcFacade  = (*paymentService)(nil)
	_ portssvc.NumberingSvc      = (*numberingService)(nil)
	_ portssvc.StatementSvc      = (*statementService)(nil)
)
