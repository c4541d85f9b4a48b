package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/gobooks/books_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	partyRepo := newPgxPartyRepository(dbPool)
	sequenceRepo := newPgxSequenceRepository(dbPool)
	documentRepo := newPgxDocumentRepository(dbPool, sequenceRepo)
	paymentRepo := newPgxPaymentRepository(dbPool, documentRepo)
	statementRepo := newStatementRepository(dbPool)

	return portsrepo.RepositoryProvider{
		PartyRepo:     partyRepo,
		DocumentRepo:  documentRepo,
		PaymentRepo:   paymentRepo,
		SequenceRepo:  sequenceRepo,
		StatementRepo: statementRepo,
	}
}
