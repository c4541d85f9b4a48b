package services_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gobooks/books_backend/internal/apperrors"
	"github.com/gobooks/books_backend/internal/core/domain"
	portsrepo "github.com/gobooks/books_backend/internal/core/ports/repositories"
	"github.com/gobooks/books_backend/internal/core/services"
)

// --- Mock SequenceRepository ---
type MockSequenceRepository struct {
	mock.Mock
}

// Ensure MockSequenceRepository implements portsrepo.SequenceRepositoryWithTx
var _ portsrepo.SequenceRepositoryWithTx = (*MockSequenceRepository)(nil)

func (m *MockSequenceRepository) NextDocumentNumberInTx(ctx context.Context, tx pgx.Tx, docType domain.DocumentType) (string, error) {
	args := m.Called(ctx, tx, docType)
	return args.String(0), args.Error(1)
}

func (m *MockSequenceRepository) FindSequence(ctx context.Context, docType domain.DocumentType) (*domain.NumberingSequence, error) {
	args := m.Called(ctx, docType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NumberingSequence), args.Error(1)
}

func (m *MockSequenceRepository) UpdateSequenceFormat(ctx context.Context, seq domain.NumberingSequence) error {
	args := m.Called(ctx, seq)
	return args.Error(0)
}

func (m *MockSequenceRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockSequenceRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockSequenceRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// countingSequenceRepo hands out strictly increasing counters under a
// mutex, standing in for the row lock the real repository takes.
type countingSequenceRepo struct {
	MockSequenceRepository
	mu   sync.Mutex
	next int64
	seq  domain.NumberingSequence
}

func (r *countingSequenceRepo) NextDocumentNumberInTx(ctx context.Context, tx pgx.Tx, docType domain.DocumentType) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := r.next
	r.next++
	return r.seq.FormatNumber(n), nil
}

func TestNextNumberInTx(t *testing.T) {
	repo := new(MockSequenceRepository)
	repo.On("NextDocumentNumberInTx", mock.Anything, nil, domain.Invoice).Return("INV-00042", nil)
	svc := services.NewNumberingService(repo)

	number, err := svc.NextNumberInTx(context.Background(), nil, domain.Invoice)
	assert.NoError(t, err)
	assert.Equal(t, "INV-00042", number)
	repo.AssertExpectations(t)
}

func TestNextNumberInTxConflictSurfaces(t *testing.T) {
	repo := new(MockSequenceRepository)
	repo.On("NextDocumentNumberInTx", mock.Anything, nil, domain.Invoice).Return("", apperrors.ErrConflict)
	svc := services.NewNumberingService(repo)

	_, err := svc.NextNumberInTx(context.Background(), nil, domain.Invoice)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	// The draw is attempted exactly once: retrying would burn a number if
	// the first draw had in fact committed.
	repo.AssertNumberOfCalls(t, "NextDocumentNumberInTx", 1)
}

func TestNextNumberInTxConcurrentDrawsAreDistinct(t *testing.T) {
	repo := &countingSequenceRepo{next: 1, seq: domain.DefaultSequence(domain.Invoice)}
	svc := services.NewNumberingService(repo)

	const workers = 20
	results := make(chan string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			number, err := svc.NextNumberInTx(context.Background(), nil, domain.Invoice)
			assert.NoError(t, err)
			results <- number
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool, workers)
	for number := range results {
		assert.False(t, seen[number], "number %s drawn twice", number)
		seen[number] = true
	}
	assert.Len(t, seen, workers)
}

func TestGetSequenceSynthesizesDefault(t *testing.T) {
	repo := new(MockSequenceRepository)
	repo.On("FindSequence", mock.Anything, domain.CreditNote).Return(nil, apperrors.ErrNotFound)
	svc := services.NewNumberingService(repo)

	seq, err := svc.GetSequence(context.Background(), domain.CreditNote)
	assert.NoError(t, err)
	assert.Equal(t, "CN", seq.Prefix)
	assert.Equal(t, int64(1), seq.NextNumber)
}

func TestGetSequenceExisting(t *testing.T) {
	repo := new(MockSequenceRepository)
	existing := &domain.NumberingSequence{DocumentType: domain.Bill, Prefix: "PB", Separator: "/", PaddingDigits: 4, NextNumber: 17}
	repo.On("FindSequence", mock.Anything, domain.Bill).Return(existing, nil)
	svc := services.NewNumberingService(repo)

	seq, err := svc.GetSequence(context.Background(), domain.Bill)
	assert.NoError(t, err)
	assert.Equal(t, existing, seq)
}

func TestUpdateSequenceFormatValidation(t *testing.T) {
	repo := new(MockSequenceRepository)
	svc := services.NewNumberingService(repo)

	_, err := svc.UpdateSequenceFormat(context.Background(), domain.Invoice, "", "-", 5, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation, "empty prefix must be rejected")

	_, err = svc.UpdateSequenceFormat(context.Background(), domain.Invoice, "INV", "-", 0, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation, "padding below 1 must be rejected")

	_, err = svc.UpdateSequenceFormat(context.Background(), domain.Invoice, "INV", "-", 11, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation, "padding above 10 must be rejected")

	repo.AssertNotCalled(t, "UpdateSequenceFormat", mock.Anything, mock.Anything)
}

func TestUpdateSequenceFormat(t *testing.T) {
	repo := new(MockSequenceRepository)
	want := domain.NumberingSequence{DocumentType: domain.Invoice, Prefix: "SALE", Separator: "/", PaddingDigits: 6}
	repo.On("UpdateSequenceFormat", mock.Anything, want).Return(nil)
	updated := &domain.NumberingSequence{DocumentType: domain.Invoice, Prefix: "SALE", Separator: "/", PaddingDigits: 6, NextNumber: 43}
	repo.On("FindSequence", mock.Anything, domain.Invoice).Return(updated, nil)
	svc := services.NewNumberingService(repo)

	seq, err := svc.UpdateSequenceFormat(context.Background(), domain.Invoice, "SALE", "/", 6, "user-1")
	assert.NoError(t, err)
	assert.Equal(t, updated, seq)
	repo.AssertExpectations(t)
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		seq  domain.NumberingSequence
		n    int64
		want string
	}{
		{domain.NumberingSequence{Prefix: "INV", Separator: "-", PaddingDigits: 5}, 42, "INV-00042"},
		{domain.NumberingSequence{Prefix: "INV", Separator: "-", PaddingDigits: 5}, 123456, "INV-123456"},
		{domain.NumberingSequence{Prefix: "CN", Separator: "/", PaddingDigits: 3}, 7, "CN/007"},
		{domain.NumberingSequence{Prefix: "BILL", Separator: "", PaddingDigits: 1}, 9, "BILL9"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s_%d", tc.want, tc.n), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.seq.FormatNumber(tc.n))
		})
	}
}
