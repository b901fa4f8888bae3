package persistence

import (
	"context"
	"sort"
	"time"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
)

// ObligationRepository persists debts and loans, each kind backed by its
// own collection in the document store.
type ObligationRepository struct {
	store     RecordStore
	resolver  *SchemaResolver
	databases map[entity.ObligationKind]string
}

// NewObligationRepository creates a new obligation repository.
func NewObligationRepository(store RecordStore, resolver *SchemaResolver, debtsDatabaseID, loansDatabaseID string) *ObligationRepository {
	return &ObligationRepository{
		store:    store,
		resolver: resolver,
		databases: map[entity.ObligationKind]string{
			entity.ObligationKindDebt: debtsDatabaseID,
			entity.ObligationKindLoan: loansDatabaseID,
		},
	}
}

// Create writes a new debt or loan record.
func (r *ObligationRepository) Create(ctx context.Context, obligation *entity.Obligation) (*entity.Obligation, error) {
	databaseID := r.databases[obligation.Kind]
	fields := r.resolver.Resolve(ctx, databaseID)
	page, err := r.store.CreatePage(ctx, databaseID, obligationWriteProperties(obligation, fields))
	if err != nil {
		return nil, err
	}
	return normalizeObligation(page, obligation.Kind, fields, time.Now()), nil
}

// List retrieves all non-archived obligations of a kind, newest first.
func (r *ObligationRepository) List(ctx context.Context, kind entity.ObligationKind) ([]*entity.Obligation, error) {
	databaseID := r.databases[kind]
	fields := r.resolver.Resolve(ctx, databaseID)
	pages, err := listAll(ctx, r.store, databaseID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	obligations := make([]*entity.Obligation, 0, len(pages))
	for i := range pages {
		obligations = append(obligations, normalizeObligation(&pages[i], kind, fields, now))
	}
	sort.SliceStable(obligations, func(i, j int) bool {
		return obligations[i].OccurredAt.After(obligations[j].OccurredAt)
	})
	return obligations, nil
}

// FindByID retrieves one obligation by id, archived or not.
func (r *ObligationRepository) FindByID(ctx context.Context, kind entity.ObligationKind, id string) (*entity.Obligation, error) {
	fields := r.resolver.Resolve(ctx, r.databases[kind])
	page, err := r.store.RetrievePage(ctx, id)
	if err != nil {
		return nil, err
	}
	return normalizeObligation(page, kind, fields, time.Now()), nil
}

// Update replaces the editable fields of an existing obligation. The
// response page round-trips through the normalizer, so the returned entity
// carries the derived remaining, progress, and status.
func (r *ObligationRepository) Update(ctx context.Context, obligation *entity.Obligation) (*entity.Obligation, error) {
	fields := r.resolver.Resolve(ctx, r.databases[obligation.Kind])
	page, err := r.store.UpdatePage(ctx, obligation.ID, obligationWriteProperties(obligation, fields))
	if err != nil {
		return nil, err
	}
	return normalizeObligation(page, obligation.Kind, fields, time.Now()), nil
}

// Archive soft-deletes an obligation.
func (r *ObligationRepository) Archive(ctx context.Context, kind entity.ObligationKind, id string) error {
	return r.store.ArchivePage(ctx, id)
}

var _ adapter.ObligationRepository = (*ObligationRepository)(nil)
