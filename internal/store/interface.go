package store

import (
	"context"

	"github.com/prospecta/leadgen/internal/core/model"
)

// LeadStore persists lead records and the outcome of merge runs.
type LeadStore interface {
	UpsertLeads(ctx context.Context, leads []model.LeadRecord) error
	ActiveLeads(ctx context.Context) ([]model.LeadRecord, error)
	ApplyMergeUpdates(ctx context.Context, primaries []model.PrimaryUpdate, duplicates []model.DuplicateUpdate) error
	BuildIndices(ctx context.Context) error
	Close(ctx context.Context) error
}
