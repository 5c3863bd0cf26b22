//go:build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prospecta/leadgen/internal/core"
	"github.com/prospecta/leadgen/internal/core/match"
	"github.com/prospecta/leadgen/internal/core/model"
	"github.com/prospecta/leadgen/internal/store"
)

// Round-trips a batch through Memgraph: save, load, analyze, merge, apply,
// and check the merged record is gone from the active set.
func TestStoreRoundTrip(t *testing.T) {
	_ = godotenv.Load("../../.env")

	uri := os.Getenv("MEMGRAPH_URI")
	if uri == "" {
		t.Skip("MEMGRAPH_URI not set, skipping store integration test")
	}

	s, err := store.NewMemgraphStore(uri, os.Getenv("MEMGRAPH_USER"), os.Getenv("MEMGRAPH_PASSWORD"))
	require.NoError(t, err)
	ctx := context.Background()
	defer s.Close(ctx)

	require.NoError(t, s.BuildIndices(ctx))

	run := uuid.New().String()[:8]
	id1, id2, id3 := "it-"+run+"-1", "it-"+run+"-2", "it-"+run+"-3"

	leads := []model.LeadRecord{
		{ID: id1, FirstName: "Alice", LastName: "Chen", CompanyName: "Initech", LinkedInURL: "https://www.linkedin.com/in/alice-chen/"},
		{ID: id2, FirstName: "Alice", CompanyName: "Initech Inc", Email: "alice@initech.com", LinkedInURL: "http://linkedin.com/in/alice-chen"},
		{ID: id3, FirstName: "Zara", LastName: "Okafor", CompanyName: "Globex"},
	}
	require.NoError(t, s.UpsertLeads(ctx, leads))

	stored, err := s.ActiveLeads(ctx)
	require.NoError(t, err)

	batch := make([]model.LeadRecord, 0, len(leads))
	for _, l := range stored {
		if l.ID == id1 || l.ID == id2 || l.ID == id3 {
			batch = append(batch, l)
		}
	}
	require.Len(t, batch, 3)

	engine, err := core.NewEngine(match.DefaultConfig())
	require.NoError(t, err)

	report, err := engine.AnalyzeLeads(batch, 0)
	require.NoError(t, err)
	require.Len(t, report.DuplicateGroups, 1)
	assert.Equal(t, model.MatchTypeLinkedIn, report.DuplicateGroups[0].MatchType)

	mergeReport, err := engine.MergeDuplicateGroups(batch, report.DuplicateGroups)
	require.NoError(t, err)
	require.NoError(t, s.ApplyMergeUpdates(ctx, mergeReport.PrimaryUpdates, mergeReport.DuplicateUpdates))

	after, err := s.ActiveLeads(ctx)
	require.NoError(t, err)

	active := make(map[string]model.LeadRecord)
	for _, l := range after {
		active[l.ID] = l
	}
	primary := mergeReport.MergeResults[0].PrimaryID
	dup := mergeReport.MergeResults[0].DuplicateIDs[0]
	assert.Contains(t, active, primary)
	assert.NotContains(t, active, dup)
	assert.Contains(t, active, id3)
	assert.Equal(t, "alice@initech.com", active[primary].Email)
}
