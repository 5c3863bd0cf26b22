package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/prospecta/leadgen/internal/core/model"
)

// MemgraphStore keeps leads as :Lead nodes in Memgraph (or any Bolt
// compatible graph database).
type MemgraphStore struct {
	Driver neo4j.DriverWithContext
}

func NewMemgraphStore(uri, username, password string) (*MemgraphStore, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, err
	}

	if err := driver.VerifyConnectivity(context.Background()); err != nil {
		return nil, err
	}

	log.Println("Connected to Memgraph")
	return &MemgraphStore{Driver: driver}, nil
}

func (s *MemgraphStore) Close(ctx context.Context) error {
	return s.Driver.Close(ctx)
}

func (s *MemgraphStore) executeQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, s.Driver, query, params, neo4j.EagerResultTransformer)
	if err != nil {
		return neo4j.EagerResult{}, fmt.Errorf("failed to execute query: %w", err)
	}
	return *result, nil
}

func (s *MemgraphStore) UpsertLeads(ctx context.Context, leads []model.LeadRecord) error {
	now := time.Now().UTC().Format(time.RFC3339)
	for _, l := range leads {
		_, err := s.executeQuery(ctx, SaveLeadQuery, map[string]interface{}{
			"id":           l.ID,
			"first_name":   l.FirstName,
			"last_name":    l.LastName,
			"company_name": l.CompanyName,
			"email":        l.Email,
			"linkedin_url": l.LinkedInURL,
			"updated_at":   now,
		})
		if err != nil {
			return fmt.Errorf("failed to save lead %s: %w", l.ID, err)
		}
	}
	return nil
}

// ActiveLeads returns every lead not yet folded into a primary, ordered by id.
func (s *MemgraphStore) ActiveLeads(ctx context.Context) ([]model.LeadRecord, error) {
	result, err := s.executeQuery(ctx, GetActiveLeadsQuery, map[string]interface{}{
		"merged_status": model.StatusMerged,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load leads: %w", err)
	}

	leads := make([]model.LeadRecord, 0, len(result.Records))
	for _, record := range result.Records {
		leads = append(leads, model.LeadRecord{
			ID:          recordString(record, "id"),
			FirstName:   recordString(record, "first_name"),
			LastName:    recordString(record, "last_name"),
			CompanyName: recordString(record, "company_name"),
			Email:       recordString(record, "email"),
			LinkedInURL: recordString(record, "linkedin_url"),
		})
	}
	return leads, nil
}

// ApplyMergeUpdates patches primaries first so a crash between the two
// passes never leaves a duplicate pointing at an unpatched primary.
func (s *MemgraphStore) ApplyMergeUpdates(ctx context.Context, primaries []model.PrimaryUpdate, duplicates []model.DuplicateUpdate) error {
	now := time.Now().UTC().Format(time.RFC3339)

	for _, p := range primaries {
		fields := make(map[string]interface{}, len(p.Fields))
		for k, v := range p.Fields {
			fields[k] = v
		}
		_, err := s.executeQuery(ctx, PatchPrimaryQuery, map[string]interface{}{
			"id":         p.LeadID,
			"fields":     fields,
			"updated_at": now,
		})
		if err != nil {
			return fmt.Errorf("failed to patch primary %s: %w", p.LeadID, err)
		}
	}

	for _, d := range duplicates {
		_, err := s.executeQuery(ctx, MarkMergedQuery, map[string]interface{}{
			"id":          d.LeadID,
			"status":      d.Status,
			"merged_into": d.MergedInto,
			"updated_at":  now,
		})
		if err != nil {
			return fmt.Errorf("failed to mark lead %s merged: %w", d.LeadID, err)
		}
	}
	return nil
}

func (s *MemgraphStore) BuildIndices(ctx context.Context) error {
	queries := []string{
		"CREATE INDEX ON :Lead(id);",
		"CREATE INDEX ON :Lead(email);",
		"CREATE INDEX ON :Lead(linkedin_url);",
		"CREATE INDEX ON :Lead(status);",
	}

	for _, q := range queries {
		_, err := s.executeQuery(ctx, q, nil)
		if err != nil {
			log.Printf("Warning: failed to create index '%s': %v", q, err)
			// Index might already exist.
		}
	}

	return nil
}

func recordString(record *neo4j.Record, key string) string {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return ""
	}
	s, _ := value.(string)
	return s
}
