package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prospecta/leadgen/internal/core/model"
)

func TestExactDuplicatesLinkedIn(t *testing.T) {
	leads := []model.LeadRecord{
		{ID: "a", FirstName: "John", LinkedInURL: "https://linkedin.com/in/johndoe/"},
		{ID: "b", FirstName: "Johnny", LinkedInURL: "www.linkedin.com/in/johndoe"},
		{ID: "c", FirstName: "Carol", LinkedInURL: "https://linkedin.com/in/carol"},
		{ID: "d", FirstName: "Dave"}, // no URL: excluded, never grouped on absence
	}

	groups := ExactDuplicates(leads, LinkedInKey)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"a", "b"}, groups[0].LeadIDs)
	assert.Equal(t, model.MatchTypeLinkedIn, groups[0].MatchType)
	assert.Equal(t, 1.0, groups[0].Confidence)
}

func TestExactDuplicatesEmail(t *testing.T) {
	leads := []model.LeadRecord{
		{ID: "1", Email: " John@Example.com "},
		{ID: "2", Email: "john@example.com"},
		{ID: "3", Email: "jane@example.com"},
		{ID: "4", Email: ""},
		{ID: "5", Email: ""},
	}

	groups := ExactDuplicates(leads, EmailKey)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"1", "2"}, groups[0].LeadIDs)
	assert.Equal(t, model.MatchTypeEmail, groups[0].MatchType)
}

func TestBlockingKey(t *testing.T) {
	key1, ok := BlockingKey(model.LeadRecord{ID: "1", FirstName: "Jon", CompanyName: "Acme Corp"})
	require.True(t, ok)
	key2, ok := BlockingKey(model.LeadRecord{ID: "2", FirstName: "John", CompanyName: "ACME Corporation"})
	require.True(t, ok)
	assert.Equal(t, key1, key2)
	assert.Equal(t, "J500:acm", key1)

	_, ok = BlockingKey(model.LeadRecord{ID: "3", CompanyName: "Acme Corp"})
	assert.False(t, ok, "missing first name produces no blocking key")
	_, ok = BlockingKey(model.LeadRecord{ID: "4", FirstName: "Jon", CompanyName: "AB"})
	assert.False(t, ok, "short company name produces no blocking key")
}

func TestFuzzyMatchesEmitsAboveThreshold(t *testing.T) {
	leads := []model.LeadRecord{
		{ID: "1", FirstName: "Jon", LastName: "Smith", CompanyName: "Acme Corp"},
		{ID: "2", FirstName: "John", LastName: "Smith", CompanyName: "Acme Corp"},
		{ID: "3", FirstName: "Zara", LastName: "Quinn", CompanyName: "Initech"},
	}

	matches, borderline := FuzzyMatches(leads, DefaultConfig())
	require.Len(t, matches, 1)
	assert.Empty(t, borderline)

	m := matches[0]
	assert.Equal(t, "1", m.Lead1ID)
	assert.Equal(t, "2", m.Lead2ID)
	assert.Equal(t, model.MatchTypeFuzzy, m.MatchType)
	assert.GreaterOrEqual(t, m.Confidence, 0.85)
	assert.Equal(t, m.Confidence, m.Details[DetailComposite])
	assert.Equal(t, 1.0, m.Details[DetailLastName])
}

func TestSimilarityCompanyWeightMatters(t *testing.T) {
	w := DefaultConfig().Weights

	same := Similarity(
		model.LeadRecord{FirstName: "Jon", LastName: "Smith", CompanyName: "Acme Corp"},
		model.LeadRecord{FirstName: "John", LastName: "Smith", CompanyName: "Acme Corp"},
		w,
	)
	assert.GreaterOrEqual(t, same[DetailComposite], 0.85)

	// Identical names but unrelated companies must stay below threshold.
	diff := Similarity(
		model.LeadRecord{FirstName: "Jon", LastName: "Smith", CompanyName: "Google"},
		model.LeadRecord{FirstName: "John", LastName: "Smith", CompanyName: "Microsoft"},
		w,
	)
	assert.Less(t, diff[DetailComposite], 0.85)
}

func TestSimilarityCompositeMonotonic(t *testing.T) {
	w := DefaultConfig().Weights

	base := Similarity(
		model.LeadRecord{FirstName: "Jon", LastName: "Smith", CompanyName: "Acme"},
		model.LeadRecord{FirstName: "John", LastName: "Smyth", CompanyName: "Acme"},
		w,
	)
	// Raising one component similarity (identical last name) never lowers
	// the composite.
	better := Similarity(
		model.LeadRecord{FirstName: "Jon", LastName: "Smith", CompanyName: "Acme"},
		model.LeadRecord{FirstName: "John", LastName: "Smith", CompanyName: "Acme"},
		w,
	)
	assert.GreaterOrEqual(t, better[DetailComposite], base[DetailComposite])
}

func TestFuzzyMatchesDeterministicAcrossWorkerCounts(t *testing.T) {
	var leads []model.LeadRecord
	names := []string{"Jon", "John", "Jan", "Jane", "Mike", "Mick", "Micah"}
	companies := []string{"Acme Corp", "Acme Corporation", "Initech", "Initrode"}
	for i, n := range names {
		for j, c := range companies {
			leads = append(leads, model.LeadRecord{
				ID:          string(rune('a'+i)) + string(rune('0'+j)),
				FirstName:   n,
				LastName:    "Smith",
				CompanyName: c,
			})
		}
	}

	serial := DefaultConfig()
	serial.Workers = 1
	parallel := DefaultConfig()
	parallel.Workers = 8

	m1, b1 := FuzzyMatches(leads, serial)
	m2, b2 := FuzzyMatches(leads, parallel)
	assert.Equal(t, m1, m2)
	assert.Equal(t, b1, b2)
}

func TestFuzzyBorderlineBand(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Threshold = 0.99
	cfg.ReviewBand = 0.10

	leads := []model.LeadRecord{
		{ID: "1", FirstName: "Jon", LastName: "Smith", CompanyName: "Acme Corp"},
		{ID: "2", FirstName: "John", LastName: "Smith", CompanyName: "Acme Corp"},
	}

	matches, borderline := FuzzyMatches(leads, cfg)
	assert.Empty(t, matches)
	require.Len(t, borderline, 1)
	assert.Less(t, borderline[0].Confidence, cfg.Threshold)
	assert.GreaterOrEqual(t, borderline[0].Confidence, cfg.Threshold-cfg.ReviewBand)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	bad := DefaultConfig()
	bad.Weights.Company = 0.5
	assert.Error(t, bad.Validate(), "weights must sum to 1")

	bad = DefaultConfig()
	bad.Threshold = 1.5
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.ReviewBand = 0.9
	assert.Error(t, bad.Validate())
}
