package match

import (
	"sync"

	"github.com/prospecta/leadgen/internal/core/model"
)

// Breakdown keys used in MatchResult details and the similarity endpoint.
const (
	DetailFirstName = "first_name"
	DetailLastName  = "last_name"
	DetailCompany   = "company"
	DetailComposite = "composite"
)

// Similarity scores one pair of leads and returns the per-field breakdown
// plus the weighted composite. Pure: safe to call from any goroutine.
func Similarity(a, b model.LeadRecord, w Weights) map[string]float64 {
	fn := JaroWinkler(a.FirstName, b.FirstName)
	ln := JaroWinkler(a.LastName, b.LastName)
	co := JaroWinkler(a.CompanyName, b.CompanyName)
	return map[string]float64{
		DetailFirstName: fn,
		DetailLastName:  ln,
		DetailCompany:   co,
		DetailComposite: fn*w.FirstName + ln*w.LastName + co*w.Company,
	}
}

// FuzzyMatches scores every unordered pair within each blocking bucket and
// returns the pairs at or above the threshold, plus the borderline pairs
// inside the review band just below it. Each pair is considered exactly
// once, with the smaller id first, so the output is independent of bucket
// iteration order and of how many workers score the buckets.
func FuzzyMatches(leads []model.LeadRecord, cfg Config) (matches, borderline []model.MatchResult) {
	keys, buckets := blocks(leads)
	if len(keys) == 0 {
		return nil, nil
	}

	type bucketResult struct {
		matches    []model.MatchResult
		borderline []model.MatchResult
	}
	results := make([]bucketResult, len(keys))

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(keys) {
		workers = len(keys)
	}

	var wg sync.WaitGroup
	jobs := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				m, b := scoreBucket(buckets[keys[idx]], cfg)
				results[idx] = bucketResult{matches: m, borderline: b}
			}
		}()
	}
	for idx := range keys {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	for _, r := range results {
		matches = append(matches, r.matches...)
		borderline = append(borderline, r.borderline...)
	}
	return matches, borderline
}

// scoreBucket compares each pair within one bucket. Members arrive sorted
// by id, so i < j already yields the canonical pair ordering.
func scoreBucket(members []model.LeadRecord, cfg Config) (matches, borderline []model.MatchResult) {
	floor := cfg.Threshold - cfg.ReviewBand
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			breakdown := Similarity(members[i], members[j], cfg.Weights)
			composite := breakdown[DetailComposite]
			if composite < floor {
				continue
			}
			result := model.MatchResult{
				Lead1ID:    members[i].ID,
				Lead2ID:    members[j].ID,
				MatchType:  model.MatchTypeFuzzy,
				Confidence: composite,
				Details:    breakdown,
			}
			if composite >= cfg.Threshold {
				matches = append(matches, result)
			} else if cfg.ReviewBand > 0 {
				borderline = append(borderline, result)
			}
		}
	}
	return matches, borderline
}
