// Package core exposes the duplicate-detection engine as four operations
// consumed by the tool layer. Everything here is pure computation over an
// in-memory batch: no I/O, no state between runs, safe to call concurrently
// on disjoint batches and idempotent on the same one.
package core

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/prospecta/leadgen/internal/core/group"
	"github.com/prospecta/leadgen/internal/core/match"
	"github.com/prospecta/leadgen/internal/core/merge"
	"github.com/prospecta/leadgen/internal/core/model"
)

type Engine struct {
	Match match.Config
	Merge merge.Options
}

func NewEngine(cfg match.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid match config: %w", err)
	}
	return &Engine{Match: cfg}, nil
}

// guard converts a panic in the operation body into a structured internal
// error so nothing crosses the tool boundary as an unhandled failure.
func guard(err *error) {
	if r := recover(); r != nil {
		*err = internalError("unexpected failure: %v", r)
	}
}

// AnalyzeLeads runs the full pipeline over one batch: exact matching on
// normalized LinkedIn URLs and emails, blocked fuzzy matching over the
// remainder, union-find grouping, and cross-method reconciliation.
// threshold overrides the configured fuzzy threshold when positive.
func (e *Engine) AnalyzeLeads(leads []model.LeadRecord, threshold float64) (report *model.AnalysisReport, err error) {
	defer guard(&err)

	if len(leads) == 0 {
		return nil, invalidInput("leads batch is empty")
	}

	cfg := e.Match.WithThreshold(threshold)
	if verr := cfg.Validate(); verr != nil {
		return nil, invalidInput("%v", verr)
	}

	// Unusable records are skipped from indexing and counted as unique.
	usable := make([]model.LeadRecord, 0, len(leads))
	for _, l := range leads {
		if l.Usable() {
			usable = append(usable, l)
		}
	}

	linkedinGroups := match.ExactDuplicates(usable, match.LinkedInKey)
	emailGroups := match.ExactDuplicates(usable, match.EmailKey)

	// Records already placed in an exact-match group are never re-compared
	// by the fuzzy stage.
	exactIDs := match.GroupedIDs(linkedinGroups, emailGroups)
	candidates := make([]model.LeadRecord, 0, len(usable))
	for _, l := range usable {
		if !exactIDs[l.ID] {
			candidates = append(candidates, l)
		}
	}

	fuzzyMatches, borderline := match.FuzzyMatches(candidates, cfg)
	fuzzyGroups := group.FromMatches(fuzzyMatches, model.MatchTypeFuzzy)

	groups := group.Reconcile(linkedinGroups, emailGroups, fuzzyGroups)

	report = &model.AnalysisReport{
		RunID:           uuid.New().String(),
		TotalChecked:    len(leads),
		DuplicateGroups: groups,
		BorderlinePairs: borderline,
	}

	grouped := 0
	for _, g := range groups {
		grouped += g.Size()
		extras := g.Size() - 1
		report.TotalDuplicates += extras
		if g.MatchType == model.MatchTypeFuzzy {
			report.FuzzyDuplicates += extras
		} else {
			report.ExactDuplicates += extras
		}
	}
	report.UniqueLeads = len(leads) - grouped
	report.DuplicateRate = float64(report.TotalDuplicates) / float64(len(leads))

	return report, nil
}

// MergeDuplicateGroups computes a MergeResult per group plus the update
// batches for the persistence layer. Groups smaller than two members are
// skipped silently, not errored.
func (e *Engine) MergeDuplicateGroups(leads []model.LeadRecord, groups []model.DuplicateGroup) (report *model.MergeReport, err error) {
	defer guard(&err)

	if len(leads) == 0 {
		return nil, invalidInput("leads batch is empty")
	}
	if len(groups) == 0 {
		return nil, invalidInput("no duplicate groups supplied")
	}

	index := model.LeadIndex(leads)

	results := make([]model.MergeResult, 0, len(groups))
	totalMerged := 0
	for _, g := range groups {
		if g.Size() < 2 {
			continue
		}
		result, ok := merge.Group(g, index, e.Merge)
		if !ok {
			continue
		}
		results = append(results, result)
		totalMerged += len(result.DuplicateIDs)
	}

	primaries, duplicates := merge.PrepareDatabaseUpdates(results)

	return &model.MergeReport{
		GroupsProcessed:  len(groups),
		MergesPerformed:  len(results),
		TotalMerged:      totalMerged,
		PrimaryUpdates:   primaries,
		DuplicateUpdates: duplicates,
		MergeResults:     results,
	}, nil
}

// CalculateSimilarity scores a single pair outside the main pipeline, for
// debugging and inspection.
func (e *Engine) CalculateSimilarity(lead1, lead2 model.LeadRecord) (report *model.SimilarityReport, err error) {
	defer guard(&err)

	breakdown := match.Similarity(lead1, lead2, e.Match.Weights)
	composite := breakdown[match.DetailComposite]

	return &model.SimilarityReport{
		CompositeScore: composite,
		IsMatch:        composite >= e.Match.Threshold,
		Breakdown:      breakdown,
	}, nil
}

// Quality grades for DedupSummary, by duplicate rate.
const (
	QualityExcellent = "excellent" // < 5%
	QualityGood      = "good"      // < 15%
	QualityFair      = "fair"      // < 30%
	QualityPoor      = "poor"
)

// DedupSummary grades the duplicate rate of a finished analysis.
func (e *Engine) DedupSummary(req model.SummaryRequest) (summary *model.DedupSummary, err error) {
	defer guard(&err)

	if req.TotalChecked <= 0 {
		return nil, invalidInput("total_checked must be positive")
	}

	total := req.ExactDuplicates + req.FuzzyDuplicates
	rate := float64(total) / float64(req.TotalChecked)

	var quality, assessment string
	switch {
	case rate < 0.05:
		quality = QualityExcellent
		assessment = "Duplicate rate is very low; lead sources look clean."
	case rate < 0.15:
		quality = QualityGood
		assessment = "Duplicate rate is within the normal range for multi-source scraping."
	case rate < 0.30:
		quality = QualityFair
		assessment = "Noticeable overlap between lead sources; consider tightening source filters."
	default:
		quality = QualityPoor
		assessment = "High duplicate rate; lead sources overlap heavily and should be reviewed."
	}

	return &model.DedupSummary{
		TotalChecked:    req.TotalChecked,
		ExactDuplicates: req.ExactDuplicates,
		FuzzyDuplicates: req.FuzzyDuplicates,
		TotalDuplicates: total,
		UniqueLeads:     req.UniqueLeads,
		DuplicateRate:   rate,
		Quality:         quality,
		Assessment:      assessment,
	}, nil
}
