package model

// AnalysisReport is the result of one duplicate-analysis pass over a batch.
// Counting convention: TotalDuplicates is sum(group size - 1) over all
// groups (records that would disappear after merging), while UniqueLeads is
// the number of records that landed in no group at all.
type AnalysisReport struct {
	RunID           string             `json:"run_id"`
	TotalChecked    int                `json:"total_checked"`
	ExactDuplicates int                `json:"exact_duplicates"`
	FuzzyDuplicates int                `json:"fuzzy_duplicates"`
	TotalDuplicates int                `json:"total_duplicates"`
	UniqueLeads     int                `json:"unique_leads"`
	DuplicateRate   float64            `json:"duplicate_rate"`
	DuplicateGroups []DuplicateGroup   `json:"duplicate_groups"`
	BorderlinePairs []MatchResult      `json:"borderline_pairs,omitempty"`
}

// MergeReport summarizes merging a batch of duplicate groups. The two update
// slices are data for the persistence layer, not applied side effects.
type MergeReport struct {
	GroupsProcessed  int               `json:"groups_processed"`
	MergesPerformed  int               `json:"merges_performed"`
	TotalMerged      int               `json:"total_merged"`
	PrimaryUpdates   []PrimaryUpdate   `json:"primary_updates"`
	DuplicateUpdates []DuplicateUpdate `json:"duplicate_updates"`
	MergeResults     []MergeResult     `json:"merge_results"`
}

// SimilarityReport is the debugging entry point's response: one pair scored
// outside the main pipeline.
type SimilarityReport struct {
	CompositeScore float64            `json:"composite_score"`
	IsMatch        bool               `json:"is_match"`
	Breakdown      map[string]float64 `json:"breakdown"`
}

// SummaryRequest carries the counts a caller already obtained from analysis.
type SummaryRequest struct {
	TotalChecked    int `json:"total_checked"`
	ExactDuplicates int `json:"exact_duplicates"`
	FuzzyDuplicates int `json:"fuzzy_duplicates"`
	UniqueLeads     int `json:"unique_leads"`
}

// DedupSummary grades a batch's duplicate rate.
type DedupSummary struct {
	TotalChecked    int     `json:"total_checked"`
	ExactDuplicates int     `json:"exact_duplicates"`
	FuzzyDuplicates int     `json:"fuzzy_duplicates"`
	TotalDuplicates int     `json:"total_duplicates"`
	UniqueLeads     int     `json:"unique_leads"`
	DuplicateRate   float64 `json:"duplicate_rate"`
	Quality         string  `json:"quality"`
	Assessment      string  `json:"assessment"`
}
