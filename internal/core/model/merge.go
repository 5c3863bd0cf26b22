package model

// MergeResult is the outcome of merging one DuplicateGroup: which record
// stays canonical, which records get folded into it, and which fields were
// copied onto the primary because it lacked them.
type MergeResult struct {
	PrimaryID    string                 `json:"primary_id"`
	DuplicateIDs []string               `json:"duplicate_ids"`
	MergedFields map[string]string      `json:"merged_fields"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

// PrimaryUpdate is a field patch for a primary record. Applying it is the
// persistence layer's job; the engine only computes it.
type PrimaryUpdate struct {
	LeadID string            `json:"lead_id"`
	Fields map[string]string `json:"fields"`
}

// DuplicateUpdate marks a duplicate record merged into its primary.
type DuplicateUpdate struct {
	LeadID     string `json:"lead_id"`
	Status     string `json:"status"`
	MergedInto string `json:"merged_into"`
}

// StatusMerged is the status written onto records folded into a primary.
const StatusMerged = "merged"
