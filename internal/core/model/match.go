package model

// MatchType labels how a pair or group of leads was linked.
type MatchType string

const (
	MatchTypeLinkedIn MatchType = "linkedin"
	MatchTypeEmail    MatchType = "email"
	MatchTypeFuzzy    MatchType = "fuzzy"
)

// Precedence ranks match types for cross-method reconciliation:
// linkedin > email > fuzzy.
func (t MatchType) Precedence() int {
	switch t {
	case MatchTypeLinkedIn:
		return 3
	case MatchTypeEmail:
		return 2
	case MatchTypeFuzzy:
		return 1
	default:
		return 0
	}
}

// MatchResult is one pairwise observation. Lead1ID sorts before Lead2ID so
// every unordered pair has exactly one canonical representation.
type MatchResult struct {
	Lead1ID    string             `json:"lead1_id"`
	Lead2ID    string             `json:"lead2_id"`
	MatchType  MatchType          `json:"match_type"`
	Confidence float64            `json:"confidence"`
	Details    map[string]float64 `json:"details,omitempty"`
}

// DuplicateGroup is a set of lead ids believed to refer to the same person.
// Invariant: len(LeadIDs) >= 2 and ids are sorted; groups from one analysis
// pass are disjoint.
type DuplicateGroup struct {
	LeadIDs    []string               `json:"lead_ids"`
	MatchType  MatchType              `json:"match_type"`
	Confidence float64                `json:"confidence"`
	Details    map[string]interface{} `json:"details,omitempty"`
}

// Size returns the number of members in the group.
func (g DuplicateGroup) Size() int { return len(g.LeadIDs) }
