package model

// ReviewVerdict is one LLM judgement on a borderline fuzzy pair. Verdicts
// are advisory: they ride alongside the analysis report and are never folded
// back into the deterministic groups.
type ReviewVerdict struct {
	Lead1ID    string  `json:"lead1_id"`
	Lead2ID    string  `json:"lead2_id"`
	Duplicate  bool    `json:"duplicate"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason,omitempty"`
}

type ReviewResult struct {
	Verdicts []ReviewVerdict `json:"verdicts"`
}
