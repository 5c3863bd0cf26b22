// Package review asks an LLM to adjudicate fuzzy pairs that scored just
// below the match threshold. Verdicts are advisory and never change the
// deterministic analysis output.
package review

import (
	"context"
	"fmt"
	"strings"

	"github.com/prospecta/leadgen/internal/core/common"
	"github.com/prospecta/leadgen/internal/core/model"
	"github.com/prospecta/leadgen/internal/llm"
)

type Adjudicator struct {
	LLM llm.Client
}

func NewAdjudicator(client llm.Client) *Adjudicator {
	return &Adjudicator{LLM: client}
}

// ReviewPairs asks the LLM whether each borderline pair refers to the same
// person. Pairs whose leads are missing from the batch are skipped. Returns
// only verdicts for pairs that were actually submitted; hallucinated ids in
// the response are dropped.
func (a *Adjudicator) ReviewPairs(ctx context.Context, leads map[string]model.LeadRecord, pairs []model.MatchResult) ([]model.ReviewVerdict, error) {
	submitted := make(map[[2]string]bool)
	var sb strings.Builder
	for _, p := range pairs {
		l1, ok1 := leads[p.Lead1ID]
		l2, ok2 := leads[p.Lead2ID]
		if !ok1 || !ok2 {
			continue
		}
		submitted[[2]string{p.Lead1ID, p.Lead2ID}] = true
		fmt.Fprintf(&sb, "- Pair %s / %s (name similarity score %.2f):\n", p.Lead1ID, p.Lead2ID, p.Confidence)
		fmt.Fprintf(&sb, "  A: %s\n  B: %s\n", describeLead(l1), describeLead(l2))
	}
	if len(submitted) == 0 {
		return nil, nil
	}

	prompt := fmt.Sprintf(`You review possible duplicate sales leads. For each pair below, decide whether both records refer to the same real person.

<PAIRS>
%s</PAIRS>

Return a JSON object with key "verdicts", a list of objects with "lead1_id", "lead2_id", "duplicate" (bool), "confidence" (float 0-1) and "reason" (short string).

Example JSON:
{
  "verdicts": [
    {"lead1_id": "a", "lead2_id": "b", "duplicate": true, "confidence": 0.9, "reason": "nickname of the same person at the same company"}
  ]
}
`, sb.String())

	response, err := a.LLM.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate review verdicts: %w", err)
	}

	result, err := common.ParseJSON[model.ReviewResult](response)
	if err != nil {
		return nil, fmt.Errorf("failed to parse review verdicts: %w", err)
	}

	var verdicts []model.ReviewVerdict
	for _, v := range result.Verdicts {
		if submitted[[2]string{v.Lead1ID, v.Lead2ID}] || submitted[[2]string{v.Lead2ID, v.Lead1ID}] {
			verdicts = append(verdicts, v)
		}
	}
	return verdicts, nil
}

func describeLead(l model.LeadRecord) string {
	parts := []string{fmt.Sprintf("name=%q %q", l.FirstName, l.LastName)}
	if l.CompanyName != "" {
		parts = append(parts, fmt.Sprintf("company=%q", l.CompanyName))
	}
	if l.Email != "" {
		parts = append(parts, fmt.Sprintf("email=%q", l.Email))
	}
	if l.LinkedInURL != "" {
		parts = append(parts, fmt.Sprintf("linkedin=%q", l.LinkedInURL))
	}
	return strings.Join(parts, " ")
}
