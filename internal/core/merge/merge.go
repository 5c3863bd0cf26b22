// Package merge arbitrates a canonical record for each duplicate group and
// computes the field-level merge instructions handed to persistence.
package merge

import (
	"sort"

	"github.com/prospecta/leadgen/internal/core/model"
)

// mergeableFields are the scalar fields considered for completeness ranking
// and for filling gaps on the primary, in the fixed order they are merged.
var mergeableFields = []struct {
	name string
	get  func(model.LeadRecord) string
}{
	{"email", func(l model.LeadRecord) string { return l.Email }},
	{"linkedin_url", func(l model.LeadRecord) string { return l.LinkedInURL }},
	{"company_name", func(l model.LeadRecord) string { return l.CompanyName }},
	{"first_name", func(l model.LeadRecord) string { return l.FirstName }},
	{"last_name", func(l model.LeadRecord) string { return l.LastName }},
}

// Options tunes primary selection. Less, when set, breaks completeness ties
// (for example by earliest-seen timestamp); the default is lowest id, which
// is stable and reproducible.
type Options struct {
	Less func(a, b model.LeadRecord) bool
}

// completeness counts populated mergeable fields.
func completeness(l model.LeadRecord) int {
	n := 0
	for _, f := range mergeableFields {
		if f.get(l) != "" {
			n++
		}
	}
	return n
}

// Group merges one duplicate group: the member with the most populated
// fields becomes the primary, the rest become duplicates, and any field the
// primary lacks is copied from the first duplicate that has it (duplicates
// visited in deterministic order). Non-empty primary fields are never
// overwritten. Returns false for groups with fewer than two resolvable
// members; callers skip those silently.
func Group(g model.DuplicateGroup, leads map[string]model.LeadRecord, opts Options) (model.MergeResult, bool) {
	var members []model.LeadRecord
	for _, id := range g.LeadIDs {
		if l, ok := leads[id]; ok {
			members = append(members, l)
		}
	}
	if len(members) < 2 {
		return model.MergeResult{}, false
	}

	tieLess := opts.Less
	if tieLess == nil {
		tieLess = func(a, b model.LeadRecord) bool { return a.ID < b.ID }
	}
	sort.Slice(members, func(i, j int) bool {
		ci, cj := completeness(members[i]), completeness(members[j])
		if ci != cj {
			return ci > cj
		}
		return tieLess(members[i], members[j])
	})

	primary := members[0]
	duplicates := members[1:]

	duplicateIDs := make([]string, len(duplicates))
	for i, d := range duplicates {
		duplicateIDs[i] = d.ID
	}

	mergedFields := make(map[string]string)
	mergedFrom := make(map[string]interface{})
	for _, f := range mergeableFields {
		if f.get(primary) != "" {
			continue
		}
		for _, d := range duplicates {
			if v := f.get(d); v != "" {
				mergedFields[f.name] = v
				mergedFrom[f.name] = d.ID
				break
			}
		}
	}

	result := model.MergeResult{
		PrimaryID:    primary.ID,
		DuplicateIDs: duplicateIDs,
		MergedFields: mergedFields,
		Details: map[string]interface{}{
			"match_type": string(g.MatchType),
		},
	}
	if len(mergedFrom) > 0 {
		result.Details["merged_from"] = mergedFrom
	}
	return result, true
}
