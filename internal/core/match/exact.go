package match

import (
	"sort"

	"github.com/prospecta/leadgen/internal/core/model"
	"github.com/prospecta/leadgen/internal/core/normalize"
)

// KeyField pairs an exact-match type with its key extractor. The extractor
// returns the normalized key, or false when the record has no usable value
// for this field.
type KeyField struct {
	Type model.MatchType
	Key  func(model.LeadRecord) (string, bool)
}

// LinkedInKey matches leads on their canonical LinkedIn profile URL.
var LinkedInKey = KeyField{
	Type: model.MatchTypeLinkedIn,
	Key:  func(l model.LeadRecord) (string, bool) { return normalize.LinkedInURL(l.LinkedInURL) },
}

// EmailKey matches leads on their normalized email address.
var EmailKey = KeyField{
	Type: model.MatchTypeEmail,
	Key:  func(l model.LeadRecord) (string, bool) { return normalize.Email(l.Email) },
}

// ExactDuplicates groups leads whose normalized key for the given field is
// identical. Records without a key are excluded entirely: absence of data
// never counts as a match. Every emitted group has at least two members and
// confidence 1.0.
func ExactDuplicates(leads []model.LeadRecord, field KeyField) []model.DuplicateGroup {
	byKey := make(map[string][]string)
	for _, l := range leads {
		if l.ID == "" {
			continue
		}
		key, ok := field.Key(l)
		if !ok {
			continue
		}
		byKey[key] = append(byKey[key], l.ID)
	}

	var groups []model.DuplicateGroup
	for key, ids := range byKey {
		if len(ids) < 2 {
			continue
		}
		sort.Strings(ids)
		groups = append(groups, model.DuplicateGroup{
			LeadIDs:    ids,
			MatchType:  field.Type,
			Confidence: 1.0,
			Details: map[string]interface{}{
				"match_value": key,
			},
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].LeadIDs[0] < groups[j].LeadIDs[0]
	})
	return groups
}

// GroupedIDs collects the member ids of all given groups into a set.
func GroupedIDs(groupLists ...[]model.DuplicateGroup) map[string]bool {
	ids := make(map[string]bool)
	for _, groups := range groupLists {
		for _, g := range groups {
			for _, id := range g.LeadIDs {
				ids[id] = true
			}
		}
	}
	return ids
}
