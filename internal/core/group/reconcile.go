package group

import (
	"sort"

	"github.com/prospecta/leadgen/internal/core/model"
)

// Reconcile merges the per-method group lists into the authoritative
// disjoint set for the batch: any id present in groups from different
// methods pulls those groups together. The merged group takes the
// highest-precedence match type (linkedin > email > fuzzy), the maximum
// contributing confidence (exact evidence pins it to 1.0), and records the
// distinct contributing types under details.merged_from.
func Reconcile(groupLists ...[]model.DuplicateGroup) []model.DuplicateGroup {
	var all []model.DuplicateGroup
	for _, list := range groupLists {
		all = append(all, list...)
	}
	if len(all) == 0 {
		return nil
	}

	index := make(map[string]int)
	var ids []string
	idOf := func(id string) int {
		if i, ok := index[id]; ok {
			return i
		}
		i := len(ids)
		index[id] = i
		ids = append(ids, id)
		return i
	}

	for _, g := range all {
		for _, id := range g.LeadIDs {
			idOf(id)
		}
	}

	uf := newUnionFind(len(ids))
	for _, g := range all {
		first := idOf(g.LeadIDs[0])
		for _, id := range g.LeadIDs[1:] {
			uf.union(first, idOf(id))
		}
	}

	type summary struct {
		members    []string
		matchType  model.MatchType
		confidence float64
		methods    map[model.MatchType]bool
	}
	merged := make(map[int]*summary)

	for i, id := range ids {
		root := uf.find(i)
		s, ok := merged[root]
		if !ok {
			s = &summary{methods: make(map[model.MatchType]bool)}
			merged[root] = s
		}
		s.members = append(s.members, id)
	}

	for _, g := range all {
		root := uf.find(idOf(g.LeadIDs[0]))
		s := merged[root]
		s.methods[g.MatchType] = true
		if g.MatchType.Precedence() > s.matchType.Precedence() {
			s.matchType = g.MatchType
		}
		if g.Confidence > s.confidence {
			s.confidence = g.Confidence
		}
	}

	var groups []model.DuplicateGroup
	for _, s := range merged {
		if len(s.members) < 2 {
			continue
		}
		sort.Strings(s.members)

		mergedFrom := make([]string, 0, len(s.methods))
		for t := range s.methods {
			mergedFrom = append(mergedFrom, string(t))
		}
		sort.Strings(mergedFrom)

		groups = append(groups, model.DuplicateGroup{
			LeadIDs:    s.members,
			MatchType:  s.matchType,
			Confidence: s.confidence,
			Details: map[string]interface{}{
				"merged_from": mergedFrom,
			},
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].LeadIDs[0] < groups[j].LeadIDs[0]
	})
	return groups
}
