package group

import (
	"sort"

	"github.com/prospecta/leadgen/internal/core/model"
)

// FromMatches computes connected components over the pairwise results of a
// single method. Every id appearing in a match lands in exactly one group;
// components of size one are dropped (a pairwise match always implies two
// members, but the filter is kept defensively).
//
// A group's confidence is the arithmetic mean over all matches whose both
// endpoints fall inside the final component, not just the edge that seeded
// it, so it reflects overall cohesion.
func FromMatches(matches []model.MatchResult, matchType model.MatchType) []model.DuplicateGroup {
	if len(matches) == 0 {
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

	// Intern ids first so the forest is sized once.
	pairs := make([][2]int, len(matches))
	for i, m := range matches {
		pairs[i] = [2]int{idOf(m.Lead1ID), idOf(m.Lead2ID)}
	}

	uf := newUnionFind(len(ids))
	for _, p := range pairs {
		uf.union(p[0], p[1])
	}

	members := make(map[int][]string)
	for i, id := range ids {
		root := uf.find(i)
		members[root] = append(members[root], id)
	}

	// Mean confidence per component, counting only edges internal to it.
	confSum := make(map[int]float64)
	confCount := make(map[int]int)
	for i, m := range matches {
		r1 := uf.find(pairs[i][0])
		r2 := uf.find(pairs[i][1])
		if r1 != r2 {
			continue
		}
		confSum[r1] += m.Confidence
		confCount[r1]++
	}

	var groups []model.DuplicateGroup
	for root, ids := range members {
		if len(ids) < 2 {
			continue
		}
		sort.Strings(ids)
		confidence := 0.0
		if confCount[root] > 0 {
			confidence = confSum[root] / float64(confCount[root])
		}
		groups = append(groups, model.DuplicateGroup{
			LeadIDs:    ids,
			MatchType:  matchType,
			Confidence: confidence,
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].LeadIDs[0] < groups[j].LeadIDs[0]
	})
	return groups
}
