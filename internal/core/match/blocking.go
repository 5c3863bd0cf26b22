package match

import (
	"sort"
	"strings"

	"github.com/prospecta/leadgen/internal/core/model"
)

// BlockingKey computes the coarse bucket key that bounds the O(n²) fuzzy
// comparison: Soundex of the first name plus the lower-cased first three
// characters of the company name. Records missing a first name, or with a
// company name shorter than three characters, cannot be blocked and are
// treated as unique by the fuzzy stage.
func BlockingKey(l model.LeadRecord) (string, bool) {
	first := strings.TrimSpace(l.FirstName)
	company := strings.TrimSpace(l.CompanyName)
	if first == "" || len(company) < 3 {
		return "", false
	}
	phonetic := Soundex(first)
	if phonetic == "" {
		return "", false
	}
	return phonetic + ":" + strings.ToLower(company[:3]), true
}

// blocks partitions candidates into buckets and returns the bucket keys in
// sorted order so downstream iteration is deterministic. Members of each
// bucket are sorted by id.
func blocks(leads []model.LeadRecord) ([]string, map[string][]model.LeadRecord) {
	buckets := make(map[string][]model.LeadRecord)
	for _, l := range leads {
		if l.ID == "" {
			continue
		}
		key, ok := BlockingKey(l)
		if !ok {
			continue
		}
		buckets[key] = append(buckets[key], l)
	}

	keys := make([]string, 0, len(buckets))
	for key, members := range buckets {
		sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, buckets
}
