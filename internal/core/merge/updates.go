package merge

import "github.com/prospecta/leadgen/internal/core/model"

// PrepareDatabaseUpdates translates merge results into the two update
// batches the persistence layer applies: field patches for primaries that
// gained data, and status patches marking duplicates merged. These are
// plain data; nothing is written here.
func PrepareDatabaseUpdates(results []model.MergeResult) ([]model.PrimaryUpdate, []model.DuplicateUpdate) {
	var primaries []model.PrimaryUpdate
	var duplicates []model.DuplicateUpdate

	for _, r := range results {
		if len(r.MergedFields) > 0 {
			primaries = append(primaries, model.PrimaryUpdate{
				LeadID: r.PrimaryID,
				Fields: r.MergedFields,
			})
		}
		for _, id := range r.DuplicateIDs {
			duplicates = append(duplicates, model.DuplicateUpdate{
				LeadID:     id,
				Status:     model.StatusMerged,
				MergedInto: r.PrimaryID,
			})
		}
	}

	return primaries, duplicates
}
