package model

// LeadRecord is an immutable snapshot of one scraped contact. Every field
// except ID is optional; an empty string means the scraper had no value.
// The engine never mutates a LeadRecord, it only classifies it and later
// reads fields when merging.
type LeadRecord struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	Email       string `json:"email,omitempty"`
	LinkedInURL string `json:"linkedin_url,omitempty"`
}

// Usable reports whether a record can participate in any matching strategy.
// Records without an ID, or with no matchable field at all, are skipped
// silently and counted as unique.
func (l LeadRecord) Usable() bool {
	if l.ID == "" {
		return false
	}
	return l.Email != "" || l.LinkedInURL != "" || l.FirstName != "" || l.LastName != "" || l.CompanyName != ""
}

// LeadIndex builds an id -> record lookup, dropping records without an ID.
func LeadIndex(leads []LeadRecord) map[string]LeadRecord {
	idx := make(map[string]LeadRecord, len(leads))
	for _, l := range leads {
		if l.ID == "" {
			continue
		}
		idx[l.ID] = l
	}
	return idx
}
