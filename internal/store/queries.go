package store

const (
	SaveLeadQuery = `
		MERGE (l:Lead {id: $id})
		SET l.first_name = $first_name,
			l.last_name = $last_name,
			l.company_name = $company_name,
			l.email = $email,
			l.linkedin_url = $linkedin_url,
			l.updated_at = $updated_at
		RETURN l.id AS id
	`

	GetActiveLeadsQuery = `
		MATCH (l:Lead)
		WHERE l.status IS NULL OR l.status <> $merged_status
		RETURN l.id AS id,
			l.first_name AS first_name,
			l.last_name AS last_name,
			l.company_name AS company_name,
			l.email AS email,
			l.linkedin_url AS linkedin_url
		ORDER BY l.id
	`

	PatchPrimaryQuery = `
		MATCH (l:Lead {id: $id})
		SET l += $fields,
			l.updated_at = $updated_at
		RETURN l.id AS id
	`

	MarkMergedQuery = `
		MATCH (l:Lead {id: $id})
		SET l.status = $status,
			l.merged_into = $merged_into,
			l.updated_at = $updated_at
		WITH l
		MATCH (p:Lead {id: $merged_into})
		MERGE (l)-[e:MERGED_INTO]->(p)
		SET e.updated_at = $updated_at
		RETURN l.id AS id
	`
)
