package store

// MergeMembers folds raw grant rows into one entry per user. Rows are
// grouped by user ID preserving first-seen-user order; each user's rights
// are the distinct permission names they hold, in first-occurrence order.
// Duplicate grants fold away. The view is recomputed on every read, never
// persisted.
func MergeMembers(rows []GrantRow) []Member {
	index := make(map[int64]int)
	members := make([]Member, 0, len(rows))

	for _, row := range rows {
		right := Right{Name: row.Permission, CanGrant: row.CanGrant}

		i, seen := index[row.UserID]
		if !seen {
			index[row.UserID] = len(members)
			members = append(members, Member{
				User:   PublicProfile{ID: row.UserID, Name: row.UserName},
				Rights: []Right{right},
			})
			continue
		}

		if hasRight(members[i].Rights, right.Name) {
			continue
		}
		members[i].Rights = append(members[i].Rights, right)
	}

	return members
}

func hasRight(rights []Right, name string) bool {
	for _, r := range rights {
		if r.Name == name {
			return true
		}
	}
	return false
}

// DedupOrganizations removes repeated organization IDs, keeping first-seen
// order. A user holding several grants in the same organization yields
// repeated raw entries.
func DedupOrganizations(orgs []Organization) []Organization {
	seen := make(map[int64]bool, len(orgs))
	out := make([]Organization, 0, len(orgs))
	for _, org := range orgs {
		if seen[org.ID] {
			continue
		}
		seen[org.ID] = true
		out = append(out, org)
	}
	return out
}
