package types

// Team groups users under an admin. Users holds member ids in insertion
// order without duplicates; the admin is the first member at creation. Admin
// and member ids are not checked against the users collection.
type Team struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	CreationTime string   `json:"creation_time"`
	Admin        string   `json:"admin"`
	Users        []string `json:"users"`
}

// RecordID returns the team identifier.
func (t Team) RecordID() string { return t.ID }

// HasUser reports whether userID is a member of the team.
func (t *Team) HasUser(userID string) bool {
	for _, id := range t.Users {
		if id == userID {
			return true
		}
	}
	return false
}

// AddUsers appends each id that is not already a member, preserving order.
// The capacity check counts current members plus every incoming id before
// duplicates are dropped, so re-adding members can exceed the cap and fail.
// Returns a ValidationError and leaves the team unchanged in that case.
func (t *Team) AddUsers(userIDs []string) error {
	if len(t.Users)+len(userIDs) > MaxTeamUsers {
		return NewError(KindValidation, "Max users in a team: 50")
	}
	for _, id := range userIDs {
		if !t.HasUser(id) {
			t.Users = append(t.Users, id)
		}
	}
	return nil
}

// RemoveUsers drops every member whose id appears in userIDs. Ids that are
// not members are ignored.
func (t *Team) RemoveUsers(userIDs []string) {
	drop := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		drop[id] = true
	}
	kept := make([]string, 0, len(t.Users))
	for _, id := range t.Users {
		if !drop[id] {
			kept = append(kept, id)
		}
	}
	t.Users = kept
}
