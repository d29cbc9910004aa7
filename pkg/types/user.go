package types

// User is a registered person. Name is fixed at creation; DisplayName may
// change. CreationTime is supplied by the caller and stored verbatim.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DisplayName  string `json:"display_name"`
	CreationTime string `json:"creation_time"`
}

// RecordID returns the user identifier.
func (u User) RecordID() string { return u.ID }
