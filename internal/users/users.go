// Package users implements the user registry: creation, listing, lookup,
// display name updates, and the reverse team membership view.
package users

import (
	"strings"

	"github.com/mesh-intelligence/planboard/internal/ids"
	"github.com/mesh-intelligence/planboard/internal/storage"
	"github.com/mesh-intelligence/planboard/pkg/types"
)

// Summary is the public view of a user; ids are not included.
type Summary struct {
	Name         string `json:"name"`
	DisplayName  string `json:"display_name"`
	CreationTime string `json:"creation_time"`
}

// TeamSummary is the view of a team the user belongs to.
type TeamSummary struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	CreationTime string `json:"creation_time"`
}

// Patch carries the fields of an update. A nil field was absent from the
// request.
type Patch struct {
	Name        *string `json:"name"`
	DisplayName *string `json:"display_name"`
}

// Registry owns the users collection.
type Registry struct {
	store types.Store
}

// NewRegistry returns a Registry backed by store.
func NewRegistry(store types.Store) *Registry {
	return &Registry{store: store}
}

func (r *Registry) load() []types.User {
	return storage.Load(r.store, types.UsersCollection, types.UsersDocument{Users: []types.User{}}).Users
}

func (r *Registry) save(users []types.User) error {
	return storage.Save(r.store, types.UsersCollection, types.UsersDocument{Users: users})
}

// Create registers a user and returns its id. Name and display name are
// trimmed. Returns ValidationError for an empty or over-long name or an
// over-long display name, and UserAlreadyExists when the name matches an
// existing user regardless of case.
func (r *Registry) Create(name, displayName, creationTime string) (string, error) {
	name = strings.TrimSpace(name)
	displayName = strings.TrimSpace(displayName)
	if name == "" || types.TooLong(name, types.MaxNameLength) {
		return "", types.NewError(types.KindValidation, "Username must be unique and ≤64 chars")
	}
	if types.TooLong(displayName, types.MaxDisplayNameLength) {
		return "", types.NewError(types.KindValidation, "Display name ≤64 chars")
	}

	users := r.load()
	for _, u := range users {
		if types.SameName(u.Name, name) {
			return "", types.ErrUserAlreadyExists
		}
	}

	id := ids.Next(types.UserPrefix, users)
	users = append(users, types.User{
		ID:           id,
		Name:         name,
		DisplayName:  displayName,
		CreationTime: creationTime,
	})
	if err := r.save(users); err != nil {
		return "", err
	}
	return id, nil
}

// List returns every user in storage order.
func (r *Registry) List() []Summary {
	users := r.load()
	out := make([]Summary, 0, len(users))
	for _, u := range users {
		out = append(out, summarize(u))
	}
	return out
}

// Describe returns the user with the given id, or UserNotFound.
func (r *Registry) Describe(id string) (Summary, error) {
	users := r.load()
	i := indexOf(users, id)
	if i < 0 {
		return Summary{}, types.ErrUserNotFound
	}
	return summarize(users[i]), nil
}

// Update replaces the display name of a user. The name never changes: a
// patch carrying a different name fails with ValidationError. An absent
// display name clears the stored one.
func (r *Registry) Update(id string, patch Patch) error {
	users := r.load()
	i := indexOf(users, id)
	if i < 0 {
		return types.ErrUserNotFound
	}
	if patch.Name != nil && *patch.Name != users[i].Name {
		return types.NewError(types.KindValidation, "User name cannot be updated")
	}

	var displayName string
	if patch.DisplayName != nil {
		displayName = strings.TrimSpace(*patch.DisplayName)
	}
	if types.TooLong(displayName, types.MaxUpdatedDisplayNameLength) {
		return types.NewError(types.KindValidation, "Display name ≤128 chars")
	}

	users[i].DisplayName = displayName
	return r.save(users)
}

// Teams returns every team whose membership contains userID, in team
// storage order. The user id is not checked for existence.
func (r *Registry) Teams(userID string) []TeamSummary {
	doc := storage.Load(r.store, types.TeamsCollection, types.TeamsDocument{Teams: []types.Team{}})
	out := make([]TeamSummary, 0)
	for _, t := range doc.Teams {
		if t.HasUser(userID) {
			out = append(out, TeamSummary{
				Name:         t.Name,
				Description:  t.Description,
				CreationTime: t.CreationTime,
			})
		}
	}
	return out
}

func summarize(u types.User) Summary {
	return Summary{Name: u.Name, DisplayName: u.DisplayName, CreationTime: u.CreationTime}
}

func indexOf(users []types.User, id string) int {
	for i, u := range users {
		if u.ID == id {
			return i
		}
	}
	return -1
}
