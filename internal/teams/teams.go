// Package teams implements the team registry: creation, listing, lookup,
// updates, and membership management with a fixed capacity.
package teams

import (
	"strings"

	"github.com/mesh-intelligence/planboard/internal/ids"
	"github.com/mesh-intelligence/planboard/internal/storage"
	"github.com/mesh-intelligence/planboard/pkg/types"
)

// Summary is the public view of a team.
type Summary struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	CreationTime string `json:"creation_time"`
	Admin        string `json:"admin"`
}

// Member is a team member resolved against the users collection.
type Member struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// Patch carries the fields of an update. A nil field keeps the current value.
type Patch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Admin       *string `json:"admin"`
}

// Registry owns the teams collection.
type Registry struct {
	store types.Store
}

// NewRegistry returns a Registry backed by store.
func NewRegistry(store types.Store) *Registry {
	return &Registry{store: store}
}

func (r *Registry) load() []types.Team {
	return storage.Load(r.store, types.TeamsCollection, types.TeamsDocument{Teams: []types.Team{}}).Teams
}

func (r *Registry) save(teams []types.Team) error {
	return storage.Save(r.store, types.TeamsCollection, types.TeamsDocument{Teams: teams})
}

// Create registers a team whose only member is admin and returns its id.
// Name and description are trimmed; admin is stored as given and not
// checked against the users collection.
func (r *Registry) Create(name, description, admin, creationTime string) (string, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || types.TooLong(name, types.MaxNameLength) {
		return "", types.NewError(types.KindValidation, "Name must be ≤64 chars and unique")
	}
	if types.TooLong(description, types.MaxDescriptionLength) {
		return "", types.NewError(types.KindValidation, "Description ≤128 chars")
	}

	teams := r.load()
	for _, t := range teams {
		if types.SameName(t.Name, name) {
			return "", types.ErrTeamAlreadyExists
		}
	}

	id := ids.Next(types.TeamPrefix, teams)
	teams = append(teams, types.Team{
		ID:           id,
		Name:         name,
		Description:  description,
		CreationTime: creationTime,
		Admin:        admin,
		Users:        []string{admin},
	})
	if err := r.save(teams); err != nil {
		return "", err
	}
	return id, nil
}

// List returns every team in storage order.
func (r *Registry) List() []Summary {
	teams := r.load()
	out := make([]Summary, 0, len(teams))
	for _, t := range teams {
		out = append(out, summarize(t))
	}
	return out
}

// Describe returns the team with the given id, or TeamNotFound.
func (r *Registry) Describe(id string) (Summary, error) {
	teams := r.load()
	i := indexOf(teams, id)
	if i < 0 {
		return Summary{}, types.ErrTeamNotFound
	}
	return summarize(teams[i]), nil
}

// Update merges patch into the team. A new name that differs from the
// current one must not collide with another team, ignoring case. The merged
// name and description are bounds-checked after the collision check.
func (r *Registry) Update(id string, patch Patch) error {
	teams := r.load()
	i := indexOf(teams, id)
	if i < 0 {
		return types.ErrTeamNotFound
	}
	current := teams[i]

	name := current.Name
	if patch.Name != nil {
		name = *patch.Name
	}
	name = strings.TrimSpace(name)

	description := current.Description
	if patch.Description != nil {
		description = *patch.Description
	}
	description = strings.TrimSpace(description)

	admin := current.Admin
	if patch.Admin != nil {
		admin = *patch.Admin
	}

	if name != current.Name {
		for j, t := range teams {
			if j != i && types.SameName(t.Name, name) {
				return types.ErrTeamAlreadyExists
			}
		}
	}
	if types.TooLong(name, types.MaxNameLength) || types.TooLong(description, types.MaxDescriptionLength) {
		return types.NewError(types.KindValidation, "Max char exceeded")
	}

	teams[i].Name = name
	teams[i].Description = description
	teams[i].Admin = admin
	return r.save(teams)
}

// AddUsers adds userIDs to the team membership. See types.Team.AddUsers for
// the capacity rule.
func (r *Registry) AddUsers(id string, userIDs []string) error {
	teams := r.load()
	i := indexOf(teams, id)
	if i < 0 {
		return types.ErrTeamNotFound
	}
	if err := teams[i].AddUsers(userIDs); err != nil {
		return err
	}
	return r.save(teams)
}

// RemoveUsers removes userIDs from the team membership. Ids that are not
// members are ignored.
func (r *Registry) RemoveUsers(id string, userIDs []string) error {
	teams := r.load()
	i := indexOf(teams, id)
	if i < 0 {
		return types.ErrTeamNotFound
	}
	teams[i].RemoveUsers(userIDs)
	return r.save(teams)
}

// Users returns the members of the team in membership order. Member ids with
// no matching user record are skipped.
func (r *Registry) Users(id string) ([]Member, error) {
	teams := r.load()
	i := indexOf(teams, id)
	if i < 0 {
		return nil, types.ErrTeamNotFound
	}

	doc := storage.Load(r.store, types.UsersCollection, types.UsersDocument{Users: []types.User{}})
	byID := make(map[string]types.User, len(doc.Users))
	for _, u := range doc.Users {
		if _, seen := byID[u.ID]; !seen {
			byID[u.ID] = u
		}
	}

	out := make([]Member, 0, len(teams[i].Users))
	for _, uid := range teams[i].Users {
		u, ok := byID[uid]
		if !ok {
			continue
		}
		out = append(out, Member{ID: u.ID, Name: u.Name, DisplayName: u.DisplayName})
	}
	return out, nil
}

func summarize(t types.Team) Summary {
	return Summary{
		Name:         t.Name,
		Description:  t.Description,
		CreationTime: t.CreationTime,
		Admin:        t.Admin,
	}
}

func indexOf(teams []types.Team, id string) int {
	for i, t := range teams {
		if t.ID == id {
			return i
		}
	}
	return -1
}
