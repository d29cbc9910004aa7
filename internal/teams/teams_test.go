package teams

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/planboard/internal/storage"
	"github.com/mesh-intelligence/planboard/pkg/types"
)

func setupRegistry(t *testing.T) (*Registry, types.Store) {
	t.Helper()
	store := storage.NewFileStore(t.TempDir())
	return NewRegistry(store), store
}

// mustCreateTeam creates a team and returns its id.
func mustCreateTeam(t *testing.T, r *Registry, name, admin string) string {
	t.Helper()
	id, err := r.Create(name, name+" team", admin, "2026-01-01T00:00:00")
	require.NoError(t, err)
	return id
}

// membership reads the stored member list of a team.
func membership(t *testing.T, store types.Store, id string) []string {
	t.Helper()
	doc := storage.Load(store, types.TeamsCollection, types.TeamsDocument{})
	for _, team := range doc.Teams {
		if team.ID == id {
			return team.Users
		}
	}
	t.Fatalf("team %q not stored", id)
	return nil
}

func strPtr(s string) *string { return &s }

func memberIDs(from, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("user_%d", from+i)
	}
	return out
}

func TestCreate(t *testing.T) {
	r, store := setupRegistry(t)

	id, err := r.Create(" eng ", " engineering ", "user_1", "t1")
	require.NoError(t, err)
	assert.Equal(t, "team_1", id)
	assert.Equal(t, []string{"user_1"}, membership(t, store, id))

	got, err := r.Describe(id)
	require.NoError(t, err)
	assert.Equal(t, Summary{Name: "eng", Description: "engineering", CreationTime: "t1", Admin: "user_1"}, got)

	id, err = r.Create("ops", "", "user_2", "t2")
	require.NoError(t, err)
	assert.Equal(t, "team_2", id)
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name        string
		teamName    string
		description string
	}{
		{"empty name", "", ""},
		{"blank name", "  ", ""},
		{"name too long", strings.Repeat("n", 65), ""},
		{"description too long", "eng", strings.Repeat("d", 129)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := setupRegistry(t)
			_, err := r.Create(tt.teamName, tt.description, "user_1", "t")
			assert.ErrorIs(t, err, types.ErrValidation)
			assert.Empty(t, r.List())
		})
	}
}

func TestCreateDuplicateNameIgnoresCase(t *testing.T) {
	r, store := setupRegistry(t)
	mustCreateTeam(t, r, "eng", "user_1")
	before, err := store.Read(types.TeamsCollection)
	require.NoError(t, err)

	_, err = r.Create("ENG", "", "user_2", "t")
	assert.ErrorIs(t, err, types.ErrTeamAlreadyExists)

	after, err := store.Read(types.TeamsCollection)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestListAndDescribe(t *testing.T) {
	r, _ := setupRegistry(t)
	assert.Empty(t, r.List())

	mustCreateTeam(t, r, "eng", "user_1")
	mustCreateTeam(t, r, "ops", "user_2")

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "eng", list[0].Name)
	assert.Equal(t, "user_2", list[1].Admin)

	_, err := r.Describe("team_3")
	assert.ErrorIs(t, err, types.ErrTeamNotFound)
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		patch   Patch
		wantErr error
		want    Summary
	}{
		{
			name:  "empty patch keeps values",
			id:    "team_1",
			patch: Patch{},
			want:  Summary{Name: "eng", Description: "eng team", CreationTime: "2026-01-01T00:00:00", Admin: "user_1"},
		},
		{
			name:  "overrides every field",
			id:    "team_1",
			patch: Patch{Name: strPtr(" platform "), Description: strPtr("infra"), Admin: strPtr("user_5")},
			want:  Summary{Name: "platform", Description: "infra", CreationTime: "2026-01-01T00:00:00", Admin: "user_5"},
		},
		{
			name:  "renaming to own name in another case is allowed",
			id:    "team_1",
			patch: Patch{Name: strPtr("ENG")},
			want:  Summary{Name: "ENG", Description: "eng team", CreationTime: "2026-01-01T00:00:00", Admin: "user_1"},
		},
		{
			name:    "name collision with another team",
			id:      "team_1",
			patch:   Patch{Name: strPtr("Ops")},
			wantErr: types.ErrTeamAlreadyExists,
			want:    Summary{Name: "eng", Description: "eng team", CreationTime: "2026-01-01T00:00:00", Admin: "user_1"},
		},
		{
			name:    "name too long",
			id:      "team_1",
			patch:   Patch{Name: strPtr(strings.Repeat("n", 65))},
			wantErr: types.ErrValidation,
			want:    Summary{Name: "eng", Description: "eng team", CreationTime: "2026-01-01T00:00:00", Admin: "user_1"},
		},
		{
			name:    "description too long",
			id:      "team_1",
			patch:   Patch{Description: strPtr(strings.Repeat("d", 129))},
			wantErr: types.ErrValidation,
			want:    Summary{Name: "eng", Description: "eng team", CreationTime: "2026-01-01T00:00:00", Admin: "user_1"},
		},
		{
			name:    "unknown team",
			id:      "team_9",
			patch:   Patch{Name: strPtr("x")},
			wantErr: types.ErrTeamNotFound,
			want:    Summary{Name: "eng", Description: "eng team", CreationTime: "2026-01-01T00:00:00", Admin: "user_1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := setupRegistry(t)
			mustCreateTeam(t, r, "eng", "user_1")
			mustCreateTeam(t, r, "ops", "user_2")

			err := r.Update(tt.id, tt.patch)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			got, err := r.Describe("team_1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddUsers(t *testing.T) {
	t.Run("appends without duplicates", func(t *testing.T) {
		r, store := setupRegistry(t)
		id := mustCreateTeam(t, r, "eng", "user_1")

		require.NoError(t, r.AddUsers(id, []string{"user_2", "user_1", "user_3"}))
		require.NoError(t, r.AddUsers(id, []string{"user_3", "user_4"}))
		assert.Equal(t, []string{"user_1", "user_2", "user_3", "user_4"}, membership(t, store, id))
	})

	t.Run("never exceeds the cap", func(t *testing.T) {
		r, store := setupRegistry(t)
		id := mustCreateTeam(t, r, "eng", "user_1")

		require.NoError(t, r.AddUsers(id, memberIDs(2, 49)))
		assert.Len(t, membership(t, store, id), types.MaxTeamUsers)

		err := r.AddUsers(id, []string{"user_99"})
		assert.ErrorIs(t, err, types.ErrValidation)
		assert.Len(t, membership(t, store, id), types.MaxTeamUsers)
	})

	t.Run("re-adding members counts against the cap", func(t *testing.T) {
		r, store := setupRegistry(t)
		id := mustCreateTeam(t, r, "eng", "user_1")
		require.NoError(t, r.AddUsers(id, memberIDs(2, 29)))

		err := r.AddUsers(id, memberIDs(1, 30))
		assert.ErrorIs(t, err, types.ErrValidation)
		assert.Len(t, membership(t, store, id), 30)
	})

	t.Run("unknown team", func(t *testing.T) {
		r, _ := setupRegistry(t)
		assert.ErrorIs(t, r.AddUsers("team_1", []string{"user_1"}), types.ErrTeamNotFound)
	})
}

func TestRemoveUsers(t *testing.T) {
	r, store := setupRegistry(t)
	id := mustCreateTeam(t, r, "eng", "user_1")
	require.NoError(t, r.AddUsers(id, []string{"user_2", "user_3"}))

	require.NoError(t, r.RemoveUsers(id, []string{"user_2", "user_7"}))
	assert.Equal(t, []string{"user_1", "user_3"}, membership(t, store, id))

	require.NoError(t, r.RemoveUsers(id, []string{"user_8"}))
	assert.Equal(t, []string{"user_1", "user_3"}, membership(t, store, id))

	assert.ErrorIs(t, r.RemoveUsers("team_5", []string{"user_1"}), types.ErrTeamNotFound)
}

func TestUsers(t *testing.T) {
	r, store := setupRegistry(t)
	users := types.UsersDocument{Users: []types.User{
		{ID: "user_1", Name: "alice", DisplayName: "Alice"},
		{ID: "user_2", Name: "bob", DisplayName: "Bob"},
		{ID: "user_3", Name: "carol", DisplayName: "Carol"},
	}}
	require.NoError(t, storage.Save(store, types.UsersCollection, users))

	id := mustCreateTeam(t, r, "eng", "user_3")
	require.NoError(t, r.AddUsers(id, []string{"user_9", "user_1"}))

	got, err := r.Users(id)
	require.NoError(t, err)
	assert.Equal(t, []Member{
		{ID: "user_3", Name: "carol", DisplayName: "Carol"},
		{ID: "user_1", Name: "alice", DisplayName: "Alice"},
	}, got, "unknown member ids are skipped, order follows membership")

	_, err = r.Users("team_2")
	assert.ErrorIs(t, err, types.ErrTeamNotFound)
}
