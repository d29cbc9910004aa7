package types

// Collection names.
const (
	UsersCollection  = "users"
	TeamsCollection  = "teams"
	BoardsCollection = "boards"
	TasksCollection  = "tasks"
)

// StandardCollections lists all collection names for enumeration.
var StandardCollections = []string{
	UsersCollection,
	TeamsCollection,
	BoardsCollection,
	TasksCollection,
}

// Identifier prefixes, one per entity type.
const (
	UserPrefix  = "user"
	TeamPrefix  = "team"
	BoardPrefix = "board"
	TaskPrefix  = "task"
)

// Record is implemented by every entity stored in a collection.
type Record interface {
	RecordID() string
}

// UsersDocument is the durable shape of the users collection.
type UsersDocument struct {
	Users []User `json:"users"`
}

// TeamsDocument is the durable shape of the teams collection.
type TeamsDocument struct {
	Teams []Team `json:"teams"`
}

// BoardsDocument is the durable shape of the boards collection.
type BoardsDocument struct {
	Boards []Board `json:"boards"`
}

// TasksDocument is the durable shape of the tasks collection.
type TasksDocument struct {
	Tasks []Task `json:"tasks"`
}

// EmptyDocument returns the default document for a collection name, or nil
// for an unknown name.
func EmptyDocument(collection string) any {
	switch collection {
	case UsersCollection:
		return UsersDocument{Users: []User{}}
	case TeamsCollection:
		return TeamsDocument{Teams: []Team{}}
	case BoardsCollection:
		return BoardsDocument{Boards: []Board{}}
	case TasksCollection:
		return TasksDocument{Tasks: []Task{}}
	default:
		return nil
	}
}
