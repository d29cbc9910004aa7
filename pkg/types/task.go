package types

// Task states. Any state may follow any other.
const (
	TaskStatusOpen       = "OPEN"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusComplete   = "COMPLETE"
)

// validTaskStatuses is the set of recognized task status values.
var validTaskStatuses = map[string]bool{
	TaskStatusOpen:       true,
	TaskStatusInProgress: true,
	TaskStatusComplete:   true,
}

// ValidTaskStatus reports whether status is a recognized task status.
func ValidTaskStatus(status string) bool {
	return validTaskStatuses[status]
}

// Task is a unit of work on a board. UserID is the assignee and is not
// checked against the users collection.
type Task struct {
	ID           string `json:"id"`
	BoardID      string `json:"board_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	UserID       string `json:"user_id"`
	Status       string `json:"status"`
	CreationTime string `json:"creation_time"`
}

// RecordID returns the task identifier.
func (t Task) RecordID() string { return t.ID }

// SetStatus overwrites the task status. Returns a ValidationError if status
// is not recognized. Setting the current status succeeds.
func (t *Task) SetStatus(status string) error {
	if !ValidTaskStatus(status) {
		return NewError(KindValidation, "Invalid task status")
	}
	t.Status = status
	return nil
}
