package types

// Board states. A board starts OPEN and moves to CLOSED once; CLOSED is
// terminal.
const (
	BoardStatusOpen   = "OPEN"
	BoardStatusClosed = "CLOSED"
)

// Board is a project board owned by a team. EndTime stays nil until the
// board is closed.
type Board struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	TeamID       string  `json:"team_id"`
	CreationTime string  `json:"creation_time"`
	Status       string  `json:"status"`
	EndTime      *string `json:"end_time"`
}

// RecordID returns the board identifier.
func (b Board) RecordID() string { return b.ID }

// IsOpen reports whether tasks may still be added to the board.
func (b *Board) IsOpen() bool {
	return b.Status == BoardStatusOpen
}

// Close marks the board CLOSED and records endTime. Every task in tasks that
// references this board must be COMPLETE; otherwise an OperationNotAllowed
// error is returned and the board is unchanged. A board without tasks can
// always be closed.
func (b *Board) Close(tasks []Task, endTime *string) error {
	for _, t := range tasks {
		if t.BoardID == b.ID && t.Status != TaskStatusComplete {
			return NewError(KindOperationNotAllowed, "All tasks must be COMPLETE to close the board")
		}
	}
	b.Status = BoardStatusClosed
	b.EndTime = endTime
	return nil
}
