// Package boards implements the board and task engine.
//
// Boards start OPEN and close once all of their tasks are COMPLETE. Tasks
// start OPEN and may move freely among OPEN, IN_PROGRESS and COMPLETE. Tasks
// can only be added to an OPEN board.
package boards

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/planboard/internal/ids"
	"github.com/mesh-intelligence/planboard/internal/storage"
	"github.com/mesh-intelligence/planboard/pkg/types"
)

// Exporter renders a board and its tasks into an artifact and returns a
// reference to it.
type Exporter interface {
	Export(board types.Board, tasks []types.Task) (string, error)
}

// BoardSummary is the listing view of an open board.
type BoardSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Engine owns the boards and tasks collections.
type Engine struct {
	store    types.Store
	exporter Exporter
}

// NewEngine returns an Engine backed by store. exporter receives board data
// on ExportBoard.
func NewEngine(store types.Store, exporter Exporter) *Engine {
	return &Engine{store: store, exporter: exporter}
}

func (e *Engine) loadBoards() []types.Board {
	return storage.Load(e.store, types.BoardsCollection, types.BoardsDocument{Boards: []types.Board{}}).Boards
}

func (e *Engine) loadTasks() []types.Task {
	return storage.Load(e.store, types.TasksCollection, types.TasksDocument{Tasks: []types.Task{}}).Tasks
}

func (e *Engine) saveBoards(boards []types.Board) error {
	return storage.Save(e.store, types.BoardsCollection, types.BoardsDocument{Boards: boards})
}

func (e *Engine) saveTasks(tasks []types.Task) error {
	return storage.Save(e.store, types.TasksCollection, types.TasksDocument{Tasks: tasks})
}

// CreateBoard adds an OPEN board to a team and returns its id. The name must
// be unique within the team, ignoring case. The team id is not checked.
func (e *Engine) CreateBoard(name, description, teamID, creationTime string) (string, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if types.TooLong(name, types.MaxNameLength) {
		return "", types.NewError(types.KindValidation, "Board name ≤64 chars")
	}
	if types.TooLong(description, types.MaxDescriptionLength) {
		return "", types.NewError(types.KindValidation, "Description ≤128 chars")
	}

	boards := e.loadBoards()
	for _, b := range boards {
		if b.TeamID == teamID && types.SameName(b.Name, name) {
			return "", types.ErrBoardAlreadyExists
		}
	}

	id := ids.Next(types.BoardPrefix, boards)
	boards = append(boards, types.Board{
		ID:           id,
		Name:         name,
		Description:  description,
		TeamID:       teamID,
		CreationTime: creationTime,
		Status:       types.BoardStatusOpen,
	})
	if err := e.saveBoards(boards); err != nil {
		return "", err
	}
	return id, nil
}

// CloseBoard moves a board to CLOSED and records endTime. Fails with
// OperationNotAllowed while any of its tasks is not COMPLETE.
func (e *Engine) CloseBoard(id string, endTime *string) error {
	boards := e.loadBoards()
	i := boardIndex(boards, id)
	if i < 0 {
		return types.ErrBoardNotFound
	}
	if err := boards[i].Close(e.loadTasks(), endTime); err != nil {
		return err
	}
	return e.saveBoards(boards)
}

// AddTask creates an OPEN task on an OPEN board and returns its id. The
// title must be unique within the board, ignoring case. The assignee is not
// checked.
func (e *Engine) AddTask(title, description, userID, boardID, creationTime string) (string, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if types.TooLong(title, types.MaxNameLength) {
		return "", types.NewError(types.KindValidation, "Task title ≤64 chars")
	}
	if types.TooLong(description, types.MaxDescriptionLength) {
		return "", types.NewError(types.KindValidation, "Description ≤128 chars")
	}

	boards := e.loadBoards()
	i := boardIndex(boards, boardID)
	if i < 0 {
		return "", types.ErrBoardNotFound
	}
	if !boards[i].IsOpen() {
		return "", types.NewError(types.KindOperationNotAllowed, "Can only add task to OPEN board")
	}

	tasks := e.loadTasks()
	for _, t := range tasks {
		if t.BoardID == boardID && types.SameName(t.Title, title) {
			return "", types.ErrTaskAlreadyExists
		}
	}

	id := ids.Next(types.TaskPrefix, tasks)
	tasks = append(tasks, types.Task{
		ID:           id,
		BoardID:      boardID,
		Title:        title,
		Description:  description,
		UserID:       userID,
		Status:       types.TaskStatusOpen,
		CreationTime: creationTime,
	})
	if err := e.saveTasks(tasks); err != nil {
		return "", err
	}
	return id, nil
}

// UpdateTaskStatus overwrites the status of a task. Any recognized status
// may follow any other, whatever the state of the board.
func (e *Engine) UpdateTaskStatus(id, status string) error {
	tasks := e.loadTasks()
	i := taskIndex(tasks, id)
	if i < 0 {
		return types.ErrTaskNotFound
	}
	if err := tasks[i].SetStatus(status); err != nil {
		return err
	}
	return e.saveTasks(tasks)
}

// ListBoards returns the OPEN boards of a team in storage order.
func (e *Engine) ListBoards(teamID string) []BoardSummary {
	out := make([]BoardSummary, 0)
	for _, b := range e.loadBoards() {
		if b.TeamID == teamID && b.IsOpen() {
			out = append(out, BoardSummary{ID: b.ID, Name: b.Name})
		}
	}
	return out
}

// ExportBoard hands the board and its tasks, in storage order, to the
// exporter and returns the reference it produces.
func (e *Engine) ExportBoard(id string) (string, error) {
	boards := e.loadBoards()
	i := boardIndex(boards, id)
	if i < 0 {
		return "", types.ErrBoardNotFound
	}

	var tasks []types.Task
	for _, t := range e.loadTasks() {
		if t.BoardID == id {
			tasks = append(tasks, t)
		}
	}

	ref, err := e.exporter.Export(boards[i], tasks)
	if err != nil {
		return "", fmt.Errorf("export %s: %w", id, err)
	}
	return ref, nil
}

func boardIndex(boards []types.Board, id string) int {
	for i, b := range boards {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func taskIndex(tasks []types.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
