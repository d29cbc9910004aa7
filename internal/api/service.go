// Package api is the request/response boundary of planboard.
//
// Every operation takes a JSON request document and returns a JSON response
// document. A successful call returns the operation payload. A failed call
// returns {"error": "<kind>", "message": "<text>"}; no failure escapes as a
// Go error or a panic.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/planboard/internal/boards"
	"github.com/mesh-intelligence/planboard/internal/teams"
	"github.com/mesh-intelligence/planboard/internal/users"
	"github.com/mesh-intelligence/planboard/pkg/types"
)

// Messages used in failure envelopes.
const (
	MsgMalformedRequest = "malformed request"
	MsgInternal         = "Internal server error"
	MsgDefault          = "An error occurred"
)

// Failure is the response document of a failed call.
type Failure struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// IDResponse is the success document of operations that create or change
// one record.
type IDResponse struct {
	ID string `json:"id"`
}

// ExportResponse is the success document of export_board.
type ExportResponse struct {
	OutFile string `json:"out_file"`
}

// handlerFunc runs one operation against a raw request and returns the
// payload to serialize.
type handlerFunc func(request []byte) (any, error)

// Service binds the registries and the board engine to named operations.
type Service struct {
	users    *users.Registry
	teams    *teams.Registry
	boards   *boards.Engine
	logger   *slog.Logger
	handlers map[string]handlerFunc
}

// New returns a Service over store. exporter receives export_board calls.
// A nil logger means slog.Default().
func New(store types.Store, exporter boards.Exporter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		users:  users.NewRegistry(store),
		teams:  teams.NewRegistry(store),
		boards: boards.NewEngine(store, exporter),
		logger: logger,
	}
	s.handlers = map[string]handlerFunc{
		"create_user":            s.createUser,
		"list_users":             s.listUsers,
		"describe_user":          s.describeUser,
		"update_user":            s.updateUser,
		"get_user_teams":         s.getUserTeams,
		"create_team":            s.createTeam,
		"list_teams":             s.listTeams,
		"describe_team":          s.describeTeam,
		"update_team":            s.updateTeam,
		"add_users_to_team":      s.addUsersToTeam,
		"remove_users_from_team": s.removeUsersFromTeam,
		"list_team_users":        s.listTeamUsers,
		"create_board":           s.createBoard,
		"close_board":            s.closeBoard,
		"add_task":               s.addTask,
		"update_task_status":     s.updateTaskStatus,
		"list_boards":            s.listBoards,
		"export_board":           s.exportBoard,
	}
	return s
}

// noRequest lists the operations that ignore their request document.
var noRequest = map[string]bool{
	"list_users": true,
	"list_teams": true,
}

// TakesRequest reports whether op reads a request document.
func TakesRequest(op string) bool {
	return !noRequest[op]
}

// Operations returns the operation names accepted by Call, sorted.
func (s *Service) Operations() []string {
	names := make([]string, 0, len(s.handlers))
	for name := range s.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call runs the named operation. An unknown name yields a ValidationError
// envelope.
func (s *Service) Call(op, request string) string {
	h, ok := s.handlers[op]
	if !ok {
		h = func([]byte) (any, error) {
			return nil, types.NewError(types.KindValidation, fmt.Sprintf("unknown operation %q", op))
		}
	}
	return s.handle(op, request, h)
}

// handle runs h and renders its outcome as a response document.
func (s *Service) handle(op, request string, h handlerFunc) (response string) {
	requestID := newRequestID()
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("operation panicked",
				"op", op,
				"request_id", requestID,
				"panic", r,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			response = render(Failure{Error: string(types.KindInternal), Message: MsgInternal})
		}
	}()

	payload, err := h([]byte(request))
	duration := time.Since(start).Milliseconds()
	if err != nil {
		f := failureFor(err)
		if f.Error == string(types.KindInternal) {
			s.logger.Error("operation failed",
				"op", op,
				"request_id", requestID,
				"error", err,
				"duration_ms", duration,
			)
		} else {
			s.logger.Warn("operation rejected",
				"op", op,
				"request_id", requestID,
				"kind", f.Error,
				"message", f.Message,
				"duration_ms", duration,
			)
		}
		return render(f)
	}

	s.logger.Info("operation ok",
		"op", op,
		"request_id", requestID,
		"duration_ms", duration,
	)
	return render(payload)
}

// failureFor maps err onto the failure envelope. Anything outside the error
// taxonomy is reported as InternalError without detail.
func failureFor(err error) Failure {
	var e *types.Error
	if !errors.As(err, &e) || e.Kind == types.KindInternal {
		return Failure{Error: string(types.KindInternal), Message: MsgInternal}
	}
	msg := e.Message
	if msg == "" {
		msg = MsgDefault
	}
	return Failure{Error: string(e.Kind), Message: msg}
}

func render(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return `{"error":"InternalError","message":"Internal server error"}`
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

// decode parses a request object into dst. Anything other than a JSON
// object, or an object whose fields have the wrong types, is a
// ValidationError.
func decode(request []byte, dst any) error {
	trimmed := bytes.TrimSpace(request)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return types.NewError(types.KindValidation, MsgMalformedRequest)
	}
	if err := json.Unmarshal(trimmed, dst); err != nil {
		return types.NewError(types.KindValidation, MsgMalformedRequest)
	}
	return nil
}

// newRequestID returns a UUID v7, falling back to v4.
func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
