package api

import (
	"github.com/mesh-intelligence/planboard/internal/teams"
	"github.com/mesh-intelligence/planboard/internal/users"
)

type idRequest struct {
	ID string `json:"id"`
}

type createUserRequest struct {
	Name         string `json:"name"`
	DisplayName  string `json:"display_name"`
	CreationTime string `json:"creation_time"`
}

type updateUserRequest struct {
	ID   string      `json:"id"`
	User users.Patch `json:"user"`
}

type createTeamRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Admin        string `json:"admin"`
	CreationTime string `json:"creation_time"`
}

type updateTeamRequest struct {
	ID   string      `json:"id"`
	Team teams.Patch `json:"team"`
}

type membershipRequest struct {
	ID    string   `json:"id"`
	Users []string `json:"users"`
}

type createBoardRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	TeamID       string `json:"team_id"`
	CreationTime string `json:"creation_time"`
}

type closeBoardRequest struct {
	ID      string  `json:"id"`
	EndTime *string `json:"end_time"`
}

type addTaskRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	UserID       string `json:"user_id"`
	BoardID      string `json:"board_id"`
	CreationTime string `json:"creation_time"`
}

type taskStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Users.

// CreateUser handles create_user.
func (s *Service) CreateUser(request string) string {
	return s.handle("create_user", request, s.createUser)
}

// ListUsers handles list_users. It takes no request.
func (s *Service) ListUsers() string {
	return s.handle("list_users", "", s.listUsers)
}

// DescribeUser handles describe_user.
func (s *Service) DescribeUser(request string) string {
	return s.handle("describe_user", request, s.describeUser)
}

// UpdateUser handles update_user.
func (s *Service) UpdateUser(request string) string {
	return s.handle("update_user", request, s.updateUser)
}

// GetUserTeams handles get_user_teams.
func (s *Service) GetUserTeams(request string) string {
	return s.handle("get_user_teams", request, s.getUserTeams)
}

func (s *Service) createUser(request []byte) (any, error) {
	var req createUserRequest
	if err := decode(request, &req); err != nil {
		return nil, err
	}
	id, err := s.users.Create(req.Name, req.DisplayName, req.CreationTime)
	if err != nil {
		return nil, err
	}
	return IDResponse{ID: id}, nil
}

func (s *Service) listUsers([]byte) (any, error) {
	return s.users.List(), nil
}

func (s *Service) describeUser(request []byte) (any, error) {
	var req idRequest
	if err := decode(request, &req); err != nil {
		return nil, err
	}
	return s.users.Describe(req.ID)
}

func (s *Service) updateUser(request []byte) (any, error) {
	var req updateUserRequest
	if err := decode(request, &req); err != nil {
		return nil, err
	}
	if err := s.users.Update(req.ID, req.User); err != nil {
		return nil, err
	}
	return IDResponse{ID: req.ID}, nil
}

func (s *Service) getUserTeams(request []byte) (any, error) {
	var req idRequest
	if err := decode(request, &req); err != nil {
		return nil, err
	}
	return s.users.Teams(req.ID), nil
}

// Teams.

// CreateTeam handles create_team.
func (s *Service) CreateTeam(request string) string {
	return s.handle("create_team", request, s.createTeam)
}

// ListTeams handles list_teams. It takes no request.
func (s *Service) ListTeams() string {
	return s.handle("list_teams", "", s.listTeams)
}

// DescribeTeam handles describe_team.
func (s *Service) DescribeTeam(request string) string {
	return s.handle("describe_team", request, s.describeTeam)
}

// UpdateTeam handles update_team.
func (s *Service) UpdateTeam(request string) string {
	return s.handle("update_team", request, s.updateTeam)
}

// AddUsersToTeam handles add_users_to_team.
func (s *Service) AddUsersToTeam(request string) string {
	return s.handle("add_users_to_team", request, s.addUsersToTeam)
}

// RemoveUsersFromTeam handles remove_users_from_team.
func (s *Service) RemoveUsersFromTeam(request string) string {
	return s.handle("remove_users_from_team", request, s.removeUsersFromTeam)
}

// ListTeamUsers handles list_team_users.
func (s *Service) ListTeamUsers(request string) string {
	return s.handle("list_team_users", request, s.listTeamUsers)
}

func (s *Service) createTeam(request []byte) (any, error) {
	var req createTeamRequest
	if err := decode(request, &req); err != nil {
		return nil, err
	}
	id, err := s.teams.Create(req.Name, req.Description, req.Admin, req.CreationTime)
	if err != nil {
		return nil, err
	}
	return IDResponse{ID: id}, nil
}

func (s *Service) listTeams([]byte) (any, error) {
	return s.teams.List(), nil
}

func (s *Service) describeTeam(request []byte) (any, error) {
	var req idRequest
	if err := decode(request, &req); err != nil {
		return nil, err
	}
	return s.teams.Describe(req.ID)
}

func (s *Service) updateTeam(request []byte) (any, error) {
	var req updateTeamRequest
	if err := decode(request, &req); err != nil {
		return nil, err
	}
	if err := s.teams.Update(req.ID, req.Team); err != nil {
		return nil, err
	}
	return IDResponse{ID: req.ID}, nil
}

func (s *Service) addUsersToTeam(request []byte) (any, error) {
	var req membershipRequest
	if err := decode(request, &req); err != nil {
		return nil, err
	}
	if err := s.teams.AddUsers(req.ID, req.Users); err != nil {
		return nil, err
	}
	return IDResponse{ID: req.ID}, nil
}

func (s *Service) removeUsersFromTeam(request []byte) (any, error) {
	var req membershipRequest
	if err := decode(request, &req); err != nil {
		return nil, err
	}
	if err := s.teams.RemoveUsers(req.ID, req.Users); err != nil {
		return nil, err
	}
	return IDResponse{ID: req.ID}, nil
}

func (s *Service) listTeamUsers(request []byte) (any, error) {
	var req idRequest
	if err := decode(request, &req); err != nil {
		return nil, err
	}
	return s.teams.Users(req.ID)
}

// Boards and tasks.

// CreateBoard handles create_board.
func (s *Service) CreateBoard(request string) string {
	return s.handle("create_board", request, s.createBoard)
}

// CloseBoard handles close_board.
func (s *Service) CloseBoard(request string) string {
	return s.handle("close_board", request, s.closeBoard)
}

// AddTask handles add_task.
func (s *Service) AddTask(request string) string {
	return s.handle("add_task", request, s.addTask)
}

// UpdateTaskStatus handles update_task_status.
func (s *Service) UpdateTaskStatus(request string) string {
	return s.handle("update_task_status", request, s.updateTaskStatus)
}

// ListBoards handles list_boards. The request id is a team id.
func (s *Service) ListBoards(request string) string {
	return s.handle("list_boards", request, s.listBoards)
}

// ExportBoard handles export_board.
func (s *Service) ExportBoard(request string) string {
	return s.handle("export_board", request, s.exportBoard)
}

func (s *Service) createBoard(request []byte) (any, error) {
	var req createBoardRequest
	if err := decode(request, &req); err != nil {
		return nil, err
	}
	id, err := s.boards.CreateBoard(req.Name, req.Description, req.TeamID, req.CreationTime)
	if err != nil {
		return nil, err
	}
	return IDResponse{ID: id}, nil
}

func (s *Service) closeBoard(request []byte) (any, error) {
	var req closeBoardRequest
	if err := decode(request, &req); err != nil {
		return nil, err
	}
	if err := s.boards.CloseBoard(req.ID, req.EndTime); err != nil {
		return nil, err
	}
	return IDResponse{ID: req.ID}, nil
}

func (s *Service) addTask(request []byte) (any, error) {
	var req addTaskRequest
	if err := decode(request, &req); err != nil {
		return nil, err
	}
	id, err := s.boards.AddTask(req.Title, req.Description, req.UserID, req.BoardID, req.CreationTime)
	if err != nil {
		return nil, err
	}
	return IDResponse{ID: id}, nil
}

func (s *Service) updateTaskStatus(request []byte) (any, error) {
	var req taskStatusRequest
	if err := decode(request, &req); err != nil {
		return nil, err
	}
	if err := s.boards.UpdateTaskStatus(req.ID, req.Status); err != nil {
		return nil, err
	}
	return IDResponse{ID: req.ID}, nil
}

func (s *Service) listBoards(request []byte) (any, error) {
	var req idRequest
	if err := decode(request, &req); err != nil {
		return nil, err
	}
	return s.boards.ListBoards(req.ID), nil
}

func (s *Service) exportBoard(request []byte) (any, error) {
	var req idRequest
	if err := decode(request, &req); err != nil {
		return nil, err
	}
	name, err := s.boards.ExportBoard(req.ID)
	if err != nil {
		return nil, err
	}
	return ExportResponse{OutFile: name}, nil
}
