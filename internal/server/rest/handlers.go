package rest

import (
	"net/http"

	"github.com/dmitrijs2005/gophtasks/internal/common"
	"github.com/dmitrijs2005/gophtasks/internal/server/models"
	"github.com/dmitrijs2005/gophtasks/internal/server/services"
	"github.com/labstack/echo/v4"
)

const (
	msgRegistered  = "User registered successfully"
	msgTaskDeleted = "Task deleted successfully"
	msgBadBody     = "Invalid request body"
	msgBadPaging   = "page and limit must be integers"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func badBody() error {
	return common.NewError(common.ErrValidation, msgBadBody)
}

func (s *Server) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return badBody()
	}

	ctx := c.Request().Context()
	u, err := s.auth.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "User registered", "user_id", u.ID)
	return c.JSON(http.StatusCreated, messageResponse{Message: msgRegistered})
}

func (s *Server) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return badBody()
	}

	ctx := c.Request().Context()
	token, err := s.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "User logged in")
	return c.JSON(http.StatusOK, loginResponse{Token: token})
}

func (s *Server) listTasks(c echo.Context) error {
	tasks, err := s.tasks.List(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

func (s *Server) createTask(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return badBody()
	}

	ctx := c.Request().Context()
	task, err := s.tasks.Create(ctx, currentUser(c).ID, req.Title, req.Description)
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "Task created", "task_id", task.ID)
	return c.JSON(http.StatusCreated, task)
}

func (s *Server) updateTask(c echo.Context) error {
	var patch models.TaskPatch
	if err := c.Bind(&patch); err != nil {
		return badBody()
	}

	ctx := c.Request().Context()
	task, err := s.tasks.Update(ctx, currentUser(c).ID, c.Param("id"), patch)
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "Task updated", "task_id", task.ID)
	return c.JSON(http.StatusOK, task)
}

func (s *Server) deleteTask(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")
	if err := s.tasks.Remove(ctx, currentUser(c).ID, id); err != nil {
		return err
	}

	s.logger.Info(ctx, "Task deleted", "task_id", id)
	return c.JSON(http.StatusOK, messageResponse{Message: msgTaskDeleted})
}

func (s *Server) listTasksPaged(c echo.Context) error {
	page, limit := services.DefaultPage, services.DefaultPageLimit
	if err := echo.QueryParamsBinder(c).
		Int("page", &page).
		Int("limit", &limit).
		BindError(); err != nil {
		return common.NewError(common.ErrValidation, msgBadPaging)
	}

	result, err := s.tasks.ListPaged(c.Request().Context(), currentUser(c).ID, page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (s *Server) searchTasks(c echo.Context) error {
	tasks, err := s.tasks.Search(c.Request().Context(), currentUser(c).ID, c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// filterTasks treats an absent completed parameter as "all"; any present
// value other than "true" selects incomplete tasks.
func (s *Server) filterTasks(c echo.Context) error {
	var completed *bool
	if values, ok := c.QueryParams()["completed"]; ok {
		v := len(values) > 0 && values[0] == "true"
		completed = &v
	}

	tasks, err := s.tasks.Filter(c.Request().Context(), currentUser(c).ID, completed)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

func (s *Server) exportTasks(c echo.Context) error {
	ctx := c.Request().Context()
	exp, err := s.exports.Export(ctx, currentUser(c).ID)
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "Tasks exported", "key", exp.Key, "count", exp.TaskCount)
	return c.JSON(http.StatusCreated, exp)
}

func (s *Server) healthz(c echo.Context) error {
	if err := s.store.Ping(c.Request().Context()); err != nil {
		s.logger.Warn(c.Request().Context(), "store unreachable", "error", err)
		return c.JSON(http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
	}
	return c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}
