package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

type messageResponse struct {
	Message string `json:"message"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// createTaskRequest uses pointers for status and priority so an omitted
// field (nil) can be told apart from an explicitly provided empty string.
// Only omitted fields fall back to the schema defaults.
type createTaskRequest struct {
	Text     string  `json:"text"`
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type updatePriorityRequest struct {
	Priority string `json:"priority"`
}

type updateTextRequest struct {
	Text string `json:"text"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid request body"})
		return false
	}
	return true
}

func (s *HTTPServer) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error(r.Context(), err.Error())
	writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "internal error"})
}

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {

	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	_, err := s.users.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "User already exists"})
			return
		}
		s.internalError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "Registered", "username", req.Username)
	writeJSON(w, http.StatusOK, messageResponse{Message: "User registered"})
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {

	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	token, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUserNotFound):
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "User not found"})
		case errors.Is(err, common.ErrorInvalidCredentials):
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid credentials"})
		default:
			s.internalError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (s *HTTPServer) handleListTasks(w http.ResponseWriter, r *http.Request) {

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		s.internalError(w, r, common.ErrorInternal)
		return
	}

	result, err := s.tasks.List(r.Context(), userID)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *HTTPServer) handleCreateTask(w http.ResponseWriter, r *http.Request) {

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		s.internalError(w, r, common.ErrorInternal)
		return
	}

	var req createTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	task, err := s.tasks.Create(r.Context(), userID, req.Text, req.Status, req.Priority)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (s *HTTPServer) handleDeleteTask(w http.ResponseWriter, r *http.Request) {

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		s.internalError(w, r, common.ErrorInternal)
		return
	}

	if err := s.tasks.Delete(r.Context(), r.PathValue("id"), userID); err != nil {
		s.internalError(w, r, err)
		return
	}

	// delete is lenient: a missing or foreign id still reports success
	writeJSON(w, http.StatusOK, messageResponse{Message: "Task deleted"})
}

func (s *HTTPServer) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {

	var req updateStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	s.updateTask(w, r, func(userID string) (any, error) {
		return s.tasks.UpdateStatus(r.Context(), r.PathValue("id"), userID, req.Status)
	})
}

func (s *HTTPServer) handleUpdatePriority(w http.ResponseWriter, r *http.Request) {

	var req updatePriorityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	s.updateTask(w, r, func(userID string) (any, error) {
		return s.tasks.UpdatePriority(r.Context(), r.PathValue("id"), userID, req.Priority)
	})
}

func (s *HTTPServer) handleUpdateText(w http.ResponseWriter, r *http.Request) {

	var req updateTextRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	s.updateTask(w, r, func(userID string) (any, error) {
		return s.tasks.UpdateText(r.Context(), r.PathValue("id"), userID, req.Text)
	})
}

// updateTask shares the strict-update response shape: 404 when the task
// does not exist for this owner, the updated task otherwise.
func (s *HTTPServer) updateTask(w http.ResponseWriter, r *http.Request, update func(userID string) (any, error)) {

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		s.internalError(w, r, common.ErrorInternal)
		return
	}

	task, err := update(userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeJSON(w, http.StatusNotFound, messageResponse{Message: "Task not found"})
			return
		}
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}
