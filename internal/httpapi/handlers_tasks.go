package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"lentoflow/internal/contract"
	"lentoflow/internal/repository"
)

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.TaskFilter{Limit: 100}

	if raw := query.Get("skip"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeDetail(w, http.StatusBadRequest, "skip must be a non-negative integer")
			return
		}
		filter.Skip = n
	}
	if raw := query.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeDetail(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		filter.Limit = n
	}
	if category := query.Get("category"); category != "" {
		filter.Category = &category
	}
	if raw := query.Get("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			writeDetail(w, http.StatusBadRequest, "is_active must be a boolean")
			return
		}
		filter.IsActive = &active
	}

	tasks, err := s.tasks.List(r.Context(), userIDFrom(r.Context()), filter)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req contract.TaskCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := s.tasks.Create(r.Context(), userIDFrom(r.Context()), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(r, "task_id")
	if !ok {
		writeDetail(w, http.StatusBadRequest, "invalid task id")
		return
	}

	task, err := s.tasks.Get(r.Context(), userIDFrom(r.Context()), taskID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(r, "task_id")
	if !ok {
		writeDetail(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var req contract.TaskUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := s.tasks.Update(r.Context(), userIDFrom(r.Context()), taskID, req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(r, "task_id")
	if !ok {
		writeDetail(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := s.tasks.Delete(r.Context(), userIDFrom(r.Context()), taskID); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
