package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"lentoflow/internal/contract"
)

func (s *Server) handleTodayView(w http.ResponseWriter, r *http.Request) {
	view, err := s.today.View(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(r, "task_id")
	if !ok {
		writeDetail(w, http.StatusBadRequest, "invalid task id")
		return
	}

	// The note/mood body is optional.
	var req contract.CompleteTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	receipt, err := s.today.Complete(r.Context(), userIDFrom(r.Context()), taskID, req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, receipt)
}

func (s *Server) handleUncompleteTask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(r, "task_id")
	if !ok {
		writeDetail(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := s.today.Uncomplete(r.Context(), userIDFrom(r.Context()), taskID); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "已撤销完成",
	})
}
