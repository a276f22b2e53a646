package httpapi

import "net/http"

func (s *Server) handleDailyStats(w http.ResponseWriter, r *http.Request) {
	days, ok := queryInt(r, "days", 7)
	if !ok {
		writeDetail(w, http.StatusBadRequest, "days must be a positive integer")
		return
	}

	result, err := s.stats.Daily(r.Context(), userIDFrom(r.Context()), days)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleWeeklyStats(w http.ResponseWriter, r *http.Request) {
	weeks, ok := queryInt(r, "weeks", 4)
	if !ok {
		writeDetail(w, http.StatusBadRequest, "weeks must be a positive integer")
		return
	}

	result, err := s.stats.Weekly(r.Context(), userIDFrom(r.Context()), weeks)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleMonthlyStats(w http.ResponseWriter, r *http.Request) {
	months, ok := queryInt(r, "months", 6)
	if !ok {
		writeDetail(w, http.StatusBadRequest, "months must be a positive integer")
		return
	}

	result, err := s.stats.Monthly(r.Context(), userIDFrom(r.Context()), months)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHeatmap(w http.ResponseWriter, r *http.Request) {
	days, ok := queryInt(r, "days", 365)
	if !ok {
		writeDetail(w, http.StatusBadRequest, "days must be a positive integer")
		return
	}

	result, err := s.stats.Heatmap(r.Context(), userIDFrom(r.Context()), days)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleTaskStats(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(r, "task_id")
	if !ok {
		writeDetail(w, http.StatusBadRequest, "invalid task id")
		return
	}

	result, err := s.tasks.Stats(r.Context(), userIDFrom(r.Context()), taskID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
