package httpapi

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"lentoflow/internal/repository"
	"lentoflow/internal/service"
)

// Server wires the JSON API: request ID tagging, access logging, bearer auth,
// then the routed handlers.
type Server struct {
	today  service.TodayService
	tasks  service.TaskService
	stats  service.StatsService
	tokens repository.TokenRepo
	logger zerolog.Logger
}

func NewServer(
	today service.TodayService,
	tasks service.TaskService,
	stats service.StatsService,
	tokens repository.TokenRepo,
	logger zerolog.Logger,
) *Server {
	return &Server{
		today:  today,
		tasks:  tasks,
		stats:  stats,
		tokens: tokens,
		logger: logger,
	}
}

// Handler builds the full middleware chain. Everything under /api requires a
// bearer token; /healthz does not.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()

	api.HandleFunc("GET /api/today", s.handleTodayView)
	api.HandleFunc("POST /api/today/complete/{task_id}", s.handleCompleteTask)
	api.HandleFunc("DELETE /api/today/complete/{task_id}", s.handleUncompleteTask)

	api.HandleFunc("GET /api/tasks", s.handleListTasks)
	api.HandleFunc("POST /api/tasks", s.handleCreateTask)
	api.HandleFunc("GET /api/tasks/{task_id}", s.handleGetTask)
	api.HandleFunc("PUT /api/tasks/{task_id}", s.handleUpdateTask)
	api.HandleFunc("DELETE /api/tasks/{task_id}", s.handleDeleteTask)

	api.HandleFunc("GET /api/stats/daily", s.handleDailyStats)
	api.HandleFunc("GET /api/stats/weekly", s.handleWeeklyStats)
	api.HandleFunc("GET /api/stats/monthly", s.handleMonthlyStats)
	api.HandleFunc("GET /api/stats/heatmap", s.handleHeatmap)
	api.HandleFunc("GET /api/stats/task/{task_id}", s.handleTaskStats)

	root := http.NewServeMux()
	root.Handle("/api/", s.withAuth(api))
	root.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return withRequestID(withAccessLog(s.logger, root))
}

// pathID parses the named path segment as a positive integer ID.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryInt reads a positive integer query parameter, falling back to def when
// absent.
func queryInt(r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
