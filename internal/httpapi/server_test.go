package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"lentoflow/internal/contract"
	"lentoflow/internal/repository"
	"lentoflow/internal/service"
	"lentoflow/internal/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testNow = time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)

const testToken = "tok-test"

// newTestServer wires a full API handler over an in-memory database with a
// fixed clock, one user, and one valid bearer token.
func newTestServer(t *testing.T) (http.Handler, int64) {
	t.Helper()
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	users := repository.NewSQLiteUserRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	completions := repository.NewSQLiteCompletionRepo(database)
	dailyLogs := repository.NewSQLiteDailyLogRepo(database)
	tokens := repository.NewSQLiteTokenRepo(database)

	user := testutil.NewTestUser()
	require.NoError(t, users.Create(ctx, user))
	require.NoError(t, tokens.Create(ctx, testToken, user.ID, testNow))

	clock := testutil.FixedClock{Instant: testNow}
	srv := NewServer(
		service.NewTodayService(users, tasks, completions, testutil.NewTestUoW(database), clock, time.UTC, nil),
		service.NewTaskService(tasks, completions, clock, time.UTC, nil),
		service.NewStatsService(tasks, completions, dailyLogs, clock, time.UTC, nil),
		tokens,
		zerolog.Nop(),
	)
	return srv.Handler(), user.ID
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }

func doRequest(t *testing.T, handler http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestAPI_RequiresBearerToken(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doRequest(t, handler, http.MethodGet, "/api/today", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", decodeBody[errorBody](t, rec).Detail)

	rec = doRequest(t, handler, http.MethodGet, "/api/today", "tok-wrong", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_HealthzIsOpen(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doRequest(t, handler, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestAPI_TodayView_FreshUser(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doRequest(t, handler, http.MethodGet, "/api/today", testToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	view := decodeBody[contract.TodayView](t, rec)
	assert.Equal(t, "2026-08-26", view.Date)
	assert.Equal(t, 15, view.EnergyBudget)
	assert.Equal(t, 15, view.EnergyRemaining)
	assert.Empty(t, view.RecommendedTasks)
	assert.Nil(t, view.DailyScore)
	assert.Equal(t, "empty", string(view.OverallHealth.Status))
	assert.Equal(t, "新的一天，新的开始！添加你想培养的习惯吧 ✨", view.MotivationalMessage)
}

func TestAPI_CompleteUndoFlow(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doRequest(t, handler, http.MethodPost, "/api/tasks", testToken,
		contract.TaskCreate{Name: "跑步", EnergyCost: 3, ExpectedInterval: 2, Importance: 5})
	require.Equal(t, http.StatusCreated, rec.Code)
	task := decodeBody[contract.TaskResponse](t, rec)

	// Mark done.
	rec = doRequest(t, handler, http.MethodPost, "/api/today/complete/"+itoa(task.ID), testToken, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	receipt := decodeBody[contract.CompletionReceipt](t, rec)
	assert.True(t, receipt.Success)
	assert.Equal(t, "已完成: 跑步 ✓", receipt.Message)

	// Same local day again: rejected.
	rec = doRequest(t, handler, http.MethodPost, "/api/today/complete/"+itoa(task.ID), testToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// The view now reflects the completion.
	rec = doRequest(t, handler, http.MethodGet, "/api/today", testToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeBody[contract.TodayView](t, rec)
	assert.Equal(t, 3, view.EnergySpent)
	require.NotNil(t, view.DailyScore)

	// Undo, then undo again.
	rec = doRequest(t, handler, http.MethodDelete, "/api/today/complete/"+itoa(task.ID), testToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, handler, http.MethodDelete, "/api/today/complete/"+itoa(task.ID), testToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_CompleteUnknownTask(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doRequest(t, handler, http.MethodPost, "/api/today/complete/999", testToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, handler, http.MethodPost, "/api/today/complete/abc", testToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_TaskValidationErrors(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doRequest(t, handler, http.MethodPost, "/api/tasks", testToken,
		contract.TaskCreate{Name: "x", EnergyCost: 6})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody[errorBody](t, rec).Detail, "energy_cost")

	rec = doRequest(t, handler, http.MethodPost, "/api/tasks", testToken,
		contract.TaskCreate{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_TaskCRUD(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doRequest(t, handler, http.MethodPost, "/api/tasks", testToken,
		contract.TaskCreate{Name: "读书", Category: "mind"})
	require.Equal(t, http.StatusCreated, rec.Code)
	task := decodeBody[contract.TaskResponse](t, rec)
	assert.Equal(t, 2, task.EnergyCost, "defaults applied")

	rec = doRequest(t, handler, http.MethodGet, "/api/tasks/"+itoa(task.ID), testToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	name := "晚间读书"
	rec = doRequest(t, handler, http.MethodPut, "/api/tasks/"+itoa(task.ID), testToken,
		contract.TaskUpdate{Name: &name})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "晚间读书", decodeBody[contract.TaskResponse](t, rec).Name)

	rec = doRequest(t, handler, http.MethodGet, "/api/tasks?category=mind", testToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]contract.TaskResponse](t, rec), 1)

	rec = doRequest(t, handler, http.MethodDelete, "/api/tasks/"+itoa(task.ID), testToken, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, handler, http.MethodGet, "/api/tasks/"+itoa(task.ID), testToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_StatsEndpoints(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doRequest(t, handler, http.MethodGet, "/api/stats/daily?days=3", testToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]contract.DailyStats](t, rec), 3)

	rec = doRequest(t, handler, http.MethodGet, "/api/stats/daily?days=0", testToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, handler, http.MethodGet, "/api/stats/weekly", testToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]contract.WeeklyStats](t, rec), 4)

	rec = doRequest(t, handler, http.MethodGet, "/api/stats/heatmap?days=7", testToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[contract.HeatmapData](t, rec).Data, 7)

	rec = doRequest(t, handler, http.MethodGet, "/api/stats/task/12345", testToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
