package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/tasks-api/internal/api"
	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   8080,
			LogLevel:               "info",
			ShutdownTimeoutSeconds: 1,
		},
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	app, err := newApplication(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	srv := httptest.NewServer(app.setupRouter())
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, srv *httptest.Server, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeTask(t *testing.T, resp *http.Response) api.TaskResponse {
	t.Helper()
	var task api.TaskResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&task))
	return task
}

func decodeTasks(t *testing.T, resp *http.Response) []api.TaskResponse {
	t.Helper()
	var tasks []api.TaskResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tasks))
	return tasks
}

func TestNewApplication(t *testing.T) {
	_, err := newApplication(nil, nil)
	assert.Error(t, err)

	app, err := newApplication(testConfig(), nil)
	require.NoError(t, err)
	assert.NotNil(t, app.taskService)
	assert.NotNil(t, app.taskStore)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "OK", string(body))
}

func TestCreateTask(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPost, "/tasks/", map[string]string{
		"title":       "Test Task",
		"description": "Test Description",
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))
	task := decodeTask(t, resp)
	assert.Equal(t, 1, task.ID)
	assert.Equal(t, "Test Task", task.Title)
	require.NotNil(t, task.Description)
	assert.Equal(t, "Test Description", *task.Description)
	assert.False(t, task.Completed)
}

func TestCreateTaskIgnoresCompleted(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPost, "/tasks", map[string]interface{}{
		"title":     "Already done?",
		"completed": true,
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decodeTask(t, resp).Completed)
}

func TestCreateTaskWithoutTitle(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPost, "/tasks/", map[string]string{"description": "x"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	list := doJSON(t, srv, http.MethodGet, "/tasks/", nil)
	assert.Empty(t, decodeTasks(t, list))
}

func TestListTasks(t *testing.T) {
	srv := newTestServer(t)

	for _, title := range []string{"Task 1", "Task 2"} {
		resp := doJSON(t, srv, http.MethodPost, "/tasks/", map[string]string{"title": title})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp := doJSON(t, srv, http.MethodGet, "/tasks/", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	tasks := decodeTasks(t, resp)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Task 1", tasks[0].Title)
	assert.Equal(t, "Task 2", tasks[1].Title)
	assert.Nil(t, tasks[0].Description)
}

func TestGetTask(t *testing.T) {
	srv := newTestServer(t)
	created := decodeTask(t, doJSON(t, srv, http.MethodPost, "/tasks/", map[string]string{"title": "Find me"}))

	resp := doJSON(t, srv, http.MethodGet, "/tasks/1", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, created, decodeTask(t, resp))
}

func TestGetNonexistentTask(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodGet, "/tasks/999", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Task not found", body["error"])
	assert.Equal(t, resp.Header.Get("X-Trace-ID"), body["trace_id"])
}

func TestUpdateTask(t *testing.T) {
	srv := newTestServer(t)
	doJSON(t, srv, http.MethodPost, "/tasks/", map[string]string{
		"title":       "Original Title",
		"description": "Original Description",
	})

	resp := doJSON(t, srv, http.MethodPut, "/tasks/1", map[string]bool{"completed": true})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	task := decodeTask(t, resp)
	assert.True(t, task.Completed)
	assert.Equal(t, "Original Title", task.Title)
	require.NotNil(t, task.Description)
	assert.Equal(t, "Original Description", *task.Description)

	t.Run("explicit false reopens", func(t *testing.T) {
		resp := doJSON(t, srv, http.MethodPut, "/tasks/1", map[string]bool{"completed": false})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.False(t, decodeTask(t, resp).Completed)
	})

	t.Run("empty description clears it", func(t *testing.T) {
		resp := doJSON(t, srv, http.MethodPut, "/tasks/1", map[string]string{"description": ""})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Nil(t, decodeTask(t, resp).Description)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		resp := doJSON(t, srv, http.MethodPut, "/tasks/1", map[string]string{"title": ""})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		got := decodeTask(t, doJSON(t, srv, http.MethodGet, "/tasks/1", nil))
		assert.Equal(t, "Original Title", got.Title)
	})

	t.Run("missing task", func(t *testing.T) {
		resp := doJSON(t, srv, http.MethodPut, "/tasks/42", map[string]bool{"completed": true})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestDeleteTask(t *testing.T) {
	srv := newTestServer(t)
	doJSON(t, srv, http.MethodPost, "/tasks/", map[string]string{"title": "To Delete"})

	resp := doJSON(t, srv, http.MethodDelete, "/tasks/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "To Delete", decodeTask(t, resp).Title)

	resp = doJSON(t, srv, http.MethodGet, "/tasks/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestNonIntegerID(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodGet, "/tasks/abc", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGroceriesScenario(t *testing.T) {
	srv := newTestServer(t)

	created := decodeTask(t, doJSON(t, srv, http.MethodPost, "/tasks/", map[string]string{
		"title":       "Buy groceries",
		"description": "Milk, eggs, bread",
	}))
	assert.Equal(t, 1, created.ID)
	assert.False(t, created.Completed)

	updated := decodeTask(t, doJSON(t, srv, http.MethodPut, "/tasks/1", map[string]interface{}{
		"title":     "Buy groceries and more",
		"completed": true,
	}))
	assert.Equal(t, 1, updated.ID)
	assert.Equal(t, "Buy groceries and more", updated.Title)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "Milk, eggs, bread", *updated.Description)
	assert.True(t, updated.Completed)

	resp := doJSON(t, srv, http.MethodDelete, "/tasks/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, srv, http.MethodGet, "/tasks/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestIDReuseAfterDeletingMax(t *testing.T) {
	srv := newTestServer(t)
	for _, title := range []string{"a", "b"} {
		doJSON(t, srv, http.MethodPost, "/tasks/", map[string]string{"title": title})
	}

	doJSON(t, srv, http.MethodDelete, "/tasks/2", nil)
	next := decodeTask(t, doJSON(t, srv, http.MethodPost, "/tasks/", map[string]string{"title": "c"}))

	assert.Equal(t, 2, next.ID)
}
