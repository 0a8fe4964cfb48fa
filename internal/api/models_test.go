package api

import (
	"encoding/json"
	"testing"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateTaskRequestDistinguishesAbsentFromZero(t *testing.T) {
	var req UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"description":"","completed":false}`), &req))

	u := req.ToUpdate()

	assert.Nil(t, u.Title)
	require.NotNil(t, u.Description)
	assert.Equal(t, "", *u.Description)
	require.NotNil(t, u.Completed)
	assert.False(t, *u.Completed)
	assert.NoError(t, req.Validate())
}

func TestUpdateTaskRequestValidate(t *testing.T) {
	req := UpdateTaskRequest{Title: strPtr("  ")}
	assert.ErrorIs(t, req.Validate(), domain.ErrValidation)

	req = UpdateTaskRequest{Title: strPtr("ok"), Completed: boolPtr(true)}
	assert.NoError(t, req.Validate())
}

func TestTaskToResponse(t *testing.T) {
	task := &domain.Task{ID: 4, Title: "t", Description: strPtr("d"), Completed: true}

	data, err := json.Marshal(taskToResponse(task))

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":4,"title":"t","description":"d","completed":true}`, string(data))
}

func TestTasksToResponseNeverNil(t *testing.T) {
	data, err := json.Marshal(tasksToResponse(nil))

	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
