package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskSetStatus(t *testing.T) {
	statuses := []string{TaskStatusOpen, TaskStatusInProgress, TaskStatusComplete}

	// Any status may follow any other.
	for _, from := range statuses {
		for _, to := range statuses {
			t.Run(from+" to "+to, func(t *testing.T) {
				task := &Task{ID: "task_1", Status: from}
				assert.NoError(t, task.SetStatus(to))
				assert.Equal(t, to, task.Status)
			})
		}
	}

	t.Run("unknown status is rejected", func(t *testing.T) {
		task := &Task{ID: "task_1", Status: TaskStatusOpen}
		err := task.SetStatus("DONE")
		assert.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, TaskStatusOpen, task.Status)
	})

	t.Run("status is case sensitive", func(t *testing.T) {
		assert.False(t, ValidTaskStatus("complete"))
	})
}
