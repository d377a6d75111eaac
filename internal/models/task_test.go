package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTaskStateCaseInsensitive(t *testing.T) {
	cases := map[string]TaskState{
		"SUCCESS":    TaskSuccess,
		"success":    TaskSuccess,
		"Success":    TaskSuccess,
		"FAILED":     TaskFailed,
		"failed":     TaskFailed,
		"PENDING":    TaskPending,
		"pending":    TaskPending,
		"PROCESSING": TaskProcessing,
		"SENT":       TaskSent,
		" sent ":     TaskSent,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ParseTaskState(raw), "raw=%q", raw)
	}
}

func TestParseTaskStatePreservesUnknown(t *testing.T) {
	got := ParseTaskState("RETRYING")
	assert.Equal(t, TaskState("RETRYING"), got)
	assert.False(t, got.Known())
	assert.False(t, got.Terminal())
	assert.False(t, got.InProgress())
}

func TestTerminalAndInProgress(t *testing.T) {
	assert.True(t, TaskSuccess.Terminal())
	assert.True(t, TaskFailed.Terminal())
	assert.False(t, TaskPending.Terminal())

	assert.True(t, TaskPending.InProgress())
	assert.True(t, TaskProcessing.InProgress())
	assert.True(t, TaskSent.InProgress())
	assert.False(t, TaskSuccess.InProgress())
}
