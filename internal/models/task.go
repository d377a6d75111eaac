package models

import "strings"

// TaskState is the remote generation service's reported status for a
// submitted task. The service has been observed to report states in
// both upper and lower case, so all comparisons are case-insensitive.
type TaskState string

const (
	TaskPending    TaskState = "PENDING"
	TaskProcessing TaskState = "PROCESSING"
	TaskSent       TaskState = "SENT"
	TaskSuccess    TaskState = "SUCCESS"
	TaskFailed     TaskState = "FAILED"
)

// ParseTaskState normalizes a raw status string into a TaskState.
// Unrecognized values are preserved as-is so callers can log them.
func ParseTaskState(raw string) TaskState {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(TaskPending):
		return TaskPending
	case string(TaskProcessing):
		return TaskProcessing
	case string(TaskSent):
		return TaskSent
	case string(TaskSuccess):
		return TaskSuccess
	case string(TaskFailed):
		return TaskFailed
	default:
		return TaskState(raw)
	}
}

// Terminal reports whether the task has finished, successfully or not.
// Polling stops at a terminal state.
func (s TaskState) Terminal() bool {
	return s == TaskSuccess || s == TaskFailed
}

// InProgress reports whether the state is one of the known
// intermediate markers that mean "keep polling".
func (s TaskState) InProgress() bool {
	return s == TaskPending || s == TaskProcessing || s == TaskSent
}

// Known reports whether the state is part of the documented enumeration.
func (s TaskState) Known() bool {
	return s.Terminal() || s.InProgress()
}
