package tasks

import (
	"testing"
	"time"
)

func TestNewTask(t *testing.T) {
	task := NewTask(TaskTypeRefreshFeed)

	if task.GetType() != TaskTypeRefreshFeed {
		t.Errorf("Expected type '%s', got '%s'", TaskTypeRefreshFeed, task.GetType())
	}
	if task.GetID() == "" {
		t.Error("Expected non-empty task ID")
	}
	if task.GetRetryCount() != 0 {
		t.Errorf("Expected retry count 0, got %d", task.GetRetryCount())
	}
	if task.GetMaxRetries() != DefaultMaxRetries {
		t.Errorf("Expected max retries %d, got %d", DefaultMaxRetries, task.GetMaxRetries())
	}
}

func TestTaskRetryBookkeeping(t *testing.T) {
	task := NewTask(TaskTypeRefreshFeed)

	for i := 0; i < DefaultMaxRetries; i++ {
		if !task.CanRetry() {
			t.Fatalf("Expected CanRetry to be true at retry count %d", task.GetRetryCount())
		}
		task.IncrementRetryCount()
	}

	if task.CanRetry() {
		t.Error("Expected CanRetry to be false after reaching max retries")
	}
	if task.GetRetryCount() != DefaultMaxRetries {
		t.Errorf("Expected retry count %d, got %d", DefaultMaxRetries, task.GetRetryCount())
	}
}

func TestTaskDuration(t *testing.T) {
	task := NewTask(TaskTypeRefreshFeed)

	if task.GetDuration() != 0 {
		t.Error("Expected zero duration before Start")
	}

	task.Start()
	time.Sleep(time.Millisecond)

	if task.GetDuration() <= 0 {
		t.Error("Expected positive duration after Start")
	}
}
