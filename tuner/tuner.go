// Package tuner manages fine-tuning jobs on a hosted model API: training
// file upload, job creation, status checks, and bounded polling until a
// terminal state.
package tuner

import (
	"context"
	"time"
)

// Status is a fine-tuning job state as reported by the API.
type Status string

const (
	StatusQueued          Status = "queued"
	StatusValidatingFiles Status = "validating_files"
	StatusRunning         Status = "running"
	StatusSucceeded       Status = "succeeded"
	StatusFailed          Status = "failed"
	StatusCancelled       Status = "cancelled"
)

// Terminal reports whether the job can make no further progress.
func (s Status) Terminal() bool {
	switch s {
	case StatusSucceeded, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

func (s Status) Succeeded() bool {
	return s == StatusSucceeded
}

// File is an uploaded training file. Status is one of "uploaded",
// "processed", or "error".
type File struct {
	ID     string
	Name   string
	Status string
	Bytes  int
}

// Processed reports whether the file is ready for fine-tuning.
func (f File) Processed() bool {
	return f.Status == "processed"
}

// Failed reports whether processing rejected the file.
func (f File) Failed() bool {
	return f.Status == "error"
}

type Job struct {
	ID             string
	Model          string
	Status         Status
	TrainingFileID string
	FineTunedModel string
	TrainedTokens  int
	Epochs         int
	CreatedAt      time.Time
	FinishedAt     time.Time
}

type Event struct {
	CreatedAt time.Time
	Level     string
	Message   string
}

type Tuner interface {
	UploadTrainingFile(ctx context.Context, path string) (File, error)
	RetrieveFile(ctx context.Context, fileID string) (File, error)
	CreateJob(ctx context.Context, trainingFileID string, model string, epochs int) (Job, error)
	RetrieveJob(ctx context.Context, jobID string) (Job, error)
	CancelJob(ctx context.Context, jobID string) (Job, error)
	ListEvents(ctx context.Context, jobID string, limit int) ([]Event, error)
}
