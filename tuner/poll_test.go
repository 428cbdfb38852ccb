package tuner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTuner struct {
	fileStatuses []string
	jobStatuses  []Status

	fileCalls int
	jobCalls  int
}

func (f *fakeTuner) UploadTrainingFile(ctx context.Context, path string) (File, error) {
	return File{ID: "file-1", Status: "uploaded"}, nil
}

func (f *fakeTuner) RetrieveFile(ctx context.Context, fileID string) (File, error) {
	status := f.fileStatuses[min(f.fileCalls, len(f.fileStatuses)-1)]
	f.fileCalls++
	return File{ID: fileID, Status: status}, nil
}

func (f *fakeTuner) CreateJob(ctx context.Context, trainingFileID string, model string, epochs int) (Job, error) {
	return Job{ID: "job-1", Status: StatusQueued}, nil
}

func (f *fakeTuner) RetrieveJob(ctx context.Context, jobID string) (Job, error) {
	status := f.jobStatuses[min(f.jobCalls, len(f.jobStatuses)-1)]
	f.jobCalls++
	return Job{ID: jobID, Status: status}, nil
}

func (f *fakeTuner) CancelJob(ctx context.Context, jobID string) (Job, error) {
	return Job{ID: jobID, Status: StatusCancelled}, nil
}

func (f *fakeTuner) ListEvents(ctx context.Context, jobID string, limit int) ([]Event, error) {
	return nil, nil
}

func TestStatusTerminal(t *testing.T) {
	tests := []struct {
		status   Status
		terminal bool
	}{
		{StatusQueued, false},
		{StatusValidatingFiles, false},
		{StatusRunning, false},
		{StatusSucceeded, true},
		{StatusFailed, true},
		{StatusCancelled, true},
	}

	for _, test := range tests {
		assert.Equal(t, test.terminal, test.status.Terminal(), "status %s", test.status)
	}

	assert.True(t, StatusSucceeded.Succeeded())
	assert.False(t, StatusFailed.Succeeded())
}

func TestAwaitFile(t *testing.T) {
	t.Run("returns once processed", func(t *testing.T) {
		fake := &fakeTuner{fileStatuses: []string{"uploaded", "uploaded", "processed"}}

		file, err := AwaitFile(context.Background(), fake, "file-1", time.Millisecond, 10)
		require.NoError(t, err)
		assert.True(t, file.Processed())
		assert.Equal(t, 3, fake.fileCalls)
	})

	t.Run("fails on rejected file", func(t *testing.T) {
		fake := &fakeTuner{fileStatuses: []string{"uploaded", "error"}}

		_, err := AwaitFile(context.Background(), fake, "file-1", time.Millisecond, 10)
		require.Error(t, err)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		fake := &fakeTuner{fileStatuses: []string{"uploaded"}}

		_, err := AwaitFile(context.Background(), fake, "file-1", time.Millisecond, 3)
		require.ErrorIs(t, err, ErrAttemptsExhausted)
		assert.Equal(t, 3, fake.fileCalls)
	})
}

func TestAwaitJob(t *testing.T) {
	t.Run("returns on success", func(t *testing.T) {
		fake := &fakeTuner{jobStatuses: []Status{StatusQueued, StatusRunning, StatusSucceeded}}

		job, err := AwaitJob(context.Background(), fake, "job-1", time.Millisecond, 10)
		require.NoError(t, err)
		assert.Equal(t, StatusSucceeded, job.Status)
		assert.Equal(t, 3, fake.jobCalls)
	})

	t.Run("a failed job is terminal, not an error", func(t *testing.T) {
		fake := &fakeTuner{jobStatuses: []Status{StatusRunning, StatusFailed}}

		job, err := AwaitJob(context.Background(), fake, "job-1", time.Millisecond, 10)
		require.NoError(t, err)
		assert.Equal(t, StatusFailed, job.Status)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		fake := &fakeTuner{jobStatuses: []Status{StatusRunning}}

		_, err := AwaitJob(context.Background(), fake, "job-1", time.Millisecond, 4)
		require.ErrorIs(t, err, ErrAttemptsExhausted)
		assert.Equal(t, 4, fake.jobCalls)
	})

	t.Run("stops on context cancellation", func(t *testing.T) {
		fake := &fakeTuner{jobStatuses: []Status{StatusRunning}}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := AwaitJob(ctx, fake, "job-1", time.Minute, 10)
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, fake.jobCalls)
	})
}
