package tuner

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrAttemptsExhausted reports that polling stopped before reaching a
// terminal state. The last observed File or Job accompanies it.
var ErrAttemptsExhausted = errors.New("polling attempts exhausted")

// AwaitFile polls an uploaded file until it is processed or rejected,
// checking at most maxAttempts times with one interval between checks.
func AwaitFile(ctx context.Context, t Tuner, fileID string, interval time.Duration, maxAttempts int) (File, error) {
	var file File

	for attempt := 0; attempt < maxAttempts; attempt++ {
		var err error
		file, err = t.RetrieveFile(ctx, fileID)
		if err != nil {
			return File{}, err
		}

		if file.Processed() {
			return file, nil
		}
		if file.Failed() {
			return file, fmt.Errorf("file %s failed processing", fileID)
		}

		if err := wait(ctx, interval); err != nil {
			return file, err
		}
	}

	return file, fmt.Errorf("file %s still %q: %w", fileID, file.Status, ErrAttemptsExhausted)
}

// AwaitJob polls a fine-tuning job until it reaches a terminal state,
// checking at most maxAttempts times with one interval between checks. A
// failed or cancelled job is returned without error; the caller inspects
// Status.
func AwaitJob(ctx context.Context, t Tuner, jobID string, interval time.Duration, maxAttempts int) (Job, error) {
	var job Job

	for attempt := 0; attempt < maxAttempts; attempt++ {
		var err error
		job, err = t.RetrieveJob(ctx, jobID)
		if err != nil {
			return Job{}, err
		}

		if job.Status.Terminal() {
			return job, nil
		}

		if err := wait(ctx, interval); err != nil {
			return job, err
		}
	}

	return job, fmt.Errorf("job %s still %q: %w", jobID, job.Status, ErrAttemptsExhausted)
}

func wait(ctx context.Context, interval time.Duration) error {
	timer := time.NewTimer(interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
