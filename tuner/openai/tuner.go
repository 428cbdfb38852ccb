package openai

import (
	"context"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/w-h-a/modelkit/tuner"
)

type openAITuner struct {
	options tuner.Options
	client  *openai.Client
}

func (t *openAITuner) UploadTrainingFile(ctx context.Context, path string) (tuner.File, error) {
	file, err := t.client.CreateFile(ctx, openai.FileRequest{
		FilePath: path,
		Purpose:  "fine-tune",
	})
	if err != nil {
		return tuner.File{}, err
	}

	return toFile(file), nil
}

func (t *openAITuner) RetrieveFile(ctx context.Context, fileID string) (tuner.File, error) {
	file, err := t.client.GetFile(ctx, fileID)
	if err != nil {
		return tuner.File{}, err
	}

	return toFile(file), nil
}

func (t *openAITuner) CreateJob(ctx context.Context, trainingFileID string, model string, epochs int) (tuner.Job, error) {
	req := openai.FineTuningJobRequest{
		TrainingFile: trainingFileID,
		Model:        model,
	}

	if epochs > 0 {
		req.Hyperparameters = &openai.Hyperparameters{
			Epochs: epochs,
		}
	}

	job, err := t.client.CreateFineTuningJob(ctx, req)
	if err != nil {
		return tuner.Job{}, err
	}

	return toJob(job), nil
}

func (t *openAITuner) RetrieveJob(ctx context.Context, jobID string) (tuner.Job, error) {
	job, err := t.client.RetrieveFineTuningJob(ctx, jobID)
	if err != nil {
		return tuner.Job{}, err
	}

	return toJob(job), nil
}

func (t *openAITuner) CancelJob(ctx context.Context, jobID string) (tuner.Job, error) {
	job, err := t.client.CancelFineTuningJob(ctx, jobID)
	if err != nil {
		return tuner.Job{}, err
	}

	return toJob(job), nil
}

func (t *openAITuner) ListEvents(ctx context.Context, jobID string, limit int) ([]tuner.Event, error) {
	list, err := t.client.ListFineTuningJobEvents(
		ctx,
		jobID,
		openai.ListFineTuningJobEventsWithLimit(limit),
	)
	if err != nil {
		return nil, err
	}

	events := make([]tuner.Event, 0, len(list.Data))
	for _, e := range list.Data {
		events = append(events, tuner.Event{
			CreatedAt: time.Unix(int64(e.CreatedAt), 0).UTC(),
			Level:     e.Level,
			Message:   e.Message,
		})
	}

	return events, nil
}

func toFile(file openai.File) tuner.File {
	return tuner.File{
		ID:     file.ID,
		Name:   file.FileName,
		Status: file.Status,
		Bytes:  file.Bytes,
	}
}

func toJob(job openai.FineTuningJob) tuner.Job {
	j := tuner.Job{
		ID:             job.ID,
		Model:          job.Model,
		Status:         tuner.Status(job.Status),
		TrainingFileID: job.TrainingFile,
		FineTunedModel: job.FineTunedModel,
		TrainedTokens:  job.TrainedTokens,
		CreatedAt:      time.Unix(job.CreatedAt, 0).UTC(),
	}

	if job.FinishedAt > 0 {
		j.FinishedAt = time.Unix(job.FinishedAt, 0).UTC()
	}

	// The API reports epochs as "auto" or a number.
	switch epochs := job.Hyperparameters.Epochs.(type) {
	case int:
		j.Epochs = epochs
	case float64:
		j.Epochs = int(epochs)
	}

	return j
}

func NewTuner(opts ...tuner.Option) tuner.Tuner {
	options := tuner.NewOptions(opts...)

	t := &openAITuner{
		options: options,
	}

	client := openai.NewClient(options.ApiKey)

	t.client = client

	return t
}
