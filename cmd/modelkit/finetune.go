package main

import (
	"fmt"
	"time"

	"github.com/w-h-a/modelkit/tuner"
	openaituner "github.com/w-h-a/modelkit/tuner/openai"
)

type FinetuneCmd struct {
	Create FinetuneCreateCmd `cmd:"" help:"Upload a training file and start a fine-tuning job."`
	Status FinetuneStatusCmd `cmd:"" help:"Check the status of a fine-tuning job."`
	Events FinetuneEventsCmd `cmd:"" help:"List recent events of a fine-tuning job."`
	Watch  FinetuneWatchCmd  `cmd:"" help:"Poll a fine-tuning job until it reaches a terminal state."`
	Cancel FinetuneCancelCmd `cmd:"" help:"Cancel a running fine-tuning job."`
}

func newTuner(rt *runtime) (tuner.Tuner, error) {
	key, err := rt.requireOpenAIKey()
	if err != nil {
		return nil, err
	}
	return openaituner.NewTuner(tuner.WithApiKey(key)), nil
}

type FinetuneCreateCmd struct {
	TrainingFile string `arg:"" help:"Training data in JSONL format." type:"existingfile"`

	BaseModel    string        `help:"Base model to fine-tune." default:"gpt-3.5-turbo"`
	Epochs       int           `help:"Number of training epochs." default:"3"`
	PollInterval time.Duration `help:"Interval between file-processing checks." default:"2s"`
	MaxChecks    int           `help:"Maximum file-processing checks." default:"150"`
}

func (c *FinetuneCreateCmd) Run(rt *runtime) error {
	t, err := newTuner(rt)
	if err != nil {
		return err
	}

	fmt.Println(banner(60))
	fmt.Println("Fine-Tuning Job Creator")
	fmt.Println(banner(60))

	fmt.Printf("\n[1/3] Uploading training file: %s\n", c.TrainingFile)
	file, err := t.UploadTrainingFile(rt.ctx, c.TrainingFile)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	fmt.Println("✓ File uploaded successfully!")
	fmt.Printf("  File ID: %s\n", file.ID)
	fmt.Printf("  Filename: %s\n", file.Name)
	fmt.Printf("  Status: %s\n", file.Status)

	fmt.Println("\n[2/3] Waiting for file to be processed...")
	if _, err := tuner.AwaitFile(rt.ctx, t, file.ID, c.PollInterval, c.MaxChecks); err != nil {
		return err
	}
	fmt.Println("✓ File processed successfully!")

	fmt.Println("\n[3/3] Creating fine-tuning job...")
	job, err := t.CreateJob(rt.ctx, file.ID, c.BaseModel, c.Epochs)
	if err != nil {
		return fmt.Errorf("job creation failed: %w", err)
	}

	fmt.Println("✓ Fine-tuning job created successfully!")
	fmt.Println()
	fmt.Println(banner(60))
	fmt.Println("Job Details:")
	fmt.Println(banner(60))
	printJob(job)

	fmt.Println()
	fmt.Println("Check progress with:")
	fmt.Printf("  modelkit finetune status %s\n", job.ID)
	fmt.Printf("  modelkit finetune watch %s\n", job.ID)

	return nil
}

type FinetuneStatusCmd struct {
	JobID string `arg:"" help:"Fine-tuning job identifier."`

	EventLimit int `help:"Number of recent events to show." default:"5"`
}

func (c *FinetuneStatusCmd) Run(rt *runtime) error {
	t, err := newTuner(rt)
	if err != nil {
		return err
	}

	job, err := t.RetrieveJob(rt.ctx, c.JobID)
	if err != nil {
		return fmt.Errorf("failed to retrieve job: %w", err)
	}

	fmt.Printf("Checking status for job: %s\n", c.JobID)
	fmt.Println(banner(60))
	printJob(job)

	switch {
	case len(job.FineTunedModel) > 0:
		fmt.Printf("\n✓ Fine-tuned model ready: %s\n", job.FineTunedModel)
		fmt.Println("\nUse it with:")
		fmt.Printf("  modelkit chat --model %s \"...\"\n", job.FineTunedModel)
	case job.Status == tuner.StatusFailed:
		fmt.Println("\n✗ Job failed!")
	case job.Status == tuner.StatusCancelled:
		fmt.Println("\n✗ Job was cancelled.")
	default:
		fmt.Printf("\n⟳ Job is %s...\n", job.Status)
	}

	events, err := t.ListEvents(rt.ctx, c.JobID, c.EventLimit)
	if err != nil {
		return fmt.Errorf("failed to list events: %w", err)
	}

	fmt.Println()
	fmt.Println(banner(60))
	fmt.Println("Recent Events:")
	fmt.Println(banner(60))
	printEvents(events)

	return nil
}

type FinetuneEventsCmd struct {
	JobID string `arg:"" help:"Fine-tuning job identifier."`

	Limit int `help:"Number of events to show." default:"20"`
}

func (c *FinetuneEventsCmd) Run(rt *runtime) error {
	t, err := newTuner(rt)
	if err != nil {
		return err
	}

	events, err := t.ListEvents(rt.ctx, c.JobID, c.Limit)
	if err != nil {
		return fmt.Errorf("failed to list events: %w", err)
	}

	printEvents(events)

	return nil
}

type FinetuneWatchCmd struct {
	JobID string `arg:"" help:"Fine-tuning job identifier."`

	Interval  time.Duration `help:"Interval between status checks." default:"10s"`
	MaxChecks int           `help:"Maximum status checks before giving up." default:"360"`
}

func (c *FinetuneWatchCmd) Run(rt *runtime) error {
	t, err := newTuner(rt)
	if err != nil {
		return err
	}

	fmt.Printf("Watching job %s (every %s, up to %d checks)...\n", c.JobID, c.Interval, c.MaxChecks)

	job, err := tuner.AwaitJob(rt.ctx, t, c.JobID, c.Interval, c.MaxChecks)
	if err != nil {
		return err
	}

	fmt.Println(banner(60))
	printJob(job)

	if !job.Status.Succeeded() {
		return fmt.Errorf("job %s ended %s", job.ID, job.Status)
	}

	fmt.Printf("\n✓ Fine-tuned model ready: %s\n", job.FineTunedModel)

	return nil
}

type FinetuneCancelCmd struct {
	JobID string `arg:"" help:"Fine-tuning job identifier."`
}

func (c *FinetuneCancelCmd) Run(rt *runtime) error {
	t, err := newTuner(rt)
	if err != nil {
		return err
	}

	job, err := t.CancelJob(rt.ctx, c.JobID)
	if err != nil {
		return fmt.Errorf("failed to cancel job: %w", err)
	}

	fmt.Printf("Job %s is now %s\n", job.ID, job.Status)

	return nil
}

func printJob(job tuner.Job) {
	fmt.Printf("Job ID: %s\n", job.ID)
	fmt.Printf("Model: %s\n", job.Model)
	fmt.Printf("Status: %s\n", job.Status)
	fmt.Printf("Training file: %s\n", job.TrainingFileID)
	if job.Epochs > 0 {
		fmt.Printf("Epochs: %d\n", job.Epochs)
	}
	if job.TrainedTokens > 0 {
		fmt.Printf("Trained tokens: %d\n", job.TrainedTokens)
	}
	if !job.CreatedAt.IsZero() {
		fmt.Printf("Created: %s\n", job.CreatedAt.Format(time.RFC3339))
	}
	if !job.FinishedAt.IsZero() {
		fmt.Printf("Finished: %s\n", job.FinishedAt.Format(time.RFC3339))
	}
	if len(job.FineTunedModel) > 0 {
		fmt.Printf("Fine-tuned model: %s\n", job.FineTunedModel)
	}
}

func printEvents(events []tuner.Event) {
	for _, event := range events {
		fmt.Printf("[%s] %s\n", event.CreatedAt.Format(time.RFC3339), event.Message)
	}
}
