package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
)

var cli struct {
	OpenAIKey    string `help:"API key for OpenAI." env:"OPENAI_API_KEY"`
	AnthropicKey string `help:"API key for Anthropic." env:"ANTHROPIC_API_KEY"`
	GoogleKey    string `help:"API key for Google." env:"GOOGLE_API_KEY"`

	Chat     ChatCmd     `cmd:"" help:"Send a prompt to a chat model and print the response."`
	Embed    EmbedCmd    `cmd:"" help:"Generate an embedding for a text and print its statistics."`
	Compare  CompareCmd  `cmd:"" help:"Compare the semantic similarity of two texts."`
	Index    IndexCmd    `cmd:"" help:"Embed a file of texts (one per line) into a store document."`
	Search   SearchCmd   `cmd:"" help:"Rank stored texts by similarity to a query."`
	Speak    SpeakCmd    `cmd:"" help:"Convert text to speech and save the audio."`
	Finetune FinetuneCmd `cmd:"" help:"Manage fine-tuning jobs."`
	Serve    ServeCmd    `cmd:"" help:"Serve semantic search over HTTP."`
}

// runtime carries process-wide state into command Run methods.
type runtime struct {
	ctx          context.Context
	openAIKey    string
	anthropicKey string
	googleKey    string
}

func (rt *runtime) requireOpenAIKey() (string, error) {
	if len(rt.openAIKey) == 0 {
		return "", errors.New("OPENAI_API_KEY environment variable not set")
	}
	return rt.openAIKey, nil
}

func banner(width int) string {
	return strings.Repeat("=", width)
}

func formatSize(bytes int64) string {
	kb := float64(bytes) / 1024
	if kb >= 1024 {
		return fmt.Sprintf("%.2f MB", kb/1024)
	}
	return fmt.Sprintf("%.2f KB", kb)
}

func main() {
	ktx := kong.Parse(
		&cli,
		kong.Name("modelkit"),
		kong.Description("Single-purpose commands over hosted model APIs: chat, embeddings, semantic search, fine-tuning, and text-to-speech."),
		kong.UsageOnError(),
		kong.Vars{
			"embedding_models": embeddingModels,
		},
	)

	rt := &runtime{
		ctx:          context.Background(),
		openAIKey:    cli.OpenAIKey,
		anthropicKey: cli.AnthropicKey,
		googleKey:    cli.GoogleKey,
	}

	ktx.FatalIfErrorf(ktx.Run(rt))
}
