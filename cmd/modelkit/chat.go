package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/w-h-a/modelkit/generator"
	anthropicgenerator "github.com/w-h-a/modelkit/generator/anthropic"
	googlegenerator "github.com/w-h-a/modelkit/generator/google"
	openaigenerator "github.com/w-h-a/modelkit/generator/openai"
)

type ChatCmd struct {
	Prompt []string `arg:"" help:"Prompt to send."`

	Provider    string  `help:"Model provider." enum:"openai,anthropic,google" default:"openai"`
	Model       string  `help:"Model identifier; fine-tuned ft: ids work with the openai provider." default:"gpt-3.5-turbo"`
	System      string  `help:"System prompt." default:"You are a helpful assistant."`
	MaxTokens   int     `help:"Response token cap." default:"150"`
	Temperature float32 `help:"Sampling temperature." default:"0.7"`
}

func (c *ChatCmd) Run(rt *runtime) error {
	prompt := strings.TrimSpace(strings.Join(c.Prompt, " "))
	if len(prompt) == 0 {
		return errors.New("prompt is required")
	}

	opts := []generator.Option{
		generator.WithModel(c.Model),
		generator.WithSystemPrompt(c.System),
		generator.WithMaxTokens(c.MaxTokens),
		generator.WithTemperature(c.Temperature),
	}

	var g generator.Generator

	switch c.Provider {
	case "openai":
		key, err := rt.requireOpenAIKey()
		if err != nil {
			return err
		}
		g = openaigenerator.NewGenerator(append(opts, generator.WithApiKey(key))...)
	case "anthropic":
		if len(rt.anthropicKey) == 0 {
			return errors.New("ANTHROPIC_API_KEY environment variable not set")
		}
		g = anthropicgenerator.NewGenerator(append(opts, generator.WithApiKey(rt.anthropicKey))...)
	case "google":
		if len(rt.googleKey) == 0 {
			return errors.New("GOOGLE_API_KEY environment variable not set")
		}
		g = googlegenerator.NewGenerator(append(opts, generator.WithApiKey(rt.googleKey))...)
	}

	fmt.Printf("Sending message: %s\n\n", prompt)

	rsp, err := g.Generate(rt.ctx, prompt)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	fmt.Println("Response:")
	fmt.Println(strings.Repeat("-", 50))
	fmt.Println(rsp.Content)
	fmt.Println(strings.Repeat("-", 50))

	if rsp.TotalTokens > 0 {
		fmt.Printf("\nTokens used: %d\n", rsp.TotalTokens)
	}

	return nil
}
