package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/w-h-a/modelkit/speech"
	openaispeech "github.com/w-h-a/modelkit/speech/openai"
)

type SpeakCmd struct {
	Text []string `arg:"" optional:"" help:"Text to speak."`

	Input  string `help:"Read text from a file instead." type:"existingfile"`
	Output string `help:"Audio output path." default:"speech.mp3"`
	Voice  string `help:"Voice." enum:"alloy,echo,fable,onyx,nova,shimmer" default:"alloy"`
	Model  string `help:"TTS model." enum:"tts-1,tts-1-hd" default:"tts-1"`
}

func (c *SpeakCmd) Run(rt *runtime) error {
	key, err := rt.requireOpenAIKey()
	if err != nil {
		return err
	}

	text, err := c.resolveText()
	if err != nil {
		return err
	}

	output := normalizeAudioPath(c.Output)
	format := strings.TrimPrefix(filepath.Ext(output), ".")

	s := openaispeech.NewSynthesizer(
		speech.WithApiKey(key),
		speech.WithModel(c.Model),
		speech.WithVoice(c.Voice),
		speech.WithFormat(format),
	)

	chunks := speech.Split(text, speech.RequestLimit)

	fmt.Println(banner(60))
	fmt.Println("Text-to-Speech Generator")
	fmt.Println(banner(60))
	fmt.Printf("\nText length: %d characters\n", len(text))
	if len(chunks) > 1 {
		fmt.Printf("Text split into %d chunks (API limit: %d chars/request)\n", len(chunks), speech.RequestLimit)
	}
	fmt.Printf("Voice: %s\n", c.Voice)
	fmt.Printf("Model: %s\n", c.Model)
	fmt.Printf("Output: %s\n", output)
	fmt.Println("\nGenerating speech...")

	audio, err := speech.SynthesizeAll(rt.ctx, s, text)
	if err != nil {
		return fmt.Errorf("speech synthesis failed: %w", err)
	}

	if err := os.WriteFile(output, audio, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	absolute, err := filepath.Abs(output)
	if err != nil {
		absolute = output
	}

	fmt.Println()
	fmt.Println(banner(60))
	fmt.Println("✓ Success!")
	fmt.Println(banner(60))
	fmt.Printf("Audio file saved: %s\n", absolute)
	fmt.Printf("File size: %s\n", formatSize(int64(len(audio))))
	fmt.Println(banner(60))

	return nil
}

func (c *SpeakCmd) resolveText() (string, error) {
	if len(c.Input) > 0 {
		data, err := os.ReadFile(c.Input)
		if err != nil {
			return "", err
		}
		text := strings.TrimSpace(string(data))
		if len(text) == 0 {
			return "", fmt.Errorf("input file %s is empty", c.Input)
		}
		return text, nil
	}

	text := strings.TrimSpace(strings.Join(c.Text, " "))
	if len(text) == 0 {
		return "", errors.New("provide text to speak or --input")
	}

	return text, nil
}

// normalizeAudioPath appends .mp3 when the path lacks a supported audio
// extension.
func normalizeAudioPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3", ".opus", ".aac", ".flac":
		return path
	}
	return path + ".mp3"
}
