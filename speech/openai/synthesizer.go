package openai

import (
	"context"
	"errors"
	"io"

	"github.com/sashabaranov/go-openai"
	"github.com/w-h-a/modelkit/speech"
)

type openAISynthesizer struct {
	options speech.Options
	client  *openai.Client
}

func (s *openAISynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	rsp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(s.options.Model),
		Voice:          openai.SpeechVoice(s.options.Voice),
		ResponseFormat: openai.SpeechResponseFormat(s.options.Format),
		Input:          text,
	})
	if err != nil {
		return nil, err
	}
	defer rsp.Close()

	data, err := io.ReadAll(rsp)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, errors.New("no audio from OpenAI")
	}

	return data, nil
}

func NewSynthesizer(opts ...speech.Option) speech.Synthesizer {
	options := speech.NewOptions(opts...)

	s := &openAISynthesizer{
		options: options,
	}

	client := openai.NewClient(options.ApiKey)

	s.client = client

	return s
}
