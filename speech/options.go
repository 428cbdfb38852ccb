package speech

import "context"

type Option func(*Options)

type Options struct {
	ApiKey  string
	Model   string
	Voice   string
	Format  string
	Context context.Context
}

func WithApiKey(apiKey string) Option {
	return func(o *Options) {
		o.ApiKey = apiKey
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithVoice(voice string) Option {
	return func(o *Options) {
		o.Voice = voice
	}
}

func WithFormat(format string) Option {
	return func(o *Options) {
		o.Format = format
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		Model:   "tts-1",
		Voice:   "alloy",
		Format:  "mp3",
		Context: context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
