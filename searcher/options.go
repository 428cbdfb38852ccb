package searcher

import "context"

type Option func(*Options)

type Options struct {
	Location   string
	Dimensions int
	Context    context.Context
}

func WithLocation(loc string) Option {
	return func(o *Options) {
		o.Location = loc
	}
}

func WithDimensions(d int) Option {
	return func(o *Options) {
		o.Dimensions = d
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		Context: context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
