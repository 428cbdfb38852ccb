// Package speech converts text to audio via a hosted text-to-speech API.
package speech

import "context"

// RequestLimit is the maximum input length the TTS endpoint accepts per
// request, in characters.
const RequestLimit = 4096

type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// SynthesizeAll splits text into request-sized chunks, synthesizes each in
// order, and concatenates the audio bytes.
func SynthesizeAll(ctx context.Context, s Synthesizer, text string) ([]byte, error) {
	var audio []byte

	for _, chunk := range Split(text, RequestLimit) {
		data, err := s.Synthesize(ctx, chunk)
		if err != nil {
			return nil, err
		}
		audio = append(audio, data...)
	}

	return audio, nil
}
