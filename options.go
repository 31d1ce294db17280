package roundtrip

import "github.com/ripkitten-co/roundtrip/internal/codecs"

type Option func(*config)

type config struct {
	codec codecs.Codec
}

func defaultConfig() *config {
	return &config{
		codec: codecs.NewJSONIter(),
	}
}

func newConfig(opts []Option) *config {
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

// WithCodec replaces the inner codec. Whatever is passed is still wrapped in
// the strict codec, so a missing or null "x" is rejected either way.
func WithCodec(c codecs.Codec) Option {
	return func(cfg *config) {
		cfg.codec = c
	}
}
