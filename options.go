package qbdiff

// Options configures a Compute call. Compute starts from LZMA2 at its
// largest practical dictionary size (maxPresetDictCap) and applies each
// Option on top of that.
type Options struct {
	dictCap int
}

// Option configures an Options value.
type Option func(*Options)

// WithDictCap overrides the LZMA2 dictionary capacity used to compress
// CB/DB/EB (and new, in a FULL fallback). Mostly useful for benchmarking
// memory/ratio tradeoffs; Compute's default fits any stream of up to 64 MiB
// in one window.
func WithDictCap(bytes int) Option {
	return func(o *Options) {
		if bytes > 0 {
			o.dictCap = bytes
		}
	}
}

func resolveOptions(opts []Option) Options {
	o := Options{dictCap: maxPresetDictCap}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
