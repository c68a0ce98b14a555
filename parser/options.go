package parser

import "github.com/tliron/commonlog"

// DefaultClassificationCutoff is the number of leading keywords after which a
// statement that matched no pattern is settled as Plain.
const DefaultClassificationCutoff = 10

type config struct {
	file   string
	cutoff int
	log    commonlog.Logger
}

type Option func(*config)

// WithFile sets the file name stamped on positions and errors.
func WithFile(path string) Option {
	return func(c *config) { c.file = path }
}

func WithClassificationCutoff(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.cutoff = n
		}
	}
}

func WithLogger(log commonlog.Logger) Option {
	return func(c *config) { c.log = log }
}

func newConfig(opts []Option) config {
	c := config{cutoff: DefaultClassificationCutoff}
	for _, opt := range opts {
		opt(&c)
	}
	if c.log == nil {
		c.log = commonlog.GetLogger("plsplit.parser")
	}
	return c
}
