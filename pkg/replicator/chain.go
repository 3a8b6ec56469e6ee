package replicator

import (
	stderrors "errors"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/photosort/pkg/errors"
	"github.com/arthur-debert/photosort/pkg/logging"
)

// Chain tries its replicators in order and stops at the first success.
type Chain struct {
	replicators []Replicator
	logger      zerolog.Logger
}

// NewChain returns a chain over replicators, appending the none replicator
// unless the list already ends with it.
func NewChain(replicators ...Replicator) *Chain {
	list := make([]Replicator, 0, len(replicators)+1)
	list = append(list, replicators...)
	if len(list) == 0 || list[len(list)-1].Kind() != KindNone {
		list = append(list, None())
	}
	return &Chain{
		replicators: list,
		logger:      logging.GetLogger("replicator"),
	}
}

func (c *Chain) Kind() Kind { return KindChain }

// Kinds returns the kinds of the chained replicators, sentinel included.
func (c *Chain) Kinds() []Kind {
	kinds := make([]Kind, len(c.replicators))
	for i, r := range c.replicators {
		kinds[i] = r.Kind()
	}
	return kinds
}

// Replicate tries each replicator in turn. When every one fails the
// returned error has code REPLICATORS_EXHAUSTED, lists the attempted kinds
// in its "attempts" detail and wraps every failure.
func (c *Chain) Replicate(src, dst string) error {
	var attempts []string
	var causes []error

	for _, r := range c.replicators {
		if r.Kind() == KindNone {
			return exhausted(r.Replicate(src, dst), attempts, causes)
		}

		err := r.Replicate(src, dst)
		if err == nil {
			c.logger.Debug().
				Str("source", src).
				Str("destination", dst).
				Str("replicator", r.Kind().String()).
				Msg("Replicated")
			return nil
		}

		c.logger.Warn().
			Err(err).
			Str("source", src).
			Str("destination", dst).
			Str("replicator", r.Kind().String()).
			Msg("Replicator failed, trying next")
		attempts = append(attempts, r.Kind().String())
		causes = append(causes, err)
	}

	panic("replicator: chain does not end with the none replicator")
}

func exhausted(sentinel error, attempts []string, causes []error) error {
	if len(causes) == 0 {
		return sentinel
	}
	return errors.Wrap(stderrors.Join(causes...), errors.ErrReplicatorsExhausted, exhaustedMessage).
		WithDetail("attempts", attempts)
}
