package verify

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"lcintel/internal/domain"
)

// Dispatcher fans verification requests out over the toolset with
// bounded concurrency and a per-call timeout.
type Dispatcher struct {
	toolset     *Toolset
	concurrency int
	callTimeout time.Duration
}

// NewDispatcher creates a dispatcher. Concurrency below 1 defaults to 5
// and a zero timeout defaults to 30s.
func NewDispatcher(toolset *Toolset, concurrency int, callTimeout time.Duration) *Dispatcher {
	if concurrency < 1 {
		concurrency = 5
	}
	if callTimeout <= 0 {
		callTimeout = 30 * time.Second
	}
	return &Dispatcher{
		toolset:     toolset,
		concurrency: concurrency,
		callTimeout: callTimeout,
	}
}

// Run executes one request with the per-call timeout applied.
func (d *Dispatcher) Run(ctx context.Context, req domain.VerificationRequest) (*domain.VerificationResult, error) {
	callCtx, cancel := context.WithTimeout(ctx, d.callTimeout)
	defer cancel()

	res, err := d.toolset.Run(callCtx, req)
	if err == nil {
		// The cascading tiers swallow provider errors and degrade to a
		// fallback result. One produced after the deadline expired is a
		// timeout, not a verification.
		if ctxErr := callCtx.Err(); ctxErr != nil {
			err = ctxErr
		} else {
			return res, nil
		}
	}
	if errors.Is(err, domain.ErrUnknownTool) {
		return nil, err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("%w: %s on %s", domain.ErrCapabilityTimeout, req.ToolName, req.FieldKey)
	}
	return nil, fmt.Errorf("%w: %v", domain.ErrCapabilityFailure, err)
}

// RunBatch executes requests concurrently. Results and errors are
// positionally aligned with the input; one failed call never hides the
// others. The returned slices always have len(requests) entries.
func (d *Dispatcher) RunBatch(ctx context.Context, requests []domain.VerificationRequest) ([]*domain.VerificationResult, []error) {
	results := make([]*domain.VerificationResult, len(requests))
	errs := make([]error, len(requests))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.concurrency)

	for i, req := range requests {
		i, req := i, req
		g.Go(func() error {
			res, err := d.Run(gctx, req)
			if err != nil {
				errs[i] = &domain.VerificationFieldError{Index: i, FieldKey: req.FieldKey, Err: err}
				log.Printf("verify.Dispatcher: %s failed for %s: %v", req.ToolName, req.FieldKey, err)
				return nil
			}
			results[i] = res
			return nil
		})
	}

	// Workers never return errors; failures land in the errs slice.
	_ = g.Wait()

	return results, errs
}
