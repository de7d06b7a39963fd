package service

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type Config struct {
	Store             Store
	PubSub            PubSub
	BaseCtx           context.Context
	BackgroundTimeout time.Duration
}

type Service struct {
	Store  Store
	PubSub PubSub

	baseCtx           context.Context
	backgroundTimeout time.Duration
	wg                sync.WaitGroup
	errs              chan error
	errsMu            sync.RWMutex
	closed            bool
}

func New(cfg *Config) *Service {
	baseCtx := cfg.BaseCtx
	if baseCtx == nil {
		baseCtx = context.Background()
	}

	backgroundTimeout := cfg.BackgroundTimeout
	if backgroundTimeout <= 0 {
		backgroundTimeout = 5 * time.Second
	}

	return &Service{
		Store:  cfg.Store,
		PubSub: cfg.PubSub,

		baseCtx:           baseCtx,
		backgroundTimeout: backgroundTimeout,
		errs:              make(chan error, 1),
	}
}

// Errs reports failures of background work. Errors are dropped while
// nobody is receiving.
func (svc *Service) Errs() <-chan error {
	return svc.errs
}

// Close waits for background work and closes Errs. Room streams still
// running afterwards drop their errors.
func (svc *Service) Close() error {
	svc.wg.Wait()

	svc.errsMu.Lock()
	defer svc.errsMu.Unlock()

	if !svc.closed {
		svc.closed = true
		close(svc.errs)
	}
	return nil
}

func (svc *Service) Ping(ctx context.Context) error {
	return svc.Store.Ping(ctx)
}

func (svc *Service) background(fn func(ctx context.Context) error) {
	svc.wg.Go(func() {
		defer func() {
			if rcv := recover(); rcv != nil {
				svc.report(fmt.Errorf("service background panic: %v", rcv))
			}
		}()

		ctx, cancel := context.WithTimeout(svc.baseCtx, svc.backgroundTimeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			svc.report(fmt.Errorf("service background error: %w", err))
		}
	})
}

func (svc *Service) report(err error) {
	svc.errsMu.RLock()
	defer svc.errsMu.RUnlock()

	if svc.closed {
		return
	}

	select {
	case svc.errs <- err:
	default:
	}
}
