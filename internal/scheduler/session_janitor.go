package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dsev/locknlock-bff/internal/app/service"
	"github.com/dsev/locknlock-bff/pkg/logger"
)

// SessionJanitor reaps idle checkout sessions and stale cart mirrors so
// abandoned watchers never pile up.
type SessionJanitor struct {
	cron            *cron.Cron
	checkoutService service.CheckoutService
	cartService     service.CartService
	cartMaxIdle     time.Duration
}

func NewSessionJanitor(checkoutService service.CheckoutService, cartService service.CartService, cartMaxIdle time.Duration) *SessionJanitor {
	return &SessionJanitor{
		cron:            cron.New(),
		checkoutService: checkoutService,
		cartService:     cartService,
		cartMaxIdle:     cartMaxIdle,
	}
}

// Start runs the sweep every minute.
func (s *SessionJanitor) Start() error {
	_, err := s.cron.AddFunc("@every 1m", func() {
		checkouts := s.checkoutService.SweepIdle()
		carts := s.cartService.SweepIdle(s.cartMaxIdle)

		if checkouts > 0 || carts > 0 {
			logger.Info("Swept idle sessions", map[string]interface{}{
				"checkout_sessions": checkouts,
				"cart_mirrors":      carts,
			})
		}
	})
	if err != nil {
		logger.Error("Failed to schedule session sweep", err)
		return err
	}

	s.cron.Start()
	logger.Info("Session janitor started (every 1m)", nil)
	return nil
}

// Stop halts the sweep schedule.
func (s *SessionJanitor) Stop() {
	s.cron.Stop()
	logger.Info("Session janitor stopped", nil)
}
