package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/bottic/shop-backend/internal/app/service"
	"github.com/bottic/shop-backend/pkg/logger"
)

// OrderScheduler cancels pending orders that were never paid.
type OrderScheduler struct {
	cron         *cron.Cron
	orderService service.OrderService
	spec         string
	pendingTTL   time.Duration
}

func NewOrderScheduler(orderService service.OrderService, spec string, pendingTTL time.Duration) *OrderScheduler {
	return &OrderScheduler{
		cron:         cron.New(),
		orderService: orderService,
		spec:         spec,
		pendingTTL:   pendingTTL,
	}
}

func (s *OrderScheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		logger.Info("Starting scheduled pending order cleanup", map[string]interface{}{
			"pending_ttl": s.pendingTTL.String(),
		})

		count, err := s.orderService.ExpirePendingOrders(s.pendingTTL)
		if err != nil {
			logger.Error("Failed to expire pending orders from scheduler", err)
			return
		}

		logger.Info("Pending order cleanup finished", map[string]interface{}{
			"cancelled": count,
		})
	})

	if err != nil {
		logger.Error("Failed to add cron job for order cleanup", err)
		return err
	}

	s.cron.Start()
	logger.Info("Order scheduler started", map[string]interface{}{
		"spec": s.spec,
	})

	return nil
}

func (s *OrderScheduler) Stop() {
	logger.Info("Stopping order scheduler...")
	s.cron.Stop()
	logger.Info("Order scheduler stopped")
}
