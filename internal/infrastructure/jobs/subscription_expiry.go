package jobs

import (
	"context"
	"log"
	"time"
)

// SubscriptionSweeper marks due subscriptions expired.
type SubscriptionSweeper interface {
	UpdateSubscriptionStatuses(ctx context.Context) (int, error)
}

// SubscriptionExpiryJob periodically sweeps subscriptions past their end date
type SubscriptionExpiryJob struct {
	sweeper  SubscriptionSweeper
	interval time.Duration
	stop     chan struct{}
}

func NewSubscriptionExpiryJob(sweeper SubscriptionSweeper, interval time.Duration) *SubscriptionExpiryJob {
	if interval <= 0 {
		interval = time.Hour
	}
	return &SubscriptionExpiryJob{
		sweeper:  sweeper,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (j *SubscriptionExpiryJob) Start(ctx context.Context) {
	log.Println("🕐 Starting subscription expiry job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Subscription expiry job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Subscription expiry job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *SubscriptionExpiryJob) Stop() {
	close(j.stop)
}

func (j *SubscriptionExpiryJob) sweep(ctx context.Context) {
	count, err := j.sweeper.UpdateSubscriptionStatuses(ctx)
	if err != nil {
		log.Printf("❌ Error expiring subscriptions: %v", err)
		return
	}

	if count > 0 {
		log.Printf("✅ Expired %d subscriptions", count)
	}
}
