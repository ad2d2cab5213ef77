package price

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// pollSpec fires once per second.
const pollSpec = "@every 1s"

// Poller drives the ticker fetch on a fixed interval and owns the bounded
// history. A failed tick is recorded for display and left alone: the next
// tick is the retry, with no backoff and no circuit breaker.
type Poller struct {
	client *Client
	cron   *cron.Cron

	mu      sync.Mutex
	history *History
	latest  Quote
	lastErr error
}

func NewPoller(client *Client) *Poller {
	return &Poller{
		client:  client,
		cron:    cron.New(cron.WithSeconds()),
		history: NewHistory(),
	}
}

// Start registers the tick job and starts the schedule.
func (p *Poller) Start() error {
	if _, err := p.cron.AddFunc(pollSpec, p.tick); err != nil {
		return err
	}
	p.cron.Start()
	log.Println("price: poller started")
	return nil
}

// Stop halts the schedule. In-flight ticks finish on their own.
func (p *Poller) Stop() {
	p.cron.Stop()
	log.Println("price: poller stopped")
}

func (p *Poller) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q, err := p.client.Ticker(ctx)
	now := time.Now()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastErr = err
	if err != nil {
		log.Printf("price: tick failed: %v", err)
		return
	}
	p.latest = q
	p.history.Push(Sample{Price: q.LastPrice, Label: now.Format("15:04:05")})
}

// Status is the display payload for the ticker: latest quote, full history
// snapshot, and whether the most recent tick failed.
type Status struct {
	Quote   Quote
	History Snapshot
	Err     error
}

// Latest returns the current ticker status.
func (p *Poller) Latest() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Status{Quote: p.latest, History: p.history.Snapshot(), Err: p.lastErr}
}
