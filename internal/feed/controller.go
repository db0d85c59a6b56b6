package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"marketdash/internal/client/dataplane"
	"marketdash/internal/models"
)

// Tab identifies one of the two event feeds shown on the dashboard.
type Tab string

const (
	// TabNewMarkets lists newly listed markets, most recent first by
	// detection time. Ordering is recency only, never popularity.
	TabNewMarkets Tab = "new_market"
	// TabPriceJumps lists state_extreme events with at least a 5% move.
	TabPriceJumps Tab = "price_jump"
)

// PriceJumpMinRet is the minimum absolute return for the price-jump feed.
const PriceJumpMinRet = 0.05

// DefaultFeedLimit is how many events each feed keeps per poll.
const DefaultFeedLimit = 20

// Fetcher is the slice of the data-plane client the controller needs.
type Fetcher interface {
	MarketEvents(ctx context.Context, q dataplane.EventsQuery) ([]models.MarketEvent, error)
}

// Controller owns the two event feeds. Each feed is polled on its own
// timer regardless of which tab is active, so switching tabs is
// instantaneous and never triggers a fetch. Every poll replaces the whole
// feed snapshot; responses arriving after a newer poll has already been
// applied are discarded by sequence number, so a slow response can never
// overwrite fresher data.
type Controller struct {
	client Fetcher
	logger *zap.Logger
	now    func() time.Time

	mu        sync.Mutex
	activeTab Tab
	feeds     map[Tab]*feedState
}

type feedState struct {
	query dataplane.EventsQuery

	dispatched uint64 // sequence of the most recently issued poll
	applied    uint64 // sequence of the poll whose result is displayed

	events    []models.MarketEvent
	loaded    bool
	stale     bool
	lastErr   string
	updatedAt time.Time
}

// NewController builds the two fixed feeds. limit <= 0 uses the default.
// now supplies the shared display clock and must not be nil in non-test
// use; time-ago labels advance with this clock between polls.
func NewController(client Fetcher, logger *zap.Logger, limit int, now func() time.Time) *Controller {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	if now == nil {
		now = time.Now
	}
	return &Controller{
		client:    client,
		logger:    logger,
		now:       now,
		activeTab: TabNewMarkets,
		feeds: map[Tab]*feedState{
			TabNewMarkets: {
				query: dataplane.EventsQuery{Type: models.EventTypeNewMarket, Limit: limit},
			},
			TabPriceJumps: {
				query: dataplane.EventsQuery{Type: models.EventTypeStateExtreme, Limit: limit, MinRet: PriceJumpMinRet},
			},
		},
	}
}

// SetActiveTab switches the visible tab. Pure UI state: both feeds keep
// polling on their own timers either way.
func (c *Controller) SetActiveTab(tab Tab) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.feeds[tab]; ok {
		c.activeTab = tab
	}
}

// ActiveTab returns the currently selected tab.
func (c *Controller) ActiveTab() Tab {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeTab
}

// Poll refreshes one feed. Call it from that feed's own timer.
func (c *Controller) Poll(ctx context.Context, tab Tab) error {
	seq, query, err := c.begin(tab)
	if err != nil {
		return err
	}
	events, err := c.client.MarketEvents(ctx, query)
	c.apply(tab, seq, events, err)
	return err
}

// begin claims the next request sequence number for a feed.
func (c *Controller) begin(tab Tab) (uint64, dataplane.EventsQuery, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	state, ok := c.feeds[tab]
	if !ok {
		return 0, dataplane.EventsQuery{}, fmt.Errorf("unknown feed: %s", tab)
	}
	state.dispatched++
	return state.dispatched, state.query, nil
}

// apply installs a poll result unless a newer poll already landed.
func (c *Controller) apply(tab Tab, seq uint64, events []models.MarketEvent, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.feeds[tab]
	if seq <= state.applied {
		if c.logger != nil {
			c.logger.Debug("discarding out-of-order feed response",
				zap.String("feed", string(tab)),
				zap.Uint64("seq", seq),
				zap.Uint64("applied", state.applied),
			)
		}
		return
	}
	state.applied = seq

	if err != nil {
		state.lastErr = err.Error()
		if state.loaded {
			state.stale = true
		}
		return
	}
	state.events = events
	state.loaded = true
	state.stale = false
	state.lastErr = ""
	state.updatedAt = c.now()
}

// Loaded reports whether any feed has ever fetched successfully.
func (c *Controller) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, state := range c.feeds {
		if state.loaded {
			return true
		}
	}
	return false
}
