package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/KNICEX/pair-watcher/internal/entity"
	"github.com/KNICEX/pair-watcher/internal/repo"
	"github.com/KNICEX/pair-watcher/internal/service/exchange"
	"github.com/KNICEX/pair-watcher/internal/service/notification"
	"github.com/KNICEX/pair-watcher/pkg/setx"
)

const defaultSendDelay = 500 * time.Millisecond

type PairMonitor struct {
	symbolSvc exchange.SymbolService
	baseline  repo.BaselineRepo
	notifier  notification.Service
	outbox    repo.NotificationRepo

	exchangeLabel string
	pollInterval  time.Duration
	sendDelay     time.Duration

	mu    sync.RWMutex
	known map[string]struct{}
}

type Option func(m *PairMonitor)

func WithExchangeLabel(label string) Option {
	return func(m *PairMonitor) {
		m.exchangeLabel = label
	}
}

// WithOutbox parks undelivered notifications in a durable queue and
// re-attempts them at the start of the next cycle.
func WithOutbox(outbox repo.NotificationRepo) Option {
	return func(m *PairMonitor) {
		m.outbox = outbox
	}
}

func WithSendDelay(delay time.Duration) Option {
	return func(m *PairMonitor) {
		m.sendDelay = delay
	}
}

func NewPairMonitor(symbolSvc exchange.SymbolService, baseline repo.BaselineRepo,
	notifier notification.Service, pollInterval time.Duration, opts ...Option) PairService {
	monitor := &PairMonitor{
		symbolSvc:     symbolSvc,
		baseline:      baseline,
		notifier:      notifier,
		exchangeLabel: "Binance",
		pollInterval:  pollInterval,
		sendDelay:     defaultSendDelay,
		known:         map[string]struct{}{},
	}
	for _, opt := range opts {
		opt(monitor)
	}
	return monitor
}

func (m *PairMonitor) Start(ctx context.Context) error {
	known := m.baseline.Load(ctx)

	m.mu.Lock()
	m.known = known
	m.mu.Unlock()

	slog.Info("loaded known pairs", "count", len(known))
	text := fmt.Sprintf("🤖 Bot started. Watching for new pairs (%d known).", len(known))
	if err := m.notifier.Send(ctx, text); err != nil {
		slog.Error("failed to send startup notification", "error", err)
	}
	return nil
}

// Scan runs one cycle. The known set and the snapshot are only touched after
// every notification of the cycle has been attempted, so a crash mid-cycle
// re-detects the same symbols instead of losing them.
func (m *PairMonitor) Scan(ctx context.Context) error {
	if m.outbox != nil {
		m.flushOutbox(ctx)
	}

	current, err := m.symbolSvc.TradingSymbols(ctx)
	if err != nil {
		slog.Error("failed to fetch trading symbols", "error", err)
		return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	if len(current) == 0 {
		// An empty listing means the source is unusable, not that every
		// symbol was delisted.
		slog.Warn("empty symbol listing, skipping cycle")
		return ErrSourceUnavailable
	}

	m.mu.RLock()
	fresh := setx.Diff(setx.FromSlice(current), m.known)
	m.mu.RUnlock()

	if len(fresh) == 0 {
		slog.Info("no new pairs", "total", len(current))
		return nil
	}

	detectedAt := time.Now().UTC().Format("2006-01-02 15:04:05")
	for _, symbol := range fresh {
		body := m.formatNewPair(ctx, symbol, detectedAt)
		if err = m.notifier.Send(ctx, body); err != nil {
			slog.Error("failed to deliver new pair notification",
				"symbol", symbol, "error", fmt.Errorf("%w: %v", ErrSinkUnavailable, err))
			m.enqueue(ctx, symbol, body)
		}
		time.Sleep(m.sendDelay)
	}

	m.mu.Lock()
	for _, symbol := range fresh {
		m.known[symbol] = struct{}{}
	}
	snapshot := maps.Clone(m.known)
	m.mu.Unlock()

	if err = m.baseline.Save(ctx, snapshot); err != nil {
		slog.Error("failed to persist baseline", "error", err)
		return fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	slog.Info("new pairs persisted", "new", len(fresh), "known", len(snapshot))
	return nil
}

func (m *PairMonitor) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Status{
		KnownCount:   len(m.known),
		PollInterval: m.pollInterval,
	}
}

func (m *PairMonitor) formatNewPair(ctx context.Context, symbol, detectedAt string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🆕 New pair detected: <b>%s</b>\n", symbol)
	fmt.Fprintf(&sb, "Exchange: %s\n", m.exchangeLabel)
	if price, err := m.symbolSvc.LastPrice(ctx, symbol); err == nil {
		fmt.Fprintf(&sb, "Price: %s\n", price.String())
	} else {
		slog.Debug("no price for new pair yet", "symbol", symbol, "error", err)
	}
	fmt.Fprintf(&sb, "Time (UTC): %s", detectedAt)
	return sb.String()
}

func (m *PairMonitor) enqueue(ctx context.Context, symbol, body string) {
	if m.outbox == nil {
		return
	}
	if _, err := m.outbox.Create(ctx, entity.Notification{
		Symbol: symbol,
		Body:   body,
	}); err != nil {
		slog.Error("failed to enqueue notification", "symbol", symbol, "error", err)
	}
}

// flushOutbox re-attempts parked notifications. It stops at the first
// failure, the sink is most likely still down.
func (m *PairMonitor) flushOutbox(ctx context.Context) {
	pending, err := m.outbox.FindPending(ctx)
	if err != nil {
		slog.Error("failed to read notification outbox", "error", err)
		return
	}
	for _, n := range pending {
		if err = m.notifier.Send(ctx, n.Body); err != nil {
			slog.Warn("outbox redelivery failed", "symbol", n.Symbol, "error", err)
			return
		}
		if err = m.outbox.Delete(ctx, n.Id); err != nil {
			slog.Error("failed to remove delivered notification", "id", n.Id, "error", err)
		}
		time.Sleep(m.sendDelay)
	}
}
