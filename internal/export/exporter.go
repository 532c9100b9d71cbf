// Package export turns the rows of a backup database into rendered
// conversation pages. The pipeline is strictly sequential: resolve every
// thread counterpart, then load and render one thread at a time.
package export

import (
	"context"
	"fmt"
	"log/slog"

	"signalhtml/internal/backup"
	"signalhtml/internal/domain"
)

// Stats summarizes one export run.
type Stats struct {
	Threads            int
	SMSMessages        int
	MMSMessages        int
	Attachments        int
	MissingAttachments int
}

// Exporter drives a single export pass over an opened backup database.
type Exporter struct {
	store    domain.BackupStore
	renderer domain.Renderer
	locator  *backup.Locator
	resolver *Resolver
	registry *Registry
	logger   *slog.Logger

	stats Stats
}

func NewExporter(store domain.BackupStore, renderer domain.Renderer, locator *backup.Locator, logger *slog.Logger) *Exporter {
	return &Exporter{
		store:    store,
		renderer: renderer,
		locator:  locator,
		resolver: NewResolver(store, logger),
		registry: NewRegistry(),
		logger:   logger,
	}
}

// Run exports every thread in the backup. All thread counterparts are
// resolved before any messages load, because quotes may name a recipient
// from a different thread. Any unresolvable recipient or quote author
// aborts the whole run; there is no partial recovery.
func (e *Exporter) Run(ctx context.Context) (Stats, error) {
	e.stats = Stats{}

	threadRows, err := e.store.Threads(ctx)
	if err != nil {
		return e.stats, fmt.Errorf("cannot list threads: %w", err)
	}
	e.logger.Info("found threads", "count", len(threadRows))

	recipients := make([]domain.Recipient, len(threadRows))
	for i, row := range threadRows {
		rec, err := e.resolver.Resolve(ctx, row.RecipientID)
		if err != nil {
			return e.stats, err
		}
		recipients[i] = rec
		e.registry.Add(rec)
	}

	for i, row := range threadRows {
		thread := &domain.Thread{ID: row.ID, Recipient: recipients[i]}
		if err := e.loadSMS(ctx, thread); err != nil {
			return e.stats, fmt.Errorf("thread %d: %w", row.ID, err)
		}
		if err := e.loadMMS(ctx, thread); err != nil {
			return e.stats, fmt.Errorf("thread %d: %w", row.ID, err)
		}
		if err := e.renderer.RenderThread(thread); err != nil {
			return e.stats, fmt.Errorf("cannot render thread %d: %w", row.ID, err)
		}

		e.stats.Threads++
		e.stats.SMSMessages += len(thread.SMS)
		e.stats.MMSMessages += len(thread.MMS)
		e.logger.Info("exported thread",
			"thread", row.ID,
			"recipient", thread.Recipient.Name,
			"sms", len(thread.SMS),
			"mms", len(thread.MMS),
		)
	}

	return e.stats, nil
}
