package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"signalhtml/internal/domain"
)

// ErrUnknownQuoteAuthor aborts the run: a quote pointing at a recipient that
// never appeared as a thread counterpart means the backup is inconsistent.
var ErrUnknownQuoteAuthor = errors.New("unknown quote author")

// loadSMS materializes the sms rows of a thread in send order.
func (e *Exporter) loadSMS(ctx context.Context, t *domain.Thread) error {
	rows, err := e.store.SMSByThread(ctx, t.ID)
	if err != nil {
		return err
	}
	for _, row := range rows {
		sender, err := e.resolver.Resolve(ctx, row.Address)
		if err != nil {
			return err
		}
		t.SMS = append(t.SMS, domain.SMSRecord{
			ID:              row.ID,
			ThreadID:        t.ID,
			Sender:          sender,
			ThreadRecipient: t.Recipient,
			SentAt:          time.UnixMilli(row.DateSent),
			ReceivedAt:      time.UnixMilli(row.Date),
			Body:            row.Body.String,
			Type:            row.Type,
		})
	}
	return nil
}

// loadMMS materializes the mms rows of a thread in send order, resolving
// quotes against the recipients registered up front. Attachments reference
// their parent message by id, so they are filled in by a second pass once
// every message shell exists.
func (e *Exporter) loadMMS(ctx context.Context, t *domain.Thread) error {
	rows, err := e.store.MMSByThread(ctx, t.ID)
	if err != nil {
		return err
	}
	for _, row := range rows {
		var quote *domain.Quote
		if row.QuoteID != 0 {
			author, ok := e.registry.Find(row.QuoteAuthor.String)
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownQuoteAuthor, row.QuoteAuthor.String)
			}
			quote = &domain.Quote{
				MessageID: row.QuoteID,
				Author:    author,
				Text:      row.QuoteBody.String,
			}
		}

		sender, err := e.resolver.Resolve(ctx, row.Address)
		if err != nil {
			return err
		}
		t.MMS = append(t.MMS, domain.MMSRecord{
			ID:              row.ID,
			ThreadID:        t.ID,
			Sender:          sender,
			ThreadRecipient: t.Recipient,
			SentAt:          time.UnixMilli(row.Date),
			ReceivedAt:      time.UnixMilli(row.DateReceived),
			Body:            row.Body.String,
			Type:            row.MsgBox,
			Quote:           quote,
		})
	}

	for i := range t.MMS {
		if err := e.loadAttachments(ctx, &t.MMS[i]); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) loadAttachments(ctx context.Context, m *domain.MMSRecord) error {
	parts, err := e.store.PartsByMessage(ctx, m.ID)
	if err != nil {
		return err
	}
	for _, p := range parts {
		path, ok := e.locator.Locate(p.ID, p.UniqueID)
		if !ok {
			e.stats.MissingAttachments++
		}
		e.stats.Attachments++
		m.Attachments = append(m.Attachments, domain.Attachment{
			ID:          p.ID,
			UniqueID:    p.UniqueID,
			ContentType: p.ContentType,
			Path:        path,
			VoiceNote:   p.VoiceNote,
			Width:       p.Width,
			Height:      p.Height,
			InQuote:     p.InQuote,
		})
	}
	return nil
}
