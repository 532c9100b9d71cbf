package domain

import (
	"context"
	"database/sql"
)

// BackupStore is the read side of a decrypted backup database. The export
// pipeline depends on this interface so tests can substitute a fixture.
type BackupStore interface {
	Threads(ctx context.Context) ([]ThreadRow, error)
	Recipient(ctx context.Context, id RecipientID) (RecipientRow, error)
	GroupTitle(ctx context.Context, groupID string) (sql.NullString, error)

	SMSByThread(ctx context.Context, threadID int64) ([]SMSRow, error)
	MMSByThread(ctx context.Context, threadID int64) ([]MMSRow, error)
	PartsByMessage(ctx context.Context, messageID int64) ([]PartRow, error)

	Close() error
}

// Renderer consumes fully populated threads and produces output pages.
type Renderer interface {
	RenderThread(t *Thread) error
}

// ThreadRow is one row of the thread table.
type ThreadRow struct {
	ID          int64
	RecipientID RecipientID
}

// RecipientRow is one row of the recipient table. Every column the name
// resolution looks at can be NULL.
type RecipientRow struct {
	GroupID    sql.NullString
	SystemName sql.NullString
	JoinedName sql.NullString
	Color      sql.NullString
}

// SMSRow is one row of the sms table. Dates are epoch milliseconds; for SMS
// the date column holds the receive time and date_sent the send time.
type SMSRow struct {
	ID       int64
	Address  RecipientID
	Date     int64
	DateSent int64
	Body     sql.NullString
	Type     int64
}

// MMSRow is one row of the mms table. Dates are epoch milliseconds; for MMS
// the date column holds the send time and date_received the receive time.
// QuoteID zero means the message quotes nothing.
type MMSRow struct {
	ID           int64
	Address      RecipientID
	Date         int64
	DateReceived int64
	Body         sql.NullString
	QuoteID      int64
	QuoteAuthor  sql.NullString
	QuoteBody    sql.NullString
	MsgBox       int64
}

// PartRow is one row of the part table with NULL columns normalized.
type PartRow struct {
	ID          int64
	ContentType string
	UniqueID    int64
	VoiceNote   bool
	Width       int
	Height      int
	InQuote     bool
}
