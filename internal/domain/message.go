package domain

import "time"

// Signal keeps the message kind in the low five bits of the sms type and mms
// msg_box columns. Base type 20 is an incoming message; 21 through 26 are
// the outgoing states (outbox, sending, sent, failed and the two pending
// fallbacks).
const (
	baseTypeMask     = 0x1F
	baseTypeOutbox   = 21
	baseTypeFallback = 26
)

func outgoingType(t int64) bool {
	base := t & baseTypeMask
	return base >= baseTypeOutbox && base <= baseTypeFallback
}

// SMSRecord is one row of the sms table with its sender resolved.
// ThreadRecipient is the counterpart (or group) of the thread the message
// belongs to, shared by every message in the thread.
type SMSRecord struct {
	ID              int64
	ThreadID        int64
	Sender          Recipient
	ThreadRecipient Recipient
	SentAt          time.Time
	ReceivedAt      time.Time
	Body            string
	Type            int64
}

// Outgoing reports whether the message was sent from this device.
func (m SMSRecord) Outgoing() bool {
	return outgoingType(m.Type)
}

// MMSRecord is one row of the mms table with its sender resolved.
// Attachments are filled in by a second pass over the part table; everything
// else is fixed at construction.
type MMSRecord struct {
	ID              int64
	ThreadID        int64
	Sender          Recipient
	ThreadRecipient Recipient
	SentAt          time.Time
	ReceivedAt      time.Time
	Body            string
	Type            int64 // msg_box
	Quote           *Quote
	Attachments     []Attachment
}

// Outgoing reports whether the message was sent from this device.
func (m MMSRecord) Outgoing() bool {
	return outgoingType(m.Type)
}

// Attachment is one row of the part table. Path is empty when the file is
// not present in the backup directory; the metadata is kept either way so
// the page can show a placeholder.
type Attachment struct {
	ID          int64
	UniqueID    int64
	ContentType string
	Path        string
	VoiceNote   bool
	Width       int
	Height      int
	InQuote     bool
}

// Quote is the reply-to block embedded in an MMS message. Author is always
// one of the recipients seen while resolving threads.
type Quote struct {
	MessageID int64
	Author    Recipient
	Text      string
}
