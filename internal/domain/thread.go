package domain

// Thread is a single conversation: the counterpart (or group) it belongs to
// and the messages exchanged, split by transport the way the backup database
// stores them.
type Thread struct {
	ID        int64
	Recipient Recipient
	SMS       []SMSRecord
	MMS       []MMSRecord
}
