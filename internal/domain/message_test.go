package domain

import "testing"

func TestOutgoing_BaseTypes(t *testing.T) {
	cases := []struct {
		typ  int64
		want bool
	}{
		{20, false}, // inbox
		{21, true},  // outbox
		{22, true},  // sending
		{23, true},  // sent
		{24, true},  // send failed
		{25, true},  // pending secure fallback
		{26, true},  // pending insecure fallback
		{27, false},
		{0, false},
	}
	for _, c := range cases {
		sms := SMSRecord{Type: c.typ}
		if got := sms.Outgoing(); got != c.want {
			t.Errorf("SMSRecord type %d: Outgoing() = %v, want %v", c.typ, got, c.want)
		}
	}
}

func TestOutgoing_IgnoresFlagBits(t *testing.T) {
	// Real values carry secure/push flags in the high bits.
	incoming := SMSRecord{Type: 10485780} // base 20
	if incoming.Outgoing() {
		t.Error("secure incoming message should not be outgoing")
	}
	sent := MMSRecord{Type: 10485783} // base 23
	if !sent.Outgoing() {
		t.Error("secure sent message should be outgoing")
	}
}

func TestRecipientID_String(t *testing.T) {
	if got := RecipientID(42).String(); got != "42" {
		t.Errorf("expected \"42\", got %q", got)
	}
	if got := RecipientID(0).String(); got != "0" {
		t.Errorf("expected \"0\", got %q", got)
	}
}

func TestNormalizeKey_TrimsWhitespace(t *testing.T) {
	if got := NormalizeKey(" 42 "); got != "42" {
		t.Errorf("expected \"42\", got %q", got)
	}
	if got := NormalizeKey("42"); got != "42" {
		t.Errorf("expected \"42\", got %q", got)
	}
}
