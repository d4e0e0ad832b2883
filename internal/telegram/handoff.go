package telegram

import (
	"context"
	"net/url"
)

// Handoff delivers by building a pre-filled t.me deep link for the user's
// own messaging client. The server makes no network call and cannot observe
// whether the user actually sends the message: success means the handoff
// was initiated.
type Handoff struct {
	handle string
}

// NewHandoff creates a client-handoff deliverer for the given operator
// handle (Telegram username without "@").
func NewHandoff(handle string) *Handoff {
	return &Handoff{handle: handle}
}

// Deliver builds the deep link embedding the percent-encoded message text
// and returns it in the receipt for the browser to open.
func (h *Handoff) Deliver(_ context.Context, text string) (Receipt, error) {
	if h.handle == "" {
		return Receipt{}, ErrMisconfigured
	}

	u := url.URL{
		Scheme:   "https",
		Host:     "t.me",
		Path:     "/" + h.handle,
		RawQuery: "text=" + url.QueryEscape(text),
	}
	return Receipt{HandoffURL: u.String()}, nil
}
