package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Delivery failure classes. Handlers map these to user-facing responses
// without ever exposing configuration values.
var (
	// ErrMisconfigured means required delivery configuration is missing.
	// It is raised before any network call is attempted.
	ErrMisconfigured = errors.New("delivery is not configured")
	// ErrUpstream means the Telegram API call failed in transport or was
	// rejected by the API.
	ErrUpstream = errors.New("telegram API request failed")
)

// Receipt is the result of a delivery attempt.
type Receipt struct {
	// Delivered is true when the message was pushed server-side.
	Delivered bool `json:"delivered"`
	// HandoffURL is set when the client must complete delivery by opening
	// the deep link in its own messaging client.
	HandoffURL string `json:"handoffUrl,omitempty"`
}

// Deliverer gets a formatted inquiry message to the operator's inbox.
// Implementations are interchangeable; the submission flow is agnostic to
// which one is configured.
type Deliverer interface {
	Deliver(ctx context.Context, text string) (Receipt, error)
}

// apiBase is the Telegram Bot API endpoint template prefix.
const apiBase = "https://api.telegram.org/bot"

// requestTimeout bounds every Bot API call.
const requestTimeout = 5 * time.Second

// Client delivers messages through the Telegram Bot API (server push).
type Client struct {
	token  string
	chatID string
	base   string
	http   *http.Client
	log    *zap.Logger
}

// NewClient creates a server-push deliverer. token and chatID are supplied
// out-of-band; when either is empty every Deliver call fails with
// ErrMisconfigured.
func NewClient(token, chatID string, log *zap.Logger) *Client {
	return &Client{
		token:  token,
		chatID: chatID,
		base:   apiBase,
		http:   &http.Client{Timeout: requestTimeout},
		log:    log,
	}
}

// sendMessageRequest is the JSON body of a sendMessage call.
type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// apiResponse is the envelope every Bot API method returns.
type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description"`
	Result      json.RawMessage `json:"result"`
}

// Deliver sends the formatted message as a single synchronous sendMessage
// call. Success requires both a 2xx status and ok=true in the response.
// No retries: a failure is surfaced once and recovery is left to the user.
func (c *Client) Deliver(ctx context.Context, text string) (Receipt, error) {
	if c.token == "" || c.chatID == "" {
		return Receipt{}, ErrMisconfigured
	}

	body, err := json.Marshal(sendMessageRequest{
		ChatID:    c.chatID,
		Text:      text,
		ParseMode: "Markdown",
	})
	if err != nil {
		return Receipt{}, fmt.Errorf("marshal sendMessage: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+c.token+"/sendMessage", bytes.NewReader(body))
	if err != nil {
		return Receipt{}, fmt.Errorf("build sendMessage request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Receipt{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	var out apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Receipt{}, fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}

	if resp.StatusCode/100 != 2 || !out.OK {
		c.log.Error("telegram sendMessage rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("description", out.Description),
		)
		return Receipt{}, ErrUpstream
	}

	return Receipt{Delivered: true}, nil
}

// botInfo is the subset of the getMe result used for diagnostics.
type botInfo struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
}

// Verify checks that the configured bot token is valid via getMe and logs
// the bot identity. It is a startup diagnostic only; the caller decides
// whether a failure is fatal.
func (c *Client) Verify(ctx context.Context) error {
	if c.token == "" {
		return ErrMisconfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+c.token+"/getMe", nil)
	if err != nil {
		return fmt.Errorf("build getMe request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	var out apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	if !out.OK {
		return fmt.Errorf("%w: %s", ErrUpstream, out.Description)
	}

	var bot botInfo
	if err := json.Unmarshal(out.Result, &bot); err == nil {
		c.log.Info("telegram bot verified",
			zap.String("username", bot.Username),
			zap.String("name", bot.FirstName),
		)
	}
	return nil
}
