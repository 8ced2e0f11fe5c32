package driftline

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// collectPath is appended to the configured collector URL.
const collectPath = "/collect"

// Config carries everything a Client needs. None of the fields are
// validated at construction time; a misconfigured client surfaces failures
// through its Logger once tracking calls start.
type Config struct {
	// AppView names the application view producing events, e.g. "tidings".
	AppView string

	// Env tags events with the producing environment, EnvDev or EnvProd.
	Env Env

	// CollectorURL is the base URL of the collector. A single trailing
	// slash is tolerated; the client posts to CollectorURL + "/collect".
	CollectorURL string

	// APIKey is sent with every request as the X-API-Key header.
	APIKey string

	// UID is the pseudonymous user identifier stamped on every event,
	// normally the output of DeriveUIDFromDID.
	UID string

	// HTTPClient overrides the HTTP client used for delivery. Leave nil
	// for a client with transport defaults; no extra timeout is imposed.
	HTTPClient *http.Client

	// Logger overrides where diagnostics go. Leave nil for the standard
	// log package at error level only.
	Logger Logger
}

// Client emits analytics events to a collector. All tracking methods are
// fire-and-forget: they stamp the event, hand delivery to a goroutine and
// return. Delivery and collector failures are logged, never returned, so a
// broken or unreachable collector cannot disturb the caller.
//
// A Client is safe for concurrent use.
type Client struct {
	appView    string
	env        Env
	apiKey     string
	uid        string
	collectURL string

	httpClient *http.Client
	logger     Logger

	inflight sync.WaitGroup
}

// NewClient builds a Client from cfg. It never fails: configuration is
// taken as given, and problems show up as logged delivery errors.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = newStdLogger()
	}
	return &Client{
		appView:    cfg.AppView,
		env:        cfg.Env,
		apiKey:     cfg.APIKey,
		uid:        cfg.UID,
		collectURL: strings.TrimSuffix(cfg.CollectorURL, "/") + collectPath,
		httpClient: httpClient,
		logger:     logger,
	}
}

// TrackAccountCreated records that the user completed account creation.
// The client does not enforce once-per-user semantics; call it at the
// moment the account exists and let the collector deal with duplicates.
func (c *Client) TrackAccountCreated(props Props) {
	c.track(EventTypeAccount, EventNameAccountCreated, "", props)
}

// TrackView records an impression of the named screen.
func (c *Client) TrackView(screen string, props Props) {
	c.track(EventTypeView, EventNameScreenImpression, screen, props)
}

// TrackAction records a user action. screen is optional; pass "" when the
// action has no screen context.
func (c *Client) TrackAction(name, screen string, props Props) {
	c.track(EventTypeAction, name, screen, props)
}

// track stamps and serializes the event synchronously, so the timestamp
// reflects the call and later mutation of the caller's props map cannot
// leak into the record, then hands the bytes to a delivery goroutine.
func (c *Client) track(typ EventType, name, screen string, props Props) {
	ev := c.newEvent(typ, name, screen, props)
	body, err := json.Marshal(ev)
	if err != nil {
		c.logger.Errorf("marshal event (type=%s, name=%s): %v", typ, name, err)
		return
	}

	deliveryID := uuid.Must(uuid.NewV7()).String()
	c.logger.Debugf("dispatching event (delivery=%s, type=%s, name=%s)", deliveryID, typ, name)

	c.inflight.Add(1)
	go c.deliver(deliveryID, body)
}

func (c *Client) newEvent(typ EventType, name, screen string, props Props) Event {
	ev := Event{
		V:         schemaVersion,
		AppView:   c.appView,
		Env:       c.env,
		Timestamp: time.Now().UTC(),
		UID:       c.uid,
		Type:      typ,
		Name:      name,
	}
	if screen != "" {
		ev.Screen = screen
	}
	if len(props) > 0 {
		ev.Props = props
	}
	return ev
}

// deliver posts one serialized event to the collector. Every failure mode
// ends in a log line; nothing propagates.
func (c *Client) deliver(deliveryID string, body []byte) {
	defer c.inflight.Done()

	req, err := http.NewRequest(http.MethodPost, c.collectURL, bytes.NewReader(body))
	if err != nil {
		c.logger.Errorf("build request (delivery=%s, url=%s): %v", deliveryID, c.collectURL, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Errorf("deliver event (delivery=%s): %v", deliveryID, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Errorf("collector rejected event (delivery=%s, status=%d): %v", deliveryID, resp.StatusCode, decodeErrorBody(resp.Body))
		return
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	c.logger.Debugf("event delivered (delivery=%s, status=%d)", deliveryID, resp.StatusCode)
}

// decodeErrorBody interprets a collector error response. Anything that is
// not a single valid JSON value collapses to a generic placeholder.
func decodeErrorBody(r io.Reader) any {
	raw, err := io.ReadAll(r)
	if err == nil {
		var detail any
		if json.Unmarshal(raw, &detail) == nil {
			return detail
		}
	}
	return map[string]any{"error": "Unknown error"}
}

// Close waits for deliveries already in flight to finish. It must follow
// the last tracking call; tracking concurrently with Close is a race on
// the wait group. The error is always nil and exists for io.Closer.
func (c *Client) Close() error {
	c.inflight.Wait()
	return nil
}
