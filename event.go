package driftline

import "time"

// schemaVersion is stamped on every record as the "v" field.
const schemaVersion = 1

// Env tags records with the environment they were produced in.
type Env string

const (
	EnvDev  Env = "dev"
	EnvProd Env = "prod"
)

// EventType classifies an analytics event.
type EventType string

const (
	EventTypeAccount EventType = "account"
	EventTypeView    EventType = "view"
	EventTypeAction  EventType = "action"
)

// Event names the client assigns to lifecycle events.
const (
	EventNameAccountCreated   = "account_created"
	EventNameScreenImpression = "screen_impression"
)

// Props carries free-form, JSON-serializable event properties.
type Props map[string]any

// Event is the wire record POSTed to the collector. A record always carries
// v, appView, env, ts, uid, type and name. Screen and props appear only
// when set; an absent screen or an empty property map never reaches the
// wire, not even as null or {}.
type Event struct {
	V         int       `json:"v"`
	AppView   string    `json:"appView"`
	Env       Env       `json:"env"`
	Timestamp time.Time `json:"ts"`
	UID       string    `json:"uid"`
	Type      EventType `json:"type"`
	Name      string    `json:"name"`
	Screen    string    `json:"screen,omitempty"`
	Props     Props     `json:"props,omitempty"`
}
