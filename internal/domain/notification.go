package domain

// NotificationLevel distinguishes how a notification is rendered.
type NotificationLevel string

const (
	LevelSuccess NotificationLevel = "success"
	LevelWarning NotificationLevel = "warning"
)

// DefaultDisplayMS is how long a notification stays visible before its
// dismissal transition starts.
const DefaultDisplayMS = 4000

// Notification is one transient, auto-dismissing message. The gateway emits
// them in response payloads; rendering and dismissal are the page's job, with
// DisplayMS as the duration hint.
type Notification struct {
	ID        string            `json:"id"`
	Level     NotificationLevel `json:"level"`
	Message   string            `json:"message"`
	DisplayMS int               `json:"display_ms"`
}
