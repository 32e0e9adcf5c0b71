package ws

import (
	"encoding/json"
	"time"

	"mentorlink/internal/domain/user"

	"github.com/google/uuid"
)

// ConnectionEvent is pushed to a user when a request involving them is
// created or accepted.
type ConnectionEvent struct {
	Type      string    `json:"type"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	Timestamp string    `json:"timestamp"`
}

const (
	EventConnectionRequested = "connection_requested"
	EventConnectionAccepted  = "connection_accepted"
)

// Notifier adapts the hub to the usecase layer's notification contract.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

// ConnectionRequested tells the target a new request arrived.
func (n *Notifier) ConnectionRequested(source, target user.User) {
	n.push(target.ID, ConnectionEvent{
		Type:     EventConnectionRequested,
		UserID:   source.ID,
		UserName: source.Name,
	})
}

// ConnectionAccepted tells the requester their request was accepted.
func (n *Notifier) ConnectionAccepted(responder, requester user.User) {
	n.push(requester.ID, ConnectionEvent{
		Type:     EventConnectionAccepted,
		UserID:   responder.ID,
		UserName: responder.Name,
	})
}

func (n *Notifier) push(to uuid.UUID, evt ConnectionEvent) {
	if n == nil || n.hub == nil {
		return
	}
	evt.Timestamp = time.Now().UTC().Format(time.RFC3339)
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Send(to, b)
}
