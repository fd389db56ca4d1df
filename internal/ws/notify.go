package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const EventProjectsUpdated = "projects_updated"

type ProjectsUpdatedEvent struct {
	Type      string    `json:"type"`
	ProjectID uuid.UUID `json:"project_id"`
	Action    string    `json:"action"`
	Timestamp string    `json:"timestamp"`
}

// Notifier publishes project changes to every connected client.
type Notifier struct {
	hub *Hub
	now func() time.Time
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub, now: time.Now}
}

func (n *Notifier) ProjectsUpdated(projectID uuid.UUID, action string) {
	if n == nil || n.hub == nil {
		return
	}

	b, err := json.Marshal(ProjectsUpdatedEvent{
		Type:      EventProjectsUpdated,
		ProjectID: projectID,
		Action:    action,
		Timestamp: n.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
