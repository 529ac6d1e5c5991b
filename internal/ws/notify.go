package ws

import (
	"encoding/json"
	"time"

	"talent-hub/internal/domain/application"
)

type ApplicationEvent struct {
	Type          string `json:"type"`
	ApplicationID int64  `json:"applicationId"`
	JobID         int64  `json:"jobId"`
	JobTitle      string `json:"jobTitle"`
	CompanyName   string `json:"companyName"`
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
}

// Notifier broadcasts application lifecycle events through a hub. A Notifier
// with a nil hub drops everything silently.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) ApplicationCreated(a application.Application) {
	n.publish("application_created", a)
}

func (n *Notifier) ApplicationStatusChanged(a application.Application) {
	n.publish("application_status_changed", a)
}

func (n *Notifier) publish(eventType string, a application.Application) {
	if n == nil || n.hub == nil {
		return
	}

	evt := ApplicationEvent{
		Type:          eventType,
		ApplicationID: a.ID,
		JobID:         a.JobID,
		JobTitle:      a.JobTitle,
		CompanyName:   a.CompanyName,
		Status:        string(a.Status),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
