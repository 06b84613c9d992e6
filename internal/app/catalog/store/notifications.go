package store

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies a transient user-facing message.
type NotificationType string

const (
	NotifySuccess NotificationType = "success"
	NotifyError   NotificationType = "error"
	NotifyWarning NotificationType = "warning"
	NotifyInfo    NotificationType = "info"
)

// maxNotifications caps the retained history; older entries fall off.
const maxNotifications = 50

// Notification is one toast entry. Unread notifications are rendered once
// and then marked read.
type Notification struct {
	ID        string
	Type      NotificationType
	Title     string
	Message   string
	Timestamp time.Time
	Read      bool
}

// Notify records a new notification at the head of the history.
func (s *Store) Notify(typ NotificationType, title, message string) Notification {
	n := Notification{
		ID:        uuid.New().String(),
		Type:      typ,
		Title:     title,
		Message:   message,
		Timestamp: s.clk.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append([]Notification{n}, s.notifications...)
	if len(s.notifications) > maxNotifications {
		s.notifications = s.notifications[:maxNotifications]
	}
	return n
}

// Notifications returns a copy of the full history, newest first.
func (s *Store) Notifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Notification(nil), s.notifications...)
}

// TakeUnread returns the unread notifications, newest first, marking them
// read so each toast is shown exactly once.
func (s *Store) TakeUnread() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Notification
	for i := range s.notifications {
		if !s.notifications[i].Read {
			out = append(out, s.notifications[i])
			s.notifications[i].Read = true
		}
	}
	return out
}

// RemoveNotification drops one entry by identifier.
func (s *Store) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.notifications[:0]
	for _, n := range s.notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	s.notifications = kept
}

// ClearNotifications empties the history.
func (s *Store) ClearNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = nil
}
