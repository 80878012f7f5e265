// Package sse implements Server-Sent Events for pushing catalog changes
// to connected clients. A browser tab that keeps the stream open sees
// edits made in any other tab without polling.
package sse

import (
	"time"

	"github.com/loacademie/academie-server/internal/domain"
)

// EventType represents the type of SSE Event.
type EventType string

const (
	// EventCourseCreated represents a course creation event.
	EventCourseCreated EventType = "course.created"
	// EventCourseUpdated represents a course update event.
	EventCourseUpdated EventType = "course.updated"
	// EventCourseDeleted represents a course deletion event.
	EventCourseDeleted EventType = "course.deleted"

	// EventCatalogReset represents a bulk replacement of the catalog.
	// Clients discard their cached list and refetch once.
	EventCatalogReset EventType = "catalog.reset"

	// EventFavoriteToggled represents a profile toggling a favorite.
	// Filtered to the owning profile's connections.
	EventFavoriteToggled EventType = "favorite.toggled"

	// EventHeartbeat represents a connection keepalive event.
	EventHeartbeat EventType = "heartbeat"
)

// Event represents an SSE event to be sent to clients.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
	Type      EventType `json:"type"`

	// ProfileID filters delivery to one profile's connections.
	// Empty means broadcast to all. Not serialized to clients.
	ProfileID string `json:"-"`
}

// CourseEventData is the data payload for course create/update events.
// The full course rides along so clients can render without a refetch.
type CourseEventData struct {
	Course *domain.Course `json:"course"`
}

// CourseDeletedEventData is the data payload for course delete events.
type CourseDeletedEventData struct {
	DeletedAt time.Time `json:"deleted_at"`
	CourseID  string    `json:"course_id"`
}

// CatalogResetEventData is the data payload for catalog reset events.
type CatalogResetEventData struct {
	ResetAt time.Time `json:"reset_at"`
	Count   int       `json:"count"`
}

// FavoriteToggledEventData is the data payload for favorite toggles.
type FavoriteToggledEventData struct {
	ProfileID string `json:"profile_id"`
	CourseID  string `json:"course_id"`
	Favorite  bool   `json:"favorite"`
}

// HeartbeatEventData is the data payload for heartbeat events.
type HeartbeatEventData struct {
	ServerTime time.Time `json:"server_time"`
}

// NewCourseCreatedEvent creates a course creation event.
func NewCourseCreatedEvent(course *domain.Course) Event {
	return Event{
		Type:      EventCourseCreated,
		Timestamp: time.Now(),
		Data:      CourseEventData{Course: course},
	}
}

// NewCourseUpdatedEvent creates a course update event.
func NewCourseUpdatedEvent(course *domain.Course) Event {
	return Event{
		Type:      EventCourseUpdated,
		Timestamp: time.Now(),
		Data:      CourseEventData{Course: course},
	}
}

// NewCourseDeletedEvent creates a course deletion event.
func NewCourseDeletedEvent(courseID string) Event {
	return Event{
		Type:      EventCourseDeleted,
		Timestamp: time.Now(),
		Data:      CourseDeletedEventData{CourseID: courseID, DeletedAt: time.Now()},
	}
}

// NewCatalogResetEvent creates a catalog reset event.
func NewCatalogResetEvent(count int) Event {
	return Event{
		Type:      EventCatalogReset,
		Timestamp: time.Now(),
		Data:      CatalogResetEventData{ResetAt: time.Now(), Count: count},
	}
}

// NewFavoriteToggledEvent creates a favorite toggle event scoped to the
// owning profile.
func NewFavoriteToggledEvent(profileID, courseID string, favorite bool) Event {
	return Event{
		Type:      EventFavoriteToggled,
		Timestamp: time.Now(),
		ProfileID: profileID,
		Data: FavoriteToggledEventData{
			ProfileID: profileID,
			CourseID:  courseID,
			Favorite:  favorite,
		},
	}
}

// NewHeartbeatEvent creates a keepalive event.
func NewHeartbeatEvent() Event {
	return Event{
		Type:      EventHeartbeat,
		Timestamp: time.Now(),
		Data:      HeartbeatEventData{ServerTime: time.Now()},
	}
}
