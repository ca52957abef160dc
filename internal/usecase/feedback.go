package usecase

import (
	"errors"
	"strings"

	apperrors "portalcms/pkg/errors"
)

// Feedback is the fail-soft outcome of a store mutation. Callers always get
// a displayable message; transport details never leak past the store.
type Feedback struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func okFeedback(message string) Feedback {
	return Feedback{Success: true, Message: message}
}

// failFeedback keeps the backend's own message when the failure was reported
// by the backend, and falls back to the store's generic text for transport
// level failures.
func failFeedback(err error, fallback string) Feedback {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code == "UPSTREAM_ERROR" && appErr.Message != "" {
		return Feedback{Success: false, Message: appErr.Message}
	}
	return Feedback{Success: false, Message: fallback}
}

// EventPublisher fans out entity-change notifications to connected admin
// clients. Stores publish after every successful mutation.
type EventPublisher interface {
	PublishChange(entity string, action string, id string)
}

func publish(events EventPublisher, entity, action, id string) {
	if events != nil {
		events.PublishChange(entity, action, id)
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// StatusCounts aggregates a collection by derived display status.
type StatusCounts struct {
	Total   int `json:"total"`
	Active  int `json:"active"`
	Expired int `json:"expired"`
	Hidden  int `json:"hidden"`
}
