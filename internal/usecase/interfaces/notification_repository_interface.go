package interfaces

import (
	"context"
	"propie_backend/internal/domain/entities"
)

// INotificationRepository persists in-platform notifications. Callers treat
// creation as fire-and-forget.

type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
}
