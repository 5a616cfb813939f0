package slack

import (
	"context"

	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/model"
)

// Service posts case lifecycle updates to a notification channel. The
// orchestrator treats it as optional; a nil service disables notification.
type Service interface {
	NotifyCaseUpdate(ctx context.Context, c *model.Case, note model.Note) error
}
