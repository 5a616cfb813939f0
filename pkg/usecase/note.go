package usecase

import (
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/model"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/model/auth"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/types"
)

// appendNote prepends an attributed audit entry to the case. Notes are
// append-only: once on the case, an entry is never edited or removed.
func (uc *UseCases) appendNote(c *model.Case, caller *auth.Caller, action types.Action, text string, metadata map[string]string) {
	c.PrependNote(model.Note{
		Date:     uc.now(),
		User:     caller.DisplayName(),
		Action:   action,
		Metadata: metadata,
		Note:     text,
	})
}
