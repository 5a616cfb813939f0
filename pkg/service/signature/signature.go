package signature

import (
	"fmt"
	"strings"

	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/model/auth"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/types"
)

// Placeholder is the token in indictment text replaced by the submitting
// user's formatted signature.
const Placeholder = "{{SIGNATURE}}"

// Provider renders the signature block for a caller
type Provider interface {
	Render(caller *auth.Caller) string
}

// Formatter is the default Provider. It renders the caller's display name
// followed by their highest-ranking role title.
type Formatter struct{}

var _ Provider = &Formatter{}

// New creates the default signature formatter
func New() *Formatter {
	return &Formatter{}
}

// Render returns the formatted signature string for the caller
func (f *Formatter) Render(caller *auth.Caller) string {
	title := roleTitle(caller)
	if title == "" {
		return caller.DisplayName()
	}
	return fmt.Sprintf("%s\n%s", caller.DisplayName(), title)
}

// Apply replaces every signature placeholder in text with the rendered
// signature of the caller.
func Apply(p Provider, text string, caller *auth.Caller) string {
	if !strings.Contains(text, Placeholder) {
		return text
	}
	return strings.ReplaceAll(text, Placeholder, p.Render(caller))
}

// roleTitle picks the most senior role held by the caller. Order matters:
// leadership outranks the bench, the bench outranks counsel.
func roleTitle(caller *auth.Caller) string {
	ranked := []struct {
		role  types.Role
		title string
	}{
		{types.RoleLeadership, "Chief Prosecutor's Office"},
		{types.RoleJudge, "Presiding Judge"},
		{types.RoleProsecutor, "Prosecutor"},
		{types.RoleAdministrator, "Administration"},
		{types.RoleMarshal, "Marshal Service"},
		{types.RoleClerk, "Clerk of Court"},
	}
	for _, r := range ranked {
		if caller.HasRole(r.role) {
			return r.title
		}
	}
	return ""
}
