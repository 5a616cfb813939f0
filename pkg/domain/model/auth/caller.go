package auth

import (
	"context"

	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Caller is the resolved identity of whoever invokes an action. It is
// built once at the edge (session handling is outside this core) and
// passed through the context; role predicates are derived from the role
// set instead of recomputed from ambient session state.
type Caller struct {
	Sub   string
	Name  string
	Roles []types.Role
}

// HasRole reports whether the caller holds the given role
func (c *Caller) HasRole(role types.Role) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the caller holds at least one of the given roles
func (c *Caller) HasAnyRole(roles ...types.Role) bool {
	for _, r := range roles {
		if c.HasRole(r) {
			return true
		}
	}
	return false
}

// IsProsecutor reports whether the caller holds the prosecutor role
func (c *Caller) IsProsecutor() bool { return c.HasRole(types.RoleProsecutor) }

// IsLeadership reports whether the caller holds the leadership role
func (c *Caller) IsLeadership() bool { return c.HasRole(types.RoleLeadership) }

// IsJudge reports whether the caller holds the judge role
func (c *Caller) IsJudge() bool { return c.HasRole(types.RoleJudge) }

// IsAdministrator reports whether the caller holds the administrator role
func (c *Caller) IsAdministrator() bool { return c.HasRole(types.RoleAdministrator) }

// DisplayName returns the name to record on notes and signatures
func (c *Caller) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Sub
}

type ctxKey struct{}

var ErrNoCaller = goerr.New("no caller in context")

// ContextWithCaller attaches the caller to the context
func ContextWithCaller(ctx context.Context, caller *Caller) context.Context {
	return context.WithValue(ctx, ctxKey{}, caller)
}

// CallerFromContext extracts the caller from the context
func CallerFromContext(ctx context.Context) (*Caller, error) {
	caller, ok := ctx.Value(ctxKey{}).(*Caller)
	if !ok || caller == nil {
		return nil, ErrNoCaller
	}
	return caller, nil
}
