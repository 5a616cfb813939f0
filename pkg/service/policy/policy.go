package policy

import (
	"os"

	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// Oracle decides whether a role set may trigger an action
type Oracle interface {
	Allowed(roles []types.Role, action types.Action) bool
}

// Sentinel errors for policy validation
var (
	ErrPolicyNotFound = goerr.New("policy file not found")
	ErrInvalidPolicy  = goerr.New("invalid policy")
	ErrInvalidAction  = goerr.New("invalid action name")
	ErrInvalidRole    = goerr.New("invalid role name")
	ErrDuplicateRule  = goerr.New("duplicate rule for action")
	ErrMissingRoles   = goerr.New("rule requires at least one role")
)

// Rule grants an action to a set of roles
type Rule struct {
	Action string   `toml:"action"`
	Roles  []string `toml:"roles"`
}

// File is the on-disk policy document
type File struct {
	Rules []Rule `toml:"permission"`
}

// Matrix is a role-to-action permission table
type Matrix struct {
	grants map[types.Action]map[types.Role]bool
}

var _ Oracle = &Matrix{}

// Default returns the built-in permission matrix used when no policy file
// is configured.
func Default() *Matrix {
	m := newMatrix()
	m.grant(types.ActionCreateCase, types.RoleProsecutor, types.RoleLeadership, types.RoleAdministrator, types.RoleClerk)
	m.grant(types.ActionUpdateCase, types.RoleProsecutor, types.RoleLeadership, types.RoleAdministrator, types.RoleClerk)
	m.grant(types.ActionSubmitIndictment, types.RoleProsecutor, types.RoleLeadership, types.RoleAdministrator)
	m.grant(types.ActionRequestRevision, types.RoleProsecutor, types.RoleLeadership, types.RoleJudge, types.RoleAdministrator)
	m.grant(types.ActionAddVerdict, types.RoleJudge, types.RoleLeadership, types.RoleAdministrator)
	m.grant(types.ActionAddRevisionVerdict, types.RoleJudge, types.RoleLeadership, types.RoleAdministrator)
	m.grant(types.ActionCloseCase, types.RoleLeadership, types.RoleJudge, types.RoleAdministrator)
	m.grant(types.ActionSettlement, types.RoleProsecutor, types.RoleLeadership, types.RoleAdministrator)
	m.grant(types.ActionProcessPleaDeal, types.RoleProsecutor, types.RoleLeadership, types.RoleAdministrator)
	m.grant(types.ActionUpdateCaseID, types.RoleAdministrator, types.RoleLeadership)
	return m
}

func newMatrix() *Matrix {
	return &Matrix{grants: make(map[types.Action]map[types.Role]bool)}
}

func (m *Matrix) grant(action types.Action, roles ...types.Role) {
	if m.grants[action] == nil {
		m.grants[action] = make(map[types.Role]bool)
	}
	for _, r := range roles {
		m.grants[action][r] = true
	}
}

// Allowed reports whether any of the roles is granted the action
func (m *Matrix) Allowed(roles []types.Role, action types.Action) bool {
	granted, ok := m.grants[action]
	if !ok {
		return false
	}
	for _, r := range roles {
		if granted[r] {
			return true
		}
	}
	return false
}

// Actions returns all actions the matrix has rules for
func (m *Matrix) Actions() []types.Action {
	actions := make([]types.Action, 0, len(m.grants))
	for _, a := range types.AllActions() {
		if _, ok := m.grants[a]; ok {
			actions = append(actions, a)
		}
	}
	return actions
}

// RolesFor returns the roles granted an action, in canonical role order
func (m *Matrix) RolesFor(action types.Action) []types.Role {
	granted := m.grants[action]
	roles := make([]types.Role, 0, len(granted))
	for _, r := range types.AllRoles() {
		if granted[r] {
			roles = append(roles, r)
		}
	}
	return roles
}

// Parse builds a Matrix from a policy document, validating every rule
func Parse(f *File) (*Matrix, error) {
	m := newMatrix()

	for i, rule := range f.Rules {
		action, err := types.ParseAction(rule.Action)
		if err != nil {
			return nil, goerr.Wrap(ErrInvalidAction, "unknown action in policy",
				goerr.V("action", rule.Action), goerr.V("rule_index", i))
		}
		if _, exists := m.grants[action]; exists {
			return nil, goerr.Wrap(ErrDuplicateRule, "action granted twice",
				goerr.V("action", rule.Action), goerr.V("rule_index", i))
		}
		if len(rule.Roles) == 0 {
			return nil, goerr.Wrap(ErrMissingRoles, "rule has no roles",
				goerr.V("action", rule.Action), goerr.V("rule_index", i))
		}

		roles := make([]types.Role, 0, len(rule.Roles))
		for _, raw := range rule.Roles {
			role, err := types.ParseRole(raw)
			if err != nil {
				return nil, goerr.Wrap(ErrInvalidRole, "unknown role in policy",
					goerr.V("action", rule.Action), goerr.V("role", raw))
			}
			roles = append(roles, role)
		}
		m.grant(action, roles...)
	}

	return m, nil
}

// LoadFile reads and parses a TOML policy file
func LoadFile(path string) (*Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrPolicyNotFound, "policy file not found", goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read policy file", goerr.V("path", path))
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, goerr.Wrap(ErrInvalidPolicy, "failed to parse policy file",
			goerr.V("path", path), goerr.V("parse_error", err.Error()))
	}

	return Parse(&f)
}
