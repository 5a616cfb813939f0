package types

import "fmt"

// Action names a state-changing operation on a case. The name doubles as
// the permission looked up in the authorization policy and as the action
// tag recorded on audit notes.
type Action string

const (
	ActionCreateCase         Action = "create_case"
	ActionUpdateCase         Action = "update_case"
	ActionSubmitIndictment   Action = "submit_indictment"
	ActionRequestRevision    Action = "request_revision"
	ActionAddVerdict         Action = "add_verdict"
	ActionAddRevisionVerdict Action = "add_revision_verdict"
	ActionCloseCase          Action = "close_case"
	ActionSettlement         Action = "settlement"
	ActionProcessPleaDeal    Action = "process_plea_deal"
	ActionUpdateCaseID       Action = "update_case_id"
)

// AllActions returns all valid actions
func AllActions() []Action {
	return []Action{
		ActionCreateCase,
		ActionUpdateCase,
		ActionSubmitIndictment,
		ActionRequestRevision,
		ActionAddVerdict,
		ActionAddRevisionVerdict,
		ActionCloseCase,
		ActionSettlement,
		ActionProcessPleaDeal,
		ActionUpdateCaseID,
	}
}

// IsValid checks if the action is valid
func (a Action) IsValid() bool {
	for _, v := range AllActions() {
		if a == v {
			return true
		}
	}
	return false
}

// String returns the string representation of the action
func (a Action) String() string {
	return string(a)
}

// ParseAction parses a string into an Action
func ParseAction(s string) (Action, error) {
	action := Action(s)
	if !action.IsValid() {
		return "", fmt.Errorf("invalid action: %s", s)
	}
	return action, nil
}
