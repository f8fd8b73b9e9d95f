package deeplink

// Action is a navigation intent. Its value is the URL host that selects it.
type Action string

const (
	ActionQuickTask              Action = "quicktask"
	ActionLoadProfile            Action = "loadprofile"
	ActionLoadProfileAndEstimate Action = "loadprofileandestimate"
	ActionLoadProfileAndVerify   Action = "loadprofileandverify"
)

// ProfileParam is the name the first query parameter of a profile action must have.
const ProfileParam = "profile"

var actions = []Action{
	ActionQuickTask,
	ActionLoadProfile,
	ActionLoadProfileAndEstimate,
	ActionLoadProfileAndVerify,
}

// Actions returns every recognised action in catalog order.
func Actions() []Action {
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

// ParseAction maps a URL host onto an action. The match is exact.
func ParseAction(host string) (Action, bool) {
	for _, a := range actions {
		if string(a) == host {
			return a, true
		}
	}
	return "", false
}

// Valid reports whether a is one of the recognised actions.
func (a Action) Valid() bool {
	_, ok := ParseAction(string(a))
	return ok
}

// RequiresProfile reports whether links for a must carry a profile parameter.
func (a Action) RequiresProfile() bool {
	switch a {
	case ActionLoadProfile, ActionLoadProfileAndEstimate, ActionLoadProfileAndVerify:
		return true
	}
	return false
}

func (a Action) String() string {
	return string(a)
}
