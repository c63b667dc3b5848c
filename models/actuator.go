package models

// ActuatorAction is the path segment of the control endpoint.
type ActuatorAction string

const (
	ActuatorOn  ActuatorAction = "on"
	ActuatorOff ActuatorAction = "off"
)

// ActionFor maps a requested on/off state to its control action.
func ActionFor(on bool) ActuatorAction {
	if on {
		return ActuatorOn
	}
	return ActuatorOff
}

// ParseActuatorAction validates a raw action string.
func ParseActuatorAction(raw string) (ActuatorAction, bool) {
	switch ActuatorAction(raw) {
	case ActuatorOn:
		return ActuatorOn, true
	case ActuatorOff:
		return ActuatorOff, true
	default:
		return "", false
	}
}

// ActuatorState mirrors the last state the device confirmed.
// It is never updated optimistically.
type ActuatorState struct {
	On bool `json:"on"`
}
