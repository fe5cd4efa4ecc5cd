package orchestrator

import "fmt"

// State состояние шага
type State int

const (
	StateUninitialized State = iota
	StateLoaded
	StateBound
	StateSubmitting
	StateSubmitError
	StateSuccess
	// StateAborted корневой элемент шага не найден, шаг не используется
	StateAborted
)

var stateNames = map[State]string{
	StateUninitialized: "uninitialized",
	StateLoaded:        "loaded",
	StateBound:         "bound",
	StateSubmitting:    "submitting",
	StateSubmitError:   "submit_error",
	StateSuccess:       "success",
	StateAborted:       "aborted",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalText сериализует состояние в JSON как строку
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText разбирает состояние из строки
func (s *State) UnmarshalText(text []byte) error {
	for state, name := range stateNames {
		if name == string(text) {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("unknown step state %q", text)
}

// acceptsInput ввод принимается только на привязанном шаге
func (s State) acceptsInput() bool {
	return s == StateBound || s == StateSubmitError
}
