package types

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Outcome is the resolved treatment of a finding
type Outcome int

const (
	// OutcomeSuppressed means the finding is not reported at all
	OutcomeSuppressed Outcome = iota
	// OutcomeWarn means the finding is reported but does not block
	OutcomeWarn
	// OutcomeError means the finding is reported and blocks
	OutcomeError
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeError:
		return "ERROR"
	case OutcomeWarn:
		return "WARNING"
	case OutcomeSuppressed:
		return "SUPPRESSED"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON implements json.Marshaler
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (o *Outcome) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseOutcome(str)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (o Outcome) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (o *Outcome) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	parsed, err := ParseOutcome(str)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// ParseOutcome parses a string into an Outcome
func ParseOutcome(s string) (Outcome, error) {
	switch strings.ToUpper(s) {
	case "ERROR":
		return OutcomeError, nil
	case "WARNING", "WARN":
		return OutcomeWarn, nil
	case "SUPPRESSED", "OFF":
		return OutcomeSuppressed, nil
	default:
		return OutcomeError, fmt.Errorf("unknown outcome: %s", s)
	}
}

// AtLeast returns true if this outcome is at least as severe as other
func (o Outcome) AtLeast(other Outcome) bool {
	return o >= other
}
