package param

import (
	"encoding/json"
	"fmt"
	"math"
)

// ParameterInfo is the static description the host sends with each update.
type ParameterInfo struct {
	ID                     Index   `json:"id"`
	Title                  string  `json:"title"`
	ShortTitle             string  `json:"shortTitle"`
	Units                  string  `json:"units"`
	StepCount              int     `json:"stepCount"`
	DefaultNormalizedValue float64 `json:"defaultNormalizedValue"`
	Flags                  int     `json:"flags"`
}

// ParameterUpdate is the payload of the host's notifyParameterChange call.
type ParameterUpdate struct {
	Normalized       float64       `json:"normalized"`
	UnitID           int           `json:"unitID"`
	Info             ParameterInfo `json:"info"`
	IsRangeParameter bool          `json:"isRangeParameter"`
	Min              float64       `json:"min,omitempty"`
	Max              float64       `json:"max,omitempty"`
}

// DecodeUpdate parses a serialized parameter notification.
func DecodeUpdate(data []byte) (ParameterUpdate, error) {
	var u ParameterUpdate
	if err := json.Unmarshal(data, &u); err != nil {
		return ParameterUpdate{}, fmt.Errorf("%w: %v", ErrInvalidUpdate, err)
	}
	if err := u.Validate(); err != nil {
		return ParameterUpdate{}, err
	}
	return u, nil
}

// Validate checks that the normalized value lies in [0, 1].
func (u ParameterUpdate) Validate() error {
	if math.IsNaN(u.Normalized) || u.Normalized < 0 || u.Normalized > 1 {
		return fmt.Errorf("%w: parameter %d normalized value %v outside [0, 1]", ErrInvalidUpdate, u.Info.ID, u.Normalized)
	}
	return nil
}
