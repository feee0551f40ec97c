package models

// Alert severities used by the simulation generators.
const (
	AlertCritical   = "Critical"
	AlertWarning    = "Warning"
	AlertRisk       = "Risk"
	AlertCompliance = "Compliance"
)

// Alert is a labeled advisory notification with a recommended action.
type Alert struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Action  string `json:"action"`
}

// SimulationResult wraps one simulated market event. Data carries the mutated
// market snapshot for crash simulations; Fund carries the affected scheme for
// manager-change simulations.
type SimulationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Alert   Alert  `json:"alert"`
	Data    any    `json:"data,omitempty"`
	Fund    *Fund  `json:"fund,omitempty"`
}
