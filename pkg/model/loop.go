package model

// LoopStatus describes how complete a reconstructed control loop is.
type LoopStatus string

const (
	LoopComplete LoopStatus = "complete" // sensor, controller and actuator all found
	LoopPartial  LoopStatus = "partial"  // one or two roles missing
	LoopOrphaned LoopStatus = "orphaned" // no role could be classified
)

// LoopMember references one asset filling a role within a loop.
type LoopMember struct {
	AssetID string `json:"asset_id"`
	Tag     string `json:"tag,omitempty"`
}

// ControlLoop is a reconstructed control function: the assets sharing a
// measured-variable code and loop number. At most one representative per
// role is retained; extra same-role members stay visible to the other
// inference passes but do not appear here.
type ControlLoop struct {
	Key          string      `json:"key"`           // variable code + loop number, e.g. "T-101"
	Variable     string      `json:"variable"`      // human name of the measured variable
	ProcessArea  string      `json:"process_area,omitempty"`
	Sensor       *LoopMember `json:"sensor,omitempty"`
	Controller   *LoopMember `json:"controller,omitempty"`
	Actuator     *LoopMember `json:"actuator,omitempty"`
	Status       LoopStatus  `json:"status"`
	Missing      []string    `json:"missing,omitempty"` // role names not found
	Networked    bool        `json:"networked"`         // any representative carries an IP
}
