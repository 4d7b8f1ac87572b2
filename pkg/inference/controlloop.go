package inference

import (
	"fmt"

	"github.com/plantsight/plantsight/pkg/index"
	"github.com/plantsight/plantsight/pkg/model"
)

// ControlLoopPass derives control relationships from reconstructed
// loops: the sensor feeds the controller, the controller drives the
// actuator. When the controller is missing but both ends exist, a
// weaker sensor→actuator dependency is emitted instead, since the two
// demonstrably belong to the same control function.
type ControlLoopPass struct {
	MonitorConfidence    int
	ControlConfidence    int
	IncompleteConfidence int
}

// NewControlLoopPass returns the pass with default confidences.
func NewControlLoopPass() *ControlLoopPass {
	return &ControlLoopPass{
		MonitorConfidence:    90,
		ControlConfidence:    90,
		IncompleteConfidence: 60,
	}
}

func (p *ControlLoopPass) Name() string { return "control_loop" }

func (p *ControlLoopPass) Run(idx *index.Index, loops []model.ControlLoop) []model.Relationship {
	var out []model.Relationship

	for _, loop := range loops {
		sensor := resolveMember(idx, loop.Sensor)
		controller := resolveMember(idx, loop.Controller)
		actuator := resolveMember(idx, loop.Actuator)

		if sensor != nil && controller != nil {
			out = append(out, edge(sensor, controller, model.RelMonitors, p.MonitorConfidence,
				MethodTagPattern,
				fmt.Sprintf("%s provides %s measurement to %s (loop %s)",
					sensor.Label(), loop.Variable, controller.Label(), loop.Key)))
		}
		if controller != nil && actuator != nil {
			out = append(out, edge(controller, actuator, model.RelControls, p.ControlConfidence,
				MethodTagPattern,
				fmt.Sprintf("%s drives %s (loop %s)",
					controller.Label(), actuator.Label(), loop.Key)))
		}
		if controller == nil && sensor != nil && actuator != nil {
			out = append(out, edge(sensor, actuator, model.RelDependsOn, p.IncompleteConfidence,
				MethodTagPatternIncomplete,
				fmt.Sprintf("%s and %s share loop %s with no controller found",
					sensor.Label(), actuator.Label(), loop.Key)))
		}
	}
	return out
}

func resolveMember(idx *index.Index, m *model.LoopMember) *model.Asset {
	if m == nil {
		return nil
	}
	a, _ := idx.ByID(m.AssetID)
	return a
}
