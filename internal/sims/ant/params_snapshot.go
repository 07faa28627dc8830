package ant

import "mad-ant/internal/core"

// Parameters describes the ant's configuration and live state for HUDs.
func (a *Ant) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("size", "Size", a.cfg.Size),
				core.StringParam("rule", "Rule", a.cfg.Rule.String()),
				core.FloatParam("scatter", "Scatter", a.cfg.Scatter),
				core.Int64Param("seed", "Seed", a.cfg.Seed),
			},
		},
		{
			Name: "Ant",
			Params: []core.Parameter{
				core.IntParam("x", "X", a.x),
				core.IntParam("y", "Y", a.y),
				core.StringParam("direction", "Heading", a.dir.String()),
				core.Uint64Param("steps", "Steps", a.steps),
				core.IntParam("black", "Black cells", a.grid.Count()),
			},
		},
	}}
}
