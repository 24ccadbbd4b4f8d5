package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/LangtonsAnt/internal/game/states"
)

func TestHUDInfoLines(t *testing.T) {
	info := HUDInfo{Steps: 11050, StepsPerFrame: 50, Phase: states.PhaseRunning, X: 3, Y: 4, Heading: "Left"}
	assert.Equal(t, []string{
		"Steps: 11050 (+50/frame)",
		"Ant: (3,4) Left",
		"Phase: Running",
	}, info.Lines())

	info.Phase = states.PhasePaused
	assert.Len(t, info.Lines(), 4)
	assert.Contains(t, info.Lines()[3], "N: step")

	info.Phase = states.PhaseFrozen
	assert.Contains(t, info.Lines()[3], "R: reset")
}
