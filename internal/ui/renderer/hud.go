package renderer

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/mitchelldurbincs/LangtonsAnt/internal/common"
	"github.com/mitchelldurbincs/LangtonsAnt/internal/game/states"
)

const (
	hudPadding    = 4
	hudLineHeight = 15
)

// HUDInfo is the state shown in the overlay.
type HUDInfo struct {
	Steps         int
	StepsPerFrame int
	Phase         states.Phase
	X, Y          int
	Heading       string
}

// Lines formats the overlay text, one entry per row.
func (h HUDInfo) Lines() []string {
	lines := []string{
		fmt.Sprintf("Steps: %d (+%d/frame)", h.Steps, h.StepsPerFrame),
		fmt.Sprintf("Ant: (%d,%d) %s", h.X, h.Y, h.Heading),
		fmt.Sprintf("Phase: %s", h.Phase),
	}
	switch h.Phase {
	case states.PhasePaused:
		lines = append(lines, "Space: resume  N: step  R: reset")
	case states.PhaseFrozen:
		lines = append(lines, "R: reset  Esc: quit")
	}
	return lines
}

type HUDRenderer struct {
	face font.Face
}

func NewHUDRenderer(f font.Face) *HUDRenderer {
	return &HUDRenderer{face: f}
}

func (hr *HUDRenderer) Draw(screen *ebiten.Image, info HUDInfo) {
	lines := info.Lines()
	width := 0
	for _, l := range lines {
		if w := font.MeasureString(hr.face, l).Ceil(); w > width {
			width = w
		}
	}
	height := len(lines)*hudLineHeight + hudPadding
	vector.DrawFilledRect(screen, 0, 0, float32(width+2*hudPadding), float32(height), common.HUDBackgroundColor, false)

	for i, l := range lines {
		text.Draw(screen, l, hr.face, hudPadding, hudPadding+hudLineHeight*(i+1)-3, common.HUDTextColor)
	}
}
