//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"sandgrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the status line and the adjustable-parameter rows in the top
// left corner of the view. Tab cycles the selected parameter, comma and
// period nudge it by its step.
type HUD struct {
	controls []core.ParameterControl
	getter   core.IntParameterGetter
	setter   core.IntParameterSetter
	selected int
}

// NewHUD constructs a HUD for the provided simulation. Simulations without
// parameter controls get a status line only.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = provider.ParameterControls()
	}
	if getter, ok := sim.(core.IntParameterGetter); ok {
		h.getter = getter
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.setter = setter
	}
	return h
}

// Update handles parameter-selection and adjustment input.
func (h *HUD) Update() {
	if h == nil || len(h.controls) == 0 || h.getter == nil || h.setter == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.selected = (h.selected + 1) % len(h.controls)
	}
	ctrl := h.controls[h.selected]
	delta := 0
	if inpututil.IsKeyJustPressed(ebiten.KeyComma) {
		delta = -int(ctrl.Step)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		delta = int(ctrl.Step)
	}
	if delta == 0 {
		return
	}
	if cur, ok := h.getter.IntParameter(ctrl.Key); ok {
		h.setter.SetIntParameter(ctrl.Key, cur+delta)
	}
}

// Draw paints the status line followed by one row per parameter control.
func (h *HUD) Draw(screen *ebiten.Image, status string) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13
	text.Draw(screen, status, face, 8, 16, color.White)

	yPos := 32
	for i, ctrl := range h.controls {
		value := "--"
		if h.getter != nil {
			if v, ok := h.getter.IntParameter(ctrl.Key); ok {
				value = strconv.Itoa(v)
			}
		}
		marker := "  "
		if i == h.selected {
			marker = "> "
		}
		text.Draw(screen, fmt.Sprintf("%s%s: %s", marker, ctrl.Label, value), face, 8, yPos, color.White)
		yPos += 14
	}
}
