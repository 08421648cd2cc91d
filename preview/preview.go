// Package preview draws a top-down terminal view of the installation
package preview

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/swarm-installation/core"
	"github.com/lixenwraith/swarm-installation/engine"
	"github.com/lixenwraith/swarm-installation/host/sim"
	"github.com/lixenwraith/swarm-installation/installation"
	"github.com/lixenwraith/swarm-installation/palette"
	"github.com/lixenwraith/swarm-installation/parameter"
	"github.com/lixenwraith/swarm-installation/portal"
	"github.com/lixenwraith/swarm-installation/scene"
	"github.com/lixenwraith/swarm-installation/vmath"
)

// RoomSpan is the scene-space width and depth shown on screen
const RoomSpan = 2 * parameter.PortalMirrorMidpoint

// approachDistance is how far inside a portal the viewer is placed before clicking it
const approachDistance = 2.0

// Glyphs by height band, low to high
var heightGlyphs = []rune{'.', 'o', 'O', '@'}

// Preview renders world state and turns key presses into portal clicks
type Preview struct {
	screen  tcell.Screen
	world   *engine.World
	host    *sim.Host
	inst    *installation.Installation
	portals *portal.Controller
	scene   *scene.Manager

	status string
}

func New(screen tcell.Screen, world *engine.World, h *sim.Host, inst *installation.Installation, portals *portal.Controller, sc *scene.Manager) *Preview {
	return &Preview{
		screen:  screen,
		world:   world,
		host:    h,
		inst:    inst,
		portals: portals,
		scene:   sc,
	}
}

// project maps scene x/z onto the drawable area above the status line
func (p *Preview) project(v vmath.Vec3) (int, int, bool) {
	w, h := p.screen.Size()
	h-- // status line
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	x := int(v[0] / RoomSpan * float64(w-1))
	y := int(v[2] / RoomSpan * float64(h-1))
	if x < 0 || x >= w || y < 0 || y >= h {
		return 0, 0, false
	}
	return x, y, true
}

func glyphFor(height float64) rune {
	low := parameter.ParentY - parameter.CubeHalfExtent
	f := vmath.Clamp01((height - low) / (2 * parameter.CubeHalfExtent))
	i := int(f * float64(len(heightGlyphs)))
	if i >= len(heightGlyphs) {
		i = len(heightGlyphs) - 1
	}
	return heightGlyphs[i]
}

// albedoColor maps an emissive albedo in the glow band to a terminal color
func albedoColor(albedo [3]float64) tcell.Color {
	span := palette.GlowMax - palette.GlowMin
	c := colorful.Color{
		R: vmath.Clamp01((albedo[0] - palette.GlowMin) / span),
		G: vmath.Clamp01((albedo[1] - palette.GlowMin) / span),
		B: vmath.Clamp01((albedo[2] - palette.GlowMin) / span),
	}
	// Keep the dimmest glow visible on a dark terminal
	c = c.BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, 0.25)
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Draw renders one frame
func (p *Preview) Draw() {
	p.screen.Clear()
	base := tcell.StyleDefault

	for _, e := range p.inst.Entities() {
		if !p.host.Meshes.Has(e) {
			continue
		}
		pos := p.host.WorldPosition(e)
		x, y, ok := p.project(pos)
		if !ok {
			continue
		}
		style := base
		if m, ok := p.host.Materials.Get(e); ok {
			style = style.Foreground(albedoColor(m.Albedo))
		}
		p.screen.SetContent(x, y, glyphFor(pos[1]), nil, style)
	}

	for _, e := range p.portals.Portals() {
		comp, ok := p.portals.Store.Get(e)
		if !ok {
			continue
		}
		x, y, ok := p.project(p.host.WorldPosition(e))
		if !ok {
			continue
		}
		style := base.Foreground(tcell.ColorGray)
		if comp.Progress > 0 {
			style = base.Foreground(tcell.ColorYellow).Bold(comp.Progress >= 1)
		}
		p.screen.SetContent(x, y, rune(comp.Name[0]), nil, style)
	}

	if x, y, ok := p.project(p.host.Position()); ok {
		p.screen.SetContent(x, y, '+', nil, base.Foreground(tcell.ColorRed).Bold(true))
	}

	p.drawStatus(base.Reverse(true))
	p.screen.Show()
}

func (p *Preview) drawStatus(style tcell.Style) {
	w, h := p.screen.Size()
	if h <= 0 {
		return
	}
	line := p.status
	if line == "" {
		line = p.statusLine()
	}
	runes := []rune(line)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		p.screen.SetContent(x, h-1, r, nil, style)
	}
}

func (p *Preview) statusLine() string {
	coord, ok := p.scene.Current()
	if !ok {
		return fmt.Sprintf(" %s | idle | arrows: portals  q: quit", p.scene.CurrentID())
	}
	sel := p.scene.Selection()
	return fmt.Sprintf(" %s %s | %s %s %s | %s | %s | rooms %d",
		coord, p.scene.CurrentID(), sel.Shape, sel.Motion, sel.Color, sel.Ambience,
		p.scene.State(), p.scene.RoomCounter())
}

// portalForKey maps arrow keys onto portals as laid out on screen
func portalForKey(key tcell.Key) (string, bool) {
	switch key {
	case tcell.KeyLeft:
		return "WEST", true
	case tcell.KeyRight:
		return "EAST", true
	case tcell.KeyUp:
		return "SOUTH", true
	case tcell.KeyDown:
		return "NORTH", true
	}
	return "", false
}

// HandleKey applies one key press, returns false when the preview should exit
func (p *Preview) HandleKey(key tcell.Key, r rune) bool {
	switch {
	case key == tcell.KeyEscape || key == tcell.KeyCtrlC:
		return false
	case key == tcell.KeyRune && (r == 'q' || r == 'Q'):
		return false
	case key == tcell.KeyRune && r == 'c':
		p.world.RunSafe(func() {
			p.host.Teleport(parameter.PlayerStart())
		})
		return true
	}

	name, ok := portalForKey(key)
	if !ok {
		return true
	}
	p.UsePortal(name)
	return true
}

// UsePortal walks the viewer up to the named portal and clicks it
func (p *Preview) UsePortal(name string) {
	e, ok := p.portals.ByName(name)
	if !ok {
		return
	}
	p.world.RunSafe(func() {
		start := parameter.PlayerStart()
		target := p.host.WorldPosition(e)
		target[1] = start[1]
		p.host.Teleport(vmath.MoveTowardsV3(target, start, approachDistance))
		if !p.host.Click(e) {
			p.status = fmt.Sprintf(" %s out of reach", name)
			return
		}
		p.status = ""
	})
}

// HandleEvent dispatches a tcell event, returns false when the preview should exit
func (p *Preview) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return p.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		p.screen.Sync()
	}
	return true
}

// Run pumps input and redraws until ctx is done or the user quits
func (p *Preview) Run(ctx context.Context) {
	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	ticker := time.NewTicker(parameter.PreviewRenderInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if !p.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			p.world.RunSafe(p.Draw)
		}
	}
}
