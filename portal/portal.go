// Package portal places the four room exits and moves the viewer through them
package portal

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/lixenwraith/swarm-installation/component"
	"github.com/lixenwraith/swarm-installation/core"
	"github.com/lixenwraith/swarm-installation/engine"
	"github.com/lixenwraith/swarm-installation/host"
	"github.com/lixenwraith/swarm-installation/parameter"
	"github.com/lixenwraith/swarm-installation/room"
	"github.com/lixenwraith/swarm-installation/vmath"
)

// Meshes used by portal frames
const (
	ColliderMesh = "portal_collider"
	FrameMesh    = "portal_frame"
	TopFrameMesh = "portal_frame_top"
)

// Spec places one portal
type Spec struct {
	Name      string
	Position  vmath.Vec3
	RotationY float64
	// Offset is added to the current room coordinate on traversal
	Offset room.Coordinate
}

// Defaults are the four exits around the installation
func Defaults() []Spec {
	h := parameter.PortalHeight
	return []Spec{
		{Name: "WEST", Position: vmath.V3(2, h, 8), RotationY: 90, Offset: room.New(1, 0, 0)},
		{Name: "EAST", Position: vmath.V3(14, h, 8), RotationY: 90, Offset: room.New(-1, 0, 0)},
		{Name: "SOUTH", Position: vmath.V3(8, h, 2), Offset: room.New(0, 0, 1)},
		{Name: "NORTH", Position: vmath.V3(8, h, 14), Offset: room.New(0, 0, -1)},
	}
}

// Navigator is the room state the portals drive
type Navigator interface {
	TransitionTo(ctx context.Context, coord room.Coordinate) error
	Current() (room.Coordinate, bool)
}

// Controller owns portal entities and handles their clicks
type Controller struct {
	ctx   context.Context
	world *engine.World
	host  host.Host
	nav   Navigator

	// Store holds animation state for every portal entity
	Store *engine.Store[component.PortalComponent]

	byName map[string]core.Entity
	order  []core.Entity
}

// NewController creates an empty controller, ctx bounds transitions started by clicks
func NewController(ctx context.Context, world *engine.World, h host.Host, nav Navigator) *Controller {
	c := &Controller{
		ctx:    ctx,
		world:  world,
		host:   h,
		nav:    nav,
		Store:  engine.NewStore[component.PortalComponent](),
		byName: make(map[string]core.Entity),
	}
	world.RegisterStore(c.Store)
	return c
}

// CreateDefaults places the four standard portals
func (c *Controller) CreateDefaults() {
	for _, s := range Defaults() {
		c.Create(s)
	}
}

// Create places a portal with its three frame bars and registers its click handler
func (c *Controller) Create(s Spec) core.Entity {
	portal := c.world.CreateEntity()
	t := component.At(s.Position)
	t.Rotation = vmath.EulerDeg(0, s.RotationY, 0)
	c.host.SetTransform(portal, t)
	c.host.SetMesh(portal, ColliderMesh)

	offset := s.Offset
	c.host.OnClick(portal, s.Name, parameter.PortalMaxDistance, func() {
		if err := c.Traverse(offset); err != nil {
			log.Printf("portal %s: %v", s.Name, err)
		}
	})

	comp := component.PortalComponent{
		Name:      s.Name,
		Direction: vmath.V3(float64(offset.X), float64(offset.Y), float64(offset.Z)),
		Left:      c.createBar(portal, vmath.V3(0.5, 0, 1)),
		Right:     c.createBar(portal, vmath.V3(0.5, 0, 1)),
		Top:       c.createBar(portal, vmath.V3(1, 0, 1)),
	}
	c.Store.Set(portal, comp)

	c.byName[s.Name] = portal
	c.order = append(c.order, portal)
	return portal
}

func (c *Controller) createBar(parent core.Entity, scale vmath.Vec3) core.Entity {
	bar := c.world.CreateEntity()
	t := component.NewTransform()
	t.Scale = scale
	c.host.SetTransform(bar, t)
	c.host.SetParent(bar, parent)
	return bar
}

// Traverse moves to the neighbor room at offset and mirrors the viewer to the opposite side
func (c *Controller) Traverse(offset room.Coordinate) error {
	cur, ok := c.nav.Current()
	if !ok {
		cur = room.Origin
	}
	target := cur.Add(offset.X, offset.Y, offset.Z)
	if err := c.nav.TransitionTo(c.ctx, target); err != nil {
		return fmt.Errorf("transition to %s: %w", target, err)
	}
	c.host.Teleport(MirrorPosition(c.host.Position()))
	return nil
}

// MirrorPosition reflects p through the room center on x and z, height is kept
func MirrorPosition(p vmath.Vec3) vmath.Vec3 {
	mid := parameter.PortalMirrorMidpoint
	return vmath.V3(2*mid-p[0], p[1], 2*mid-p[2])
}

// Portals returns portal entities in creation order
func (c *Controller) Portals() []core.Entity {
	return append([]core.Entity(nil), c.order...)
}

// ByName returns the portal labeled name
func (c *Controller) ByName(name string) (core.Entity, bool) {
	e, ok := c.byName[name]
	return e, ok
}

// Nearest returns the portal closest to the viewer and its distance
func (c *Controller) Nearest() (core.Entity, float64, bool) {
	player := c.host.Position()
	best, bestDist := core.Entity(0), math.Inf(1)
	for _, e := range c.order {
		if d := vmath.Distance(player, c.host.WorldPosition(e)); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, bestDist, len(c.order) > 0
}
