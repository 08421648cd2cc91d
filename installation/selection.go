package installation

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/swarm-installation/component"
	"github.com/lixenwraith/swarm-installation/motion"
	"github.com/lixenwraith/swarm-installation/palette"
	"github.com/lixenwraith/swarm-installation/shape"
	"github.com/lixenwraith/swarm-installation/vmath"
)

// Selection is what a room identity picks from the registered candidates
type Selection struct {
	ID       string       `json:"id"`
	Shape    shape.Kind   `json:"shape"`
	Motion   motion.Kind  `json:"motion"`
	Color    palette.Kind `json:"color"`
	Ambience string       `json:"ambience"`
}

func (s Selection) String() string {
	return fmt.Sprintf("shape=%s motion=%s color=%s ambience=%s", s.Shape, s.Motion, s.Color, s.Ambience)
}

// Select resolves every candidate list for roomID
// A list that was never registered fails the whole selection
func (inst *Installation) Select(roomID string) (Selection, error) {
	inst.mu.Lock()
	shapes, motions, colors, clips := inst.shapes, inst.motions, inst.colors, inst.clips
	inst.mu.Unlock()

	w := inst.cfg.Windows
	sel := Selection{ID: roomID}

	si, err := w.Shape.Select(roomID, len(shapes))
	if err != nil {
		return Selection{}, fmt.Errorf("select shape: %w", err)
	}
	mi, err := w.Motion.Select(roomID, len(motions))
	if err != nil {
		return Selection{}, fmt.Errorf("select motion: %w", err)
	}
	ci, err := w.Color.Select(roomID, len(colors))
	if err != nil {
		return Selection{}, fmt.Errorf("select color: %w", err)
	}
	ai, err := w.Ambience.Select(roomID, len(clips))
	if err != nil {
		return Selection{}, fmt.Errorf("select ambience: %w", err)
	}

	sel.Shape, sel.Motion, sel.Color, sel.Ambience = shapes[si], motions[mi], colors[ci], clips[ai]
	return sel, nil
}

// Snapshot is the visible swarm state of a room, enough to put it back exactly
type Snapshot struct {
	RoomID      string                         `json:"room_id"`
	Locals      []component.TransformComponent `json:"locals"`
	Materials   []component.MaterialComponent  `json:"materials"`
	ParentScale float64                        `json:"parent_scale"`
}

// ErrSnapshotMismatch is returned when restoring a snapshot taken from a different pool size
var ErrSnapshotMismatch = errors.New("installation: snapshot does not match pool")

// Snapshot captures local transforms and materials of every slot
func (inst *Installation) Snapshot(roomID string) Snapshot {
	s := Snapshot{
		RoomID: roomID,
		Locals: make([]component.TransformComponent, len(inst.entities)),
	}
	for i := range inst.entities {
		s.Locals[i] = inst.Local(i)
	}

	inst.mu.Lock()
	s.Materials = append([]component.MaterialComponent(nil), inst.materials...)
	s.ParentScale = inst.parentScale
	inst.mu.Unlock()
	return s
}

// Restore re-applies a snapshot in place of UpdateShape
// Deviation is reset, materials are pushed to the host
func (inst *Installation) Restore(s Snapshot) error {
	if len(s.Locals) != len(inst.entities) || len(s.Materials) != len(inst.entities) {
		return fmt.Errorf("%w: %d slots, snapshot has %d", ErrSnapshotMismatch, len(inst.entities), len(s.Locals))
	}
	for i, e := range inst.entities {
		t := s.Locals[i]
		inst.Swarm.Update(e, func(sc *component.SwarmComponent) {
			sc.Local = t
			sc.Deviation = vmath.Vec3{}
		})
		inst.host.SetMesh(e, shape.Mesh)
		inst.SetMaterial(i, s.Materials[i])
	}

	scale := s.ParentScale
	if scale <= 0 {
		scale = 1
	}
	inst.setParentScale(scale)
	return nil
}
