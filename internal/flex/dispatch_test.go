package flex

import (
	"testing"

	"panegrid/internal/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerLog struct {
	drags  []DragEvent
	clicks []ClickEvent
}

func sceneWithRegion(log *handlerLog) *Scene {
	s := NewScene(geometry.NewRect(0, 0, 20, 10))
	s.PushMouseRegion(MouseRegion{
		ID:     RegionID{Kind: "test", Index: 1},
		Bounds: geometry.NewRect(5, 0, 4, 10),
		OnDrag: func(ev DragEvent, cx *EventContext) {
			log.drags = append(log.drags, ev)
			cx.Notify()
		},
		OnClick: func(ev ClickEvent, _ *EventContext) {
			log.clicks = append(log.clicks, ev)
		},
	})
	return s
}

func TestDispatcher_DragLifecycle(t *testing.T) {
	log := &handlerLog{}
	d := NewDispatcher()
	d.SetScene(sceneWithRegion(log))
	assert.Equal(t, "idle", d.State())

	require.True(t, d.Dispatch(MouseEvent{Action: MousePress, Position: geometry.Vec(6, 2)}))
	assert.Equal(t, "armed", d.State())
	id, active := d.Active()
	assert.True(t, active)
	assert.Equal(t, RegionID{Kind: "test", Index: 1}, id)

	require.True(t, d.Dispatch(MouseEvent{Action: MouseMotion, Position: geometry.Vec(12, 2)}))
	assert.True(t, d.Dragging())
	require.True(t, d.Dispatch(MouseEvent{Action: MouseMotion, Position: geometry.Vec(14, 3)}))
	require.Len(t, log.drags, 2)
	assert.Equal(t, geometry.Vec(6, 2), log.drags[1].Start)
	assert.Equal(t, geometry.Vec(14, 3), log.drags[1].Position)
	assert.True(t, d.TakeNotified())
	assert.False(t, d.TakeNotified())

	require.True(t, d.Dispatch(MouseEvent{Action: MouseRelease, Position: geometry.Vec(14, 3)}))
	assert.Equal(t, "idle", d.State())
	assert.Empty(t, log.clicks, "a drag is not a click")

	assert.False(t, d.Dispatch(MouseEvent{Action: MouseMotion, Position: geometry.Vec(15, 3)}))
	assert.Len(t, log.drags, 2)
}

func TestDispatcher_Click(t *testing.T) {
	log := &handlerLog{}
	d := NewDispatcher()
	d.SetScene(sceneWithRegion(log))

	d.Dispatch(MouseEvent{Action: MousePress, Position: geometry.Vec(6, 2)})
	d.Dispatch(MouseEvent{Action: MouseRelease, Position: geometry.Vec(6, 2)})

	require.Len(t, log.clicks, 1)
	assert.Empty(t, log.drags)
}

func TestDispatcher_PressOutsideRegions(t *testing.T) {
	d := NewDispatcher()
	d.SetScene(sceneWithRegion(&handlerLog{}))

	assert.False(t, d.Dispatch(MouseEvent{Action: MousePress, Position: geometry.Vec(15, 2)}))
	assert.Equal(t, "idle", d.State())
}

func TestDispatcher_RegionVanishesMidDrag(t *testing.T) {
	log := &handlerLog{}
	d := NewDispatcher()
	d.SetScene(sceneWithRegion(log))

	d.Dispatch(MouseEvent{Action: MousePress, Position: geometry.Vec(6, 2)})
	d.Dispatch(MouseEvent{Action: MouseMotion, Position: geometry.Vec(8, 2)})
	require.Len(t, log.drags, 1)

	// A structural edit repaints without the divider.
	d.SetScene(NewScene(geometry.NewRect(0, 0, 20, 10)))
	assert.False(t, d.Dispatch(MouseEvent{Action: MouseMotion, Position: geometry.Vec(9, 2)}))
	assert.Equal(t, "idle", d.State())
	assert.Len(t, log.drags, 1)
}

func TestDispatcher_CancelAbandonsGesture(t *testing.T) {
	log := &handlerLog{}
	d := NewDispatcher()
	d.SetScene(sceneWithRegion(log))

	d.Dispatch(MouseEvent{Action: MousePress, Position: geometry.Vec(6, 2)})
	d.Cancel()

	assert.False(t, d.Dispatch(MouseEvent{Action: MouseRelease, Position: geometry.Vec(6, 2)}))
	assert.Empty(t, log.clicks)
}

func TestDispatcher_NoScene(t *testing.T) {
	d := NewDispatcher()

	assert.False(t, d.Dispatch(MouseEvent{Action: MousePress}))
	assert.Equal(t, CursorArrow, d.CursorAt(geometry.Vec(1, 1)))
}
