package systems

import (
	"testing"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/game"
)

func TestMysteryShipSystemAlternatesSides(t *testing.T) {
	w := newTestWorld(t)
	ship, _ := ecs.GetComponent[*components.MysteryShipComponent](w.em, w.shipID)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](w.em, w.shipID)
	pos := w.position(w.shipID)
	cycle := w.cfg.MysteryShip.CycleTime
	crossing := (ship.RightX-ship.LeftX)/w.cfg.MysteryShip.Speed + 0.1

	w.mystery.Update(cycle - 0.1)
	if ship.Spawned {
		t.Fatal("ship spawned before cycle time")
	}

	// 第一次：从左向右
	w.mystery.Update(0.2)
	if !ship.Spawned || ship.Direction != 1 || pos.X != ship.LeftX || sprite.Hidden {
		t.Fatalf("first pass: spawned=%v dir=%v x=%v hidden=%v", ship.Spawned, ship.Direction, pos.X, sprite.Hidden)
	}
	if events := w.events.Drain(); !hasEvent(events, game.EventMysteryShipSpawned) {
		t.Errorf("events = %v, want MysteryShipSpawned", eventKinds(events))
	}

	w.mystery.Update(1)
	if pos.X != ship.LeftX+w.cfg.MysteryShip.Speed {
		t.Errorf("x = %v after 1s", pos.X)
	}

	w.mystery.Update(crossing)
	if ship.Spawned || !sprite.Hidden || pos.X != ship.RightX {
		t.Fatalf("after crossing: spawned=%v hidden=%v x=%v", ship.Spawned, sprite.Hidden, pos.X)
	}

	// 第二次：从右向左
	w.mystery.Update(cycle)
	if !ship.Spawned || ship.Direction != -1 || pos.X != ship.RightX {
		t.Errorf("second pass: spawned=%v dir=%v x=%v", ship.Spawned, ship.Direction, pos.X)
	}
}

func TestMysteryShipSystemReset(t *testing.T) {
	w := newTestWorld(t)
	ship, _ := ecs.GetComponent[*components.MysteryShipComponent](w.em, w.shipID)
	w.mystery.Update(w.cfg.MysteryShip.CycleTime)
	w.mystery.Update(1)

	w.mystery.Reset()

	col, _ := ecs.GetComponent[*components.CollisionComponent](w.em, w.shipID)
	timer, _ := ecs.GetComponent[*components.TimerComponent](w.em, w.shipID)
	if ship.Spawned || ship.Direction != -1 || !col.Disabled {
		t.Errorf("after reset: spawned=%v dir=%v disabled=%v", ship.Spawned, ship.Direction, col.Disabled)
	}
	if w.position(w.shipID).X != ship.LeftX {
		t.Errorf("x = %v, want left hide point", w.position(w.shipID).X)
	}
	if timer.CurrentTime != 0 || timer.IsReady {
		t.Errorf("timer not restarted: %+v", timer)
	}
}
