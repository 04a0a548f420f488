package systems

import (
	"testing"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/game"
)

func TestPlayerSystemMovement(t *testing.T) {
	cfg := newTestWorld(t).cfg
	limit := cfg.World.HalfWidth - cfg.Player.HalfWidth

	tests := []struct {
		name  string
		input Input
		dt    float64
		wantX float64
	}{
		{"向左", Input{Left: true}, 0.5, -2.5},
		{"向右", Input{Right: true}, 0.5, 2.5},
		{"同时按下优先向左", Input{Left: true, Right: true}, 0.2, -1},
		{"无输入", Input{}, 1, 0},
		{"左边界", Input{Left: true}, 10, -limit},
		{"右边界", Input{Right: true}, 10, limit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.input.in = tt.input
			w.player.Update(tt.dt)

			if got := w.position(w.playerID).X; got != tt.wantX {
				t.Errorf("player x = %v, want %v", got, tt.wantX)
			}
		})
	}
}

// TestPlayerSystemSingleLaser 同一时间只有一发激光
func TestPlayerSystemSingleLaser(t *testing.T) {
	w := newTestWorld(t)
	w.input.in = Input{Fire: true}

	w.player.Update(1.0 / 60)
	w.player.Update(1.0 / 60)

	lasers := w.projectiles(components.ProjectileLaser)
	if len(lasers) != 1 {
		t.Fatalf("lasers = %d, want 1", len(lasers))
	}
	player, _ := ecs.GetComponent[*components.PlayerComponent](w.em, w.playerID)
	if !player.LaserActive || player.Laser != components.EntityRef(lasers[0]) {
		t.Errorf("player laser state = %+v", player)
	}

	// 激光消失后可以再次射击
	destroyProjectile(w.em, w.events, lasers[0])
	w.round.Update(0)
	if player.LaserActive {
		t.Fatal("LaserDestroyed should re-enable shooting")
	}
	w.em.RemoveMarkedEntities()
	w.player.Update(1.0 / 60)
	if n := len(w.projectiles(components.ProjectileLaser)); n != 1 {
		t.Errorf("lasers after refire = %d, want 1", n)
	}
	if got := w.sounds.played; len(got) == 0 || got[0] != game.SoundLaser {
		t.Errorf("sounds = %v, want laser first", got)
	}
}

func TestPlayerSystemDeadPlayerIgnoresInput(t *testing.T) {
	w := newTestWorld(t)
	killPlayer(w.em, w.playerID)
	w.input.in = Input{Right: true, Fire: true}

	w.player.Update(1)

	if x := w.position(w.playerID).X; x != 0 {
		t.Errorf("dead player moved to %v", x)
	}
	if n := len(w.projectiles(components.ProjectileLaser)); n != 0 {
		t.Errorf("dead player fired %d lasers", n)
	}
}
