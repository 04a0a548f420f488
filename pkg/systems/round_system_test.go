package systems

import (
	"testing"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/terrain"
)

func TestRoundSystemScoring(t *testing.T) {
	tests := []struct {
		name      string
		events    []game.Event
		wantScore int
		wantSound []game.Sound
	}{
		{
			name:      "击毁入侵者",
			events:    []game.Event{{Kind: game.EventInvaderKilled, Score: 30}},
			wantScore: 30,
			wantSound: []game.Sound{game.SoundInvaderKilled},
		},
		{
			name: "击毁神秘飞船",
			events: []game.Event{
				{Kind: game.EventInvaderKilled, Score: 10},
				{Kind: game.EventMysteryShipKilled, Score: 300},
			},
			wantScore: 310,
			wantSound: []game.Sound{game.SoundInvaderKilled, game.SoundInvaderKilled},
		},
		{
			name:      "掩体侵蚀不加分",
			events:    []game.Event{{Kind: game.EventBunkerEroded}},
			wantScore: 0,
			wantSound: []game.Sound{game.SoundSplat},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			for _, e := range tt.events {
				w.events.Push(e)
			}

			w.round.Update(0)

			if w.gs.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", w.gs.Score, tt.wantScore)
			}
			if len(w.sounds.played) != len(tt.wantSound) {
				t.Fatalf("sounds = %v, want %v", w.sounds.played, tt.wantSound)
			}
			for i, s := range tt.wantSound {
				if w.sounds.played[i] != s {
					t.Errorf("sound[%d] = %v, want %v", i, w.sounds.played[i], s)
				}
			}
			if w.events.Len() != 0 {
				t.Error("events should be drained")
			}
		})
	}
}

func TestRoundSystemRespawn(t *testing.T) {
	w := newTestWorld(t)
	pos := w.position(w.playerID)
	pos.X = 5
	killPlayer(w.em, w.playerID)
	w.events.Push(game.Event{Kind: game.EventPlayerKilled, Entity: w.playerID})

	w.round.Update(0)
	if w.gs.Lives != w.cfg.Game.Lives-1 {
		t.Errorf("lives = %d, want %d", w.gs.Lives, w.cfg.Game.Lives-1)
	}

	player, _ := ecs.GetComponent[*components.PlayerComponent](w.em, w.playerID)
	w.round.Update(w.cfg.Game.RespawnDelay / 2)
	if player.Alive {
		t.Fatal("player respawned before the delay")
	}

	w.round.Update(w.cfg.Game.RespawnDelay/2 + 0.01)
	if !player.Alive {
		t.Fatal("player should respawn after the delay")
	}
	col, _ := ecs.GetComponent[*components.CollisionComponent](w.em, w.playerID)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](w.em, w.playerID)
	if col.Disabled || sprite.Hidden {
		t.Error("respawned player should be visible and collidable")
	}
	if pos.X != player.SpawnX || pos.Y != w.cfg.Player.Y {
		t.Errorf("respawn position = (%v,%v)", pos.X, pos.Y)
	}
}

func TestRoundSystemGameOver(t *testing.T) {
	tests := []struct {
		name  string
		setup func(w *testWorld)
	}{
		{
			name: "生命耗尽",
			setup: func(w *testWorld) {
				w.gs.Lives = 1
				killPlayer(w.em, w.playerID)
				w.events.Push(game.Event{Kind: game.EventPlayerKilled, Entity: w.playerID})
			},
		},
		{
			name: "入侵者抵达底线",
			setup: func(w *testWorld) {
				w.events.Push(game.Event{Kind: game.EventInvadersLanded})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.gs.AddScore(120)
			tt.setup(w)

			w.round.Update(0)

			if !w.gs.GameOver {
				t.Fatal("game should be over")
			}
			if !w.formation.Formation().Halted {
				t.Error("formation should halt")
			}
			player, _ := ecs.GetComponent[*components.PlayerComponent](w.em, w.playerID)
			if player.Alive {
				t.Error("player should be removed at game over")
			}
			if len(w.scores.submitted) != 1 || w.scores.submitted[0] != 120 {
				t.Errorf("submitted = %v, want [120]", w.scores.submitted)
			}

			// 游戏结束后不再重生
			w.round.Update(w.cfg.Game.RespawnDelay * 2)
			if player.Alive {
				t.Error("player respawned after game over")
			}
		})
	}
}

func TestRoundSystemNewGame(t *testing.T) {
	w := newTestWorld(t)
	hit := terrain.Vec2{X: 3.5, Y: -9}
	newTestEroder(t, 7).Splat(w.bunker(2).Surface, hit)
	w.bunker(0).Surface.Deactivate()
	killInvader(w.em, w.member(3))
	missile, _ := entities.NewMissile(w.em, fakeLoader{}, w.cfg, 0, 0)

	w.gs.AddScore(500)
	w.events.Push(game.Event{Kind: game.EventInvadersLanded})
	w.round.Update(0)
	if !w.gs.GameOver {
		t.Fatal("setup: game should be over")
	}

	// 游戏结束前按开始键无效
	w.round.Update(0)
	if !w.gs.GameOver {
		t.Fatal("game restarted without input")
	}

	w.input.in = Input{Start: true}
	w.round.Update(0)

	if w.gs.GameOver || w.gs.Score != 0 || w.gs.Lives != w.cfg.Game.Lives {
		t.Errorf("state not reset: %+v", w.gs)
	}
	if w.gs.HighScore != 500 {
		t.Errorf("high score = %d, want kept 500", w.gs.HighScore)
	}
	if !w.bunker(2).Surface.IsOccupied(hit) {
		t.Error("eroded bunker should be restored")
	}
	if !w.bunker(0).Surface.IsActive() {
		t.Error("overrun bunker should be reactivated")
	}
	if !w.em.IsMarkedForDestroy(missile) {
		t.Error("projectiles should be cleared")
	}
	f := w.formation.Formation()
	if f.Halted || f.Killed != 0 {
		t.Errorf("formation not reset: halted=%v killed=%d", f.Halted, f.Killed)
	}
	player, _ := ecs.GetComponent[*components.PlayerComponent](w.em, w.playerID)
	if !player.Alive || player.LaserActive {
		t.Errorf("player not reset: %+v", player)
	}
}

func TestRoundSystemStartIgnoredWhilePlaying(t *testing.T) {
	w := newTestWorld(t)
	w.gs.AddScore(40)
	w.input.in = Input{Start: true}

	w.round.Update(0)

	if w.gs.Score != 40 {
		t.Errorf("score = %d, Start must not restart a running game", w.gs.Score)
	}
}

func TestRoundSystemFormationCleared(t *testing.T) {
	w := newTestWorld(t)
	w.events.Push(game.Event{Kind: game.EventFormationCleared})

	w.round.Update(0)

	if w.gs.Round != 1 {
		t.Errorf("round = %d, want 1", w.gs.Round)
	}
}

func TestRoundSystemFormationClearedResetsBunkers(t *testing.T) {
	w := newTestWorld(t)
	fresh := make([]uint64, len(w.bunkers))
	for i := range w.bunkers {
		fresh[i] = w.bunker(i).Surface.Buffer().Hash()
	}

	hit := terrain.Vec2{X: 3.5, Y: -9}
	if !newTestEroder(t, 7).Splat(w.bunker(2).Surface, hit) {
		t.Fatal("setup: splat should erode bunker 2")
	}
	w.bunker(0).Surface.Deactivate()
	col, _ := ecs.GetComponent[*components.CollisionComponent](w.em, w.bunkers[0])
	col.Disabled = true

	w.events.Push(game.Event{Kind: game.EventFormationCleared})
	w.round.Update(0)

	for i, id := range w.bunkers {
		s := w.bunker(i).Surface
		if got := s.Buffer().Hash(); got != fresh[i] {
			t.Errorf("bunker %d hash = %016x, want fresh %016x", i, got, fresh[i])
		}
		if !s.IsActive() {
			t.Errorf("bunker %d should be active in the new round", i)
		}
		c, _ := ecs.GetComponent[*components.CollisionComponent](w.em, id)
		if c.Disabled {
			t.Errorf("bunker %d collision still disabled", i)
		}
	}
	if !w.bunker(2).Surface.IsOccupied(hit) {
		t.Error("eroded texel should be restored")
	}
}

func TestRoundSystemLaserDestroyedOtherEntity(t *testing.T) {
	w := newTestWorld(t)
	player, _ := ecs.GetComponent[*components.PlayerComponent](w.em, w.playerID)
	player.LaserActive = true
	player.Laser = 42

	w.events.Push(game.Event{Kind: game.EventLaserDestroyed, Entity: 41})
	w.round.Update(0)

	if !player.LaserActive {
		t.Error("a stale LaserDestroyed event must not re-enable shooting")
	}
}
