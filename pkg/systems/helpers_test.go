package systems

import (
	"fmt"
	"testing"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/terrain"
	"github.com/hajimehoshi/ebiten/v2"
)

// fakeLoader 内存资源加载器，掩体模板为全不透明的 22x16
type fakeLoader struct{}

func (fakeLoader) LoadImage(path string) (*ebiten.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("empty path")
	}
	return ebiten.NewImage(2, 2), nil
}

func (fakeLoader) LoadPixelBuffer(path string, width, height int) (*terrain.PixelBuffer, error) {
	if width == 0 || height == 0 {
		width, height = 22, 16
	}
	buf := terrain.NewPixelBuffer(width, height)
	for i := range buf.Pix {
		buf.Pix[i] = terrain.Texel{G: 1, A: 1}
	}
	return buf, nil
}

type fakeInput struct {
	in Input
}

func (f *fakeInput) Read() Input { return f.in }

type fakeSounds struct {
	played []game.Sound
}

func (f *fakeSounds) Play(s game.Sound) { f.played = append(f.played, s) }

type fakeScores struct {
	submitted []int
}

func (f *fakeScores) Submit(score, round int) (bool, error) {
	f.submitted = append(f.submitted, score)
	return true, nil
}

// testWorld 完整的游戏世界（不含渲染）
type testWorld struct {
	em          *ecs.EntityManager
	cfg         *config.GameConfig
	events      *game.EventQueue
	gs          *game.GameState
	input       *fakeInput
	sounds      *fakeSounds
	scores      *fakeScores
	playerID    ecs.EntityID
	formationID ecs.EntityID
	shipID      ecs.EntityID
	bunkers     []ecs.EntityID

	player    *PlayerSystem
	formation *FormationSystem
	missiles  *MissileSystem
	mystery   *MysteryShipSystem
	physics   *PhysicsSystem
	round     *RoundSystem
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	return newTestWorldWithConfig(t, config.DefaultGameConfig())
}

func newTestWorldWithConfig(t *testing.T, cfg *config.GameConfig) *testWorld {
	t.Helper()
	w := &testWorld{
		em:     ecs.NewEntityManager(),
		cfg:    cfg,
		events: game.NewEventQueue(),
		gs:     game.NewGameState(cfg.Game.Lives, 0),
		input:  &fakeInput{},
		sounds: &fakeSounds{},
		scores: &fakeScores{},
	}

	var err error
	if w.playerID, err = entities.NewPlayer(w.em, fakeLoader{}, cfg); err != nil {
		t.Fatalf("NewPlayer() error: %v", err)
	}
	if w.formationID, err = entities.NewInvaderFormation(w.em, fakeLoader{}, cfg); err != nil {
		t.Fatalf("NewInvaderFormation() error: %v", err)
	}
	if w.shipID, err = entities.NewMysteryShip(w.em, fakeLoader{}, cfg); err != nil {
		t.Fatalf("NewMysteryShip() error: %v", err)
	}
	if w.bunkers, err = entities.NewBunkers(w.em, fakeLoader{}, cfg); err != nil {
		t.Fatalf("NewBunkers() error: %v", err)
	}

	w.player = NewPlayerSystem(w.em, fakeLoader{}, cfg, w.events, w.input, w.playerID)
	w.formation = NewFormationSystem(w.em, cfg, w.events, w.formationID)
	w.missiles = NewMissileSystem(w.em, fakeLoader{}, cfg, w.formationID)
	w.mystery = NewMysteryShipSystem(w.em, cfg, w.events, w.shipID)
	w.physics = NewPhysicsSystem(w.em, newTestEroder(t, 7), w.events)
	w.round = NewRoundSystem(RoundSystemConfig{
		EntityManager: w.em,
		Config:        cfg,
		GameState:     w.gs,
		Events:        w.events,
		Input:         w.input,
		Sounds:        w.sounds,
		Scores:        w.scores,
		Formation:     w.formation,
		MysteryShip:   w.mystery,
		PlayerID:      w.playerID,
	})
	return w
}

// newTestEroder 边长为 size 的全透明溅射模板（撞击处完全挖空）
func newTestEroder(t *testing.T, size int) *terrain.Eroder {
	t.Helper()
	st, err := terrain.NewStencil(terrain.NewPixelBuffer(size, size))
	if err != nil {
		t.Fatalf("NewStencil() error: %v", err)
	}
	e, err := terrain.NewEroder(st)
	if err != nil {
		t.Fatalf("NewEroder() error: %v", err)
	}
	return e
}

func (w *testWorld) position(id ecs.EntityID) *components.PositionComponent {
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	return pos
}

func (w *testWorld) member(i int) ecs.EntityID {
	f, _ := ecs.GetComponent[*components.FormationComponent](w.em, w.formationID)
	return ecs.EntityID(f.Members[i])
}

func (w *testWorld) bunker(i int) *components.BunkerComponent {
	b, _ := ecs.GetComponent[*components.BunkerComponent](w.em, w.bunkers[i])
	return b
}

// projectiles 当前未被标记删除的投射物
func (w *testWorld) projectiles(kind components.ProjectileKind) []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](w.em) {
		p, _ := ecs.GetComponent[*components.ProjectileComponent](w.em, id)
		if p.Kind == kind && !w.em.IsMarkedForDestroy(id) {
			out = append(out, id)
		}
	}
	return out
}

func eventKinds(events []game.Event) []game.EventKind {
	kinds := make([]game.EventKind, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
	}
	return kinds
}

func hasEvent(events []game.Event, kind game.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
