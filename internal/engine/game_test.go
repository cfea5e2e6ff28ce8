package engine

import (
	"math/rand"
	"os"
	"testing"

	"vortex-server/internal/domain"
	"vortex-server/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	os.Exit(m.Run())
}

// newTestGame собирает сессию на открытой карте, без генератора:
// сценарии должны быть воспроизводимы с точностью до клетки.
func newTestGame(width, height int) *Game {
	m := domain.NewMap(width, height)
	for i := range m.Tiles {
		m.Tiles[i] = domain.TileFloor
	}
	w := domain.NewWorld(m, rand.New(rand.NewSource(1)))
	return &Game{World: w}
}

func placePlayer(g *Game, x, y int) domain.EntityID {
	w := g.World
	id := w.Spawn()
	w.Positions[id] = &domain.Position{X: x, Y: y}
	w.Names[id] = &domain.Name{Name: "Герой"}
	w.Views[id] = &domain.FieldOfView{Radius: 8}
	w.Stats[id] = &domain.CombatStats{MaxHP: 30, HP: 30, Defense: 2, Power: 5}
	w.Blockers[id] = &domain.BlocksTile{}
	w.Player = id
	w.PlayerPos = domain.Position{X: x, Y: y}
	return id
}

func placeMonster(g *Game, x, y int) domain.EntityID {
	w := g.World
	id := w.Spawn()
	w.Positions[id] = &domain.Position{X: x, Y: y}
	w.Names[id] = &domain.Name{Name: "Гоблин"}
	w.Views[id] = &domain.FieldOfView{Radius: 8}
	w.Monsters[id] = &domain.Monster{}
	w.Stats[id] = &domain.CombatStats{MaxHP: 16, HP: 16, Defense: 1, Power: 4}
	w.Blockers[id] = &domain.BlocksTile{}
	return id
}

// warmup прогоняет PreRun, чтобы машина встала в AwaitingInput
func warmup(t *testing.T, g *Game) {
	t.Helper()
	res := g.Tick(Action{})
	if res.State != domain.StateAwaitingInput {
		t.Fatalf("after PreRun the machine must await input, got %v", res.State)
	}
}

func TestStateMachine_FullCycle(t *testing.T) {
	g := newTestGame(20, 20)
	placePlayer(g, 5, 5)
	warmup(t, g)

	// Пустое действие не тратит ход
	if res := g.Tick(Action{}); res.State != domain.StateAwaitingInput {
		t.Fatalf("no action must keep AwaitingInput, got %v", res.State)
	}

	res := g.Tick(Action{Type: ActionMove, Dx: 1, Dy: 0})
	if res.State != domain.StatePlayerTurn {
		t.Fatalf("a spent move must enter PlayerTurn, got %v", res.State)
	}
	res = g.Tick(Action{})
	if res.State != domain.StateMonsterTurn {
		t.Fatalf("PlayerTurn must hand over to MonsterTurn, got %v", res.State)
	}
	res = g.Tick(Action{})
	if res.State != domain.StateAwaitingInput {
		t.Fatalf("MonsterTurn must return to AwaitingInput, got %v", res.State)
	}
}

func TestMoveIntoEmptyTile(t *testing.T) {
	g := newTestGame(20, 20)
	placePlayer(g, 5, 5)
	warmup(t, g)

	res := g.Tick(Action{Type: ActionMove, Dx: 1, Dy: 0})

	if res.State != domain.StatePlayerTurn {
		t.Errorf("move must consume the turn, got %v", res.State)
	}
	pos := g.World.Positions[g.World.Player]
	if pos.X != 6 || pos.Y != 5 {
		t.Errorf("player must stand at (6,5), got (%d,%d)", pos.X, pos.Y)
	}
	if _, ok := g.World.MeleeIntents[g.World.Player]; ok {
		t.Error("a plain move must not raise a melee intent")
	}
}

func TestBumpAttack(t *testing.T) {
	g := newTestGame(20, 20)
	placePlayer(g, 5, 5)
	monster := placeMonster(g, 6, 5)
	warmup(t, g)

	// Прогрев только греет видимость и индекс: сосед еще не бил
	if got := g.World.Stats[g.World.Player].HP; got != 30 {
		t.Fatalf("monster must not act during the warmup, player HP = %d", got)
	}

	res := g.Tick(Action{Type: ActionMove, Dx: 1, Dy: 0})
	if res.State != domain.StatePlayerTurn {
		t.Fatalf("bump must consume the turn, got %v", res.State)
	}

	pos := g.World.Positions[g.World.Player]
	if pos.X != 5 || pos.Y != 5 {
		t.Errorf("bump must not move the player, got (%d,%d)", pos.X, pos.Y)
	}
	intent, ok := g.World.MeleeIntents[g.World.Player]
	if !ok || intent.Target != monster {
		t.Fatal("bump must raise a melee intent against the occupant")
	}

	// Конвейер хода игрока: удар 5-1=4, монстр в чужой фазе молчит
	g.Tick(Action{})
	if got := g.World.Stats[monster].HP; got != 12 {
		t.Errorf("monster HP after the player pass: got %d, want 12", got)
	}
	if got := g.World.Stats[g.World.Player].HP; got != 30 {
		t.Errorf("player HP after the player pass: got %d, want 30", got)
	}
	if _, ok := g.World.MeleeIntents[g.World.Player]; ok {
		t.Error("the intent must be consumed by the pass")
	}

	// Фаза монстров: ответ на 4-2=2
	g.Tick(Action{})
	if got := g.World.Stats[g.World.Player].HP; got != 28 {
		t.Errorf("player HP after the counter-attack: got %d, want 28", got)
	}

	combatLogged := false
	for _, e := range g.World.Log.Entries {
		if e.Type == domain.LogCombat {
			combatLogged = true
		}
	}
	if !combatLogged {
		t.Error("the exchange must leave combat log entries")
	}
}

func TestMoveIntoWall(t *testing.T) {
	g := newTestGame(20, 20)
	placePlayer(g, 5, 5)
	g.World.Map.Tiles[g.World.Map.Idx(6, 5)] = domain.TileWall
	warmup(t, g)

	res := g.Tick(Action{Type: ActionMove, Dx: 1, Dy: 0})

	if res.State != domain.StateAwaitingInput {
		t.Errorf("a blocked move must not consume the turn, got %v", res.State)
	}
	pos := g.World.Positions[g.World.Player]
	if pos.X != 5 || pos.Y != 5 {
		t.Errorf("player must stay at (5,5), got (%d,%d)", pos.X, pos.Y)
	}
}

func TestMoveOffTheEdge(t *testing.T) {
	g := newTestGame(20, 20)
	placePlayer(g, 0, 0)
	warmup(t, g)

	res := g.Tick(Action{Type: ActionMove, Dx: -1, Dy: 0})
	if res.State != domain.StateAwaitingInput {
		t.Errorf("stepping off the map must be silently ignored, got %v", res.State)
	}
}

func TestWaitConsumesTurn(t *testing.T) {
	g := newTestGame(20, 20)
	placePlayer(g, 5, 5)
	warmup(t, g)

	res := g.Tick(Action{Type: ActionWait})
	if res.State != domain.StatePlayerTurn {
		t.Errorf("wait must consume the turn, got %v", res.State)
	}
}

func TestMonsterAttacksOncePerPlayerAction(t *testing.T) {
	g := newTestGame(20, 20)
	placePlayer(g, 5, 5)
	placeMonster(g, 6, 5)
	warmup(t, g)

	if got := g.World.Stats[g.World.Player].HP; got != 30 {
		t.Fatalf("no attack may land before the first input, player HP = %d", got)
	}

	// Одно действие игрока - ровно один удар соседа (4-2=2)
	g.Advance(Action{Type: ActionWait})
	if got := g.World.Stats[g.World.Player].HP; got != 28 {
		t.Fatalf("one player action must cost exactly one monster attack: HP %d, want 28", got)
	}

	g.Advance(Action{Type: ActionWait})
	if got := g.World.Stats[g.World.Player].HP; got != 26 {
		t.Fatalf("second action, second attack: HP %d, want 26", got)
	}
}

func TestPlayerDeath_RaisedExactlyOnce(t *testing.T) {
	g := newTestGame(20, 20)
	player := placePlayer(g, 5, 5)
	placeMonster(g, 6, 5)
	warmup(t, g)
	g.World.Stats[player].HP = 1 // следующий удар смертелен

	deaths := 0
	res := g.Tick(Action{Type: ActionWait})
	for g.World.RunState != domain.StateAwaitingInput {
		if res.PlayerDied {
			deaths++
		}
		res = g.Tick(Action{})
	}
	if res.PlayerDied {
		deaths++
	}

	if deaths != 1 {
		t.Errorf("player death must be reported exactly once, got %d", deaths)
	}
	if !g.GameOver {
		t.Error("GameOver must be latched")
	}
	if !g.World.Contains(player) {
		t.Error("the dead player entity must stay in the world")
	}

	// Мертвые не ходят: ввод больше не тратит ход
	after := g.Tick(Action{Type: ActionMove, Dx: 1, Dy: 0})
	if after.State != domain.StateAwaitingInput {
		t.Errorf("input after death must be ignored, got %v", after.State)
	}
}

func TestAdvance_RunsUntilInputIsNeeded(t *testing.T) {
	g := newTestGame(20, 20)
	placePlayer(g, 5, 5)
	warmup(t, g)

	res := g.Advance(Action{Type: ActionMove, Dx: 0, Dy: 1})
	if res.State != domain.StateAwaitingInput {
		t.Errorf("Advance must settle back on AwaitingInput, got %v", res.State)
	}
	pos := g.World.Positions[g.World.Player]
	if pos.X != 5 || pos.Y != 6 {
		t.Errorf("player must stand at (5,6), got (%d,%d)", pos.X, pos.Y)
	}
}

func TestNewGame_IsDeterministicPerSeed(t *testing.T) {
	cfg := DefaultConfig()
	a := NewGame(cfg, 42)
	b := NewGame(cfg, 42)

	if len(a.World.Map.Rooms) != len(b.World.Map.Rooms) {
		t.Fatal("same seed must produce the same room count")
	}
	for i := range a.World.Map.Tiles {
		if a.World.Map.Tiles[i] != b.World.Map.Tiles[i] {
			t.Fatal("same seed must produce identical maps")
		}
	}
	if len(a.World.Entities()) != len(b.World.Entities()) {
		t.Fatal("same seed must produce the same population")
	}
}
