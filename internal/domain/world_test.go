package domain

import (
	"math/rand"
	"testing"
)

func newTestWorld() *World {
	m := NewMap(10, 10)
	for i := range m.Tiles {
		m.Tiles[i] = TileFloor
	}
	return NewWorld(m, rand.New(rand.NewSource(1)))
}

func TestWorld_SpawnAndContains(t *testing.T) {
	w := newTestWorld()

	a := w.Spawn()
	b := w.Spawn()

	if !w.Contains(a) || !w.Contains(b) {
		t.Fatal("freshly spawned entities must be alive")
	}
	if a == b {
		t.Fatal("IDs must be unique")
	}
	if len(w.Entities()) != 2 {
		t.Fatalf("expected 2 live entities, got %d", len(w.Entities()))
	}
}

func TestWorld_DeferredDespawn(t *testing.T) {
	w := newTestWorld()

	a := w.Spawn()
	w.Positions[a] = &Position{X: 1, Y: 1}
	w.Stats[a] = &CombatStats{HP: 10}

	w.DeferDespawn(a)

	// До коммита сущность полностью жива
	if !w.Contains(a) {
		t.Fatal("entity must stay alive until Maintain")
	}
	if _, ok := w.Positions[a]; !ok {
		t.Fatal("components must survive until Maintain")
	}

	w.Maintain()

	if w.Contains(a) {
		t.Fatal("entity must be gone after Maintain")
	}
	if _, ok := w.Positions[a]; ok {
		t.Fatal("components must be removed with the entity")
	}
	if _, ok := w.Stats[a]; ok {
		t.Fatal("stats must be removed with the entity")
	}
	if len(w.Entities()) != 0 {
		t.Fatalf("iteration order must shrink, got %d entries", len(w.Entities()))
	}
}

func TestWorld_GenerationProtectsStaleIDs(t *testing.T) {
	w := newTestWorld()

	a := w.Spawn()
	w.DeferDespawn(a)
	w.Maintain()

	// Слот переиспользуется, но поколение выросло
	b := w.Spawn()
	if a.Index() != b.Index() {
		t.Fatalf("slot should be reused: %d vs %d", a.Index(), b.Index())
	}
	if a == b {
		t.Fatal("reused slot must produce a different ID")
	}
	if w.Contains(a) {
		t.Fatal("stale ID must not resolve to the new tenant")
	}
	if !w.Contains(b) {
		t.Fatal("new tenant must be alive")
	}
}

func TestWorld_DoubleDespawnIsHarmless(t *testing.T) {
	w := newTestWorld()

	a := w.Spawn()
	w.DeferDespawn(a)
	w.DeferDespawn(a)
	w.Maintain()

	if w.Contains(a) {
		t.Fatal("entity must be gone")
	}

	// Спавним двоих: слот переиспользован ровно один раз
	b := w.Spawn()
	c := w.Spawn()
	if b == c {
		t.Fatal("double despawn must not hand out the same slot twice")
	}
}

func TestWorld_NameOf(t *testing.T) {
	w := newTestWorld()

	a := w.Spawn()
	w.Names[a] = &Name{Name: "Гоблин"}

	if got := w.NameOf(a); got != "Гоблин" {
		t.Errorf("expected name, got %q", got)
	}

	b := w.Spawn()
	if got := w.NameOf(b); got == "" {
		t.Error("nameless entity should still get a placeholder")
	}
}
