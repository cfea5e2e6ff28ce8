package domain

import "math/rand"

// World - хранилище всех сущностей, их компонентов и общих ресурсов сессии.
// Конвейер систем строго последовательный и однопоточный: на одном проходе
// каждый ресурс пишет максимум одна система, конкурентного доступа нет.
type World struct {
	// Слоты сущностей. Поколение слота растет при каждом освобождении,
	// так что старый EntityID на переиспользованный слот не резолвится.
	generations []uint32
	alive       []bool
	free        []uint32

	// order - живые ID в порядке спавна. Системы обходят его, а не мапы,
	// чтобы итог прохода не зависел от случайного порядка итерации.
	order []EntityID

	// --- Разреженные хранилища компонентов ---
	Positions    map[EntityID]*Position
	Renderables  map[EntityID]*Renderable
	Views        map[EntityID]*FieldOfView
	Names        map[EntityID]*Name
	Monsters     map[EntityID]*Monster
	Blockers     map[EntityID]*BlocksTile
	Stats        map[EntityID]*CombatStats
	MeleeIntents map[EntityID]*WantsToMelee
	Damage       map[EntityID]*SufferDamage

	// --- Общие ресурсы (синглтоны сессии) ---
	Map      *Map
	RunState RunState
	Log      *GameLog
	Rng      *rand.Rand

	// Player - хэндл единственной сущности игрока.
	// Его исчезновение - терминальное условие игры, не обычная смерть.
	Player EntityID
	// PlayerPos - кэш позиции игрока, обновляется системой видимости
	PlayerPos Position

	// Отложенные структурные изменения: удаления копятся тут и
	// применяются одним коммитом в Maintain
	despawnQueue []EntityID
}

func NewWorld(m *Map, rng *rand.Rand) *World {
	return &World{
		Positions:    make(map[EntityID]*Position),
		Renderables:  make(map[EntityID]*Renderable),
		Views:        make(map[EntityID]*FieldOfView),
		Names:        make(map[EntityID]*Name),
		Monsters:     make(map[EntityID]*Monster),
		Blockers:     make(map[EntityID]*BlocksTile),
		Stats:        make(map[EntityID]*CombatStats),
		MeleeIntents: make(map[EntityID]*WantsToMelee),
		Damage:       make(map[EntityID]*SufferDamage),

		Map:      m,
		RunState: StatePreRun,
		Log:      NewGameLog(),
		Rng:      rng,
	}
}

// Spawn выделяет новый слот сущности (или переиспользует свободный)
func (w *World) Spawn() EntityID {
	var index uint32
	if n := len(w.free); n > 0 {
		index = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		index = uint32(len(w.generations))
		w.generations = append(w.generations, 0)
		w.alive = append(w.alive, false)
	}

	w.alive[index] = true
	id := PackEntityID(index, w.generations[index])
	w.order = append(w.order, id)
	return id
}

// Contains проверяет, что ID ссылается на живую сущность текущего поколения
func (w *World) Contains(id EntityID) bool {
	index := id.Index()
	if int(index) >= len(w.generations) {
		return false
	}
	return w.alive[index] && w.generations[index] == id.Generation()
}

// Entities возвращает живые ID в порядке спавна.
// Слайс принадлежит миру, вызывающий его не мутирует.
func (w *World) Entities() []EntityID {
	return w.order
}

// DeferDespawn ставит сущность в очередь на удаление. Само удаление
// произойдет в Maintain, поэтому система, запросившая его посреди
// прохода, никогда не увидит полуразобранную сущность.
func (w *World) DeferDespawn(id EntityID) {
	w.despawnQueue = append(w.despawnQueue, id)
}

// Maintain - точка коммита структурных изменений.
// Вызывается между проходом конвейера и зачисткой мертвых.
func (w *World) Maintain() {
	if len(w.despawnQueue) == 0 {
		return
	}
	for _, id := range w.despawnQueue {
		w.despawn(id)
	}
	w.despawnQueue = w.despawnQueue[:0]
}

// despawn немедленно разбирает сущность: все компоненты, слот, порядок обхода
func (w *World) despawn(id EntityID) {
	if !w.Contains(id) {
		return // уже удалена (двойная заявка - не ошибка)
	}

	delete(w.Positions, id)
	delete(w.Renderables, id)
	delete(w.Views, id)
	delete(w.Names, id)
	delete(w.Monsters, id)
	delete(w.Blockers, id)
	delete(w.Stats, id)
	delete(w.MeleeIntents, id)
	delete(w.Damage, id)

	index := id.Index()
	w.alive[index] = false
	w.generations[index]++
	w.free = append(w.free, index)

	for i, other := range w.order {
		if other == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// NameOf возвращает имя сущности для логов
func (w *World) NameOf(id EntityID) string {
	if n, ok := w.Names[id]; ok {
		return n.Name
	}
	return "Некто"
}
