package systems

import (
	"fmt"

	"vortex-server/internal/domain"
	"vortex-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ApplyDamage применяет весь накопленный за проход урон.
// Сумма Amounts вычитается из HP одним движением (в минус уходить можно,
// пола нет), после чего накопитель снимается целиком - в следующий ход
// он не переживает. Отсутствие накопителя - норма, а не ошибка.
func ApplyDamage(w *domain.World) {
	for _, id := range w.Entities() {
		dmg, ok := w.Damage[id]
		if !ok {
			continue
		}
		delete(w.Damage, id)

		stats, ok := w.Stats[id]
		if !ok {
			continue
		}

		total := 0
		for _, amount := range dmg.Amounts {
			total += amount
		}
		stats.HP -= total
	}
}

// SweepDead - зачистка погибших. Запускается раз в тик, безусловно,
// после коммита Maintain. HP ровно на нуле считается так же, как ниже нуля.
//
// Возвращает true, если погиб игрок. Его сущность при этом ОСТАЕТСЯ
// в мире: смерть игрока - событие потока для владельца машины состояний,
// а не удаление сущности.
func SweepDead(w *domain.World) bool {
	playerDied := false

	for _, id := range w.Entities() {
		stats, ok := w.Stats[id]
		if !ok || stats.HP > 0 {
			continue
		}

		if id == w.Player {
			playerDied = true
			continue
		}

		w.Log.Append(fmt.Sprintf("%s погибает.", w.NameOf(id)), domain.LogDeath)
		logger.Log.WithFields(logrus.Fields{
			"component": "damage_system",
			"entity":    id.String(),
			"name":      w.NameOf(id),
		}).Info("Entity died and was swept.")

		w.DeferDespawn(id)
	}

	w.Maintain()
	return playerDied
}
