package systems

import (
	"fmt"

	"vortex-server/internal/domain"
	"vortex-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ResolveMelee превращает намерения атаки в записи урона.
// Попадание гарантировано, урон детерминированный:
//
//	damage = max(0, power атакующего - defense цели)
//
// Нулевой урон - тоже удар: строка в журнал и нулевая запись в накопитель.
// Намерение в любом случае потребляется в этом же проходе и никогда
// не переживает ход. Идет после AI и индексации, до системы урона.
func ResolveMelee(w *domain.World) {
	for _, id := range w.Entities() {
		intent, ok := w.MeleeIntents[id]
		if !ok {
			continue
		}
		delete(w.MeleeIntents, id)

		attackerStats, ok := w.Stats[id]
		if !ok || attackerStats.HP <= 0 {
			continue // атакующий без статов или уже при смерти - пропуск
		}
		if !w.Contains(intent.Target) {
			continue // цель исчезла между решением и ударом
		}
		targetStats, ok := w.Stats[intent.Target]
		if !ok || targetStats.HP <= 0 {
			continue
		}

		damage := attackerStats.Power - targetStats.Defense
		if damage < 0 {
			damage = 0
		}

		// Накопитель создается при первом ударе за проход
		dmg, ok := w.Damage[intent.Target]
		if !ok {
			dmg = &domain.SufferDamage{}
			w.Damage[intent.Target] = dmg
		}
		dmg.Amounts = append(dmg.Amounts, damage)

		attackerName := w.NameOf(id)
		targetName := w.NameOf(intent.Target)

		if damage == 0 {
			w.Log.Append(fmt.Sprintf("%s не может пробить защиту %s.", attackerName, targetName), domain.LogCombat)
		} else {
			w.Log.Append(fmt.Sprintf("%s наносит %d урона по %s.", attackerName, damage, targetName), domain.LogCombat)
		}

		logger.Log.WithFields(logrus.Fields{
			"component": "melee_system",
			"attacker":  attackerName,
			"target":    targetName,
			"damage":    damage,
		}).Debug("Melee intent resolved.")
	}
}
