// Package term - локальный терминальный клиент: коллаборатор ввода
// (клавиши -> дискретные действия) и презентация (чтение осевшего мира).
// Ядро он не мутирует иначе как через engine.Action.
package term

import (
	"fmt"

	"vortex-server/internal/domain"
	"vortex-server/internal/engine"

	"github.com/gdamore/tcell/v2"
)

const logLines = 5

// Run крутит локальную сессию до выхода игрока.
// Блокируемся мы только на PollEvent - ровно тогда, когда машина
// состояний стоит в AwaitingInput.
func Run(cfg engine.Config, seed int64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	game := engine.NewGame(cfg, seed)

	// Прогрев: PreRun доводит машину до ожидания ввода
	game.Advance(engine.Action{})

	for {
		draw(screen, game)

		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			act, quit := mapKey(ev)
			if quit {
				return nil
			}
			if act.Type != engine.ActionNone {
				game.Advance(act)
			}
		}
	}
}

// mapKey переводит клавишу в действие. Стрелки и vi-клавиши hjkl,
// диагонали yubn, точка - пропуск хода.
func mapKey(ev *tcell.EventKey) (engine.Action, bool) {
	move := func(dx, dy int) (engine.Action, bool) {
		return engine.Action{Type: engine.ActionMove, Dx: dx, Dy: dy}, false
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return engine.Action{}, true
	case tcell.KeyLeft:
		return move(-1, 0)
	case tcell.KeyRight:
		return move(1, 0)
	case tcell.KeyUp:
		return move(0, -1)
	case tcell.KeyDown:
		return move(0, 1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return engine.Action{}, true
		case 'h':
			return move(-1, 0)
		case 'l':
			return move(1, 0)
		case 'k':
			return move(0, -1)
		case 'j':
			return move(0, 1)
		case 'y':
			return move(-1, -1)
		case 'u':
			return move(1, -1)
		case 'b':
			return move(-1, 1)
		case 'n':
			return move(1, 1)
		case '.':
			return engine.Action{Type: engine.ActionWait}, false
		}
	}
	return engine.Action{}, false
}

// draw рисует исследованную карту (видимое ярко, остальное тускло),
// сущностей в поле зрения, статус-строку и хвост журнала.
func draw(screen tcell.Screen, game *engine.Game) {
	w := game.World
	m := w.Map

	screen.Clear()

	dimStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	wallStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 60, 140))
	floorStyle := tcell.StyleDefault.Foreground(tcell.ColorTeal)

	for idx, tile := range m.Tiles {
		if !m.Revealed[idx] {
			continue
		}
		x, y := m.XY(idx)

		glyph := '.'
		style := floorStyle
		if tile == domain.TileWall {
			glyph = '#'
			style = wallStyle
		}
		if !m.Visible[idx] {
			style = dimStyle
		}
		screen.SetContent(x, y, glyph, nil, style)
	}

	// Сущности: только в текущем поле зрения, герой поверх всех
	for _, id := range w.Entities() {
		if id == w.Player {
			continue
		}
		pos, ok := w.Positions[id]
		if !ok {
			continue
		}
		render, ok := w.Renderables[id]
		if !ok {
			continue
		}
		if !m.Visible[m.Idx(pos.X, pos.Y)] {
			continue
		}
		screen.SetContent(pos.X, pos.Y, render.Glyph, nil,
			tcell.StyleDefault.Foreground(tcell.GetColor(render.Color)))
	}

	if pos, ok := w.Positions[w.Player]; ok {
		style := tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
		screen.SetContent(pos.X, pos.Y, '@', nil, style)
	}

	// Статус-строка под картой
	statusY := m.Height
	status := "Вы погибли. Q - выход."
	if !game.GameOver {
		if stats, ok := w.Stats[w.Player]; ok {
			status = fmt.Sprintf("HP: %d/%d", stats.HP, stats.MaxHP)
		}
	}
	drawText(screen, 1, statusY, status, tcell.StyleDefault.Bold(true))

	// Хвост журнала
	for i, entry := range w.Log.Tail(logLines) {
		drawText(screen, 1, statusY+1+i, entry.Text, tcell.StyleDefault)
	}

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		screen.SetContent(col, y, r, nil, style)
		col++
	}
}
