package server

import (
	"vortex-server/internal/domain"
	"vortex-server/pkg/api"
)

// buildSnapshot собирает DTO-снимок осевшего мира для клиента.
// Презентация строго читающая: сюда мир приходит после зачистки тика.
// Правила видимости: тайлы - только исследованные, сущности - только
// те, что в текущем поле зрения игрока, сам герой - всегда.
func (c *Client) buildSnapshot(respType string) api.ServerResponse {
	w := c.Game.World
	m := w.Map

	resp := api.ServerResponse{
		Type:     respType,
		State:    w.RunState.String(),
		GameOver: c.Game.GameOver,
		Grid:     &api.GridMeta{Width: m.Width, Height: m.Height},
	}

	// Тайлы: отправляем только исследованные (экономия трафика,
	// остальное для клиента все равно чернота)
	for idx, tile := range m.Tiles {
		if !m.Revealed[idx] {
			continue
		}
		x, y := m.XY(idx)
		resp.Map = append(resp.Map, api.TileView{
			X:          x,
			Y:          y,
			IsWall:     tile == domain.TileWall,
			IsVisible:  m.Visible[idx],
			IsExplored: true,
		})
	}

	// Сущности в поле зрения
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

		view := api.EntityView{ID: id.String(), Name: w.NameOf(id)}
		view.Pos.X, view.Pos.Y = pos.X, pos.Y
		view.Render.Symbol = string(render.Glyph)
		view.Render.Color = render.Color
		resp.Entities = append(resp.Entities, view)
	}

	// Герой виден всегда, со статами
	if pos, ok := w.Positions[w.Player]; ok {
		player := &api.EntityView{ID: w.Player.String(), Name: w.NameOf(w.Player)}
		player.Pos.X, player.Pos.Y = pos.X, pos.Y
		if render, ok := w.Renderables[w.Player]; ok {
			player.Render.Symbol = string(render.Glyph)
			player.Render.Color = render.Color
		}
		if stats, ok := w.Stats[w.Player]; ok {
			player.Stats = &api.StatsView{
				HP: stats.HP, MaxHP: stats.MaxHP,
				Defense: stats.Defense, Power: stats.Power,
			}
		}
		resp.Player = player
	}

	// Журнал: только новые записи с прошлого снапшота
	entries := w.Log.Entries
	for ; c.logCursor < len(entries); c.logCursor++ {
		e := entries[c.logCursor]
		resp.Logs = append(resp.Logs, api.LogEntry{
			Text:      e.Text,
			Type:      e.Type,
			Timestamp: e.Timestamp,
		})
	}

	return resp
}
