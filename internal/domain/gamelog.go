package domain

import "time"

// Типы записей лога
const (
	LogInfo   = "INFO"
	LogCombat = "COMBAT"
	LogDeath  = "DEATH"
)

// LogEntry - запись в журнале событий
type LogEntry struct {
	Text      string `json:"text"`
	Type      string `json:"type"` // INFO, COMBAT, DEATH
	Timestamp int64  `json:"timestamp"`
}

// GameLog - упорядоченный журнал. Ядро только дописывает в конец,
// читает его исключительно презентация.
type GameLog struct {
	Entries []LogEntry `json:"entries"`
}

func NewGameLog() *GameLog {
	return &GameLog{Entries: make([]LogEntry, 0, 16)}
}

func (l *GameLog) Append(text, logType string) {
	l.Entries = append(l.Entries, LogEntry{
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
}

// Tail возвращает последние n записей (для отрисовки)
func (l *GameLog) Tail(n int) []LogEntry {
	if n >= len(l.Entries) {
		return l.Entries
	}
	return l.Entries[len(l.Entries)-n:]
}
