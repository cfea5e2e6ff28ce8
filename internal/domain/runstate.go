package domain

// RunState - фаза машины состояний хода
type RunState uint8

const (
	StatePreRun RunState = iota
	StateAwaitingInput
	StatePlayerTurn
	StateMonsterTurn
)

// Маппинг для логов Domain -> String
var runStateToString = map[RunState]string{
	StatePreRun:        "PRE_RUN",
	StateAwaitingInput: "AWAITING_INPUT",
	StatePlayerTurn:    "PLAYER_TURN",
	StateMonsterTurn:   "MONSTER_TURN",
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (s RunState) String() string {
	if val, ok := runStateToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}
