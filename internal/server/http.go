package server

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"vortex-server/internal/engine"
	"vortex-server/internal/version"
	"vortex-server/pkg/logger"
)

// Server раздает игровые сессии по WebSocket.
// Каждый подключившийся клиент получает СВОЙ изолированный мир:
// ядро однопоточное, сессии между собой ничем не делятся.
type Server struct {
	Cfg  engine.Config
	Seed int64 // мастер-зерно; 0 = случайное на каждую сессию

	sessionCounter int64
}

func New(cfg engine.Config, seed int64) *Server {
	return &Server{
		Cfg:  cfg,
		Seed: seed,
	}
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	mux := http.NewServeMux()

	// Регистрируем роуты
	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	logger.Log.Infof("🌀 Vortex server running on %s", s.Cfg.Server.BindAddress)
	return http.ListenAndServe(s.Cfg.Server.BindAddress, mux)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// sessionSeed выдает зерно для новой сессии. При явном мастер-зерне
// сессии детерминированно нумеруются от него.
func (s *Server) sessionSeed() int64 {
	n := atomic.AddInt64(&s.sessionCounter, 1)
	if s.Seed != 0 {
		return s.Seed + n - 1
	}
	return time.Now().UnixNano()
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("Upgrade error:", err)
		return
	}

	client := NewClient(s.Cfg, s.sessionSeed(), conn)

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(version.Info())
}
