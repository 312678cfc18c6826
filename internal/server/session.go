package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mirosoltan/belote/internal/bots"
	"github.com/mirosoltan/belote/internal/engine"
)

func generateSessionID() string {
	return time.Now().Format("20060102150405")
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// The human plays seat 0; seats 1-3 are bot-controlled.
const humanSeat = 0

type Session struct {
	mu         sync.Mutex
	id         string
	match      engine.MatchState
	started    bool
	seed       int64
	actionIds  map[string]bool
	conn       *websocket.Conn
	botPlayers map[int]bots.Bot
	logger     *slog.Logger
}

var (
	sessionOnce sync.Once
	sessionInst *Session

	defaultLogger = slog.Default()
	defaultSeed   int64
)

// Configure sets the logger and the deal seed used by the shared session. A
// zero seed means time-based shuffles. Call before the first connection.
func Configure(logger *slog.Logger, seed int64) {
	defaultLogger = logger
	defaultSeed = seed
}

func GetSession() *Session {
	sessionOnce.Do(func() {
		sessionInst = newSession(defaultLogger, defaultSeed)
	})
	return sessionInst
}

func newSession(logger *slog.Logger, seed int64) *Session {
	return &Session{
		id:         generateSessionID(),
		seed:       seed,
		actionIds:  map[string]bool{},
		botPlayers: map[int]bots.Bot{},
		logger:     logger,
	}
}

func (s *Session) HandleConnection(conn *websocket.Conn) {
	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError("bad_request", "invalid json")
			continue
		}
		s.handleMessage(msg)
	}
}

type ClientMessage struct {
	Type     string     `json:"type"`
	ActionId string     `json:"actionId,omitempty"`
	Action   *ActionDTO `json:"action,omitempty"`
}

type ServerMessage struct {
	Type   string     `json:"type"`
	State  *GameView  `json:"state,omitempty"`
	Events []Event    `json:"events,omitempty"`
	Error  *ErrorView `json:"error,omitempty"`
}

type ErrorView struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

func (s *Session) handleMessage(msg ClientMessage) {
	switch msg.Type {
	case "join_session", "request_state":
		s.sendState(nil)
	case "start_match":
		s.startMatch()
	case "player_action":
		s.applyAction(msg.ActionId, msg.Action)
	default:
		s.sendError("unknown_type", "unknown message type")
	}
}

func (s *Session) startMatch() {
	s.mu.Lock()
	defer s.mu.Unlock()

	seed := s.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.match = engine.NewMatch(engine.NewDeck(rand.New(rand.NewSource(seed))))
	s.started = true
	s.actionIds = map[string]bool{}
	s.botPlayers = map[int]bots.Bot{
		1: bots.NewStrategy(),
		2: bots.NewStrategy(),
		3: bots.NewStrategy(),
	}
	s.ensureDealLocked()
	s.logger.Info("match started", "session", s.id, "seed", seed)
	s.sendStateLocked(nil)
	s.botAutoPlayLocked()
}

func (s *Session) applyAction(actionId string, dto *ActionDTO) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		s.sendError("not_started", "match not started")
		return
	}
	if actionId == "" {
		s.sendError("missing_action_id", "actionId required")
		return
	}
	if s.actionIds[actionId] {
		s.sendStateLocked(nil)
		return
	}
	s.actionIds[actionId] = true

	action, err := dto.ToEngine()
	if err != nil {
		s.sendError("bad_action", err.Error())
		return
	}

	prev := s.match
	if err := engine.ApplyAction(&s.match, humanSeat, action); err != nil {
		s.sendError(errorCode(err), err.Error())
		return
	}
	s.ensureDealLocked()
	s.sendStateLocked(buildEvents(prev, s.match, humanSeat, action))
	s.botAutoPlayLocked()
}

// botAutoPlayLocked lets the bot seats act until the human is due or the
// match is over. A rejected bot action is a programming defect; it is logged
// and the loop stops rather than spinning.
func (s *Session) botAutoPlayLocked() {
	for {
		seat := engine.CurrentSeat(s.match)
		if seat < 0 {
			return
		}
		bot, isBot := s.botPlayers[seat]
		if !isBot {
			return
		}
		prev := s.match
		action := bot.ChooseAction(s.match, seat)
		if err := engine.ApplyAction(&s.match, seat, action); err != nil {
			s.logger.Error("bot played illegal action", "seat", seat, "action", action.String(), "error", err)
			return
		}
		s.ensureDealLocked()
		s.sendStateLocked(buildEvents(prev, s.match, seat, action))
	}
}

func (s *Session) ensureDealLocked() {
	for s.match.Phase == engine.PhaseDeal {
		if err := engine.StartDeal(&s.match); err != nil {
			s.logger.Error("start deal", "error", err)
			return
		}
	}
}

func (s *Session) sendState(events []Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendStateLocked(events)
}

func (s *Session) sendStateLocked(events []Event) {
	if s.conn == nil {
		return
	}
	if !s.started {
		s.match = engine.NewMatch(engine.NewDeck(rand.New(rand.NewSource(1))))
	}
	msg := ServerMessage{
		Type:   "state",
		State:  BuildGameView(s.match, humanSeat, s.id),
		Events: events,
	}
	if err := s.conn.WriteJSON(msg); err != nil {
		s.logger.Warn("write state", "error", err)
	}
}

func (s *Session) sendError(code, message string) {
	if s.conn == nil {
		return
	}
	msg := ServerMessage{
		Type:  "error",
		Error: &ErrorView{Code: code, Message: message},
	}
	_ = s.conn.WriteJSON(msg)
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, engine.ErrNotYourTurn):
		return "not_your_turn"
	case errors.Is(err, engine.ErrIllegalBid):
		return "illegal_bid"
	case errors.Is(err, engine.ErrIllegalMove):
		return "illegal_move"
	case errors.Is(err, engine.ErrInvalidAnnounce):
		return "invalid_announce"
	default:
		return "apply_failed"
	}
}
