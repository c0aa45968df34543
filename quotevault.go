// QuoteVault
//
// A single-player trivia game: identify a movie, series, or game from
// progressively revealed media. Each franchise serves up to three questions:
// a video quote stopped at a fixed timestamp, a pixelated character portrait,
// and pixelated banner art.
//
// Features:
// - WebSockets per session ID: /path/:sessionid and /path/:sessionid/ws
// - First connection to a session becomes the player; later connections
//   with a different cookie spectate the same state
// - Players identified by cookie (playerID)
// - Image questions unblur hint by hint from a calibrated clarity floor;
//   past full reveal, hints switch to a drag-and-drop letter scramble
// - Quote questions go straight to the letter scramble at hint 1
// - Letter scrambles are derived server-side from a stable seed, so every
//   connection sees the same tiles
// - Wrong-guess streaks escalate the hint level automatically (5 for quote
//   mode, 3 for image modes) without the score penalty of a manual hint
// - Solves append a durable activity record and award points; skips are
//   recorded separately and never score
// - Sessions auto-reaped after configurable idle timeout
// - Random 8-char session IDs via crypto/rand, with collision check
// - In-browser QR button to share the current session, backed by go-qrcode

package main

import (
	"crypto/rand"
	_ "embed"
	"encoding/hex"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

// Messages coming from clients
type ClientMessage struct {
	Type     string       `json:"type"`               // "start", "guess", "hint", "skip", "swap"
	Category string       `json:"category,omitempty"` // start
	Mode     QuestionKind `json:"mode,omitempty"`     // guess / hint / skip / swap
	Guess    string       `json:"guess,omitempty"`    // guess; empty while the scramble is active
	Source   int          `json:"source"`             // swap: drag source tile ID
	Target   int          `json:"target"`             // swap: drop target tile ID
}

// SessionInfoMessage is sent immediately on connect so the client knows
// whether this cookie is the player or a spectator.
type SessionInfoMessage struct {
	Type     string `json:"type"` // "session_info"
	IsPlayer bool   `json:"is_player"`
	Category string `json:"category,omitempty"`
}

// QuestionItem is the per-question metadata a client is allowed to see.
// Answers never leave the server.
type QuestionItem struct {
	ID          uint    `json:"id"`
	MediaPath   string  `json:"media_path"`
	StopTime    float64 `json:"stop_time,omitempty"`
	BaseClarity float64 `json:"base_clarity,omitempty"`
}

// QuestionMessage announces the current franchise's question set.
type QuestionMessage struct {
	Type      string        `json:"type"` // "question"
	Category  string        `json:"category"`
	Quote     *QuestionItem `json:"quote,omitempty"`
	Character *QuestionItem `json:"character,omitempty"`
	Banner    *QuestionItem `json:"banner,omitempty"`
}

// DisclosureView is the wire form of a Disclosure.
type DisclosureView struct {
	Mode    string  `json:"mode"` // "media", "image", "full", "puzzle"
	Clarity float64 `json:"clarity"`
	Tier    int     `json:"tier,omitempty"`
}

func (d Disclosure) view() DisclosureView {
	v := DisclosureView{Clarity: d.Clarity, Tier: d.Tier}
	switch d.Mode {
	case DisclosureImage:
		v.Mode = "image"
	case DisclosureFull:
		v.Mode = "full"
	case DisclosurePuzzle:
		v.Mode = "puzzle"
	default:
		v.Mode = "media"
	}
	return v
}

// ModeState is one question-play's progress as shown to clients.
type ModeState struct {
	Solved     bool           `json:"solved"`
	Skipped    bool           `json:"skipped"`
	Attempts   int            `json:"attempts"`
	HintsUsed  int            `json:"hints_used"`
	AtCeiling  bool           `json:"at_ceiling"`
	Disclosure DisclosureView `json:"disclosure"`
}

// StateMessage broadcasts progress for every mode of the current set.
type StateMessage struct {
	Type  string                     `json:"type"` // "state"
	Modes map[QuestionKind]ModeState `json:"modes"`
}

// PuzzleMessage carries the authoritative letter scramble for one mode.
type PuzzleMessage struct {
	Type   string       `json:"type"` // "puzzle"
	Mode   QuestionKind `json:"mode"`
	Puzzle *Puzzle      `json:"puzzle"`
}

// GuessResultMessage informs all connections about a guess outcome.
type GuessResultMessage struct {
	Type      string       `json:"type"` // "guess_result"
	Mode      QuestionKind `json:"mode"`
	Correct   bool         `json:"correct"`
	Answer    string       `json:"answer,omitempty"` // canonical answer, on solve
	Escalated bool         `json:"escalated"`
	Points    int          `json:"points,omitempty"` // player total after a solve
}

// SkippedMessage reveals the answer after a skip. Distinct from a solve so
// clients (and the activity log) never confuse the two.
type SkippedMessage struct {
	Type   string       `json:"type"` // "skipped"
	Mode   QuestionKind `json:"mode"`
	Answer string       `json:"answer"`
}

// SimpleMessage is for generic notifications ("not_player", "no_content", etc.)
type SimpleMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type Client struct {
	conn     *websocket.Conn
	send     chan any
	playerID string
}

type command struct {
	client *Client
	msg    ClientMessage
}

// Session owns all mutable play state for one session ID. Progress for each
// question is owned exclusively by this hub's goroutine; the renderer and
// the content store are stateless collaborators.
type Session struct {
	id      string
	store   *Store
	clients map[*Client]bool

	register chan *Client
	unreg    chan *Client
	commands chan command

	mu sync.RWMutex

	createdAt  time.Time
	lastActive time.Time
	playerID   string // cookie of the playing client; "" until first connect

	category string
	set      *QuestionSet
	plays    map[QuestionKind]*Play
	puzzles  map[QuestionKind]*Puzzle
}

func newSession(sessionID string, store *Store) *Session {
	now := time.Now()
	return &Session{
		id:         sessionID,
		store:      store,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unreg:      make(chan *Client),
		commands:   make(chan command),
		createdAt:  now,
		lastActive: now,
		plays:      make(map[QuestionKind]*Play),
		puzzles:    make(map[QuestionKind]*Puzzle),
	}
}

func (s *Session) run(cfg *Config) {
	for {
		select {
		case c := <-s.register:
			s.mu.Lock()
			s.lastActive = time.Now()

			// First connection becomes the player
			if s.playerID == "" {
				s.playerID = c.playerID
			}
			s.clients[c] = true

			c.send <- SessionInfoMessage{
				Type:     "session_info",
				IsPlayer: c.playerID == s.playerID,
				Category: s.category,
			}

			// Catch a late joiner up on the current question and progress.
			if s.set != nil {
				c.send <- s.questionMessageLocked()
				c.send <- s.stateMessageLocked()
				for kind, pz := range s.puzzles {
					c.send <- PuzzleMessage{Type: "puzzle", Mode: kind, Puzzle: pz}
				}
			}
			s.mu.Unlock()

		case c := <-s.unreg:
			s.mu.Lock()
			s.lastActive = time.Now()
			if _, ok := s.clients[c]; ok {
				delete(s.clients, c)
				close(c.send)
			}
			s.mu.Unlock()

		case cmd := <-s.commands:
			s.handleCommand(cfg, cmd)
		}
	}
}

func (s *Session) questionMessageLocked() QuestionMessage {
	msg := QuestionMessage{Type: "question", Category: s.set.Category}

	item := func(q *Question) *QuestionItem {
		if q == nil {
			return nil
		}
		return &QuestionItem{
			ID:          q.ID,
			MediaPath:   q.MediaPath,
			StopTime:    q.StopTime,
			BaseClarity: q.BaseClarity,
		}
	}

	msg.Quote = item(s.set.Quote)
	msg.Character = item(s.set.Character)
	msg.Banner = item(s.set.Banner)
	return msg
}

func (s *Session) stateMessageLocked() StateMessage {
	modes := make(map[QuestionKind]ModeState, len(s.plays))
	for kind, play := range s.plays {
		modes[kind] = ModeState{
			Solved:     play.Progress.Solved,
			Skipped:    play.Progress.Skipped,
			Attempts:   play.Progress.Attempts,
			HintsUsed:  play.Progress.HintsUsed,
			AtCeiling:  play.AtHintCeiling(),
			Disclosure: play.Disclosure().view(),
		}
	}
	return StateMessage{Type: "state", Modes: modes}
}

func (s *Session) broadcastLocked(msg any) {
	for client := range s.clients {
		select {
		case client.send <- msg:
		default:
			delete(s.clients, client)
			close(client.send)
		}
	}
}

func (s *Session) sendTo(c *Client, msg any) {
	select {
	case c.send <- msg:
	default:
		delete(s.clients, c)
		close(c.send)
	}
}

// syncPuzzleLocked re-derives the scramble for a mode whenever its
// disclosure says one should exist at a tier we have not built yet. The
// seed is stable per (session, question, tier), so regeneration after a
// reconnect yields the same tiles.
func (s *Session) syncPuzzleLocked(cfg *Config, kind QuestionKind, play *Play) *Puzzle {
	d := play.Disclosure()
	if d.Mode != DisclosurePuzzle {
		delete(s.puzzles, kind)
		return nil
	}

	if pz, ok := s.puzzles[kind]; ok && pz.Tier == d.Tier {
		return pz
	}

	pz, err := NewPuzzle(play.Answer, d.Tier, puzzleSeed(s.id, play.QuestionID, d.Tier))
	if err != nil {
		logf(cfg, "ERROR: scramble for question %d: %v", play.QuestionID, err)
		return nil
	}
	s.puzzles[kind] = pz
	return pz
}

func (s *Session) handleCommand(cfg *Config, cmd command) {
	c := cmd.client
	msg := cmd.msg

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastActive = time.Now()

	// Spectators watch; only the player acts.
	if c.playerID != s.playerID {
		s.sendTo(c, SimpleMessage{
			Type:    "not_player",
			Message: "You are spectating this session.",
		})
		return
	}

	switch msg.Type {
	case "start":
		s.handleStartLocked(cfg, c, msg)
	case "guess":
		s.handleGuessLocked(cfg, c, msg)
	case "hint":
		s.handleHintLocked(cfg, msg)
	case "skip":
		s.handleSkipLocked(cfg, msg)
	case "swap":
		s.handleSwapLocked(c, msg)
	}
}

func (s *Session) handleStartLocked(cfg *Config, c *Client, msg ClientMessage) {
	category := msg.Category
	if category == "" {
		category = "movie"
	}

	set, err := s.store.RandomQuestionSet(category)
	if err != nil {
		logf(cfg, "ERROR: question feed: %v", err)
		s.sendTo(c, SimpleMessage{Type: "feed_error", Message: "Could not load a question."})
		return
	}
	if set == nil {
		s.sendTo(c, SimpleMessage{Type: "no_content", Message: "No content in this category yet."})
		return
	}

	// Progress is discarded on every question change: solve, skip, or
	// category switch all land here.
	s.category = category
	s.set = set
	s.plays = make(map[QuestionKind]*Play)
	s.puzzles = make(map[QuestionKind]*Puzzle)

	for kind, q := range map[QuestionKind]*Question{
		KindQuote:     set.Quote,
		KindCharacter: set.Character,
		KindBanner:    set.Banner,
	} {
		if q == nil {
			continue
		}
		s.plays[kind] = NewPlay(q.ID, kind, q.Answer, q.BaseClarity)
	}

	logf(cfg, "PLAY: Session %s started %q (%s)", s.id, set.Title, category)

	s.broadcastLocked(s.questionMessageLocked())
	s.broadcastLocked(s.stateMessageLocked())
}

func (s *Session) handleGuessLocked(cfg *Config, c *Client, msg ClientMessage) {
	play, ok := s.plays[msg.Mode]
	if !ok || play.Progress.Solved {
		return
	}

	guess := msg.Guess
	if guess == "" {
		// Drag mode: the guess is the current tile arrangement.
		if pz, ok := s.puzzles[msg.Mode]; ok {
			guess = pz.Guess()
		}
	}
	if strings.TrimSpace(guess) == "" {
		return
	}

	result := play.SubmitGuess(guess)

	out := GuessResultMessage{
		Type:      "guess_result",
		Mode:      msg.Mode,
		Correct:   result.Correct,
		Answer:    result.Answer,
		Escalated: result.Escalated,
	}

	if result.Correct {
		delete(s.puzzles, msg.Mode)

		rec := ActivityRecord{
			PlayerID:   s.playerID,
			QuestionID: play.QuestionID,
			Solved:     true,
			Attempts:   play.Progress.Attempts,
			HintsUsed:  play.Progress.HintsUsed,
			TimeTaken:  play.TimeTaken(),
		}
		if err := s.store.RecordActivity(rec); err != nil {
			logf(cfg, "ERROR: record solve: %v", err)
		} else if points, err := s.store.PlayerPoints(s.playerID); err == nil {
			out.Points = points
		}

		logf(cfg, "PLAY: Session %s solved question %d in %d attempts", s.id, play.QuestionID, play.Progress.Attempts)
	} else if result.Escalated {
		s.syncPuzzleLocked(cfg, msg.Mode, play)
	}

	s.broadcastLocked(out)
	s.broadcastLocked(s.stateMessageLocked())

	if !result.Correct {
		if pz, ok := s.puzzles[msg.Mode]; ok {
			s.broadcastLocked(PuzzleMessage{Type: "puzzle", Mode: msg.Mode, Puzzle: pz})
		}
	}
}

func (s *Session) handleHintLocked(cfg *Config, msg ClientMessage) {
	play, ok := s.plays[msg.Mode]
	if !ok {
		return
	}

	// Inert once solved or at the tier-4 / full-reveal ceiling.
	if !play.RequestHint() {
		return
	}

	pz := s.syncPuzzleLocked(cfg, msg.Mode, play)

	s.broadcastLocked(s.stateMessageLocked())
	if pz != nil {
		s.broadcastLocked(PuzzleMessage{Type: "puzzle", Mode: msg.Mode, Puzzle: pz})
	}
}

func (s *Session) handleSkipLocked(cfg *Config, msg ClientMessage) {
	play, ok := s.plays[msg.Mode]
	if !ok || !play.Skip() {
		return
	}

	delete(s.puzzles, msg.Mode)

	// A skip is durable too, but flagged so it can never be mistaken for a
	// scoring solve.
	rec := ActivityRecord{
		PlayerID:   s.playerID,
		QuestionID: play.QuestionID,
		Solved:     false,
		Attempts:   play.Progress.Attempts,
		HintsUsed:  play.Progress.HintsUsed,
		TimeTaken:  play.TimeTaken(),
	}
	if err := s.store.RecordActivity(rec); err != nil {
		logf(cfg, "ERROR: record skip: %v", err)
	}

	s.broadcastLocked(SkippedMessage{Type: "skipped", Mode: msg.Mode, Answer: play.Answer})
	s.broadcastLocked(s.stateMessageLocked())
}

func (s *Session) handleSwapLocked(c *Client, msg ClientMessage) {
	pz, ok := s.puzzles[msg.Mode]
	if !ok {
		return
	}

	if err := pz.BeginDrag(msg.Source); err != nil {
		s.sendTo(c, SimpleMessage{Type: "swap_rejected", Message: err.Error()})
		return
	}
	if err := pz.CompleteDrop(msg.Source, msg.Target); err != nil {
		s.sendTo(c, SimpleMessage{Type: "swap_rejected", Message: err.Error()})
		return
	}

	s.broadcastLocked(PuzzleMessage{Type: "puzzle", Mode: msg.Mode, Puzzle: pz})
}

// closeAll disconnects all clients of this session (used by reaper).
func (s *Session) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for c := range s.clients {
		close(c.send)
		_ = c.conn.Close()
		delete(s.clients, c)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const playerCookieName = "quotevault_id"

func getOrSetPlayerID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(playerCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		log.Println("rand.Read error:", err)
		return ""
	}
	id := hex.EncodeToString(buf)

	http.SetCookie(w, &http.Cookie{
		Name:     playerCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}

// SessionManager holds all live sessions keyed by session ID, so each
// $path/$sessionid is its own isolated play-through.
type SessionManager struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	idleTimeout time.Duration
	store       *Store
}

func newSessionManager(idleTimeout time.Duration, store *Store) *SessionManager {
	sm := &SessionManager{
		sessions:    make(map[string]*Session),
		idleTimeout: idleTimeout,
		store:       store,
	}
	if idleTimeout > 0 {
		go sm.reaperLoop()
	}
	return sm
}

func (sm *SessionManager) getSession(cfg *Config, sessionID string) *Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if s, ok := sm.sessions[sessionID]; ok {
		return s
	}

	s := newSession(sessionID, sm.store)
	sm.sessions[sessionID] = s
	go s.run(cfg)
	return s
}

// newSessionID generates a crypto-random session ID and ensures it doesn't
// collide with live sessions.
func (sm *SessionManager) newSessionID() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	for {
		buf := make([]byte, 8)
		if _, err := rand.Read(buf); err != nil {
			panic("crypto/rand failure: " + err.Error())
		}
		out := make([]byte, 8)
		for i := range out {
			out[i] = letters[int(buf[i])%len(letters)]
		}
		id := string(out)

		sm.mu.Lock()
		_, exists := sm.sessions[id]
		sm.mu.Unlock()

		if !exists {
			return id
		}
	}
}

// reaperLoop periodically removes sessions idle longer than idleTimeout.
func (sm *SessionManager) reaperLoop() {
	ticker := time.NewTicker(sm.idleTimeout / 2)
	for range ticker.C {
		cutoff := time.Now().Add(-sm.idleTimeout)

		sm.mu.Lock()
		for id, s := range sm.sessions {
			s.mu.RLock()
			last := s.lastActive
			s.mu.RUnlock()

			if last.Before(cutoff) {
				delete(sm.sessions, id)
				go s.closeAll()
			}
		}
		sm.mu.Unlock()
	}
}

// WebSocket handler that picks the session based on :sessionid
func serveWSForSessions(cfg *Config, sm *SessionManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		sessionID := ps.ByName("sessionid")
		if sessionID == "" {
			http.Error(w, "missing session id", http.StatusBadRequest)
			return
		}

		playerID := getOrSetPlayerID(w, r)
		if playerID == "" {
			http.Error(w, "unable to assign player id", http.StatusInternalServerError)
			return
		}

		session := sm.getSession(cfg, sessionID)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}

		client := &Client{
			conn:     conn,
			send:     make(chan any, 8),
			playerID: playerID,
		}

		session.register <- client

		go client.writePump()
		client.readPump(session)
	}
}

func (c *Client) readPump(s *Session) {
	defer func() {
		s.unreg <- c
		_ = c.conn.Close()
	}()

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case "start", "guess", "hint", "skip", "swap":
			s.commands <- command{
				client: c,
				msg:    msg,
			}
		default:
			// ignore unknown types
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// QR handler: generates a PNG QR code for the current session URL using go-qrcode.
func qrHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sessionID := ps.ByName("sessionid")
	if sessionID == "" {
		http.Error(w, "missing session id", http.StatusBadRequest)
		return
	}

	// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	// We are at /.../:sessionid/qr; strip trailing "/qr" to get the session URL.
	path := strings.TrimSuffix(r.URL.Path, "/qr")

	url := scheme + "://" + r.Host + path

	const qrSize = 320 // mobile-friendly size
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

// ---- Static file paths ----

//go:embed quotevault/index.html
var indexHTML []byte

//go:embed quotevault/app.css
var quotevaultCSS []byte

//go:embed quotevault/app.js
var quotevaultJS []byte

func getIndexHandler(cfg *Config) func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_ = getOrSetPlayerID(w, r)

		_, _ = w.Write(indexHTML)
	}
}

func getCssHandler(cfg *Config) func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_, _ = w.Write(quotevaultCSS)
	}
}

func getJsHandler(cfg *Config) func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_, _ = w.Write(quotevaultJS)
	}
}

// redirectNewSession handles GET /path by generating a new random session ID
// (with server-side collision detection) and redirecting to /path/:sessionid.
func redirectNewSession(cfg *Config, path string, sm *SessionManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		sessionID := sm.newSessionID()
		logf(cfg, "PLAY: Created session %s/%s", path, sessionID)
		http.Redirect(w, r, path+"/"+sessionID, http.StatusTemporaryRedirect)
	}
}

// registerQuoteVault sets up routes so that:
//   - $path                     → redirects to a new random session (8-char ID)
//   - $path/:sessionid          → HTML client
//   - $path/:sessionid/ws       → WebSocket for that session
//   - $path/:sessionid/qr       → PNG QR code for that session URL
func registerQuoteVault(cfg *Config, path string, mux *httprouter.Router, sm *SessionManager) {
	base := cfg.prefix + path

	// Root path → redirect to new random session
	mux.GET(base, redirectNewSession(cfg, base, sm))

	// Per-session client view (HTML)
	mux.GET(base+"/:sessionid", getIndexHandler(cfg))

	// Shared assets (no sessionid in route)
	mux.GET(cfg.prefix+"/assets/quotevault/app.css", getCssHandler(cfg))
	mux.GET(cfg.prefix+"/assets/quotevault/app.js", getJsHandler(cfg))

	// Per-session websocket
	mux.GET(base+"/:sessionid/ws", serveWSForSessions(cfg, sm))

	// Per-session QR code
	mux.GET(base+"/:sessionid/qr", qrHandler)
}
