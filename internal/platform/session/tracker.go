// Package session follows one player's attempts across frontends. It turns
// the events of each tick into log lines and, when an attempt ends, a row in
// the attempt ledger.
package session

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/logging"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// Tracker observes a game and records finished attempts. The store may be
// nil, in which case attempts are only logged.
type Tracker struct {
	store        *storage.Store
	logger       *log.Logger
	player       string
	id           string
	attemptStart uint64
	recorded     int
}

// New creates a tracker. An empty id gets a fresh UUID.
func New(store *storage.Store, logger *log.Logger, player, id string) *Tracker {
	if id == "" {
		id = uuid.NewString()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Tracker{
		store:  store,
		logger: logger.With("session", id[:min(8, len(id))]),
		player: player,
		id:     id,
	}
}

// ID returns the session identifier.
func (t *Tracker) ID() string {
	return t.id
}

// Player returns the player name attached to recorded attempts.
func (t *Tracker) Player() string {
	return t.player
}

// Logger returns the session-scoped logger.
func (t *Tracker) Logger() *log.Logger {
	return t.logger
}

// Recorded returns how many attempts were written to the ledger.
func (t *Tracker) Recorded() int {
	return t.recorded
}

// Observe handles the result of one Step of g.
func (t *Tracker) Observe(g *flappy.Game, res core.StepResult) {
	ev := res.Events
	if ev.Has(core.EventStarted) || ev.Has(core.EventRestarted) {
		t.attemptStart = g.Tick()
		t.logger.Info("attempt started", "attempt", res.State.Attempt)
	}
	if ev.Has(core.EventSpawned) {
		t.logger.Debug("obstacle spawned", "tick", g.Tick())
	}
	if ev.Has(core.EventScored) {
		t.logger.Debug("obstacle passed", "score", res.State.Score)
	}
	if ev.Has(core.EventDied) {
		t.logger.Info("attempt over",
			"attempt", res.State.Attempt,
			"score", res.State.Score,
			"flaps", g.Avatar().Flaps,
		)
		t.record(g, res.State)
	}
	if ev.Has(core.EventHighScore) {
		t.logger.Info("new high score", "score", res.State.HighScore)
	}
}

// record adds the finished attempt to the ledger. Best-effort: the game
// continues if the ledger fails.
func (t *Tracker) record(g *flappy.Game, st core.GameState) {
	if t.store == nil {
		return
	}
	_, err := t.store.RecordAttempt(storage.Attempt{
		SessionID: t.id,
		Player:    t.player,
		Score:     st.Score,
		Flaps:     g.Avatar().Flaps,
		Ticks:     g.Tick() - t.attemptStart,
	})
	if err != nil {
		t.logger.Warn("could not record attempt", "error", err)
		return
	}
	t.recorded++
}
