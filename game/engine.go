package game

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/simon-says/constants"
)

// Deps are the collaborators supplied by the host
// Nil ports are replaced with no-op adapters, Scheduler is required
type Deps struct {
	Presenter Presenter
	Audio     AudioCue
	Storage   Storage
	Scheduler Scheduler
	Observer  Observer
	Logger    *zap.Logger
	Rand      RandomSource
}

// RandomSource draws integers uniformly in [0, n), satisfied by *rand.Rand
type RandomSource interface {
	Intn(n int) int
}

// Snapshot is a read-only copy of engine state
type Snapshot struct {
	GameID      string
	Phase       GamePhase
	Sequence    []Action
	PlayerInput []Action
	Round       int
	Score       int
	HighScore   int
}

// Engine owns the round and sequence state of one player
// All methods must be called from the scheduler's thread of control
type Engine struct {
	presenter Presenter
	audio     AudioCue
	storage   Storage
	sched     Scheduler
	observer  Observer
	log       *zap.Logger
	rng       RandomSource

	phase     GamePhase
	sequence  []Action
	input     []Action
	round     int
	score     int
	highScore int
	gameID    string

	// Timer callbacks captured under an older generation are dropped
	gen       uint64
	closed    bool
	nextTimer uint64
	pending   map[uint64]func()

	saveMu    sync.Mutex
	persisted int
	saves     sync.WaitGroup
}

// NewEngine creates an idle engine
func NewEngine(d Deps) *Engine {
	if d.Scheduler == nil {
		panic("game: nil scheduler")
	}
	if d.Presenter == nil {
		d.Presenter = NopPresenter{}
	}
	if d.Audio == nil {
		d.Audio = NopAudio{}
	}
	if d.Storage == nil {
		d.Storage = NopStorage{}
	}
	if d.Observer == nil {
		d.Observer = NopObserver{}
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Engine{
		presenter: d.Presenter,
		audio:     d.Audio,
		storage:   d.Storage,
		sched:     d.Scheduler,
		observer:  d.Observer,
		log:       d.Logger,
		rng:       d.Rand,
		phase:     PhaseIdle,
		round:     1,
		pending:   make(map[uint64]func()),
	}
}

// Init loads the persisted high score and shows the title view
// A missing or unreadable score starts from zero
func (e *Engine) Init(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, constants.HighScoreLoadTimeout)
	defer cancel()

	high, err := e.storage.LoadHighScore(ctx)
	switch {
	case errors.Is(err, ErrNoHighScore):
		high = 0
	case err != nil:
		e.log.Warn("high score load failed", zap.Error(err))
		high = 0
	}
	if high < 0 {
		high = 0
	}

	e.highScore = high
	e.saveMu.Lock()
	e.persisted = high
	e.saveMu.Unlock()

	e.log.Info("engine ready", zap.Int("high_score", high))
	e.presenter.ShowView(ViewTitle)
}

// Start begins a new game, valid only from Idle or GameOver
func (e *Engine) Start() error {
	if e.closed || !e.phase.CanStart() {
		return ErrGameInProgress
	}

	e.invalidateTimers()

	e.sequence = nil
	e.input = nil
	e.round = 1
	e.score = 0
	e.gameID = uuid.New().String()[:8]

	e.transition(PhaseRoundTransition)
	e.presenter.ShowView(ViewPlay)
	e.presenter.UpdateRoundScore(e.round, e.score)
	e.observer.GameStarted(e.gameID)
	e.log.Info("game started", zap.String("game", e.gameID))

	e.schedule(constants.StartDelay, e.advanceRound)
	return nil
}

// HandleInput feeds one classified player action to the engine
func (e *Engine) HandleInput(a Action) {
	if e.closed || !a.Valid() {
		return
	}

	switch e.phase {
	case PhaseIdle, PhaseGameOver:
		if a == ActionButton {
			_ = e.Start()
			return
		}
		e.observer.InputIgnored(e.phase, a)
		return
	case PhaseAwaitingInput:
	default:
		// Replay and transitions discard input
		e.observer.InputIgnored(e.phase, a)
		return
	}

	e.input = append(e.input, a)
	e.presenter.EmitAction(a)
	e.audio.Play(a)

	pos := len(e.input) - 1
	if a != e.sequence[pos] {
		e.log.Debug("mismatch",
			zap.String("game", e.gameID),
			zap.Int("position", pos),
			zap.Stringer("expected", e.sequence[pos]),
			zap.Stringer("got", a))
		e.endGame()
		return
	}

	if len(e.input) == len(e.sequence) {
		e.completeRound()
	}
}

// Close cancels pending timers and waits for in-flight high score writes
func (e *Engine) Close() {
	if !e.closed {
		e.closed = true
		e.invalidateTimers()
	}
	e.saves.Wait()
}

// Phase returns the current phase
func (e *Engine) Phase() GamePhase {
	return e.phase
}

// HighScore returns the best score seen by this process
func (e *Engine) HighScore() int {
	return e.highScore
}

// Snapshot copies the current state
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		GameID:      e.gameID,
		Phase:       e.phase,
		Sequence:    append([]Action(nil), e.sequence...),
		PlayerInput: append([]Action(nil), e.input...),
		Round:       e.round,
		Score:       e.score,
		HighScore:   e.highScore,
	}
}

// advanceRound grows the sequence by one action and replays it
func (e *Engine) advanceRound() {
	e.input = e.input[:0]
	e.sequence = append(e.sequence, e.draw())

	e.presenter.UpdateRoundScore(e.round, e.score)
	e.transition(PhaseShowingSequence)
	e.log.Debug("round started",
		zap.String("game", e.gameID),
		zap.Int("round", e.round),
		zap.Int("length", len(e.sequence)))

	e.schedule(constants.ReplayLeadIn, e.beginReplay)
}

// draw picks an action uniformly, repeats allowed
func (e *Engine) draw() Action {
	return Actions[e.rng.Intn(len(Actions))]
}

func (e *Engine) beginReplay() {
	if e.phase != PhaseShowingSequence {
		return
	}
	e.presenter.ShowMessage(constants.MessageWatch)
	e.replayStep(0)
}

// replayStep shows sequence[i] and chains to the next step
func (e *Engine) replayStep(i int) {
	if i >= len(e.sequence) {
		e.schedule(constants.ReplayPostDelay, e.finishReplay)
		return
	}

	e.schedule(constants.ReplayPreDelay, func() {
		if e.phase != PhaseShowingSequence {
			return
		}
		a := e.sequence[i]
		e.presenter.EmitAction(a)
		e.audio.Play(a)

		e.schedule(constants.ReplayDisplay, func() {
			if e.phase != PhaseShowingSequence {
				return
			}
			e.presenter.HideAction()
			e.replayStep(i + 1)
		})
	})
}

func (e *Engine) finishReplay() {
	if e.phase != PhaseShowingSequence {
		return
	}
	e.input = e.input[:0]
	e.transition(PhaseAwaitingInput)
	e.presenter.ShowMessage(constants.MessageYourTurn)
}

func (e *Engine) completeRound() {
	e.transition(PhaseRoundTransition)
	e.score += len(e.sequence)
	e.round++

	e.observer.RoundCompleted(e.gameID, e.round-1, e.score)
	e.log.Debug("round complete",
		zap.String("game", e.gameID),
		zap.Int("round", e.round-1),
		zap.Int("score", e.score))

	e.schedule(constants.InterRoundDelay, e.advanceRound)
}

func (e *Engine) endGame() {
	e.invalidateTimers()
	e.transition(PhaseGameOver)
	e.audio.PlayError()

	newHigh := e.score > e.highScore
	if newHigh {
		e.highScore = e.score
		e.persist(e.score)
	}

	e.observer.GameEnded(e.gameID, e.score, e.highScore, newHigh)
	e.log.Info("game over",
		zap.String("game", e.gameID),
		zap.Int("score", e.score),
		zap.Int("high_score", e.highScore),
		zap.Bool("new_high", newHigh))

	score, high := e.score, e.highScore
	e.schedule(constants.GameOverDelay, func() {
		e.presenter.ShowGameOver(score, high)
		e.presenter.ShowView(ViewGameOver)
	})
}

// persist writes the high score in the background
// Writes are serialized and a lower value never overwrites a higher one
func (e *Engine) persist(score int) {
	e.saves.Add(1)
	go func() {
		defer e.saves.Done()
		defer func() {
			if r := recover(); r != nil {
				e.log.Error("high score save panicked", zap.Any("panic", r))
			}
		}()

		e.saveMu.Lock()
		defer e.saveMu.Unlock()
		if score <= e.persisted {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), constants.HighScoreSaveTimeout)
		defer cancel()
		if err := e.storage.SaveHighScore(ctx, score); err != nil {
			e.log.Warn("high score save failed", zap.Int("score", score), zap.Error(err))
			return
		}
		e.persisted = score
	}()
}

func (e *Engine) transition(to GamePhase) {
	if !CanTransition(e.phase, to) {
		e.log.Error("invalid phase transition",
			zap.Stringer("from", e.phase),
			zap.Stringer("to", to))
	}
	e.phase = to
}

// schedule registers fn under the current generation
func (e *Engine) schedule(d time.Duration, fn func()) {
	gen := e.gen
	id := e.nextTimer
	e.nextTimer++
	e.pending[id] = e.sched.After(d, func() {
		delete(e.pending, id)
		if e.closed || gen != e.gen {
			return
		}
		fn()
	})
}

// invalidateTimers bumps the generation and cancels every pending callback
func (e *Engine) invalidateTimers() {
	e.gen++
	for id, cancel := range e.pending {
		cancel()
		delete(e.pending, id)
	}
}
