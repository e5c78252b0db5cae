package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"recycling_games/internal/domain"
	"recycling_games/internal/game"
)

const (
	// How long a mismatched memory pair stays face up.
	mismatchDelay = time.Second
	// Pause between a correct classification and the next item.
	nextItemDelay = 500 * time.Millisecond

	clockInterval = time.Second
	recordTimeout = 5 * time.Second
)

var (
	ErrNoSession   = errors.New("no active session")
	ErrWrongGame   = errors.New("operation does not apply to this game")
	ErrUnknownGame = errors.New("unknown game type")
)

// ScoreRecorder is the slice of the persistence gateway the session
// shell needs.
type ScoreRecorder interface {
	RecordScore(ctx context.Context, playerName string, gameType domain.GameType, score int, timeTaken *int, completed bool) bool
}

// Session is one play-through of a single mini-game. It owns every
// timer attached to the game (one-second clock, mismatch resolution,
// next-item delay) and cancels them on teardown. All engine access is
// serialized through its mutex; engines themselves stay lock-free.
type Session struct {
	GameType   domain.GameType
	PlayerID   string
	PlayerName string

	mu       sync.Mutex
	engine   game.Engine
	torn     bool
	recorded bool

	done          chan struct{}
	mismatchTimer *time.Timer
	nextItemTimer *time.Timer

	scores ScoreRecorder
}

// SessionService is the game shell: it mounts at most one session per
// player; starting a new game tears the previous one down.
type SessionService struct {
	mu       sync.Mutex
	sessions map[string]*Session
	scores   ScoreRecorder
}

func NewSessionService(scores ScoreRecorder) *SessionService {
	return &SessionService{
		sessions: make(map[string]*Session),
		scores:   scores,
	}
}

// Start mounts a fresh session of gameType for the player, replacing
// and tearing down any session already mounted.
func (s *SessionService) Start(playerID, playerName string, gameType domain.GameType) (*Session, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var engine game.Engine
	switch gameType {
	case domain.GameTypeMemory:
		engine = game.NewMemoryGame(rng)
	case domain.GameTypeSorting:
		sorting := game.NewSortingGame(rng)
		sorting.Start()
		engine = sorting
	case domain.GameTypeQuiz:
		engine = game.NewQuizGame()
	case domain.GameTypeGuess:
		engine = game.NewGuessGame(rng)
	case domain.GameTypeTicTacToe:
		engine = game.NewTicTacToeGame()
	default:
		// Snake runs over the websocket endpoint, which owns its own
		// tick loop.
		return nil, ErrUnknownGame
	}

	sess := &Session{
		GameType:   gameType,
		PlayerID:   playerID,
		PlayerName: playerName,
		engine:     engine,
		done:       make(chan struct{}),
		scores:     s.scores,
	}

	s.mu.Lock()
	if old, ok := s.sessions[playerID]; ok {
		old.teardown()
	}
	s.sessions[playerID] = sess
	s.mu.Unlock()

	if clocked, ok := engine.(game.Clocked); ok {
		go sess.runClock(clocked)
	}

	sessionsStarted.WithLabelValues(string(gameType)).Inc()
	return sess, nil
}

// Get returns the player's mounted session, if any.
func (s *SessionService) Get(playerID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[playerID]
	if !ok {
		return nil, ErrNoSession
	}
	return sess, nil
}

// Teardown unmounts the player's session and cancels its timers.
func (s *SessionService) Teardown(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[playerID]; ok {
		sess.teardown()
		delete(s.sessions, playerID)
	}
}

func (sess *Session) runClock(clocked game.Clocked) {
	ticker := time.NewTicker(clockInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			sess.mu.Lock()
			if !sess.torn {
				clocked.Tick()
			}
			sess.mu.Unlock()
		case <-sess.done:
			return
		}
	}
}

// teardown cancels all pending timers. Callers hold the service lock;
// the session lock is taken to fence racing timer callbacks.
func (sess *Session) teardown() {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.torn {
		return
	}
	sess.torn = true
	close(sess.done)
	if sess.mismatchTimer != nil {
		sess.mismatchTimer.Stop()
	}
	if sess.nextItemTimer != nil {
		sess.nextItemTimer.Stop()
	}
}

// State returns the client-visible snapshot of the session.
func (sess *Session) State() map[string]any {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.engine.State()
}

// Reveal flips a memory card. A mismatch arms the resolution timer;
// reveals arriving before it fires are ignored by the engine.
func (sess *Session) Reveal(idx int) (game.RevealResult, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	mem, ok := sess.engine.(*game.MemoryGame)
	if !ok {
		return game.RevealIgnored, ErrWrongGame
	}
	if sess.torn {
		return game.RevealIgnored, ErrNoSession
	}

	result := mem.Reveal(idx)
	switch result {
	case game.RevealMismatched:
		sess.mismatchTimer = time.AfterFunc(mismatchDelay, func() {
			sess.mu.Lock()
			defer sess.mu.Unlock()
			if !sess.torn {
				mem.ResolveMismatch()
			}
		})
	case game.RevealWon:
		elapsed := mem.Elapsed()
		sess.finishLocked(true, &elapsed)
	}
	return result, nil
}

// Classify drops the current sorting item into a bin. A hit arms the
// next-item timer.
func (sess *Session) Classify(category string) (game.ClassifyResult, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sorting, ok := sess.engine.(*game.SortingGame)
	if !ok {
		return game.ClassifyIgnored, ErrWrongGame
	}
	if sess.torn {
		return game.ClassifyIgnored, ErrNoSession
	}

	result := sorting.Classify(category)
	switch result {
	case game.ClassifyCorrect:
		sess.nextItemTimer = time.AfterFunc(nextItemDelay, func() {
			sess.mu.Lock()
			defer sess.mu.Unlock()
			if !sess.torn {
				sorting.NextItem()
			}
		})
	case game.ClassifyWon:
		elapsed := sorting.Elapsed()
		sess.finishLocked(true, &elapsed)
	case game.ClassifyLost:
		elapsed := sorting.Elapsed()
		sess.finishLocked(false, &elapsed)
	}
	return result, nil
}

// Answer records the quiz answer for the current question.
func (sess *Session) Answer(option int) (game.AnswerResult, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	quiz, ok := sess.engine.(*game.QuizGame)
	if !ok {
		return game.AnswerIgnored, ErrWrongGame
	}
	if sess.torn {
		return game.AnswerIgnored, ErrNoSession
	}
	return quiz.Answer(option), nil
}

// Advance moves the quiz to the next question or the terminal state.
func (sess *Session) Advance() error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	quiz, ok := sess.engine.(*game.QuizGame)
	if !ok {
		return ErrWrongGame
	}
	if sess.torn {
		return ErrNoSession
	}

	quiz.Advance()
	if quiz.Status().Terminal() {
		sess.finishLocked(true, nil)
	}
	return nil
}

// Guess submits a number guess.
func (sess *Session) Guess(n int) (game.GuessOutcome, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	guess, ok := sess.engine.(*game.GuessGame)
	if !ok {
		return game.GuessInvalid, ErrWrongGame
	}
	if sess.torn {
		return game.GuessInvalid, ErrNoSession
	}

	outcome := guess.Guess(n)
	if outcome == game.GuessCorrect {
		sess.finishLocked(true, nil)
	}
	return outcome, nil
}

// Place puts the next mark on the tic-tac-toe board.
func (sess *Session) Place(idx int) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	ttt, ok := sess.engine.(*game.TicTacToeGame)
	if !ok {
		return ErrWrongGame
	}
	if sess.torn {
		return ErrNoSession
	}

	if err := ttt.Place(idx); err != nil {
		return err
	}
	if ttt.Status().Terminal() {
		sess.finishLocked(true, nil)
	}
	return nil
}

// finishLocked handles a terminal transition: metrics always, score
// persistence only for games with a persistence hook. The write runs
// off the request path; failures are logged by the gateway and do not
// reach the player.
func (sess *Session) finishLocked(completed bool, timeTaken *int) {
	if sess.recorded {
		return
	}
	sess.recorded = true

	sessionsFinished.WithLabelValues(string(sess.GameType), string(sess.engine.Status())).Inc()

	if !sess.GameType.Persisted() {
		return
	}

	score := sess.engine.Score()
	playerName := sess.PlayerName
	gameType := sess.GameType
	scores := sess.scores

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		scores.RecordScore(ctx, playerName, gameType, score, timeTaken, completed)
	}()
}
