// Package session drives a Board from a checkbox-style view: it owns the
// cell matrix the user edits, the one Board built from it, and the
// autoplay schedule that advances that Board.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/scheduler"
)

const defaultInterval = 150 * time.Millisecond

// Frame is the view state after a generation
type Frame struct {
	// Epoch counts Boards built by the session; frames from a replaced
	// Board carry an older epoch
	Epoch      int
	Generation int
	Living     int
	Hash       string
	Cells      [][]bool
}

// TickObserver receives every frame produced by autoplay. It runs on the
// autoplay goroutine and should return once ctx is done.
type TickObserver func(ctx context.Context, frame Frame)

// Option configures a Session
type Option func(*Session)

// WithLogger sets the session logger
func WithLogger(logger log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithInterval sets the autoplay tick interval
func WithInterval(interval time.Duration) Option {
	return func(s *Session) {
		s.interval = interval
	}
}

// WithTickObserver registers a callback for autoplay frames
func WithTickObserver(observer TickObserver) Option {
	return func(s *Session) {
		s.observer = observer
	}
}

// Session holds the editable cells and exactly one active Board
type Session struct {
	mu       sync.Mutex
	cells    [][]bool
	board    *model.Board
	epoch    int
	ticker   scheduler.Ticker
	interval time.Duration
	observer TickObserver
	logger   log.Logger
}

// New creates a session over a copy of cells. No Board exists until Play.
func New(cells [][]bool, opts ...Option) (*Session, error) {
	if err := model.ValidateShape(cells); err != nil {
		return nil, errors.Wrap(err, "[session.New] rejected cells")
	}
	s := &Session{
		cells:    model.CloneMatrix(cells),
		interval: defaultInterval,
		logger:   log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Play replaces the active Board with a new one seeded from the current cells
func (s *Session) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playLocked()
}

// Load replaces the cells and starts a new Board from them
func (s *Session) Load(cells [][]bool) error {
	if err := model.ValidateShape(cells); err != nil {
		return errors.Wrap(err, "[Session.Load] rejected cells")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cells = model.CloneMatrix(cells)
	return s.playLocked()
}

func (s *Session) playLocked() error {
	board, err := model.NewBoardFromBools(s.cells)
	if err != nil {
		return errors.Wrap(err, "[Session.Play] failed to build board")
	}
	s.board = board
	s.epoch++
	level.Info(s.logger).Log(
		"msg", "new board",
		"width", board.Width(),
		"height", board.Height(),
		"living", board.CountLivingCells(),
		"epoch", s.epoch,
	)
	return nil
}

// Step advances the active Board once and copies the result back into the
// cells. With no active Board, one is first built from the cells.
func (s *Session) Step() (Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stepLocked()
}

func (s *Session) stepLocked() (Frame, error) {
	if s.board == nil {
		if err := s.playLocked(); err != nil {
			return Frame{}, err
		}
	}
	s.board.Advance()
	s.cells = model.ToBools(s.board.Current())
	return s.frameLocked(), nil
}

func (s *Session) frameLocked() Frame {
	frame := Frame{Epoch: s.epoch, Cells: model.CloneMatrix(s.cells)}
	if s.board != nil {
		frame.Generation = s.board.Generation()
		frame.Living = s.board.CountLivingCells()
		frame.Hash = s.board.Hash()
	}
	return frame
}

// Frame returns the current view state
func (s *Session) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frameLocked()
}

// Cells returns a copy of the editable cells
func (s *Session) Cells() [][]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CloneMatrix(s.cells)
}

// Toggle flips one cell. The active Board is unaffected until the next Play.
func (s *Session) Toggle(x, y int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if y < 0 || y >= len(s.cells) || x < 0 || x >= len(s.cells[y]) {
		return errors.Errorf("[Session.Toggle] cell out of range: (%d, %d)", x, y)
	}
	s.cells[y][x] = !s.cells[y][x]
	return nil
}

// SetAutoplay starts or stops advancing the Board every interval.
// Turning autoplay on while it is already on restarts the schedule.
func (s *Session) SetAutoplay(on bool) error {
	if !on {
		level.Info(s.logger).Log("msg", "autoplay off")
		return errors.Wrap(s.ticker.Stop(), "[Session.SetAutoplay] autoplay stopped with error")
	}
	level.Info(s.logger).Log("msg", "autoplay on", "interval", s.interval)
	return s.ticker.Start(context.Background(), s.interval, s.tick)
}

// Autoplay reports whether autoplay is on
func (s *Session) Autoplay() bool {
	return s.ticker.Running()
}

// Close stops autoplay
func (s *Session) Close() error {
	return errors.Wrap(s.ticker.Stop(), "[Session.Close] autoplay stopped with error")
}

func (s *Session) tick(ctx context.Context) error {
	frame, err := s.Step()
	if err != nil {
		return err
	}
	level.Debug(s.logger).Log("msg", "tick", "generation", frame.Generation, "living", frame.Living)
	if s.observer != nil {
		s.observer(ctx, frame)
	}
	return nil
}
