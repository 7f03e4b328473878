package engine

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tatianab/island/internal/models"
	"github.com/tatianab/island/internal/world"
)

type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
	StatusQuit
)

func (s Status) String() string {
	switch s {
	case StatusWon:
		return "WON"
	case StatusLost:
		return "LOST"
	case StatusQuit:
		return "QUIT"
	default:
		return "PLAYING"
	}
}

// Terminal reports whether the session has ended.
func (s Status) Terminal() bool {
	return s != StatusPlaying
}

// Game is one play session: the island, the player and the turn state.
// It is not safe for concurrent use.
type Game struct {
	id       string
	island   *world.Island
	current  *models.Room
	player   *models.Player
	finished bool
	hasGold  bool
	status   Status
	turns    int
	logger   *zap.Logger
}

type Option func(*Game)

func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

func NewGame(opts ...Option) *Game {
	island := world.Build()
	g := &Game{
		id:      uuid.NewString(),
		island:  island,
		current: island.Start,
		player:  models.NewPlayer(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With(zap.String("session", g.id))
	g.logger.Info("session started", zap.String("room", g.current.Name()))
	return g
}

func (g *Game) ID() string                { return g.id }
func (g *Game) Status() Status            { return g.status }
func (g *Game) Finished() bool            { return g.finished }
func (g *Game) HasGold() bool             { return g.hasGold }
func (g *Game) Turns() int                { return g.turns }
func (g *Game) Player() *models.Player    { return g.player }
func (g *Game) CurrentRoom() *models.Room { return g.current }
func (g *Game) Island() *world.Island     { return g.island }

// Result is what one command produced.
type Result struct {
	Output  string
	Err     error
	Decayed bool
	Status  Status
}

type turn struct {
	out   strings.Builder
	decay bool
}

func (t *turn) say(s string) {
	t.out.WriteString(s)
	t.out.WriteString("\n")
}

// Execute runs one input line against the session and evaluates the win
// and loss conditions afterwards.
func (g *Game) Execute(line string) Result {
	if g.status.Terminal() {
		err := fail(ErrGameOver, "The game is over. Start a new one to play again.")
		return Result{Output: err.Error() + "\n", Err: err, Status: g.status}
	}

	cmd := Parse(line)
	t := &turn{}
	err := g.dispatch(t, cmd)
	if err != nil {
		t.say(err.Error())
	}
	if t.decay {
		g.player.Decay()
	}
	g.turns++

	if !g.finished {
		g.checkStatus(t)
	}

	g.logger.Debug("turn",
		zap.String("verb", cmd.Verb),
		zap.String("arg", cmd.Arg),
		zap.Bool("decayed", t.decay),
		zap.Int("water", g.player.Water()),
		zap.Int("food", g.player.Food()),
		zap.String("room", g.current.Name()),
		zap.Stringer("status", g.status),
		zap.Error(err),
	)
	if g.status.Terminal() {
		g.logger.Info("session ended", zap.Stringer("status", g.status), zap.Int("turns", g.turns))
	}

	return Result{Output: t.out.String(), Err: err, Decayed: t.decay, Status: g.status}
}

func (g *Game) dispatch(t *turn, cmd Command) error {
	entry, ok := lookupCommand(cmd.Verb)
	if !ok {
		return fail(ErrUnknownCommand, "Command not recognized. Type 'help' for help.")
	}
	if entry.missing != "" && cmd.Arg == "" {
		return fail(ErrMissingArgument, entry.missing)
	}
	t.decay = entry.decays
	return entry.handler(g, t, cmd.Arg)
}

// checkStatus runs the win check and then the loss check. Both may fire on
// the same turn; the loss wins.
func (g *Game) checkStatus(t *turn) {
	if g.hasGold && g.current.Is(world.Beach) {
		t.say(victoryBanner)
		g.status = StatusWon
		g.finished = true
	}

	if !g.player.Alive() {
		t.say(defeatBanner)
		if g.player.Water() <= 0 {
			t.say("You died of thirst...")
		} else if g.player.Food() <= 0 {
			t.say("You died of hunger...")
		}
		g.status = StatusLost
		g.finished = true
	}
}

// Snapshot returns a read-only view of the session.
func (g *Game) Snapshot() models.Snapshot {
	return models.Snapshot{
		SessionID:    g.id,
		Room:         g.current.Name(),
		Exits:        g.current.Directions(),
		ItemsHere:    g.current.ItemNames(),
		AnimalsHere:  g.current.LiveAnimalNames(),
		Inventory:    g.player.Inventory(),
		Water:        g.player.Water(),
		Food:         g.player.Food(),
		BottleFilled: g.player.BottleFilled(),
		Alive:        g.player.Alive(),
		Turns:        g.turns,
		Status:       g.status.String(),
	}
}
