package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// Phase is the screen the session is on.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "Start"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Command is a state-machine request issued from a menu.
type Command int

const (
	CommandNone Command = iota
	CommandStart
	CommandQuit
	CommandRestart
	CommandMenu
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandStart:
		return "Start"
	case CommandQuit:
		return "Quit"
	case CommandRestart:
		return "Restart"
	case CommandMenu:
		return "Menu"
	default:
		return "None"
	}
}

// menuCommands maps the two selector actions to commands per phase.
// Phases without an entry have no menu.
var menuCommands = map[Phase]map[core.Action]Command{
	PhaseStart: {
		core.ActionPrimary:   CommandStart,
		core.ActionSecondary: CommandQuit,
	},
	PhaseGameOver: {
		core.ActionPrimary:   CommandRestart,
		core.ActionSecondary: CommandMenu,
	},
}

// commandFor resolves a selector action in the given phase.
func commandFor(p Phase, a core.Action) Command {
	return menuCommands[p][a]
}

// apply runs a command against the session. Commands that do not belong to
// the current phase are ignored. Reports whether anything changed.
func (s *Session) apply(cmd Command) bool {
	switch {
	case cmd == CommandStart && s.phase == PhaseStart,
		cmd == CommandRestart && s.phase == PhaseGameOver:
		s.beginRun()
	case cmd == CommandQuit && s.phase == PhaseStart:
		s.quit = true
	case cmd == CommandMenu && s.phase == PhaseGameOver:
		s.phase = PhaseStart
	default:
		return false
	}
	return true
}

// beginRun resets the playfield and enters Playing.
func (s *Session) beginRun() {
	s.store.Clear()
	s.store.Ship = core.Vec2{X: s.cfg.Ship.StartX, Y: s.cfg.Ship.StartY}
	s.score = 0
	s.stats = Stats{}
	s.phase = PhasePlaying
}
