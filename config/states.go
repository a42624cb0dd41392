package config

// GameStateID identifies the top-level phase of a run.
type GameStateID int

const (
	StateMenu GameStateID = iota
	StatePlaying
	StateBossPhase
	StateWin
	StateLoss
)

var gameStateNames = map[GameStateID]string{
	StateMenu:      "menu",
	StatePlaying:   "playing",
	StateBossPhase: "boss",
	StateWin:       "win",
	StateLoss:      "loss",
}

func (s GameStateID) String() string {
	if name, ok := gameStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsCombat reports whether the simulation is live in this state.
func (s GameStateID) IsCombat() bool {
	return s == StatePlaying || s == StateBossPhase
}

// IsGameOver reports whether the run has ended.
func (s GameStateID) IsGameOver() bool {
	return s == StateWin || s == StateLoss
}

// PortalType selects where a portal leads.
type PortalType int

const (
	PortalBoss PortalType = iota // Opens the boss arena
	PortalEnd                    // Ends the run in a win
)

func (p PortalType) String() string {
	if p == PortalEnd {
		return "end"
	}
	return "boss"
}

// Faction tags who fired a projectile and therefore who it can hurt.
type Faction int

const (
	FactionPlayer Faction = iota
	FactionMob
)

func (f Faction) String() string {
	if f == FactionMob {
		return "mob"
	}
	return "player"
}
