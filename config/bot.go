package config

// BotDifficulty affects how quickly and how aggressively the autopilot plays
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// String returns the difficulty name used by the headless runner flags.
func (d BotDifficulty) String() string {
	switch d {
	case BotDifficultyEasy:
		return "easy"
	case BotDifficultyNormal:
		return "normal"
	case BotDifficultyHard:
		return "hard"
	}
	return "unknown"
}

// ParseBotDifficulty maps a flag value to a difficulty, defaulting to normal.
func ParseBotDifficulty(s string) BotDifficulty {
	switch s {
	case "easy":
		return BotDifficultyEasy
	case "hard":
		return BotDifficultyHard
	}
	return BotDifficultyNormal
}

// BotDifficultyConfig holds tuning values for the autopilot at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay    int     // Ticks between decisions
	MeleeRange       float64 // Enemy distance that triggers a melee swing
	FireRange        float64 // Max distance to shoot at a target
	RetreatThreshold float64 // Health ratio below which the bot backs away
}

// BotConfigData holds all autopilot configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds autopilot configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay:    30, // 0.5 second at 60 ticks
				MeleeRange:       40.0,
				FireRange:        300.0,
				RetreatThreshold: 0.2,
			},
			BotDifficultyNormal: {
				ReactionDelay:    15,
				MeleeRange:       60.0,
				FireRange:        500.0,
				RetreatThreshold: 0.3,
			},
			BotDifficultyHard: {
				ReactionDelay:    5,
				MeleeRange:       60.0,
				FireRange:        1200.0,
				RetreatThreshold: 0.15,
			},
		},
	}
}
