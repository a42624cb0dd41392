package config

import (
	"image/color"

	"github.com/automoto/huskyhunt/shared/gamemath"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Spawn points. ResetPos is used when entering the boss arena.
	StartPos gamemath.Vector `yaml:"start_pos"`
	ResetPos gamemath.Vector `yaml:"reset_pos"`

	// Movement
	MoveStep float64 `yaml:"move_step"` // Velocity set per held WASD key

	// Combat
	Health         int     `yaml:"health"`
	MaxHealth      int     `yaml:"max_health"`
	Damage         int     `yaml:"damage"`
	DamagePerLevel int     `yaml:"damage_per_level"`
	MeleeRange     float64 `yaml:"melee_range"`

	// Ranged attack magazine
	MaxBullets     int     `yaml:"max_bullets"`
	BulletCooldown float64 `yaml:"bullet_cooldown"` // Seconds to reload after the last bullet

	// Leveling
	ExpPerKill         int `yaml:"exp_per_kill"`
	LevelScale         int `yaml:"level_scale"`          // Exp needed for the first level-up
	LevelScaleIncrease int `yaml:"level_scale_increase"` // Added to the threshold on each level-up

	// Projectile
	ProjectileWidth  float64 `yaml:"projectile_width"`
	ProjectileHeight float64 `yaml:"projectile_height"`
	ProjectileSpeed  float64 `yaml:"projectile_speed"`

	Color           color.RGBA `yaml:"-"`
	ProjectileColor color.RGBA `yaml:"-"`
}

// EnemyConfig contains configuration for the regular border-spawned enemies
type EnemyConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Damage int     `yaml:"damage"`

	// Movement
	Speed       float64 `yaml:"speed"`
	StopRadius  float64 `yaml:"stop_radius"` // Approach stops inside this distance
	DodgeSpeed  float64 `yaml:"dodge_speed"`
	DodgeRadius float64 `yaml:"dodge_radius"` // Player projectiles closer than this are dodged

	// Projectile
	ProjectileWidth  float64 `yaml:"projectile_width"`
	ProjectileHeight float64 `yaml:"projectile_height"`
	ProjectileSpeed  float64 `yaml:"projectile_speed"`

	Color           color.RGBA `yaml:"-"`
	ProjectileColor color.RGBA `yaml:"-"`
}

// BossConfig contains configuration for the boss and its special attacks
type BossConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Health int     `yaml:"health"`
	Damage int     `yaml:"damage"`

	NumProjectiles   int     `yaml:"num_projectiles"` // Per ring or ray attack
	ProjectileWidth  float64 `yaml:"projectile_width"`
	ProjectileHeight float64 `yaml:"projectile_height"`
	ProjectileSpeed  float64 `yaml:"projectile_speed"`
	RayLowBound      float64 `yaml:"ray_low_bound"` // Minimum speed added to every ray projectile

	Color           color.RGBA `yaml:"-"`
	ProjectileColor color.RGBA `yaml:"-"`
}

// PortalConfig contains configuration for the phase portals
type PortalConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Render pulse
	PulseScale  float32 `yaml:"pulse_scale"`
	PulsePeriod float32 `yaml:"pulse_period"` // Seconds for one grow or shrink

	Color color.RGBA `yaml:"-"`
}

// TimerConfig holds the cadence of spawns and attacks, in seconds
type TimerConfig struct {
	EnemySpawn  float64 `yaml:"enemy_spawn"`
	EnemyAttack float64 `yaml:"enemy_attack"`
	BossRing    float64 `yaml:"boss_ring"`
	BossRay     float64 `yaml:"boss_ray"`
}

// WorldConfig describes the fixed arena rectangle
type WorldConfig struct {
	Min gamemath.Vector `yaml:"min"`
	Max gamemath.Vector `yaml:"max"`
}

// Center returns the middle of the arena.
func (w WorldConfig) Center() gamemath.Vector {
	return w.Min.Add(w.Max).Scale(0.5)
}

// GameConfig holds state machine thresholds
type GameConfig struct {
	KillThreshold int `yaml:"kill_threshold"` // Kills before the boss portal opens
	TickRate      int `yaml:"tick_rate"`
}

// BarRect is a HUD rectangle in screen pixels
type BarRect struct {
	X, Y, W, H float64
}

// HUDConfig holds the layout of the proportional bars
type HUDConfig struct {
	HPBar      BarRect
	XPBar      BarRect
	BulletsBar BarRect
	BossBar    BarRect
	BarMargin  float64

	HPText      string
	XPText      string
	BulletsText string
	ReloadText  string
	LevelText   string

	HealthColor    color.RGBA
	DamageColor    color.RGBA
	ExpColor       color.RGBA
	EmptyColor     color.RGBA
	BulletColor    color.RGBA
	TextColor      color.RGBA
	BorderColor    color.RGBA
	BackgroundPlay color.RGBA
	BackgroundBoss color.RGBA
}

// MenuConfig holds the layout of the menu and game over screens
type MenuConfig struct {
	Title           string
	WinTitle        string
	LossTitle       string
	ButtonX         int
	ButtonY         int
	ButtonWidth     int
	ButtonHeight    int
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
}

// SpriteConfig maps actors to image paths in the asset directory
type SpriteConfig struct {
	Dir              string
	Player           string
	PlayerProjectile string
	Enemy            string
	EnemyProjectile  string
	Boss             string
	BossRing         string
	BossRay          string
	PortalBoss       string
	PortalEnd        string
}

// DebugConfig toggles developer helpers
type DebugConfig struct {
	ShowHitboxes bool `yaml:"show_hitboxes"`
	SkipMenu     bool `yaml:"skip_menu"`
}

type Config struct {
	Width  int
	Height int
}

var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Boss BossConfig
var Portal PortalConfig
var Timer TimerConfig
var World WorldConfig
var Game GameConfig
var HUD HUDConfig
var Menu MenuConfig
var Sprites SpriteConfig
var Debug DebugConfig

// Common colors
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red       = color.RGBA{R: 186, G: 7, B: 7, A: 255}
	Green     = color.RGBA{R: 20, G: 200, B: 5, A: 255}
	Blue      = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Grey      = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	Purple    = color.RGBA{R: 161, G: 73, B: 255, A: 185}
	LimeGreen = color.RGBA{R: 25, G: 230, B: 51, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	DarkGrass = color.RGBA{R: 40, G: 70, B: 40, A: 255}
	DarkSnow  = color.RGBA{R: 50, G: 55, B: 75, A: 255}
)

func init() {
	C = &Config{
		Width:  1000,
		Height: 500,
	}

	World = WorldConfig{
		Min: gamemath.Vector{X: 0, Y: 0},
		Max: gamemath.Vector{X: 1000, Y: 500},
	}

	Game = GameConfig{
		KillThreshold: 20,
		TickRate:      60,
	}

	Timer = TimerConfig{
		EnemySpawn:  3.0,
		EnemyAttack: 2.0,
		BossRing:    15.0,
		BossRay:     5.0,
	}

	// Player Config
	Player = PlayerConfig{
		Width:    35,
		Height:   35,
		StartPos: gamemath.Vector{X: 500, Y: 30},
		ResetPos: gamemath.Vector{X: 500, Y: 45},

		MoveStep: 80,

		Health:         100,
		MaxHealth:      100,
		Damage:         10,
		DamagePerLevel: 10,
		MeleeRange:     10,

		MaxBullets:     5,
		BulletCooldown: 3.0,

		ExpPerKill:         50,
		LevelScale:         100,
		LevelScaleIncrease: 50,

		ProjectileWidth:  22,
		ProjectileHeight: 10,
		ProjectileSpeed:  200,

		Color:           color.RGBA{R: 25, G: 25, B: 230, A: 255},
		ProjectileColor: LimeGreen,
	}

	// Enemy Config
	Enemy = EnemyConfig{
		Width:  35,
		Height: 35,
		Damage: 10,

		Speed:       75,
		StopRadius:  50,
		DodgeSpeed:  75,
		DodgeRadius: 200,

		ProjectileWidth:  20,
		ProjectileHeight: 10,
		ProjectileSpeed:  200,

		Color:           color.RGBA{R: 230, G: 25, B: 25, A: 255},
		ProjectileColor: Orange,
	}

	// Boss Config
	Boss = BossConfig{
		Width:  70,
		Height: 70,
		Health: 5000,
		Damage: 30,

		NumProjectiles:   12,
		ProjectileWidth:  20,
		ProjectileHeight: 20,
		ProjectileSpeed:  100,
		RayLowBound:      30,

		Color:           color.RGBA{R: 200, G: 200, B: 220, A: 255},
		ProjectileColor: LimeGreen,
	}

	Portal = PortalConfig{
		Width:       50,
		Height:      50,
		PulseScale:  1.15,
		PulsePeriod: 0.6,
		Color:       Black,
	}

	HUD = HUDConfig{
		HPBar:      BarRect{X: 260, Y: 10, W: 150, H: 23},
		XPBar:      BarRect{X: 425, Y: 10, W: 150, H: 23},
		BulletsBar: BarRect{X: 590, Y: 10, W: 150, H: 23},
		BossBar:    BarRect{X: (1000 - 30) / 2, Y: 290, W: 30, H: 5},
		BarMargin:  7,

		HPText:      "HP: %d/%d",
		XPText:      "XP: %d/%d",
		BulletsText: "Bullets: %d/%d",
		ReloadText:  "Reload: (%ds)",
		LevelText:   "Lv %d",

		HealthColor:    Green,
		DamageColor:    Red,
		ExpColor:       Purple,
		EmptyColor:     Grey,
		BulletColor:    Blue,
		TextColor:      White,
		BorderColor:    Black,
		BackgroundPlay: DarkGrass,
		BackgroundBoss: DarkSnow,
	}

	Menu = MenuConfig{
		Title:           "HUSKY HUNT",
		WinTitle:        "YOU WIN",
		LossTitle:       "YOU DIED",
		ButtonX:         1000/2 - 30,
		ButtonY:         440,
		ButtonWidth:     75,
		ButtonHeight:    38,
		BackgroundColor: color.RGBA{R: 20, G: 20, B: 30, A: 255},
		TitleColor:      White,
		TextColor:       color.RGBA{R: 180, G: 180, B: 180, A: 255},
	}

	Sprites = SpriteConfig{
		Dir:              "assets/images",
		Player:           "wizzy.png",
		PlayerProjectile: "playerattack.png",
		Enemy:            "zombie.png",
		EnemyProjectile:  "zombiebullet.png",
		Boss:             "husky.png",
		BossRing:         "bossshuriken.png",
		BossRay:          "bossray.png",
		PortalBoss:       "bossportal.png",
		PortalEnd:        "endportal.png",
	}

	Debug = DebugConfig{
		ShowHitboxes: false,
		SkipMenu:     false,
	}
}
