package components

import (
	"log"
	"math"

	cfg "github.com/automoto/huskyhunt/config"
	"github.com/yohamta/donburi"
)

// PlayerData holds progression and weapon state. Health lives in HealthData.
type PlayerData struct {
	Damage     int
	Level      int
	Exp        int
	LevelScale int // Exp needed for the next level

	BulletsFired int     // Shots spent from the current magazine
	SinceReload  float64 // Seconds since the last reload started
}

// NewPlayerData returns a level 1 player with a full magazine.
func NewPlayerData() PlayerData {
	return PlayerData{
		Damage:     cfg.Player.Damage,
		Level:      1,
		LevelScale: cfg.Player.LevelScale,
		// Start fully reloaded so the first shot is available at once.
		SinceReload: cfg.Player.BulletCooldown,
	}
}

// GainExp awards experience for one kill.
func (p *PlayerData) GainExp() {
	p.Exp += cfg.Player.ExpPerKill
}

// LevelUp advances at most one level when enough experience has built up.
// On level-up health is restored and damage raised.
func (p *PlayerData) LevelUp(health *HealthData) bool {
	if p.Exp < p.LevelScale {
		return false
	}
	p.Exp -= p.LevelScale
	p.Level++
	p.LevelScale += cfg.Player.LevelScaleIncrease
	health.Current = cfg.Player.Health
	p.Damage += cfg.Player.DamagePerLevel
	log.Printf("Player reached level %d (damage %d)", p.Level, p.Damage)
	return true
}

// Ready reports whether a shot can be fired now.
func (p PlayerData) Ready() bool {
	return p.BulletsFired < cfg.Player.MaxBullets && p.SinceReload >= cfg.Player.BulletCooldown
}

// TryFire spends a bullet if one is ready. The last bullet of a magazine
// starts the reload.
func (p *PlayerData) TryFire() bool {
	if !p.Ready() {
		return false
	}
	p.BulletsFired++
	if p.BulletsFired >= cfg.Player.MaxBullets {
		p.SinceReload = 0
		p.BulletsFired = 0
	}
	return true
}

// BulletsLeft returns the bullets remaining in the magazine.
func (p PlayerData) BulletsLeft() int {
	return cfg.Player.MaxBullets - p.BulletsFired%cfg.Player.MaxBullets
}

// ReloadRemaining returns whole seconds left on the reload, rounded up.
func (p PlayerData) ReloadRemaining() int {
	return int(math.Ceil(cfg.Player.BulletCooldown - p.SinceReload))
}

var Player = donburi.NewComponentType[PlayerData]()
