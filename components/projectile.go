package components

import (
	cfg "github.com/automoto/huskyhunt/config"
	"github.com/yohamta/donburi"
)

// ProjectileStyle picks the sprite a projectile is drawn with.
type ProjectileStyle int

const (
	StylePlayerShot ProjectileStyle = iota
	StyleEnemyShot
	StyleBossRing
	StyleBossRay
)

type ProjectileData struct {
	Damage  int
	Faction cfg.Faction
	Angle   float64 // Travel direction in radians
	Style   ProjectileStyle
}

var Projectile = donburi.NewComponentType[ProjectileData]()
