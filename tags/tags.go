package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Boss       = donburi.NewTag().SetName("Boss")
	Projectile = donburi.NewTag().SetName("Projectile")
	Portal     = donburi.NewTag().SetName("Portal")
)

// Resolv tags for the broadphase
const (
	ResolvEnemy  = "Enemy"
	ResolvBoss   = "Boss"
	ResolvPortal = "Portal"
	ResolvProbe  = "probe"
)
