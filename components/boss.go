package components

import "github.com/yohamta/donburi"

// BossData holds the boss's attack damage. Health lives in HealthData.
type BossData struct {
	Damage int
}

var Boss = donburi.NewComponentType[BossData]()
