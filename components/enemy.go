package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	Damage int
}

var Enemy = donburi.NewComponentType[EnemyData]()
