package components

import (
	cfg "github.com/automoto/huskyhunt/config"
	"github.com/yohamta/donburi"
)

// PortalData tracks a phase portal. Active turns false once the player walks
// through it.
type PortalData struct {
	Type   cfg.PortalType
	Active bool
}

var Portal = donburi.NewComponentType[PortalData]()
