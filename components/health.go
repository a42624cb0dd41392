package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// TakeDamage subtracts d, stopping at zero.
func (h *HealthData) TakeDamage(d int) {
	if d >= h.Current {
		h.Current = 0
		return
	}
	h.Current -= d
}

// Dead reports whether health has run out.
func (h *HealthData) Dead() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()
