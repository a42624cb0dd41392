package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData drives a looping value, such as a portal's render scale.
type TweenData struct {
	Sequence *gween.Sequence
	Value    float32
}

var Tween = donburi.NewComponentType[TweenData]()
