package components

import (
	"testing"

	cfg "github.com/automoto/huskyhunt/config"
	"github.com/automoto/huskyhunt/shared/gamemath"
	"github.com/automoto/huskyhunt/shared/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestAttachBodyTiesEntityToScene(t *testing.T) {
	w := donburi.NewWorld()
	scene := physics.NewScene()
	entry := w.Entry(w.Create(Enemy, Body))
	body := physics.NewHitbox(35, 35, gamemath.Vector{X: 10, Y: 10}, cfg.Red)

	AttachBody(w, entry, KindEnemy, body)
	scene.AddBody(body)

	ref, ok := RefOf(body)
	require.True(t, ok)
	assert.Equal(t, KindEnemy, ref.Kind)
	assert.Equal(t, entry.Entity(), ref.Entity)
	assert.Same(t, body, GetBody(entry))

	scene.Tick(0.1)
	assert.True(t, w.Valid(entry.Entity()))

	body.Remove()
	scene.Tick(0.1)
	assert.False(t, w.Valid(entry.Entity()))
	_, ok = ref.Entry(w)
	assert.False(t, ok)
}

func TestRefOfRejectsForeignPayload(t *testing.T) {
	body := physics.NewHitbox(1, 1, gamemath.Zero, cfg.Red)
	_, ok := RefOf(body)
	assert.False(t, ok)

	body.SetInfo("not a ref", nil)
	_, ok = RefOf(body)
	assert.False(t, ok)
}

func TestEntityKindString(t *testing.T) {
	assert.Equal(t, "enemy", KindEnemy.String())
	assert.Equal(t, "portal", KindPortal.String())
	assert.Equal(t, "unknown", EntityKind(42).String())
}
