package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrides mirrors the tunable sections of the config. Only keys present in
// the file replace the defaults set in init.
type overrides struct {
	Player PlayerConfig `yaml:"player"`
	Enemy  EnemyConfig  `yaml:"enemy"`
	Boss   BossConfig   `yaml:"boss"`
	Portal PortalConfig `yaml:"portal"`
	Timer  TimerConfig  `yaml:"timer"`
	World  WorldConfig  `yaml:"world"`
	Game   GameConfig   `yaml:"game"`
	Debug  DebugConfig  `yaml:"debug"`
}

// LoadOverrides reads a YAML file and merges it over the current values.
// An empty path is a no-op.
func LoadOverrides(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return ApplyOverrides(data)
}

// ApplyOverrides merges YAML bytes over the current values. On error nothing
// is changed.
func ApplyOverrides(data []byte) error {
	o := overrides{
		Player: Player,
		Enemy:  Enemy,
		Boss:   Boss,
		Portal: Portal,
		Timer:  Timer,
		World:  World,
		Game:   Game,
		Debug:  Debug,
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if err := o.validate(); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	Player = o.Player
	Enemy = o.Enemy
	Boss = o.Boss
	Portal = o.Portal
	Timer = o.Timer
	World = o.World
	Game = o.Game
	Debug = o.Debug
	return nil
}

// validate rejects values the simulation divides by or builds bodies from.
func (o *overrides) validate() error {
	positiveInts := []struct {
		key   string
		value int
	}{
		{"game.kill_threshold", o.Game.KillThreshold},
		{"game.tick_rate", o.Game.TickRate},
		{"player.max_bullets", o.Player.MaxBullets},
		{"player.level_scale", o.Player.LevelScale},
		{"player.health", o.Player.Health},
		{"player.max_health", o.Player.MaxHealth},
		{"boss.health", o.Boss.Health},
		{"boss.num_projectiles", o.Boss.NumProjectiles},
	}
	for _, f := range positiveInts {
		if f.value <= 0 {
			return fmt.Errorf("%s must be positive, got %d", f.key, f.value)
		}
	}

	positiveFloats := []struct {
		key   string
		value float64
	}{
		{"player.bullet_cooldown", o.Player.BulletCooldown},
		{"player.width", o.Player.Width},
		{"player.height", o.Player.Height},
		{"player.projectile_width", o.Player.ProjectileWidth},
		{"player.projectile_height", o.Player.ProjectileHeight},
		{"enemy.width", o.Enemy.Width},
		{"enemy.height", o.Enemy.Height},
		{"enemy.projectile_width", o.Enemy.ProjectileWidth},
		{"enemy.projectile_height", o.Enemy.ProjectileHeight},
		{"boss.width", o.Boss.Width},
		{"boss.height", o.Boss.Height},
		{"boss.projectile_width", o.Boss.ProjectileWidth},
		{"boss.projectile_height", o.Boss.ProjectileHeight},
		{"portal.width", o.Portal.Width},
		{"portal.height", o.Portal.Height},
		{"portal.pulse_period", float64(o.Portal.PulsePeriod)},
		{"timer.enemy_spawn", o.Timer.EnemySpawn},
		{"timer.enemy_attack", o.Timer.EnemyAttack},
		{"timer.boss_ring", o.Timer.BossRing},
		{"timer.boss_ray", o.Timer.BossRay},
	}
	for _, f := range positiveFloats {
		if !(f.value > 0) {
			return fmt.Errorf("%s must be positive, got %g", f.key, f.value)
		}
	}

	if o.World.Max.X <= o.World.Min.X || o.World.Max.Y <= o.World.Min.Y {
		return fmt.Errorf("empty world rectangle %v-%v", o.World.Min, o.World.Max)
	}
	return nil
}
