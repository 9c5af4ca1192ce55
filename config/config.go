// Package config loads game tuning from TOML over built-in defaults
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-arena/arena"
	"github.com/lixenwraith/vi-arena/combat"
	"github.com/lixenwraith/vi-arena/network"
	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/system"
	"github.com/lixenwraith/vi-arena/vmath"
)

// ErrInvalid wraps every validation and unknown-key failure
var ErrInvalid = errors.New("invalid config")

// Config is the root of the TOML document
type Config struct {
	Player     PlayerSection     `toml:"player"`
	Projectile ProjectileSection `toml:"projectile"`
	Physics    PhysicsSection    `toml:"physics"`
	Arena      ArenaSection      `toml:"arena"`
	Audio      AudioSection      `toml:"audio"`
	Spectator  SpectatorSection  `toml:"spectator"`
}

type PlayerSection struct {
	Width        float64       `toml:"width"`
	Height       float64       `toml:"height"`
	Health       uint16        `toml:"health"`
	Cooldown     time.Duration `toml:"cooldown"`
	JumpForce    float64       `toml:"jump_force"`
	MoveAccel    float64       `toml:"move_accel"`
	MaxMoveSpeed float64       `toml:"max_move_speed"`
	Damping      float64       `toml:"damping"`
}

type ProjectileSection struct {
	Speed    float64       `toml:"speed"`
	Damage   uint16        `toml:"damage"`
	Width    float64       `toml:"width"`
	Height   float64       `toml:"height"`
	Lifetime time.Duration `toml:"lifetime"`
}

type PhysicsSection struct {
	// Gravity is the vertical acceleration in world units/s², negative pulls down
	Gravity      float64       `toml:"gravity"`
	TickInterval time.Duration `toml:"tick_interval"`
}

type ArenaSection struct {
	Diameter       float64 `toml:"diameter"`
	FloorThickness float64 `toml:"floor_thickness"`
	CullMargin     float64 `toml:"cull_margin"`
	Targets        int     `toml:"targets"`
	TargetHealth   uint16  `toml:"target_health"`
}

type AudioSection struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

type SpectatorSection struct {
	// Address enables the websocket spectator feed when non-empty
	Address      string `toml:"address"`
	PublishEvery int    `toml:"publish_every"`
	MaxPeers     int    `toml:"max_peers"`
	SendQueue    int    `toml:"send_queue"`
}

// Default returns the built-in configuration
func Default() *Config {
	net := network.DefaultConfig()
	return &Config{
		Player: PlayerSection{
			Width:        parameter.PlayerWidth,
			Height:       parameter.PlayerHeight,
			Health:       parameter.PlayerStartingHealth,
			Cooldown:     parameter.PlayerAttackCooldown,
			JumpForce:    parameter.JumpForce,
			MoveAccel:    parameter.MoveAccel,
			MaxMoveSpeed: parameter.MaxMoveSpeed,
			Damping:      parameter.MovementDampingFactor,
		},
		Projectile: ProjectileSection{
			Speed:    parameter.ProjectileSpeed,
			Damage:   parameter.ProjectileDamage,
			Width:    parameter.ProjectileWidth,
			Height:   parameter.ProjectileHeight,
			Lifetime: parameter.ProjectileLifetime,
		},
		Physics: PhysicsSection{
			Gravity:      parameter.Gravity,
			TickInterval: parameter.GameUpdateInterval,
		},
		Arena: ArenaSection{
			Diameter:       parameter.ArenaDiameter,
			FloorThickness: parameter.FloorThickness,
			CullMargin:     parameter.ArenaCullMargin,
			Targets:        parameter.TargetCount,
			TargetHealth:   parameter.TargetHealth,
		},
		Audio: AudioSection{
			Enabled: true,
			Volume:  parameter.DefaultMasterVolume,
		},
		Spectator: SpectatorSection{
			PublishEvery: parameter.SpectatorPublishEvery,
			MaxPeers:     net.MaxPeers,
			SendQueue:    net.SendQueueSize,
		},
	}
}

// Load decodes path over the defaults; an empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive")
	check(c.Player.Health > 0, "player health must be positive")
	check(c.Player.Cooldown >= 0, "player cooldown %v is negative", c.Player.Cooldown)
	check(c.Player.MaxMoveSpeed > 0, "player max_move_speed must be positive")
	check(c.Player.Damping > 0 && c.Player.Damping <= 1, "player damping %v outside (0, 1]", c.Player.Damping)

	check(c.Projectile.Speed > 0, "projectile speed must be positive")
	check(c.Projectile.Width > 0 && c.Projectile.Height > 0, "projectile size must be positive")
	check(c.Projectile.Lifetime >= 0, "projectile lifetime is negative")

	check(c.Physics.TickInterval > 0, "physics tick_interval must be positive")

	check(c.Arena.Diameter > 0, "arena diameter must be positive")
	check(c.Arena.FloorThickness > 0, "arena floor_thickness must be positive")
	check(c.Arena.Targets >= 0, "arena targets is negative")
	check(c.Arena.TargetHealth > 0, "arena target_health must be positive")

	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio volume %v outside [0, 1]", c.Audio.Volume)

	check(c.Spectator.PublishEvery > 0, "spectator publish_every must be positive")
	check(c.Spectator.SendQueue > 0, "spectator send_queue must be positive")

	return errors.Join(errs...)
}

// ArenaConfig maps the arena and player sections for arena.Build
func (c *Config) ArenaConfig() arena.Config {
	return arena.Config{
		Diameter:       c.Arena.Diameter,
		FloorThickness: c.Arena.FloorThickness,
		CullMargin:     c.Arena.CullMargin,
		PlayerSize:     vmath.V2(c.Player.Width, c.Player.Height),
		PlayerHealth:   c.Player.Health,
		PlayerCooldown: c.Player.Cooldown,
		Damping:        c.Player.Damping,
		TargetCount:    c.Arena.Targets,
		TargetSize:     vmath.V2(parameter.TargetWidth, parameter.TargetHeight),
		TargetHealth:   c.Arena.TargetHealth,
	}
}

// ProjectileConfig maps the projectile section for combat.NewSpawner
func (c *Config) ProjectileConfig() combat.ProjectileConfig {
	return combat.ProjectileConfig{
		Speed:    c.Projectile.Speed,
		Damage:   c.Projectile.Damage,
		Size:     vmath.V2(c.Projectile.Width, c.Projectile.Height),
		Lifetime: c.Projectile.Lifetime,
	}
}

// PlayerConfig maps locomotion tuning for system.NewPlayerSystem
func (c *Config) PlayerConfig() system.PlayerConfig {
	return system.PlayerConfig{
		JumpForce:    c.Player.JumpForce,
		MoveAccel:    c.Player.MoveAccel,
		MaxMoveSpeed: c.Player.MaxMoveSpeed,
	}
}

// NetworkConfig maps the spectator section for network.NewHub
func (c *Config) NetworkConfig() *network.Config {
	cfg := network.DefaultConfig()
	cfg.Address = c.Spectator.Address
	cfg.MaxPeers = c.Spectator.MaxPeers
	cfg.SendQueueSize = c.Spectator.SendQueue
	return cfg
}

// Gravity returns the gravity vector for physics.NewSpace
func (c *Config) Gravity() vmath.Vec2 {
	return vmath.V2(0, c.Physics.Gravity)
}
