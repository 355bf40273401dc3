package config

import (
	"image/color"

	"github.com/automoto/onionrun/shared/gamemath"
)

// Config holds display settings shared by the host and the camera.
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// PlayerConfig contains all player tuning. Durations are in ticks at 60 TPS.
type PlayerConfig struct {
	// Movement
	Speed        float64 `yaml:"speed"`
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	JumpImpulse  float64 `yaml:"jump_impulse"`

	// Jump forgiveness
	JumpBufferTicks float64 `yaml:"jump_buffer_ticks"`
	CoyoteTicks     float64 `yaml:"coyote_ticks"`

	// Damage reaction
	Knockback      gamemath.Vector `yaml:"knockback"` // X is a magnitude, sign comes from the hit side
	KnockbackTicks float64         `yaml:"knockback_ticks"`

	// Shooting
	ShootCooldownTicks float64 `yaml:"shoot_cooldown_ticks"`
	MuzzleOffset       float64 `yaml:"muzzle_offset"` // forward distance from the hitbox center

	// Hitbox offset and size relative to the sprite anchor
	Hitbox gamemath.Rect   `yaml:"hitbox"`
	Spawn  gamemath.Vector `yaml:"spawn"`

	// Presentation
	RunFPS            float64         `yaml:"run_fps"`
	LiftoffFPS        float64         `yaml:"liftoff_fps"`
	LiftoffOffset     gamemath.Vector `yaml:"liftoff_offset"`
	AirborneThreshold float64         `yaml:"airborne_threshold"`
}

// EnemyTypeConfig contains tuning for one enemy variant.
type EnemyTypeConfig struct {
	Name         string  `yaml:"name"`
	Health       int     `yaml:"health"`
	Speed        float64 `yaml:"speed"`
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	SearchRadius float64 `yaml:"search_radius"`
	InvulnTicks  float64 `yaml:"invuln_ticks"`

	Hitbox gamemath.Rect `yaml:"hitbox"`

	// Hurtbox is relative to the hitbox position while facing left.
	// A zero size means the variant has no melee hurtbox.
	Hurtbox      gamemath.Rect `yaml:"hurtbox"`
	HurtboxFrame int           `yaml:"hurtbox_frame"`

	// Ranged variants only
	ProjectileFrame     int     `yaml:"projectile_frame"`
	AttackCooldownTicks float64 `yaml:"attack_cooldown_ticks"`

	RunClip     string          `yaml:"run_clip"`
	AttackClip  string          `yaml:"attack_clip"`
	DeathClip   string          `yaml:"death_clip"`
	RunFPS      float64         `yaml:"run_fps"`
	AttackFPS   float64         `yaml:"attack_fps"`
	DeathFPS    float64         `yaml:"death_fps"`
	DeathOffset gamemath.Vector `yaml:"death_offset"`
}

// BulletConfig contains tuning for the player's bullets.
type BulletConfig struct {
	Speed         float64         `yaml:"speed"`
	LifetimeTicks float64         `yaml:"lifetime_ticks"`
	Size          gamemath.Vector `yaml:"size"`
	Clip          string          `yaml:"clip"`
	FPS           float64         `yaml:"fps"`
}

// ProjectileConfig contains tuning for lobbed enemy projectiles.
type ProjectileConfig struct {
	Speed   float64         `yaml:"speed"`
	Gravity float64         `yaml:"gravity"`
	Size    gamemath.Vector `yaml:"size"`
	Clip    string          `yaml:"clip"`
	FPS     float64         `yaml:"fps"`
}

// CameraConfig holds the horizontal dead zone as fractions of the viewport width.
type CameraConfig struct {
	DeadZoneLeft  float64 `yaml:"dead_zone_left"`
	DeadZoneRight float64 `yaml:"dead_zone_right"`
}

// LevelConfig holds level loading defaults.
type LevelConfig struct {
	Dir       string  `yaml:"dir"`
	Default   string  `yaml:"default"`
	CellSize  int     `yaml:"cell_size"`
	Thickness float64 `yaml:"boundary_thickness"`
}

// EditorConfig holds level editor settings.
type EditorConfig struct {
	GridSize    int                        `yaml:"grid_size"`
	PanSpeed    float64                    `yaml:"pan_speed"`
	ObjectSizes map[string]gamemath.Vector `yaml:"object_sizes"`
	MarkerSize  gamemath.Vector            `yaml:"marker_size"`
}

// PauseConfig holds pause menu layout and colours.
type PauseConfig struct {
	OverlayColor color.RGBA
	FadeSeconds  float32
	ButtonWidth  float64
	ButtonHeight float64
	ButtonGap    float64
	ButtonColor  color.RGBA
	ButtonHover  color.RGBA
	TextColor    color.RGBA
	MenuOptions  []string
}

// DebugConfig toggles debug rendering.
type DebugConfig struct {
	Hitboxes bool
}

var C *Config
var Player PlayerConfig
var Chaser EnemyTypeConfig
var Lobber EnemyTypeConfig
var Bullet BulletConfig
var Projectile ProjectileConfig
var Camera CameraConfig
var Level LevelConfig
var Editor EditorConfig
var Pause PauseConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
		Title:  "Onion Run",
	}

	Player = PlayerConfig{
		Speed:        2,
		Gravity:      0.1,
		MaxFallSpeed: 2,
		JumpImpulse:  3,

		JumpBufferTicks: 4,
		CoyoteTicks:     4,

		Knockback:      gamemath.Vec(1.5, -2),
		KnockbackTicks: 120,

		ShootCooldownTicks: 7,
		MuzzleOffset:       8,

		Hitbox: gamemath.R(9, 11, 14, 21),
		Spawn:  gamemath.Vec(32, 232),

		RunFPS:            11,
		LiftoffFPS:        11,
		LiftoffOffset:     gamemath.Vec(0, 0),
		AirborneThreshold: 0.5,
	}

	Chaser = EnemyTypeConfig{
		Name:         "chaser",
		Health:       3,
		Speed:        1,
		Gravity:      0.1,
		MaxFallSpeed: 3,
		SearchRadius: 200,
		InvulnTicks:  5,

		Hitbox:       gamemath.R(6, 9, 22, 23),
		Hurtbox:      gamemath.R(-5, 0, 10, 23),
		HurtboxFrame: 5,

		RunClip:     ClipOnionRun,
		AttackClip:  ClipOnionAttack,
		DeathClip:   ClipOnionDeath,
		RunFPS:      7,
		AttackFPS:   7,
		DeathFPS:    10,
		DeathOffset: gamemath.Vec(-8, -16),
	}

	Lobber = EnemyTypeConfig{
		Name:         "lobber",
		Health:       2,
		Speed:        0,
		Gravity:      0.1,
		MaxFallSpeed: 3,
		SearchRadius: 240,
		InvulnTicks:  5,

		Hitbox: gamemath.R(7, 11, 19, 22),

		ProjectileFrame:     3,
		AttackCooldownTicks: 45,

		RunClip:     ClipTomatoIdle,
		AttackClip:  ClipTomatoAttack,
		DeathClip:   ClipTomatoDeath,
		RunFPS:      6,
		AttackFPS:   8,
		DeathFPS:    10,
		DeathOffset: gamemath.Vec(-8, -16),
	}

	Bullet = BulletConfig{
		Speed:         5,
		LifetimeTicks: 60,
		Size:          gamemath.Vec(6, 4),
		Clip:          ClipPlayerBullet,
		FPS:           12,
	}

	Projectile = ProjectileConfig{
		Speed:   2,
		Gravity: 0.1,
		Size:    gamemath.Vec(8, 8),
		Clip:    ClipTomatoProjectile,
		FPS:     12,
	}

	Camera = CameraConfig{
		DeadZoneLeft:  0.4,
		DeadZoneRight: 0.6,
	}

	Level = LevelConfig{
		Dir:       "levels",
		Default:   "level1",
		CellSize:  32,
		Thickness: 1,
	}

	Editor = EditorConfig{
		GridSize: 16,
		PanSpeed: 4,
		ObjectSizes: map[string]gamemath.Vector{
			"floor":    gamemath.Vec(128, 16),
			"platform": gamemath.Vec(48, 8),
		},
		MarkerSize: gamemath.Vec(32, 32),
	}

	Pause = PauseConfig{
		OverlayColor: color.RGBA{0, 0, 0, 160},
		FadeSeconds:  0.2,
		ButtonWidth:  160,
		ButtonHeight: 32,
		ButtonGap:    12,
		ButtonColor:  color.RGBA{60, 60, 60, 255},
		ButtonHover:  color.RGBA{110, 110, 110, 255},
		TextColor:    color.RGBA{255, 255, 255, 255},
		MenuOptions:  []string{"Resume", "Sound", "Exit"},
	}

	Debug = DebugConfig{}
}
