package config

// Clip names. Sprite sheets are looked up as <name>.png in the sprite directory.
const (
	ClipPlayerRun        = "player_run"
	ClipPlayerJump       = "player_jump"
	ClipPlayerLiftoff    = "player_liftoff"
	ClipPlayerBullet     = "player_bullet"
	ClipOnionRun         = "onion_run"
	ClipOnionAttack      = "onion_attack"
	ClipOnionDeath       = "onion_death"
	ClipTomatoIdle       = "tomato_idle"
	ClipTomatoAttack     = "tomato_attack"
	ClipTomatoDeath      = "tomato_death"
	ClipTomatoProjectile = "tomato_projectile"
)

// ClipDef describes a horizontal sprite strip.
type ClipDef struct {
	Frames      int
	FrameWidth  int
	FrameHeight int
	// OneShot clips report completion after their last frame; looping clips never do.
	OneShot bool
	// Flash clips get a white silhouette set for the damage flash.
	Flash bool
}

// Clips is the default clip table. The asset registry overrides the frame
// count from the loaded sheet width when an image is present.
var Clips = map[string]ClipDef{
	ClipPlayerRun:        {Frames: 8, FrameWidth: 32, FrameHeight: 32},
	ClipPlayerJump:       {Frames: 3, FrameWidth: 32, FrameHeight: 32},
	ClipPlayerLiftoff:    {Frames: 6, FrameWidth: 32, FrameHeight: 32, OneShot: true},
	ClipPlayerBullet:     {Frames: 2, FrameWidth: 6, FrameHeight: 4},
	ClipOnionRun:         {Frames: 8, FrameWidth: 32, FrameHeight: 32, Flash: true},
	ClipOnionAttack:      {Frames: 8, FrameWidth: 32, FrameHeight: 32, OneShot: true, Flash: true},
	ClipOnionDeath:       {Frames: 6, FrameWidth: 48, FrameHeight: 48, OneShot: true},
	ClipTomatoIdle:       {Frames: 4, FrameWidth: 32, FrameHeight: 32, Flash: true},
	ClipTomatoAttack:     {Frames: 6, FrameWidth: 32, FrameHeight: 32, OneShot: true, Flash: true},
	ClipTomatoDeath:      {Frames: 6, FrameWidth: 48, FrameHeight: 48, OneShot: true},
	ClipTomatoProjectile: {Frames: 4, FrameWidth: 8, FrameHeight: 8},
}
