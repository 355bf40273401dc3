package level

import (
	"github.com/automoto/onionrun/actors"
	"github.com/automoto/onionrun/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SoundCue asks the host to play a named sound.
type SoundCue struct {
	Name string
}

// EnemyKilled is published once when an enemy is swept.
type EnemyKilled struct {
	Kind     actors.Kind
	Position gamemath.Vector
}

var (
	SoundEvent       = events.NewEventType[SoundCue]()
	EnemyKilledEvent = events.NewEventType[EnemyKilled]()
)

// Events queues notifications raised during a tick and hands them to
// subscribers when the tick ends.
type Events struct {
	world donburi.World
}

func NewEvents() *Events {
	return &Events{world: donburi.NewWorld()}
}

func (e *Events) OnSound(fn func(SoundCue)) {
	SoundEvent.Subscribe(e.world, func(_ donburi.World, cue SoundCue) {
		fn(cue)
	})
}

func (e *Events) OnEnemyKilled(fn func(EnemyKilled)) {
	EnemyKilledEvent.Subscribe(e.world, func(_ donburi.World, ev EnemyKilled) {
		fn(ev)
	})
}

func (e *Events) publishSound(name string) {
	SoundEvent.Publish(e.world, SoundCue{Name: name})
}

func (e *Events) publishKill(ev EnemyKilled) {
	EnemyKilledEvent.Publish(e.world, ev)
}

// Dispatch delivers everything queued since the last call.
func (e *Events) Dispatch() {
	SoundEvent.ProcessEvents(e.world)
	EnemyKilledEvent.ProcessEvents(e.world)
}
