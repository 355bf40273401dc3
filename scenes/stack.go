// Package scenes hosts the ebitengine scenes: play, pause and the level
// editor, layered on a stack.
package scenes

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit is returned from Update when the game should exit.
var ErrQuit = errors.New("quit")

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Overlay is implemented by scenes that draw over the scene below them.
type Overlay interface {
	Overlay() bool
}

// Stack layers scenes. Only the top scene updates; the top scene and every
// overlay run below it draw, bottom first.
type Stack struct {
	scenes []Scene
}

func NewStack(scenes ...Scene) *Stack {
	return &Stack{scenes: scenes}
}

func (s *Stack) Push(sc Scene) {
	s.scenes = append(s.scenes, sc)
	log.Debug("scene pushed", "depth", len(s.scenes))
}

// Pop removes the top scene and returns it, or nil when empty.
func (s *Stack) Pop() Scene {
	n := len(s.scenes)
	if n == 0 {
		return nil
	}
	top := s.scenes[n-1]
	s.scenes[n-1] = nil
	s.scenes = s.scenes[:n-1]
	log.Debug("scene popped", "depth", len(s.scenes))
	return top
}

func (s *Stack) Top() Scene {
	if len(s.scenes) == 0 {
		return nil
	}
	return s.scenes[len(s.scenes)-1]
}

func (s *Stack) Len() int {
	return len(s.scenes)
}

// Update runs the top scene. An empty stack quits.
func (s *Stack) Update() error {
	top := s.Top()
	if top == nil {
		return ErrQuit
	}
	return top.Update()
}

func (s *Stack) Draw(screen *ebiten.Image) {
	for _, sc := range s.scenes[s.firstVisible():] {
		sc.Draw(screen)
	}
}

// firstVisible is the lowest scene still showing through the overlays
// above it.
func (s *Stack) firstVisible() int {
	i := len(s.scenes) - 1
	for i > 0 {
		o, ok := s.scenes[i].(Overlay)
		if !ok || !o.Overlay() {
			break
		}
		i--
	}
	return max(i, 0)
}
