package system

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/GamaDu30/Day-and-Night/ecs"
	"github.com/GamaDu30/Day-and-Night/prefabs"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

var ErrUnknownSound = errors.New("audio: unknown sound event")

// SoundLoader opens an audio asset by path.
type SoundLoader func(path string) (*audio.Player, error)

// LoadSounds opens one player per audio entry. Every entry must name a known
// event and load, a missing sound is an error.
func LoadSounds(specs []prefabs.AudioSpec, load SoundLoader) (map[ecs.EventKind]Sound, error) {
	sounds := make(map[ecs.EventKind]Sound, len(specs))
	for _, s := range specs {
		kind := ecs.EventKind(s.Name)
		if !slices.Contains(ecs.EventKinds, kind) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSound, s.Name)
		}
		p, err := load(s.File)
		if err != nil {
			return nil, fmt.Errorf("audio: load %s (%s): %w", s.Name, s.File, err)
		}
		sounds[kind] = Sound{Player: p, Volume: s.Volume}
	}
	return sounds, nil
}

// Sound is a loaded one-shot.
type Sound struct {
	Player *audio.Player
	Volume float64
}

// AudioSystem plays a one-shot per drained event. It must run after every
// system that emits events.
type AudioSystem struct {
	sounds map[ecs.EventKind]Sound
}

func NewAudioSystem(sounds map[ecs.EventKind]Sound) *AudioSystem {
	return &AudioSystem{sounds: sounds}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		s, ok := a.sounds[evt.Kind]
		if !ok || s.Player == nil {
			continue
		}
		s.Player.SetVolume(s.Volume)
		if err := s.Player.Rewind(); err != nil {
			log.Printf("audio: rewind %s: %v", evt.Kind, err)
			continue
		}
		s.Player.Play()
	}
}
