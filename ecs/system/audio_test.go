package system

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/GamaDu30/Day-and-Night/assets"
	"github.com/GamaDu30/Day-and-Night/ecs"
	"github.com/GamaDu30/Day-and-Night/prefabs"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

func TestAudioSystemDrainsEvents(t *testing.T) {
	w := newTestWorld(t)
	w.Events().Push(ecs.Event{Kind: ecs.EventHit})
	w.Events().Push(ecs.Event{Kind: ecs.EventDrop})

	NewAudioSystem(map[ecs.EventKind]Sound{ecs.EventHit: {Volume: 0.5}}).Update(w)

	if n := w.Events().Len(); n != 0 {
		t.Fatalf("expected drained queue, got %d events", n)
	}
}

func TestLoadSounds(t *testing.T) {
	fake := func(string) (*audio.Player, error) { return nil, nil }

	sounds, err := LoadSounds([]prefabs.AudioSpec{
		{Name: "hit", File: "sounds/hit.wav", Volume: 0.6},
		{Name: "drop", File: "sounds/drop.wav", Volume: 0.5},
	}, fake)
	if err != nil {
		t.Fatalf("load sounds: %v", err)
	}
	if len(sounds) != 2 || sounds[ecs.EventHit].Volume != 0.6 {
		t.Fatalf("unexpected sounds %+v", sounds)
	}

	_, err = LoadSounds([]prefabs.AudioSpec{{Name: "explode", File: "sounds/hit.wav"}}, fake)
	if !errors.Is(err, ErrUnknownSound) {
		t.Fatalf("expected ErrUnknownSound, got %v", err)
	}
}

func TestLoadSoundsMissingFile(t *testing.T) {
	sounds, err := LoadSounds([]prefabs.AudioSpec{
		{Name: "hit", File: "sounds/missing.wav", Volume: 0.6},
	}, assets.LoadAudioPlayer)
	if err == nil {
		t.Fatalf("a missing sound file must fail, got %v", sounds)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}
}
