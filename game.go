package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/GamaDu30/Day-and-Night/assets"
	"github.com/GamaDu30/Day-and-Night/catalog"
	"github.com/GamaDu30/Day-and-Night/common"
	"github.com/GamaDu30/Day-and-Night/ecs"
	"github.com/GamaDu30/Day-and-Night/ecs/system"
	"github.com/GamaDu30/Day-and-Night/prefabs"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const gameSpecFile = "game.yaml"

type Game struct {
	frames int
	debug  bool
	paused bool
	quit   bool

	world     *ecs.World
	scheduler *ecs.Scheduler
	input     *system.InputSystem
	render    *system.RenderSystem
	ui        *system.UIRenderSystem
	pauseUI   *ebitenui.UI

	watcher     *prefabs.Watcher
	specModTime time.Time
}

func NewGame(seed uint64, debug, watch bool) *Game {
	catSpec, err := prefabs.LoadCatalogSpec()
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	cat, err := catalog.New(*catSpec, assets.LoadImage)
	if err != nil {
		log.Fatalf("build catalog: %v", err)
	}
	gameSpec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatalf("load game spec: %v", err)
	}
	settings, err := ecs.SettingsFromSpec(*gameSpec)
	if err != nil {
		log.Fatalf("game spec: %v", err)
	}

	world := ecs.NewWorld(settings, cat, common.BaseWidth, common.BaseHeight)
	system.SpawnWorld(world, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
	if debug {
		log.Printf("seed %d: spawned %d of %d entities", seed, world.Pool.Len(), world.Pool.Cap())
	}

	sounds, err := system.LoadSounds(gameSpec.Audio, assets.LoadAudioPlayer)
	if err != nil {
		log.Fatalf("load sounds: %v", err)
	}

	input := system.NewInputSystem(system.EbitenInput{}, system.DefaultKeyBindings(settings.Hotbar))
	g := &Game{
		debug: debug,
		world: world,
		input: input,
		scheduler: ecs.NewScheduler(
			input,
			system.NewUXSystem(),
			system.NewPlayerControllerSystem(),
			system.NewCameraSystem(),
			system.NewSelectionSystem(),
			system.NewInteractionSystem(),
			system.NewInventorySystem(),
			system.NewAudioSystem(sounds),
		),
		render: system.NewRenderSystem(),
		ui:     system.NewUIRenderSystem(),
	}
	g.pauseUI = NewPauseUI(g)

	if watch {
		w, err := prefabs.NewWatcher(prefabs.Dir())
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			g.watcher = w
			g.specModTime, _ = prefabs.ModTime(gameSpecFile)
		}
	}
	return g
}

func (g *Game) Update() error {
	if g.quit {
		if g.watcher != nil {
			_ = g.watcher.Close()
		}
		return ebiten.Termination
	}
	g.frames++
	g.reloadTuning()

	if g.paused {
		g.pauseUI.Update()
		g.input.Update(g.world)
		if g.world.Input.PausePressed {
			g.paused = false
		}
		return nil
	}

	g.world.Step(1.0 / float64(ebiten.TPS()))
	g.scheduler.Update(g.world)
	if g.world.Input.PausePressed {
		g.paused = true
	}
	return nil
}

// reloadTuning applies edits to game.yaml while the game runs.
func (g *Game) reloadTuning() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case err := <-g.watcher.Errors:
			log.Printf("watch: %v", err)
			continue
		default:
		}
		name, ok := g.watcher.Poll()
		if !ok {
			return
		}
		if name != gameSpecFile {
			continue
		}
		mod, ok := prefabs.ModTime(gameSpecFile)
		if !ok || !mod.After(g.specModTime) {
			continue
		}
		g.specModTime = mod

		spec, err := prefabs.LoadGameSpec()
		if err != nil {
			log.Printf("reload %s: %v", name, err)
			continue
		}
		g.world.Settings.ApplyTuning(*spec)
		if g.debug {
			log.Printf("reloaded %s", name)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.world.Settings.Clear)
	g.render.Draw(g.world, screen)
	g.ui.Draw(g.world, screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}

	if g.debug {
		w := g.world
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.2f  entities: %d/%d\nselected: %v  hovered: %v\nheld: %v  iron: %d  log: %d",
			ebiten.ActualFPS(), w.Pool.Len(), w.Pool.Cap(),
			w.Selected, w.Hovered,
			w.Inventory.Held(), w.Inventory.Count(catalog.ItemIron), w.Inventory.Count(catalog.ItemLog),
		))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
