package main

import (
	"flag"
	"log"
	"time"

	"github.com/GamaDu30/Day-and-Night/common"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	seed := flag.Uint64("seed", 0, "world seed (0 picks one from the clock)")
	watch := flag.Bool("watch", false, "reload tuning values when prefabs/game.yaml changes")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("Day and Night")
	ebiten.SetTPS(common.TPS)

	game := NewGame(*seed, *debug, *watch)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
