package main

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/progress"
	"github.com/milk9111/platformer/sim"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	// checkpointBannerFrames is how long the checkpoint banner stays up.
	checkpointBannerFrames = 90
)

var backgroundColor = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}

type Game struct {
	frames int
	debug  bool

	sim      *sim.Simulation
	render   *system.RenderSystem
	input    *system.InputSystem
	hud      *HUD
	store    *progress.Store
	manifest *levels.Manifest
	watcher  *prefabs.Watcher

	levelID  int
	file     string
	status   string
	nextID   int
	bannerAt int
}

func NewGame(levelID int, file string, debug bool, store *progress.Store, watcher *prefabs.Watcher) (*Game, error) {
	g := &Game{
		debug:   debug,
		render:  system.NewRenderSystem(),
		input:   system.NewInputSystem(),
		hud:     NewHUD(),
		store:   store,
		watcher: watcher,
		file:    file,
	}
	if m, err := levels.LoadManifest(); err == nil {
		g.manifest = m
	} else {
		log.Warn("game: no level manifest", "err", err)
	}
	if err := g.load(levelID); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) load(levelID int) error {
	lvl, index, err := loadSelectedLevel(levelID, g.file)
	if err != nil {
		return err
	}
	opts := simOptions(index)
	opts.ViewWidth, opts.ViewHeight = baseWidth, baseHeight

	s, err := sim.New(lvl, opts, g.listener())
	if err != nil {
		return err
	}
	g.sim = s
	g.levelID = index
	g.status = ""
	g.nextID = 0
	return nil
}

func (g *Game) listener() sim.Listener {
	return sim.Hooks{
		LevelComplete: g.onLevelComplete,
		GameOver: func() {
			g.status = "Game Over - press R to retry"
		},
		CheckpointActivated: func(x, y float64) {
			g.bannerAt = g.frames
		},
		Death: func(cause string) {
			log.Info("game: player died", "cause", cause)
		},
		Diagnostic: func(d levels.Diagnostic) {
			log.Warn("game: level diagnostic", "diagnostic", d.String())
		},
	}
}

func (g *Game) onLevelComplete(levelIndex int) {
	g.status = "Level complete!"
	if g.store == nil || levelIndex <= 0 {
		return
	}
	last := 0
	if g.manifest != nil {
		last = len(g.manifest.Levels)
	}
	deaths := g.sim.Snapshot().Deaths
	next, err := g.store.CompleteLevel(levelIndex, deaths, last)
	if err != nil {
		log.Error("game: save progress", "err", err)
		return
	}
	if next > 0 {
		g.nextID = next
		g.status = "Level complete! Press N for the next level"
	}
}

func (g *Game) Update() error {
	g.frames++
	g.pollWatcher()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.sim.SetPaused(!g.sim.Paused())
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if err := g.sim.Restart(); err != nil {
			return err
		}
		g.status = ""
	case inpututil.IsKeyJustPressed(ebiten.KeyN) && g.nextID > 0 && g.file == "":
		if err := g.load(g.nextID); err != nil {
			return err
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		g.debug = !g.debug
	}

	g.input.Update(g.sim.World())
	g.sim.Step(1.0 / float64(ebiten.TPS()))
	return nil
}

// pollWatcher reloads the level when a level file or prefab spec changes.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Info("game: file changed, reloading", "path", path)
			if err := g.load(g.levelID); err != nil {
				log.Error("game: reload failed", "err", err)
			}
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Warn("game: watcher error", "err", err)
			}
			return
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	w := g.sim.World()
	g.render.Draw(w, screen)

	if g.debug {
		system.DrawPhysicsDebug(g.sim.Physics().Space(), w, screen)
		system.DrawHazardDebug(w, screen)
		system.DrawRunDebug(w, screen)
	}

	snap := g.sim.Snapshot()
	g.hud.DrawStatus(screen, fmt.Sprintf("Lives: %d/%d", snap.Lives, snap.MaxLives), fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS()))
	if g.frames-g.bannerAt < checkpointBannerFrames && g.bannerAt > 0 {
		g.hud.DrawBanner(screen, "Checkpoint!")
	}
	switch {
	case g.status != "":
		g.hud.DrawCentered(screen, g.status)
	case snap.Paused:
		g.hud.DrawCentered(screen, "Paused")
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
