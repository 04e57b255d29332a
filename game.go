package main

import (
	"log"
	"os"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/milk9111/blockpush/levels"
	"github.com/milk9111/blockpush/prefabs"
	"github.com/milk9111/blockpush/session"
)

// Mode selects which half of the game is running: solving levels or building
// them.
type Mode int

const (
	ModePlaying Mode = iota
	ModeEditing
)

type Game struct {
	spec       *prefabs.GameSpec
	editorSpec *prefabs.EditorSpec
	theme      *theme

	mode Mode
	play *playState
	edit *editSession

	levelName string

	session *session.Manager
	watcher *prefabs.Watcher

	paused  bool
	pauseUI *ebitenui.UI
	quit    bool

	clipboardOK bool
}

func NewGame(levelName string, startEditing bool) (*Game, error) {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return nil, err
	}
	editorSpec, err := prefabs.LoadEditorSpec()
	if err != nil {
		return nil, err
	}

	g := &Game{
		spec:       spec,
		editorSpec: editorSpec,
		theme:      newTheme(editorSpec, spec.TileSize),
		levelName:  levelName,
		session:    session.Open("blockpush"),
	}
	g.pauseUI = newPauseUI(g)

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}

	if w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts"); err != nil {
		log.Printf("prefab watcher disabled: %v", err)
	} else {
		g.watcher = w
	}

	if startEditing {
		g.enterEditing()
	} else if err := g.enterPlaying(levelName); err != nil {
		log.Printf("failed to load level %s: %v (starting in editor)", levelName, err)
		g.enterEditing()
	}

	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.pollWatcher()

	if g.paused {
		g.pauseUI.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.paused = false
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = true
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.toggleMode()
		return nil
	}

	switch g.mode {
	case ModeEditing:
		g.edit.update(g)
	case ModePlaying:
		if g.play != nil {
			g.play.update(g)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.mode {
	case ModeEditing:
		g.edit.draw(screen, g)
	case ModePlaying:
		if g.play != nil {
			g.play.draw(screen, g)
		}
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.spec.BaseWidth), float64(g.spec.BaseHeight)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("Layout called; use LayoutF instead")
}

// toggleMode switches between playing and editing. The editing state is
// discarded wholesale on exit; entering the editor always starts empty.
func (g *Game) toggleMode() {
	if g.mode == ModeEditing {
		g.edit = nil
		name := g.session.LastLevel()
		if name == "" {
			name = g.levelName
		}
		if err := g.enterPlaying(name); err != nil {
			log.Printf("cannot enter play mode: %v", err)
			g.enterEditing()
		}
		return
	}
	g.enterEditing()
}

func (g *Game) enterEditing() {
	g.mode = ModeEditing
	g.edit = newEditSession(g)
}

func (g *Game) enterPlaying(name string) error {
	lvl, err := loadLevelByName(name)
	if err != nil {
		return err
	}
	p, err := newPlayState(lvl)
	if err != nil {
		return err
	}
	g.play = p
	g.mode = ModePlaying
	return nil
}

// loadLevelByName resolves a level from disk first (paths, exported levels)
// and falls back to the shipped set.
func loadLevelByName(name string) (*levels.Level, error) {
	if _, err := os.Stat(name); err == nil {
		return levels.LoadLevel(name)
	}
	return levels.LoadLevelFromFS(name)
}

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
			log.Printf("reloading specs after change to %s", path)
			g.reloadSpecs()
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab watcher: %v", err)
		default:
			return
		}
	}
}

// reloadSpecs rebuilds the editor theme from disk. Sprites already spawned
// keep their old images; new placements pick up the changes.
func (g *Game) reloadSpecs() {
	spec, err := prefabs.LoadEditorSpec()
	if err != nil {
		log.Printf("reload editor spec: %v", err)
		return
	}
	g.editorSpec = spec
	g.theme = newTheme(spec, g.spec.TileSize)
}
