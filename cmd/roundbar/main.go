// Demo for the rounded toolbar: an Ebitengine window with a live toolbar
// (click to select, hover for tooltips), optional YAML theme with hot reload,
// or a one-shot offscreen PNG render.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/uilab/roundbar/driver/ebitengc"
	"github.com/uilab/roundbar/imagegc"
	"github.com/uilab/roundbar/toolbar"
	"github.com/uilab/roundbar/util/imageutil"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Logger()

var (
	themeArg  = flag.String("theme", "", "Path to a YAML theme file (watched for changes).")
	pngArg    = flag.String("png", "", "Render one frame to a PNG file and exit.")
	heightArg = flag.Int("height", 32, "Toolbar height in pixels.")
)

const toolbarPad = 16

func main() {
	flag.Parse()

	if *pngArg != "" {
		if err := renderPNG(*pngArg); err != nil {
			log.Fatal().Err(err).Msg("png render")
		}
		return
	}

	g := &game{themeCh: make(chan themeUpdate, 4)}
	if *themeArg != "" {
		closeWatch, err := watchTheme(*themeArg, g.themeCh)
		if err != nil {
			log.Fatal().Err(err).Msg("theme watch")
		}
		defer closeWatch()
	}

	ebiten.SetWindowTitle("roundbar")
	ebiten.SetWindowSize(480, 160)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("run")
	}
}

//----------

type themeUpdate struct {
	theme  toolbar.Theme
	radius int
}

// Re-reads the theme file on every write event and forwards the result. The
// game applies updates from inside Update, keeping all toolbar mutation on
// the game loop goroutine.
func watchTheme(path string, ch chan<- themeUpdate) (func() error, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "fsnotify")
	}
	// watch the directory: editors often replace the file on save
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, errors.Wrap(err, "watch dir")
	}

	load := func() {
		th, radius, err := toolbar.LoadThemeFile(path)
		if err != nil {
			log.Warn().Err(err).Msg("theme reload")
			return
		}
		select {
		case ch <- themeUpdate{theme: th, radius: radius}:
		default:
		}
		log.Info().Str("path", path).Msg("theme loaded")
	}
	load()

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Name == path && ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					load()
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("theme watch")
			}
		}
	}()
	return w.Close, nil
}

//----------

type game struct {
	tb      *toolbar.RoundedToolbar
	canvas  *ebiten.Image
	gc      *ebitengc.GC
	themeCh chan themeUpdate

	hover *toolbar.ToolItem
}

func (g *game) Update() error {
	if g.tb == nil {
		// built here rather than in main: the toolbar binds to the goroutine
		// that creates it, and that must be the game loop goroutine
		g.tb = buildToolbar()
	}

	for {
		select {
		case u := <-g.themeCh:
			g.tb.SetTheme(u.theme)
			g.tb.SetCornerRadius(u.radius)
			continue
		default:
		}
		break
	}

	p := cursorOnToolbar()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if it := g.tb.Click(p); it == nil {
			log.Debug().Msg("click outside items")
		}
	}

	it := g.tb.ItemAt(p)
	if it != g.hover {
		g.hover = it
		if tip, ok := g.tb.TooltipAt(p); ok {
			log.Info().Str("tooltip", tip).Msg("hover")
		}
	}
	return nil
}

func cursorOnToolbar() image.Point {
	x, y := ebiten.CursorPosition()
	return image.Point{X: x - toolbarPad, Y: y - toolbarPad}
}

func (g *game) Draw(screen *ebiten.Image) {
	size := g.tb.DefaultSize()
	size.Y = *heightArg

	if g.canvas == nil || !size.Eq(g.canvas.Bounds().Size()) {
		g.canvas = ebiten.NewImage(size.X, size.Y)
		g.gc = ebitengc.New(g.canvas)
	}
	g.gc.SetDst(g.canvas)
	g.canvas.Clear()
	g.tb.Draw(g.gc, size.X, size.Y)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(toolbarPad, toolbarPad)
	screen.DrawImage(g.canvas, op)
}

func (g *game) Layout(w, h int) (int, int) {
	return 480, 160
}

//----------

func buildToolbar() *toolbar.RoundedToolbar {
	tb := toolbar.NewRoundedToolbar()
	if *themeArg != "" {
		th, radius, err := toolbar.LoadThemeFile(*themeArg)
		if err != nil {
			log.Warn().Err(err).Msg("theme load, using defaults")
		} else {
			tb.SetTheme(th)
			tb.SetCornerRadius(radius)
		}
	}

	th := tb.Theme()

	open := toolbar.NewToolItem(tb)
	open.SetText("&Open")
	open.SetImage(squareImage(th.GradientBottom, 12))
	open.SetSelectionImage(squareImage(imageutil.Tint(th.GradientBottom, 0.4), 12))
	open.SetTooltipText("Open a file")

	save := toolbar.NewToolItem(tb)
	save.SetText("&Save")
	save.SetImage(squareImage(th.GradientBottom, 12))
	save.SetDisabledImage(squareImage(imageutil.Shade(toolbar.White, 0.3), 12))
	save.SetEnabled(false)
	save.SetTooltipText("Nothing to save yet")

	help := toolbar.NewToolItem(tb)
	help.SetText("Help")
	help.SetTooltipText("Show help")

	for _, it := range tb.Items() {
		it := it
		it.OnSelection(func(ev *toolbar.SelectionEvent) {
			log.Info().
				Str("item", it.Text()).
				Bool("selected", it.Selection()).
				Msg("selection")
		})
	}
	return tb
}

func squareImage(c color.Color, size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	imageutil.FillRectangle(img, img.Bounds(), c)
	return img
}

//----------

// Offscreen render through the software backend.
func renderPNG(path string) error {
	tb := buildToolbar()
	tb.Items()[0].SetSelection(true)

	size := tb.DefaultSize()
	size.Y = *heightArg
	img := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	imageutil.FillRectangle(img, img.Bounds(), toolbar.White)

	gc := imagegc.New(img)
	tb.Draw(gc, size.X, size.Y)

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create png")
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return errors.Wrap(err, "encode png")
	}
	log.Info().Str("path", path).Msg("png written")
	return nil
}
