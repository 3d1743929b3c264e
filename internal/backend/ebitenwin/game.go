// Package ebitenwin runs a paint session as an ebiten game. Each Update is
// one frame of the driver.
package ebitenwin

import (
	"image"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/example/paintit/internal/backend"
	"github.com/example/paintit/internal/frame"
	"github.com/example/paintit/internal/geom"
	"github.com/example/paintit/internal/ui"
)

// Game implements ebiten.Game around a backend session.
type Game struct {
	sess *backend.Session

	canvas *ebiten.Image
	chrome *ebiten.Image
	buf    *image.RGBA
	face   text.Face
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates the session and the images it is drawn with.
func NewGame(cfg frame.Config, opts backend.Options) (*Game, error) {
	g := &Game{face: text.NewGoXFace(bitmapfont.Face)}
	if cfg.Width > 0 && cfg.Height > 0 {
		g.canvas = ebiten.NewImage(cfg.Width, cfg.Height)
	}
	sess, err := backend.NewSession(cfg, opts, g, textureLoader{})
	if err != nil {
		return nil, err
	}
	g.sess = sess
	sz := sess.Size()
	g.buf = image.NewRGBA(image.Rectangle{Max: sz})
	g.chrome = ebiten.NewImage(sz.X, sz.Y)
	return g, nil
}

// Run opens the window and blocks until it is closed.
func Run(cfg frame.Config, opts backend.Options) error {
	g, err := NewGame(cfg, opts)
	if err != nil {
		return err
	}
	sz := g.sess.Size()
	ebiten.SetWindowSize(sz.X, sz.Y)
	ebiten.SetWindowTitle(backend.Title)
	ebiten.SetTPS(g.sess.FPS())
	return ebiten.RunGame(g)
}

// UploadCanvas copies the canvas into the GPU image.
func (g *Game) UploadCanvas(canvas *image.RGBA) {
	g.canvas.WritePixels(canvas.Pix)
}

func (g *Game) Update() error {
	x, y := ebiten.CursorPosition()
	p := geom.Window(float32(x), float32(y))
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.sess.Press(p)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.sess.Release(p)
	default:
		g.sess.Move(p)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.sess.Key('x')
	}
	g.sess.Frame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	c := g.sess.Chrome
	d := g.sess.Driver
	c.DrawUnder(g.buf, d)
	st := ui.StatusOf(d)
	c.Status.DrawPanel(g.buf, st)
	g.chrome.WritePixels(g.buf.Pix)
	screen.DrawImage(g.chrome, nil)

	op := &ebiten.DrawImageOptions{}
	at := c.Layout.Canvas.Min
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	screen.DrawImage(g.canvas, op)

	d.DrawOverlay(&surface{dst: screen})

	dot := c.Status.TextOrigin()
	to := &text.DrawOptions{}
	to.GeoM.Translate(float64(dot.X), float64(dot.Y)-g.face.Metrics().HAscent)
	to.ColorScale.ScaleWithColor(c.Theme.StatusText)
	text.Draw(screen, st.Text(), g.face, to)
}

func (g *Game) Layout(int, int) (int, int) {
	sz := g.sess.Size()
	return sz.X, sz.Y
}
