// Package shinywin runs a paint session in a shiny window.
package shinywin

import (
	"image"
	"image/draw"
	"log"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/paintit/internal/backend"
	"github.com/example/paintit/internal/frame"
	"github.com/example/paintit/internal/geom"
	"github.com/example/paintit/internal/overlay"
)

// canvasLayer is the display: it keeps the canvas as of the last dirty
// frame, which is what the window shows.
type canvasLayer struct {
	img *image.RGBA
}

var _ frame.Display = (*canvasLayer)(nil)

func (c *canvasLayer) UploadCanvas(canvas *image.RGBA) {
	if c.img == nil || c.img.Bounds() != canvas.Bounds() {
		c.img = image.NewRGBA(canvas.Bounds())
	}
	draw.Draw(c.img, c.img.Bounds(), canvas, canvas.Bounds().Min, draw.Src)
}

// tick is sent by the frame ticker. External paint events only redraw.
type tick struct{}

// Run opens the window and blocks until it is closed.
func Run(cfg frame.Config, opts backend.Options) error {
	var err error
	driver.Main(func(s screen.Screen) {
		err = run(s, cfg, opts)
	})
	return err
}

func run(s screen.Screen, cfg frame.Config, opts backend.Options) error {
	layer := &canvasLayer{}
	sess, err := backend.NewSession(cfg, opts, layer, &overlay.Image{})
	if err != nil {
		return err
	}
	sz := sess.Size()
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: sz.X, Height: sz.Y, Title: backend.Title})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()

	b, err := s.NewBuffer(sz)
	if err != nil {
		return err
	}
	defer b.Release()

	done := make(chan struct{})
	defer close(done)
	go func() {
		t := time.NewTicker(sess.Interval())
		defer t.Stop()
		for {
			select {
			case <-t.C:
				w.Send(tick{})
			case <-done:
				return
			}
		}
	}()

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return nil
			}
		case size.Event:
			w.Send(paint.Event{})
		case tick:
			sess.Frame()
			drawFrame(w, b, sess, layer)
		case paint.Event:
			drawFrame(w, b, sess, layer)
		case mouse.Event:
			p := geom.Window(e.X, e.Y)
			switch {
			case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress:
				sess.Press(p)
			case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease:
				sess.Release(p)
			default:
				sess.Move(p)
			}
		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			if e.Code == key.CodeEscape {
				return nil
			}
			sess.Key(e.Rune)
		case error:
			log.Printf("window: %v", e)
		}
	}
}

func drawFrame(w screen.Window, b screen.Buffer, sess *backend.Session, layer *canvasLayer) {
	if layer.img == nil {
		return
	}
	sess.Chrome.Compose(b.RGBA(), sess.Driver, layer.img)
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}
