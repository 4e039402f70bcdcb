package game

import (
	"sort"
	"time"

	"red-rockit/internal/render"

	"github.com/gdamore/tcell/v2"
)

// holdTracker turns a terminal's press-and-repeat stream into press and
// release pairs. A key is released once no repeat has arrived within the
// timeout.
type holdTracker struct {
	timeout time.Duration
	seen    map[Key]time.Time
}

func newHoldTracker(timeout time.Duration) *holdTracker {
	return &holdTracker{timeout: timeout, seen: make(map[Key]time.Time)}
}

// press records k at now and reports whether it was not already held.
func (h *holdTracker) press(k Key, now time.Time) bool {
	_, held := h.seen[k]
	h.seen[k] = now
	return !held
}

// expire releases every key not seen within the timeout, in key order.
func (h *holdTracker) expire(now time.Time) []Key {
	var out []Key
	for k, t := range h.seen {
		if now.Sub(t) >= h.timeout {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	for _, k := range out {
		delete(h.seen, k)
	}
	return out
}

// Terminal runs a Game on a tcell screen.
type Terminal struct {
	game     *Game
	screen   tcell.Screen
	renderer *render.Renderer
	keys     *holdTracker
	now      func() time.Time
}

// NewTerminal prepares a terminal front-end. The screen must already be
// initialized; Run finalizes it.
func NewTerminal(g *Game, screen tcell.Screen) *Terminal {
	return &Terminal{
		game:     g,
		screen:   screen,
		renderer: render.NewRenderer(screen, g.Grid().Geometry()),
		keys:     newHoldTracker(g.Config().KeyRelease()),
		now:      time.Now,
	}
}

// Run drives the frame loop until the player quits or a frame fails.
func (t *Terminal) Run() error {
	log := t.game.log
	defer t.screen.Fini()

	events := make(chan tcell.Event, 64)
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-stop:
				return
			}
		}
	}()

	ticker := time.NewTicker(t.game.Config().FrameDuration())
	defer ticker.Stop()

	log.WithField("speed", t.game.Config().SpeedName()).Info("terminal session started")
	for !t.game.Done() {
	drain:
		for {
			select {
			case ev := <-events:
				t.handle(ev)
				if t.game.Done() {
					break drain
				}
			default:
				break drain
			}
		}
		if t.game.Done() {
			break
		}
		for _, k := range t.keys.expire(t.now()) {
			t.game.HandleKey(KeyEvent{Key: k, Down: false})
		}

		if err := t.game.Step(); err != nil {
			log.WithError(err).Error("frame failed")
			return err
		}
		p := t.game.Player()
		t.renderer.CenterOn(p.Box)
		t.renderer.DrawFrame(t.game.Grid(), p)
		t.renderer.DrawHUD(p, t.game.Config().SpeedName())

		<-ticker.C
	}
	log.WithField("frames", t.game.Frames()).Info("terminal session ended")
	return nil
}

// handle applies one tcell event to the game.
func (t *Terminal) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
		t.renderer.Resize()
	case *tcell.EventKey:
		k, quit := terminalKey(ev)
		if quit {
			t.game.RequestQuit()
			return
		}
		if k == KeyNone {
			return
		}
		if t.keys.press(k, t.now()) {
			t.game.HandleKey(KeyEvent{Key: k, Down: true})
		}
	}
}
