package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/taigrr/plot3d/pkg/chart"
	"github.com/taigrr/plot3d/pkg/render"
)

// Controls:
//
//	Mouse drag  - Orbit the camera
//	Mouse move  - Show the point under the cursor
//	Scroll, +/- - Zoom in/out
//	W/S         - Tilt up/down
//	A/D         - Turn left/right
//	R           - Reset camera
//	P           - Toggle perspective
//	F           - Next filter group
//	Space       - Start/stop filter animation
//	O           - Save the current frame as a PNG
//	?           - Toggle HUD overlay
//	Esc         - Quit

// OrbitAxis carries the angular velocity of one camera angle. Velocity
// decays towards zero through a critically damped spring.
type OrbitAxis struct {
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64
}

// NewOrbitAxis creates an axis updated fps times per second.
func NewOrbitAxis(fps int) OrbitAxis {
	return OrbitAxis{velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

// Step returns the angle change for this frame and decays the velocity.
func (a *OrbitAxis) Step() float64 {
	d := a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
	return d
}

// Orbit is the camera inertia of the viewer.
type Orbit struct {
	Horizontal, Vertical OrbitAxis
	fps                  int
}

func NewOrbit(fps int) *Orbit {
	return &Orbit{Horizontal: NewOrbitAxis(fps), Vertical: NewOrbitAxis(fps), fps: fps}
}

func (o *Orbit) ApplyImpulse(horizontal, vertical float64) {
	o.Horizontal.Velocity += horizontal
	o.Vertical.Velocity += vertical
}

// Moving reports whether the camera still drifts noticeably.
func (o *Orbit) Moving() bool {
	const eps = 1e-4
	return abs(o.Horizontal.Velocity) > eps || abs(o.Vertical.Velocity) > eps
}

func (o *Orbit) Stop() {
	o.Horizontal = NewOrbitAxis(o.fps)
	o.Vertical = NewOrbitAxis(o.fps)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// HUD renders a status overlay on the first and last terminal rows.
type HUD struct {
	filename  string
	style     chart.Style
	points    int
	fps       float64
	fpsFrames int
	fpsTime   time.Time

	Show    bool
	Tooltip string
	Filter  string
	Playing bool
}

func NewHUD(filename string, style chart.Style, points int) *HUD {
	return &HUD{filename: filename, style: style, points: points, fpsTime: time.Now(), Show: true}
}

// UpdateFPS updates the FPS counter (call once per frame).
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Render draws the HUD directly to the terminal.
func (h *HUD) Render(width, height int) {
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		bgBlack   = "\x1b[40m"
		fgWhite   = "\x1b[97m"
		fgGreen   = "\x1b[92m"
		fgYellow  = "\x1b[93m"
		fgCyan    = "\x1b[96m"
		clearLine = "\x1b[2K"
	)
	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	fmt.Print(moveTo(1, 1) + clearLine)
	fmt.Print(moveTo(height, 1) + clearLine)

	// The tooltip is shown even without the HUD.
	if h.Tooltip != "" {
		fmt.Print(moveTo(height, 1) + fmt.Sprintf("%s%s %s %s", bgBlack, fgYellow, h.Tooltip, reset))
	}
	if !h.Show {
		return
	}

	fmt.Print(moveTo(1, 1) + fmt.Sprintf("%s%s %.0f FPS %s", bgBlack, fgGreen, h.fps, reset))

	title := fmt.Sprintf("%s (%s)", h.filename, h.style)
	titleCol := max((width-len(title)-2)/2, 1)
	fmt.Print(moveTo(1, titleCol) + fmt.Sprintf("%s%s%s %s %s", bold, bgBlack, fgWhite, title, reset))

	points := fmt.Sprintf("%d points", h.points)
	fmt.Print(moveTo(1, max(width-len(points)-1, 1)) + fmt.Sprintf("%s%s%s %s %s", bgBlack, fgCyan, bold, points, reset))

	if h.Filter != "" && h.Tooltip == "" {
		state := "paused"
		if h.Playing {
			state = "playing"
		}
		fmt.Print(moveTo(height, 1) + fmt.Sprintf("%s%s %s [%s] %s", bgBlack, fgWhite, h.Filter, state, reset))
	}
}

// viewer owns the chart while the terminal session runs. Input and
// animation goroutines go through mu.
type viewer struct {
	mu    sync.Mutex
	chart *chart.Chart
	orbit *Orbit
	hud   *HUD

	// drag state
	dragging       bool
	dragStart      chart.CameraPosition
	dragX, dragY   int
	prevX, prevY   int
	lastDX, lastDY int

	stopPlay   context.CancelFunc
	cellScaleY float64
}

func (v *viewer) toggleAnimation(ctx context.Context) {
	if v.stopPlay != nil {
		v.stopPlay()
		v.stopPlay = nil
		v.hud.Playing = false
		return
	}
	anim, err := chart.NewAnimator(v.chart)
	if err != nil {
		logger.Debugw("animation unavailable", "error", err)
		return
	}
	playCtx, stop := context.WithCancel(ctx)
	v.stopPlay = stop
	v.hud.Playing = true
	go anim.Run(playCtx, func(i int) {
		v.mu.Lock()
		defer v.mu.Unlock()
		if err := v.chart.SelectFilter(i); err != nil {
			logger.Warnw("select filter", "index", i, "error", err)
		}
	})
}

func (v *viewer) nextFilter() {
	f := v.chart.Filter()
	if f == nil {
		return
	}
	if err := v.chart.SelectFilter((f.Index() + 1) % f.Len()); err != nil {
		logger.Warnw("select filter", "error", err)
	}
}

func (v *viewer) resetCamera() {
	v.orbit.Stop()
	pos := chart.DefaultCameraPosition
	if p := v.chart.Options().CameraPosition; p != nil {
		pos = *p
	}
	v.chart.SetCameraPosition(pos)
}

func (v *viewer) togglePerspective() {
	opts := v.chart.Options()
	opts.ShowPerspective = !opts.ShowPerspective
	if err := v.chart.SetOptions(opts); err != nil {
		logger.Warnw("toggle perspective", "error", err)
	}
}

// snapshot saves the last painted frame to a timestamped PNG in dir.
func (v *viewer) snapshot(fb *render.Framebuffer, dir string, now time.Time) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("plot3d-%s.png", now.Format("20060102-150405")))
	if err := fb.SavePNG(path); err != nil {
		return "", err
	}
	logger.Infow("saved frame", "path", path, "width", fb.Width(), "height", fb.Height())
	return path, nil
}

// hover updates the tooltip for the cell under the mouse. Each cell row
// covers two framebuffer rows.
func (v *viewer) hover(x, y int) {
	v.hud.Tooltip = ""
	if p, ok := v.chart.HitTest(float64(x), float64(y)*v.cellScaleY); ok {
		v.hud.Tooltip = v.chart.Tooltip(p)
	}
}

func viewAction(c *cli.Context) error {
	ch, name, err := loadChart(c)
	if err != nil {
		return err
	}
	fps := c.Int(flagFPS)
	if fps <= 0 {
		return errors.Errorf("fps must be positive, got %d", fps)
	}

	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return errors.Wrap(err, "get terminal size")
	}
	if err := term.Start(); err != nil {
		return errors.Wrap(err, "start terminal")
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	fmt.Fprint(os.Stdout, "\x1b[?1003h") // any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // SGR extended mouse mode

	termRenderer := render.NewTerminalRenderer(term, width, height)
	fb := render.NewFramebuffer(termRenderer.FramebufferSize())

	v := &viewer{
		chart:      ch,
		orbit:      NewOrbit(fps),
		hud:        NewHUD(name, ch.Options().Style, ch.Geometry().Len()),
		cellScaleY: 2,
	}
	if f := ch.Filter(); f != nil {
		v.hud.Filter = f.Message()
	}

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if ch.Filter() != nil && ch.Options().AnimationAutoStart {
		v.toggleAnimation(ctx)
	}

	const keyImpulse = 0.02

	go func() {
		for ev := range term.Events() {
			v.mu.Lock()
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				termRenderer = render.NewTerminalRenderer(term, width, height)
				fb = render.NewFramebuffer(termRenderer.FramebufferSize())

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape", "ctrl+c"):
					cancel()
				case ev.MatchString("w", "up"):
					v.orbit.ApplyImpulse(0, keyImpulse)
				case ev.MatchString("s", "down"):
					v.orbit.ApplyImpulse(0, -keyImpulse)
				case ev.MatchString("a", "left"):
					v.orbit.ApplyImpulse(-keyImpulse, 0)
				case ev.MatchString("d", "right"):
					v.orbit.ApplyImpulse(keyImpulse, 0)
				case ev.MatchString("+", "="):
					v.chart.Zoom(1)
				case ev.MatchString("-", "_"):
					v.chart.Zoom(-1)
				case ev.MatchString("r"):
					v.resetCamera()
				case ev.MatchString("p"):
					v.togglePerspective()
				case ev.MatchString("f"):
					v.nextFilter()
				case ev.MatchString("space"):
					v.toggleAnimation(ctx)
				case ev.MatchString("o"):
					if _, err := v.snapshot(fb, ".", time.Now()); err != nil {
						logger.Warnw("save frame", "error", err)
					}
				case ev.MatchString("?"), ev.MatchString("shift+/"):
					v.hud.Show = !v.hud.Show
				}

			case uv.MouseClickEvent:
				v.orbit.Stop()
				v.dragging = true
				v.dragStart = v.chart.CameraPosition()
				v.dragX, v.dragY = ev.X, ev.Y
				v.prevX, v.prevY = ev.X, ev.Y
				v.lastDX, v.lastDY = 0, 0

			case uv.MouseReleaseEvent:
				if v.dragging {
					// keep spinning with the speed of the last move
					v.orbit.ApplyImpulse(float64(v.lastDX)/200, float64(v.lastDY)*v.cellScaleY/200)
				}
				v.dragging = false

			case uv.MouseMotionEvent:
				if !v.dragging {
					v.hover(ev.X, ev.Y)
					break
				}
				v.chart.Drag(v.dragStart, float64(ev.X-v.dragX), float64(ev.Y-v.dragY)*v.cellScaleY)
				v.lastDX, v.lastDY = ev.X-v.prevX, ev.Y-v.prevY
				v.prevX, v.prevY = ev.X, ev.Y

			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					v.chart.Zoom(1)
				case uv.MouseWheelDown:
					v.chart.Zoom(-1)
				}
			}
			v.mu.Unlock()
		}
	}()

	targetDuration := time.Second / time.Duration(fps)

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}
		now := time.Now()

		v.mu.Lock()
		if v.orbit.Moving() {
			pos := v.chart.CameraPosition()
			pos.Horizontal += v.orbit.Horizontal.Step()
			pos.Vertical += v.orbit.Vertical.Step()
			v.chart.SetCameraPosition(pos)
		}
		if f := v.chart.Filter(); f != nil {
			v.hud.Filter = f.Message()
		}
		v.hud.points = v.chart.Geometry().Len()

		err := v.chart.Paint(fb)
		if err == nil {
			termRenderer.Render(fb)
			err = termRenderer.Flush()
		}
		if err != nil {
			v.mu.Unlock()
			cleanup()
			return errors.Wrap(err, "draw frame")
		}

		v.hud.UpdateFPS()
		v.hud.Render(width, height)
		v.mu.Unlock()

		if elapsed := time.Since(now); elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
