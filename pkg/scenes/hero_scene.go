package scenes

import (
	"image"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/verdant/pkg/config"
	"github.com/decker502/verdant/pkg/field"
	"github.com/decker502/verdant/pkg/game"
	"github.com/decker502/verdant/pkg/loop"
	"github.com/decker502/verdant/pkg/utils"
)

const (
	// gradientPeriod is one full background shift cycle, in seconds.
	gradientPeriod = 15.0
	// gradientTextureSize is the side of the generated gradient texture.
	gradientTextureSize = 64
	// titleFadeDuration and subtitleFadeDelay stage the intro fade.
	titleFadeDuration = 1.0
	subtitleFadeDelay = 0.3
)

// HeroScene is the landing hero: particle background, copy, reserve button
// and the ring cursor. It owns the animator and stops it on Dispose.
type HeroScene struct {
	cfg      *config.FieldConfig
	animator *loop.Animator
	settings *game.SettingsManager
	sampler  *utils.PointerSampler
	fonts    *heroFonts

	palette heroPalette
	scales  []*utils.Tween

	width, height int
	elapsed       float64
	cursorX       float64
	cursorY       float64
	hover         bool
	disposed      bool

	gradient *ebiten.Image
	layout   heroLayout
	subtitle []string
	dirty    bool // layout must be recomputed
}

// heroPalette is the parsed color set.
type heroPalette struct {
	gradient    []color.RGBA
	herb        color.RGBA
	spice       color.RGBA
	accent      color.RGBA
	accentHover color.RGBA
	heading     color.RGBA
	body        color.RGBA
}

func newHeroPalette(p config.PaletteConfig) heroPalette {
	hp := heroPalette{
		herb:        config.HexColor(p.Herb),
		spice:       config.HexColor(p.Spice),
		accent:      config.HexColor(p.Accent),
		accentHover: config.HexColor(p.AccentHover),
		heading:     config.HexColor(p.Heading),
		body:        config.HexColor(p.Body),
	}
	for _, s := range p.Gradient {
		hp.gradient = append(hp.gradient, config.HexColor(s))
	}
	return hp
}

// NewHeroScene creates the hero scene and starts its animator.
// sampler may be nil to read the real pointer.
func NewHeroScene(cfg *config.FieldConfig, animator *loop.Animator, settings *game.SettingsManager, sampler *utils.PointerSampler) (*HeroScene, error) {
	fonts, err := loadHeroFonts()
	if err != nil {
		return nil, err
	}
	if sampler == nil {
		sampler = utils.NewPointerSampler(nil)
	}

	s := &HeroScene{
		cfg:      cfg,
		animator: animator,
		settings: settings,
		sampler:  sampler,
		fonts:    fonts,
		palette:  newHeroPalette(cfg.Palette),
		dirty:    true,
	}

	transition := cfg.Particles.ScaleTransition().Seconds()
	for _, p := range animator.Snapshot() {
		s.scales = append(s.scales, utils.NewTween(p.Scale(), transition, utils.EaseOutQuad))
	}

	animator.Start()
	log.Printf("[HeroScene] created with %d particles", len(s.scales))
	return s, nil
}

// SetViewport implements game.ViewportAware.
func (s *HeroScene) SetViewport(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.animator.SetViewport(float64(width), float64(height))
	if err := s.fonts.resize(width); err != nil {
		log.Printf("[HeroScene] Warning: font resize failed: %v", err)
	}
	s.dirty = true
}

// Update polls the pointer, advances the field by one tick and eases the
// particle scales.
func (s *HeroScene) Update(deltaTime float64) {
	if s.disposed {
		return
	}
	s.elapsed += deltaTime

	x, y, moved := s.sampler.Sample()
	s.cursorX, s.cursorY = float64(x), float64(y)
	if moved {
		s.animator.Move(s.cursorX, s.cursorY)
	}

	s.animator.Tick()

	for i, p := range s.animator.Snapshot() {
		if i >= len(s.scales) {
			break
		}
		s.scales[i].SetTarget(p.Scale())
		s.scales[i].Update(deltaTime)
	}

	s.relayout()
	s.hover = s.layout.Button.Contains(s.cursorX, s.cursorY)
}

// Dispose implements game.Disposable: the animator stops and its pointer
// debounce timer is revoked.
func (s *HeroScene) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.animator.Stop()
	if s.gradient != nil {
		s.gradient.Deallocate()
		s.gradient = nil
	}
	log.Printf("[HeroScene] disposed")
}

// ParticleScale returns the eased display scale of particle i.
func (s *HeroScene) ParticleScale(i int) float64 {
	if i < 0 || i >= len(s.scales) {
		return 0
	}
	return s.scales[i].Value()
}

// cursorVisible reports whether the ring cursor is drawn. Touch devices
// have no hovering pointer to follow.
func (s *HeroScene) cursorVisible() bool {
	if utils.IsMobile() {
		return false
	}
	return s.settings == nil || s.settings.GetSettings().CustomCursor
}

// ButtonHovered reports whether the pointer is over the reserve button.
func (s *HeroScene) ButtonHovered() bool {
	return s.hover
}

// relayout recomputes the layout after a viewport change.
func (s *HeroScene) relayout() {
	if !s.dirty || s.width == 0 || s.height == 0 || s.fonts.title == nil {
		return
	}
	w, h := float64(s.width), float64(s.height)

	s.subtitle = utils.WrapText(s.cfg.Text.Subtitle, subtitleWidth(w), func(line string) float64 {
		return utils.MeasureWidth(s.fonts.subtitle, line)
	})
	labelW, labelH := text.Measure(s.cfg.Text.Button, s.fonts.button, 0)

	s.layout = computeHeroLayout(w, h, heroMetrics{
		TitleLineHeight:    lineHeight(s.fonts.title),
		TitleLines:         len(s.cfg.Text.TitleLines) + 1,
		SubtitleLineHeight: lineHeight(s.fonts.subtitle) * 1.6,
		SubtitleLines:      len(s.subtitle),
		ButtonLabelW:       labelW,
		ButtonLabelH:       labelH,
	})
	s.dirty = false
}

// Draw renders the scene back to front.
func (s *HeroScene) Draw(screen *ebiten.Image) {
	if s.width == 0 || s.height == 0 {
		b := screen.Bounds()
		s.SetViewport(b.Dx(), b.Dy())
		s.relayout()
	}

	s.drawBackground(screen)
	s.drawParticles(screen)
	s.drawContent(screen)
	if s.cursorVisible() {
		s.drawCursor(screen)
	}
}

// drawBackground stretches a small diagonal gradient texture over twice the
// screen and slides it back and forth.
func (s *HeroScene) drawBackground(screen *ebiten.Image) {
	if s.gradient == nil {
		s.gradient = ebiten.NewImageFromImage(diagonalGradient(gradientTextureSize, s.palette.gradient))
	}

	w, h := float64(s.width), float64(s.height)
	phase := utils.EaseInOutSine(triangle(s.elapsed / gradientPeriod))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(2*w/gradientTextureSize, 2*h/gradientTextureSize)
	op.GeoM.Translate(-phase*w, -phase*h)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.gradient, op)
}

// drawParticles draws herbs and spices as soft discs.
func (s *HeroScene) drawParticles(screen *ebiten.Image) {
	w, h := float64(s.width), float64(s.height)
	alpha := uint8(math.Round(s.cfg.Particles.Alpha * 255))

	for i, p := range s.animator.Snapshot() {
		size := s.cfg.Particles.SpiceSize
		if field.KindOf(i) == field.Herb {
			size = s.cfg.Particles.HerbSize
		}
		base := s.palette.spice
		if i%3 == 0 {
			base = s.palette.herb
		}

		r := size / 2 * s.ParticleScale(i)
		clr := color.NRGBA{R: base.R, G: base.G, B: base.B, A: alpha}
		vector.DrawFilledCircle(screen,
			float32(p.X/field.MaxCoord*w+size/2), float32(p.Y/field.MaxCoord*h+size/2),
			float32(r), clr, true)
	}
}

// drawContent draws icon, copy, button and the scroll chevron.
func (s *HeroScene) drawContent(screen *ebiten.Image) {
	if s.fonts.title == nil {
		return
	}
	l := s.layout
	cx := float64(s.width) / 2

	drawChefHat(screen, l.Icon, s.palette.accent)

	titleAlpha := utils.EaseOutCubic(utils.Clamp01(s.elapsed / titleFadeDuration))
	lh := lineHeight(s.fonts.title)
	y := l.TitleTop
	for _, line := range s.cfg.Text.TitleLines {
		drawCentered(screen, line, s.fonts.title, cx, y, s.palette.heading, titleAlpha)
		y += lh
	}
	drawCentered(screen, s.cfg.Text.TitleEmphasis, s.fonts.titleItalic, cx, y, s.palette.heading, titleAlpha)

	subtitleAlpha := utils.EaseOutCubic(utils.Clamp01((s.elapsed - subtitleFadeDelay) / titleFadeDuration))
	slh := lineHeight(s.fonts.subtitle) * 1.6
	y = l.SubtitleTop
	for _, line := range s.subtitle {
		drawCentered(screen, line, s.fonts.subtitle, cx, y, s.palette.body, subtitleAlpha)
		y += slh
	}

	s.drawButton(screen)
	s.drawChevron(screen)
}

func (s *HeroScene) drawButton(screen *ebiten.Image) {
	b := s.layout.Button
	fill := s.palette.accent
	if s.hover {
		fill = s.palette.accentHover
		grow := config.ButtonHoverScale
		b = rect{
			X: b.CenterX() - b.W*grow/2,
			Y: b.Y + b.H/2 - b.H*grow/2,
			W: b.W * grow,
			H: b.H * grow,
		}
	}

	drawPill(screen, b, fill)
	if s.hover {
		strokePill(screen, b, 2, color.White)
	}

	_, labelH := text.Measure(s.cfg.Text.Button, s.fonts.button, 0)
	drawCentered(screen, s.cfg.Text.Button, s.fonts.button, b.CenterX(), b.Y+(b.H-labelH)/2, color.RGBA{255, 255, 255, 255}, 1)
}

func (s *HeroScene) drawChevron(screen *ebiten.Image) {
	c := s.layout.Chevron
	bob := utils.EaseInOutSine(triangle(s.elapsed/config.ScrollIndicatorPeriod)) * config.ScrollIndicatorBob
	cx := float32(c.CenterX())
	top := float32(c.Y + c.H*0.35 - bob)
	half := float32(c.W * 0.3)

	vector.StrokeLine(screen, cx-half, top, cx, top+half, 2.5, s.palette.accent, true)
	vector.StrokeLine(screen, cx, top+half, cx+half, top, 2.5, s.palette.accent, true)
}

// drawCursor draws the ring cursor centered on the pointer.
func (s *HeroScene) drawCursor(screen *ebiten.Image) {
	x, y := float32(s.cursorX), float32(s.cursorY)
	a := s.palette.accent

	inner := color.NRGBA{R: a.R, G: a.G, B: a.B, A: uint8(config.CursorInnerAlpha * 255)}
	vector.DrawFilledCircle(screen, x, y, config.CursorRadius-config.CursorInnerInset, inner, true)
	vector.StrokeCircle(screen, x, y, config.CursorRadius-config.CursorStrokeWidth/2, config.CursorStrokeWidth, a, true)
}

// drawCentered draws one line of text horizontally centered on cx with its top at y.
func drawCentered(screen *ebiten.Image, str string, face text.Face, cx, y float64, clr color.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, str, face, op)
}

// drawPill fills a rectangle with fully rounded ends.
func drawPill(screen *ebiten.Image, r rect, clr color.Color) {
	rad := r.H / 2
	vector.DrawFilledRect(screen, float32(r.X+rad), float32(r.Y), float32(r.W-2*rad), float32(r.H), clr, true)
	vector.DrawFilledCircle(screen, float32(r.X+rad), float32(r.Y+rad), float32(rad), clr, true)
	vector.DrawFilledCircle(screen, float32(r.X+r.W-rad), float32(r.Y+rad), float32(rad), clr, true)
}

// strokePill outlines a pill shape.
func strokePill(screen *ebiten.Image, r rect, width float32, clr color.Color) {
	var path vector.Path
	rad := float32(r.H / 2)
	x0, y0 := float32(r.X)+rad, float32(r.Y)
	x1 := float32(r.X+r.W) - rad
	path.MoveTo(x0, y0)
	path.LineTo(x1, y0)
	path.Arc(x1, y0+rad, rad, -math.Pi/2, math.Pi/2, vector.Clockwise)
	path.LineTo(x0, y0+2*rad)
	path.Arc(x0, y0+rad, rad, math.Pi/2, 3*math.Pi/2, vector.Clockwise)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: width})
	drawTriangles(screen, vs, is, clr)
}

// drawChefHat draws a simple outlined toque inside box.
func drawChefHat(screen *ebiten.Image, box rect, clr color.Color) {
	x, y, w, h := float32(box.X), float32(box.Y), float32(box.W), float32(box.H)
	stroke := float32(2.5)

	puff := w * 0.2
	vector.StrokeCircle(screen, x+w*0.3, y+h*0.38, puff, stroke, clr, true)
	vector.StrokeCircle(screen, x+w*0.5, y+h*0.28, puff*1.15, stroke, clr, true)
	vector.StrokeCircle(screen, x+w*0.7, y+h*0.38, puff, stroke, clr, true)
	vector.StrokeRect(screen, x+w*0.28, y+h*0.55, w*0.44, h*0.35, stroke, clr, true)
	vector.StrokeLine(screen, x+w*0.28, y+h*0.76, x+w*0.72, y+h*0.76, stroke, clr, true)
}

// whitePixel is the source for solid-color triangles, created on first use.
var whitePixel *ebiten.Image

func solidSource() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

func drawTriangles(screen *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.Color) {
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, solidSource(), op)
}

// triangle maps t to a 0→1→0 wave with period 1.
func triangle(t float64) float64 {
	f := t - math.Floor(t)
	if f < 0.5 {
		return f * 2
	}
	return 2 - f*2
}

// diagonalGradient renders a top-left to bottom-right gradient through stops.
func diagonalGradient(size int, stops []color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if len(stops) == 0 {
		return img
	}
	span := float64(2 * (size - 1))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			t := 0.0
			if span > 0 {
				t = float64(x+y) / span
			}
			img.SetRGBA(x, y, gradientAt(stops, t))
		}
	}
	return img
}

// gradientAt samples evenly spaced stops at t in [0, 1].
func gradientAt(stops []color.RGBA, t float64) color.RGBA {
	if len(stops) == 1 {
		return stops[0]
	}
	t = utils.Clamp01(t)
	pos := t * float64(len(stops)-1)
	i := int(pos)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	f := pos - float64(i)
	a, b := stops[i], stops[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(utils.Lerp(float64(x), float64(y), f)))
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}
