// Package ui renders the top-down arena view and the HUD/menu overlays and
// adapts ebiten input to the game's action model.
package ui

import (
	"fmt"
	"image/color"
	"log"

	cfg "github.com/automoto/lostpath/config"
	"github.com/automoto/lostpath/fonts"
	"github.com/automoto/lostpath/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"
)

type overlayMode int

const (
	overlayNone overlayMode = iota
	overlayMenu
	overlayPause
	overlayVictory
)

// Overlay is the Presenter the game writes to. It keeps the last value of
// every field and draws them on top of the world each frame.
type Overlay struct {
	Scores  game.ScoreBoard
	LoadErr error

	score, level int
	clock        string
	urgent       bool
	tokens       [cfg.TokenTypeCount]int
	hudVisible   bool
	mode         overlayMode
	victoryText  string
	victoryScore int
	highScores   []game.ScoreEntry

	banner      string
	bannerAlpha float32
	bannerTween *gween.Tween

	drawDistance float64
}

func NewOverlay(scores game.ScoreBoard) *Overlay {
	return &Overlay{Scores: scores, level: 1, mode: overlayMenu}
}

func (o *Overlay) SetScore(score int)   { o.score = score }
func (o *Overlay) SetLevel(level int)   { o.level = level }
func (o *Overlay) SetHUDVisible(v bool) { o.hudVisible = v }

func (o *Overlay) SetTimer(clock string, urgent bool) {
	o.clock, o.urgent = clock, urgent
}

func (o *Overlay) SetTokenCount(t cfg.TokenType, n int) {
	if t < 0 || int(t) >= len(o.tokens) {
		return
	}
	o.tokens[t] = n
}

// ShowMenu switches to the title overlay and refreshes the high scores.
func (o *Overlay) ShowMenu() {
	o.mode = overlayMenu
	o.highScores = nil
	if o.Scores == nil {
		return
	}
	scores, err := o.Scores.ListScores()
	if err != nil {
		log.Printf("Warning: failed to list scores: %v", err)
		return
	}
	o.highScores = scores
}

func (o *Overlay) ShowPause() { o.mode = overlayPause }

func (o *Overlay) ShowVictory(text string, score int) {
	o.mode = overlayVictory
	o.victoryText = text
	o.victoryScore = score
}

func (o *Overlay) HideAll() { o.mode = overlayNone }

// SetLevelBanner shows text fading in; an empty text hides the banner.
func (o *Overlay) SetLevelBanner(text string) {
	o.banner = text
	if text == "" {
		o.bannerTween = nil
		o.bannerAlpha = 0
		return
	}
	o.bannerAlpha = 0
	o.bannerTween = gween.New(0, 1, float32(cfg.HUD.BannerFadeIn), ease.OutQuad)
}

func (o *Overlay) SetDrawDistance(d float64) { o.drawDistance = d }

// DrawDistance is the last distance the game published.
func (o *Overlay) DrawDistance() float64 { return o.drawDistance }

// Update advances overlay animations.
func (o *Overlay) Update(dt float64) {
	if o.bannerTween == nil {
		return
	}
	a, done := o.bannerTween.Update(float32(dt))
	o.bannerAlpha = a
	if done {
		o.bannerTween = nil
	}
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.hudVisible {
		o.drawHUD(screen)
	}
	if o.banner != "" {
		c := withAlpha(cfg.HUD.BannerColor, o.bannerAlpha)
		drawCentered(screen, o.banner, fonts.Banner.Get(), screen.Bounds().Dy()/3, c)
	}

	switch o.mode {
	case overlayMenu:
		o.drawMenu(screen)
	case overlayPause:
		o.drawPause(screen)
	case overlayVictory:
		o.drawVictory(screen)
	}
}

func (o *Overlay) drawHUD(screen *ebiten.Image) {
	face := fonts.Regular.Get()
	x := cfg.HUD.Margin
	y := cfg.HUD.Margin + cfg.HUD.LineHeight

	text.Draw(screen, fmt.Sprintf("Score %d", o.score), face, x, y, cfg.HUD.TextColor)
	text.Draw(screen, fmt.Sprintf("Level %d", o.level), face, x, y+cfg.HUD.LineHeight, cfg.HUD.TextColor)

	timerColor := cfg.HUD.TextColor
	if o.urgent {
		timerColor = cfg.HUD.UrgentColor
	}
	w := text.BoundString(face, o.clock).Dx()
	text.Draw(screen, o.clock, face, screen.Bounds().Dx()-cfg.HUD.Margin-w, y, timerColor)

	// Collected counts, one swatch per token type.
	ty := screen.Bounds().Dy() - cfg.HUD.Margin
	tx := cfg.HUD.Margin
	for t := cfg.TokenType(0); t < cfg.TokenTypeCount; t++ {
		swatch := float32(cfg.HUD.LineHeight) * 0.6
		vector.FillRect(screen, float32(tx), float32(ty)-swatch, swatch, swatch, cfg.HUD.TokenColors[t], false)
		label := fmt.Sprintf("%s %d", t, o.tokens[t])
		text.Draw(screen, label, face, tx+int(swatch)+6, ty, cfg.HUD.TextColor)
		tx += int(swatch) + 6 + text.BoundString(face, label).Dx() + 18
	}
}

func (o *Overlay) drawMenu(screen *ebiten.Image) {
	fillScreen(screen, cfg.Menu.OverlayColor)

	drawCentered(screen, cfg.C.Title, fonts.Title.Get(), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	face := fonts.Regular.Get()
	y := int(cfg.Menu.MenuStartY)
	if o.LoadErr != nil {
		drawCentered(screen, "Assets failed to load", face, y, cfg.HUD.UrgentColor)
		drawCentered(screen, o.LoadErr.Error(), fonts.Small.Get(), y+cfg.HUD.LineHeight, cfg.HUD.UrgentColor)
		return
	}
	drawCentered(screen, "Press Enter to start", face, y, cfg.Menu.TextColorSelected)

	step := int(cfg.Menu.MenuItemHeight + cfg.Menu.MenuItemGap)
	y += 2 * step
	if len(o.highScores) > 0 {
		drawCentered(screen, "High scores", face, y, cfg.Menu.TitleColor)
	}
	for i, e := range o.highScores {
		y += int(cfg.Menu.MenuItemHeight)
		line := fmt.Sprintf("%2d.  %5d   level %d", i+1, e.Score, e.Level)
		drawCentered(screen, line, fonts.Small.Get(), y, cfg.Menu.TextColorNormal)
	}
	drawHint(screen, "WASD move  Space jump  E push  Mouse look  M mute")
}

func (o *Overlay) drawPause(screen *ebiten.Image) {
	fillScreen(screen, cfg.Menu.OverlayColor)
	drawCentered(screen, "Paused", fonts.Title.Get(), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)
	drawCentered(screen, "Esc resume   Backspace quit to menu", fonts.Regular.Get(), int(cfg.Menu.MenuStartY), cfg.Menu.TextColorSelected)
}

func (o *Overlay) drawVictory(screen *ebiten.Image) {
	fillScreen(screen, cfg.Menu.OverlayColor)
	drawCentered(screen, o.victoryText, fonts.Title.Get(), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)
	drawCentered(screen, fmt.Sprintf("Score %d", o.victoryScore), fonts.Regular.Get(), int(cfg.Menu.MenuStartY), cfg.HUD.TextColor)
	drawHint(screen, "Enter play again   Backspace menu")
}

func fillScreen(screen *ebiten.Image, c color.RGBA) {
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, c color.Color) {
	w := text.BoundString(face, s).Dx()
	text.Draw(screen, s, face, (screen.Bounds().Dx()-w)/2, y, c)
}

func drawHint(screen *ebiten.Image, s string) {
	drawCentered(screen, s, fonts.Small.Get(), screen.Bounds().Dy()-12, cfg.Menu.TextColorNormal)
}

func withAlpha(c color.RGBA, a float32) color.RGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}
