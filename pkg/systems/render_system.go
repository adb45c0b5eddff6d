package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// particleBaseRadius 缩放为 1 时粒子的半径（世界像素）
const particleBaseRadius = 8.0

// RenderSystem 把 Frame 快照绘制到屏幕
//
// 职责范围：
//   - 世界实体：障碍物、掉落物、敌人、玩家、子弹、炸弹、爆炸
//   - 粒子
//   - 简单 HUD（生命值、炸弹数、钥匙、暂停/死亡提示）
//
// 所有实体用纯色几何图形绘制，纹理名按 particleColors 映射为颜色。
type RenderSystem struct {
	// ShowDebug 显示发射器数量等调试信息
	ShowDebug bool
	// HideHUD 不绘制生命值等玩家信息（粒子预览工具使用）
	HideHUD bool
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

var spriteColors = map[SpriteKind]color.RGBA{
	SpritePlayer:       {R: 0x4f, G: 0xc3, B: 0xf7, A: 0xff},
	SpriteEnemy:        {R: 0xb0, G: 0xbe, B: 0xc5, A: 0xff},
	SpritePlayerBullet: {R: 0xff, G: 0xee, B: 0x58, A: 0xff},
	SpriteEnemyBullet:  {R: 0xef, G: 0x53, B: 0x50, A: 0xff},
	SpriteBomb:         {R: 0x42, G: 0x42, B: 0x42, A: 0xff},
	SpriteExplosion:    {R: 0xff, G: 0x98, B: 0x00, A: 0xff},
	SpriteLootHeal:     {R: 0x66, G: 0xbb, B: 0x6a, A: 0xff},
	SpriteLootBomb:     {R: 0x8d, G: 0x6e, B: 0x63, A: 0xff},
	SpriteWall:         {R: 0x5d, G: 0x40, B: 0x37, A: 0xff},
	SpriteDoor:         {R: 0x79, G: 0x55, B: 0x48, A: 0xff},
	SpriteBarrel:       {R: 0xa1, G: 0x88, B: 0x7f, A: 0xff},
	SpriteChest:        {R: 0xff, G: 0xc1, B: 0x07, A: 0xff},
	SpriteExit:         {R: 0x26, G: 0xa6, B: 0x9a, A: 0x80},
}

var particleColors = map[string]color.RGBA{
	"spark_green":  {R: 0x00, G: 0xff, B: 0x00, A: 0xff},
	"spark_lime":   {R: 0xbf, G: 0xff, B: 0x00, A: 0xff},
	"spark_cyan":   {R: 0x00, G: 0xff, B: 0xff, A: 0xff},
	"spark_spring": {R: 0x00, G: 0xff, B: 0x7f, A: 0xff},
	"puff":         {R: 0xe0, G: 0xe0, B: 0xff, A: 0xff},
	"smoke":        {R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff},
}

// SpriteColor 返回实体类型对应的颜色，未知类型为洋红色
func SpriteColor(kind SpriteKind) color.RGBA {
	if c, ok := spriteColors[kind]; ok {
		return c
	}
	return color.RGBA{R: 0xff, B: 0xff, A: 0xff}
}

// ParticleColor 返回粒子纹理对应的颜色并乘上透明度（预乘 alpha）
func ParticleColor(texture string, alpha float64) color.RGBA {
	c, ok := particleColors[texture]
	if !ok {
		c = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return withAlpha(c, alpha)
}

func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	a := math.Max(0, math.Min(1, alpha)) * float64(c.A) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}

// toScreen 世界坐标转换为屏幕坐标
func (f *Frame) toScreen(wx, wy float64) (float32, float32) {
	return float32((wx-f.CameraX)*f.Zoom + f.ViewportW/2), float32((wy-f.CameraY)*f.Zoom + f.ViewportH/2)
}

// Draw 绘制一帧
func (r *RenderSystem) Draw(screen *ebiten.Image, f Frame) {
	screen.Fill(color.RGBA{R: 0x1b, G: 0x1f, B: 0x2a, A: 0xff})

	// 世界边界
	x0, y0 := f.toScreen(0, 0)
	vector.StrokeRect(screen, x0, y0, float32(f.WorldWidth*f.Zoom), float32(f.WorldHeight*f.Zoom), 2, color.RGBA{R: 0x37, G: 0x47, B: 0x4f, A: 0xff}, false)

	for _, s := range f.Sprites {
		r.drawSprite(screen, &f, s)
	}

	for _, p := range f.Particles {
		x, y := f.toScreen(p.X, p.Y)
		radius := float32(particleBaseRadius * p.Scale * f.Zoom)
		vector.DrawFilledCircle(screen, x, y, radius, ParticleColor(p.Texture, p.Alpha), true)
	}

	if !r.HideHUD {
		r.drawHUD(screen, f)
	}
}

func (r *RenderSystem) drawSprite(screen *ebiten.Image, f *Frame, s Sprite) {
	cx, cy := f.toScreen(s.X, s.Y)
	w := float32(s.W * f.Zoom)
	h := float32(s.H * f.Zoom)
	clr := SpriteColor(s.Kind)

	switch s.Kind {
	case SpriteExplosion:
		vector.DrawFilledCircle(screen, cx, cy, w/2, withAlpha(clr, s.Alpha*0.6), true)
	case SpriteEnemy:
		vector.DrawFilledCircle(screen, cx, cy, w/2, clr, true)
		if s.Aware {
			vector.StrokeCircle(screen, cx, cy, w/2, 2, color.RGBA{R: 0xef, G: 0x53, B: 0x50, A: 0xff}, true)
		}
		r.drawHealthBar(screen, cx-w/2, cy-h/2-6, w, s.Health, s.Max)
	case SpritePlayerBullet, SpriteEnemyBullet, SpriteBomb:
		vector.DrawFilledCircle(screen, cx, cy, w/2, clr, true)
	default:
		vector.DrawFilledRect(screen, cx-w/2, cy-h/2, w, h, clr, false)
	}
}

func (r *RenderSystem) drawHealthBar(screen *ebiten.Image, x, y, w float32, health, maxHealth int) {
	if maxHealth <= 0 {
		return
	}
	ratio := float32(health) / float32(maxHealth)
	vector.DrawFilledRect(screen, x, y, w, 3, color.RGBA{R: 0x42, G: 0x42, B: 0x42, A: 0xff}, false)
	vector.DrawFilledRect(screen, x, y, w*ratio, 3, color.RGBA{R: 0x66, G: 0xbb, B: 0x6a, A: 0xff}, false)
}

func (r *RenderSystem) drawHUD(screen *ebiten.Image, f Frame) {
	hud := f.HUD
	r.drawHealthBar(screen, 10, 10, 200, hud.Health, hud.MaxHealth)
	status := fmt.Sprintf("HP: %d/%d  Bombs: %d  Pos: (%.0f, %.0f)", hud.Health, hud.MaxHealth, hud.Bombs, hud.PlayerX, hud.PlayerY)
	if hud.HasKey {
		status += "  [KEY]"
	}
	ebitenutil.DebugPrintAt(screen, status, 10, 18)

	if r.ShowDebug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("level=%s tick=%d emitters=%d particles=%d",
			hud.Level, f.Tick, hud.Emitters, len(f.Particles)), 10, 34)
	}

	cx := int(f.ViewportW/2) - 40
	cy := int(f.ViewportH / 2)
	switch {
	case hud.Dead:
		ebitenutil.DebugPrintAt(screen, "GAME OVER", cx, cy)
	case hud.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", cx, cy)
	}
}
