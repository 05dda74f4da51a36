package level

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/platformer/internal/domain/entity"
	"golang.org/x/image/colornames"
)

// Draw renders the visible tiles and objects. It does not change level
// state.
func (l *Level) Draw(r Renderer) {
	r.Clear(colornames.Dodgerblue)
	if l.grid == nil {
		return
	}

	view := l.camera.View(l.cfg.Display.ScreenWidth, l.cfg.Display.ScreenHeight)
	l.drawTiles(r, view)
	l.drawObjects(r, view)
}

func (l *Level) drawTiles(r Renderer, view ebiten.GeoM) {
	b := l.camera.Bounds(l.grid.Height())
	offset := l.cfg.Sprites.Tiles.Offset

	r.SetAlpha(1)
	for row := max(b.MinRow, 0); row <= min(b.MaxRow, l.grid.Height()-1); row++ {
		for col := max(b.MinCol, 0); col <= min(b.MaxCol, l.grid.Width()-1); col++ {
			id := l.grid.Tile(col, row)
			if !entity.IsBlockingTile(id) {
				continue
			}
			c := l.grid.CellCenter(col, row)

			var m ebiten.GeoM
			m.Translate(c.X, c.Y)
			m.Concat(view)

			r.SetTransform(m)
			r.SetTexture(l.tiles.tex, offset*float64(id-entity.TileBlockFirst), 0)
			r.DrawMesh(l.tiles.mesh)
		}
	}
}

func (l *Level) drawObjects(r Renderer, view ebiten.GeoM) {
	mapH := l.grid.Height()
	for obj := range l.pool.All() {
		if !l.camera.Visible(obj.Pos, mapH) {
			continue
		}
		s := l.sprites[obj.Kind]

		m := obj.Transform
		m.Concat(view)

		r.SetTransform(m)
		r.SetTexture(s.tex, obj.Anim.OffsetX, obj.Anim.OffsetY)
		r.SetAlpha(l.alpha(obj))
		r.DrawMesh(s.mesh)
	}
	r.SetAlpha(1)
}

// alpha blinks the player while it is invulnerable
func (l *Level) alpha(obj *entity.Object) float64 {
	if obj.Kind != entity.KindPlayer || obj.Hero == nil || obj.Hero.Mortal {
		return 1
	}
	phase := int(math.Floor(l.session.MortalCountdown * l.cfg.Player.BlinkRate))
	if phase%2 == 0 {
		return 1
	}
	return 0.3
}
