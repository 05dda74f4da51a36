package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Renderer draws Assets meshes onto a target image. It keeps the current
// transform, texture and alpha between calls like an immediate-mode API.
type Renderer struct {
	assets *Assets
	dst    *ebiten.Image

	geo     ebiten.GeoM
	tex     TextureHandle
	offX    float64
	offY    float64
	alpha   float64
	verts   []ebiten.Vertex
	indices []uint16
}

// NewRenderer creates a renderer over assets
func NewRenderer(assets *Assets) *Renderer {
	return &Renderer{assets: assets, alpha: 1}
}

// Bind sets the target image for the following calls
func (r *Renderer) Bind(dst *ebiten.Image) {
	r.dst = dst
}

// Clear fills the target
func (r *Renderer) Clear(c color.Color) {
	if r.dst != nil {
		r.dst.Fill(c)
	}
}

// SetTransform sets the model-to-screen transform
func (r *Renderer) SetTransform(m ebiten.GeoM) {
	r.geo = m
}

// SetTexture selects the texture and its UV offset
func (r *Renderer) SetTexture(t TextureHandle, offX, offY float64) {
	r.tex = t
	r.offX = offX
	r.offY = offY
}

// SetAlpha sets the opacity for following draws
func (r *Renderer) SetAlpha(a float64) {
	r.alpha = a
}

// DrawMesh draws mesh h with the current state
func (r *Renderer) DrawMesh(h MeshHandle) {
	if r.dst == nil || r.alpha <= 0 {
		return
	}
	mesh, ok := r.assets.Mesh(h)
	if !ok || len(mesh) == 0 {
		return
	}
	img, ok := r.assets.Texture(r.tex)
	if !ok {
		return
	}

	b := img.Bounds()
	r.verts = toEbiten(r.verts, mesh, r.geo, b.Dx(), b.Dy(), r.offX, r.offY, r.alpha)
	r.indices = r.indices[:0]
	for i := range r.verts {
		r.indices = append(r.indices, uint16(i))
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.Blend = ebiten.BlendSourceOver
	r.dst.DrawTriangles(r.verts, r.indices, img, op)
}
