package render

import "github.com/hajimehoshi/ebiten/v2"

// Vertex is a mesh vertex in model space with texture coordinates
// normalized to the texture size.
type Vertex struct {
	X, Y float64
	U, V float64
}

// MeshHandle identifies a mesh created by Assets
type MeshHandle int

// TextureHandle identifies a texture loaded by Assets
type TextureHandle int

// Quad returns a unit quad centered on the origin as two triangles.
// uv is {u0, v0, u1, v1}; v0 maps to the top edge (+y).
func Quad(uv [4]float64) []Vertex {
	u0, v0, u1, v1 := uv[0], uv[1], uv[2], uv[3]
	bl := Vertex{X: -0.5, Y: -0.5, U: u0, V: v1}
	br := Vertex{X: 0.5, Y: -0.5, U: u1, V: v1}
	tr := Vertex{X: 0.5, Y: 0.5, U: u1, V: v0}
	tl := Vertex{X: -0.5, Y: 0.5, U: u0, V: v0}
	return []Vertex{bl, br, tr, bl, tr, tl}
}

// toEbiten converts mesh vertices to screen-space ebiten vertices.
// Texture coordinates are shifted by (offX, offY) and scaled to a texture
// of texW x texH pixels. alpha is a straight-alpha vertex color scale.
func toEbiten(dst []ebiten.Vertex, mesh []Vertex, m ebiten.GeoM, texW, texH int, offX, offY, alpha float64) []ebiten.Vertex {
	dst = dst[:0]
	a := float32(alpha)
	for _, v := range mesh {
		x, y := m.Apply(v.X, v.Y)
		dst = append(dst, ebiten.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   float32((v.U + offX) * float64(texW)),
			SrcY:   float32((v.V + offY) * float64(texH)),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: a,
		})
	}
	return dst
}
