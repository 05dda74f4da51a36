package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"log"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

const placeholderSize = 32

var placeholderColors = []color.RGBA{
	colornames.Orange,
	colornames.Crimson,
	colornames.Gold,
	colornames.Limegreen,
	colornames.Slategray,
	colornames.Violet,
}

// Assets owns the meshes and textures of a level
type Assets struct {
	fsys     fs.FS
	meshes   map[MeshHandle][]Vertex
	textures map[TextureHandle]*ebiten.Image
	next     int
}

// NewAssets creates an asset store reading textures from fsys
func NewAssets(fsys fs.FS) *Assets {
	return &Assets{
		fsys:     fsys,
		meshes:   make(map[MeshHandle][]Vertex),
		textures: make(map[TextureHandle]*ebiten.Image),
	}
}

// CreateMesh stores a copy of vertices and returns its handle
func (a *Assets) CreateMesh(vertices []Vertex) MeshHandle {
	a.next++
	h := MeshHandle(a.next)
	a.meshes[h] = append([]Vertex(nil), vertices...)
	return h
}

// LoadTexture decodes an image from the asset filesystem. A texture that
// cannot be loaded is replaced by a solid placeholder so the level still
// renders.
func (a *Assets) LoadTexture(p string) TextureHandle {
	img, err := a.decode(p)
	if err != nil {
		log.Printf("render: %v, using placeholder", err)
		img = placeholder(p)
	}

	a.next++
	h := TextureHandle(a.next)
	a.textures[h] = img
	return h
}

func (a *Assets) decode(p string) (*ebiten.Image, error) {
	if a.fsys == nil {
		return nil, fmt.Errorf("no asset filesystem for %s", p)
	}
	b, err := fs.ReadFile(a.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read texture %s: %w", p, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", p, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

func placeholder(p string) *ebiten.Image {
	img := ebiten.NewImage(placeholderSize, placeholderSize)
	img.Fill(placeholderColor(p))
	return img
}

func placeholderColor(p string) color.RGBA {
	sum := 0
	for _, r := range path.Base(p) {
		sum += int(r)
	}
	return placeholderColors[sum%len(placeholderColors)]
}

// Mesh returns the vertices of h
func (a *Assets) Mesh(h MeshHandle) ([]Vertex, bool) {
	m, ok := a.meshes[h]
	return m, ok
}

// Texture returns the image of h
func (a *Assets) Texture(h TextureHandle) (*ebiten.Image, bool) {
	t, ok := a.textures[h]
	return t, ok
}

// ReleaseMesh forgets h
func (a *Assets) ReleaseMesh(h MeshHandle) {
	delete(a.meshes, h)
}

// ReleaseTexture disposes the image of h
func (a *Assets) ReleaseTexture(h TextureHandle) {
	if img, ok := a.textures[h]; ok {
		img.Deallocate()
		delete(a.textures, h)
	}
}
