package level

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/infrastructure/config"
	"github.com/younwookim/platformer/internal/infrastructure/render"
)

// Assets creates and releases the level's meshes and textures
type Assets interface {
	CreateMesh(vertices []render.Vertex) render.MeshHandle
	LoadTexture(path string) render.TextureHandle
	ReleaseMesh(h render.MeshHandle)
	ReleaseTexture(h render.TextureHandle)
}

// Renderer is an immediate-mode draw target
type Renderer interface {
	Clear(c color.Color)
	SetTransform(m ebiten.GeoM)
	SetTexture(t render.TextureHandle, offX, offY float64)
	SetAlpha(a float64)
	DrawMesh(h render.MeshHandle)
}

// AudioSink plays clips for the level
type AudioSink interface {
	system.AudioSink
	StopAll()
}

// MapSource loads map files by name
type MapSource interface {
	LoadMap(name string) (*config.MapData, error)
}

// Deps are the collaborators a Level calls into
type Deps struct {
	Assets Assets
	Audio  AudioSink
	Maps   MapSource
}

// Headless returns collaborators that load maps from maps and discard
// everything else. Used for replays and tests.
func Headless(maps MapSource) Deps {
	return Deps{
		Assets: &nopAssets{},
		Audio:  nopAudio{},
		Maps:   maps,
	}
}

type nopAssets struct {
	next int
}

func (a *nopAssets) CreateMesh([]render.Vertex) render.MeshHandle {
	a.next++
	return render.MeshHandle(a.next)
}

func (a *nopAssets) LoadTexture(string) render.TextureHandle {
	a.next++
	return render.TextureHandle(a.next)
}

func (a *nopAssets) ReleaseMesh(render.MeshHandle)       {}
func (a *nopAssets) ReleaseTexture(render.TextureHandle) {}

type nopAudio struct{}

func (nopAudio) Play(string, bool) {}
func (nopAudio) StopAll()          {}

// MapFunc adapts a function to MapSource
type MapFunc func(name string) (*config.MapData, error)

// LoadMap calls f
func (f MapFunc) LoadMap(name string) (*config.MapData, error) {
	return f(name)
}
