package scene

import "github.com/Cong-Fanghao/NKU-CG/pkg/core"

// Texture is an image texture referenced from materials by integer id.
// Shaders do not sample texture pixels yet; materials that name a valid
// texture id fall back to a procedural stand-in pattern. Pixel sampling is
// the stated extension point.
type Texture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major RGB
}

// NewTexture creates a texture from pixel data
func NewTexture(width, height int, pixels []core.Vec3) Texture {
	return Texture{Width: width, Height: height, Pixels: pixels}
}
