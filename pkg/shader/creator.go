package shader

import (
	"github.com/Cong-Fanghao/NKU-CG/pkg/scene"
)

// New builds the shader matching the material kind. Unknown kinds fall back
// to Lambertian so a scene with a bad material still renders something.
func New(mat scene.Material, textures []scene.Texture) Shader {
	switch mat.Kind {
	case scene.KindLambertian:
		return NewLambertian(mat)
	case scene.KindMetal:
		return NewMetal(mat)
	case scene.KindDielectric:
		return NewDielectric(mat)
	case scene.KindTextured:
		return NewTexturedLambertian(mat, textures)
	case scene.KindMarble:
		return NewMarble(mat)
	case scene.KindDisney:
		return NewDisney(mat)
	default:
		return NewLambertian(mat)
	}
}

// BuildTable resolves every material in the scene to a shader. Shaders are
// indexed by material id, so a HitRecord's MaterialID looks its shader up
// directly.
func BuildTable(sc *scene.Scene) []Shader {
	shaders := make([]Shader, len(sc.Materials))
	for i, mat := range sc.Materials {
		shaders[i] = New(mat, sc.Textures)
	}
	return shaders
}
