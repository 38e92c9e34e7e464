package shader

import (
	"testing"

	"github.com/Cong-Fanghao/NKU-CG/pkg/scene"
)

func TestNew_ResolvesMaterialKinds(t *testing.T) {
	tests := []struct {
		name string
		kind scene.MaterialKind
		want string
	}{
		{"lambertian", scene.KindLambertian, "*shader.Lambertian"},
		{"metal", scene.KindMetal, "*shader.Metal"},
		{"dielectric", scene.KindDielectric, "*shader.Dielectric"},
		{"textured", scene.KindTextured, "*shader.TexturedLambertian"},
		{"marble", scene.KindMarble, "*shader.Marble"},
		{"disney", scene.KindDisney, "*shader.Disney"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh := New(scene.NewMaterial(tt.name, tt.kind), nil)

			var got string
			switch sh.(type) {
			case *Lambertian:
				got = "*shader.Lambertian"
			case *Metal:
				got = "*shader.Metal"
			case *Dielectric:
				got = "*shader.Dielectric"
			case *TexturedLambertian:
				got = "*shader.TexturedLambertian"
			case *Marble:
				got = "*shader.Marble"
			case *Disney:
				got = "*shader.Disney"
			}
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestNew_UnknownKindFallsBack(t *testing.T) {
	mat := scene.NewMaterial("mystery", scene.MaterialKind(99))
	if _, ok := New(mat, nil).(*Lambertian); !ok {
		t.Error("Expected unknown material kind to fall back to Lambertian")
	}
}

func TestBuildTable_IndexesByMaterialID(t *testing.T) {
	sc := scene.NewScene()
	lambertianID := sc.AddMaterial(scene.NewMaterial("wall", scene.KindLambertian))
	metalID := sc.AddMaterial(scene.NewMaterial("mirror", scene.KindMetal))
	glassID := sc.AddMaterial(scene.NewMaterial("glass", scene.KindDielectric))

	shaders := BuildTable(sc)

	if len(shaders) != len(sc.Materials) {
		t.Fatalf("Expected %d shaders, got %d", len(sc.Materials), len(shaders))
	}
	if _, ok := shaders[lambertianID].(*Lambertian); !ok {
		t.Errorf("Expected Lambertian at id %d", lambertianID)
	}
	if _, ok := shaders[metalID].(*Metal); !ok {
		t.Errorf("Expected Metal at id %d", metalID)
	}
	if _, ok := shaders[glassID].(*Dielectric); !ok {
		t.Errorf("Expected Dielectric at id %d", glassID)
	}
}
