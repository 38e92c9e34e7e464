package scene

import "github.com/Cong-Fanghao/NKU-CG/pkg/core"

// MaterialKind discriminates which shader a material resolves to.
type MaterialKind int

const (
	KindLambertian MaterialKind = iota
	KindMetal
	KindDielectric
	KindTextured
	KindMarble
	KindDisney
)

// propertyValue is a tagged union over the supported property types.
type propertyValue struct {
	rgb     core.Vec3
	float   float64
	integer int
	kind    int // 0 rgb, 1 float, 2 int
}

// PropertySet is a named, typed key-value store read by shader constructors.
// Absent keys are not errors: every lookup reports presence and the shader
// substitutes its documented default.
type PropertySet struct {
	values map[string]propertyValue
}

// NewPropertySet creates an empty property set
func NewPropertySet() PropertySet {
	return PropertySet{values: make(map[string]propertyValue)}
}

// SetRGB stores an RGB property
func (p PropertySet) SetRGB(name string, value core.Vec3) PropertySet {
	p.values[name] = propertyValue{rgb: value, kind: 0}
	return p
}

// SetFloat stores a float property
func (p PropertySet) SetFloat(name string, value float64) PropertySet {
	p.values[name] = propertyValue{float: value, kind: 1}
	return p
}

// SetInt stores an integer property
func (p PropertySet) SetInt(name string, value int) PropertySet {
	p.values[name] = propertyValue{integer: value, kind: 2}
	return p
}

// RGB looks up an RGB property
func (p PropertySet) RGB(name string) (core.Vec3, bool) {
	v, ok := p.values[name]
	if !ok || v.kind != 0 {
		return core.Vec3{}, false
	}
	return v.rgb, true
}

// Float looks up a float property
func (p PropertySet) Float(name string) (float64, bool) {
	v, ok := p.values[name]
	if !ok || v.kind != 1 {
		return 0, false
	}
	return v.float, true
}

// Int looks up an integer property
func (p PropertySet) Int(name string) (int, bool) {
	v, ok := p.values[name]
	if !ok || v.kind != 2 {
		return 0, false
	}
	return v.integer, true
}

// RGBOr returns the property value or the given default
func (p PropertySet) RGBOr(name string, def core.Vec3) core.Vec3 {
	if v, ok := p.RGB(name); ok {
		return v
	}
	return def
}

// FloatOr returns the property value or the given default
func (p PropertySet) FloatOr(name string, def float64) float64 {
	if v, ok := p.Float(name); ok {
		return v
	}
	return def
}

// IntOr returns the property value or the given default
func (p PropertySet) IntOr(name string, def int) int {
	if v, ok := p.Int(name); ok {
		return v
	}
	return def
}

// Material is the scene-side description of a surface: a shader discriminator
// plus the properties its shader reads once at construction time.
type Material struct {
	Name       string
	Kind       MaterialKind
	Properties PropertySet
}

// NewMaterial creates a material of the given kind with an empty property set
func NewMaterial(name string, kind MaterialKind) Material {
	return Material{Name: name, Kind: kind, Properties: NewPropertySet()}
}
