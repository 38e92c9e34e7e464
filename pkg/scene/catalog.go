package scene

import (
	"fmt"
	"sort"
)

// builders maps scene names to their constructors
var builders = map[string]func() *Scene{
	"cornell":    NewCornellScene,
	"showcase":   NewShowcaseScene,
	"spheregrid": func() *Scene { return NewSphereGridScene(12) },
}

// Names returns the available scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs the named scene
func Build(name string) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q, available: %v", name, Names())
	}
	return builder(), nil
}
