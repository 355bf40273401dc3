package animations

import (
	"sort"

	"github.com/automoto/onionrun/config"
)

// FromDefs builds a library from clip definitions, using counts to override
// frame counts for clips whose sheets were actually loaded.
func FromDefs(defs map[string]config.ClipDef, counts map[string]int) *Library {
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	lib := NewLibrary()
	for _, name := range names {
		def := defs[name]
		frames := def.Frames
		if n, ok := counts[name]; ok && n > 0 {
			frames = n
		}
		lib.Add(Clip{Name: name, Frames: frames, OneShot: def.OneShot})
	}
	return lib
}

// Default is the library built from the built-in clip table.
func Default() *Library {
	return FromDefs(config.Clips, nil)
}
