package leveldata

import (
	"embed"
	"io/fs"
)

//go:embed levels/*.txt
var builtin embed.FS

// Builtin holds the levels shipped inside the binary.
func Builtin() fs.FS {
	sub, err := fs.Sub(builtin, "levels")
	if err != nil {
		panic(err)
	}
	return sub
}
