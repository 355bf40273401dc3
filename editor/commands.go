package editor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/onionrun/actors"
	"github.com/automoto/onionrun/config"
	"github.com/automoto/onionrun/shared/gamemath"
	"github.com/automoto/onionrun/shared/leveldata"
	"github.com/charmbracelet/log"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
)

// Exec runs one command line:
//
//	place floor|platform|chaser|lobber
//	grid toggle|on|off|size N
//	save PATH
//	load PATH
func (e *Editor) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	args := fields[1:]

	var err error
	switch fields[0] {
	case "place":
		err = e.place(args)
	case "grid":
		err = e.grid(args)
	case "save":
		err = e.save(args)
	case "load":
		err = e.load(args)
	default:
		err = fmt.Errorf("%w %q", ErrUnknownCommand, fields[0])
	}
	if err != nil {
		log.Warn("editor command failed", "cmd", line, "err", err)
		return err
	}
	return nil
}

func (e *Editor) place(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: place floor|platform|chaser|lobber", ErrUsage)
	}
	at := e.Snap(e.cursor).Add(e.Camera)

	if size, ok := config.Editor.ObjectSizes[args[0]]; ok {
		e.Doc.Platforms = append(e.Doc.Platforms, gamemath.R(at.X, at.Y, size.X, size.Y))
		e.held = &Handle{Kind: ObjectPlatform, Index: len(e.Doc.Platforms) - 1}
		e.Status = "placed " + args[0]
		return nil
	}

	kind, err := actors.ParseKind(args[0])
	if err != nil {
		return fmt.Errorf("%w: place floor|platform|chaser|lobber", ErrUsage)
	}
	e.Doc.Enemies = append(e.Doc.Enemies, leveldata.EnemySpawn{Kind: kind.String(), Position: at})
	e.held = &Handle{Kind: ObjectEnemy, Index: len(e.Doc.Enemies) - 1}
	e.Status = "placed " + kind.String()
	return nil
}

func (e *Editor) grid(args []string) error {
	usage := fmt.Errorf("%w: grid toggle|on|off|size N", ErrUsage)
	if len(args) == 0 {
		return usage
	}
	switch args[0] {
	case "toggle":
		e.ShowGrid = !e.ShowGrid
	case "on":
		e.ShowGrid = true
	case "off":
		e.ShowGrid = false
	case "size":
		if len(args) != 2 {
			return usage
		}
		n, err := strconv.Atoi(args[1])
		if err != nil || n <= 0 {
			return usage
		}
		e.GridSize = n
	default:
		return usage
	}
	e.Status = fmt.Sprintf("grid %d, shown %t", e.GridSize, e.ShowGrid)
	return nil
}

func (e *Editor) save(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: save PATH", ErrUsage)
	}
	fit(e.Doc)
	if err := leveldata.Save(args[0], e.Doc); err != nil {
		return err
	}
	e.Status = "saved " + args[0]
	log.Info("level saved", "path", args[0])
	return nil
}

func (e *Editor) load(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: load PATH", ErrUsage)
	}
	doc, err := leveldata.LoadFile(args[0])
	if err != nil {
		return err
	}
	e.Doc = doc
	e.held = nil
	e.Status = "loaded " + args[0]
	log.Info("level loaded into editor", "path", args[0])
	return nil
}
