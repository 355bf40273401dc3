package leveldata

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/automoto/onionrun/shared/gamemath"
)

// Keys of the text format.
const (
	keySize     = "size"
	keyPlatform = "platform"
	keyPlayer   = "player"
	keyEnemy    = "enemy"
)

// Parse reads the line-oriented key=value level format:
//
//	size=W,H
//	platform=x,y,w,h
//	player=x,y
//	enemy=x,y[,kind]
//
// Blank lines and lines starting with # are skipped and unknown keys are
// ignored. Any malformed line fails the whole parse with a *ParseError.
func Parse(r io.Reader) (*Level, error) {
	lvl := New(0, 0)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		key, value, ok := strings.Cut(text, "=")
		if !ok {
			return nil, &ParseError{Line: line, Key: text}
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if err := lvl.apply(key, value); err != nil {
			return nil, &ParseError{Line: line, Key: key, Value: value, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return lvl, nil
}

func (l *Level) apply(key, value string) error {
	switch key {
	case keySize:
		n, err := dimensions(value)
		if err != nil {
			return err
		}
		l.Width, l.Height = n[0], n[1]
	case keyPlatform:
		n, err := numbers(value, 4)
		if err != nil {
			return err
		}
		l.Platforms = append(l.Platforms, gamemath.R(n[0], n[1], n[2], n[3]))
	case keyPlayer:
		n, err := numbers(value, 2)
		if err != nil {
			return err
		}
		l.PlayerSpawn = gamemath.Vec(n[0], n[1])
	case keyEnemy:
		kind := DefaultEnemyKind
		fields := strings.Split(value, ",")
		if len(fields) == 3 {
			kind = strings.TrimSpace(fields[2])
			value = strings.Join(fields[:2], ",")
		}
		n, err := numbers(value, 2)
		if err != nil {
			return err
		}
		l.Enemies = append(l.Enemies, EnemySpawn{Kind: kind, Position: gamemath.Vec(n[0], n[1])})
	}
	return nil
}

// numbers parses exactly want comma-separated finite numbers.
func numbers(value string, want int) ([]float64, error) {
	fields, err := split(value, want)
	if err != nil {
		return nil, err
	}
	out := make([]float64, want)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%q is not a finite number", f)
		}
		out[i] = v
	}
	return out, nil
}

// dimensions parses a non-negative integer width and height.
func dimensions(value string) ([2]int, error) {
	var out [2]int
	fields, err := split(value, len(out))
	if err != nil {
		return out, err
	}
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return out, err
		}
		if v < 0 {
			return out, fmt.Errorf("negative size %d", v)
		}
		out[i] = v
	}
	return out, nil
}

func split(value string, want int) ([]string, error) {
	fields := strings.Split(value, ",")
	if len(fields) != want {
		return nil, fmt.Errorf("want %d values, got %d", want, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields, nil
}

// Write emits l in the text format Parse reads.
func Write(w io.Writer, l *Level) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s=%d,%d\n", keySize, l.Width, l.Height)
	fmt.Fprintf(bw, "%s=%s,%s\n", keyPlayer, num(l.PlayerSpawn.X), num(l.PlayerSpawn.Y))
	for _, p := range l.Platforms {
		fmt.Fprintf(bw, "%s=%s,%s,%s,%s\n", keyPlatform, num(p.X), num(p.Y), num(p.W), num(p.H))
	}
	for _, e := range l.Enemies {
		fmt.Fprintf(bw, "%s=%s,%s,%s\n", keyEnemy, num(e.Position.X), num(e.Position.Y), e.Kind)
	}
	return bw.Flush()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
