package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrMalformedMap is returned by ParseMap for any map stream it cannot use.
var ErrMalformedMap = errors.New("config: malformed map")

// Map dimension limits
const (
	MaxMapDimension = 4096
	MaxTileID       = 7
)

// MapData is a parsed map file. Tiles is row-major, top row first.
type MapData struct {
	Height int
	Width  int
	Tiles  [][]int
}

// ParseMap reads the whitespace-separated map format: height, width, then
// height*width tile ids in 0..7.
func ParseMap(r io.Reader) (*MapData, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	n := 0
	next := func() (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("failed to read map: %w", err)
			}
			return 0, fmt.Errorf("%w: unexpected end after %d values", ErrMalformedMap, n)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: value %d: %q is not an integer", ErrMalformedMap, n, sc.Text())
		}
		n++
		return v, nil
	}

	height, err := next()
	if err != nil {
		return nil, err
	}
	width, err := next()
	if err != nil {
		return nil, err
	}
	if height <= 0 || width <= 0 || height > MaxMapDimension || width > MaxMapDimension {
		return nil, fmt.Errorf("%w: bad dimensions %dx%d", ErrMalformedMap, height, width)
	}

	tiles := make([][]int, height)
	for y := range tiles {
		tiles[y] = make([]int, width)
		for x := range tiles[y] {
			id, err := next()
			if err != nil {
				return nil, err
			}
			if id < 0 || id > MaxTileID {
				return nil, fmt.Errorf("%w: tile (%d,%d) has id %d", ErrMalformedMap, x, y, id)
			}
			tiles[y][x] = id
		}
	}

	if sc.Scan() {
		return nil, fmt.Errorf("%w: trailing data %q", ErrMalformedMap, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read map: %w", err)
	}

	return &MapData{Height: height, Width: width, Tiles: tiles}, nil
}
