package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/younwookim/platformer/internal/domain/entity"
)

// Version is written into every recording
const Version = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	N  int  `json:"n" msgpack:"n"`                       // Frame number
	L  bool `json:"l,omitempty" msgpack:"l,omitempty"`   // Left
	R  bool `json:"r,omitempty" msgpack:"r,omitempty"`   // Right
	U  bool `json:"u,omitempty" msgpack:"u,omitempty"`   // Up
	D  bool `json:"d,omitempty" msgpack:"d,omitempty"`   // Down
	J  bool `json:"j,omitempty" msgpack:"j,omitempty"`   // Jump
	F  bool `json:"f,omitempty" msgpack:"f,omitempty"`   // Fire
	ZI bool `json:"zi,omitempty" msgpack:"zi,omitempty"` // ZoomIn
	ZO bool `json:"zo,omitempty" msgpack:"zo,omitempty"` // ZoomOut
}

// NewFrameInput converts an input snapshot for frame n
func NewFrameInput(n int, in entity.Input) FrameInput {
	return FrameInput{
		N:  n,
		L:  in.Left,
		R:  in.Right,
		U:  in.Up,
		D:  in.Down,
		J:  in.Jump,
		F:  in.Fire,
		ZI: in.ZoomIn,
		ZO: in.ZoomOut,
	}
}

// Input returns the snapshot recorded in fi
func (fi FrameInput) Input() entity.Input {
	return entity.Input{
		Left:    fi.L,
		Right:   fi.R,
		Up:      fi.U,
		Down:    fi.D,
		Jump:    fi.J,
		Fire:    fi.F,
		ZoomIn:  fi.ZI,
		ZoomOut: fi.ZO,
	}
}

// ReplayData contains all data needed to replay a level session.
// The simulation has no randomness, so the map and tick length are enough
// to reproduce it.
type ReplayData struct {
	Version   string       `json:"version" msgpack:"version"`
	Map       string       `json:"map" msgpack:"map"`
	DT        float64      `json:"dt" msgpack:"dt"`
	StartTime string       `json:"startTime" msgpack:"startTime"`
	Frames    []FrameInput `json:"frames" msgpack:"frames"`
}

// Format is a replay file encoding
type Format int

const (
	FormatJSON Format = iota
	FormatMsgpack
)

// FormatFor picks the encoding from a file name: .msgpack files are
// msgpack, anything else JSON.
func FormatFor(filename string) Format {
	if strings.EqualFold(filepath.Ext(filename), ".msgpack") {
		return FormatMsgpack
	}
	return FormatJSON
}

// Encode writes data to w
func Encode(w io.Writer, data *ReplayData, format Format) error {
	switch format {
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(data)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	default:
		return fmt.Errorf("unknown replay format %d", format)
	}
}

// Decode reads replay data from r
func Decode(r io.Reader, format Format) (*ReplayData, error) {
	var data ReplayData
	var err error
	switch format {
	case FormatMsgpack:
		err = msgpack.NewDecoder(r).Decode(&data)
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&data)
	default:
		err = fmt.Errorf("unknown replay format %d", format)
	}
	if err != nil {
		return nil, err
	}
	return &data, nil
}
