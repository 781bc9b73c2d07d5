// Package gamestate holds everything the bot is told at the start of a turn
// and reads it from YAML position files.
package gamestate

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/domino14/dropbot/board"
	"github.com/domino14/dropbot/piece"
)

var ErrBadPosition = errors.New("bad position")

// State is the input for one turn.
type State struct {
	Field *board.Grid
	// Current is the active piece at its live location, rotation 0.
	Current piece.Piece
	Next    piece.Kind
	// Combo counts consecutive line-clearing turns so far.
	Combo int
}

// NextPiece is the next piece at its spawn location.
func (s *State) NextPiece() piece.Piece {
	return piece.Spawn(s.Next)
}

// positionFile is the on-disk form. Exactly one of Field (match encoding)
// or Rows (picture) must be set.
type positionFile struct {
	Width    int      `yaml:"width,omitempty"`
	Height   int      `yaml:"height,omitempty"`
	Field    string   `yaml:"field,omitempty"`
	Rows     []string `yaml:"rows,omitempty"`
	Current  string   `yaml:"current"`
	Location []int    `yaml:"location,flow,omitempty"`
	Next     string   `yaml:"next"`
	Combo    int      `yaml:"combo"`
}

// Load decodes a YAML position. A missing location means the current piece
// is at its spawn point.
func Load(r io.Reader) (*State, error) {
	var pf positionFile
	if err := yaml.NewDecoder(r).Decode(&pf); err != nil {
		return nil, fmt.Errorf("decoding position: %w", err)
	}
	return pf.toState()
}

func LoadFile(path string) (*State, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	st, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return st, nil
}

func (pf *positionFile) toState() (*State, error) {
	var (
		grid *board.Grid
		err  error
	)
	switch {
	case pf.Field != "" && len(pf.Rows) > 0:
		return nil, fmt.Errorf("%w: both field and rows given", ErrBadPosition)
	case pf.Field != "":
		if pf.Width <= 0 || pf.Height <= 0 {
			return nil, fmt.Errorf("%w: field needs width and height", ErrBadPosition)
		}
		grid, err = board.ParseField(pf.Width, pf.Height, pf.Field)
	case len(pf.Rows) > 0:
		grid, err = board.FromRows(pf.Rows)
	default:
		return nil, fmt.Errorf("%w: no field or rows", ErrBadPosition)
	}
	if err != nil {
		return nil, err
	}

	cur, err := piece.ParseKind(pf.Current)
	if err != nil {
		return nil, fmt.Errorf("current piece: %w", err)
	}
	next, err := piece.ParseKind(pf.Next)
	if err != nil {
		return nil, fmt.Errorf("next piece: %w", err)
	}
	if pf.Combo < 0 {
		return nil, fmt.Errorf("%w: negative combo %d", ErrBadPosition, pf.Combo)
	}

	current := piece.Spawn(cur)
	switch len(pf.Location) {
	case 0:
	case 2:
		current = piece.New(cur, pf.Location[0], pf.Location[1])
	default:
		return nil, fmt.Errorf("%w: location needs two coordinates", ErrBadPosition)
	}
	return &State{Field: grid, Current: current, Next: next, Combo: pf.Combo}, nil
}

// Dump writes the state in the picture form Load reads.
func (s *State) Dump(w io.Writer) error {
	pf := positionFile{
		Rows:     s.Field.Rows(),
		Current:  s.Current.Kind().String(),
		Location: []int{s.Current.X(), s.Current.Y()},
		Next:     s.Next.String(),
		Combo:    s.Combo,
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&pf); err != nil {
		return err
	}
	return enc.Close()
}
