package pdb

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/TuftsBCB/seq"
	"github.com/TuftsBCB/structure"
)

// ErrNoModels is returned by FirstModel when an entry has no models.
var ErrNoModels = errors.New("The PDB entry has no models.")

// Entry is a parsed structure file. Models are stored in the order in which
// they first appear in the file.
type Entry struct {
	Path   string
	IdCode string
	Models []*Model
}

// Model is a single structural model. Most files contain exactly one; NMR
// ensembles contain several.
type Model struct {
	Entry  *Entry
	Num    int
	Chains []*Chain
}

// Chain is a labeled, ordered collection of residues. A blank chain
// identifier in a PDB file is stored as "_".
type Chain struct {
	Model    *Model
	Ident    string
	Residues []*Residue
}

// ResidueId uniquely identifies a residue within a chain.
//
// Het is empty for standard residues, "W" for waters and "H_" followed by the
// residue name for every other hetero group. ICode is the insertion code,
// which is ' ' when absent.
type ResidueId struct {
	Het    string
	SeqNum int
	ICode  byte
}

type Residue struct {
	Id     ResidueId
	Name   string
	Abbrev seq.Residue
	Atoms  []Atom
}

// Atom is a single ATOM or HETATM record. Residue is the identifier of the
// residue that owns the atom.
type Atom struct {
	Serial    int
	Name      string
	AltLoc    byte
	Het       bool
	Occupancy float64
	BFactor   float64
	Element   string
	Residue   ResidueId
	structure.Coords
}

// FirstModel returns the first model of the entry. Callers that only care
// about a single conformation should use this; additional models (as in NMR
// ensembles) are never merged.
func (e *Entry) FirstModel() (*Model, error) {
	if len(e.Models) == 0 {
		return nil, fmt.Errorf("'%s': %w", e.Path, ErrNoModels)
	}
	return e.Models[0], nil
}

// Chain returns the chain with the given identifier.
// If such a chain does not exist, nil is returned.
func (m *Model) Chain(ident string) *Chain {
	for _, chain := range m.Chains {
		if chain.Ident == ident {
			return chain
		}
	}
	return nil
}

// Atoms returns every atom in the chain, in residue order.
func (c *Chain) Atoms() []Atom {
	n := 0
	for _, r := range c.Residues {
		n += len(r.Atoms)
	}
	atoms := make([]Atom, 0, n)
	for _, r := range c.Residues {
		atoms = append(atoms, r.Atoms...)
	}
	return atoms
}

// Sequence returns the one letter abbreviations of all non-hetero residues
// in the chain.
func (c *Chain) Sequence() []seq.Residue {
	rs := make([]seq.Residue, 0, len(c.Residues))
	for _, r := range c.Residues {
		if !r.Id.IsHetero() {
			rs = append(rs, r.Abbrev)
		}
	}
	return rs
}

// WithoutHetero returns a copy of the chain that omits hetero residues
// (ligands and waters). The residues themselves are shared.
func (c *Chain) WithoutHetero() *Chain {
	nc := &Chain{
		Model:    c.Model,
		Ident:    c.Ident,
		Residues: make([]*Residue, 0, len(c.Residues)),
	}
	for _, r := range c.Residues {
		if !r.Id.IsHetero() {
			nc.Residues = append(nc.Residues, r)
		}
	}
	return nc
}

// IsHetero returns true if the residue is a water or another hetero group.
func (id ResidueId) IsHetero() bool {
	return len(id.Het) > 0
}

func (id ResidueId) String() string {
	s := strconv.Itoa(id.SeqNum)
	if id.ICode != ' ' && id.ICode != 0 {
		s += string(id.ICode)
	}
	if id.IsHetero() {
		return id.Het + " " + s
	}
	return s
}

func (r *Residue) String() string {
	return fmt.Sprintf("%s %s", r.Name, r.Id)
}
