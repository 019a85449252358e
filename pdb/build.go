package pdb

import (
	"fmt"
	"path"
	"strings"
)

// Builder assembles an Entry from a stream of atoms. It is used by the PDB
// reader in this package and by the PDBx/mmCIF reader, so that both formats
// produce exactly the same hierarchy.
//
// Models, chains and residues are kept in the order in which they are first
// seen. Atoms that share a name within a residue are alternate locations;
// only one is kept: the one with the highest occupancy, with the first one
// seen winning ties.
type Builder struct {
	entry    *Entry
	models   map[int]*Model
	chains   map[chainKey]*Chain
	residues map[residueKey]*Residue
	atoms    map[atomKey]int
}

type chainKey struct {
	model *Model
	ident string
}

type residueKey struct {
	chain *Chain
	id    ResidueId
}

type atomKey struct {
	residue *Residue
	name    string
}

// NewBuilder returns a builder for an entry read from the file path given.
func NewBuilder(fpath string) *Builder {
	return &Builder{
		entry:    &Entry{Path: fpath, Models: make([]*Model, 0, 1)},
		models:   make(map[int]*Model, 1),
		chains:   make(map[chainKey]*Chain, 2),
		residues: make(map[residueKey]*Residue, 100),
		atoms:    make(map[atomKey]int, 1000),
	}
}

// SetIdCode sets the identifier code of the entry being built.
func (b *Builder) SetIdCode(code string) {
	b.entry.IdCode = code
}

// Add adds an atom to the residue identified by atom.Residue in the given
// chain and model. The residue is created with the name given if it does not
// exist yet.
func (b *Builder) Add(model int, chain, resName string, atom Atom) {
	if atom.AltLoc == 0 {
		atom.AltLoc = ' '
	}
	res := b.getResidue(b.getChain(b.getModel(model), chain), resName,
		atom.Residue)

	key := atomKey{res, atom.Name}
	if i, ok := b.atoms[key]; ok {
		if atom.AltLoc != ' ' && atom.Occupancy > res.Atoms[i].Occupancy {
			res.Atoms[i] = atom
		}
		return
	}
	b.atoms[key] = len(res.Atoms)
	res.Atoms = append(res.Atoms, atom)
}

// Entry returns the entry built so far. If no atoms were added, an error is
// returned since the input almost certainly wasn't a structure file.
func (b *Builder) Entry() (*Entry, error) {
	e := b.entry
	if len(e.Models) == 0 {
		return nil, fmt.Errorf("The file '%s' does not appear to be a valid "+
			"structure file: no ATOM or HETATM records were found.", e.Path)
	}

	// If we couldn't find an Id code, inspect the base name of the file path.
	if len(e.IdCode) == 0 {
		name := path.Base(e.Path)
		switch {
		case len(name) >= 7 && name[0:3] == "pdb":
			e.IdCode = name[3:7]
		case len(name) == 7: // cath
			e.IdCode = name[0:4]
		case strings.HasPrefix(name, "AF-"): // AlphaFold DB
			if i := strings.Index(name, "-model"); i > 3 {
				e.IdCode = name[3:i]
			}
		}
	}
	return e, nil
}

func (b *Builder) getModel(num int) *Model {
	if m, ok := b.models[num]; ok {
		return m
	}
	m := &Model{
		Entry:  b.entry,
		Num:    num,
		Chains: make([]*Chain, 0, 2),
	}
	b.models[num] = m
	b.entry.Models = append(b.entry.Models, m)
	return m
}

func (b *Builder) getChain(m *Model, ident string) *Chain {
	key := chainKey{m, ident}
	if c, ok := b.chains[key]; ok {
		return c
	}
	c := &Chain{
		Model:    m,
		Ident:    ident,
		Residues: make([]*Residue, 0, 100),
	}
	b.chains[key] = c
	m.Chains = append(m.Chains, c)
	return c
}

func (b *Builder) getResidue(c *Chain, name string, id ResidueId) *Residue {
	key := residueKey{c, id}
	if r, ok := b.residues[key]; ok {
		return r
	}
	r := &Residue{
		Id:     id,
		Name:   name,
		Abbrev: Abbrev(name),
		Atoms:  make([]Atom, 0, 8),
	}
	b.residues[key] = r
	c.Residues = append(c.Residues, r)
	return r
}

// HetField returns the hetero field of a residue identifier for the given
// residue name. Waters get "W" and other hetero groups "H_" plus their name.
func HetField(het bool, resName string) string {
	if !het {
		return ""
	}
	if resName == "HOH" || resName == "WAT" {
		return "W"
	}
	return "H_" + resName
}
