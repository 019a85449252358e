// Package contact finds residues of one atom set that lie within a distance
// cutoff of another atom set.
package contact

import (
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/TuftsBCB/contacts/pdb"
)

// Set is a set of residue identifiers.
type Set map[pdb.ResidueId]struct{}

// Has returns true if the residue identifier is in the set.
func (s Set) Has(id pdb.ResidueId) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the members of the set ordered by hetero field, sequence
// number and insertion code.
func (s Set) Sorted() []pdb.ResidueId {
	ids := make([]pdb.ResidueId, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return less(ids[i], ids[j]) })
	return ids
}

// Find returns the residues owning an atom in b that lies within threshold
// (inclusive) of any atom in a. The threshold is in the same units as the
// coordinates.
//
// An empty set is returned when either a or b is empty or when the threshold
// is not positive.
func Find(a, b []pdb.Atom, threshold float64) Set {
	found := make(Set)
	if len(a) == 0 || len(b) == 0 || threshold <= 0 {
		return found
	}

	tree := newTree(a)
	limit := threshold * threshold
	for i := range b {
		if found.Has(b[i].Residue) {
			continue
		}
		if _, dist := tree.Nearest(newSite(&b[i])); dist <= limit {
			found[b[i].Residue] = struct{}{}
		}
	}
	return found
}

// Chains is a convenience function that calls Find with every atom of both
// chains.
func Chains(a, b *pdb.Chain, threshold float64) Set {
	return Find(a.Atoms(), b.Atoms(), threshold)
}

// Partners maps each contact residue of b to the residues of a that have an
// atom within threshold of one of its atoms. Partner residues are sorted.
// Residues of b without partners are not in the map.
//
// The keys of the map returned are exactly the members of Find(a, b,
// threshold).
func Partners(a, b []pdb.Atom, threshold float64) map[pdb.ResidueId][]pdb.ResidueId {
	partners := make(map[pdb.ResidueId][]pdb.ResidueId)
	if len(a) == 0 || len(b) == 0 || threshold <= 0 {
		return partners
	}

	tree := newTree(a)
	limit := threshold * threshold
	seen := make(map[pdb.ResidueId]Set)
	for i := range b {
		keep := kdtree.NewDistKeeper(limit)
		tree.NearestSet(keep, newSite(&b[i]))
		for _, c := range keep.Heap {
			if c.Comparable == nil {
				continue
			}
			rid := b[i].Residue
			if seen[rid] == nil {
				seen[rid] = make(Set)
			}
			seen[rid][c.Comparable.(site).atom.Residue] = struct{}{}
		}
	}
	for rid, set := range seen {
		partners[rid] = set.Sorted()
	}
	return partners
}

func less(a, b pdb.ResidueId) bool {
	if a.Het != b.Het {
		return a.Het < b.Het
	}
	if a.SeqNum != b.SeqNum {
		return a.SeqNum < b.SeqNum
	}
	return a.ICode < b.ICode
}
