package contact

import (
	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/TuftsBCB/contacts/pdb"
)

// site is an atom stored in a k-d tree. Distances are squared Euclidean
// distances between atom coordinates.
type site struct {
	atom *pdb.Atom
}

func newSite(atom *pdb.Atom) site {
	return site{atom}
}

func (s site) coord(d kdtree.Dim) float64 {
	switch d {
	case 0:
		return s.atom.X
	case 1:
		return s.atom.Y
	case 2:
		return s.atom.Z
	}
	panic("illegal dimension")
}

func (s site) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return s.coord(d) - c.(site).coord(d)
}

func (s site) Dims() int { return 3 }

func (s site) Distance(c kdtree.Comparable) float64 {
	q := c.(site).atom
	dx, dy, dz := s.atom.X-q.X, s.atom.Y-q.Y, s.atom.Z-q.Z
	return dx*dx + dy*dy + dz*dz
}

// sites satisfies kdtree.Interface.
type sites []site

func (s sites) Index(i int) kdtree.Comparable         { return s[i] }
func (s sites) Len() int                              { return len(s) }
func (s sites) Pivot(d kdtree.Dim) int                { return plane{s, d}.Pivot() }
func (s sites) Slice(start, end int) kdtree.Interface { return s[start:end] }

type plane struct {
	sites
	kdtree.Dim
}

func (p plane) Less(i, j int) bool {
	return p.sites[i].coord(p.Dim) < p.sites[j].coord(p.Dim)
}

func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }

func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.sites = p.sites[start:end]
	return p
}

func (p plane) Swap(i, j int) {
	p.sites[i], p.sites[j] = p.sites[j], p.sites[i]
}

// newTree builds a k-d tree over the atoms given. The tree refers to the
// atoms but never modifies them.
func newTree(atoms []pdb.Atom) *kdtree.Tree {
	ss := make(sites, len(atoms))
	for i := range atoms {
		ss[i] = newSite(&atoms[i])
	}
	return kdtree.New(ss, false)
}
