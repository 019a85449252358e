package bfactor

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/TuftsBCB/contacts/contact"
	"github.com/TuftsBCB/contacts/pdb"
)

// ErrChainNotFound is returned when a chain label is not in a model.
var ErrChainNotFound = errors.New("chain not found")

// Group is the list of values contributed by a single residue.
//
// For a contact residue, Values has one B-factor per atom. For any other
// residue, Values is the single value 0.
type Group struct {
	Residue *pdb.Residue
	Contact bool
	Values  []float64
}

// Mean returns the average of the group's values, or 0 if it has none.
func (g Group) Mean() float64 {
	if len(g.Values) == 0 {
		return 0
	}
	return stat.Mean(g.Values, nil)
}

// Result is the outcome of weighing the residues of a chain.
type Result struct {
	// One group per residue, in residue order.
	Groups []Group

	// The sum of every value in every group divided by the number of values.
	Overall float64

	// The average of each group's mean.
	ResidueMean float64
}

// Contacts returns the number of contact residues.
func (r Result) Contacts() int {
	n := 0
	for _, g := range r.Groups {
		if g.Contact {
			n++
		}
	}
	return n
}

// Groups returns exactly one group for each residue given, in the same order.
func Groups(residues []*pdb.Residue, contacts contact.Set) []Group {
	groups := make([]Group, len(residues))
	for i, r := range residues {
		groups[i] = Group{Residue: r}
		if !contacts.Has(r.Id) {
			groups[i].Values = []float64{0}
			continue
		}
		groups[i].Contact = true
		groups[i].Values = make([]float64, len(r.Atoms))
		for j, atom := range r.Atoms {
			groups[i].Values[j] = atom.BFactor
		}
	}
	return groups
}

// Weigh groups the residues given and computes both averages. Every
// degenerate input (no residues, no contacts, residues without atoms) results
// in zeros rather than an error.
func Weigh(residues []*pdb.Residue, contacts contact.Set) Result {
	res := Result{Groups: Groups(residues, contacts)}
	if len(res.Groups) == 0 {
		return res
	}

	var sum float64
	var count int
	means := make([]float64, len(res.Groups))
	for i, g := range res.Groups {
		sum += floats.Sum(g.Values)
		count += len(g.Values)
		means[i] = g.Mean()
	}
	if count > 0 {
		res.Overall = sum / float64(count)
	}
	res.ResidueMean = stat.Mean(means, nil)
	return res
}

// Aggregate returns the overall average and the average of residue averages
// of the residues given. See Weigh.
func Aggregate(residues []*pdb.Residue,
	contacts contact.Set) (overall, residueMean float64) {

	res := Weigh(residues, contacts)
	return res.Overall, res.ResidueMean
}

// Options tweak Chains.
type Options struct {
	// When set, hetero residues (ligands and waters) are removed from both
	// chains before anything else is done.
	NoHetero bool
}

// Chains finds the residues of chain b within threshold of chain a in the
// model given and weighs chain b's B-factors accordingly.
//
// An error wrapping ErrChainNotFound is returned if either chain does not
// exist in the model.
func Chains(m *pdb.Model, a, b string, threshold float64,
	opts Options) (Result, error) {

	chainA, chainB := m.Chain(a), m.Chain(b)
	if chainA == nil {
		return Result{}, chainNotFound(m, a)
	}
	if chainB == nil {
		return Result{}, chainNotFound(m, b)
	}
	if opts.NoHetero {
		chainA, chainB = chainA.WithoutHetero(), chainB.WithoutHetero()
	}
	return Weigh(chainB.Residues, contact.Chains(chainA, chainB, threshold)), nil
}

func chainNotFound(m *pdb.Model, ident string) error {
	if m.Entry != nil {
		return fmt.Errorf("Chain '%s' in model %d of '%s': %w",
			ident, m.Num, m.Entry.Path, ErrChainNotFound)
	}
	return fmt.Errorf("Chain '%s' in model %d: %w", ident, m.Num,
		ErrChainNotFound)
}
