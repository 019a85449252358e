package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/TuftsBCB/contacts/bfactor"
	"github.com/TuftsBCB/contacts/cmd/util"
	"github.com/TuftsBCB/contacts/contact"
	"github.com/TuftsBCB/contacts/pdb"
)

func init() {
	util.FlagUse("dist", "format", "no-hetero", "verbose")
	util.FlagParse("structure-file chain-a chain-b",
		"Computes the average B-factor of the residues of chain-b that are\n"+
			"in contact with chain-a, counting a zero for every residue\n"+
			"of chain-b that is not in contact.")
	util.AssertNArg(3)
}

func main() {
	fpath, a, b := util.Arg(0), util.Arg(1), util.Arg(2)

	entry := util.StructureRead(fpath, util.FlagFormat)
	model, err := entry.FirstModel()
	util.Assert(err, "Could not use '%s'", fpath)

	opts := bfactor.Options{NoHetero: util.FlagNoHetero}
	res, err := bfactor.Chains(model, a, b, util.FlagDist, opts)
	util.Assert(err)

	if util.FlagVerbose {
		chainA, chainB := model.Chain(a), model.Chain(b)
		if opts.NoHetero {
			chainA, chainB = chainA.WithoutHetero(), chainB.WithoutHetero()
		}
		partners := contact.Partners(chainA.Atoms(), chainB.Atoms(),
			util.FlagDist)
		outputTable(res, partners)
		fmt.Printf("Sequence of chain %s: %s\n\n", b, chainB.Sequence())
	}
	fmt.Printf("Overall weighted average B-factor for chain %s: %v\n",
		b, res.Overall)
	fmt.Printf("Weighted average of residue average B-factors "+
		"for chain %s: %v\n", b, res.ResidueMean)
}

func outputTable(res bfactor.Result,
	partners map[pdb.ResidueId][]pdb.ResidueId) {

	w := tabwriter.NewWriter(os.Stdout, 5, 0, 4, ' ', 0)
	wf := func(format string, v ...interface{}) {
		fmt.Fprintf(w, format, v...)
	}

	wf("Residue\tName\tContact\tAtoms\tMean\tPartners\n")
	for _, g := range res.Groups {
		inContact := "no"
		if g.Contact {
			inContact = "yes"
		}
		ids := make([]string, len(partners[g.Residue.Id]))
		for i, id := range partners[g.Residue.Id] {
			ids[i] = id.String()
		}
		wf("%s\t%s\t%s\t%d\t%0.2f\t%s\n",
			g.Residue.Id, g.Residue.Name, inContact, len(g.Residue.Atoms),
			g.Mean(), strings.Join(ids, ","))
	}
	w.Flush()
	fmt.Printf("%d of %d residues in contact.\n\n",
		res.Contacts(), len(res.Groups))
}
