// contact-bfactor-batch computes the same interface averages as
// contact-bfactor for many structure files at once. Files are read and scored
// by a pool of workers (see the '-workers' flag), and one tab-separated line
// is printed for each file that could be scored, in the order the files were
// given:
//
//	path  overall  residue-mean  contact-residues  residues
//
// Files that cannot be scored are reported on stderr, and the command exits
// with a non-zero status once every file has been tried.
package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/TuftsBCB/contacts/bfactor"
	"github.com/TuftsBCB/contacts/cmd/util"
)

// job is a single structure file to score. Its index is the position of the
// file on the command line.
type job struct {
	index int
	fpath string
}

type result struct {
	job
	res bfactor.Result
	err error
}

func init() {
	util.FlagUse("dist", "format", "no-hetero", "verbose", "workers")
	util.FlagParse("chain-a chain-b structure-file [ structure-file ... ]",
		"Computes the contact-weighted average B-factor of chain-b for\n"+
			"every structure file given.")
	util.AssertLeastNArg(3)
}

func main() {
	a, b := util.Arg(0), util.Arg(1)
	files := util.Args()[2:]
	opts := bfactor.Options{NoHetero: util.FlagNoHetero}

	jobs := make(chan job, util.FlagWorkers*2)
	results := make(chan result, util.FlagWorkers*2)
	wg := new(sync.WaitGroup)
	for i := 0; i < util.FlagWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				res, err := score(j.fpath, a, b, opts)
				results <- result{j, res, err}
			}
		}()
	}
	go func() {
		for i, fpath := range files {
			jobs <- job{i, fpath}
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	progress := util.NewProgress(len(files))
	scored := make([]*result, len(files))
	for r := range results {
		r := r
		progress.JobDone(r.err)
		if r.err == nil {
			scored[r.index] = &r
		}
	}
	progress.Close()

	for _, r := range scored {
		if r == nil {
			continue
		}
		fmt.Printf("%s\t%v\t%v\t%d\t%d\n", r.fpath,
			r.res.Overall, r.res.ResidueMean,
			r.res.Contacts(), len(r.res.Groups))
	}
	if progress.Failed > 0 {
		util.Warnf("%d of %d structure files could not be scored.",
			progress.Failed, len(files))
		os.Exit(1)
	}
}

// score reads a single structure file and weighs chain b of its first model.
func score(fpath, a, b string, opts bfactor.Options) (bfactor.Result, error) {
	entry, err := util.ReadStructure(fpath, util.FlagFormat)
	if err != nil {
		return bfactor.Result{}, err
	}
	model, err := entry.FirstModel()
	if err != nil {
		return bfactor.Result{}, err
	}
	return bfactor.Chains(model, a, b, util.FlagDist, opts)
}
