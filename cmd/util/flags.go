package util

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"runtime"
	"strings"
)

var (
	FlagDist = 5.0

	FlagFormat = FormatAuto

	FlagNoHetero = false

	FlagVerbose = false

	FlagWorkers = runtime.NumCPU()
)

func init() {
	log.SetFlags(0)
}

type commonFlag struct {
	set, init func()
	use       bool
}

var commonFlags = map[string]*commonFlag{
	"dist": {
		set: func() {
			flag.Float64Var(&FlagDist, "dist", FlagDist,
				"The distance cutoff, in Angstroms, at or under which two\n"+
					"atoms are in contact.")
		},
		init: func() {
			if FlagDist <= 0 {
				Fatalf("The distance cutoff must be positive, but got %f.",
					FlagDist)
			}
		},
	},
	"format": {
		set: func() {
			flag.StringVar(&FlagFormat, "format", FlagFormat,
				"The format of structure files: 'auto', 'pdb' or 'cif'.\n"+
					"When 'auto', files ending in '.cif' or '.mmcif'\n"+
					"(optionally followed by '.gz') are read as PDBx/mmCIF.")
		},
		init: func() {
			switch FlagFormat {
			case FormatAuto, FormatPDB, FormatCIF:
			default:
				Fatalf("Unknown structure format '%s'.", FlagFormat)
			}
		},
	},
	"no-hetero": {
		set: func() {
			flag.BoolVar(&FlagNoHetero, "no-hetero", FlagNoHetero,
				"When set, hetero residues (ligands and waters) are removed\n"+
					"from both chains.")
		},
	},
	"verbose": {
		set: func() {
			flag.BoolVar(&FlagVerbose, "verbose", FlagVerbose,
				"When set, more output will be shown.")
		},
	},
	"workers": {
		set: func() {
			flag.IntVar(&FlagWorkers, "workers", FlagWorkers,
				"The number of structure files to process simultaneously.")
		},
		init: func() {
			if FlagWorkers < 1 {
				FlagWorkers = 1
			}
			runtime.GOMAXPROCS(FlagWorkers)
		},
	},
}

func FlagUse(names ...string) {
	for _, name := range names {
		fl, ok := commonFlags[name]
		if !ok {
			panic(fmt.Sprintf("BUG: unknown common flag '%s'", name))
		}
		fl.use = true
	}
}

// Arg just calls `flag.Arg`. It's included here to avoid
// an extra import to `flag` just to call Arg.
func Arg(i int) string {
	return flag.Arg(i)
}

// Args just calls `flag.Args`.
func Args() []string {
	return flag.Args()
}

func FlagParse(positional string, desc string) {
	for _, fl := range commonFlags {
		if fl.use {
			fl.set()
		}
	}

	flag.Usage = func() {
		log.Printf("Usage: %s [flags] %s\n\n",
			path.Base(os.Args[0]), positional)
		if len(desc) > 0 {
			log.Printf("%s\n", desc)
		}
		flag.VisitAll(func(fl *flag.Flag) {
			var def string
			if len(fl.DefValue) > 0 {
				def = fmt.Sprintf(" (default: %s)", fl.DefValue)
			}

			usage := strings.Replace(fl.Usage, "\n", "\n    ", -1)
			log.Printf("-%s%s\n", fl.Name, def)
			log.Printf("    %s\n", usage)
		})
		os.Exit(1)
	}
	flag.Parse()

	for _, fl := range commonFlags {
		if fl.use && fl.init != nil {
			fl.init()
		}
	}
}
