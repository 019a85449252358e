package pdbx

import (
	"flag"
	"log"
	"strings"
	"testing"

	"github.com/TuftsBCB/contacts/pdb"
)

var flagCifFile = ""

func init() {
	flag.StringVar(&flagCifFile, "cif-file", flagCifFile,
		"When set, TestReadFile will also read the PDBx file given.")
}

func TestRead(t *testing.T) {
	e := openCif("testdata/complex.cif")
	if e.IdCode != "1ABC" {
		t.Fatalf("Expected id code '1ABC' but got '%s'.", e.IdCode)
	}
	if len(e.Models) != 2 {
		t.Fatalf("Expected 2 models but got %d.", len(e.Models))
	}
	m, err := e.FirstModel()
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Chains) != 2 {
		t.Fatalf("Expected 2 chains but got %d.", len(m.Chains))
	}
}

// The PDBx fixture describes exactly the same structure as the PDB fixture
// in the pdb package, so both readers must agree atom for atom.
func TestSameAsPDB(t *testing.T) {
	fromCif := openCif("testdata/complex.cif")
	fromPdb, err := pdb.ReadPDB("../pdb/testdata/complex.pdb")
	if err != nil {
		t.Fatal(err)
	}

	for mi, m1 := range fromPdb.Models {
		m2 := fromCif.Models[mi]
		if m1.Num != m2.Num || len(m1.Chains) != len(m2.Chains) {
			t.Fatalf("Model %d differs.", m1.Num)
		}
		for ci, c1 := range m1.Chains {
			c2 := m2.Chains[ci]
			if c1.Ident != c2.Ident || len(c1.Residues) != len(c2.Residues) {
				t.Fatalf("Chain %s differs from chain %s.", c1.Ident, c2.Ident)
			}
			for ri, r1 := range c1.Residues {
				r2 := c2.Residues[ri]
				if r1.Id != r2.Id || r1.Name != r2.Name {
					t.Fatalf("Residue %s %s differs from %s %s.",
						r1.Name, r1.Id, r2.Name, r2.Id)
				}
				if len(r1.Atoms) != len(r2.Atoms) {
					t.Fatalf("Residue %s: %d atoms versus %d atoms.",
						r1.Id, len(r1.Atoms), len(r2.Atoms))
				}
				for ai, a1 := range r1.Atoms {
					a2 := r2.Atoms[ai]
					if a1.Name != a2.Name || a1.AltLoc != a2.AltLoc ||
						a1.Het != a2.Het || a1.BFactor != a2.BFactor ||
						a1.Occupancy != a2.Occupancy || a1.Coords != a2.Coords {
						t.Fatalf("Atom %d of residue %s differs:\n%#v\n%#v",
							ai, r1.Id, a1, a2)
					}
				}
			}
		}
	}
}

func TestLabelFallback(t *testing.T) {
	src := strings.Join([]string{
		"data_test",
		"loop_",
		"_atom_site.group_PDB",
		"_atom_site.label_atom_id",
		"_atom_site.label_comp_id",
		"_atom_site.label_asym_id",
		"_atom_site.label_seq_id",
		"_atom_site.Cartn_x",
		"_atom_site.Cartn_y",
		"_atom_site.Cartn_z",
		"_atom_site.B_iso_or_equiv",
		"ATOM CA ALA X 1 1.0 2.0 3.0 55.5",
		"ATOM CA GLY X 2 4.0 5.0 6.0 66.5",
		"",
	}, "\n")
	e, err := Read(strings.NewReader(src), "label")
	if err != nil {
		t.Fatal(err)
	}
	chain := e.Models[0].Chain("X")
	if chain == nil {
		t.Fatalf("Expected chain X from label_asym_id.")
	}
	if len(chain.Residues) != 2 || chain.Residues[1].Atoms[0].BFactor != 66.5 {
		t.Fatalf("Unexpected residues: %v", chain.Residues)
	}
	if chain.Residues[0].Id.ICode != ' ' {
		t.Fatalf("Expected a blank insertion code.")
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name, src string
	}{
		{"no atoms", "data_empty\n_entry.id EMPTY\n"},
		{"two blocks", "data_a\n_entry.id A\ndata_b\n_entry.id B\n"},
	}
	for _, test := range tests {
		if _, err := Read(strings.NewReader(test.src), test.name); err == nil {
			t.Fatalf("%s: expected an error but got none.", test.name)
		}
	}
	if _, err := ReadPDBx("testdata/does-not-exist.cif"); err == nil {
		t.Fatalf("Expected an error reading a missing file.")
	}
}

func TestReadFile(t *testing.T) {
	if len(flagCifFile) == 0 {
		return
	}
	e := openCif(flagCifFile)
	for _, m := range e.Models {
		for _, c := range m.Chains {
			log.Printf("Model %d, chain %s: %d residues", m.Num, c.Ident,
				len(c.Residues))
		}
	}
}

// openCif opens a PDBx/mmCIF file, accounting for gzip compression.
// If there is an error, the current test fails.
func openCif(fp string) *pdb.Entry {
	e, err := ReadPDBx(fp)
	if err != nil {
		log.Fatal(err)
	}
	return e
}
