package pdb

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixture = "testdata/complex.pdb"

func TestReadPDB(t *testing.T) {
	entry := readPDB()
	if entry.IdCode != "1ABC" {
		t.Fatalf("Expected id code '1ABC' but got '%s'.", entry.IdCode)
	}
	if len(entry.Models) != 2 {
		t.Fatalf("Expected 2 models but got %d.", len(entry.Models))
	}

	m, err := entry.FirstModel()
	if err != nil {
		t.Fatal(err)
	}
	if m.Num != 1 {
		t.Fatalf("Expected first model to be model 1 but got %d.", m.Num)
	}
	if len(m.Chains) != 2 {
		t.Fatalf("Expected 2 chains but got %d.", len(m.Chains))
	}
	if got := len(m.Chain("A").Residues); got != 2 {
		t.Fatalf("Expected 2 residues in chain A but got %d.", got)
	}
	if m.Chain("C") != nil {
		t.Fatalf("Expected no chain C.")
	}

	second := entry.Models[1]
	if second.Num != 2 || len(second.Chains) != 1 {
		t.Fatalf("Unexpected second model: %d with %d chains.",
			second.Num, len(second.Chains))
	}
}

func TestResidues(t *testing.T) {
	m := firstModel()
	tests := []struct {
		id     ResidueId
		name   string
		natoms int
	}{
		{ResidueId{"", 1, ' '}, "SER", 2},
		{ResidueId{"", 2, ' '}, "LYS", 2},
		{ResidueId{"", 2, 'A'}, "GLY", 1},
		{ResidueId{"", 3, ' '}, "VAL", 1},
		{ResidueId{"H_NAG", 101, ' '}, "NAG", 1},
		{ResidueId{"W", 201, ' '}, "HOH", 1},
	}
	residues := m.Chain("B").Residues
	if len(residues) != len(tests) {
		t.Fatalf("Expected %d residues in chain B but got %d.",
			len(tests), len(residues))
	}
	for i, test := range tests {
		r := residues[i]
		if r.Id != test.id {
			t.Fatalf("Residue %d: expected id %#v but got %#v.", i, test.id, r.Id)
		}
		if r.Name != test.name {
			t.Fatalf("Residue %d: expected name %s but got %s.",
				i, test.name, r.Name)
		}
		if len(r.Atoms) != test.natoms {
			t.Fatalf("Residue %d: expected %d atoms but got %d.",
				i, test.natoms, len(r.Atoms))
		}
		for _, atom := range r.Atoms {
			if atom.Residue != r.Id {
				t.Fatalf("Atom %s of residue %s points to residue %s.",
					atom.Name, r.Id, atom.Residue)
			}
		}
	}
}

func TestAltLoc(t *testing.T) {
	lys := firstModel().Chain("B").Residues[1]
	ca := lys.Atoms[0]
	if ca.Name != "CA" || ca.AltLoc != 'B' {
		t.Fatalf("Expected alternate location B of CA but got %c of %s.",
			ca.AltLoc, ca.Name)
	}
	if ca.BFactor != 60 || ca.Occupancy != 0.6 || ca.Z != 5 {
		t.Fatalf("Unexpected CA atom: %#v", ca)
	}
}

func TestAltLocTie(t *testing.T) {
	src := strings.Join([]string{
		"ATOM      1  CA AALA A   1       1.000   0.000   0.000  0.50 11.00           C",
		"ATOM      2  CA BALA A   1       2.000   0.000   0.000  0.50 22.00           C",
	}, "\n")
	e, err := Read(strings.NewReader(src), "tie")
	if err != nil {
		t.Fatal(err)
	}
	atoms := e.Models[0].Chain("A").Atoms()
	if len(atoms) != 1 || atoms[0].AltLoc != 'A' {
		t.Fatalf("Expected the first alternate location to win a tie: %#v",
			atoms)
	}
}

func TestWithoutHetero(t *testing.T) {
	b := firstModel().Chain("B")
	std := b.WithoutHetero()
	if len(std.Residues) != 4 {
		t.Fatalf("Expected 4 standard residues but got %d.", len(std.Residues))
	}
	if len(b.Residues) != 6 {
		t.Fatalf("WithoutHetero modified the original chain.")
	}
	if got := string(b.Sequence()); got != "SKGV" {
		t.Fatalf("Expected sequence SKGV but got %s.", got)
	}
}

func TestShortLines(t *testing.T) {
	// No occupancy, temperature factor or element columns.
	src := "ATOM      1  CA  ALA A   1       1.000   2.000   3.000"
	e, err := Read(strings.NewReader(src), "short")
	if err != nil {
		t.Fatal(err)
	}
	atom := e.Models[0].Chains[0].Residues[0].Atoms[0]
	if atom.BFactor != 0 || atom.Occupancy != 0 || atom.X != 1 {
		t.Fatalf("Unexpected atom: %#v", atom)
	}
}

func TestBlankChain(t *testing.T) {
	src := "ATOM      1  CA  ALA     1       1.000   2.000   3.000  1.00 50.00"
	e, err := Read(strings.NewReader(src), "blank")
	if err != nil {
		t.Fatal(err)
	}
	if e.Models[0].Chain("_") == nil {
		t.Fatalf("Expected a blank chain identifier to be read as '_'.")
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name, src string
	}{
		{"empty", "HEADER    NOTHING HERE\nEND\n"},
		{"coords", "ATOM      1  CA  ALA A   1       x.xxx   2.000   3.000"},
		{"seqnum", "ATOM      1  CA  ALA A   ?       1.000   2.000   3.000"},
		{"bfactor", "ATOM      1  CA  ALA A   1       1.000   2.000   3.000  1.00 ab.cd"},
		{"model", "MODEL     one\n"},
	}
	for _, test := range tests {
		if _, err := Read(strings.NewReader(test.src), test.name); err == nil {
			t.Fatalf("%s: expected an error but got none.", test.name)
		}
	}

	if _, err := ReadPDB(filepath.Join("testdata", "does-not-exist.pdb")); err == nil {
		t.Fatalf("Expected an error reading a missing file.")
	}
	if _, err := (&Entry{Path: "x"}).FirstModel(); !errors.Is(err, ErrNoModels) {
		t.Fatalf("Expected ErrNoModels but got %v.", err)
	}
}

func TestReadGzip(t *testing.T) {
	raw, err := ioutil.ReadFile(fixture)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(raw); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}

	dir, err := ioutil.TempDir("", "pdb")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	fp := filepath.Join(dir, "complex.pdb.gz")
	if err := ioutil.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	entry, err := ReadPDB(fp)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(entry.Models[0].Chain("B").Atoms()); got != 8 {
		t.Fatalf("Expected 8 atoms in chain B but got %d.", got)
	}
}

func TestIdCodeFromPath(t *testing.T) {
	src := "ATOM      1  CA  ALA A   1       1.000   2.000   3.000  1.00 50.00"
	tests := []struct {
		path, id string
	}{
		{"pdb1xyz.ent", "1xyz"},
		{"1abcA00", "1abc"},
		{"AF-P69905-F1-model_v4.pdb", "P69905-F1"},
		{"whatever.pdb", ""},
	}
	for _, test := range tests {
		e, err := Read(strings.NewReader(src), test.path)
		if err != nil {
			t.Fatal(err)
		}
		if e.IdCode != test.id {
			t.Fatalf("%s: expected id code '%s' but got '%s'.",
				test.path, test.id, e.IdCode)
		}
	}
}

func ExampleRead() {
	entry := readPDB()
	m, _ := entry.FirstModel()
	for _, r := range m.Chain("B").Residues {
		fmt.Printf("%-9s %s %d\n", r.Id, r.Name, len(r.Atoms))
	}

	// Output:
	// 1         SER 2
	// 2         LYS 2
	// 2A        GLY 1
	// 3         VAL 1
	// H_NAG 101 NAG 1
	// W 201     HOH 1
}

func BenchmarkReadPDB(b *testing.B) {
	raw, err := ioutil.ReadFile(fixture)
	assert(err)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := Read(bytes.NewReader(raw), fixture)
		assert(err)
	}
}

func readPDB() *Entry {
	entry, err := ReadPDB(fixture)
	assert(err)
	return entry
}

func firstModel() *Model {
	m, err := readPDB().FirstModel()
	assert(err)
	return m
}

func assert(err error) {
	if err != nil {
		log.Fatalln(err)
	}
}
