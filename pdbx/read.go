package pdbx

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/cif"

	"github.com/TuftsBCB/contacts/pdb"
)

var (
	ef = fmt.Errorf
	sf = fmt.Sprintf
)

// ReadPDBx reads a PDBx/mmCIF file from the path given. If the path ends with
// ".gz", the file is decompressed with gzip.
func ReadPDBx(fp string) (*pdb.Entry, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(fp, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}
	return Read(r, fp)
}

// Read reads exactly one PDB entry from the reader given. If there are 0
// entries or more than 1 entry, an error is returned. The fpath given is only
// used to label the entry and any errors.
//
// An error is also returned if the reader could not be interpreted as a valid
// PDBx/mmCIF file (which must be a valid CIF file).
func Read(r io.Reader, fpath string) (*pdb.Entry, error) {
	cf, err := cif.Read(r)
	if err != nil {
		return nil, ef("'%s': %s", fpath, err)
	}
	if len(cf.Blocks) != 1 {
		return nil, ef("'%s': expected one PDBx data block but got %d.",
			fpath, len(cf.Blocks))
	}
	for _, block := range cf.Blocks {
		return ReadCIFDataBlock(block, fpath)
	}
	panic("unreachable")
}

// ReadCIFDataBlock converts a PDBx/mmCIF data block to a PDB entry.
// It is exposed in the public interface so that clients can read entries from
// CIF files containing more than one data block.
//
// Chains and residues are identified the way PDB files identify them: by the
// author chain identifier, the author residue number and the insertion code.
// The label_* data items are used when the author items are missing.
func ReadCIFDataBlock(b *cif.DataBlock, fpath string) (*pdb.Entry, error) {
	builder := pdb.NewBuilder(fpath)
	builder.SetIdCode(value(b, "entry.id").String())
	if err := readAtomSites(builder, b); err != nil {
		return nil, ef("'%s': %s", fpath, err)
	}
	return builder.Entry()
}

func readAtomSites(builder *pdb.Builder, b *cif.DataBlock) error {
	loop := asLoop(b, "atom_site.group_pdb",
		"atom_site.auth_atom_id", "atom_site.label_atom_id",
		"atom_site.auth_comp_id", "atom_site.label_comp_id",
		"atom_site.auth_asym_id", "atom_site.label_asym_id",
		"atom_site.auth_seq_id", "atom_site.label_seq_id",
		"atom_site.pdbx_pdb_ins_code", "atom_site.label_alt_id",
		"atom_site.cartn_x", "atom_site.cartn_y", "atom_site.cartn_z",
		"atom_site.occupancy", "atom_site.b_iso_or_equiv",
		"atom_site.pdbx_pdb_model_num", "atom_site.id",
		"atom_site.type_symbol")
	groups := strs(loop[0])
	if len(groups) == 0 {
		return ef("The given PDBx/mmCIF data has no ATOM/HETATM records.")
	}
	n := len(groups)

	atoms, err := column(n, "atom id", strs(loop[1]), strs(loop[2]))
	if err != nil {
		return err
	}
	comps, err := column(n, "residue name", strs(loop[3]), strs(loop[4]))
	if err != nil {
		return err
	}
	chains, err := column(n, "chain id", strs(loop[5]), strs(loop[6]))
	if err != nil {
		return err
	}
	seqids, err := column(n, "residue number", strs(loop[7]), strs(loop[8]))
	if err != nil {
		return err
	}
	xs, ys, zs := floats(loop[11]), floats(loop[12]), floats(loop[13])
	if len(xs) != n || len(ys) != n || len(zs) != n {
		return ef("Missing or malformed Cartesian coordinates.")
	}
	inscodes, altids := strs(loop[9]), strs(loop[10])
	occs, bfactors := floats(loop[14]), floats(loop[15])
	models, serials, elems := ints(loop[16]), ints(loop[17]), strs(loop[18])

	for i := 0; i < n; i++ {
		het := groups[i] == "HETATM"
		seqNum, err := strconv.Atoi(seqids[i])
		if err != nil {
			return ef("Invalid residue number '%s' for atom %d.", seqids[i], i+1)
		}
		atom := pdb.Atom{
			Name:   atoms[i],
			AltLoc: char(get(altids, i)),
			Het:    het,
			Residue: pdb.ResidueId{
				Het:    pdb.HetField(het, comps[i]),
				SeqNum: seqNum,
				ICode:  char(get(inscodes, i)),
			},
			Element: get(elems, i),
		}
		atom.X, atom.Y, atom.Z = xs[i], ys[i], zs[i]
		if i < len(occs) {
			atom.Occupancy = occs[i]
		}
		if i < len(bfactors) {
			atom.BFactor = bfactors[i]
		}
		if i < len(serials) {
			atom.Serial = serials[i]
		}
		model := 1
		if i < len(models) {
			model = models[i]
		}
		builder.Add(model, chains[i], comps[i], atom)
	}
	return nil
}

// column picks the author data item when it is present for every row and
// falls back to the label data item otherwise.
func column(n int, what string, auth, label []string) ([]string, error) {
	if len(auth) == n && !anyMissing(auth) {
		return auth, nil
	}
	if len(label) == n && !anyMissing(label) {
		return label, nil
	}
	return nil, ef("Missing %s for some ATOM/HETATM records.", what)
}

func anyMissing(vs []string) bool {
	for _, v := range vs {
		if missing(v) {
			return true
		}
	}
	return false
}

// missing reports whether a CIF value is one of the special "unknown" (?) or
// "inapplicable" (.) values.
func missing(v string) bool {
	return len(v) == 0 || v == "?" || v == "."
}

// char returns the single character of a value, or ' ' when the value is
// missing.
func char(v string) byte {
	if missing(v) {
		return ' '
	}
	return v[0]
}

func get(vs []string, i int) string {
	if i < len(vs) {
		return vs[i]
	}
	return ""
}

// value returns the data value tagged by "key". If it does not exist, then
// an empty string is returned (wrapped in a cif.Value).
func value(b *cif.DataBlock, key string) cif.Value {
	if v, ok := b.Items[key]; ok {
		return v
	}
	return cif.AsValue("")
}

// asLoop retrieves the Loop containing the data tag "key". If a loop does
// not exist, then one is created with a single row with columns corresponding
// to "key" and each of the tags in "others". If the tag in "key" or any
// tag in "others" does not exist, an empty string is used for its value.
//
// The purpose of this function is to abstract over whether some data set in
// a PDBx/CIF file is represented as a loop or not. For example, a structure
// with a single atom does not declare "atom_site.*" tags in a loop.
func asLoop(b *cif.DataBlock, key string, others ...string) []cif.ValueLoop {
	tags := append([]string{key}, others...)
	asColumns := func(loop *cif.Loop) []cif.ValueLoop {
		vloop := make([]cif.ValueLoop, len(tags))
		for i, tag := range tags {
			if col, ok := loop.Columns[tag]; ok {
				vloop[i] = loop.Values[col]
			}
		}
		return vloop
	}

	if loop, ok := b.Loops[key]; ok {
		return asColumns(loop)
	}
	loop := &cif.Loop{
		Columns: make(map[string]int, len(tags)),
		Values:  make([]cif.ValueLoop, len(tags)),
	}
	for i, tag := range tags {
		loop.Columns[tag] = i
		switch v := value(b, tag).Raw().(type) {
		case string:
			if len(v) == 0 {
				loop.Values[i] = cif.AsValues([]string{})
			} else {
				loop.Values[i] = cif.AsValues([]string{v})
			}
		case int:
			loop.Values[i] = cif.AsValues([]int{v})
		case float64:
			loop.Values[i] = cif.AsValues([]float64{v})
		default:
			panic(sf("Unknown value type %T for %s.", v, tag))
		}
	}
	return asColumns(loop)
}

// strs, ints and floats read a column regardless of the type the CIF reader
// inferred for it. A column of residue numbers, for example, is typed as
// integers unless some row is '?'.

func strs(vs cif.ValueLoop) []string {
	if vs == nil {
		return nil
	}
	if ss := vs.Strings(); ss != nil {
		return ss
	}
	if is := vs.Ints(); is != nil {
		ss := make([]string, len(is))
		for i, n := range is {
			ss[i] = strconv.Itoa(n)
		}
		return ss
	}
	if fs := vs.Floats(); fs != nil {
		ss := make([]string, len(fs))
		for i, f := range fs {
			ss[i] = strconv.FormatFloat(f, 'f', -1, 64)
		}
		return ss
	}
	return nil
}

func ints(vs cif.ValueLoop) []int {
	if vs == nil {
		return nil
	}
	if is := vs.Ints(); is != nil {
		return is
	}
	ss := strs(vs)
	if ss == nil {
		return nil
	}
	is := make([]int, len(ss))
	for i, s := range ss {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil
		}
		is[i] = n
	}
	return is
}

func floats(vs cif.ValueLoop) []float64 {
	if vs == nil {
		return nil
	}
	if fs := vs.Floats(); fs != nil {
		return fs
	}
	if is := vs.Ints(); is != nil {
		fs := make([]float64, len(is))
		for i, n := range is {
			fs[i] = float64(n)
		}
		return fs
	}
	ss := vs.Strings()
	if ss == nil {
		return nil
	}
	fs := make([]float64, len(ss))
	for i, s := range ss {
		if missing(s) {
			continue
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		fs[i] = f
	}
	return fs
}
