package util

import (
	"fmt"
	"strings"

	"github.com/TuftsBCB/contacts/pdb"
	"github.com/TuftsBCB/contacts/pdbx"
)

// Structure file formats accepted by the 'format' flag.
const (
	FormatAuto = "auto"
	FormatPDB  = "pdb"
	FormatCIF  = "cif"
)

// Format returns FormatCIF or FormatPDB for the file path given. Unless
// format is FormatAuto, it is returned unchanged. Otherwise, paths ending in
// '.cif' or '.mmcif' (optionally followed by '.gz') are PDBx/mmCIF files and
// every other path is a PDB file.
func Format(fpath, format string) string {
	if format != FormatAuto {
		return format
	}
	name := strings.TrimSuffix(strings.ToLower(fpath), ".gz")
	if strings.HasSuffix(name, ".cif") || strings.HasSuffix(name, ".mmcif") {
		return FormatCIF
	}
	return FormatPDB
}

// ReadStructure reads a structure file in the format given. See Format.
func ReadStructure(fpath, format string) (*pdb.Entry, error) {
	switch Format(fpath, format) {
	case FormatPDB:
		return pdb.ReadPDB(fpath)
	case FormatCIF:
		return pdbx.ReadPDBx(fpath)
	}
	return nil, fmt.Errorf("Unknown structure format '%s'", format)
}

// StructureRead is like ReadStructure, but quits when the file cannot be
// read.
func StructureRead(fpath, format string) *pdb.Entry {
	entry, err := ReadStructure(fpath, format)
	Assert(err, "Could not read structure file '%s'", fpath)
	return entry
}
