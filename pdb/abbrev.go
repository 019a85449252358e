package pdb

import (
	"github.com/TuftsBCB/seq"
)

var aminoMap = map[string]seq.Residue{
	"UNK": 'X',
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"SEC": 'U', "PYL": 'O',

	// Common modified residues seen in ATOM records.
	"MSE": 'M', "SEP": 'S', "TPO": 'T', "PTR": 'Y', "HYP": 'P',
	"ASX": 'X', "GLX": 'X',
}

var deoxyMap = map[string]seq.Residue{
	"DA": 'A', "DC": 'C', "DG": 'G', "DT": 'T', "DI": 'I', "DU": 'U',
}

var riboMap = map[string]seq.Residue{
	"A": 'A', "C": 'C', "G": 'G', "U": 'U', "I": 'I', "T": 'T',
}

// Abbrev returns the one letter abbreviation of a residue name. Three letter
// names are looked up as amino acids, two letter names as deoxyribonucleotides
// and one letter names as ribonucleotides. Anything unknown is 'X'.
func Abbrev(name string) seq.Residue {
	var m map[string]seq.Residue
	switch len(name) {
	case 3:
		m = aminoMap
	case 2:
		m = deoxyMap
	case 1:
		m = riboMap
	default:
		return 'X'
	}
	if v, ok := m[name]; ok {
		return v
	}
	return 'X'
}
