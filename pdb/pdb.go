package pdb

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
)

type pdbParser struct {
	builder  *Builder
	fpath    string
	lineNum  int
	curModel int
	line     []byte
}

// ReadPDB reads a PDB file from the path given. If the path ends with ".gz",
// the file is decompressed with gzip.
func ReadPDB(fp string) (*Entry, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var reader io.Reader = f
	if path.Ext(fp) == ".gz" {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		reader = gz
	}
	return Read(reader, fp)
}

// Read reads a PDB formatted structure from r. The fpath given is only used
// to label the entry and any errors.
//
// HEADER, MODEL, ATOM and HETATM records are interpreted. Everything else is
// ignored. Atoms appearing before any MODEL record belong to model 1.
func Read(r io.Reader, fpath string) (*Entry, error) {
	parser := pdbParser{
		builder:  NewBuilder(fpath),
		fpath:    fpath,
		curModel: 1,
	}

	// We ignore 'isPrefix' here, since we never care about lines longer
	// than 1000 characters, which is the size of our buffer.
	breader := bufio.NewReaderSize(r, 1000)
	for {
		line, _, err := breader.ReadLine()
		if err == io.EOF && len(line) == 0 {
			break
		} else if err != io.EOF && err != nil {
			return nil, err
		}
		parser.lineNum++
		parser.line = line
		if err := parser.parseLine(); err != nil {
			return nil, err
		}
	}
	return parser.builder.Entry()
}

func (p *pdbParser) parseLine() error {
	var err error

	switch p.cols(1, 6) {
	case "HEADER":
		p.builder.SetIdCode(p.cols(63, 66))
	case "MODEL":
		p.curModel, err = p.atoi(11, 14)
		if err != nil {
			return p.errorf("Invalid model number: %s", err)
		}
	case "ATOM":
		return p.parseAtom(false)
	case "HETATM":
		return p.parseAtom(true)
	}
	return nil
}

func (p *pdbParser) parseAtom(het bool) error {
	resName := p.cols(18, 20)
	seqNum, err := p.atoi(23, 26)
	if err != nil {
		return p.errorf("Invalid residue sequence number: %s", err)
	}
	atom := Atom{
		Name:   p.cols(13, 16),
		AltLoc: p.at(17),
		Het:    het,
		Residue: ResidueId{
			Het:    HetField(het, resName),
			SeqNum: seqNum,
			ICode:  p.at(27),
		},
		Element: p.cols(77, 78),
	}
	if atom.Residue.ICode == 0 {
		atom.Residue.ICode = ' '
	}

	// Serial numbers beyond 99999 are often written in some non-decimal
	// encoding. They aren't needed for anything, so just drop them.
	atom.Serial, _ = p.atoi(7, 11)

	if atom.X, err = p.atof(31, 38); err != nil {
		return p.errorf("Invalid X coordinate: %s", err)
	}
	if atom.Y, err = p.atof(39, 46); err != nil {
		return p.errorf("Invalid Y coordinate: %s", err)
	}
	if atom.Z, err = p.atof(47, 54); err != nil {
		return p.errorf("Invalid Z coordinate: %s", err)
	}

	// Occupancy and temperature factor columns may be missing in hand
	// crafted files. The PDB uses a default of zero in that case.
	if atom.Occupancy, err = p.optf(55, 60); err != nil {
		return p.errorf("Invalid occupancy: %s", err)
	}
	if atom.BFactor, err = p.optf(61, 66); err != nil {
		return p.errorf("Invalid temperature factor: %s", err)
	}

	p.builder.Add(p.curModel, p.chainIdent(), resName, atom)
	return nil
}

func (p *pdbParser) chainIdent() string {
	ident := p.at(22)
	if ident == ' ' || ident == 0 {
		return "_"
	}
	return string(ident)
}

func (p *pdbParser) errorf(format string, v ...interface{}) error {
	return fmt.Errorf("%s:%d: %s.", p.fpath, p.lineNum, fmt.Sprintf(format, v...))
}

func (p *pdbParser) atoi(start, end int) (int, error) {
	return strconv.Atoi(p.cols(start, end))
}

func (p *pdbParser) atof(start, end int) (float64, error) {
	return strconv.ParseFloat(p.cols(start, end), 64)
}

// optf is like atof, except an empty column is 0 instead of an error.
func (p *pdbParser) optf(start, end int) (float64, error) {
	s := p.cols(start, end)
	if len(s) == 0 {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func (p *pdbParser) cols(start, end int) string {
	rs, re := start-1, end
	if rs >= len(p.line) || rs < 0 {
		return ""
	}
	if re > len(p.line) {
		re = len(p.line)
	}
	if re < rs {
		return ""
	}
	return string(bytes.TrimSpace(p.line[rs:re]))
}

func (p *pdbParser) at(column int) byte {
	i := column - 1
	if i < 0 || i >= len(p.line) {
		return 0
	}
	return p.line[i]
}
