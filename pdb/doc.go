/*
Package pdb reads the coordinate section of PDB files into a hierarchy of
models, chains, residues and atoms. Every atom carries its 3 dimensional
coordinates, occupancy and temperature factor (the B-factor column, which
holds per-atom pLDDT confidence values in predicted models).

Only HEADER, MODEL, ATOM and HETATM records are interpreted. Alternate
locations are collapsed to a single atom per name: the one with the highest
occupancy.

The types defined here are also produced by the pdbx package, which reads the
same information from PDBx/mmCIF files.
*/
package pdb
