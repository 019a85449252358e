/*
contact-bfactor computes how confident a predicted (or solved) structure is at
the interface between two of its chains. It reads a structure file, finds
every residue of the second chain with an atom within a distance cutoff of
any atom of the first chain, and averages the B-factors (or pLDDT values) of
the second chain where every residue that is not in contact contributes a
single zero.

Two values are printed: the average over every contributed value, and the
average of the per-residue averages.

Structure files may be in PDB or PDBx/mmCIF format, optionally compressed
with gzip (the file name must then end in '.gz'). Only the first model of a
file is used.

Usage:
	contact-bfactor [flags] structure-file chain-a chain-b

With the '-verbose' flag, a table with one row for each residue of the second
chain is printed before the averages. It shows whether the residue is in
contact, how many atoms it has, its average and the residues of the first
chain that it is in contact with.
*/
package main
