/*
Package bfactor computes contact-weighted average B-factors (or pLDDT
confidence values) of one chain with respect to another.

Each residue of the weighed chain contributes a list of values: the B-factor
of every one of its atoms if the residue is in contact with the other chain,
or a single zero otherwise. Two averages are reported: the mean over all
values of all residues, and the mean of per-residue means. Note that a
non-contact residue contributes exactly one zero no matter how many atoms it
has.
*/
package bfactor
