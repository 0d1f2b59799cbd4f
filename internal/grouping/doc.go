// Package grouping partitions fingerprinted descriptors into duplicate
// groups. It is pure: no I/O, no hashing, linear time and space.
package grouping
