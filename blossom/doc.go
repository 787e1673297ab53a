// Package blossom defines the central domain types shared by the
// primal and dual sides of the embedded minimum-weight perfect-matching
// decoder: the compact index domains, the alternating-tree/blossom arena
// (PrimalNodes), and the Obstacle tagged variant exchanged across the
// primal<->dual boundary.
//
// All storage here is fixed-capacity and preallocated at construction; no
// allocation occurs once a PrimalNodes arena has been built. Every index
// type is 32 bits or smaller so that values pack into a single hardware
// instruction word (see package dual).
package blossom
