// Package primal implements the alternating-tree/blossom bookkeeper: it
// owns a blossom.PrimalNodes arena and resolves Conflict and
// BlossomNeedExpand obstacles into tree mutations (augment, form blossom,
// expand blossom), issuing SetSpeed/SetBlossom commands to the dual side
// as it goes. It does not grow a tree by grafting a matched pair onto it.
//
// The tree-surgery algorithm here is not present in the retrieved
// original source (the reference implementation's primal module
// delegates to an external, unretrieved crate) and is implemented
// directly from spec.md's §4.5 prose; see DESIGN.md for the documented
// simplifications this entails.
package primal
