// Package fusion implements the layer-fusion pending-break scratchpad
// used by streaming (temporal) decoding: matchings made against a vertex
// that is virtual in the current time-layer window, but becomes real
// once the next layer fuses in, must be broken at fusion time. This
// package only tracks which nodes are provisional and compacts the list
// in place as breaks are applied; the firing policy is external.
//
// Grounded 1:1 on layer_fusion.rs's LayerFusionData.
package fusion
