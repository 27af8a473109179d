// Package metrics exposes the render counters collected during a run.
//
// A Recorder owns a private Prometheus registry, so several recorders can
// coexist in one process (tests, embedders) without clashing on the default
// registerer. The collected families can be written in the node_exporter
// textfile format with WriteTextfile.
package metrics
