// Package netomics turns omics tables into networks you can read.
//
// 🚀 What is netomics?
//
//	A small, thread-safe toolkit for two network-biology workflows:
//		• Enrichment maps: gene-set collections → size filter → ranked genes
//		  → enrichment results → a map of sets linked by shared leading edges
//		• Perturbation networks: partial-correlation matrix → local-FDR mask
//		  → top-|w| signed edges → node roles (protein, phenotype, activity)
//		  → shortest paths from a perturbation to a phenotype
//
// ✨ Why choose netomics?
//
//   - Plain inputs - TSV/GMT tables, gzip-aware, R write.table friendly
//   - Explicit failures - typed parse, shape, label and range errors
//   - Reproducible - every run report pins its inputs by BLAKE3 checksum
//   - Portable outputs - Graphviz DOT, Cytoscape JSON and edge TSV
//
// Packages:
//
//	tabular/      line reader, headers, gzip, checksums, ParseError
//	matrix/       dense and labeled matrices, symmetry checks, upper triangle
//	geneset/      gene-set collections, GMT/long parsers, size filter, similarity
//	ranking/      ranked gene lists
//	enrich/       enrichment engine boundary, result tables, enrichment map
//	signif/       local-FDR estimators and significance masking
//	edgelist/     top-|w| edge extraction and graph building
//	network/      signed, role-annotated graph
//	bfs/          breadth-first search and connected components
//	dijkstra/     shortest paths with hop, strength and absolute costs
//	render/       DOT, JSON and TSV writers
//	pipeline/     the two end-to-end workflows and their YAML reports
//	cmd/netomics  the command-line front end
//
// Quick ASCII example:
//
//	    erlotinib ─(−0.8)─ EGFR ─(+0.6)─ ERK ─(+0.7)─ viability
//
// is the path `netomics path erlotinib viability` prints for a drug whose
// inhibition of EGFR propagates to cell viability.
//
//	go install github.com/katalvlaran/netomics/cmd/netomics@latest
package netomics
