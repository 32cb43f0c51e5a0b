// Package scenario loads reasoning scenarios from YAML files.
//
//	name: wnt_demo
//	description: Wnt ligand with intact LRP6.
//	metadata:
//	  cell_line: HEK293T
//	initial_facts:
//	  - WNT__LIGAND__PRESENT
//	  - LRP6__PROTEIN__PRESENT
//	queries:
//	  - BETA_CAT__LEVEL__UP
//
// Malformed input is rejected here, before any facts reach the engine.
package scenario
