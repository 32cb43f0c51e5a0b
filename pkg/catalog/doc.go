// Package catalog provides the built-in rule catalog and a loader for
// catalog files.
//
// A catalog file is YAML (or JSON when the extension is .json):
//
//	rules:
//	  - name: ligand_activates_receptor
//	    when: [LIGAND__STATE__PRESENT]
//	    then: RECEPTOR__STATE__ACTIVE
//	    priority: 10
//	    tags: [DEMO]
//	    description: Ligand binding activates the receptor.
//	contradictions:
//	  - [RECEPTOR__STATE__ACTIVE, RECEPTOR__STATE__INACTIVE]
//
// A single string is accepted wherever a list is expected.
package catalog
