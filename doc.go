/*
Package bioreasoner is a deterministic forward-chaining inference engine over symbolic
biological facts.

Facts are opaque tokens such as "BETA_CAT__LEVEL__UP". Rules are monotonic if-then
assertions: when all conditions are present, all conclusions are added. The engine applies
the rules in a fixed order, (priority desc, name asc), pass after pass until no rule adds a
fact, then reports every declared contradiction pair whose two members both hold.

# Determinism

Given the same rules and input, the final facts, the step trace and the contradictions are
reproducible bit-for-bit. Final facts do not depend on the order rules were declared in; the
trace does, only through priorities and names.

# Usage

	eng, err := bioreasoner.New()
	if err != nil {
		log.Fatal(err)
	}

	res := eng.RunFacts(
		"WNT__LIGAND__PRESENT",
		"LRP6__PROTEIN__PRESENT",
		"FRIZZLED__PROTEIN__PRESENT",
		"LRP6__SER_SITES__INTACT",
	)
	for _, step := range res.Steps {
		fmt.Println(step.IterationIndex, step.Rule, step.NewFacts)
	}

A run never fails. If the pass cap is reached first the partial result is returned with
Status set to domain.StatusTruncated.

# Custom catalogs

Rules can be declared with the dsl package or read from a YAML catalog file with
WithCatalogFile. Invalid catalogs (empty or duplicate names, rules without conditions or
conclusions, degenerate contradiction pairs) are rejected by New.
*/
package bioreasoner
