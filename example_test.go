package bioreasoner_test

import (
	"fmt"
	"log"

	"github.com/aretw0/bioreasoner"
	"github.com/aretw0/bioreasoner/pkg/dsl"
)

func ExampleNew() {
	eng, err := bioreasoner.New()
	if err != nil {
		log.Fatal(err)
	}

	res := eng.RunFacts(
		"LRP6__PROTEIN__PRESENT",
		"FRIZZLED__PROTEIN__PRESENT",
		"WNT__STATE__OFF",
	)
	for _, step := range res.Steps {
		fmt.Println(step.IterationIndex, step.Rule, step.NewFacts)
	}
	fmt.Println(res.Status, len(res.Contradictions))
	// Output:
	// 1 baseline_destruction_complex_high_when_no_wnt [DESTRUCTION_COMPLEX__ACTIVITY__HIGH]
	// 2 destruction_complex_high_drives_beta_cat_down [BETA_CAT__LEVEL__DOWN]
	// converged 0
}

func ExampleWithLibrary() {
	b := dsl.New()
	b.Rule("ligand_activates_receptor").
		When("LIGAND__STATE__PRESENT").
		Then("RECEPTOR__STATE__ACTIVE").
		Priority(10)
	b.Rule("receptor_drives_output").
		When("RECEPTOR__STATE__ACTIVE").
		Then("OUTPUT__LEVEL__UP")
	b.Contradict("OUTPUT__LEVEL__UP", "OUTPUT__LEVEL__DOWN")

	lib, reg, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}

	eng, err := bioreasoner.New(bioreasoner.WithLibrary(lib), bioreasoner.WithContradictions(reg))
	if err != nil {
		log.Fatal(err)
	}

	res := eng.RunFacts("LIGAND__STATE__PRESENT", "OUTPUT__LEVEL__DOWN")
	fmt.Println(res.FinalFacts.List())
	fmt.Println(res.Contradictions)
	// Output:
	// [LIGAND__STATE__PRESENT OUTPUT__LEVEL__DOWN OUTPUT__LEVEL__UP RECEPTOR__STATE__ACTIVE]
	// [OUTPUT__LEVEL__DOWN <-> OUTPUT__LEVEL__UP]
}
