/*
Package dsl provides a fluent builder for rule libraries and contradiction registries.

Rules are declared in plain Go instead of YAML, which keeps the default catalog
type-checked and lets tests assemble small synthetic libraries inline.

Example usage:

	b := dsl.New()

	b.Rule("ligand_binds_receptor").
		When("LIGAND__STATE__PRESENT", "RECEPTOR__PROTEIN__PRESENT").
		Then("RECEPTOR__STATE__ACTIVE").
		Priority(10).
		Describe("Ligand binding activates the receptor.")

	b.Exclusive("RECEPTOR__STATE__ACTIVE", "RECEPTOR__STATE__INACTIVE")

	lib, reg, err := b.Build()
	// ... pass lib and reg to bioreasoner.New
*/
package dsl
