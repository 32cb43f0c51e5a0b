/*
Package domain contains the core domain model of the BioReasoner inference engine.

It defines facts, rules, the ordered rule library, the contradiction registry and the
result of a reasoning run. The package is pure: no I/O, no global state, no logging.
Everything here is deterministic so that traces are reproducible bit-for-bit.

# Key Entities

  - Fact: an opaque, case-sensitive token such as "BETA_CAT__LEVEL__UP".
  - FactSet: a deduplicated collection of facts enumerated in sorted order.
  - Rule: an immutable condition set -> conclusion set, with priority and metadata.
  - Library: rules ordered once by (priority desc, name asc).
  - Registry: unordered pairs of mutually exclusive facts.
  - Result: final facts, the step trace and the detected contradictions.
*/
package domain
