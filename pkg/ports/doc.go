/*
Package ports defines the driven ports (interfaces) of BioReasoner.

These interfaces decouple the reasoning core and the evaluation harness from
concrete storage backends and transports.

# Key Interfaces

  - Reasoner: anything that turns an initial FactSet into a Result.
  - ResultStore: persists JSON documents (evaluation results, summaries) by key.
*/
package ports
