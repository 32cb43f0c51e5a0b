// Package eval scores an external predictor, usually a language model,
// against the engine's derived facts.
//
// A prompt is built from a scenario, the raw reply is parsed into fact
// tokens, and the prediction is compared with the engine's final facts on a
// fixed set of target facts. Batch runs a whole scenario suite into a
// ports.ResultStore, Analyze summarizes a store of results and
// AggregateReplicates averages summaries from repeated runs.
package eval
