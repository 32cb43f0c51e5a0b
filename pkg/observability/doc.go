/*
Package observability turns engine lifecycle events into Prometheus metrics
and audit log records.

Both are delivered as domain.LifecycleHooks, so they plug into the engine
with bioreasoner.WithLifecycleHooks and can be chained with Combine.
*/
package observability
