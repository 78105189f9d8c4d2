// Package recon exposes reconciliation over HTTP.
//
// The service resolves each request side from inline rows or a source
// spec, runs the engine with per-request option overrides, and renders
// report artifacts on demand. The handler maps the engine's error taxonomy
// onto status codes: schema, integrity, config, and request-shape problems
// are 400s, side materialization failures are 502s.
package recon
