// Package art resolves loosely-typed tile parameters into a canonical
// configuration.
//
// A tile is described by a raw input bag ([Attrs]) coming from a URL query
// string or from the attributes of a <mini-art-bw> element. [Normalize] turns a
// bag into a [Config]: a seed preset (see package seeds) is expanded first and
// explicit fields override it one by one. Normalization is permissive by
// design: values of the wrong type are ignored and nothing is validated, so
// any input still renders. Callers that want to reject malformed input can
// run [Validate] beforehand.
//
// Both bag producers, [FromQuery] and [FromAttributes], extract the same keys
// with the same encoding (booleans as key presence), which is what lets the
// server renderer and the browser element agree on the result.
//
// # Usage
//
//	cfg := art.Normalize(art.FromQuery(r.URL.Query()))
//	st := style.Synthesize(cfg)
//
// Random tiles use the same path:
//
//	cfg := art.Normalize(art.Randomize())
package art
