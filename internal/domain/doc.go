// Package domain contains the records exchanged between the HTTP surface and
// the documentation generator: source files submitted for documentation and
// the per-file documentation parsed out of a model reply. It has no knowledge
// of transport or of the model provider.
package domain
