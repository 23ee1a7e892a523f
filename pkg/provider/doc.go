// Package provider serves a Glow tree to consumers.
//
// A Provider holds the complete tree and answers GetDirectory commands
// addressed at any depth with the addressed element's contents and its
// direct children. Loopback connects a Provider to a consumer in the same
// process, and ParseTree/LoadTree build trees from YAML fixtures.
package provider
