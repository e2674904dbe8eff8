// Package path parses textual chain expressions and applies them to a
// weakget.Chain.
//
// Grammar:
// - .Name: attribute
// - [3], [-1], ["key"]: item
// - [1:3], [2:], [:2], [:]: range
// - (): call without arguments
package path
