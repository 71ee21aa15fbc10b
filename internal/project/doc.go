// Package project holds the metadata extracted from a project archive before
// it is loaded, and the pre-parser contract that produces it.
package project
