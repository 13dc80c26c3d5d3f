// Package dgparse implements the lexical and structural parser for the
// Dungeon language front end: it turns raw source lines into a stream of
// classified, block-contextualized Sentence values ready for semantic
// compilation.
//
// It is built from a handful of cooperating, single-threaded scanners
// (line assembly, token recognition, sentence classification) feeding a
// small stack machine (the code-block stack) that can be snapshotted and
// rolled back.
package dgparse
