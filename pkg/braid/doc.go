// Package braid provides the group-theoretic types consumed by the
// monodromy pipeline: braid words, permutations, free-group words over a
// global generator numbering, and finite presentations with a Tietze
// simplifier.
//
// A word is a sequence of signed 1-based generator indices composed left
// to right; index -k denotes the inverse of generator k. Braid words and
// free-group words share this representation. No normal form beyond free
// reduction is imposed: the monodromy pipeline only ever concatenates,
// inverts, and reindexes words.
package braid
