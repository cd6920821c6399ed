package bitboard

// init builds every precomputed table this package exposes, in dependency
// order: leaper tables have none, magic discovery only needs the Bitboard
// primitives from types.go, and Zobrist keys stand alone. Build order
// relative to each other does not matter; what matters is that all three
// run exactly once, deterministically, before any other package's init
// (or code) touches these tables.
func init() {
	initLeaperTables()
	initMagics()
	initZobrist()
}
