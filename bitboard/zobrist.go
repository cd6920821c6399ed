package bitboard

import "math/rand"

// PieceKeys[colour*6+kind][sq] is the Zobrist key for a piece of the given
// colour and kind standing on sq.
var PieceKeys [12][64]uint64

// CastleKeys[rights] is the Zobrist key for a given 4-bit castling-rights
// combination (bit0=white kingside, bit1=white queenside, bit2=black
// kingside, bit3=black queenside).
var CastleKeys [16]uint64

// EnPassantKeys[file] is the Zobrist key for an en-passant target on that
// file; index 8 is the "no en-passant target" sentinel and is always zero.
var EnPassantKeys [9]uint64

// SideKey is XORed into the hash whenever it is Black to move.
var SideKey uint64

// PieceIndex returns the PieceKeys row for a piece of colour c and kind k.
func PieceIndex(c Colour, k PieceKind) int { return int(c)*6 + int(k) }

// initZobrist fills every Zobrist key table from a fixed seed, so hashes
// are reproducible across runs and across platforms.
func initZobrist() {
	rng := rand.New(rand.NewSource(0x5A1B0A7D))

	for p := 0; p < 12; p++ {
		for sq := 0; sq < 64; sq++ {
			PieceKeys[p][sq] = rng.Uint64()
		}
	}
	for i := range CastleKeys {
		CastleKeys[i] = rng.Uint64()
	}
	for file := 0; file < 8; file++ {
		EnPassantKeys[file] = rng.Uint64()
	}
	EnPassantKeys[8] = 0
	SideKey = rng.Uint64()
}
