package bitboard

import "testing"

func TestIsAttackedByRookAlongFile(t *testing.T) {
	e1, e8, e3 := Square(4), Square(60), Square(20)
	occ := SetBit(SetBit(0, e1), e8)
	rooks := SetBit(Bitboard(0), e8)
	if !IsAttacked(e1, occ, Black, 0, 0, 0, rooks, 0, 0) {
		t.Fatalf("expected e1 attacked by rook on e8")
	}
	occ = SetBit(occ, e3)
	if IsAttacked(e1, occ, Black, 0, 0, 0, rooks, 0, 0) {
		t.Fatalf("did not expect e1 attacked once e3 blocks the file")
	}
}

func TestIsAttackedByBishopDiagonal(t *testing.T) {
	e1, b4 := Square(4), Square(25)
	occ := SetBit(SetBit(0, e1), b4)
	bishops := SetBit(Bitboard(0), b4)
	if !IsAttacked(e1, occ, Black, 0, 0, bishops, 0, 0, 0) {
		t.Fatalf("expected e1 attacked by bishop on b4")
	}
	d2 := Square(11)
	occ = SetBit(occ, d2)
	if IsAttacked(e1, occ, Black, 0, 0, bishops, 0, 0, 0) {
		t.Fatalf("did not expect e1 attacked once d2 blocks the diagonal")
	}
}

func TestIsAttackedByPawnRespectsColour(t *testing.T) {
	e4, d5 := Square(28), Square(35)
	occ := SetBit(SetBit(0, e4), d5)
	blackPawns := SetBit(Bitboard(0), d5)
	if !IsAttacked(e4, occ, Black, blackPawns, 0, 0, 0, 0, 0) {
		t.Fatalf("expected e4 attacked by black pawn on d5")
	}
	// The same pawn set, queried as if White's pawns, must not attack e4 from d5.
	if IsAttacked(e4, occ, White, blackPawns, 0, 0, 0, 0, 0) {
		t.Fatalf("did not expect e4 attacked when queried for the wrong side")
	}
}

func TestIsAttackedByKnightAndKing(t *testing.T) {
	e1 := Square(4)
	f3 := Square(21)
	knights := SetBit(Bitboard(0), f3)
	if !IsAttacked(e1, SetBit(SetBit(0, e1), f3), Black, 0, knights, 0, 0, 0, 0) {
		t.Fatalf("expected e1 attacked by knight on f3")
	}

	d2 := Square(11)
	king := SetBit(Bitboard(0), d2)
	if !IsAttacked(e1, SetBit(SetBit(0, e1), d2), Black, 0, 0, 0, 0, 0, king) {
		t.Fatalf("expected e1 attacked by adjacent king on d2")
	}
}

func TestAttackersToCollectsAllAttackers(t *testing.T) {
	e1 := Square(4)
	e8 := Square(60)
	b4 := Square(25)
	occ := SetBit(SetBit(SetBit(0, e1), e8), b4)
	rooks := SetBit(Bitboard(0), e8)
	bishops := SetBit(Bitboard(0), b4)
	got := AttackersTo(e1, occ, 0, 0, bishops, rooks, 0, 0, Black)
	want := SetBit(SetBit(Bitboard(0), e8), b4)
	if got != want {
		t.Fatalf("AttackersTo(e1) = %#x, want %#x", got, want)
	}
}
