/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

// Magic holds the magic bitboard data for one square: the relevant blocker
// mask, the magic multiplier, the post-multiply shift and the per-square
// attack table the multiplier indexes into.
//
// Unlike a chess engine, which searches for its own magics at startup
// (see the teacher's initMagics/PrnG), the magic multipliers here are
// fixed constants the move-generation tables are defined against and must
// not be re-derived; only the attack tables they index are built locally.
type Magic struct {
	Mask    Bitboard
	Magic   uint64
	Attacks []Bitboard
	Shift   uint
}

// index maps an occupancy to a slot in m.Attacks.
func (m *Magic) index(occupied Bitboard) uint {
	occ := uint64(occupied & m.Mask)
	occ *= m.Magic
	occ >>= m.Shift
	return uint(occ)
}

// buildMagic constructs a fully populated Magic for one square from its
// relevant-blocker mask, fixed multiplier and reference oracle, via the
// standard Carry-Rippler enumeration of every blocker subset of mask.
func buildMagic(mask Bitboard, magic uint64, sq Square, oracle func(Square, Bitboard) Bitboard) Magic {
	shift := uint(64 - mask.PopCount())
	m := Magic{Mask: mask, Magic: magic, Shift: shift, Attacks: make([]Bitboard, 1<<(64-shift))}
	var sub Bitboard
	for {
		m.Attacks[m.index(sub)] = oracle(sq, sub)
		sub = (sub - mask) & mask
		if sub == BbZero {
			break
		}
	}
	return m
}

// Orthogonal (rook-style), diagonal (bishop-style), stradler-buddy and
// retractor-neighbour magic multipliers, required verbatim by the
// move-generation tables defined against them.
var (
	orthMagics = [64]uint64{
		0x580002011804000, 0x2840004410002008, 0x2100104100200109, 0x80080180841000,
		0x200041002000820, 0x200840010120028, 0x680020007000180, 0x8600005103802604,
		0x40800040003189, 0x8400400050082000, 0x2000801000822005, 0x1001000821001004,
		0x822002090048a00, 0x1801200800c01, 0xa0b000100644200, 0x8080801100004480,
		0x1880004000200440, 0x810004004200440, 0x12020041801023, 0x3120028402200,
		0x808004004004200, 0x14008002008004, 0x402040010180201, 0xc2010a0002428401,
		0x1c00280012181, 0x810004840002000, 0x1200880100080, 0x101480480100081,
		0x1041480100111500, 0xa000040080020080, 0x284181400125045, 0x3009285200008421,
		0x8002204001800489, 0x4200184804000, 0x202410251002000, 0xa784811000800800,
		0x801c01800800, 0x2500800400800200, 0xc010085074000302, 0x50005082002104,
		0x402400080028020, 0x1004c020014002, 0x200041050010, 0x610008100080800,
		0x403c008040080800, 0x1800402010080104, 0x1000812862440010, 0x100058059120014,
		0x2480014004208480, 0x80a01080400580, 0xa04100102000c100, 0x3880812802100280,
		0x28000900100500, 0x285800400020180, 0x42194a08104400, 0x13000040822100,
		0x80110042008422, 0x89201a1008442, 0x8820040101822, 0x800082420300101,
		0x2052001810200402, 0x4100080a8c0001, 0x800208048a01100c, 0x240c80410a,
	}
	diagMagics = [64]uint64{
		0x8400414004202a0, 0x8a52540c04034010, 0x41550501000005, 0x180404208814019c,
		0x400c042008800100, 0x8012028aa0001000, 0x1001465010080108, 0x8000a20810881801,
		0x4005010a0200, 0x100c60a04141088, 0x46088802c48200, 0x8400140400980002,
		0x420210240200, 0x1051008050a00, 0x40e8020101194001, 0x10104108281224,
		0x42002008010100, 0x8008000312180a00, 0x2008004442040110, 0x102024402120004,
		0x24000880a00000, 0x211002170023010, 0x800044c882101000, 0xc000800044042101,
		0x85a00224081014, 0x2a207101010020a, 0x84021204080012, 0x920080001004008,
		0x200a00a008040, 0x8852081026080202, 0x204038111081100, 0x840100c081044800,
		0x2048180408412402, 0x8004040400210102, 0x810802080040800, 0x8000208020080201,
		0x40024010050100, 0x20018100008044, 0x18410408850480, 0x8090a08500018c02,
		0x4004010840350800, 0x204010c02001044, 0x441040205044200, 0x1220202001424,
		0x1080102400408, 0xc04a108102000300, 0x8030404000880, 0xc06040400624480,
		0x74020104204800, 0x8041c824100000, 0x1a00108048180048, 0x1880042184044000,
		0x28480c009024210, 0x1400100210070020, 0x40208421420c0004, 0xa2a0080901c88480,
		0x460840190900880, 0x40011401010829, 0x310450884c81800, 0x4010000002050400,
		0x2000802028902401, 0x2020000420440110, 0x4c1020600a208314, 0x9104205449020010,
	}
	stradlerMagics = [64]uint64{
		0x6000680210a00008, 0xb1a41022028404c, 0x4200200840000800, 0x5200102000029422,
		0x228004c108001002, 0xd00028a04000000, 0x1840410402004010, 0x480108102000101,
		0x8010018028000c00, 0x1400a020020001, 0xc484003862080002, 0x521805011105020,
		0x1010a10820001002, 0x201084612850080c, 0x2aa083900500004, 0x420c0109010068,
		0x201090238801400b, 0x10080840c220060a, 0x2020210011260044, 0x1020120402044902,
		0x410221024200000c, 0x20016400400007c, 0x818005040a000020, 0x3840240000832111,
		0x1848c3080360444, 0xa20001004128020, 0x4208529800500000, 0x800490420a420041,
		0x800400a280090000, 0x8004090420120401, 0x1010a20404020089, 0xc00808900010000,
		0x20602020024180, 0x101110011184a500, 0x6230442010410, 0x2001100090900884,
		0xa20812040d08, 0x82140104200214, 0x100146002d000080, 0x5184064a02001502,
		0x80808200080042, 0x10704880042124, 0x182000d28410, 0x910018410208011,
		0x1000188400208805, 0x51000a080090101, 0x9001080080049, 0x810910084112801,
		0x20800100c0002000, 0x4000102040000800, 0x80080008a0004200, 0x920016005401640c,
		0xc80010003002110, 0x10001020a021044, 0x400210002000418, 0xa40804050110071c,
		0x2044008200820010, 0x200300000400298, 0x900840288100438, 0x400400000888a014,
		0x120400500a0a0032, 0x40000000024015, 0x502d001620460404, 0x2a2000000430002,
	}
	retractorMagics = [64]uint64{
		0x8100048804400, 0xa004012501082080, 0x100000a40001c200, 0x11002c4010200000,
		0x90001048488400c, 0x50c00000180040a0, 0x100008414021005, 0x8895200400060020,
		0x4800410004000410, 0x44026000c3804002, 0x9000c20200000100, 0x180061000400001c,
		0xac004a8010020000, 0xa00184081221140, 0x4100821010084004, 0x81000ac140014900,
		0xa004001080012, 0x2040260000bc308, 0x230012201800000, 0x88041082080505,
		0x1011804c00200400, 0x72002440002202, 0x1009220010801, 0x4043440210000120,
		0x1208444010808200, 0x4000a00408840080, 0x100204420010, 0x848080061009000,
		0x400911008080c0, 0x2004026001008, 0x143891a013000854, 0x24430a200424400,
		0x44200808488044, 0x3404c80402600201, 0x80002290012e0010, 0x2820222800910401,
		0x8010d0400308060, 0x20040200c08801, 0x1000080100821018, 0x20000484002200,
		0x45101080000800, 0x4010040820040884, 0x200000201000c200, 0x4800281008006100,
		0x80000294020840, 0x200002002440, 0x18004011000c20, 0x4000120100800822,
		0x10000c0000800190, 0x40000a0020200244, 0xa01888010100823, 0x80061,
		0x200005008a06804c, 0x1002004020254026, 0x5802aa013, 0x82000001808010c3,
		0x204009108010, 0x80a40800000a4408, 0x600002288048, 0xd020000802100088,
		0xc04d0082000000c, 0x4c01000000000011, 0x80004040009d1001, 0x50300000862000,
	}
)

// orthMagicTable, diagMagicTable, stradlerMagicTable and retractorMagicTable
// are the per-square magic attack tables built once at package init.
var (
	orthMagicTable      [64]Magic
	diagMagicTable      [64]Magic
	stradlerMagicTable  [64]Magic
	retractorMagicTable [64]Magic
)

func init() {
	for sq := SqA1; sq < SqNone; sq++ {
		orthMagicTable[sq] = buildMagic(orthRelevantBlockers[sq], orthMagics[sq], sq, generateOrthogonalMoves)
		diagMagicTable[sq] = buildMagic(diagRelevantBlockers[sq], diagMagics[sq], sq, generateDiagonalMoves)
		stradlerMagicTable[sq] = buildMagic(relevantBuddies[sq], stradlerMagics[sq], sq, generateStradlerCaptures)
		retractorMagicTable[sq] = buildMagic(kingMoveMask[sq], retractorMagics[sq], sq, generateRetractorCaptures)
	}
}

// OrthogonalMoves returns the rook-style destinations (including the first
// blocker square on each ray, if any) for a slider at sq given occupied.
func OrthogonalMoves(sq Square, occupied Bitboard) Bitboard {
	m := &orthMagicTable[sq]
	return m.Attacks[m.index(occupied)]
}

// DiagonalMoves returns the bishop-style destinations for a slider at sq
// given occupied.
func DiagonalMoves(sq Square, occupied Bitboard) Bitboard {
	m := &diagMagicTable[sq]
	return m.Attacks[m.index(occupied)]
}

// StradlerCaptures returns the squares a stradler at sq captures into,
// given the current occupancy of its buddy squares.
func StradlerCaptures(sq Square, occupied Bitboard) Bitboard {
	m := &stradlerMagicTable[sq]
	return m.Attacks[m.index(occupied)]
}

// RetractorCaptures returns the squares a retractor at sq captures into,
// given the current occupancy of its king-neighbour squares.
func RetractorCaptures(sq Square, occupied Bitboard) Bitboard {
	m := &retractorMagicTable[sq]
	return m.Attacks[m.index(occupied)]
}
