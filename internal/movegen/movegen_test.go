package movegen

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fkopp/ultimago/internal/position"
	. "github.com/fkopp/ultimago/internal/types"
)

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}

func moveFrom(ml interface {
	Len() int
	At(int) Move
}, from, to Square) (Move, bool) {
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if m.From() == from && m.To() == to {
			return m, true
		}
	}
	return MoveNone, false
}

func TestStartPositionHasNoImmediateKingCapture(t *testing.T) {
	pos := position.NewPosition()
	moves := GenerateMoves(pos)
	for i := 0; i < moves.Len(); i++ {
		assert.True(t, IsMoveLegal(pos, moves.At(i)), "move %s should be legal from the start position", moves.At(i))
	}
}

func TestStartPositionStradlerPushCount(t *testing.T) {
	pos := position.NewPosition()
	moves := GenerateMoves(pos)
	count := 0
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i).Piece() == Stradler {
			count++
		}
	}
	// Each of the 8 white stradlers on rank 2 has exactly one push to rank 3.
	assert.Equal(t, 8, count)
}

func TestStradlerCustodianCaptureRecordsVictim(t *testing.T) {
	// White stradler e2, black stradler f4, white buddy g4: e2-e4 custodian-captures f4.
	pos, err := position.FromFEN("8/8/8/8/5pP1/8/4P3/8 w 0 1")
	assert.NoError(t, err)

	moves := GenerateMoves(pos)
	m, found := moveFrom(moves, SqE2, SqE4)
	assert.True(t, found)
	assert.Equal(t, Stradler, m.C2())
	assert.Equal(t, PtEmpty, m.C1())
	assert.Equal(t, PtEmpty, m.C3())
	assert.Equal(t, PtEmpty, m.C4())
}

func TestStradlerNoCaptureWithoutBuddy(t *testing.T) {
	pos, err := position.FromFEN("8/8/8/8/5p2/8/4P3/8 w 0 1")
	assert.NoError(t, err)

	moves := GenerateMoves(pos)
	m, found := moveFrom(moves, SqE2, SqE4)
	assert.True(t, found)
	assert.Equal(t, PtEmpty, m.C1())
	assert.Equal(t, PtEmpty, m.C2())
	assert.Equal(t, PtEmpty, m.C3())
	assert.Equal(t, PtEmpty, m.C4())
}

func TestKingMoveCapturesAdjacentStradler(t *testing.T) {
	pos, err := position.FromFEN("8/8/8/8/8/8/4p3/4K3 w 0 1")
	assert.NoError(t, err)

	moves := GenerateMoves(pos)
	m, found := moveFrom(moves, SqE1, SqE2)
	assert.True(t, found)
	assert.Equal(t, Stradler, m.C1())
}

func TestImmobilizerDisablesAdjacentEnemy(t *testing.T) {
	// Black immobilizer on e5 sits next to white stradler on e4: the
	// stradler cannot move despite an open path to e5's neighbours.
	pos, err := position.FromFEN("8/8/8/4u3/4P3/8/8/8 w 0 1")
	assert.NoError(t, err)

	moves := GenerateMoves(pos)
	for i := 0; i < moves.Len(); i++ {
		assert.NotEqual(t, SqE4, moves.At(i).From(), "immobilized stradler should not generate any move")
	}
}

func TestFriendlyChameleonNeutralisesImmobilizer(t *testing.T) {
	// Same as above, but a friendly chameleon stands next to the enemy
	// immobilizer, disabling it: the stradler regains its moves.
	pos, err := position.FromFEN("8/8/4B3/4u3/4P3/8/8/8 w 0 1")
	assert.NoError(t, err)

	moves := GenerateMoves(pos)
	found := false
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i).From() == SqE4 {
			found = true
			break
		}
	}
	assert.True(t, found, "stradler next to a chameleon-neutralised immobilizer should regain its moves")
}

func TestIsCheckmateFalseFromStartPosition(t *testing.T) {
	pos := position.NewPosition()
	assert.False(t, IsCheckmate(pos))
}

func TestSpringerLeapGeneratesCapture(t *testing.T) {
	pos, err := position.FromFEN("8/8/8/8/8/8/8/N1p5 w 0 1")
	assert.NoError(t, err)

	moves := GenerateMoves(pos)
	m, found := moveFrom(moves, SqA1, SqD1)
	assert.True(t, found)
	assert.Equal(t, Stradler, m.C1())
}

func TestCoordinatorDeathSquareCapture(t *testing.T) {
	// White coordinator a1 moves along rank 1 to d1; white king h8. The
	// rectangle corner (file d, rank 8) holds a black stradler: captured.
	pos, err := position.FromFEN("3p3K/8/8/8/8/8/8/R7 w 0 1")
	assert.NoError(t, err)

	moves := GenerateMoves(pos)
	m, found := moveFrom(moves, SqA1, SqD1)
	assert.True(t, found)
	assert.Equal(t, Stradler, m.C1())
	assert.Equal(t, PtEmpty, m.C2())
}
