package solve

import (
	"context"
	"sync"
	"time"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"go.uber.org/atomic"

	"github.com/sokoworks/sokosolve/pkg/board"
)

// SolverBType names the solution produced by SolveBType.
const SolverBType = "b-type"

// quiescenceSleep is the interval a worker sleeps before re-checking the
// empty-workers counter (§4.5, §9: "the sleep-and-recheck protocol").
const quiescenceSleep = 20 * time.Millisecond

// SolveBType runs the parallel bidirectional solver of §4.5: a forward
// search from the starting boxes and a backward search from a mirrored
// board (goals-as-boxes) share one transposition table, and the solver
// reports success the first time a position inserted by one direction is
// already present from the other.
//
// The spanning-tree geometry this solver targets (§4.6, Non-goals in §1)
// means the player is never pre-positioned before a push candidate is
// tried -- every box/direction pair is attempted regardless of the
// worker's current player square -- so the replayed LURD contains only
// push letters, no intervening walks; see DESIGN.md.
func SolveBType(ctx context.Context, start *board.Board, opts ...Option) (*Solution, error) {
	opt := newOptions(opts...)

	lb, ok := start.LowerBound()
	if !ok {
		return nil, ErrDeadlockAtStart
	}
	if lb == 0 {
		return &Solution{Name: SolverBType, LURD: ""}, nil
	}

	mirror, err := buildMirrorBoard(start)
	if err != nil {
		return nil, err
	}

	zt := board.NewZobristTable(board.DefaultZobristSeed, start.Width()*start.Height())
	numBoxes := len(start.BoxPositionsClone())

	s := &btypeSearch{
		zt:   zt,
		tt:   opt.TranspositionTableFactory(),
		open: NewOpenQueue(numBoxes),
		mem:  opt.MemoryFloorBytes,
	}
	s.running.Store(true)

	fwdRoot := NewBoardPosition(zt, start.BoxPositionsClone(), false)
	s.tt.PutIfAbsent(fwdRoot)
	s.open.Enqueue(false, Bucket(BoxesOnCorrectGoal(start)), fwdRoot)

	bwdRoot := NewBoardPosition(zt, mirror.BoxPositionsClone(), true)
	s.tt.PutIfAbsent(bwdRoot)
	s.open.Enqueue(true, Bucket(BoxesOnCorrectGoal(mirror)), bwdRoot)

	workers := opt.Workers
	if workers < 2 {
		workers = 2
	}
	fwdWorkers := workers / 2
	bwdWorkers := workers - fwdWorkers
	total := int32(fwdWorkers + bwdWorkers)

	var wg sync.WaitGroup
	for i := 0; i < fwdWorkers; i++ {
		wg.Add(1)
		go s.worker(ctx, start.Clone(), false, total, &wg)
	}
	for i := 0; i < bwdWorkers; i++ {
		wg.Add(1)
		go s.worker(ctx, mirror.Clone(), true, total, &wg)
	}
	wg.Wait()

	switch {
	case s.oom.Load():
		return nil, ErrOutOfMemory
	case contextx.IsCancelled(ctx) && s.solutionFwd == nil:
		return nil, ErrCancelled
	case s.solutionFwd == nil:
		return nil, ErrNoSolution
	}

	return &Solution{
		Name: SolverBType,
		LURD: reconstructBType(start, s.solutionFwd, s.solutionBwd),
	}, nil
}

// buildMirrorBoard constructs the backward search's board: goal cells become
// boxes, box cells become goal cells (§4.5 "Backward root").
func buildMirrorBoard(start *board.Board) (*board.Board, error) {
	width, height := start.Width(), start.Height()
	cells := make([]board.Cell, width*height)
	for sq := 0; sq < width*height; sq++ {
		s := board.Square(sq)
		if start.IsWall(s) {
			cells[sq] = board.Wall
		} else {
			cells[sq] = board.Floor
		}
	}
	for _, b := range start.BoxPositionsClone() {
		cells[b] = board.Goal
	}

	var boxes []board.Square
	for sq := 0; sq < width*height; sq++ {
		if start.IsGoal(board.Square(sq)) {
			boxes = append(boxes, board.Square(sq))
		}
	}

	return board.NewBoard(width, height, cells, boxes, start.PlayerPosition())
}

// btypeSearch holds the state shared by every worker task: the transposition
// table and open queue (§4.2, §4.3), the running/oom flags and the
// quiescence counter (§5), and the winning meet once found.
type btypeSearch struct {
	zt   *board.ZobristTable
	tt   TranspositionTable
	open *OpenQueue
	mem  uint64

	running atomic.Bool
	oom     atomic.Bool

	insertions   atomic.Int64
	emptyWorkers atomic.Int32

	mu          sync.Mutex
	solutionFwd Position
	solutionBwd Position
	solutionLen int
}

func (s *btypeSearch) worker(ctx context.Context, work *board.Board, backward bool, total int32, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		if !s.running.Load() || contextx.IsCancelled(ctx) {
			return
		}

		bp, ok := s.open.Dequeue(backward)
		if !ok {
			if s.quiesce(total) {
				return
			}
			continue
		}

		s.expand(ctx, work, backward, bp)
	}
}

// quiesce implements the empty-queue termination protocol of §4.5/§9: a
// worker that sees its queue empty increments the shared counter; if it has
// reached every worker, termination is declared, otherwise the worker sleeps
// briefly and rechecks once before giving another worker a chance to refill
// the queue.
func (s *btypeSearch) quiesce(total int32) bool {
	if s.emptyWorkers.Inc() >= total {
		return true
	}

	time.Sleep(quiescenceSleep)

	if s.emptyWorkers.Load() >= total {
		return true
	}
	s.emptyWorkers.Dec()
	return false
}

// expand tries every box/direction double-push from bp (§4.5 step 3),
// installing bp's boxes onto the worker's own cloned board first.
func (s *btypeSearch) expand(ctx context.Context, work *board.Board, backward bool, bp Position) {
	work.SetBoxPositions(bp.Boxes())
	boxes := work.BoxPositionsClone()

	for _, box := range boxes {
		for d := board.Direction(0); d < board.NumDirections; d++ {
			if !s.running.Load() {
				return
			}

			off := work.Offset(d)
			p1 := box + off
			p2 := p1 + off

			if !work.IsAccessibleBox(p1) || !work.IsAccessibleBox(p2) {
				continue
			}

			work.PushBox(box, p2)
			work.SetPlayerPosition(p1)
			work.Reachable.Update()

			if s.hasCorral(work, p2) {
				work.PushBoxUndo(p2, box)
				continue
			}

			child := NewDelta(s.zt, bp, box, p2)

			if s.countInsertion(ctx) {
				work.PushBoxUndo(p2, box)
				return
			}

			existing, inserted := s.tt.PutIfAbsent(child)
			switch {
			case inserted:
				s.open.Enqueue(backward, Bucket(BoxesOnCorrectGoal(work)), child)
			case existing.Backward() != backward:
				s.recordMeet(child, existing, backward)
				s.running.Store(false)
				work.PushBoxUndo(p2, box)
				return
			}

			work.PushBoxUndo(p2, box)
		}
	}
}

// hasCorral reports whether pushing the box to p2 isolates a region
// reachable to boxes but not to the player (§4.5's corral check, §Glossary).
func (s *btypeSearch) hasCorral(work *board.Board, p2 board.Square) bool {
	for _, d := range [board.NumDirections]board.Direction{board.Up, board.Right, board.Down, board.Left} {
		n := p2 + work.Offset(d)
		if work.IsAccessibleBox(n) && !work.Reachable.IsReachable(n) {
			return true
		}
	}
	return false
}

// countInsertion bumps the shared insertion counter and, every
// btypeProgressInterval insertions, publishes progress and checks the
// memory floor (§4.5). Returns true if the search should stop for OOM.
func (s *btypeSearch) countInsertion(ctx context.Context) bool {
	n := s.insertions.Inc()
	if n%btypeProgressInterval != 0 {
		return false
	}

	logw.Infof(ctx, "b-type: %v insertions, %v transposed", n, s.tt.Len())
	if freeMemoryBytes() < s.mem {
		s.oom.Store(true)
		s.running.Store(false)
		return true
	}
	return false
}

// recordMeet keeps the shortest of any concurrently discovered meets (§5,
// §9: "preserve the shortest-wins invariant explicitly").
func (s *btypeSearch) recordMeet(newPos, existingPos Position, newIsBackward bool) {
	var fwd, bwd Position
	if newIsBackward {
		fwd, bwd = existingPos, newPos
	} else {
		fwd, bwd = newPos, existingPos
	}

	length := chainLength(fwd) + chainLength(bwd.ParentPosition())

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.solutionFwd == nil || length < s.solutionLen {
		s.solutionFwd = fwd
		s.solutionBwd = bwd
		s.solutionLen = length
	}
}

func chainLength(p Position) int {
	n := 0
	for cur := p; cur != nil; cur = cur.ParentPosition() {
		n++
	}
	return n
}

// reconstructBType assembles the meeting path (§4.5 "Meet and path
// assembly") and replays it into a LURD string (§4.5 "Replay to moves").
func reconstructBType(start *board.Board, fwd, bwd Position) string {
	var path []Position
	var fwdChain []Position
	for cur := fwd; cur != nil; cur = cur.ParentPosition() {
		fwdChain = append(fwdChain, cur)
	}
	for i, j := 0, len(fwdChain)-1; i < j; i, j = i+1, j-1 {
		fwdChain[i], fwdChain[j] = fwdChain[j], fwdChain[i]
	}
	path = append(path, fwdChain...)

	for cur := bwd.ParentPosition(); cur != nil; cur = cur.ParentPosition() {
		path = append(path, cur)
	}

	var hist MoveHistory
	for i := 1; i < len(path); i++ {
		old, new_, ok := boxDelta(path[i-1].Boxes(), path[i].Boxes())
		if !ok {
			continue
		}
		d, ok := deltaDirection(start, new_-old)
		if !ok {
			continue
		}
		hist.Push(d)
		hist.Push(d)
	}
	return hist.String()
}

// boxDelta finds the single box that moved between two sorted box snapshots
// (§4.5 "the one box that moved (set difference)").
func boxDelta(prev, cur []board.Square) (old, new_ board.Square, ok bool) {
	prevCount := map[board.Square]int{}
	for _, sq := range prev {
		prevCount[sq]++
	}
	curCount := map[board.Square]int{}
	for _, sq := range cur {
		curCount[sq]++
	}

	var oldCandidates, newCandidates []board.Square
	for sq, c := range prevCount {
		if curCount[sq] < c {
			oldCandidates = append(oldCandidates, sq)
		}
	}
	for sq, c := range curCount {
		if prevCount[sq] < c {
			newCandidates = append(newCandidates, sq)
		}
	}

	if len(oldCandidates) != 1 || len(newCandidates) != 1 {
		return 0, 0, false
	}
	return oldCandidates[0], newCandidates[0], true
}

// deltaDirection maps a box displacement to the direction whose
// double-offset produced it (§4.5: "must equal 2·offset[d] for exactly one d").
func deltaDirection(b *board.Board, delta board.Square) (board.Direction, bool) {
	for d := board.Direction(0); d < board.NumDirections; d++ {
		if b.Offset(d)*2 == delta {
			return d, true
		}
	}
	return 0, false
}
