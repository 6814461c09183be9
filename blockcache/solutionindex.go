package blockcache

import "github.com/ArweaveTeam/blockcache/chainhash"

// solutionIndex is the Solution Index: solution hash to the
// set of block hashes that share it. No entry is ever left empty; the last
// member's removal deletes the map entry entirely.
type solutionIndex struct {
	bySolution map[chainhash.SolutionHash]map[chainhash.IndepHash]struct{}
}

func newSolutionIndex() *solutionIndex {
	return &solutionIndex{bySolution: make(map[chainhash.SolutionHash]map[chainhash.IndepHash]struct{})}
}

func (si *solutionIndex) add(solution chainhash.SolutionHash, hash chainhash.IndepHash) {
	set, ok := si.bySolution[solution]
	if !ok {
		set = make(map[chainhash.IndepHash]struct{})
		si.bySolution[solution] = set
	}
	set[hash] = struct{}{}
}

func (si *solutionIndex) remove(solution chainhash.SolutionHash, hash chainhash.IndepHash) {
	set, ok := si.bySolution[solution]
	if !ok {
		return
	}
	delete(set, hash)
	if len(set) == 0 {
		delete(si.bySolution, solution)
	}
}

func (si *solutionIndex) members(solution chainhash.SolutionHash) []chainhash.IndepHash {
	set, ok := si.bySolution[solution]
	if !ok {
		return nil
	}
	out := make([]chainhash.IndepHash, 0, len(set))
	for h := range set {
		out = append(out, h)
	}
	return out
}

func (si *solutionIndex) isKnown(solution chainhash.SolutionHash) bool {
	_, ok := si.bySolution[solution]
	return ok
}
