package blockcache

import "testing"

func TestSolutionIndexAddAndMembers(t *testing.T) {
	si := newSolutionIndex()
	sol := solutionByte(1)

	si.add(sol, hashByte(1))
	si.add(sol, hashByte(2))

	if !si.isKnown(sol) {
		t.Fatalf("TestSolutionIndexAddAndMembers: expected solution to be known")
	}
	members := si.members(sol)
	if len(members) != 2 {
		t.Fatalf("TestSolutionIndexAddAndMembers: members = %v, want 2 entries", members)
	}
}

func TestSolutionIndexRemoveLastMemberDropsEntry(t *testing.T) {
	si := newSolutionIndex()
	sol := solutionByte(1)
	si.add(sol, hashByte(1))

	si.remove(sol, hashByte(1))

	if si.isKnown(sol) {
		t.Fatalf("TestSolutionIndexRemoveLastMemberDropsEntry: solution should no longer be known")
	}
	if members := si.members(sol); members != nil {
		t.Fatalf("TestSolutionIndexRemoveLastMemberDropsEntry: members = %v, want nil", members)
	}
}

func TestSolutionIndexRemoveUnknownIsNoop(t *testing.T) {
	si := newSolutionIndex()
	si.remove(solutionByte(9), hashByte(1))
	if si.isKnown(solutionByte(9)) {
		t.Fatalf("TestSolutionIndexRemoveUnknownIsNoop: unexpected entry created")
	}
}
