package actions

import "github.com/go-git/go-git/v5/plumbing"

func plumbingBranch(name string) plumbing.ReferenceName {
	return plumbing.NewBranchReferenceName(name)
}
