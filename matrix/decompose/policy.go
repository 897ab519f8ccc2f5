// SPDX-License-Identifier: MIT

package decompose

import "strconv"

// FillPolicy selects which cells Prepare guarantees on return.
type FillPolicy uint8

const (
	// Identity resets every cell: 1 on (i,i) for i < min(rows, cols), 0 elsewhere.
	Identity FillPolicy = iota
	// ZeroFull sets every cell to 0.
	ZeroFull
	// ZeroLowerTriangle zeroes row i on columns [0, min(i, cols)).
	ZeroLowerTriangle
	// ZeroUpperTriangle zeroes row i < min(rows, cols) on columns [i+1, cols).
	ZeroUpperTriangle
)

var policyNames = [...]string{
	Identity:          "Identity",
	ZeroFull:          "ZeroFull",
	ZeroLowerTriangle: "ZeroLowerTriangle",
	ZeroUpperTriangle: "ZeroUpperTriangle",
}

// String implements fmt.Stringer.
func (p FillPolicy) String() string {
	if p.valid() {
		return policyNames[p]
	}

	return "FillPolicy(" + strconv.Itoa(int(p)) + ")"
}

func (p FillPolicy) valid() bool { return int(p) < len(policyNames) }
