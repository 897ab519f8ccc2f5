// SPDX-License-Identifier: MIT
package decompose_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/matrix/decompose"
)

func BenchmarkPrepare(b *testing.B) {
	for _, n := range []int{16, 128} {
		for _, p := range policies {
			b.Run(fmt.Sprintf("%s/n=%d/alloc", p, n), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := decompose.Prepare(nil, n, n, p); err != nil {
						b.Fatal(err)
					}
				}
			})
			b.Run(fmt.Sprintf("%s/n=%d/reuse", p, n), func(b *testing.B) {
				m, _ := matrix.NewDense(n, n)
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := decompose.Prepare(m, n, n, p); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkLUReuse(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	a := diagonallyDominant(b, rng, 64)
	lu := decompose.NewLU()
	var l, u *matrix.Dense
	var err error
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err = lu.Decompose(a); err != nil {
			b.Fatal(err)
		}
		if l, err = lu.Lower(l); err != nil {
			b.Fatal(err)
		}
		if u, err = lu.Upper(u); err != nil {
			b.Fatal(err)
		}
	}
}
