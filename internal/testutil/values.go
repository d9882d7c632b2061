// Package testutil defines support code for unit tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/creachadair/jview"
)

// NewRand returns a deterministic source of randomness for tests.
func NewRand(seed uint64) *rand.Rand { return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }

// RandomValue returns a pseudo-random JSON value tree no deeper than depth
// levels, whose arrays and objects have at most width elements. Objects are
// jview.Members, so that their member order is deterministic.
func RandomValue(r *rand.Rand, depth, width int) any {
	if depth <= 0 || r.IntN(4) == 0 {
		return randomScalar(r)
	}
	n := r.IntN(width + 1)
	if r.IntN(2) == 0 {
		arr := make([]any, n)
		for i := range arr {
			arr[i] = RandomValue(r, depth-1, width)
		}
		return arr
	}
	obj := make(jview.Members, n)
	for i := range obj {
		obj[i] = jview.Field(fmt.Sprintf("k%d", i), RandomValue(r, depth-1, width))
	}
	return obj
}

func randomScalar(r *rand.Rand) any {
	switch r.IntN(6) {
	case 0:
		return nil
	case 1:
		return r.IntN(2) == 0
	case 2:
		return json.Number(strconv.Itoa(r.IntN(1000)))
	case 3:
		return r.Float64() * 100
	case 4:
		return "s" + strconv.Itoa(r.IntN(100))
	default:
		return "two words"
	}
}
