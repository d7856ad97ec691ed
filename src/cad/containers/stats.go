package containers

import (
	"golang.org/x/exp/constraints"
)

func sum[F constraints.Float](v []F) (s F) {
	for i := range v {
		s += v[i]
	}
	return
}

// mean returns 0 for an empty slice.
func mean[F constraints.Float](v []F) F {
	if len(v) == 0 {
		return 0
	}
	return sum(v) / F(len(v))
}
