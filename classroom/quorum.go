// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package classroom

// HasQuorum reports whether strictly more than half of total teachers voted
// yes. An exact half is not enough, and zero teachers never reach quorum.
func HasQuorum(votes []bool, total int) bool {
	if total <= 0 {
		return false
	}
	return countYes(votes)*2 > total
}

// CanVotingStart reports whether enough students have arrived for a start
// vote to be solicited.
func CanVotingStart(students, minStudents int) bool {
	return students >= minStudents
}

func countYes(votes []bool) int {
	n := 0
	for _, v := range votes {
		if v {
			n++
		}
	}
	return n
}
