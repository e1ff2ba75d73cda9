// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package classroom

// Issuer hands out participant identities: 1, 2, 3, ...
// Teachers and doors draw from the same sequence. Issuer does no locking of
// its own; Coordinator calls it inside its critical section.
type Issuer struct {
	next int
}

func NewIssuer() *Issuer {
	return &Issuer{next: 1}
}

// Next returns the current counter value and advances it.
func (i *Issuer) Next() int {
	id := i.next
	i.next++
	return id
}
