package ip

import "github.com/google/uuid"

// List is the ordered collection of live IPs driving concurrent execution.
// Order determines tick order (spec §3 "IP list"). lang/machine appends the
// IPs spawned by "t" to the end of the list once the tick that spawned them
// has finished (Append); it does not insert them before the spawning IP.
// Duplicate, which does insert a copy immediately before a given index, is
// not used by lang/machine.
//
// IPs carry a stable UUID, and IndexOf finds an IP's current index by it.
// lang/machine does not look IPs up by id: it iterates over a Snapshot of
// *IP pointers, and "t" (also inside "k") returns its new IPs to the driver
// instead of inserting them, so no pointer is invalidated mid-tick.
type List struct {
	ips []*IP
}

// NewList returns a list containing exactly ip.
func NewList(first *IP) *List {
	return &List{ips: []*IP{first}}
}

// Len returns the number of IPs currently in the list.
func (l *List) Len() int { return len(l.ips) }

// Append adds p to the end of the list, used by the driver to admit IPs
// spawned by "t" during a tick once that tick has finished (spec §4.I).
func (l *List) Append(p *IP) { l.ips = append(l.ips, p) }

// At returns the IP at index i.
func (l *List) At(i int) *IP { return l.ips[i] }

// IndexOf returns the current index of the IP with the given id, or -1 if
// it is no longer in the list (it died and was removed).
func (l *List) IndexOf(id uuid.UUID) int {
	for i, p := range l.ips {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Duplicate duplicates the IP currently at index cur (spec: "t"), inserting
// the duplicate immediately before it, and returns the new index of the
// original (now-shifted-right) IP.
func (l *List) Duplicate(cur int) int {
	dup := l.ips[cur].Duplicate()
	l.ips = append(l.ips, nil)
	copy(l.ips[cur+1:], l.ips[cur:])
	l.ips[cur] = dup
	return cur + 1
}

// RemoveDead removes every IP with Dead set, compacting the list in place.
func (l *List) RemoveDead() {
	live := l.ips[:0]
	for _, p := range l.ips {
		if !p.Dead {
			live = append(live, p)
		}
	}
	l.ips = live
}

// Snapshot returns the IPs in tick order as observed right now. Per spec §5
// an IP spawned by "t" during a tick runs starting next tick, so the
// driver should take a Snapshot once at the start of a tick and iterate
// over that fixed slice of pointers: Duplicate/RemoveDead calls made while
// processing it mutate the live list but never the snapshot's pointers, and
// in Go a *IP captured from a slice stays valid even after later slice
// insertions elsewhere move other elements around (unlike the C reference
// implementation's realloc'd array).
func (l *List) Snapshot() []*IP {
	snap := make([]*IP, len(l.ips))
	copy(snap, l.ips)
	return snap
}
