// Package fingerprint implements the Funge-98 fingerprint extension
// mechanism: a static registry of named opcode packs, and the per-IP
// per-letter overlay stack that ("(", ")") load/unload them.
package fingerprint

import "gofunge/lang/ip"

// ID is a fingerprint identifier: the bytes of its name packed big-endian,
// e.g. "FILE" -> 0x46494C45 (spec §3).
type ID uint64

// Pack(name) computes the canonical fingerprint id for name.
func Pack(name string) ID {
	var id ID
	for i := 0; i < len(name); i++ {
		id = id<<8 | ID(name[i])
	}
	return id
}

// Descriptor is a registered fingerprint: its claimed letters and the
// handler for each.
type Descriptor struct {
	Name    string
	Handlers map[byte]ip.Handler // key is 'A'..'Z'
}

// registry is the static, process-wide set of fingerprints gofunge knows
// about. Entries are added by each fingerprint's own file via init().
var registry = map[ID]*Descriptor{}

// register is called by each fingerprint's init() to join the registry.
func register(d *Descriptor) { registry[Pack(d.Name)] = d }

// Gate optionally restricts which fingerprint ids may load: when non-nil it
// is consulted before a lookup succeeds. lang/machine uses it for the "-b"
// (sandbox) CLI flag from spec §6; its gate does not consult "-S".
type Gate func(id ID, name string) bool

// Manager owns the process-wide fingerprint registry lookup plus any
// external gating policy; it is stateless with respect to any single IP (an
// IP's loaded-handler overlay lives on the IP itself, per spec §4.F) except
// for fingerprints with process-shared state (e.g. FILE's handle table),
// whose handlers reach that state through Context rather than through
// Manager.
type Manager struct {
	Gate Gate
}

// NewManager returns a Manager with no restrictions.
func NewManager() *Manager { return &Manager{} }

// Load looks up id in the registry; if found (and not gated out), it pushes
// the fingerprint's handler onto each claimed letter's overlay stack on p,
// and returns true. Otherwise it returns false and p is left unmodified so
// the caller (the "(" instruction) can reflect.
func (m *Manager) Load(p *ip.IP, id ID) bool {
	d, ok := registry[id]
	if !ok {
		return false
	}
	if m.Gate != nil && !m.Gate(id, d.Name) {
		return false
	}
	for letter, h := range d.Handlers {
		idx := letter - 'A'
		p.Overlay[idx] = append(p.Overlay[idx], h)
	}
	return true
}

// Unload pops the top handler for each letter id claims from p's overlay
// stacks. Per spec §4.F this always pops, even if the top handler for some
// letter was pushed by a different fingerprint than id (loads need not be
// balanced per letter; popping the top is the defined behavior).
func (m *Manager) Unload(p *ip.IP, id ID) bool {
	d, ok := registry[id]
	if !ok {
		return false
	}
	for letter := range d.Handlers {
		idx := letter - 'A'
		stk := p.Overlay[idx]
		if len(stk) > 0 {
			p.Overlay[idx] = stk[:len(stk)-1]
		}
	}
	return true
}

// Dispatch invokes the top handler loaded for letter on p. If no
// fingerprint has loaded a handler for that letter, it reports reflect
// (the caller/dispatcher is responsible for reversing p's delta).
func Dispatch(p *ip.IP, ctx ip.Context, letter byte) ip.Result {
	idx := letter - 'A'
	stk := p.Overlay[idx]
	if len(stk) == 0 {
		return ip.Result{Reflect: true}
	}
	h := stk[len(stk)-1]
	return h(p, ctx)
}
