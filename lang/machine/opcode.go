package machine

import "gofunge/lang/ip"

// opHandler executes one static (non-fingerprint, non-digit) instruction on
// p, returning any IP it spawned (only "t" ever does). staticOps is built up
// by each ops_*.go file's init(), mirroring the fingerprint package's own
// registry pattern (lang/fingerprint/fingerprint.go's register).
type opHandler func(*Machine, *ip.IP) []*ip.IP

var staticOps = map[byte]opHandler{}

func registerOp(b byte, h opHandler) {
	if _, exists := staticOps[b]; exists {
		panic("machine: duplicate opcode registration for " + string(b))
	}
	staticOps[b] = h
}

// registerOp1 adapts a handler that never spawns an IP, for the common case.
func registerOp1(b byte, h func(*Machine, *ip.IP)) {
	registerOp(b, func(m *Machine, p *ip.IP) []*ip.IP {
		h(m, p)
		return nil
	})
}
