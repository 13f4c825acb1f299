package fingerprint

import (
	"gofunge/lang/ip"
	"gofunge/lang/vector"
)

// ROMA pushes Roman numeral values, ported near-verbatim from
// original_source/src/fingerprints/ROMA/ROMA.c's ROMAPUSH macro, unrolled
// into one handler per letter.
func init() {
	push := func(v vector.Cell) ip.Handler {
		return func(p *ip.IP, _ ip.Context) ip.Result {
			p.Stacks.Top().Push(v)
			return ip.Result{}
		}
	}
	register(&Descriptor{
		Name: "ROMA",
		Handlers: map[byte]ip.Handler{
			'I': push(1),
			'V': push(5),
			'X': push(10),
			'L': push(50),
			'C': push(100),
			'D': push(500),
			'M': push(1000),
		},
	})
}
