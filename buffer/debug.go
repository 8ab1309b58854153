//go:build bufferdebug

package buffer

// fillByte marks freed and unused storage so stale reads surface early.
const fillByte = 0xCD

func fillBytes(p []byte) {
	for i := range p {
		p[i] = fillByte
	}
}

func assertf(cond bool, msg string) {
	if !cond {
		panic("buffer: internal: " + msg)
	}
}
