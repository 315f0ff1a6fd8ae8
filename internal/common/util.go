package common

// WipeByteArray overwrites b with zeros so secrets do not linger in memory
// longer than needed. Safe to call with nil.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
