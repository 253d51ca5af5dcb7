package framing

import "bytes"

// Split splits a received datagram on the line delimiter into candidate
// lines. Trailing empty candidates from a terminal delimiter are discarded;
// empty candidates in the middle of the datagram are kept so they surface as
// decode failures instead of silently vanishing.
func Split(datagram []byte) [][]byte {
	if len(datagram) == 0 {
		return nil
	}

	candidates := bytes.Split(datagram, []byte{Delimiter})

	// drop trailing empties
	for len(candidates) > 0 && len(candidates[len(candidates)-1]) == 0 {
		candidates = candidates[:len(candidates)-1]
	}

	return candidates
}
