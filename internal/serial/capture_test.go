package serial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPollIgnoresTransferWithoutStartBit(t *testing.T) {
	cap := NewCapture(nil)
	sc := byte(0x01) // internal clock set, but start bit clear

	cap.Poll(
		func() byte { return 'X' },
		func() byte { return sc },
		func(v byte) { sc = v },
	)

	assert.Empty(t, cap.Bytes)
}

func TestPollConsumesByteAndClearsStartBit(t *testing.T) {
	cap := NewCapture(nil)
	sb := byte('A')
	sc := byte(0x81)

	cap.Poll(
		func() byte { return sb },
		func() byte { return sc },
		func(v byte) { sc = v },
	)

	assert.Equal(t, []byte{'A'}, cap.Bytes)
	assert.Equal(t, byte(0x00), sc, "SC is cleared once the byte is taken")
}

func TestStringAccumulatesAcrossPolls(t *testing.T) {
	cap := NewCapture(nil)

	for _, b := range []byte("OK\n") {
		sb, sc := b, byte(0x81)
		cap.Poll(
			func() byte { return sb },
			func() byte { return sc },
			func(v byte) { sc = v },
		)
	}

	assert.Equal(t, "OK\n", cap.String())
}
