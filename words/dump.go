package words

import (
	"io"
	"strconv"
	"strings"
)

// Dump writes every logical bit as "numBits: b0 b1 ... \n". It is a
// debugging aid, not an encoding.
func Dump(w io.Writer, buf []uint64, numBits int) error {
	mustHold(buf, numBits)

	var sb strings.Builder
	sb.Grow(numBits*2 + 24)
	sb.WriteString(strconv.Itoa(numBits))
	sb.WriteString(": ")
	for i := 0; i < numBits; i++ {
		wi, m := locate(i)
		if buf[wi]&m != 0 {
			sb.WriteString("1 ")
		} else {
			sb.WriteString("0 ")
		}
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}
