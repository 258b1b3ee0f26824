package ledger

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	orderIDPrefix  = "ORD-"
	trackingPrefix = "SF"
)

// Sequencer выдает строго возрастающие метки на основе миллисекунд.
// Два заказа в одну миллисекунду получат соседние значения.
type Sequencer struct {
	last int64
}

func (s *Sequencer) Next(now time.Time) int64 {
	n := now.UnixMilli()
	if n <= s.last {
		n = s.last + 1
	}
	s.last = n
	return n
}

// Observe сдвигает последовательность за уже выданное значение.
func (s *Sequencer) Observe(n int64) {
	if n > s.last {
		s.last = n
	}
}

func FormatOrderID(n int64) string {
	return orderIDPrefix + strconv.FormatInt(n, 10)
}

func ParseOrderID(id string) (int64, bool) {
	rest, ok := strings.CutPrefix(id, orderIDPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func FormatTracking(n int64) string {
	return fmt.Sprintf("%s%d", trackingPrefix, n)
}
