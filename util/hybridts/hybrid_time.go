package hybridts

import (
	"fmt"
	"math"
)

// HybridTime is a cluster-wide totally ordered timestamp combining a
// physical clock with a logical component. All transaction visibility
// decisions compare hybrid times.
type HybridTime uint64

const (
	// Min is the lowest valid hybrid time.
	Min HybridTime = 0
	// Max is the highest valid hybrid time.
	Max HybridTime = math.MaxUint64 - 1
	// Invalid marks an unset hybrid time.
	Invalid HybridTime = math.MaxUint64
)

func (ht HybridTime) Valid() bool {
	return ht != Invalid
}

func (ht HybridTime) String() string {
	switch ht {
	case Min:
		return "<min>"
	case Max:
		return "<max>"
	case Invalid:
		return "<invalid>"
	}
	return fmt.Sprintf("%d", uint64(ht))
}
