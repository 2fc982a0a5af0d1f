package tablet

import (
	"testing"

	. "github.com/pingcap/check"
	"github.com/tabletkv/tabletkv/proto/pkg/txnpb"
	"github.com/tabletkv/tabletkv/util/hybridts"
)

func TestT(t *testing.T) {
	TestingT(t)
}

var _ = Suite(&testStatusAtSuite{})

type testStatusAtSuite struct{}

func (s *testStatusAtSuite) TestAbortedIsTerminal(c *C) {
	for _, ts := range []hybridts.HybridTime{hybridts.Min, 1, 199, 200, 201, hybridts.Max} {
		status, ok := statusAt(ts, 200, txnpb.TxnStatus_ABORTED)
		c.Assert(ok, IsTrue)
		c.Assert(status, Equals, txnpb.TxnStatus_ABORTED)
	}
}

func (s *testStatusAtSuite) TestCommittedVisibility(c *C) {
	// Commit at 200 is visible at and after 200, pending before.
	status, ok := statusAt(200, 200, txnpb.TxnStatus_COMMITTED)
	c.Assert(ok, IsTrue)
	c.Assert(status, Equals, txnpb.TxnStatus_COMMITTED)

	status, ok = statusAt(300, 200, txnpb.TxnStatus_COMMITTED)
	c.Assert(ok, IsTrue)
	c.Assert(status, Equals, txnpb.TxnStatus_COMMITTED)

	status, ok = statusAt(199, 200, txnpb.TxnStatus_COMMITTED)
	c.Assert(ok, IsTrue)
	c.Assert(status, Equals, txnpb.TxnStatus_PENDING)
}

func (s *testStatusAtSuite) TestPendingFreshness(c *C) {
	// Pending knowledge at 200 answers queries up to and including 200.
	status, ok := statusAt(200, 200, txnpb.TxnStatus_PENDING)
	c.Assert(ok, IsTrue)
	c.Assert(status, Equals, txnpb.TxnStatus_PENDING)

	status, ok = statusAt(50, 200, txnpb.TxnStatus_PENDING)
	c.Assert(ok, IsTrue)
	c.Assert(status, Equals, txnpb.TxnStatus_PENDING)

	_, ok = statusAt(201, 200, txnpb.TxnStatus_PENDING)
	c.Assert(ok, IsFalse)
}

func (s *testStatusAtSuite) TestImpossibleStatus(c *C) {
	_, ok := statusAt(100, 200, txnpb.TxnStatus_APPLIED_IN_ONE_OF_INVOLVED_TABLETS)
	c.Assert(ok, IsFalse)
}

func (s *testStatusAtSuite) TestAbortResult(c *C) {
	res, err := makeAbortResult(&txnpb.AbortTxnResponse{
		Status:           txnpb.TxnStatus_ABORTED,
		StatusHybridTime: 42,
	}, nil)
	c.Assert(err, IsNil)
	c.Assert(res.Status, Equals, txnpb.TxnStatus_ABORTED)
	c.Assert(res.StatusTime, Equals, hybridts.HybridTime(42))

	// The authority may omit the time; it comes back invalid, not zero.
	res, err = makeAbortResult(&txnpb.AbortTxnResponse{
		Status: txnpb.TxnStatus_ABORTED,
	}, nil)
	c.Assert(err, IsNil)
	c.Assert(res.StatusTime, Equals, hybridts.Invalid)
}
