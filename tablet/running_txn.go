package tablet

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ngaut/log"
	"github.com/tabletkv/tabletkv/proto/pkg/txnpb"
	"github.com/tabletkv/tabletkv/util/hybridts"
)

// TxnStatusResult is the resolved status of a transaction as of some hybrid
// time. StatusTime is the time the status is known to hold at; it is
// Invalid when the authority did not report one on an abort.
type TxnStatusResult struct {
	Status     txnpb.TxnStatus
	StatusTime hybridts.HybridTime
}

// TxnStatusCallback receives the outcome of a status or abort request.
// Exactly one of the two: a result, or a non-nil error.
type TxnStatusCallback func(res TxnStatusResult, err error)

type statusWaiter struct {
	cb   TxnStatusCallback
	time hybridts.HybridTime
}

// runningTxn is the participant's per-transaction state: immutable
// metadata, the monotonic cache of the last authoritative status, the
// local apply time, and the waiter queues used to coalesce duplicate
// network requests. All mutable fields are guarded by the owning
// Participant's mutex.
type runningTxn struct {
	id   uuid.UUID
	meta *txnpb.TxnMeta

	localCommitTime     hybridts.HybridTime
	lastKnownStatus     txnpb.TxnStatus
	lastKnownStatusTime hybridts.HybridTime

	statusWaiters []statusWaiter
	abortWaiters  []TxnStatusCallback
	statusHandle  Handle
	abortHandle   Handle

	lastTouched time.Time
}

func newRunningTxn(id uuid.UUID, meta *txnpb.TxnMeta) *runningTxn {
	return &runningTxn{
		id:                  id,
		meta:                meta,
		localCommitTime:     hybridts.Invalid,
		lastKnownStatus:     txnpb.TxnStatus_PENDING,
		lastKnownStatusTime: hybridts.Min,
		lastTouched:         time.Now(),
	}
}

// statusAt interprets a cached (status, statusTime) pair against a query
// time. The second return value is false when the cached knowledge is too
// old to answer the query.
func statusAt(ts, statusTime hybridts.HybridTime, status txnpb.TxnStatus) (txnpb.TxnStatus, bool) {
	switch status {
	case txnpb.TxnStatus_ABORTED:
		// Abort is terminal, the query time does not matter.
		return txnpb.TxnStatus_ABORTED, true
	case txnpb.TxnStatus_COMMITTED:
		if statusTime > ts {
			// The commit is not yet visible at the requested time.
			return txnpb.TxnStatus_PENDING, true
		}
		return txnpb.TxnStatus_COMMITTED, true
	case txnpb.TxnStatus_PENDING:
		if statusTime >= ts {
			return txnpb.TxnStatus_PENDING, true
		}
		return 0, false
	default:
		log.Errorf("impossible cached transaction status %v", status)
		return 0, false
	}
}

// requestStatusAt resolves the transaction status as of ts from the cache
// when possible, otherwise joins or starts the single outstanding status
// query. Called with p.mu held; the lock is released on every path before
// any callback or RPC dispatch.
func (t *runningTxn) requestStatusAt(p *Participant, ts hybridts.HybridTime, cb TxnStatusCallback) {
	if t.lastKnownStatusTime > hybridts.Min {
		if status, ok := statusAt(ts, t.lastKnownStatusTime, t.lastKnownStatus); ok {
			res := TxnStatusResult{Status: status, StatusTime: t.lastKnownStatusTime}
			p.mu.Unlock()
			statusCacheHits.Inc()
			cb(res, nil)
			return
		}
	}
	statusCacheMisses.Inc()
	wasEmpty := len(t.statusWaiters) == 0
	t.statusWaiters = append(t.statusWaiters, statusWaiter{cb: cb, time: ts})
	if !wasEmpty {
		coalescedStatusWaiters.Inc()
		p.mu.Unlock()
		return
	}
	req := &txnpb.GetTxnStatusRequest{
		TabletId:      t.meta.StatusTablet,
		TransactionId: t.id[:],
	}
	t.statusHandle = p.rpcs.Start(p.rpcTimeout, func(ctx context.Context) {
		resp, err := p.getTxnStatus(ctx, req)
		t.statusReceived(p, resp, err)
	})
	p.mu.Unlock()
}

// statusReceived handles the completion of the outstanding status query:
// merge the response into the cache monotonically, then resolve every
// queued waiter against the updated cache. Runs on the RPC goroutine.
func (t *runningTxn) statusReceived(p *Participant, resp *txnpb.GetTxnStatusResponse, err error) {
	p.mu.Lock()
	t.statusHandle = invalidHandle
	waiters := t.statusWaiters
	t.statusWaiters = nil
	var (
		statusTime hybridts.HybridTime
		status     txnpb.TxnStatus
	)
	if err == nil {
		respTime := hybridts.HybridTime(resp.StatusHybridTime)
		if resp.StatusHybridTime == 0 {
			if resp.Status != txnpb.TxnStatus_ABORTED {
				log.Errorf("transaction %s: authority reported %s without a status time", t.id, resp.Status)
			}
			respTime = hybridts.Max
		}
		// Non-strict comparison: on a tie the fresher read wins.
		if t.lastKnownStatusTime <= respTime {
			t.lastKnownStatusTime = respTime
			t.lastKnownStatus = resp.Status
		}
		statusTime = t.lastKnownStatusTime
		status = t.lastKnownStatus
	}
	p.mu.Unlock()
	if err != nil {
		authorityRPCFailures.WithLabelValues("get_txn_status").Inc()
		for _, w := range waiters {
			w.cb(TxnStatusResult{}, err)
		}
		return
	}
	for _, w := range waiters {
		if s, ok := statusAt(w.time, statusTime, status); ok {
			w.cb(TxnStatusResult{Status: s, StatusTime: statusTime}, nil)
		} else {
			w.cb(TxnStatusResult{}, ErrRetryable(fmt.Sprintf(
				"cannot determine status of %s at %v, last known %s at %v",
				t.id, w.time, status, statusTime)))
		}
	}
}

// abort requests that the authority abort the transaction, coalescing
// concurrent callers onto one outstanding request. Called with p.mu held;
// the lock is released on every path.
func (t *runningTxn) abort(p *Participant, cb TxnStatusCallback) {
	wasEmpty := len(t.abortWaiters) == 0
	t.abortWaiters = append(t.abortWaiters, cb)
	if !wasEmpty {
		coalescedAbortWaiters.Inc()
		p.mu.Unlock()
		return
	}
	req := &txnpb.AbortTxnRequest{
		TabletId:      t.meta.StatusTablet,
		TransactionId: t.id[:],
	}
	t.abortHandle = p.rpcs.Start(p.rpcTimeout, func(ctx context.Context) {
		resp, err := p.abortTxn(ctx, req)
		t.abortReceived(p, resp, err)
	})
	p.mu.Unlock()
}

func (t *runningTxn) abortReceived(p *Participant, resp *txnpb.AbortTxnResponse, err error) {
	p.mu.Lock()
	t.abortHandle = invalidHandle
	waiters := t.abortWaiters
	t.abortWaiters = nil
	p.mu.Unlock()
	if err != nil {
		authorityRPCFailures.WithLabelValues("abort_txn").Inc()
	}
	res, rerr := makeAbortResult(resp, err)
	for _, w := range waiters {
		w(res, rerr)
	}
}

func makeAbortResult(resp *txnpb.AbortTxnResponse, err error) (TxnStatusResult, error) {
	if err != nil {
		return TxnStatusResult{}, err
	}
	statusTime := hybridts.Invalid
	if resp.StatusHybridTime != 0 {
		statusTime = hybridts.HybridTime(resp.StatusHybridTime)
	}
	return TxnStatusResult{Status: resp.Status, StatusTime: statusTime}, nil
}

// idle reports whether the entry has no queued waiters and no request in
// flight, so the cleaner may drop it.
func (t *runningTxn) idle() bool {
	return len(t.statusWaiters) == 0 && len(t.abortWaiters) == 0 &&
		t.statusHandle == invalidHandle && t.abortHandle == invalidHandle
}
