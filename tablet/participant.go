package tablet

import (
	"context"
	"sync"
	"time"

	"github.com/Connor1996/badger"
	"github.com/golang/protobuf/proto"
	"github.com/google/uuid"
	"github.com/ngaut/log"
	"github.com/pingcap/errors"
	"github.com/tabletkv/tabletkv/config"
	"github.com/tabletkv/tabletkv/proto/pkg/txnpb"
	"github.com/tabletkv/tabletkv/util/codec"
	"github.com/tabletkv/tabletkv/util/engine_util"
	"github.com/tabletkv/tabletkv/util/hybridts"
	"github.com/tabletkv/tabletkv/util/worker"
)

// recordTypeTxnMeta prefixes transaction metadata records in the tablet's
// key space, keeping them disjoint from row data and intents.
const recordTypeTxnMeta byte = 0x01

// txnMetaKey builds the storage key of a transaction's metadata record.
// Writer and reader must agree on it byte for byte.
func txnMetaKey(id uuid.UUID) []byte {
	return append([]byte{recordTypeTxnMeta}, codec.EncodeBytes(id[:])...)
}

type ApplyRole int

const (
	ApplyRoleLeader ApplyRole = iota
	ApplyRoleFollower
)

// ApplyEvent describes one intents-durability event for one transaction on
// this tablet.
type ApplyEvent struct {
	TxnID        uuid.UUID
	CommitTime   hybridts.HybridTime
	StatusTablet string
	Applier      Applier
	Role         ApplyRole
}

// Applier durably materializes a transaction's provisional writes into
// local storage.
type Applier interface {
	ApplyIntents(event *ApplyEvent) error
}

// Context exposes the owning tablet's identity and clients for the
// status-authority service, keyed by the status tablet a transaction
// names. A client may become available only after startup;
// AuthorityClient returns an error until then.
type Context interface {
	TabletID() string
	AuthorityClient(statusTablet string) (txnpb.TxnStatusAuthorityClient, error)
}

// Participant tracks every distributed transaction whose writes touch this
// tablet: its metadata, its best-known commit/abort status and the local
// time its intents became durable. One mutex guards the map and all entry
// state; it is never held across an RPC dispatch or a callback.
type Participant struct {
	ctx  Context
	db   *badger.DB
	rpcs *Rpcs

	rpcTimeout      time.Duration
	recordTTL       time.Duration
	cleanupInterval time.Duration

	mu   sync.Mutex
	txns map[uuid.UUID]*runningTxn

	cleaner   *worker.Worker
	cleanerWg sync.WaitGroup
	closeCh   chan struct{}
	closeOnce sync.Once
}

func NewParticipant(ctx Context, db *badger.DB, conf *config.Txn) *Participant {
	p := &Participant{
		ctx:             ctx,
		db:              db,
		rpcs:            NewRpcs(),
		rpcTimeout:      config.ParseDuration(conf.RPCTimeout),
		recordTTL:       config.ParseDuration(conf.RecordTTL),
		cleanupInterval: config.ParseDuration(conf.CleanupInterval),
		txns:            make(map[uuid.UUID]*runningTxn),
		closeCh:         make(chan struct{}),
	}
	p.cleaner = worker.NewWorker("txn-cleaner", &p.cleanerWg)
	p.cleaner.Start(&cleanerHandler{p: p})
	p.cleanerWg.Add(1)
	go p.cleanupLoop()
	return p
}

// Add registers a new running transaction. Registration is idempotent: a
// repeated Add with identical metadata is a no-op, a conflicting one is a
// defect and leaves the existing entry untouched. New registrations append
// the metadata record to wb so it persists atomically with the caller's
// other writes.
func (p *Participant) Add(meta *txnpb.TxnMeta, wb *engine_util.WriteBatch) {
	id, err := uuid.FromBytes(meta.TransactionId)
	if err != nil {
		log.Errorf("invalid transaction id in metadata: %v", err)
		return
	}
	p.mu.Lock()
	existing, ok := p.txns[id]
	if ok {
		same := proto.Equal(existing.meta, meta)
		p.mu.Unlock()
		if !same {
			log.Errorf("transaction %s re-added with conflicting metadata %s, keeping %s",
				id, meta, existing.meta)
		}
		return
	}
	p.txns[id] = newRunningTxn(id, meta)
	p.mu.Unlock()
	if err := wb.SetMeta(txnMetaKey(id), meta); err != nil {
		log.Errorf("serialize metadata of %s: %v", id, err)
	}
}

// Metadata returns the transaction's metadata, hydrating the in-memory
// entry from storage on a miss. The second return value is false when the
// transaction is known neither in memory nor in storage.
func (p *Participant) Metadata(id uuid.UUID) (*txnpb.TxnMeta, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	t := p.findOrLoad(id)
	if t == nil {
		return nil, false
	}
	return t.meta, true
}

// LocalCommitTime returns the hybrid time at which this tablet durably
// applied the transaction's intents, or Invalid if unknown.
func (p *Participant) LocalCommitTime(id uuid.UUID) hybridts.HybridTime {
	p.mu.Lock()
	defer p.mu.Unlock()
	t, ok := p.txns[id]
	if !ok {
		return hybridts.Invalid
	}
	return t.localCommitTime
}

// RequestStatusAt resolves the transaction's status as of ts and delivers
// the answer to cb, from cache when possible, otherwise through the single
// outstanding authority query.
func (p *Participant) RequestStatusAt(id uuid.UUID, ts hybridts.HybridTime, cb TxnStatusCallback) {
	p.mu.Lock()
	t, ok := p.txns[id]
	if !ok {
		p.mu.Unlock()
		cb(TxnStatusResult{}, ErrTxnNotFound{ID: id})
		return
	}
	t.lastTouched = time.Now()
	t.requestStatusAt(p, ts, cb)
}

// Abort asks the authority to abort the transaction; concurrent callers
// share one outstanding request and receive the same result.
func (p *Participant) Abort(id uuid.UUID, cb TxnStatusCallback) {
	p.mu.Lock()
	t, ok := p.txns[id]
	if !ok {
		p.mu.Unlock()
		cb(TxnStatusResult{}, ErrTxnNotFound{ID: id})
		return
	}
	t.lastTouched = time.Now()
	t.abort(p, cb)
}

// ProcessApply records that this tablet durably applied the transaction's
// intents. The applier runs first and its failure fails the call. An
// unknown transaction id is an expected race (write batch failed without
// the originator noticing, or the authority already forgot this tablet)
// and only warns. On the leader the authority is notified asynchronously;
// that notification's failure is logged and never retried here.
func (p *Participant) ProcessApply(event *ApplyEvent) error {
	if err := event.Applier.ApplyIntents(event); err != nil {
		return errors.Trace(err)
	}
	p.mu.Lock()
	t, ok := p.txns[event.TxnID]
	if !ok {
		p.mu.Unlock()
		log.Warnf("apply of unknown transaction %s", event.TxnID)
		return nil
	}
	if !t.localCommitTime.Valid() {
		t.localCommitTime = event.CommitTime
	}
	t.lastTouched = time.Now()
	p.mu.Unlock()

	if event.Role == ApplyRoleLeader {
		req := &txnpb.UpdateTxnStateRequest{
			TabletId: event.StatusTablet,
			State: &txnpb.TxnState{
				TransactionId: event.TxnID[:],
				Status:        txnpb.TxnStatus_APPLIED_IN_ONE_OF_INVOLVED_TABLETS,
				Tablets:       []string{p.ctx.TabletID()},
			},
		}
		txnID := event.TxnID
		p.rpcs.Start(p.rpcTimeout, func(ctx context.Context) {
			client, err := p.ctx.AuthorityClient(req.TabletId)
			if err == nil {
				_, err = client.UpdateTxnState(ctx, req)
			}
			if err != nil {
				authorityRPCFailures.WithLabelValues("update_txn_state").Inc()
				log.Warnf("failed to report applied transaction %s: %v", txnID, err)
			}
		})
	}
	return nil
}

// Close cancels all outstanding requests and stops the cleaner. Queued
// waiters receive cancellation errors through the normal completion path
// before Close returns.
func (p *Participant) Close() {
	p.closeOnce.Do(func() {
		close(p.closeCh)
		p.cleaner.Stop()
		p.cleanerWg.Wait()
		p.rpcs.Shutdown()
	})
}

// findOrLoad returns the in-memory entry for id, hydrating it from the
// persisted metadata record on a miss. Called with p.mu held. A malformed
// record is a defect: logged and treated as absent.
func (p *Participant) findOrLoad(id uuid.UUID) *runningTxn {
	if t, ok := p.txns[id]; ok {
		return t
	}
	meta := new(txnpb.TxnMeta)
	err := engine_util.GetMeta(p.db, txnMetaKey(id), meta)
	if err == badger.ErrKeyNotFound {
		return nil
	}
	if err != nil {
		log.Errorf("load metadata of %s: %v", id, err)
		return nil
	}
	stored, err := uuid.FromBytes(meta.TransactionId)
	if err != nil || stored != id {
		log.Errorf("corrupted metadata record for %s: %s", id, meta)
		return nil
	}
	t := newRunningTxn(id, meta)
	p.txns[id] = t
	txnHydrations.Inc()
	return t
}

func (p *Participant) getTxnStatus(ctx context.Context, req *txnpb.GetTxnStatusRequest) (*txnpb.GetTxnStatusResponse, error) {
	client, err := p.ctx.AuthorityClient(req.TabletId)
	if err != nil {
		return nil, err
	}
	return client.GetTxnStatus(ctx, req)
}

func (p *Participant) abortTxn(ctx context.Context, req *txnpb.AbortTxnRequest) (*txnpb.AbortTxnResponse, error) {
	client, err := p.ctx.AuthorityClient(req.TabletId)
	if err != nil {
		return nil, err
	}
	return client.AbortTxn(ctx, req)
}

type cleanupTask struct{}

type cleanerHandler struct {
	p *Participant
}

func (c *cleanerHandler) Handle(t worker.Task) {
	if _, ok := t.(cleanupTask); ok {
		c.p.cleanOnce(time.Now())
	}
}

func (p *Participant) cleanupLoop() {
	defer p.cleanerWg.Done()
	ticker := time.NewTicker(p.cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			select {
			case p.cleaner.Sender() <- cleanupTask{}:
			default:
			}
		case <-p.closeCh:
			return
		}
	}
}

// cleanOnce drops entries whose intents this tablet already applied and
// that have been idle past the record TTL. Entries with queued waiters or
// a request in flight are never dropped, so no completion ever runs
// against a vanished entry. The metadata record stays in storage and a
// later lookup re-hydrates it.
func (p *Participant) cleanOnce(now time.Time) {
	p.mu.Lock()
	for id, t := range p.txns {
		if !t.localCommitTime.Valid() || !t.idle() {
			continue
		}
		if now.Sub(t.lastTouched) < p.recordTTL {
			continue
		}
		delete(p.txns, id)
		txnEvictions.Inc()
	}
	p.mu.Unlock()
}
