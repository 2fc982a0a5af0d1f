package tablet

import (
	"context"
	"io/ioutil"
	"os"
	"testing"

	"github.com/Connor1996/badger"
	"github.com/google/uuid"
	"github.com/pingcap/errors"
	"github.com/stretchr/testify/require"
	"github.com/tabletkv/tabletkv/config"
	"github.com/tabletkv/tabletkv/proto/pkg/txnpb"
)

type mapResolver map[string]string

func (r mapResolver) Resolve(tabletID string) (string, error) {
	addr, ok := r[tabletID]
	if !ok {
		return "", errors.Errorf("unknown tablet %s", tabletID)
	}
	return addr, nil
}

func TestClusterContextCachesConnPerAddress(t *testing.T) {
	ctx := NewClusterContext("tablet-1", mapResolver{
		"status-1": "127.0.0.1:20161",
		"status-2": "127.0.0.1:20162",
		"status-3": "127.0.0.1:20161",
	})
	defer ctx.Close()

	c1, err := ctx.AuthorityClient("status-1")
	require.Nil(t, err)
	again, err := ctx.AuthorityClient("status-1")
	require.Nil(t, err)
	require.True(t, c1 == again)

	// A tablet resolving to the same address shares the conn.
	c3, err := ctx.AuthorityClient("status-3")
	require.Nil(t, err)
	require.True(t, c1 == c3)

	c2, err := ctx.AuthorityClient("status-2")
	require.Nil(t, err)
	require.True(t, c1 != c2)

	_, err = ctx.AuthorityClient("status-9")
	require.NotNil(t, err)
}

func TestStaticResolver(t *testing.T) {
	addr, err := StaticResolver("127.0.0.1:9391").Resolve("any-tablet")
	require.Nil(t, err)
	require.Equal(t, "127.0.0.1:9391", addr)

	_, err = StaticResolver("").Resolve("any-tablet")
	require.NotNil(t, err)
}

func TestAuthorityRoutingUsesStatusTablet(t *testing.T) {
	dir, err := ioutil.TempDir("", "test_routing")
	require.Nil(t, err)
	defer os.RemoveAll(dir)
	opts := badger.DefaultOptions
	opts.Dir = dir
	opts.ValueDir = dir
	db, err := badger.Open(opts)
	require.Nil(t, err)
	defer db.Close()

	auth := newFakeAuthority()
	fctx := &fakeContext{tabletID: "tablet-1", authority: auth}
	conf := &config.Txn{RPCTimeout: "2s", RecordTTL: "10m", CleanupInterval: "1m"}
	p := NewParticipant(fctx, db, conf)
	defer p.Close()

	id := uuid.New()
	meta := newMeta(id)
	meta.StatusTablet = "status-tablet-9"
	addTxn(t, p, db, meta)

	auth.setStatusFn(func(ctx context.Context, req *txnpb.GetTxnStatusRequest) (*txnpb.GetTxnStatusResponse, error) {
		return &txnpb.GetTxnStatusResponse{
			Status:           txnpb.TxnStatus_COMMITTED,
			StatusHybridTime: 100,
		}, nil
	})
	_, err = statusAtSync(p, id, 100)
	require.Nil(t, err)
	require.Equal(t, []string{"status-tablet-9"}, fctx.resolvedTablets())

	// Leader apply notification routes to the same status tablet.
	require.Nil(t, p.ProcessApply(&ApplyEvent{
		TxnID:        id,
		CommitTime:   100,
		StatusTablet: "status-tablet-9",
		Applier:      &fakeApplier{},
		Role:         ApplyRoleLeader,
	}))
	<-auth.updated
	require.Equal(t, []string{"status-tablet-9", "status-tablet-9"}, fctx.resolvedTablets())
}
