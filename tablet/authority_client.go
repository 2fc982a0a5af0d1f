package tablet

import (
	"sync"
	"time"

	"github.com/pingcap/errors"
	"github.com/tabletkv/tabletkv/proto/pkg/txnpb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
)

const (
	grpcKeepAliveTime    = 10 * time.Second
	grpcKeepAliveTimeout = 3 * time.Second
)

// TabletResolver maps a status-authority tablet id to the network address
// serving it.
type TabletResolver interface {
	Resolve(tabletID string) (string, error)
}

// StaticResolver resolves every tablet to one configured address, for
// deployments with a single status-authority endpoint.
type StaticResolver string

func (r StaticResolver) Resolve(tabletID string) (string, error) {
	if r == "" {
		return "", errors.New("no authority address configured")
	}
	return string(r), nil
}

// ClusterContext is the production Context: it names the owning tablet and
// hands out authority clients, dialing lazily and caching one conn per
// resolved address. The participant can be constructed before any
// authority is reachable.
type ClusterContext struct {
	tabletID string
	resolver TabletResolver

	mu      sync.Mutex
	conns   map[string]*grpc.ClientConn
	clients map[string]txnpb.TxnStatusAuthorityClient
}

func NewClusterContext(tabletID string, resolver TabletResolver) *ClusterContext {
	return &ClusterContext{
		tabletID: tabletID,
		resolver: resolver,
		conns:    make(map[string]*grpc.ClientConn),
		clients:  make(map[string]txnpb.TxnStatusAuthorityClient),
	}
}

func (c *ClusterContext) TabletID() string {
	return c.tabletID
}

func (c *ClusterContext) AuthorityClient(statusTablet string) (txnpb.TxnStatusAuthorityClient, error) {
	addr, err := c.resolver.Resolve(statusTablet)
	if err != nil {
		return nil, errors.Trace(err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if client, ok := c.clients[addr]; ok {
		return client, nil
	}
	conn, err := grpc.Dial(addr, grpc.WithInsecure(),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:    grpcKeepAliveTime,
			Timeout: grpcKeepAliveTimeout,
		}))
	if err != nil {
		return nil, errors.Trace(err)
	}
	client := txnpb.NewTxnStatusAuthorityClient(conn)
	c.conns[addr] = conn
	c.clients[addr] = client
	return client, nil
}

func (c *ClusterContext) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var firstErr error
	for addr, conn := range c.conns {
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(c.conns, addr)
		delete(c.clients, addr)
	}
	return firstErr
}
