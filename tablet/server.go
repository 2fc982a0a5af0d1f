package tablet

import (
	"context"

	"github.com/google/uuid"
	"github.com/tabletkv/tabletkv/proto/pkg/txnpb"
	"github.com/tabletkv/tabletkv/util/hybridts"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Server exposes the participant's status and abort operations as the
// TabletTxn grpc service.
type Server struct {
	participant *Participant
}

func NewServer(participant *Participant) *Server {
	return &Server{participant: participant}
}

type callbackResult struct {
	res TxnStatusResult
	err error
}

func (svr *Server) GetLocalTxnStatus(ctx context.Context, req *txnpb.LocalTxnStatusRequest) (*txnpb.LocalTxnStatusResponse, error) {
	id, err := uuid.FromBytes(req.TransactionId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "bad transaction id: %v", err)
	}
	ch := make(chan callbackResult, 1)
	svr.participant.RequestStatusAt(id, hybridts.HybridTime(req.HybridTime), func(res TxnStatusResult, err error) {
		ch <- callbackResult{res: res, err: err}
	})
	select {
	case r := <-ch:
		if r.err != nil {
			return nil, toGrpcError(r.err)
		}
		return &txnpb.LocalTxnStatusResponse{
			Status:           r.res.Status,
			StatusHybridTime: uint64(r.res.StatusTime),
		}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (svr *Server) AbortTxn(ctx context.Context, req *txnpb.AbortTxnRequest) (*txnpb.AbortTxnResponse, error) {
	id, err := uuid.FromBytes(req.TransactionId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "bad transaction id: %v", err)
	}
	ch := make(chan callbackResult, 1)
	svr.participant.Abort(id, func(res TxnStatusResult, err error) {
		ch <- callbackResult{res: res, err: err}
	})
	select {
	case r := <-ch:
		if r.err != nil {
			return nil, toGrpcError(r.err)
		}
		resp := &txnpb.AbortTxnResponse{Status: r.res.Status}
		if r.res.StatusTime.Valid() {
			resp.StatusHybridTime = uint64(r.res.StatusTime)
		}
		return resp, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func toGrpcError(err error) error {
	switch err.(type) {
	case ErrTxnNotFound:
		return status.Error(codes.NotFound, err.Error())
	case ErrRetryable:
		return status.Error(codes.Unavailable, err.Error())
	}
	return status.Error(codes.Unknown, err.Error())
}
