// Package txnpb holds the wire types shared by transaction participants
// and the status-authority tablet. The messages are maintained by hand in
// sync with proto/txnpb.proto; golang/protobuf marshals them through the
// struct tags.
package txnpb

import (
	proto "github.com/golang/protobuf/proto"
)

type TxnStatus int32

const (
	TxnStatus_PENDING                            TxnStatus = 0
	TxnStatus_COMMITTED                          TxnStatus = 1
	TxnStatus_ABORTED                            TxnStatus = 2
	TxnStatus_APPLIED_IN_ONE_OF_INVOLVED_TABLETS TxnStatus = 3
)

var TxnStatus_name = map[int32]string{
	0: "PENDING",
	1: "COMMITTED",
	2: "ABORTED",
	3: "APPLIED_IN_ONE_OF_INVOLVED_TABLETS",
}

var TxnStatus_value = map[string]int32{
	"PENDING":                            0,
	"COMMITTED":                          1,
	"ABORTED":                            2,
	"APPLIED_IN_ONE_OF_INVOLVED_TABLETS": 3,
}

func (x TxnStatus) String() string {
	return proto.EnumName(TxnStatus_name, int32(x))
}

type IsolationLevel int32

const (
	IsolationLevel_SNAPSHOT_ISOLATION     IsolationLevel = 0
	IsolationLevel_SERIALIZABLE_ISOLATION IsolationLevel = 1
)

var IsolationLevel_name = map[int32]string{
	0: "SNAPSHOT_ISOLATION",
	1: "SERIALIZABLE_ISOLATION",
}

var IsolationLevel_value = map[string]int32{
	"SNAPSHOT_ISOLATION":     0,
	"SERIALIZABLE_ISOLATION": 1,
}

func (x IsolationLevel) String() string {
	return proto.EnumName(IsolationLevel_name, int32(x))
}

// TxnMeta is the immutable metadata record persisted by every tablet a
// transaction writes to.
type TxnMeta struct {
	TransactionId   []byte         `protobuf:"bytes,1,opt,name=transaction_id,json=transactionId,proto3" json:"transaction_id,omitempty"`
	Isolation       IsolationLevel `protobuf:"varint,2,opt,name=isolation,proto3,enum=txnpb.IsolationLevel" json:"isolation,omitempty"`
	StatusTablet    string         `protobuf:"bytes,3,opt,name=status_tablet,json=statusTablet,proto3" json:"status_tablet,omitempty"`
	Priority        uint64         `protobuf:"varint,4,opt,name=priority,proto3" json:"priority,omitempty"`
	StartHybridTime uint64         `protobuf:"varint,5,opt,name=start_hybrid_time,json=startHybridTime,proto3" json:"start_hybrid_time,omitempty"`
}

func (m *TxnMeta) Reset()         { *m = TxnMeta{} }
func (m *TxnMeta) String() string { return proto.CompactTextString(m) }
func (*TxnMeta) ProtoMessage()    {}

func (m *TxnMeta) GetTransactionId() []byte {
	if m != nil {
		return m.TransactionId
	}
	return nil
}

func (m *TxnMeta) GetIsolation() IsolationLevel {
	if m != nil {
		return m.Isolation
	}
	return IsolationLevel_SNAPSHOT_ISOLATION
}

func (m *TxnMeta) GetStatusTablet() string {
	if m != nil {
		return m.StatusTablet
	}
	return ""
}

func (m *TxnMeta) GetPriority() uint64 {
	if m != nil {
		return m.Priority
	}
	return 0
}

func (m *TxnMeta) GetStartHybridTime() uint64 {
	if m != nil {
		return m.StartHybridTime
	}
	return 0
}

type GetTxnStatusRequest struct {
	TabletId      string `protobuf:"bytes,1,opt,name=tablet_id,json=tabletId,proto3" json:"tablet_id,omitempty"`
	TransactionId []byte `protobuf:"bytes,2,opt,name=transaction_id,json=transactionId,proto3" json:"transaction_id,omitempty"`
}

func (m *GetTxnStatusRequest) Reset()         { *m = GetTxnStatusRequest{} }
func (m *GetTxnStatusRequest) String() string { return proto.CompactTextString(m) }
func (*GetTxnStatusRequest) ProtoMessage()    {}

func (m *GetTxnStatusRequest) GetTabletId() string {
	if m != nil {
		return m.TabletId
	}
	return ""
}

func (m *GetTxnStatusRequest) GetTransactionId() []byte {
	if m != nil {
		return m.TransactionId
	}
	return nil
}

// GetTxnStatusResponse carries the authoritative status at the moment the
// authority served the request. StatusHybridTime == 0 means the authority
// reported no time, which is only legal together with an ABORTED status.
type GetTxnStatusResponse struct {
	Status           TxnStatus `protobuf:"varint,1,opt,name=status,proto3,enum=txnpb.TxnStatus" json:"status,omitempty"`
	StatusHybridTime uint64    `protobuf:"varint,2,opt,name=status_hybrid_time,json=statusHybridTime,proto3" json:"status_hybrid_time,omitempty"`
}

func (m *GetTxnStatusResponse) Reset()         { *m = GetTxnStatusResponse{} }
func (m *GetTxnStatusResponse) String() string { return proto.CompactTextString(m) }
func (*GetTxnStatusResponse) ProtoMessage()    {}

func (m *GetTxnStatusResponse) GetStatus() TxnStatus {
	if m != nil {
		return m.Status
	}
	return TxnStatus_PENDING
}

func (m *GetTxnStatusResponse) GetStatusHybridTime() uint64 {
	if m != nil {
		return m.StatusHybridTime
	}
	return 0
}

type AbortTxnRequest struct {
	TabletId      string `protobuf:"bytes,1,opt,name=tablet_id,json=tabletId,proto3" json:"tablet_id,omitempty"`
	TransactionId []byte `protobuf:"bytes,2,opt,name=transaction_id,json=transactionId,proto3" json:"transaction_id,omitempty"`
}

func (m *AbortTxnRequest) Reset()         { *m = AbortTxnRequest{} }
func (m *AbortTxnRequest) String() string { return proto.CompactTextString(m) }
func (*AbortTxnRequest) ProtoMessage()    {}

func (m *AbortTxnRequest) GetTabletId() string {
	if m != nil {
		return m.TabletId
	}
	return ""
}

func (m *AbortTxnRequest) GetTransactionId() []byte {
	if m != nil {
		return m.TransactionId
	}
	return nil
}

type AbortTxnResponse struct {
	Status           TxnStatus `protobuf:"varint,1,opt,name=status,proto3,enum=txnpb.TxnStatus" json:"status,omitempty"`
	StatusHybridTime uint64    `protobuf:"varint,2,opt,name=status_hybrid_time,json=statusHybridTime,proto3" json:"status_hybrid_time,omitempty"`
}

func (m *AbortTxnResponse) Reset()         { *m = AbortTxnResponse{} }
func (m *AbortTxnResponse) String() string { return proto.CompactTextString(m) }
func (*AbortTxnResponse) ProtoMessage()    {}

func (m *AbortTxnResponse) GetStatus() TxnStatus {
	if m != nil {
		return m.Status
	}
	return TxnStatus_PENDING
}

func (m *AbortTxnResponse) GetStatusHybridTime() uint64 {
	if m != nil {
		return m.StatusHybridTime
	}
	return 0
}

type TxnState struct {
	TransactionId []byte    `protobuf:"bytes,1,opt,name=transaction_id,json=transactionId,proto3" json:"transaction_id,omitempty"`
	Status        TxnStatus `protobuf:"varint,2,opt,name=status,proto3,enum=txnpb.TxnStatus" json:"status,omitempty"`
	Tablets       []string  `protobuf:"bytes,3,rep,name=tablets,proto3" json:"tablets,omitempty"`
}

func (m *TxnState) Reset()         { *m = TxnState{} }
func (m *TxnState) String() string { return proto.CompactTextString(m) }
func (*TxnState) ProtoMessage()    {}

func (m *TxnState) GetTransactionId() []byte {
	if m != nil {
		return m.TransactionId
	}
	return nil
}

func (m *TxnState) GetStatus() TxnStatus {
	if m != nil {
		return m.Status
	}
	return TxnStatus_PENDING
}

func (m *TxnState) GetTablets() []string {
	if m != nil {
		return m.Tablets
	}
	return nil
}

type UpdateTxnStateRequest struct {
	TabletId string    `protobuf:"bytes,1,opt,name=tablet_id,json=tabletId,proto3" json:"tablet_id,omitempty"`
	State    *TxnState `protobuf:"bytes,2,opt,name=state,proto3" json:"state,omitempty"`
}

func (m *UpdateTxnStateRequest) Reset()         { *m = UpdateTxnStateRequest{} }
func (m *UpdateTxnStateRequest) String() string { return proto.CompactTextString(m) }
func (*UpdateTxnStateRequest) ProtoMessage()    {}

func (m *UpdateTxnStateRequest) GetTabletId() string {
	if m != nil {
		return m.TabletId
	}
	return ""
}

func (m *UpdateTxnStateRequest) GetState() *TxnState {
	if m != nil {
		return m.State
	}
	return nil
}

type UpdateTxnStateResponse struct {
}

func (m *UpdateTxnStateResponse) Reset()         { *m = UpdateTxnStateResponse{} }
func (m *UpdateTxnStateResponse) String() string { return proto.CompactTextString(m) }
func (*UpdateTxnStateResponse) ProtoMessage()    {}

type LocalTxnStatusRequest struct {
	TransactionId []byte `protobuf:"bytes,1,opt,name=transaction_id,json=transactionId,proto3" json:"transaction_id,omitempty"`
	HybridTime    uint64 `protobuf:"varint,2,opt,name=hybrid_time,json=hybridTime,proto3" json:"hybrid_time,omitempty"`
}

func (m *LocalTxnStatusRequest) Reset()         { *m = LocalTxnStatusRequest{} }
func (m *LocalTxnStatusRequest) String() string { return proto.CompactTextString(m) }
func (*LocalTxnStatusRequest) ProtoMessage()    {}

func (m *LocalTxnStatusRequest) GetTransactionId() []byte {
	if m != nil {
		return m.TransactionId
	}
	return nil
}

func (m *LocalTxnStatusRequest) GetHybridTime() uint64 {
	if m != nil {
		return m.HybridTime
	}
	return 0
}

type LocalTxnStatusResponse struct {
	Status           TxnStatus `protobuf:"varint,1,opt,name=status,proto3,enum=txnpb.TxnStatus" json:"status,omitempty"`
	StatusHybridTime uint64    `protobuf:"varint,2,opt,name=status_hybrid_time,json=statusHybridTime,proto3" json:"status_hybrid_time,omitempty"`
}

func (m *LocalTxnStatusResponse) Reset()         { *m = LocalTxnStatusResponse{} }
func (m *LocalTxnStatusResponse) String() string { return proto.CompactTextString(m) }
func (*LocalTxnStatusResponse) ProtoMessage()    {}

func (m *LocalTxnStatusResponse) GetStatus() TxnStatus {
	if m != nil {
		return m.Status
	}
	return TxnStatus_PENDING
}

func (m *LocalTxnStatusResponse) GetStatusHybridTime() uint64 {
	if m != nil {
		return m.StatusHybridTime
	}
	return 0
}

func init() {
	proto.RegisterEnum("txnpb.TxnStatus", TxnStatus_name, TxnStatus_value)
	proto.RegisterEnum("txnpb.IsolationLevel", IsolationLevel_name, IsolationLevel_value)
	proto.RegisterType((*TxnMeta)(nil), "txnpb.TxnMeta")
	proto.RegisterType((*GetTxnStatusRequest)(nil), "txnpb.GetTxnStatusRequest")
	proto.RegisterType((*GetTxnStatusResponse)(nil), "txnpb.GetTxnStatusResponse")
	proto.RegisterType((*AbortTxnRequest)(nil), "txnpb.AbortTxnRequest")
	proto.RegisterType((*AbortTxnResponse)(nil), "txnpb.AbortTxnResponse")
	proto.RegisterType((*TxnState)(nil), "txnpb.TxnState")
	proto.RegisterType((*UpdateTxnStateRequest)(nil), "txnpb.UpdateTxnStateRequest")
	proto.RegisterType((*UpdateTxnStateResponse)(nil), "txnpb.UpdateTxnStateResponse")
	proto.RegisterType((*LocalTxnStatusRequest)(nil), "txnpb.LocalTxnStatusRequest")
	proto.RegisterType((*LocalTxnStatusResponse)(nil), "txnpb.LocalTxnStatusResponse")
}
