package helloworld

import (
	proto "github.com/gogo/protobuf/proto"
	types "github.com/loomnetwork/go-loom/types"
)

// Request, response and state messages of the HelloWorld contract. They are plain structs carrying
// protobuf field tags, gogo/protobuf encodes them through reflection.

// InitRequest installs the contract. Owner may update the name later, it defaults to the sender.
type InitRequest struct {
	Name  string         `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Owner *types.Address `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
}

func (m *InitRequest) Reset()         { *m = InitRequest{} }
func (m *InitRequest) String() string { return proto.CompactTextString(m) }
func (*InitRequest) ProtoMessage()    {}

type UpdateRequest struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *UpdateRequest) Reset()         { *m = UpdateRequest{} }
func (m *UpdateRequest) String() string { return proto.CompactTextString(m) }
func (*UpdateRequest) ProtoMessage()    {}

// NameState is the value stored in the name slot. Installed is always true once written so the
// encoded value is never empty, even for an empty name.
type NameState struct {
	Name      string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Installed bool   `protobuf:"varint,2,opt,name=installed,proto3" json:"installed,omitempty"`
}

func (m *NameState) Reset()         { *m = NameState{} }
func (m *NameState) String() string { return proto.CompactTextString(m) }
func (*NameState) ProtoMessage()    {}

type NameRequest struct {
}

func (m *NameRequest) Reset()         { *m = NameRequest{} }
func (m *NameRequest) String() string { return proto.CompactTextString(m) }
func (*NameRequest) ProtoMessage()    {}

type NameResponse struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *NameResponse) Reset()         { *m = NameResponse{} }
func (m *NameResponse) String() string { return proto.CompactTextString(m) }
func (*NameResponse) ProtoMessage()    {}

type HelloRequest struct {
}

func (m *HelloRequest) Reset()         { *m = HelloRequest{} }
func (m *HelloRequest) String() string { return proto.CompactTextString(m) }
func (*HelloRequest) ProtoMessage()    {}

type HelloResponse struct {
	Greeting string `protobuf:"bytes,1,opt,name=greeting,proto3" json:"greeting,omitempty"`
}

func (m *HelloResponse) Reset()         { *m = HelloResponse{} }
func (m *HelloResponse) String() string { return proto.CompactTextString(m) }
func (*HelloResponse) ProtoMessage()    {}

// FallbackRequest carries the ICX value attached to a plain transfer.
type FallbackRequest struct {
	Value *types.BigUInt `protobuf:"bytes,1,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *FallbackRequest) Reset()         { *m = FallbackRequest{} }
func (m *FallbackRequest) String() string { return proto.CompactTextString(m) }
func (*FallbackRequest) ProtoMessage()    {}

// TokenFallbackRequest is sent by token contracts. Value is an integer in ICON notation.
type TokenFallbackRequest struct {
	From  *types.Address `protobuf:"bytes,1,opt,name=from,proto3" json:"from,omitempty"`
	Value string         `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	Data  []byte         `protobuf:"bytes,3,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *TokenFallbackRequest) Reset()         { *m = TokenFallbackRequest{} }
func (m *TokenFallbackRequest) String() string { return proto.CompactTextString(m) }
func (*TokenFallbackRequest) ProtoMessage()    {}

// TransferICXRequest asks the contract to pay Amount (ICON notation, may be negative) to To.
type TransferICXRequest struct {
	To     *types.Address `protobuf:"bytes,1,opt,name=to,proto3" json:"to,omitempty"`
	Amount string         `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *TransferICXRequest) Reset()         { *m = TransferICXRequest{} }
func (m *TransferICXRequest) String() string { return proto.CompactTextString(m) }
func (*TransferICXRequest) ProtoMessage()    {}

type APIRequest struct {
}

func (m *APIRequest) Reset()         { *m = APIRequest{} }
func (m *APIRequest) String() string { return proto.CompactTextString(m) }
func (*APIRequest) ProtoMessage()    {}

type APIResponse struct {
	Methods []*MethodInfo `protobuf:"bytes,1,rep,name=methods,proto3" json:"methods,omitempty"`
}

func (m *APIResponse) Reset()         { *m = APIResponse{} }
func (m *APIResponse) String() string { return proto.CompactTextString(m) }
func (*APIResponse) ProtoMessage()    {}

type MethodInfo struct {
	Type     string       `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	Name     string       `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Readonly bool         `protobuf:"varint,3,opt,name=readonly,proto3" json:"readonly,omitempty"`
	Payable  bool         `protobuf:"varint,4,opt,name=payable,proto3" json:"payable,omitempty"`
	Inputs   []*ParamInfo `protobuf:"bytes,5,rep,name=inputs,proto3" json:"inputs,omitempty"`
	Outputs  []*ParamInfo `protobuf:"bytes,6,rep,name=outputs,proto3" json:"outputs,omitempty"`
}

func (m *MethodInfo) Reset()         { *m = MethodInfo{} }
func (m *MethodInfo) String() string { return proto.CompactTextString(m) }
func (*MethodInfo) ProtoMessage()    {}

type ParamInfo struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Type string `protobuf:"bytes,2,opt,name=type,proto3" json:"type,omitempty"`
}

func (m *ParamInfo) Reset()         { *m = ParamInfo{} }
func (m *ParamInfo) String() string { return proto.CompactTextString(m) }
func (*ParamInfo) ProtoMessage()    {}
