// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: toolserver.proto

package toolv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type CallToolRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Tool name as registered on the server.
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	// JSON-encoded arguments object.
	Arguments     string `protobuf:"bytes,2,opt,name=arguments,proto3" json:"arguments,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CallToolRequest) Reset() {
	*x = CallToolRequest{}
	mi := &file_toolserver_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CallToolRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CallToolRequest) ProtoMessage() {}

func (x *CallToolRequest) ProtoReflect() protoreflect.Message {
	mi := &file_toolserver_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CallToolRequest.ProtoReflect.Descriptor instead.
func (*CallToolRequest) Descriptor() ([]byte, []int) {
	return file_toolserver_proto_rawDescGZIP(), []int{0}
}

func (x *CallToolRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CallToolRequest) GetArguments() string {
	if x != nil {
		return x.Arguments
	}
	return ""
}

type CallToolResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// JSON-encoded result payload.
	Result string `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	// True when the tool itself failed; result then carries the failure text.
	IsError       bool `protobuf:"varint,2,opt,name=is_error,json=isError,proto3" json:"is_error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CallToolResponse) Reset() {
	*x = CallToolResponse{}
	mi := &file_toolserver_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CallToolResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CallToolResponse) ProtoMessage() {}

func (x *CallToolResponse) ProtoReflect() protoreflect.Message {
	mi := &file_toolserver_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CallToolResponse.ProtoReflect.Descriptor instead.
func (*CallToolResponse) Descriptor() ([]byte, []int) {
	return file_toolserver_proto_rawDescGZIP(), []int{1}
}

func (x *CallToolResponse) GetResult() string {
	if x != nil {
		return x.Result
	}
	return ""
}

func (x *CallToolResponse) GetIsError() bool {
	if x != nil {
		return x.IsError
	}
	return false
}

var File_toolserver_proto protoreflect.FileDescriptor

const file_toolserver_proto_rawDesc = "" +
	"\n" +
	"\x10toolserver.proto\x12\x13baton.toolserver.v1\"C\n" +
	"\x0fCallToolRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1c\n" +
	"\targuments\x18\x02 \x01(\tR\targuments\"E\n" +
	"\x10CallToolResponse\x12\x16\n" +
	"\x06result\x18\x01 \x01(\tR\x06result\x12\x19\n" +
	"\bis_error\x18\x02 \x01(\bR\aisError2e\n" +
	"\n" +
	"ToolServer\x12W\n" +
	"\bCallTool\x12$.baton.toolserver.v1.CallToolRequest\x1a%.baton.toolserver.v1.CallToolResponseB*Z(github.com/batonworks/baton/proto;toolv1b\x06proto3"

var (
	file_toolserver_proto_rawDescOnce sync.Once
	file_toolserver_proto_rawDescData []byte
)

func file_toolserver_proto_rawDescGZIP() []byte {
	file_toolserver_proto_rawDescOnce.Do(func() {
		file_toolserver_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_toolserver_proto_rawDesc), len(file_toolserver_proto_rawDesc)))
	})
	return file_toolserver_proto_rawDescData
}

var file_toolserver_proto_msgTypes = make([]protoimpl.MessageInfo, 2)
var file_toolserver_proto_goTypes = []any{
	(*CallToolRequest)(nil),  // 0: baton.toolserver.v1.CallToolRequest
	(*CallToolResponse)(nil), // 1: baton.toolserver.v1.CallToolResponse
}
var file_toolserver_proto_depIdxs = []int32{
	0, // 0: baton.toolserver.v1.ToolServer.CallTool:input_type -> baton.toolserver.v1.CallToolRequest
	1, // 1: baton.toolserver.v1.ToolServer.CallTool:output_type -> baton.toolserver.v1.CallToolResponse
	1, // [1:2] is the sub-list for method output_type
	0, // [0:1] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_toolserver_proto_init() }
func file_toolserver_proto_init() {
	if File_toolserver_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_toolserver_proto_rawDesc), len(file_toolserver_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   2,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_toolserver_proto_goTypes,
		DependencyIndexes: file_toolserver_proto_depIdxs,
		MessageInfos:      file_toolserver_proto_msgTypes,
	}.Build()
	File_toolserver_proto = out.File
	file_toolserver_proto_goTypes = nil
	file_toolserver_proto_depIdxs = nil
}
