package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const (
	PluginMapKey          = "enforcer"
	serviceName           = "focusd.enforcer.v1.Enforcer"
	jsonCodecName         = "json"
	methodGetInfo         = "/" + serviceName + "/GetInfo"
	methodSetInputBlocked = "/" + serviceName + "/SetInputBlocked"
	methodSetAudioMuted   = "/" + serviceName + "/SetAudioMuted"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "FOCUSD_ENFORCER",
	MagicCookieValue: "focusd",
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return jsonCodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type Empty struct{}

type Info struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Platform string `json:"platform"`
}

// SetStateRequest carries the desired value for one enforcement capability.
// Helpers must treat a request matching the current state as a no-op.
type SetStateRequest struct {
	On bool `json:"on"`
}

type SetStateResponse struct {
	// Engaged reports the state the helper holds after the call.
	Engaged bool `json:"engaged"`
}

type EnforcerServer interface {
	GetInfo(ctx context.Context, in *Empty) (*Info, error)
	SetInputBlocked(ctx context.Context, in *SetStateRequest) (*SetStateResponse, error)
	SetAudioMuted(ctx context.Context, in *SetStateRequest) (*SetStateResponse, error)
}

type EnforcerClient interface {
	GetInfo(ctx context.Context) (*Info, error)
	SetInputBlocked(ctx context.Context, in *SetStateRequest) (*SetStateResponse, error)
	SetAudioMuted(ctx context.Context, in *SetStateRequest) (*SetStateResponse, error)
}

type enforcerClient struct {
	conn *grpc.ClientConn
}

func NewEnforcerClient(conn *grpc.ClientConn) EnforcerClient {
	return &enforcerClient{conn: conn}
}

func (c *enforcerClient) GetInfo(ctx context.Context) (*Info, error) {
	out := &Info{}
	if err := c.conn.Invoke(ctx, methodGetInfo, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *enforcerClient) SetInputBlocked(ctx context.Context, in *SetStateRequest) (*SetStateResponse, error) {
	out := &SetStateResponse{}
	if err := c.conn.Invoke(ctx, methodSetInputBlocked, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *enforcerClient) SetAudioMuted(ctx context.Context, in *SetStateRequest) (*SetStateResponse, error) {
	out := &SetStateResponse{}
	if err := c.conn.Invoke(ctx, methodSetAudioMuted, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func RegisterEnforcerServer(server grpc.ServiceRegistrar, impl EnforcerServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*EnforcerServer)(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "GetInfo",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &Empty{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.GetInfo(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodGetInfo}
					handler := func(ctx context.Context, req any) (any, error) {
						empty, ok := req.(*Empty)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.GetInfo(ctx, empty)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
			{
				MethodName: "SetInputBlocked",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &SetStateRequest{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.SetInputBlocked(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodSetInputBlocked}
					handler := func(ctx context.Context, req any) (any, error) {
						inReq, ok := req.(*SetStateRequest)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.SetInputBlocked(ctx, inReq)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
			{
				MethodName: "SetAudioMuted",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &SetStateRequest{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.SetAudioMuted(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodSetAudioMuted}
					handler := func(ctx context.Context, req any) (any, error) {
						inReq, ok := req.(*SetStateRequest)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.SetAudioMuted(ctx, inReq)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "schemas/enforcer-rpc-v1.proto",
	}, impl)
}

type GRPCPlugin struct {
	plugin.NetRPCUnsupportedPlugin
	Impl EnforcerServer
}

func (p *GRPCPlugin) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterEnforcerServer(server, p.Impl)
	return nil
}

func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewEnforcerClient(conn), nil
}

func PluginMap(impl EnforcerServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginMapKey: &GRPCPlugin{Impl: impl},
	}
}
