package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/hashicorp/go-plugin"

	enforcerpc "focusd/internal/modules/enforce/adapter/out/rpc"
)

// server is a reference enforcer: it tracks the requested state and reports
// transitions on stderr instead of touching input devices or the mixer. It
// exists to exercise the RPC contract and to serve as a template for real
// platform helpers.
type server struct {
	mu      sync.Mutex
	blocked bool
	muted   bool
}

func (s *server) GetInfo(_ context.Context, _ *enforcerpc.Empty) (*enforcerpc.Info, error) {
	return &enforcerpc.Info{
		Name:     "reference",
		Version:  "1.0.0",
		Platform: runtime.GOOS,
	}, nil
}

func (s *server) SetInputBlocked(_ context.Context, in *enforcerpc.SetStateRequest) (*enforcerpc.SetStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.blocked != in.On {
		s.blocked = in.On
		_, _ = fmt.Fprintf(os.Stderr, "reference enforcer: input blocked=%t\n", in.On)
	}
	return &enforcerpc.SetStateResponse{Engaged: s.blocked}, nil
}

func (s *server) SetAudioMuted(_ context.Context, in *enforcerpc.SetStateRequest) (*enforcerpc.SetStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.muted != in.On {
		s.muted = in.On
		_, _ = fmt.Fprintf(os.Stderr, "reference enforcer: audio muted=%t\n", in.On)
	}
	return &enforcerpc.SetStateResponse{Engaged: s.muted}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: enforcerpc.HandshakeConfig,
		Plugins:         enforcerpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
