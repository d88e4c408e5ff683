package out

import (
	"context"
	"fmt"
	"os/exec"
	"sync"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	enforcerpc "focusd/internal/modules/enforce/adapter/out/rpc"
	"focusd/internal/modules/enforce/domain"
	enforceout "focusd/internal/modules/enforce/port/out"
)

const (
	defaultStartTimeout = 3 * time.Second
	defaultCallTimeout  = 5 * time.Second
)

// PluginEnforcer speaks to a privileged helper binary over go-plugin gRPC.
// The helper owns the actual input hooks and mixer handle, so the client is
// kept alive for the life of the process rather than dialed per call; losing
// the helper would release every active block.
type PluginEnforcer struct {
	binary string
	logger hclog.Logger

	mu     sync.Mutex
	client enforcerpc.EnforcerClient
	kill   func()
}

func NewPluginEnforcer(binary string, logger hclog.Logger) *PluginEnforcer {
	return &PluginEnforcer{binary: binary, logger: logger}
}

func (e *PluginEnforcer) BlockInput(ctx context.Context) error {
	return e.setInput(ctx, true)
}

func (e *PluginEnforcer) UnblockInput(ctx context.Context) error {
	return e.setInput(ctx, false)
}

func (e *PluginEnforcer) MuteAudio(ctx context.Context) error {
	return e.setAudio(ctx, true)
}

func (e *PluginEnforcer) UnmuteAudio(ctx context.Context) error {
	return e.setAudio(ctx, false)
}

func (e *PluginEnforcer) Describe(ctx context.Context) (domain.Info, error) {
	client, err := e.connect()
	if err != nil {
		return domain.Info{}, err
	}
	callCtx, cancel := callContext(ctx)
	defer cancel()
	info, err := client.GetInfo(callCtx)
	if err != nil {
		e.drop()
		return domain.Info{}, fmt.Errorf("get enforcer info: %w", err)
	}
	return domain.Info{Name: info.Name, Version: info.Version, Platform: info.Platform}, nil
}

// Close kills the helper process. The helper is expected to release its hooks
// on exit, matching the unrestricted teardown state.
func (e *PluginEnforcer) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.kill != nil {
		e.kill()
		e.kill = nil
		e.client = nil
	}
}

func (e *PluginEnforcer) setInput(ctx context.Context, on bool) error {
	client, err := e.connect()
	if err != nil {
		return err
	}
	callCtx, cancel := callContext(ctx)
	defer cancel()
	if _, err := client.SetInputBlocked(callCtx, &enforcerpc.SetStateRequest{On: on}); err != nil {
		e.drop()
		return fmt.Errorf("set input blocked=%t: %w", on, err)
	}
	return nil
}

func (e *PluginEnforcer) setAudio(ctx context.Context, on bool) error {
	client, err := e.connect()
	if err != nil {
		return err
	}
	callCtx, cancel := callContext(ctx)
	defer cancel()
	if _, err := client.SetAudioMuted(callCtx, &enforcerpc.SetStateRequest{On: on}); err != nil {
		e.drop()
		return fmt.Errorf("set audio muted=%t: %w", on, err)
	}
	return nil
}

func (e *PluginEnforcer) connect() (enforcerpc.EnforcerClient, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.client != nil {
		return e.client, nil
	}
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  enforcerpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          enforcerpc.PluginMap(nil),
		Cmd:              exec.Command(e.binary),
		Managed:          true,
		StartTimeout:     defaultStartTimeout,
		Logger:           e.logger.Named("plugin"),
	})
	rpcClient, err := client.Client()
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("start enforcer helper: %w", err)
	}
	raw, err := rpcClient.Dispense(enforcerpc.PluginMapKey)
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("dispense enforcer: %w", err)
	}
	typed, ok := raw.(enforcerpc.EnforcerClient)
	if !ok {
		client.Kill()
		return nil, fmt.Errorf("enforcer rpc client type mismatch")
	}
	e.client = typed
	e.kill = client.Kill
	return typed, nil
}

// drop discards a client after a failed call so the next operation redials a
// fresh helper.
func (e *PluginEnforcer) drop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.kill != nil {
		e.kill()
	}
	e.client = nil
	e.kill = nil
}

func callContext(parent context.Context) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, defaultCallTimeout)
}

var _ enforceout.Enforcer = (*PluginEnforcer)(nil)
