package bootstrap

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	hclog "github.com/hashicorp/go-hclog"

	enforceinadapter "focusd/internal/modules/enforce/adapter/in"
	enforceoutadapter "focusd/internal/modules/enforce/adapter/out"
	enforceservice "focusd/internal/modules/enforce/service"
	enforceusecase "focusd/internal/modules/enforce/usecase"
	nightwatchinadapter "focusd/internal/modules/nightwatch/adapter/in"
	nightwatchdomain "focusd/internal/modules/nightwatch/domain"
	nightwatchout "focusd/internal/modules/nightwatch/port/out"
	nightwatchservice "focusd/internal/modules/nightwatch/service"
	nightwatchusecase "focusd/internal/modules/nightwatch/usecase"
	sessioninadapter "focusd/internal/modules/session/adapter/in"
	sessionoutadapter "focusd/internal/modules/session/adapter/out"
	sessionout "focusd/internal/modules/session/port/out"
	sessionservice "focusd/internal/modules/session/service"
	sessionusecase "focusd/internal/modules/session/usecase"
	timesyncinadapter "focusd/internal/modules/timesync/adapter/in"
	timesyncoutadapter "focusd/internal/modules/timesync/adapter/out"
	timesyncservice "focusd/internal/modules/timesync/service"
	timesyncusecase "focusd/internal/modules/timesync/usecase"
	"focusd/internal/platform/clock"
	"focusd/internal/platform/config"
	"focusd/internal/platform/logging"
	uiapp "focusd/internal/ui/app"
	uipresenter "focusd/internal/ui/presenter"
)

const (
	tickInterval      = time.Second
	breakMessageEvery = 5 * time.Second
	nightPollEvery    = 30 * time.Second
	nightClockEvery   = time.Second
)

type App struct {
	SessionCLI  sessioninadapter.CLIHandler
	TimeSyncCLI timesyncinadapter.CLIHandler
	NightCLI    nightwatchinadapter.CLIHandler
	EnforceCLI  enforceinadapter.CLIHandler

	cfg       config.Config
	logger    hclog.Logger
	timeSvc   *timesyncservice.TimeService
	monitor   *nightwatchservice.Monitor
	scheduler *sessionservice.Scheduler
	gate      *enforceservice.Gate
	helper    *enforceoutadapter.PluginEnforcer
}

// New wires every module. The presenters decide the mode: the TUI bridge for
// `focusd run`, console presenters for headless commands.
func New(cfg config.Config, sessionPresenter sessionout.Presenter, nightPresenter nightwatchout.Presenter) (*App, error) {
	logger := logging.New(cfg.LogLevel)

	var helper *enforceoutadapter.PluginEnforcer
	gateLogger := logger.Named("enforce")
	var gate *enforceservice.Gate
	if cfg.Enforcer.Binary != "" {
		helper = enforceoutadapter.NewPluginEnforcer(cfg.Enforcer.Binary, gateLogger)
		gate = enforceservice.NewGate(helper, gateLogger)
	} else {
		gate = enforceservice.NewGate(enforceoutadapter.NewLogEnforcer(gateLogger), gateLogger)
	}
	enforceUC := enforceusecase.NewInteractor(gate)

	timeSvc := timesyncservice.NewTimeService(
		clock.SystemClock{},
		timesyncoutadapter.NewNTPClient(),
		cfg.TimeSync.Servers,
		cfg.TimeSync.AttemptTimeout,
		logger.Named("timesync"),
	)
	timesyncUC := timesyncusecase.NewInteractor(timeSvc)

	scheduler := sessionservice.NewScheduler(
		enforceUC,
		sessionPresenter,
		sessionoutadapter.NewRandomActivityPicker(cfg.BreakActivities),
		logger.Named("session"),
		tickInterval,
		breakMessageEvery,
	)
	sessionUC := sessionusecase.NewInteractor(scheduler)

	window := nightwatchdomain.Window{StartHour: cfg.Night.StartHour, EndHour: cfg.Night.EndHour}
	monitor, err := nightwatchservice.NewMonitor(
		window,
		timesyncUC,
		enforceUC,
		nightPresenter,
		logger.Named("night"),
		nightPollEvery,
		nightClockEvery,
	)
	if err != nil {
		return nil, err
	}
	nightUC := nightwatchusecase.NewInteractor(monitor, timesyncUC)

	return &App{
		SessionCLI:  sessioninadapter.NewCLIHandler(sessionUC),
		TimeSyncCLI: timesyncinadapter.NewCLIHandler(timesyncUC),
		NightCLI:    nightwatchinadapter.NewCLIHandler(nightUC),
		EnforceCLI:  enforceinadapter.NewCLIHandler(enforceUC),
		cfg:         cfg,
		logger:      logger,
		timeSvc:     timeSvc,
		monitor:     monitor,
		scheduler:   scheduler,
		gate:        gate,
		helper:      helper,
	}, nil
}

// StartBackground launches the three daemon loops: one initial sync followed
// by the night monitor, and the hourly resync loop. All of them exit when
// ctx is done.
func (a *App) StartBackground(ctx context.Context) {
	go func() {
		a.timeSvc.Sync(ctx)
		a.monitor.Run(ctx)
	}()
	go a.timeSvc.RunResyncLoop(ctx, a.cfg.TimeSync.ResyncInterval)
}

// Shutdown tears enforcement down to the unrestricted state and releases the
// helper process.
func (a *App) Shutdown(ctx context.Context) {
	a.scheduler.Stop(ctx)
	a.gate.Reset(ctx)
	if a.helper != nil {
		a.helper.Close()
	}
}

// RunTUI runs the full-screen program with background loops attached.
func RunTUI(app *App, bridge *uipresenter.Bridge) error {
	model := uiapp.NewModel(
		app.SessionCLI,
		app.NightCLI,
		app.TimeSyncCLI,
		app.EnforceCLI,
		app.cfg.WorkDuration,
		app.cfg.BreakDuration,
	)
	program := tea.NewProgram(model, tea.WithAltScreen())
	bridge.Attach(program)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	app.StartBackground(ctx)
	defer app.Shutdown(context.Background())

	_, err := program.Run()
	return err
}

// RunHeadless drives a session in the foreground until ctx is canceled,
// typically by the interrupt signal acting as the emergency stop.
func RunHeadless(ctx context.Context, app *App, work, brk time.Duration) error {
	bg, cancel := context.WithCancel(context.Background())
	defer cancel()
	app.StartBackground(bg)
	defer app.Shutdown(context.Background())

	if _, err := app.SessionCLI.Start(ctx, work, brk); err != nil {
		return err
	}
	<-ctx.Done()
	app.SessionCLI.Stop(context.Background())
	return nil
}
