package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/bnet-enroll/internal/client/client"
	"github.com/dmitrijs2005/bnet-enroll/internal/client/config"
	"github.com/dmitrijs2005/bnet-enroll/internal/codes"
	"github.com/dmitrijs2005/bnet-enroll/internal/common"
	"github.com/dmitrijs2005/bnet-enroll/internal/enroll"
	"github.com/dmitrijs2005/bnet-enroll/internal/logging"
	"github.com/dmitrijs2005/bnet-enroll/internal/totpclock"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

type enroller interface {
	Enroll(ctx context.Context, req enroll.Request) (enroll.Device, error)
}

type App struct {
	config   *config.Config
	log      logging.Logger
	enroller enroller
	out      io.Writer
	logOut   io.Writer
	now      func() time.Time
	tty      bool

	enrollOpts []enroll.Option
}

// Option configures an App.
type Option func(*App)

// WithOutput sends user-facing output to w instead of os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(a *App) { a.out = w }
}

// WithLogOutput sends log lines to w instead of os.Stderr.
func WithLogOutput(w io.Writer) Option {
	return func(a *App) { a.logOut = w }
}

// WithNow replaces time.Now for both enrollment and code generation.
func WithNow(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithEnrollOptions passes extra options to enroll.NewEnroller.
func WithEnrollOptions(opts ...enroll.Option) Option {
	return func(a *App) { a.enrollOpts = append(a.enrollOpts, opts...) }
}

func NewApp(c *config.Config, opts ...Option) (*App, error) {
	a := &App{
		config: c,
		out:    os.Stdout,
		logOut: os.Stderr,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	l, err := logging.New(c.LogDriver, c.LogLevel, c.LogFormat, a.logOut)
	if err != nil {
		return nil, err
	}
	a.log = l

	topts := []client.Option{client.WithLogger(a.log)}
	if c.BaseURL != "" {
		topts = append(topts, client.WithBaseURL(c.BaseURL))
	}
	transport := client.NewHTTPTransport(c.HTTPTimeout, topts...)

	eopts := append([]enroll.Option{enroll.WithLogger(a.log), enroll.WithClock(a.now)}, a.enrollOpts...)
	en, err := enroll.NewEnroller(transport, eopts...)
	if err != nil {
		return nil, err
	}
	a.enroller = en

	if f, ok := a.out.(*os.File); ok {
		a.tty = isTerminal(int(f.Fd()))
	}

	return a, nil
}

// Run enrolls a new authenticator, prints its summary and then prints the
// current code every CodeInterval until ctx is done. With Once set it
// returns after the first code.
func (a *App) Run(ctx context.Context) error {
	device, err := a.enroller.Enroll(ctx, enroll.Request{
		Region:  a.config.Region,
		Country: a.config.Country,
	})
	if err != nil {
		return fmt.Errorf("enroll: %w", err)
	}

	s := newSummary(device, a.config.Name)
	if !codes.ValidRestoreCode(s.RestoreCode) {
		return fmt.Errorf("%w: derived restore code %q", common.ErrMalformedResponse, s.RestoreCode)
	}

	if a.config.JSON {
		err = writeSummaryJSON(a.out, s)
	} else {
		err = writeSummary(a.out, s)
	}
	if err != nil {
		return err
	}

	clock := totpclock.New(device.SecretCode(), device.TimeOffset(), totpclock.WithNow(a.now))
	return a.codeLoop(ctx, clock)
}

// Close flushes buffered log output.
func (a *App) Close() {
	if s, ok := a.log.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}
