// Command ipoadmin is the terminal admin console for the IPO advisory site: it logs in,
// manages leads, blog posts and files through the backend API, and archives site
// files to object storage.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"ipoadvisor/internal/config"
	"ipoadvisor/internal/gateway"
	"ipoadvisor/internal/logging"
	"ipoadvisor/internal/otel"
	"ipoadvisor/internal/session"
)

// Exit codes.
const (
	exitOK           = 0
	exitError        = 1
	exitUsage        = 2
	exitUnauthorized = 3
)

var errUsage = errors.New("usage")

// cli carries what every command needs.
type cli struct {
	cfg    *config.AppConfig
	logger *zap.Logger
	client *gateway.Client
	in     io.Reader
	out    io.Writer
}

type command struct {
	usage string
	// admin commands pass the session guard before running
	admin bool
	run   func(ctx context.Context, c *cli, args []string) error
}

var commands = map[string]command{
	"login":        {usage: "login -email EMAIL [-password PASS | -password-stdin]", run: cmdLogin},
	"logout":       {usage: "logout", run: cmdLogout},
	"verify":       {usage: "verify", run: cmdVerify},
	"stats":        {usage: "stats", admin: true, run: cmdStats},
	"contacts":     {usage: "contacts list|update|delete ...", admin: true, run: cmdContacts},
	"applications": {usage: "applications list|update|delete ...", admin: true, run: cmdApplications},
	"blog":         {usage: "blog list|show|create|update|delete ...", admin: true, run: cmdBlog},
	"files":        {usage: "files list|upload|delete|url|download|backup|restore|link ...", admin: true, run: cmdFiles},
	"contact":      {usage: "contact -name N -company C -mobile M [-email E] [-turnover T] [-message M]", run: cmdContact},
	"apply":        {usage: "apply -name N -company C -turnover T -mobile M", run: cmdApply},
}

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, cfg, logger, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one command and returns the exit code. The logger is flushed before
// it returns, since main exits without running deferred calls.
func run(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger, args []string, in io.Reader, out, errOut io.Writer) int {
	defer func() { _ = logger.Sync() }()

	fs := flag.NewFlagSet("ipoadmin", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&cfg.BackendURL, "backend", cfg.BackendURL, "backend base URL")
	fs.StringVar(&cfg.Session.Driver, "session", cfg.Session.Driver, "session store: sqlite, postgres, redis or memory")
	metricsFile := fs.String("metrics-textfile", "", "write request metrics to this file on exit (node_exporter textfile format)")
	fs.Usage = func() { printUsage(errOut, fs) }
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}
	cmd, ok := commands[fs.Arg(0)]
	if !ok {
		fmt.Fprintf(errOut, "unknown command %q\n", fs.Arg(0))
		fs.Usage()
		return exitUsage
	}

	shutdown, err := otel.Init(ctx, "ipoadmin", logger)
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
	} else {
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(sctx)
		}()
	}

	store, closeStore, err := session.Open(ctx, cfg.Session, logger)
	if err != nil {
		fmt.Fprintf(errOut, "error: open session store: %v\n", err)
		return exitError
	}
	defer func() { _ = closeStore() }()

	reg := prometheus.NewRegistry()
	metrics, err := gateway.NewMetrics(reg)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitError
	}
	client, err := gateway.New(cfg.BackendURL, store,
		gateway.WithTimeout(time.Duration(cfg.HTTPTimeoutSec)*time.Second),
		gateway.WithLogger(logger),
		gateway.WithMetrics(metrics),
	)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitError
	}
	if *metricsFile != "" {
		defer func() {
			if err := prometheus.WriteToTextfile(*metricsFile, reg); err != nil {
				logger.Warn("write metrics textfile failed", zap.String("path", *metricsFile), zap.Error(err))
			}
		}()
	}

	c := &cli{cfg: cfg, logger: logger, client: client, in: in, out: out}
	if cmd.admin {
		if err := newDashboard(c).Guard(ctx); err != nil {
			return report(errOut, err)
		}
	}
	if err := cmd.run(ctx, c, fs.Args()[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(errOut, "usage: ipoadmin %s\n", cmd.usage)
			return exitUsage
		}
		return report(errOut, err)
	}
	return exitOK
}

// report prints err and picks the exit code. An unauthorized error points the user
// back to login.
func report(w io.Writer, err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return exitUsage
	}
	fmt.Fprintf(w, "error: %v\n", err)
	if errors.Is(err, gateway.ErrUnauthorized) {
		fmt.Fprintln(w, "run `ipoadmin login` to start a new session")
		return exitUnauthorized
	}
	return exitError
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "usage: ipoadmin [flags] <command> [args]")
	fmt.Fprintln(w, "\ncommands:")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", commands[name].usage)
	}
	fmt.Fprintln(w, "\nflags:")
	fs.PrintDefaults()
}
