package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"os/signal"
	"strings"

	"bookvault/internal/book"
	"bookvault/internal/catalogsync"
	"bookvault/internal/config"
	"bookvault/internal/platform/bookstore"
	"bookvault/internal/store"
	"bookvault/internal/view"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

var version = "dev"

// CLI is the top-level command structure for bookvault.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Verbose bool             `help:"Log outgoing requests and storage events to stderr." short:"v"`
	Trace   bool             `help:"Print a trace span for every remote call to stderr."`

	List    ListCmd    `cmd:"" default:"1" help:"Show books, loading from the server if nothing is cached."`
	Refresh RefreshCmd `cmd:"" help:"Reload all books from the server."`
	Add     AddCmd     `cmd:"" help:"Add a book."`
	Delete  DeleteCmd  `cmd:"" help:"Delete a book by id."`
	About   AboutCmd   `cmd:"" help:"Explain what bookvault does."`
}

// Env carries process handles into commands.
type Env struct {
	Ctx         context.Context
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	Interactive bool

	tracerProvider trace.TracerProvider
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	env := &Env{
		Ctx:         ctx,
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}
	if err := run(env, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

func run(env *Env, args []string) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("bookvault"),
		kong.Description("A terminal catalog of books kept in sync with the BookVault service."),
		kong.Vars{"version": version},
		kong.Writers(env.Stdout, env.Stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return err
	}

	log.SetFlags(log.LstdFlags)
	log.SetOutput(io.Discard)
	if cli.Verbose {
		log.SetOutput(env.Stderr)
	}

	if cli.Trace {
		tp, err := newTracerProvider(env.Stderr)
		if err != nil {
			fmt.Fprintf(env.Stderr, "bookvault: %v\n", err)
			return err
		}
		defer func() {
			if err := tp.Shutdown(context.WithoutCancel(env.Ctx)); err != nil {
				log.Printf("trace shutdown: %v", err)
			}
		}()
		env.tracerProvider = tp
	}

	if err := kctx.Run(env); err != nil {
		fmt.Fprintf(env.Stderr, "bookvault: %v\n", err)
		return err
	}
	return nil
}

// newTracerProvider exports finished spans synchronously to w.
func newTracerProvider(w io.Writer) (*sdktrace.TracerProvider, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("trace exporter: %w", err)
	}
	return sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter)), nil
}

// session is one command's view of the catalog.
type session struct {
	sync     *catalogsync.Controller
	terminal *view.Terminal
	snapshot store.Snapshot
}

// openSession wires config, storage, the remote client and the terminal, then
// restores the on-device snapshot.
func openSession(env *Env) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	log.Printf("config api=%s store=%s snapshot=%s dsn=%s", cfg.APIBaseURL, cfg.StoreBackend, cfg.SnapshotPath, redactDSN(cfg.DatabaseDSN))

	snapshot, err := store.Open(env.Ctx, cfg.StoreOptions())
	if err != nil {
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}

	var opts []bookstore.Option
	if env.tracerProvider != nil {
		opts = append(opts, bookstore.WithTracerProvider(env.tracerProvider))
	}
	client := bookstore.NewClient(cfg.APIBaseURL, cfg.UserAgent, cfg.RPS, opts...)
	terminal := view.NewTerminal(env.Stdout, env.Stderr)

	s := &session{
		sync:     catalogsync.New(client, snapshot, terminal),
		terminal: terminal,
		snapshot: snapshot,
	}
	s.sync.Restore(env.Ctx)
	return s, nil
}

// finish prints the catalog and closes storage. It returns res.Err so the
// process exits non-zero on failed operations.
func (s *session) finish(res catalogsync.Result) error {
	defer s.snapshot.Close()

	if err := s.terminal.Flush(); err != nil {
		return err
	}
	if res.Err != nil {
		return fmt.Errorf("%s failed (%s): %w", res.Op, catalogsync.KindOf(res.Err), res.Err)
	}
	return nil
}

// ListCmd enters the main view.
type ListCmd struct{}

func (c *ListCmd) Run(env *Env) error {
	s, err := openSession(env)
	if err != nil {
		return err
	}
	return s.finish(s.sync.EnterMain(env.Ctx))
}

// RefreshCmd always reloads from the server.
type RefreshCmd struct{}

func (c *RefreshCmd) Run(env *Env) error {
	s, err := openSession(env)
	if err != nil {
		return err
	}
	return s.finish(s.sync.Load(env.Ctx))
}

// AddCmd submits a new book.
type AddCmd struct {
	Title       string `help:"Book title."`
	Author      string `help:"Book author."`
	Year        int    `help:"Publication year."`
	ImageURL    string `name:"image-url" help:"Cover image URL."`
	Description string `help:"Short description."`
}

func (c *AddCmd) Run(env *Env) error {
	s, err := openSession(env)
	if err != nil {
		return err
	}
	return s.finish(s.sync.Insert(env.Ctx, c.draft()))
}

func (c *AddCmd) draft() book.Draft {
	d := book.Draft{
		Title:       c.Title,
		Author:      c.Author,
		ImageURL:    c.ImageURL,
		Description: c.Description,
	}
	if c.Year != 0 {
		year := c.Year
		d.Year = &year
	}
	return d
}

// DeleteCmd removes a book after confirmation.
type DeleteCmd struct {
	ID  string `arg:"" help:"Id of the book to delete."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *DeleteCmd) Run(env *Env) error {
	if !c.Yes {
		if !env.Interactive {
			return fmt.Errorf("refusing to delete %s without --yes on non-interactive input", c.ID)
		}
		if !confirm(env.Stdin, env.Stdout, "Delete this book?") {
			fmt.Fprintln(env.Stdout, "Cancelled.")
			return nil
		}
	}

	s, err := openSession(env)
	if err != nil {
		return err
	}
	return s.finish(s.sync.Delete(env.Ctx, c.ID))
}

// AboutCmd prints usage notes.
type AboutCmd struct{}

func (c *AboutCmd) Run(env *Env) error {
	_, err := fmt.Fprintln(env.Stdout, "BookVault lets anyone add or delete books.\n\nAdd: bookvault add --title ... --author ...\nDelete: bookvault delete <id>")
	return err
}

// redactDSN hides the password in URL and key=value connection strings.
func redactDSN(dsn string) string {
	if u, err := url.Parse(dsn); err == nil && u.Scheme != "" && u.User != nil {
		return u.Redacted()
	}

	fields := strings.Fields(dsn)
	for i, f := range fields {
		if strings.HasPrefix(strings.ToLower(f), "password=") {
			fields[i] = "password=xxxxx"
		}
	}
	return strings.Join(fields, " ")
}
