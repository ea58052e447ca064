package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"go.opentelemetry.io/otel/exporters/stdout/stdoutlog"

	"github.com/AntonStoeckl/bookface-go/library/features/command/addbook"
	"github.com/AntonStoeckl/bookface-go/library/features/command/addperson"
	"github.com/AntonStoeckl/bookface-go/library/features/command/deletebook"
	"github.com/AntonStoeckl/bookface-go/library/features/command/deleteperson"
	"github.com/AntonStoeckl/bookface-go/library/features/command/lendbookcopy"
	"github.com/AntonStoeckl/bookface-go/library/features/command/returnbookcopy"
	"github.com/AntonStoeckl/bookface-go/library/features/query/listbooks"
	"github.com/AntonStoeckl/bookface-go/library/features/query/loansbyperson"
	"github.com/AntonStoeckl/bookface-go/library/shared/model"
	"github.com/AntonStoeckl/bookface-go/library/shared/shell"
	"github.com/AntonStoeckl/bookface-go/library/shared/shell/config"
	"github.com/AntonStoeckl/bookface-go/library/shared/shell/observable"
	"github.com/AntonStoeckl/bookface-go/snapshotstore/fileengine"
)

var (
	errUnknownAction  = errors.New("unknown action")
	errWrongArguments = errors.New("wrong number of arguments")
	errNotANumber     = errors.New("index and quantity arguments must be whole numbers")
)

type application struct {
	cfg           config.Config
	library       *model.Model
	repository    shell.Repository
	logger        *slog.Logger
	commandLogger shell.Logger
	providers     *config.ObservabilityProviders
	out           io.Writer
}

// newApplication opens the snapshot store in cfg.DataDir and loads the library.
// Any invalid record aborts the load.
//
// With observability enabled, command handlers log through the OpenTelemetry slog bridge and the
// log records are written to logOut by the stdout log exporter.
func newApplication(ctx context.Context, cfg config.Config, out io.Writer, logOut io.Writer) (*application, error) {
	logger := cfg.NewLogger(logOut)

	store, err := fileengine.NewSnapshotStore(cfg.DataDir, fileengine.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	repository := shell.NewRepository(store, shell.WithRepositoryLogger(logger))

	library, err := repository.Load(ctx)
	if err != nil {
		return nil, err
	}

	app := &application{
		cfg:           cfg,
		library:       library,
		repository:    repository,
		logger:        logger,
		commandLogger: logger,
		out:           out,
	}

	if cfg.ObservabilityEnabled {
		logExporter, exporterErr := stdoutlog.New(stdoutlog.WithWriter(logOut))
		if exporterErr != nil {
			return nil, exporterErr
		}

		app.providers = config.NewObservabilityProviders(serviceName, config.WithLogExporter(logExporter))
		app.commandLogger = app.providers.Logger(serviceName)
	}

	return app, nil
}

// run executes the action named by args[0]; no arguments print the book listing.
//
//nolint:funlen
func (a *application) run(ctx context.Context, args []string, now time.Time) error {
	if len(args) == 0 {
		return a.listBooks(ctx)
	}

	action, params := args[0], args[1:]

	switch action {
	case "list":
		return a.listBooks(ctx)

	case "loans":
		ints, err := intArgs(params, 1)
		if err != nil {
			return err
		}

		return a.listLoans(ctx, ints[0], now)

	case "add-book":
		if len(params) != 3 {
			return fmt.Errorf("%w: add-book TITLE AUTHOR QUANTITY", errWrongArguments)
		}

		quantity, err := strconv.Atoi(params[2])
		if err != nil {
			return errNotANumber
		}

		handler := addbook.NewCommandHandler(a.library, a.repository)

		return handle(ctx, a, handler, addbook.BuildCommand(params[0], params[1], quantity), "New book added: %s")

	case "add-person":
		if len(params) != 1 {
			return fmt.Errorf("%w: add-person NAME", errWrongArguments)
		}

		handler := addperson.NewCommandHandler(a.library, a.repository)

		return handle(ctx, a, handler, addperson.BuildCommand(params[0]), "New person added: %s")

	case "lend":
		returnDate := ""
		if len(params) == 3 {
			returnDate, params = params[2], params[:2]
		}

		ints, err := intArgs(params, 2)
		if err != nil {
			return err
		}

		handler, err := lendbookcopy.NewCommandHandler(
			a.library,
			a.repository,
			lendbookcopy.WithLoanPeriod(a.cfg.LoanPeriod),
		)
		if err != nil {
			return err
		}

		command := lendbookcopy.BuildCommand(ints[0], ints[1], returnDate, now)

		return handle(ctx, a, handler, command, "Book %s loaned successfully.")

	case "return":
		ints, err := intArgs(params, 2)
		if err != nil {
			return err
		}

		handler := returnbookcopy.NewCommandHandler(a.library, a.repository)

		return handle(ctx, a, handler, returnbookcopy.BuildCommand(ints[0], ints[1]), "Book %s returned successfully.")

	case "delete-book":
		ints, err := intArgs(params, 1)
		if err != nil {
			return err
		}

		handler := deletebook.NewCommandHandler(a.library, a.repository)

		return handle(ctx, a, handler, deletebook.BuildCommand(ints[0]), "Deleted book: %s")

	case "delete-person":
		ints, err := intArgs(params, 1)
		if err != nil {
			return err
		}

		handler := deleteperson.NewCommandHandler(a.library, a.repository)

		return handle(ctx, a, handler, deleteperson.BuildCommand(ints[0]), "Deleted person: %s")

	default:
		return fmt.Errorf("%w: %s", errUnknownAction, action)
	}
}

// handle runs command through the observable wrapper and prints the confirmation.
func handle[C shell.Command](
	ctx context.Context,
	a *application,
	handler shell.CoreCommandHandler[C],
	command C,
	confirmation string,
) error {
	opts := []observable.CommandOption[C]{observable.WithCommandLogging[C](a.commandLogger)}

	if a.providers != nil {
		opts = append(opts,
			observable.WithCommandMetrics[C](a.providers.MetricsCollector()),
			observable.WithCommandTracing[C](a.providers.TracingCollector()),
		)
	}

	wrapper, err := observable.NewCommandWrapper(handler, opts...)
	if err != nil {
		return err
	}

	result, err := wrapper.Handle(ctx, command)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, confirmation+"\n", result.Subject)

	return err
}

func (a *application) listBooks(ctx context.Context) error {
	result, err := listbooks.NewQueryHandler(a.library).Handle(ctx, listbooks.BuildQuery())
	if err != nil {
		return err
	}

	if result.Count == 0 {
		_, err = fmt.Fprintln(a.out, "No books in the catalog.")
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tTITLE\tAUTHOR\tAVAILABLE\tSTATUS\tNEXT DUE")

	for _, row := range result.Books {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%d/%d\t%s\t%s\n",
			row.Position, row.Title, row.Author, row.Available, row.TotalCopies, row.Status, dash(row.NextReturnDate))
	}

	return w.Flush()
}

func (a *application) listLoans(ctx context.Context, personIndex int, now time.Time) error {
	result, err := loansbyperson.NewQueryHandler(a.library).Handle(ctx, loansbyperson.BuildQuery(personIndex, now))
	if err != nil {
		return err
	}

	if result.Count == 0 {
		_, err = fmt.Fprintf(a.out, "%s has no books on loan.\n", result.Name)
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "Books loaned to %s (%d overdue):\n", result.Name, result.OverdueCount)

	for _, loan := range result.Loans {
		overdue := ""
		if loan.Overdue {
			overdue = "OVERDUE"
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", loan.Title, loan.Author, loan.ReturnDate, overdue)
	}

	return w.Flush()
}

// close reports what the in-process observability recorded and shuts it down.
func (a *application) close(ctx context.Context) error {
	if a.providers == nil {
		return nil
	}

	resourceMetrics, err := a.providers.CollectMetrics(ctx)
	if err == nil {
		names := make([]string, 0)
		for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
			for _, m := range scopeMetrics.Metrics {
				names = append(names, m.Name)
			}
		}

		a.logger.Debug("observability summary", "metrics", strings.Join(names, ","))
	}

	return errors.Join(err, a.providers.Shutdown(ctx))
}

func intArgs(params []string, want int) ([]int, error) {
	if len(params) != want {
		return nil, fmt.Errorf("%w: expected %d, got %d", errWrongArguments, want, len(params))
	}

	ints := make([]int, 0, want)

	for _, param := range params {
		n, err := strconv.Atoi(param)
		if err != nil {
			return nil, errNotANumber
		}

		ints = append(ints, n)
	}

	return ints, nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
