package session

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/golang-cz/devslog"
	conslog "github.com/phsym/console-slog"
	slogfmt "github.com/samber/slog-formatter"
)

// newHandler wraps a base slog.Handler with a field formatter that
// renders any value with a String method (such as http2.Token or
// ErrCode) as that string: the session adapts ghettovoice-gosip's
// log/log.go, which does the same thing for net.Conn/net.Listener.
var newHandler = slogfmt.NewFormatterHandler(
	slogfmt.FormatByType(func(tok tokenStringer) slog.Value {
		return slog.StringValue(tok.String())
	}),
)

// tokenStringer is satisfied by http2.Token through its String method;
// kept as a narrow interface here so this file does not need to import
// http2 just to format a log field.
type tokenStringer interface{ String() string }

var console = slog.New(newHandler(
	conslog.NewHandler(os.Stdout, &conslog.HandlerOptions{
		Level:      slog.LevelInfo,
		TimeFormat: time.RFC3339,
	}),
))

// Console returns an info-level logger readable on a terminal: one line
// per stream reset. Ignored headers are logged at debug level and so do
// not appear. A Conn uses it only when passed it explicitly.
func Console() *slog.Logger { return console }

var develop = slog.New(newHandler(
	devslog.NewHandler(os.Stdout, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{Level: slog.LevelDebug},
		SortKeys:       true,
		TimeFormat:     time.RFC3339,
	}),
))

// Develop returns a verbose logger useful while working on the
// validator itself, mirroring gosip's log.Develop().
func Develop() *slog.Logger { return develop }

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }
func (noopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h noopHandler) WithGroup(string) slog.Handler { return h }

var noop = slog.New(noopHandler{})

// Noop returns a logger that writes nothing, the default for Conn so
// that embedding this package never produces output a caller didn't
// ask for.
func Noop() *slog.Logger { return noop }
