package handler_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passgen-go/internal/handler"
)

func TestRouter_Dispatch(t *testing.T) {
	var called string
	var gotArgs []string
	record := func(name string) handler.CommandFunc {
		return func(args []string) error {
			called, gotArgs = name, args
			return nil
		}
	}

	r := handler.NewRouter("generate")
	r.Handle("generate", record("generate"))
	r.Handle("analyze", record("analyze"))

	tests := []struct {
		name     string
		args     []string
		wantCmd  string
		wantArgs []string
	}{
		{"no_args", nil, "generate", nil},
		{"flags_only", []string{"-l", "20"}, "generate", []string{"-l", "20"}},
		{"explicit", []string{"generate", "-u"}, "generate", []string{"-u"}},
		{"other_command", []string{"analyze", "secret"}, "analyze", []string{"secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called, gotArgs = "", nil
			require.NoError(t, r.Dispatch(tt.args))
			assert.Equal(t, tt.wantCmd, called)
			assert.Equal(t, len(tt.wantArgs), len(gotArgs))
			for i := range tt.wantArgs {
				assert.Equal(t, tt.wantArgs[i], gotArgs[i])
			}
		})
	}
}

func TestRouter_UnknownCommand(t *testing.T) {
	r := handler.NewRouter("generate")
	r.Handle("generate", func([]string) error { return nil })

	err := r.Dispatch([]string{"explode"})
	assert.ErrorIs(t, err, handler.ErrUsage)
	assert.Contains(t, err.Error(), `"explode"`)
}

func TestRouter_MiddlewareOrder(t *testing.T) {
	var trace []string
	tag := func(label string) handler.Middleware {
		return func(name string, next handler.CommandFunc) handler.CommandFunc {
			return func(args []string) error {
				trace = append(trace, label+":"+name)
				return next(args)
			}
		}
	}

	r := handler.NewRouter("generate")
	r.Use(tag("outer"))
	r.Use(tag("inner"))
	r.Handle("generate", func([]string) error {
		trace = append(trace, "run")
		return nil
	})

	require.NoError(t, r.Dispatch(nil))
	assert.Equal(t, []string{"outer:generate", "inner:generate", "run"}, trace)
}

func TestRouter_Usage(t *testing.T) {
	r := handler.NewRouter("generate")
	r.Handle("verify", func([]string) error { return nil })
	r.Handle("generate", func([]string) error { return nil })

	var buf bytes.Buffer
	r.Usage(&buf, "passgen")

	out := buf.String()
	assert.Contains(t, out, "Usage: passgen [command] [flags]")
	assert.Contains(t, out, "  generate (default)\n  verify\n")
	assert.Equal(t, []string{"generate", "verify"}, r.Commands())
}
