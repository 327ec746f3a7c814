package handler

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrUsage marks errors caused by bad command-line input.
var ErrUsage = errors.New("usage error")

// CommandFunc runs a subcommand with the arguments that follow its name.
type CommandFunc func(args []string) error

// Middleware wraps a named command.
type Middleware func(name string, next CommandFunc) CommandFunc

// Router dispatches command-line arguments to subcommands.
type Router struct {
	fallback    string
	routes      map[string]CommandFunc
	middlewares []Middleware
}

// NewRouter creates a Router that runs fallback when the first argument is
// not a known command name.
func NewRouter(fallback string) *Router {
	return &Router{
		fallback: fallback,
		routes:   make(map[string]CommandFunc),
	}
}

// Use appends middleware applied to every command registered afterwards.
func (r *Router) Use(mw Middleware) {
	r.middlewares = append(r.middlewares, mw)
}

// Handle registers fn under name.
func (r *Router) Handle(name string, fn CommandFunc) {
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		fn = r.middlewares[i](name, fn)
	}
	r.routes[name] = fn
}

// Dispatch picks the command named by args[0], or the fallback command when
// args is empty or starts with a flag.
func (r *Router) Dispatch(args []string) error {
	name := r.fallback
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		name, args = args[0], args[1:]
	}

	fn, ok := r.routes[name]
	if !ok {
		return fmt.Errorf("%w: unknown command %q (available: %s)", ErrUsage, name, strings.Join(r.Commands(), ", "))
	}
	return fn(args)
}

// Commands returns the registered command names, sorted.
func (r *Router) Commands() []string {
	names := make([]string, 0, len(r.routes))
	for name := range r.routes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Usage writes the list of commands to w.
func (r *Router) Usage(w io.Writer, program string) {
	fmt.Fprintf(w, "Usage: %s [command] [flags]\n\nCommands:\n", program)
	for _, name := range r.Commands() {
		marker := ""
		if name == r.fallback {
			marker = " (default)"
		}
		fmt.Fprintf(w, "  %s%s\n", name, marker)
	}
	fmt.Fprintf(w, "\nRun '%s <command> -h' for the flags of a command.\n", program)
}
