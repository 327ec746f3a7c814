package handler

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/estimate"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

var (
	labelColor    = color.New(color.FgCyan)
	passwordColor = color.New(color.FgGreen, color.Bold)
	warnColor     = color.New(color.FgYellow)
	matchColor    = color.New(color.FgGreen)
	mismatchColor = color.New(color.FgRed)
)

// GeneratorHandler handles the generate, analyze and verify commands.
type GeneratorHandler struct {
	service *service.GeneratorService
	cfg     config.Config
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
}

// NewGeneratorHandler creates a new GeneratorHandler. cfg supplies flag
// defaults; in is read when a password is not given as an argument.
func NewGeneratorHandler(svc *service.GeneratorService, cfg config.Config, in io.Reader, out, errOut io.Writer) *GeneratorHandler {
	return &GeneratorHandler{
		service: svc,
		cfg:     cfg,
		in:      in,
		out:     out,
		errOut:  errOut,
	}
}

// HandleGenerate handles `passgen generate`.
func (h *GeneratorHandler) HandleGenerate(args []string) error {
	fs := h.newFlagSet("generate", "[flags]")

	var req model.GenerateRequest
	fs.IntVar(&req.Length, "length", h.cfg.Length, fmt.Sprintf("password length (%d-%d)", crypto.MinLength, crypto.MaxLength))
	fs.IntVar(&req.Length, "l", h.cfg.Length, "password length (shorthand)")
	fs.BoolVar(&req.Uppercase, "uppercase", h.cfg.Uppercase, "include uppercase letters (A-Z)")
	fs.BoolVar(&req.Uppercase, "u", h.cfg.Uppercase, "include uppercase letters (shorthand)")
	fs.BoolVar(&req.Digits, "numbers", h.cfg.Digits, "include digits (0-9)")
	fs.BoolVar(&req.Digits, "n", h.cfg.Digits, "include digits (shorthand)")
	fs.BoolVar(&req.Special, "special", h.cfg.Special, "include special characters ("+crypto.Special.Chars()+")")
	fs.BoolVar(&req.Special, "s", h.cfg.Special, "include special characters (shorthand)")
	fs.BoolVar(&req.Hash, "hash", false, "also print an Argon2id hash of the password")
	asJSON := fs.Bool("json", false, "print the result as JSON")
	quiet := fs.Bool("quiet", h.cfg.Quiet, "do not print the banner")
	fs.BoolVar(quiet, "q", h.cfg.Quiet, "do not print the banner (shorthand)")

	if err := h.parse(fs, args, 0); err != nil {
		return err
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		return err
	}

	if *asJSON {
		return writeJSON(h.out, resp)
	}

	if !*quiet {
		printBanner(h.out)
	}
	for _, w := range resp.Warnings {
		warnColor.Fprintf(h.errOut, "Warning: %s\n", w)
	}

	labelColor.Fprint(h.out, "Generated Password: ")
	passwordColor.Fprintln(h.out, resp.Password)
	h.printEstimate(resp.CharsetSize, resp.Estimate)
	if resp.Hash != "" {
		labelColor.Fprint(h.out, "Argon2id hash: ")
		fmt.Fprintln(h.out, resp.Hash)
	}
	return nil
}

// HandleAnalyze handles `passgen analyze [password]`.
func (h *GeneratorHandler) HandleAnalyze(args []string) error {
	fs := h.newFlagSet("analyze", "[flags] [password]")
	asJSON := fs.Bool("json", false, "print the result as JSON")

	if err := h.parse(fs, args, 1); err != nil {
		return err
	}
	password, err := h.passwordArg(fs)
	if err != nil {
		return err
	}

	resp, err := h.service.Analyze(model.AnalyzeRequest{Password: password})
	if err != nil {
		if isValidationError(err) {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		return err
	}

	if *asJSON {
		return writeJSON(h.out, resp)
	}

	labelColor.Fprint(h.out, "Length: ")
	fmt.Fprintln(h.out, resp.Length)
	labelColor.Fprint(h.out, "Character classes: ")
	classes := strings.Join(resp.Categories, ", ")
	if resp.OtherChars > 0 {
		if classes != "" {
			classes += ", "
		}
		classes += fmt.Sprintf("%d other", resp.OtherChars)
	}
	fmt.Fprintln(h.out, classes)
	h.printEstimate(resp.CharsetSize, resp.Estimate)
	return nil
}

// HandleVerify handles `passgen verify -hash <phc> [password]`.
func (h *GeneratorHandler) HandleVerify(args []string) error {
	fs := h.newFlagSet("verify", "-hash <phc> [password]")
	hash := fs.String("hash", "", "Argon2id PHC string to check against")
	asJSON := fs.Bool("json", false, "print the result as JSON")

	if err := h.parse(fs, args, 1); err != nil {
		return err
	}
	password, err := h.passwordArg(fs)
	if err != nil {
		return err
	}

	resp, err := h.service.Verify(model.VerifyRequest{Password: password, Hash: *hash})
	if err != nil {
		if isValidationError(err) {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		return err
	}

	if *asJSON {
		return writeJSON(h.out, resp)
	}
	if resp.Match {
		matchColor.Fprintln(h.out, "Password matches hash")
	} else {
		mismatchColor.Fprintln(h.out, "Password does not match hash")
	}
	return nil
}

func (h *GeneratorHandler) printEstimate(charsetSize int, e model.CrackEstimate) {
	labelColor.Fprint(h.out, "Charset size: ")
	fmt.Fprintln(h.out, charsetSize)
	labelColor.Fprint(h.out, "Keyspace: ")
	fmt.Fprintln(h.out, estimate.FormatCount(e.Keyspace))
	labelColor.Fprint(h.out, "Estimated time to crack: ")
	fmt.Fprintln(h.out, e.Human)
	fmt.Fprintf(h.out, "  (brute force at %d guesses/second, bcrypt speed, no dictionary attack)\n", e.AttackRate)
}

func (h *GeneratorHandler) newFlagSet(name, synopsis string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(h.errOut)
	fs.Usage = func() {
		fmt.Fprintf(h.errOut, "Usage: passgen %s %s\n", name, synopsis)
		fs.PrintDefaults()
	}
	return fs
}

// parse parses args and allows at most maxArgs positional arguments.
// flag.ErrHelp is passed through unwrapped.
func (h *GeneratorHandler) parse(fs *flag.FlagSet, args []string, maxArgs int) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > maxArgs {
		return fmt.Errorf("%w: unexpected arguments %q", ErrUsage, fs.Args()[maxArgs:])
	}
	return nil
}

// passwordArg returns the positional password, or the first line of input
// so the password can be piped in instead of appearing in shell history.
func (h *GeneratorHandler) passwordArg(fs *flag.FlagSet) (string, error) {
	if fs.NArg() == 1 {
		return fs.Arg(0), nil
	}
	if h.in == nil {
		return "", nil
	}

	// A UTF-8 character is at most 4 bytes; the extra byte lets Analyze see
	// that an over-long line was cut.
	limit := int64(4*service.MaxAnalyzeLength + 1)
	line, err := bufio.NewReader(io.LimitReader(h.in, limit)).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func isValidationError(err error) bool {
	return errors.Is(err, service.ErrPasswordRequired) ||
		errors.Is(err, service.ErrHashRequired) ||
		errors.Is(err, service.ErrPasswordTooLong) ||
		errors.Is(err, crypto.ErrInvalidHashFormat) ||
		errors.Is(err, crypto.ErrIncompatibleVersion)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
