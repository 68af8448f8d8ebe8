// Package chance parses chance command flags and prints generated values.
package chance

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	chancelib "github.com/louisbranch/chance"
	"github.com/louisbranch/chance/internal/catalog"
	"github.com/louisbranch/chance/internal/luabind"
	entrypoint "github.com/louisbranch/chance/internal/platform/cmd"
	apperrors "github.com/louisbranch/chance/internal/platform/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"
)

// Config holds chance command configuration.
type Config struct {
	Seed        string `env:"CHANCE_SEED"`
	Count       int    `env:"CHANCE_COUNT" envDefault:"1"`
	Unique      bool   `env:"CHANCE_UNIQUE"`
	MaxAttempts int    `env:"CHANCE_MAX_ATTEMPTS"`
	Locale      string `env:"CHANCE_LOCALE" envDefault:"en-US"`
	Verbose     bool   `env:"CHANCE_VERBOSE"`
	List        bool
	Lua         string
	Generator   string
}

// ParseConfig parses environment and flags into a Config. The first
// positional argument names the generator.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Seed, "seed", cfg.Seed, "Seed for reproducible output (default: random)")
	fs.IntVar(&cfg.Count, "n", cfg.Count, "Number of values to generate")
	fs.BoolVar(&cfg.Unique, "unique", cfg.Unique, "Only print distinct values")
	fs.IntVar(&cfg.MaxAttempts, "max-attempts", cfg.MaxAttempts, "Generator calls allowed for -unique (0 = default)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Locale for error messages")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Verbose logging")
	fs.BoolVar(&cfg.List, "list", false, "List generators and data sets")
	fs.StringVar(&cfg.Lua, "lua", "", "Lua chunk to run against the chance table")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		cfg.Generator = fs.Arg(0)
	}
	if err := cfg.validate(fs.NArg()); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (cfg Config) validate(positional int) error {
	var result *multierror.Error
	if cfg.Count < 1 {
		result = multierror.Append(result, invalidOption("n", "must be at least 1"))
	}
	if cfg.MaxAttempts < 0 {
		result = multierror.Append(result, invalidOption("max-attempts", "must not be negative"))
	}
	if positional > 1 {
		result = multierror.Append(result, invalidOption("generator", "only one generator may be given"))
	}
	if cfg.Lua != "" && cfg.Generator != "" {
		result = multierror.Append(result, invalidOption("lua", "cannot be combined with a generator"))
	}
	if !cfg.List && cfg.Lua == "" && cfg.Generator == "" {
		result = multierror.Append(result, invalidOption("generator", "a generator name or -lua is required"))
	}
	return result.ErrorOrNil()
}

func invalidOption(option, reason string) error {
	return apperrors.WithMetadata(
		apperrors.CodeInvalidOption,
		fmt.Sprintf("invalid option %s: %s", option, reason),
		map[string]string{"Option": option, "Reason": reason},
	)
}

// Run generates values per cfg and prints one per line to out. Logs go to errOut.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	logger := entrypoint.NewLogger(errOut, cfg.Verbose)

	return entrypoint.RunWithLogger(ctx, entrypoint.ServiceChance, logger, func(ctx context.Context) error {
		c, err := newChance(cfg, logger)
		if err != nil {
			return err
		}

		if cfg.List {
			return list(out, c)
		}
		if cfg.Lua != "" {
			results, err := luabind.Eval(c, cfg.Lua)
			if err != nil {
				return err
			}
			return printValues(ctx, out, results)
		}

		values, err := generate(c, cfg)
		if err != nil {
			return err
		}
		return printValues(ctx, out, values)
	})
}

func newChance(cfg Config, logger zerolog.Logger) (*chancelib.Chance, error) {
	opts := []chancelib.Option{
		chancelib.WithLogger(logger),
		chancelib.WithMaxAttempts(cfg.MaxAttempts),
	}
	if cfg.Seed != "" {
		opts = append(opts, chancelib.WithSeed(cfg.Seed))
	}
	c, err := chancelib.New(opts...)
	if err != nil {
		return nil, err
	}
	logger.Debug().Uint64("seed", c.SeedValue()).Msg("replay with -seed")
	return c, nil
}

func generate(c *chancelib.Chance, cfg Config) ([]any, error) {
	if _, err := catalog.Lookup(cfg.Generator); err != nil {
		return nil, err
	}

	var genErr error
	next := func() any {
		v, err := c.Generate(cfg.Generator)
		if err != nil && genErr == nil {
			genErr = err
		}
		return v
	}

	if !cfg.Unique {
		values := chancelib.N(cfg.Count, next)
		return values, genErr
	}
	values, err := chancelib.UniqueBy(c, cfg.Count, next, formatValue)
	if genErr != nil {
		return nil, genErr
	}
	return values, err
}

func list(out io.Writer, c *chancelib.Chance) error {
	fmt.Fprintln(out, "Generators:")
	for _, name := range chancelib.Generators() {
		fmt.Fprintf(out, "  %s\n", name)
	}
	fmt.Fprintln(out, "\nData sets:")
	for _, name := range c.DataSets() {
		fmt.Fprintf(out, "  %s\n", name)
	}
	return nil
}

func printValues(ctx context.Context, out io.Writer, values []any) error {
	for _, v := range values {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, formatValue(v)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

// formatValue renders a generated value on a single line.
func formatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case []string:
		return strings.Join(value, " ")
	case []any:
		parts := make([]string, len(value))
		for i, item := range value {
			parts[i] = formatValue(item)
		}
		return strings.Join(parts, " ")
	case chancelib.DiceResult:
		return strconv.Itoa(value.Total)
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}
