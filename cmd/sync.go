package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"time"

	"cddns/internal/config"
	"cddns/internal/dns/providers"
	"cddns/internal/dns/services"
	"cddns/internal/httputil"
	"cddns/internal/ipresolve"
	"cddns/internal/output"
	"cddns/internal/services/auth"

	"github.com/charmbracelet/huh/spinner"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	providerName   = "cloudflare"
	defaultTimeout = 60 * time.Second
)

// syncOptions holds the resolved values of the root command's flags.
type syncOptions struct {
	token              string
	domain             string
	ipv6               bool
	proxy              bool
	debug              bool
	trace              bool
	timeout            time.Duration
	createOnFetchError bool
}

// envBindings maps flags to the environment variables that can set them.
var envBindings = []struct {
	flag string
	env  string
}{
	{"token", "CF_TOKEN"},
	{"domain", "CF_DOMAIN"},
	{"ipv6", "CF_IPV6"},
	{"proxy", "CF_PROXY"},
	{"debug", "CF_DEBUG"},
}

// newResolver builds the public IP resolver. Swapped out in tests.
var newResolver = func(client *http.Client) services.IPResolver {
	return ipresolve.New(client)
}

func bindSyncFlags(cmd *cobra.Command, opts *syncOptions) {
	f := cmd.Flags()
	f.StringVarP(&opts.token, "token", "t", "", "Cloudflare API token [env: CF_TOKEN]")
	f.StringVarP(&opts.domain, "domain", "d", "", "Record to update, fully qualified [env: CF_DOMAIN]")
	f.BoolVar(&opts.ipv6, "ipv6", false, "Use IPv6 (AAAA record) instead of IPv4 (A record) [env: CF_IPV6]")
	f.BoolVarP(&opts.proxy, "proxy", "p", false, "Enable Cloudflare proxy for new records [env: CF_PROXY]")
	f.BoolVar(&opts.debug, "debug", false, "Enable debug output [env: CF_DEBUG]")
	f.BoolVar(&opts.trace, "trace", false, "Log every HTTP request (implies --debug)")
	f.DurationVar(&opts.timeout, "timeout", defaultTimeout, "Abort the run after this long")
	f.BoolVar(&opts.createOnFetchError, "create-on-fetch-error", false, "Create a new record when the existing one cannot be fetched for any reason")

	_ = f.MarkHidden("trace")
}

func runSync(cmd *cobra.Command, opts *syncOptions) error {
	if err := loadDotEnv(); err != nil {
		return err
	}
	if err := applyEnv(cmd); err != nil {
		return err
	}
	if err := applyConfig(cmd); err != nil {
		return err
	}
	if opts.timeout <= 0 {
		return fmt.Errorf("invalid --timeout %s: must be greater than zero", opts.timeout)
	}

	logger := newLogger(cmd.OutOrStdout(), opts)

	token := opts.token
	if token == "" {
		token = storedToken(logger)
	}

	client := httputil.NewClient(&httputil.ClientConfig{
		UserAgent: "cddns/" + version,
		Logger:    logger.WithField("component", "http"),
	})

	provider, err := providers.Get(providerName, providers.FactoryConfig{
		Token:      token,
		HTTPClient: client,
		Logger:     logger.WithField("component", "provider"),
	})
	if err != nil {
		return err
	}

	syncer := services.New(provider, newResolver(client),
		services.WithLogger(logger.WithField("component", "syncer")),
		services.WithFallbackOnFetchError(opts.createOnFetchError),
	)

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()

	req := services.Request{
		Domain:  opts.domain,
		IPv6:    opts.ipv6,
		Proxied: opts.proxy,
	}

	var res *services.Result
	if !opts.debug && !opts.trace && isTerminal(cmd.ErrOrStderr()) {
		var runErr error
		spinErr := spinner.New().
			Title(fmt.Sprintf("Updating %s...", req.Domain)).
			Accessible(os.Getenv("ACCESSIBLE") != "").
			Output(cmd.ErrOrStderr()).
			Action(func() {
				res, runErr = syncer.Run(ctx, req)
			}).
			Run()
		if spinErr != nil {
			return spinErr
		}
		err = runErr
	} else {
		res, err = syncer.Run(ctx, req)
	}
	if err != nil {
		return err
	}

	output.Success(cmd.OutOrStdout(), res.Record.Name, res.Record.Content)
	return nil
}

// loadDotEnv reads .env from the working directory. Variables already in
// the environment are left untouched.
func loadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// applyEnv fills every flag not given on the command line from its
// environment variable.
func applyEnv(cmd *cobra.Command) error {
	for _, b := range envBindings {
		if cmd.Flags().Changed(b.flag) {
			continue
		}
		v := os.Getenv(b.env)
		if v == "" {
			continue
		}
		if err := cmd.Flags().Set(b.flag, v); err != nil {
			return fmt.Errorf("invalid value %q for %s: %w", v, b.env, err)
		}
	}
	return nil
}

// applyConfig fills record flags still unset from the persistent config.
func applyConfig(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	for _, spec := range config.Keys {
		if cmd.Flags().Changed(spec.Name) {
			continue
		}
		v := spec.Get(cfg)
		if v == "" {
			continue
		}
		if err := cmd.Flags().Set(spec.Name, v); err != nil {
			return fmt.Errorf("invalid config value for %s: %w", spec.Name, err)
		}
	}
	return nil
}

// storedToken returns the keychain token, or "" when none is available.
func storedToken(logger *logrus.Logger) string {
	token, err := auth.DefaultStore().GetToken(providerName)
	switch {
	case err == nil:
		logger.Debug("Using API token from the keychain")
		return token
	case errors.Is(err, auth.ErrTokenNotFound):
		return ""
	default:
		logger.WithError(err).Debug("Keychain unavailable")
		return ""
	}
}

func newLogger(w io.Writer, opts *syncOptions) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&output.Formatter{})

	switch {
	case opts.trace:
		logger.SetLevel(logrus.TraceLevel)
	case opts.debug:
		logger.SetLevel(logrus.DebugLevel)
	default:
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
