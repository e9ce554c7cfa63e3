package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Behyna/sms-services/smsactivate/internal/config"
	"github.com/Behyna/sms-services/smsactivate/internal/service"
	"github.com/Behyna/sms-services/smsactivate/pkg/httpclient"
	"github.com/Behyna/sms-services/smsactivate/pkg/smsactivate"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const usage = `Usage: smsactivate [flags] <command>

Commands:
  balance         account balance
  cashback        account balance including cashback
  number          allocate a number (--service, --country, --operator, --max-price, --v2)
  status          activation status (--id, --v2)
  set-status      change activation status (--id, --action ready|retry|complete|cancel)
  countries       list countries
  services        list services (--country, --lang)
  operators       list operators (--country)
  prices          list prices (--service, --country)
  active          list active activations
  history         activation history (--start, --end, --offset, --limit)
  top-countries   top countries for a service (--service, --free-price)

Flags:
`

var errUsage = errors.New("usage")

type options struct {
	configPath string

	service   string
	country   string
	operators []string
	maxPrice  float64
	v2        bool
	id        int64
	action    string
	lang      string
	start     int64
	end       int64
	offset    int
	limit     int
	freePrice bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	v := viper.New()
	opts := options{}

	fs := pflag.NewFlagSet("smsactivate", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.configPath, "config", config.DefaultPath, "directory containing config.yml")
	fs.String("api-key", "", "provider API key")
	fs.String("base-url", "", "provider endpoint URL")
	fs.Duration("timeout", 0, "provider request timeout")
	fs.String("ref", "", "referral id sent with number requests")
	fs.String("log-level", "", "log level (debug, info, warn, error)")

	fs.StringVar(&opts.service, "service", "", "service code")
	fs.StringVar(&opts.country, "country", "", "country id")
	fs.StringSliceVar(&opts.operators, "operator", nil, "operator names")
	fs.Float64Var(&opts.maxPrice, "max-price", 0, "maximum price for a number")
	fs.BoolVar(&opts.v2, "v2", false, "use the JSON variant of number/status")
	fs.Int64Var(&opts.id, "id", 0, "activation id")
	fs.StringVar(&opts.action, "action", "", "status action")
	fs.StringVar(&opts.lang, "lang", "", "language for service names")
	fs.Int64Var(&opts.start, "start", 0, "history start (unix seconds)")
	fs.Int64Var(&opts.end, "end", 0, "history end (unix seconds)")
	fs.IntVar(&opts.offset, "offset", 0, "history offset")
	fs.IntVar(&opts.limit, "limit", 0, "history limit")
	fs.BoolVar(&opts.freePrice, "free-price", false, "include free-price offers")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	for key, flag := range map[string]string{
		"provider.api_key":  "api-key",
		"provider.base_url": "base-url",
		"provider.timeout":  "timeout",
		"provider.ref":      "ref",
		"log.level":         "log-level",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}

	cfg, err := config.LoadFrom(v, opts.configPath)
	if err != nil {
		return err
	}

	logger, err := cfg.Log.Build()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	client := smsactivate.NewClient(cfg.Provider, httpclient.NewHTTPClient(cfg.Provider.Timeout))
	svc := service.NewActivationService(client, logger, nil)

	result, err := execute(ctx, svc, fs.Arg(0), opts)
	if err != nil {
		if errors.Is(err, errUsage) {
			fs.Usage()
		}
		return err
	}

	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func execute(ctx context.Context, svc service.ActivationService, command string, opts options) (any, error) {
	switch command {
	case "balance":
		balance, err := svc.GetBalance(ctx)
		return map[string]float64{"balance": balance}, err
	case "cashback":
		balance, err := svc.GetBalanceAndCashBack(ctx)
		return map[string]float64{"balance": balance}, err
	case "number":
		if opts.service == "" {
			return nil, fmt.Errorf("--service is required: %w", errUsage)
		}
		request := smsactivate.NumberRequest{
			Service:  opts.service,
			Country:  opts.country,
			Operator: opts.operators,
			MaxPrice: opts.maxPrice,
		}
		if opts.v2 {
			return svc.GetNumberV2(ctx, request)
		}
		return svc.GetNumber(ctx, request)
	case "status":
		if opts.id <= 0 {
			return nil, fmt.Errorf("--id is required: %w", errUsage)
		}
		if opts.v2 {
			return svc.GetStatusV2(ctx, opts.id)
		}
		return svc.GetStatus(ctx, opts.id)
	case "set-status":
		if opts.id <= 0 {
			return nil, fmt.Errorf("--id is required: %w", errUsage)
		}
		action, err := smsactivate.ParseAction(opts.action)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, errUsage)
		}
		result, err := svc.SetStatus(ctx, opts.id, action)
		return map[string]any{"activation_id": opts.id, "result": result}, err
	case "countries":
		return svc.GetCountries(ctx)
	case "services":
		return svc.GetServicesList(ctx, smsactivate.ServicesRequest{Country: opts.country, Lang: opts.lang})
	case "operators":
		return svc.GetOperators(ctx, opts.country)
	case "prices":
		return svc.GetPrices(ctx, smsactivate.PricesRequest{Service: opts.service, Country: opts.country})
	case "active":
		return svc.GetActiveActivations(ctx)
	case "history":
		return svc.GetHistory(ctx, smsactivate.HistoryRequest{
			Start:  opts.start,
			End:    opts.end,
			Offset: opts.offset,
			Limit:  opts.limit,
		})
	case "top-countries":
		return svc.GetTopCountriesByService(ctx, smsactivate.TopCountriesRequest{
			Service:   opts.service,
			FreePrice: opts.freePrice,
		})
	default:
		return nil, fmt.Errorf("unknown command %q: %w", command, errUsage)
	}
}
