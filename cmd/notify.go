package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mjansen/vavoping"
	"github.com/mjansen/vavoping/agent"
	"github.com/mjansen/vavoping/bitvavo"
	"github.com/mjansen/vavoping/renderer"
	"github.com/mjansen/vavoping/telegram"
)

// notifyCmd holds the flags for the 'notify' subcommand.
type notifyCmd struct {
	dryRun   bool
	raw      bool
	currency string
	insights bool
}

func (*notifyCmd) Name() string     { return "notify" }
func (*notifyCmd) Synopsis() string { return "fetch balances and send the portfolio summary to Telegram" }
func (*notifyCmd) Usage() string {
	return `vp notify [-dry-run] [-raw] [-currency <cur>] [-insights]

  Authenticates to the Bitvavo account, values every non-zero balance,
  and delivers the summary to the configured Telegram chat. Credentials
  are read from the environment, see 'vp topic configuration'.

  Intended to be run on a schedule by an external trigger (a CI job).
  Exits non-zero on any failure, no message is sent in that case.

Usage Examples:
# Preview the message on the terminal without sending anything.
$ vp notify -dry-run

`
}

func (c *notifyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.dryRun, "dry-run", false, "render the message to the terminal instead of sending it")
	f.BoolVar(&c.raw, "raw", false, "skip valuation, list raw balances only")
	f.StringVar(&c.currency, "currency", "EUR", "reporting currency, EUR or USD")
	f.BoolVar(&c.insights, "insights", false, "append an AI remark to the message (needs "+vavoping.EnvGeminiKey+")")
}

func (c *notifyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := vavoping.ConfigFromEnv()
	if err := cfg.RequireExchange(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	n := &vavoping.Notifier{
		Exchange: bitvavo.New(cfg.APIKey, cfg.APISecret),
		Render:   renderer.Message,
		Raw:      c.raw,
		Currency: c.currency,
	}

	if c.insights {
		if cfg.GeminiKey == "" {
			fmt.Fprintf(os.Stderr, "Warning: -insights needs %s, skipping commentary\n", vavoping.EnvGeminiKey)
		} else {
			n.Commentator = agent.New(cfg.GeminiKey)
		}
	}

	if c.dryRun {
		n.Messenger = terminalMessenger{}
	} else {
		if err := cfg.RequireTelegram(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		n.Messenger = telegram.New(cfg.BotToken, cfg.ChatID)
	}

	if err := n.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// terminalMessenger renders the message locally instead of delivering it.
type terminalMessenger struct{}

func (terminalMessenger) Send(_ context.Context, text string) error {
	printMarkdown(text)
	return nil
}
