package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/mjansen/vavoping/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// a .env file is handy outside CI, a missing one is not an error.
	if err := godotenv.Load(); err == nil {
		log.Println("loaded configuration from .env")
	}

	// shell completion, a no-op unless invoked by the shell.
	spec := &complete.Command{
		Sub: map[string]*complete.Command{
			"notify": {Flags: map[string]complete.Predictor{
				"dry-run":  predict.Nothing,
				"raw":      predict.Nothing,
				"currency": predict.Set{"EUR", "USD"},
				"insights": predict.Nothing,
			}},
			"balances": {Flags: map[string]complete.Predictor{
				"raw":      predict.Nothing,
				"currency": predict.Set{"EUR", "USD"},
			}},
			"topic": {Args: predict.Set{"readme", "configuration", "message"}},
		},
	}
	spec.Complete("vp")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(subcommands.HelpCommand(), "")
	commander.Register(subcommands.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
