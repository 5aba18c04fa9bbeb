package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/scorta/magazzino/cmd"
)

func main() {
	// Shell completion only: Complete returns immediately in a normal run.
	completion().Complete("mgz")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command tree for shell completion.
func completion() *complete.Command {
	categories := predict.Set{"Cibo", "Bevande"}
	movement := map[string]complete.Predictor{
		"c": categories,
		"p": predict.Nothing,
		"q": predict.Nothing,
		"d": predict.Nothing,
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"magazzino": predict.Dirs("*"),
		},
		Sub: map[string]*complete.Command{
			"load":   {Flags: movement},
			"unload": {Flags: movement},
			"adjust": {Flags: map[string]complete.Predictor{
				"c":  categories,
				"p":  predict.Nothing,
				"by": predict.Nothing,
			}},
			"delete": {Flags: map[string]complete.Predictor{
				"c": categories,
				"p": predict.Nothing,
			}},
			"list": {Flags: map[string]complete.Predictor{
				"s": predict.Nothing,
			}},
			"log": {Flags: map[string]complete.Predictor{
				"c":    categories,
				"t":    predict.Set{"load", "unload"},
				"head": predict.Nothing,
				"tail": predict.Nothing,
			}},
			"export": {Flags: map[string]complete.Predictor{
				"what": predict.Set{"stock", "movements", "all"},
				"o":    predict.Files("*.json"),
			}},
			"topic": {Args: predict.Set{"readme", "getting-started", "movements", "data-format", "*"}},
		},
	}
}
