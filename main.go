package main

import (
	"fmt"
	"os"
	"time"

	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/logger"
	"github.com/MixinNetwork/rational/rpc"
	"github.com/MixinNetwork/rational/storage"
	"github.com/urfave/cli/v2"
)

func main() {
	defaultRPC := os.Getenv("RATIONAL_RPC")
	if defaultRPC == "" {
		defaultRPC = fmt.Sprintf("http://127.0.0.1:%d", config.DefaultRPCPort)
	}

	app := cli.NewApp()
	app.Name = "rational"
	app.Usage = "Exact rational number arithmetic with a JSON-RPC daemon."
	app.Version = config.BuildVersion
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "node",
			Aliases: []string{"n"},
			Value:   defaultRPC,
			Usage:   "the RPC endpoint, and the default value is read from environment variable RATIONAL_RPC",
		},
		&cli.BoolFlag{
			Name:  "time",
			Value: false,
			Usage: "print the runtime",
		},
	}
	app.EnableBashCompletion = true
	app.Commands = []*cli.Command{
		{
			Name:    "daemon",
			Aliases: []string{"d"},
			Usage:   "Start the rational RPC daemon",
			Action:  daemonCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "config",
					Aliases: []string{"c"},
					Usage:   "the TOML configuration file",
				},
				&cli.StringFlag{
					Name:  "dir",
					Usage: "the data directory, overrides node.data-dir",
				},
				&cli.IntFlag{
					Name:    "log",
					Aliases: []string{"l"},
					Value:   logger.INFO,
					Usage:   "the log level",
				},
				&cli.StringFlag{
					Name:  "filter",
					Usage: "the RE2 regex pattern to filter log",
				},
			},
		},
		{
			Name:      "eval",
			Usage:     "Evaluate an operation locally, one of add sub mul div neg cmp equal",
			ArgsUsage: "OP A [B]",
			Action:    evalCmd,
		},
		{
			Name:      "canonical",
			Usage:     "Print the canonical form of a rational",
			ArgsUsage: "RATIONAL",
			Action:    canonicalCmd,
		},
		{
			Name:      "decimal",
			Usage:     "Print a rational as a rounded decimal",
			ArgsUsage: "RATIONAL",
			Action:    decimalCmd,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "places",
					Aliases: []string{"p"},
					Value:   8,
					Usage:   "the decimal places",
				},
			},
		},
		{
			Name:      "fromdecimal",
			Usage:     "Convert a decimal literal to the exact rational",
			ArgsUsage: "DECIMAL",
			Action:    fromDecimalCmd,
		},
		{
			Name:      "rpc",
			Usage:     "Call a method on the rational daemon",
			ArgsUsage: "METHOD [PARAMS...]",
			Action:    rpcCmd,
		},
		{
			Name:      "set",
			Usage:     "Store a named rational on the daemon",
			ArgsUsage: "NAME RATIONAL",
			Action:    setCmd,
		},
		{
			Name:      "get",
			Usage:     "Read a named rational from the daemon",
			ArgsUsage: "NAME",
			Action:    getCmd,
		},
		{
			Name:   "list",
			Usage:  "List the named rationals on the daemon",
			Action: listCmd,
		},
	}

	start := time.Now()
	app.After = func(c *cli.Context) error {
		if c.Bool("time") {
			fmt.Fprintf(os.Stderr, "runtime %s\n", time.Since(start))
		}
		return nil
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func daemonCmd(c *cli.Context) error {
	custom := config.Default()
	if f := c.String("config"); f != "" {
		cc, err := config.Initialize(f)
		if err != nil {
			return err
		}
		custom = cc
	}
	if c.IsSet("log") {
		custom.Log.Level = c.Int("log")
	}
	if c.IsSet("filter") {
		custom.Log.Filter = c.String("filter")
	}
	err := logger.Setup(custom.Log.Level, custom.Log.Filter, custom.Log.Limiter)
	if err != nil {
		return err
	}

	dir := custom.Node.DataDir
	if d := c.String("dir"); d != "" {
		dir = d
	}
	if dir == "" && !custom.Storage.InMemory {
		return fmt.Errorf("no data directory, set node.data-dir or --dir")
	}
	store, err := storage.NewBadgerStore(custom, dir)
	if err != nil {
		return err
	}
	defer store.Close()

	err = recordBoot(store)
	if err != nil {
		return err
	}
	return rpc.StartHTTP(custom, store, custom.RPC.Port)
}

func recordBoot(store storage.Store) error {
	var boot rpc.BootState
	_, err := store.StateGet(rpc.BootStateKey, &boot)
	if err != nil {
		return err
	}
	boot.Version = config.BuildVersion
	boot.Count += 1
	boot.Timestamp = time.Now().UnixNano()
	logger.Printf("BOOT %s #%d\n", boot.Version, boot.Count)
	return store.StateSet(rpc.BootStateKey, boot)
}
