package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nogoegst/byteqr"
	"github.com/sirupsen/logrus"
	"github.com/unkaktus/qrize"
	"github.com/unkaktus/qrize/util"
)

// environment is everything run needs from the process.
type environment struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	interactive bool
	lookupEnv   func(string) (string, bool)
}

func main() {
	os.Exit(run(os.Args[1:], environment{
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		interactive: util.IsTerminal(os.Stdin),
		lookupEnv:   os.LookupEnv,
	}))
}

func run(args []string, env environment) int {
	log := logrus.New()
	log.SetOutput(env.stderr)
	log.SetLevel(logrus.WarnLevel)

	p := qrize.DefaultParameters()
	configPath := scanConfigPath(args)
	if configPath != "" {
		if err := p.LoadFile(configPath); err != nil {
			fmt.Fprintf(env.stderr, "%v\n", err)
			return 1
		}
	}
	if err := p.ApplyEnv(env.lookupEnv); err != nil {
		fmt.Fprintf(env.stderr, "Invalid environment: %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet("qrize", flag.ContinueOnError)
	fs.SetOutput(env.stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: qrize [flags] [data]\n\n"+
			"Generate a QR code image from text or a URL.\n"+
			"Use '-' as data to read from stdin.\n\n")
		fs.PrintDefaults()
	}
	fs.String("config", configPath,
		"Read defaults from YAML config file")
	fs.StringVar(&p.Output, "o", p.Output,
		"Output filename (shorthand for -output)")
	fs.StringVar(&p.Output, "output", p.Output,
		"Output filename")
	fs.IntVar(&p.BoxSize, "box-size", p.BoxSize,
		"Size of each QR box in pixels")
	fs.IntVar(&p.Border, "border", p.Border,
		"Border size (boxes)")
	fs.StringVar(&p.FillColor, "fill-color", p.FillColor,
		"Fill color for QR code")
	fs.StringVar(&p.BackColor, "back-color", p.BackColor,
		"Background color")
	fs.Var(&p.Level, "error-correction",
		"Error correction level: L, M, Q or H")
	var qrFlag = fs.Bool("qr", false,
		"Print QR code to stdout as well")
	var debugFlag = fs.Bool("debug", false,
		"Show what's happening")

	positional, err := parseArgs(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}
	if len(positional) > 1 {
		fmt.Fprintf(env.stderr, "unrecognized arguments: %s\n", strings.Join(positional[1:], " "))
		fs.Usage()
		return 2
	}
	if *debugFlag {
		log.SetLevel(logrus.DebugLevel)
	}
	if configPath != "" {
		log.WithField("path", configPath).Debug("loaded config")
	}

	var arg string
	if len(positional) == 1 {
		arg = positional[0]
	}
	r := &qrize.Resolver{
		Stdin:       env.stdin,
		Stdout:      env.stdout,
		Interactive: env.interactive,
	}
	data, source, err := r.Resolve(arg, &p)
	if errors.Is(err, qrize.ErrNoData) {
		fmt.Fprintln(env.stdout, "No data provided. Exiting.")
		return 1
	}
	if err != nil {
		fmt.Fprintf(env.stdout, "Failed to read input: %v\n", err)
		return 1
	}
	log.WithFields(logrus.Fields{
		"source": source,
		"bytes":  len(data),
		"output": p.Output,
	}).Debug("resolved input")

	if *qrFlag {
		if err := byteqr.Write(env.stdout, data, p.Level.QR(), nil, nil); err != nil {
			fmt.Fprintf(env.stdout, "Failed to generate QR code: %v\n", err)
			return 1
		}
	}

	output, err := qrize.Qrize(data, p)
	if err != nil {
		log.WithError(err).Debug("render failed")
		fmt.Fprintf(env.stdout, "Failed to generate QR code: %v\n", err)
		return 1
	}
	log.WithFields(logrus.Fields{
		"path":  output,
		"level": p.Level,
	}).Debug("saved")
	fmt.Fprintf(env.stdout, "QR code saved as %s\n", output)
	return 0
}
