package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/benzea/skein-altivec/internal/report"
	"github.com/benzea/skein-altivec/internal/vector"
	"github.com/benzea/skein-altivec/internal/verify"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("skeinvec: ")

	var configPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/skeinvec/config.yml)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("skeinvec - Skein test vector tool\n")
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Built:   %s\n", buildTime)
		return
	}

	if err := run(flag.Args(), configPath, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run dispatches the command line. Config is loaded only by verify:
// conversion has no flags, environment variables or config file, so it
// must work whatever state those are in.
func run(args []string, configPath string, in io.Reader, out io.Writer) error {
	switch {
	case len(args) == 0:
		// Default mode: rewrite vectors on stdin as TN(...) literals.
		return vector.Convert(in, out)
	case args[0] == "verify":
		if len(args) < 2 {
			return errors.New("verify: no vector files given")
		}
		cfg, err := loadConfig(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return runVerify(cfg, args[1:], out)
	default:
		return fmt.Errorf("unknown command %q (expected no arguments, or \"verify FILE...\")", args[0])
	}
}

func runVerify(cfg appConfig, paths []string, out io.Writer) error {
	reports, err := verify.Files(paths, verify.Options{
		Algorithm:   cfg.Algorithm,
		Jobs:        cfg.Jobs,
		MaxLineSize: cfg.MaxLineSize,
	})
	if err != nil {
		return err
	}

	r, err := report.New(out, cfg.ReportFormat, !cfg.NoColor)
	if err != nil {
		return err
	}
	if err := r.Render(reports); err != nil {
		return err
	}

	for _, rep := range reports {
		if !rep.OK() {
			return errors.New("verification failed")
		}
	}
	return nil
}
