package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	flag "github.com/spf13/pflag"
)

const usage = `Usage: openbump [-hav] "<image_file>" "<output_image>"
  image_file              - <required> path to the image file to bump
  output_image            - <optional> path to output the bumped file to (defaults to <image_file>_bumped.img)
  -a/--append image_file  - <required> if in append mode, the <image_file> is appended rather than <output_file> being generated
  -v/--verbose            - <optional> log padding decisions and describe the bumped image`

// defaultOutputPath derives "<name>_bumped<ext>" next to the input.
func defaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	base := filepath.Base(inputPath)
	dir, _ := filepath.Split(inputPath)

	newName := strings.TrimSuffix(base, ext) + "_bumped" + ext

	return filepath.Join(dir, newName)
}

func newLogger(out io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func run(args []string, stdout, stderr io.Writer) int {
	var appendMode bool
	var verbose bool
	var help bool

	flags := flag.NewFlagSet("openbump", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.BoolVarP(&help, "help", "h", false, "Show usage.")
	flags.BoolVarP(&appendMode, "append", "a", false, "Bump the image in place.")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log padding decisions and describe the bumped image.")

	err := flags.Parse(args)
	if err != nil {
		printError(stdout, err)
		fmt.Fprintln(stdout, usage)
		return 1
	}

	if help {
		fmt.Fprintln(stdout, usage)
		return 0
	}

	if flags.NArg() < 1 {
		fmt.Fprintln(stdout, usage)
		return 1
	}

	inputPath := flags.Arg(0)
	outputPath := inputPath
	if !appendMode {
		if flags.NArg() > 1 {
			outputPath = flags.Arg(1)
		} else {
			outputPath = defaultOutputPath(inputPath)
		}
	}

	fInfo, err := os.Stat(inputPath)
	if err != nil || !fInfo.Mode().IsRegular() {
		fmt.Fprintf(stdout, "file not found: %s\n", inputPath)
		return 1
	}

	return bumpImage(stdout, newLogger(stderr, verbose), inputPath, outputPath, verbose)
}

func main() {
	interactive := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	color.NoColor = !interactive

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
