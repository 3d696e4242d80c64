package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/tsawler/tabula"
	"golang.org/x/term"

	"github.com/stickball/presskit"
)

type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

func main() {
	var (
		lang      string
		output    string
		logo      string
		page      string
		inspect   string
		margin    float64
		landscape bool
		verbose   bool
		messages  multiFlag
	)

	flag.StringVar(&lang, "lang", "en", "Press kit locale")
	flag.StringVar(&output, "output", ".", "Output directory, or - for stdout")
	flag.StringVar(&logo, "logo", "", "Header logo path, URL or data URL")
	flag.StringVar(&page, "page", "a4", "Page size: a3, a4, a5, letter or legal")
	flag.StringVar(&inspect, "inspect", "", "Print the page count and text of a PDF and exit")
	flag.Float64Var(&margin, "margin", presskit.DefaultMargin, "Page margin in millimetres")
	flag.BoolVar(&landscape, "landscape", false, "Landscape pages")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	flag.Var(&messages, "messages", "Messages JSON file merged over the built-in catalog (repeatable)")
	flag.Parse()

	log.SetLevel(logLevel(verbose))

	if inspect != "" {
		if err := inspectFile(inspect); err != nil {
			fmt.Printf("Error inspecting %s: %v\n", inspect, err)
			os.Exit(1)
		}
		return
	}

	w, h, ok := presskit.PageSizeByName(page)
	if !ok {
		fmt.Printf("Error: unknown page size %q\n", page)
		flag.Usage()
		os.Exit(1)
	}

	opts := []presskit.Option{
		presskit.WithPageSize(w, h),
		presskit.WithMargin(margin),
		presskit.WithDebug(verbose),
		presskit.WithLogo(logo),
	}
	if landscape {
		opts = append(opts, presskit.WithPageOrientation(presskit.PageOrientationLandscape))
	}
	for _, m := range messages {
		opts = append(opts, presskit.WithMessagesFile(m))
	}
	o := presskit.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	gen := presskit.NewWithOptions(o)
	ctx := context.Background()

	if output == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Println("Error: refusing to write a PDF to a terminal")
			os.Exit(1)
		}
		if _, err := gen.GenerateLocale(ctx, lang, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating press kit: %v\n", err)
			os.Exit(1)
		}
		return
	}

	path, result, err := gen.GenerateToFile(ctx, lang, output)
	if err != nil {
		fmt.Printf("Error generating press kit: %v\n", err)
		os.Exit(1)
	}
	if verbose {
		fmt.Printf("Wrote %s (%d pages)\n", path, result.PageCount())
	} else {
		fmt.Println(path)
	}
}

// logLevel keeps catalog and layout debug lines quiet unless asked for
func logLevel(verbose bool) log.Level {
	if verbose {
		return log.LevelDebug
	}
	return log.LevelInfo
}

func inspectFile(path string) error {
	n, err := tabula.Open(path).PageCount()
	if err != nil {
		return err
	}
	text, warnings, err := tabula.Open(path).Text()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		log.Warnf("%s: %v", path, w)
	}
	fmt.Printf("%s: %d pages\n\n%s\n", path, n, text)
	return nil
}
