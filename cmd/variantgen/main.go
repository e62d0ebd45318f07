package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/mattn/go-isatty"
	"github.com/sirkon/message"

	"github.com/funvibe/variant/internal/gen"
	"github.com/funvibe/variant/pkg/schema"
	"github.com/funvibe/variant/pkg/variant"
)

func main() {
	var args struct {
		Package string `arg:"-p,--package" help:"package name for the generated file"`
		Output  string `arg:"-o,--output" help:"output file path, stdout when omitted"`
		NoColor bool   `arg:"--no-color" help:"disable colored summary output"`
		SCHEMA  string `arg:"positional,required" help:"union schema YAML file"`
	}
	p := arg.MustParse(&args)

	if !strings.HasSuffix(args.SCHEMA, ".yaml") && !strings.HasSuffix(args.SCHEMA, ".yml") {
		p.Fail("SCHEMA must be a YAML file")
	}
	if args.Package == "" {
		args.Package = "variants"
	}

	file, err := schema.Load(args.SCHEMA)
	if err != nil {
		message.Fatal(err)
	}

	// A fresh registry validates the whole document: duplicate kinds, raw
	// mapping consistency and base cases all surface here.
	reg := variant.New()
	unions, err := file.Apply(reg)
	if err != nil {
		message.Fatalf("%s: %s", args.SCHEMA, err)
	}

	src, err := gen.New(args.Package).Generate(unions)
	if err != nil {
		message.Fatal(err)
	}

	if args.Output == "" {
		if _, err := os.Stdout.Write(src); err != nil {
			message.Fatal(err)
		}
		return
	}
	if err := os.WriteFile(args.Output, src, 0644); err != nil {
		message.Fatal(err)
	}

	names := make([]string, len(unions))
	for i, u := range unions {
		names[i] = u.Name()
	}
	summary := fmt.Sprintf("generated %s: %s", args.Output, strings.Join(names, ", "))
	if !args.NoColor && isatty.IsTerminal(os.Stderr.Fd()) {
		fmt.Fprintf(os.Stderr, "\033[32m%s\033[0m\n", summary)
	} else {
		fmt.Fprintln(os.Stderr, summary)
	}
}
