package main

import (
	"context"
	"os"

	"github.com/alecthomas/kong"
)

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("formschema"),
		kong.Description("Build, validate and export form schemas."),
		kong.UsageOnError(),
	)

	app, err := newApp(context.Background(), &cli, os.Stdout, os.Stderr)
	kctx.FatalIfErrorf(err)
	defer app.Close()

	kctx.FatalIfErrorf(kctx.Run(app))
}
