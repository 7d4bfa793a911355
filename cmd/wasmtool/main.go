package main

import (
	"io"
	"net"
	"net/http"
	"os"

	"nikand.dev/go/cli"
	"nikand.dev/go/cli/flag"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"
	"tlog.app/go/tlog/ext/tlflag"
	"tlog.app/go/tlog/tlio"

	"nikand.dev/go/wasmenc"
	"nikand.dev/go/wasmenc/component"
	"nikand.dev/go/wasmenc/internal/binread"
)

func main() {
	dump := &cli.Command{
		Name:        "dump",
		Description: "print section frames of modules and components",
		Args:        cli.Args{},
		Action:      dumpRun,
	}

	example := &cli.Command{
		Name:        "example",
		Description: "write a module exporting add and answer",
		Action:      exampleRun,
		Flags: []*cli.Flag{
			cli.NewFlag("output,o", "add.wasm", "output file"),
			cli.NewFlag("component", false, "wrap the module into a component"),
		},
	}

	app := &cli.Command{
		Name:        "wasmtool",
		Description: "tool to encode and inspect wasm binaries",
		Before:      before,
		Flags: []*cli.Flag{
			cli.NewFlag("log", "stderr?dm", "log output file (or stderr)"),
			cli.NewFlag("verbosity,v", "", "logger verbosity topics"),
			cli.NewFlag("debug", "", "debug address", flag.Hidden),
			cli.FlagfileFlag,
			cli.HelpFlag,
		},
		Commands: []*cli.Command{
			dump,
			example,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func before(c *cli.Command) error {
	w, err := tlflag.OpenWriter(c.String("log"))
	if err != nil {
		return errors.Wrap(err, "open log file")
	}

	err = tlio.WalkWriter(w, func(w io.Writer) error {
		c, ok := w.(*tlog.ConsoleWriter)
		if !ok {
			return nil
		}

		c.StringOnNewLineMinLen = 16

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "walk writer")
	}

	tlog.DefaultLogger = tlog.New(w)

	tlog.SetVerbosity(c.String("verbosity"))

	if q := c.String("debug"); q != "" {
		l, err := net.Listen("tcp", q)
		if err != nil {
			return errors.Wrap(err, "listen debug")
		}

		tlog.Printw("start debug interface", "addr", l.Addr())

		go func() {
			err := http.Serve(l, nil)
			if err != nil {
				tlog.Printw("debug", "addr", q, "err", err, "", tlog.Fatal)
				panic(err)
			}
		}()
	}

	return nil
}

func dumpRun(c *cli.Command) (err error) {
	var r binread.Reader

	for _, a := range c.Args {
		err := func() error {
			data, err := os.ReadFile(a)
			if err != nil {
				return errors.Wrap(err, "read file")
			}

			version, frames, err := r.Frames(data)
			if err != nil {
				return errors.Wrap(err, "decode")
			}

			kind := "module"
			if version == binread.ComponentVersion {
				kind = "component"
			}

			tlog.Printw(kind, "file", a, "version", tlog.NextAsHex, version, "sections", len(frames), "size", len(data))

			for i, f := range frames {
				name := sectionName(kind, f.ID)

				n, err := f.Count()
				if err != nil {
					tlog.Printw("section", "i", i, "id", f.ID, "name", name, "offset", tlog.NextAsHex, f.Offset, "size", len(f.Data), "data", f.Data, "count_err", err)
					continue
				}

				tlog.Printw("section", "i", i, "id", f.ID, "name", name, "offset", tlog.NextAsHex, f.Offset, "size", len(f.Data), "count", n)
				tlog.V("data").Printw("section data", "i", i, "data", f.Data)
			}

			return nil
		}()
		if err != nil {
			return errors.Wrap(err, "%v", a)
		}
	}

	return nil
}

func exampleRun(c *cli.Command) (err error) {
	m := exampleModule()

	data := m.Finish()

	if c.Bool("component") {
		data = component.New().
			Section(wasmenc.CustomSection{Name: "wasmtool", Data: []byte("example")}).
			Section(component.ModuleSection{Module: exampleModule()}).
			Finish()
	}

	out := c.String("output")

	err = os.WriteFile(out, data, 0o644)
	if err != nil {
		return errors.Wrap(err, "write %v", out)
	}

	tlog.Printw("written", "file", out, "size", len(data))

	return nil
}

func exampleModule() *wasmenc.Module {
	var types wasmenc.TypeSection
	types.Function([]wasmenc.ValType{wasmenc.I32, wasmenc.I32}, []wasmenc.ValType{wasmenc.I32})

	var funcs wasmenc.FunctionSection
	funcs.Function(0)

	var globals wasmenc.GlobalSection
	globals.Global(wasmenc.GlobalType{ValType: wasmenc.I32}, wasmenc.I32Const(42))

	var exports wasmenc.ExportSection
	exports.Export("add", wasmenc.ExportFunc, 0)
	exports.Export("answer", wasmenc.ExportGlobal, 0)

	var code wasmenc.CodeSection
	code.Function(wasmenc.NewFunction(nil).Instructions(
		wasmenc.LocalGet(0),
		wasmenc.LocalGet(1),
		wasmenc.I32Add,
		wasmenc.End,
	))

	var names wasmenc.NameSection
	names.Module("example")
	names.Functions((&wasmenc.NameMap{}).Append(0, "add"))

	return wasmenc.NewModule().
		Section(&types).
		Section(&funcs).
		Section(&globals).
		Section(&exports).
		Section(&code).
		Section(&names)
}

func sectionName(kind string, id byte) string {
	if kind == "component" {
		return component.SectionID(id).String()
	}

	return wasmenc.SectionID(id).String()
}
