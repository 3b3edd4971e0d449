// Command glresolve shows how the built-in command catalog resolves against
// a described GL context, without opening a driver.
//
// Every symbol of an enabled feature is assumed to exist unless listed with
// -missing, so the output shows the alias each command would bind to and
// which aliases capability gating skips:
//
//	glresolve -version "OpenGL ES 2.0" -ext GL_OES_vertex_array_object
//	glresolve -version 4.6 -missing glDebugMessageCallback -unresolved
//
// GLDISPATCH_DISABLE_EXTENSIONS and GLDISPATCH_MAX_VERSION apply as they do
// for a real context.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/gogpu/gldispatch"
	"github.com/gogpu/gldispatch/capability"
	"github.com/gogpu/gldispatch/schema"
	"github.com/gogpu/gldispatch/slot"
)

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("glresolve: %v", err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("glresolve", flag.ContinueOnError)
	var (
		version    = fs.String("version", "4.6", "GL_VERSION string of the described context")
		exts       = fs.String("ext", "", "comma-separated enabled extensions")
		missing    = fs.String("missing", "", "comma-separated symbols the driver does not export")
		unresolved = fs.Bool("unresolved", false, "print unresolved commands only")
		lint       = fs.Bool("lint", false, "report catalog defects and exit")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	s := schema.Default()
	if *lint {
		errs := s.Lint()
		for _, err := range errs {
			fmt.Fprintln(out, err)
		}
		if len(errs) > 0 {
			return fmt.Errorf("%d catalog defects", len(errs))
		}
		fmt.Fprintf(out, "%d commands, no defects\n", s.Len())
		return nil
	}

	ver, api, err := capability.ParseVersion(*version)
	if err != nil {
		return err
	}
	cfg, err := gldispatch.LoadConfigFromEnv()
	if err != nil {
		return err
	}
	caps := capability.NewSet(api, ver, split(*exts)).
		Without(cfg.DisabledExtensions...).
		Clamp(cfg.MaxVersion)

	absent := split(*missing)
	next := slot.Proc(0)
	tbl := slot.Resolve(s, caps, slot.LocatorFunc(func(name string) slot.Proc {
		if slices.Contains(absent, name) {
			return 0
		}
		next++
		return next
	}))

	for id := range schema.CommandID(tbl.Len()) {
		e := tbl.Entry(id)
		if *unresolved && e.Bound() {
			continue
		}
		fmt.Fprintln(out, e)
	}
	fmt.Fprintf(out, "%s %s: %d/%d commands bound\n", caps.API, caps.Version, tbl.Bound(), tbl.Len())
	return nil
}

func split(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
