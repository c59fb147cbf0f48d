// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"

	"go.uber.org/multierr"

	"github.com/hamed0406/healthpoint/internal/availability"
	"github.com/hamed0406/healthpoint/internal/config"
	"github.com/hamed0406/healthpoint/internal/domain"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	if len(os.Args) < 2 {
		fail("usage: preflight <path_to_yaml_file>")
	}

	endpoints, err := config.LoadEndpoints(os.Args[1])
	if err != nil {
		for _, e := range multierr.Errors(err) {
			fmt.Fprintln(os.Stderr, "✖", e)
		}
		os.Exit(1)
	}
	ok(fmt.Sprintf("%d endpoints loaded", len(endpoints)))

	var keys []string
	seen := map[string]bool{}
	for _, ep := range endpoints {
		if ep.Name == domain.DefaultName {
			warn(ep.URL + " has no name; status lines will show " + domain.DefaultName)
		}
		if !domain.IsSupportedMethod(ep.ResolvedMethod()) {
			warn(fmt.Sprintf("%s uses unsupported method %q; it will be reported as %s and not counted",
				ep.Name, ep.Method, domain.VerdictMisconfigured))
		}
		key, err := domain.ExtractDomain(ep.URL)
		if err != nil {
			fail(err.Error())
		}
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}

	for _, c := range availability.RedundantCNAMEs(keys) {
		warn("CNAME " + c + " is also checked as www." + c)
	}
	for _, k := range keys {
		ok("domain " + k)
	}

	ok("preflight passed")
}
