// Command dbusvalidate checks DBus type signatures, message bodies,
// and textual identifiers for well-formedness, without connecting to
// any bus.
package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	dbusvalidate "github.com/TeamBitBean/dbusvalidate"
	"github.com/TeamBitBean/dbusvalidate/fragments"
	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/kr/pretty"
)

var globalArgs struct {
	Verbose bool `flag:"verbose,Print the default byte order chosen and a Go-syntax dump of the rejection code"`
}

func main() {
	root := &command.C{
		Name:     "dbusvalidate",
		Usage:    "command args...",
		SetFlags: command.Flags(flax.MustBind, &globalArgs),
		Commands: []*command.C{
			{
				Name:  "signature",
				Usage: "signature sig",
				Help:  "Check that sig is a well-formed DBus type signature.",
				Run:   command.Adapt(runSignature),
			},
			{
				Name:  "path",
				Usage: "path value",
				Help:  "Check that value is a well-formed object path.",
				Run:   command.Adapt(runIdentifier(dbusvalidate.ValidObjectPath)),
			},
			{
				Name:  "interface",
				Usage: "interface value",
				Help:  "Check that value is a well-formed interface name.",
				Run:   command.Adapt(runIdentifier(dbusvalidate.ValidInterfaceName)),
			},
			{
				Name:  "member",
				Usage: "member value",
				Help:  "Check that value is a well-formed member (method or signal) name.",
				Run:   command.Adapt(runIdentifier(dbusvalidate.ValidMemberName)),
			},
			{
				Name:  "error-name",
				Usage: "error-name value",
				Help:  "Check that value is a well-formed error name.",
				Run:   command.Adapt(runIdentifier(dbusvalidate.ValidErrorName)),
			},
			{
				Name:  "bus-name",
				Usage: "bus-name value",
				Help:  "Check that value is a well-formed bus name (unique or well-known).",
				Run:   command.Adapt(runIdentifier(dbusvalidate.ValidBusName)),
			},
			{
				Name:     "body",
				Usage:    "body sig hex-bytes",
				Help:     "Check that hex-bytes is a well-formed message body for sig.",
				SetFlags: command.Flags(flax.MustBind, &bodyArgs),
				Run:      command.Adapt(runBody),
			},
			{
				Name:  "batch",
				Usage: "batch",
				Help: `Validate many signature/body pairs from stdin and print a report.

Each input line is tab-separated: byte-order-flag, signature (as
typecodes), hex-encoded body. A worst-offenders-first report is
printed once stdin is exhausted.`,
				Run: command.Adapt(runBatch),
			},
			command.HelpCommand(nil),
			command.VersionCommand(),
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	env := root.NewEnv(nil).SetContext(ctx)
	command.RunOrFail(env, os.Args[1:])
}

func runSignature(env *command.Env, sig string) error {
	v := dbusvalidate.ValidateSignature([]byte(sig))
	return report(v)
}

func runIdentifier(valid func([]byte) bool) func(env *command.Env, value string) error {
	return func(env *command.Env, value string) error {
		if !valid([]byte(value)) {
			fmt.Println("invalid")
			return fmt.Errorf("%q is not well-formed", value)
		}
		fmt.Println("valid")
		return nil
	}
}

var bodyArgs struct {
	ByteOrder     string `flag:"byte-order,Wire byte order: l (little-endian) or B (big-endian); defaults to the host's native order"`
	AllowTrailing bool   `flag:"allow-trailing,Permit unconsumed bytes after the last value"`
}

func runBody(env *command.Env, sig, hexBytes string) error {
	order := fragments.NativeEndian
	if bodyArgs.ByteOrder != "" {
		var ok bool
		order, ok = fragments.ByteOrderFromFlag(byte(bodyArgs.ByteOrder[0]))
		if !ok {
			return fmt.Errorf("unknown byte order %q, want %q or %q", bodyArgs.ByteOrder, "l", "B")
		}
	} else if globalArgs.Verbose {
		fmt.Printf("no --byte-order given, using native order %q\n", string(order.Flag()))
	}
	body, err := hex.DecodeString(strings.TrimSpace(hexBytes))
	if err != nil {
		return fmt.Errorf("decoding hex body: %w", err)
	}

	if v := dbusvalidate.ValidateSignature([]byte(sig)); v != dbusvalidate.Valid {
		return report(v)
	}

	var remaining *int
	if bodyArgs.AllowTrailing {
		remaining = new(int)
	}
	v := dbusvalidate.ValidateBody([]byte(sig), order, body, remaining)
	if remaining != nil && v == dbusvalidate.Valid {
		fmt.Printf("valid, %d trailing bytes\n", *remaining)
		return nil
	}
	return report(v)
}

func report(v dbusvalidate.Validity) error {
	if v.OK() {
		fmt.Println("valid")
		return nil
	}
	fmt.Println(v)
	if globalArgs.Verbose {
		fmt.Printf("%# v\n", pretty.Formatter(v))
	}
	return fmt.Errorf("%s", v)
}

func runBatch(env *command.Env) error {
	sc := bufio.NewScanner(os.Stdin)
	var results []checkResult
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		results = append(results, checkLine(line))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	printReport(results)
	return nil
}
