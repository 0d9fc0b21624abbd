package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ridelang/evalcore/internal/core"
	"github.com/ridelang/evalcore/internal/eval"
	"github.com/ridelang/evalcore/internal/fixture"
	"github.com/ridelang/evalcore/internal/natives"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()

	numberPrinter = message.NewPrinter(language.English)
)

func main() {
	flag.Parse()

	if flag.NArg() == 0 {
		printHelp()
		return
	}

	command := flag.Arg(0)
	switch command {
	case "run":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing fixture argument\n", red("Error"))
			fmt.Println("Usage: rideeval run <fixture.yaml>")
			os.Exit(1)
		}
		runFixture(flag.Arg(1))

	case "step":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing fixture argument\n", red("Error"))
			fmt.Println("Usage: rideeval step <fixture.yaml>")
			os.Exit(1)
		}
		stepFixture(flag.Arg(1))

	case "help":
		printHelp()

	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command '%s'\n", red("Error"), command)
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println(bold("rideeval — cost-bounded expression evaluator"))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  rideeval <command> <fixture.yaml>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Printf("  %s <fixture>   Evaluate once at the fixture's own limit\n", cyan("run"))
	fmt.Printf("  %s <fixture>  Interactively re-evaluate at increasing limits\n", cyan("step"))
	fmt.Printf("  %s             Show this help message\n", cyan("help"))
}

func loadFixtureAndEnv(path string) (*fixture.Fixture, eval.StdLibVersion, *eval.Context) {
	fx, err := fixture.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}
	version, err := fx.Version()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}
	env, err := fx.BuildEnv(natives.Registry())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}
	return fx, version, env
}

func runFixture(path string) {
	fx, version, env := loadFixtureAndEnv(path)

	expr, err := fx.Expr.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}

	result, cost, err := eval.Evaluate(expr, env, fx.Limit, version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Runtime error"), err)
		os.Exit(1)
	}

	printResult(fx, result, cost)
}

func printResult(fx *fixture.Fixture, result core.Node, cost int) {
	status := yellow("residual")
	if eval.IsValue(result) {
		status = green("value")
	}
	fmt.Printf("%s %s (limit %s, cost %s) → %s\n", status, fx.Name,
		numberPrinter.Sprintf("%d", fx.Limit), numberPrinter.Sprintf("%d", cost), bold("done"))
	fmt.Printf("  %s\n", result.String())
}

// stepFixture re-evaluates the same original expression and environment
// under a strictly growing limit (doubling, capped at the fixture's own
// limit) until the result is a value or the fixture's limit has been
// tried, stopping early if the operator quits. A step never resumes from the previous
// residual; reduction is deterministic, so restarting from the original
// inputs at a larger limit always reaches the same final value (see
// TestResumability_IncreasingLimitReachesSameValue for the same pattern
// without the interactive shell).
func stepFixture(path string) {
	fx, version, env := loadFixtureAndEnv(path)
	expr, err := fx.Expr.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Printf("%s %s — press Enter to raise the limit, or type 'quit'\n", bold("stepping"), fx.Name)

	limit := 1
	for {
		result, cost, err := eval.Evaluate(expr, env, limit, version)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", red("Runtime error"), err)
			os.Exit(1)
		}

		status := yellow("residual")
		if eval.IsValue(result) {
			status = green("value")
		}
		fmt.Printf("  limit=%s cost=%s %s: %s\n",
			numberPrinter.Sprintf("%d", limit), numberPrinter.Sprintf("%d", cost), status, result.String())

		if eval.IsValue(result) {
			fmt.Println(green("✓ reached a value"))
			return
		}
		if limit >= fx.Limit {
			fmt.Println(yellow("reached the fixture's limit without a value"))
			return
		}

		input, promptErr := line.Prompt(cyan("step> "))
		if promptErr == io.EOF || input == "quit" {
			fmt.Println("stopped")
			return
		}
		limit *= 2
		if limit > fx.Limit {
			limit = fx.Limit
		}
	}
}
