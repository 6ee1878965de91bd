package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/future-architect/intersect"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	verbose = kingpin.Flag("verbose", "Print input and output arrays").Short('v').Envar("INTERSECT_VERBOSE").Bool()

	runCmd        = kingpin.Command("run", "Measure intersection strategies against a generated workload")
	runLength     = runCmd.Flag("length", "Length of each input array").Envar("INTERSECT_LENGTH").Default(strconv.Itoa(intersect.DefaultLength)).Int()
	runLayout     = runCmd.Flag("layout", "Workload layout").Envar("INTERSECT_LAYOUT").Default(string(intersect.LayoutRandomVsEven)).Enum(layoutNames()...)
	runMin        = runCmd.Flag("min", "Lower bound of random values").Envar("INTERSECT_MIN").Int32()
	runMax        = runCmd.Flag("max", "Upper bound (exclusive) of random values. Defaults to length").Envar("INTERSECT_MAX").Int32()
	runSeed       = runCmd.Flag("seed", "Random seed. 0 means time based").Envar("INTERSECT_SEED").Int64()
	runStrategies = runCmd.Flag("strategy", "Strategy to measure. Repeatable, defaults to all").Envar("INTERSECT_STRATEGY").Strings()

	intersectCmd      = kingpin.Command("intersect", "Intersect two comma separated integer lists")
	intersectStrategy = intersectCmd.Flag("strategy", "Strategy to use").Default(intersect.StrategySortMerge).String()
	firstArray        = intersectCmd.Arg("A", "First list like 1,2,2,1").Required().String()
	secondArray       = intersectCmd.Arg("B", "Second list like 2,2").Required().String()

	generateCmd    = kingpin.Command("generate", "Print a random array")
	generateLength = generateCmd.Flag("length", "Array length").Default("10").Int()
	generateMin    = generateCmd.Flag("min", "Lower bound").Int32()
	generateMax    = generateCmd.Flag("max", "Upper bound (exclusive)").Default("100").Int32()
	generateSeed   = generateCmd.Flag("seed", "Random seed. 0 means time based").Int64()
)

func layoutNames() []string {
	names := make([]string, len(intersect.Layouts))
	for i, layout := range intersect.Layouts {
		names[i] = string(layout)
	}
	return names
}

func parseArray(src string) ([]int32, error) {
	src = strings.TrimSpace(src)
	result := []int32{}
	if src == "" || src == "[]" {
		return result, nil
	}
	src = strings.TrimSuffix(strings.TrimPrefix(src, "["), "]")
	for _, field := range strings.Split(src, ",") {
		value, err := strconv.ParseInt(strings.TrimSpace(field), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("can't parse '%s' as int32: %w", field, err)
		}
		result = append(result, int32(value))
	}
	return result, nil
}

func formatArray(values []int32) string {
	fields := make([]string, len(values))
	for i, value := range values {
		fields[i] = strconv.FormatInt(int64(value), 10)
	}
	return "[" + strings.Join(fields, ",") + "]"
}

func run(ctx context.Context) error {
	workload, err := intersect.NewWorkload(ctx, intersect.WorkloadOption{
		Length: *runLength,
		Layout: intersect.Layout(*runLayout),
		Min:    *runMin,
		Max:    *runMax,
		Seed:   *runSeed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "workload error: %s\n", err.Error())
		return err
	}
	color.Blue("# %s length=%d seed=%d\n\n", workload.Option.Layout, workload.Option.Length, workload.Option.Seed)
	if *verbose {
		fmt.Printf("A: %s\nB: %s\n", formatArray(workload.A), formatArray(workload.B))
	}

	reports, err := intersect.MeasureWorkload(workload, *runStrategies...)
	for _, report := range reports {
		color.Cyan("%s: %dms (result=%d)", report.Strategy, report.Milliseconds(), report.ResultLen)
		if *verbose {
			fmt.Println(formatArray(report.Result))
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "measure error: %s\n", err.Error())
	}
	return err
}

func intersectLists() error {
	a, err := parseArray(*firstArray)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %s\n", err.Error())
		return err
	}
	b, err := parseArray(*secondArray)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %s\n", err.Error())
		return err
	}
	report, err := intersect.Measure(*intersectStrategy, a, b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "intersect error: %s\n", err.Error())
		return err
	}
	if report.ResultLen == 0 {
		color.Cyan("No Match")
	} else {
		fmt.Println(formatArray(report.Result))
	}
	if *verbose {
		color.Green("%s: %s (id=%s)", report.Strategy, report.Elapsed, report.ID)
	}
	return nil
}

func generate() error {
	g := intersect.NewTimeSeededGenerator()
	if *generateSeed != 0 {
		g = intersect.NewGenerator(*generateSeed)
	}
	values, err := g.RandomArray(*generateLength, *generateMin, *generateMax)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate error: %s\n", err.Error())
		return err
	}
	fmt.Println(formatArray(values))
	return nil
}

func main() {
	ctx := context.Background()

	var err error
	switch kingpin.Parse() {
	case runCmd.FullCommand():
		err = run(ctx)
	case intersectCmd.FullCommand():
		err = intersectLists()
	case generateCmd.FullCommand():
		err = generate()
	}
	if err != nil {
		os.Exit(1)
	}
}
