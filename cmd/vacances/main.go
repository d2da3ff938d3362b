package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/chrissnell/vacances/internal/constants"
	"github.com/chrissnell/vacances/pkg/vacances"
)

func main() {
	yearCmd := flag.NewFlagSet("year", flag.ExitOnError)
	checkCmd := flag.NewFlagSet("check", flag.ExitOnError)
	publicCmd := flag.NewFlagSet("public", flag.ExitOnError)

	// Year command flags
	year := yearCmd.Int("year", time.Now().Year(), "Year in which the holiday periods start")
	yearZone := yearCmd.String("zone", "", "Restrict to one zone (Zone A, Zone B, Zone C)")
	yearName := yearCmd.String("name", "", "Restrict to one holiday period, e.g. \"Vacances d'Hiver\"")
	format := yearCmd.String("format", "table", "Output format: table, json, csv, ics or sqlite")
	out := yearCmd.String("out", "", "Output file (required for sqlite, stdout otherwise)")
	withPublic := yearCmd.Bool("public", false, "Include public holidays in ICS output")
	yearEndpoint := yearCmd.String("endpoint", vacances.DefaultEndpoint, "Holiday dataset export URL")
	yearTimeout := yearCmd.Duration("timeout", vacances.DefaultTimeout, "Dataset request timeout")

	// Check command flags
	date := checkCmd.String("date", time.Now().In(vacances.Paris()).Format(vacances.DateLayout), "Date to check (YYYY-MM-DD)")
	checkZone := checkCmd.String("zone", "", "Check a single zone instead of all of them")
	checkEndpoint := checkCmd.String("endpoint", vacances.DefaultEndpoint, "Holiday dataset export URL")
	checkTimeout := checkCmd.Duration("timeout", vacances.DefaultTimeout, "Dataset request timeout")

	// Public command flags
	publicYear := publicCmd.Int("year", time.Now().Year(), "Year to list")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	var err error

	switch os.Args[1] {
	case "year":
		yearCmd.Parse(os.Args[2:])
		err = runYear(ctx, os.Stdout, newSource(*yearEndpoint, *yearTimeout), yearOptions{
			year:   *year,
			zone:   *yearZone,
			name:   *yearName,
			format: *format,
			out:    *out,
			public: *withPublic,
		})

	case "check":
		checkCmd.Parse(os.Args[2:])
		err = runCheck(ctx, os.Stdout, newSource(*checkEndpoint, *checkTimeout), *date, *checkZone)

	case "public":
		publicCmd.Parse(os.Args[2:])
		err = runPublic(os.Stdout, *publicYear)

	case "zones":
		err = runList(os.Stdout, vacances.SupportedZones())

	case "names":
		err = runList(os.Stdout, vacances.SupportedHolidayNames())

	case "version", "-version", "--version":
		fmt.Printf("vacances %s\n", constants.Version)

	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newSource(endpoint string, timeout time.Duration) *vacances.SchoolHolidayDates {
	return vacances.New(
		vacances.WithEndpoint(endpoint),
		vacances.WithGetter(vacances.NewHTTPClient(timeout)),
	)
}

func printUsage() {
	fmt.Println("vacances - French school holiday calendar")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  vacances year [flags]")
	fmt.Println("  vacances check [flags]")
	fmt.Println("  vacances public [flags]")
	fmt.Println("  vacances zones")
	fmt.Println("  vacances names")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  year     List the holiday days of periods starting in a year")
	fmt.Println("  check    Tell whether a date is a school holiday")
	fmt.Println("  public   List the public holidays of a year")
	fmt.Println("  zones    List the supported zones")
	fmt.Println("  names    List the supported holiday names")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  vacances year -year 2024 -zone \"Zone A\"")
	fmt.Println("  vacances year -year 2024 -format ics -public -out vacances.ics")
	fmt.Println("  vacances year -year 2024 -format sqlite -out vacances.db")
	fmt.Println("  vacances check -date 2024-02-12 -zone \"Zone C\"")
}
