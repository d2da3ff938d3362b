package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/chrissnell/vacances/pkg/export"
	"github.com/chrissnell/vacances/pkg/feries"
	"github.com/chrissnell/vacances/pkg/vacances"
)

type yearOptions struct {
	year   int
	zone   string
	name   string
	format string
	out    string
	public bool
}

func holidaysFor(ctx context.Context, src *vacances.SchoolHolidayDates, year int, zone, name string) (vacances.Holidays, error) {
	switch {
	case zone != "" && name != "":
		return src.HolidaysForYearZoneAndName(ctx, year, zone, name)
	case zone != "":
		return src.HolidaysForYearAndZone(ctx, year, zone)
	case name != "":
		return src.HolidayForYearByName(ctx, year, name)
	default:
		return src.HolidaysForYear(ctx, year)
	}
}

func runYear(ctx context.Context, stdout io.Writer, src *vacances.SchoolHolidayDates, opts yearOptions) error {
	switch opts.format {
	case "table", "json", "csv", "ics", "sqlite":
	default:
		return fmt.Errorf("unsupported format %q", opts.format)
	}
	if opts.format == "sqlite" && opts.out == "" {
		return fmt.Errorf("-out is required for sqlite output")
	}

	holidays, err := holidaysFor(ctx, src, opts.year, opts.zone, opts.name)
	if err != nil {
		return err
	}

	if opts.format == "sqlite" {
		if err := export.WriteSQLite(ctx, opts.out, holidays); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "stored %d holiday days in %s\n", len(holidays), opts.out)
		return nil
	}

	w := stdout
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return fmt.Errorf("error creating %s: %w", opts.out, err)
		}
		defer f.Close()
		w = f
	}

	switch opts.format {
	case "json":
		return export.WriteJSON(w, holidays)
	case "csv":
		return export.WriteCSV(w, holidays)
	case "ics":
		c := export.Calendar{
			Name:     calendarName(opts.year, opts.zone),
			Holidays: holidays,
		}
		if opts.public {
			c.Public = feries.ForYear(opts.year)
		}
		return export.WriteICS(w, c)
	default:
		return writeTable(w, holidays)
	}
}

func calendarName(year int, zone string) string {
	name := fmt.Sprintf("Vacances scolaires %d", year)
	if zone != "" {
		name += ", " + vacances.NormalizeZone(zone)
	}
	return name
}

func writeTable(w io.Writer, holidays vacances.Holidays) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FROM\tTO\tDAYS\tZONES\tHOLIDAY")
	for _, r := range export.Runs(holidays) {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			r.Start, r.End.AddDays(-1), r.Days(), strings.Join(r.Entry.Zones(), ", "), r.Entry.Name)
	}
	return tw.Flush()
}

func runCheck(ctx context.Context, stdout io.Writer, src *vacances.SchoolHolidayDates, date, zone string) error {
	d, err := vacances.ParseDate(date)
	if err != nil {
		return err
	}

	midnight := d.In(vacances.Paris())
	var holiday bool
	if zone == "" {
		holiday, err = src.IsHoliday(ctx, midnight)
	} else {
		holiday, err = src.IsHolidayForZone(ctx, midnight, zone)
	}
	if err != nil {
		return err
	}

	where := "any zone"
	if zone != "" {
		where = vacances.NormalizeZone(zone)
	}
	if holiday {
		fmt.Fprintf(stdout, "%s is a school holiday in %s\n", d, where)
	} else {
		fmt.Fprintf(stdout, "%s is not a school holiday in %s\n", d, where)
	}

	if ok, name := feries.IsPublicHoliday(d); ok {
		fmt.Fprintf(stdout, "%s is also a public holiday: %s\n", d, name)
	}
	return nil
}

func runPublic(stdout io.Writer, year int) error {
	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	for _, p := range feries.ForYear(year) {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Date, p.Date.In(vacances.Paris()).Weekday(), p.Name)
	}
	return tw.Flush()
}

func runList(stdout io.Writer, items []string) error {
	for _, item := range items {
		if _, err := fmt.Fprintln(stdout, item); err != nil {
			return err
		}
	}
	return nil
}
