// README: Prints a fare matrix for the seeded timetable; handy for eyeballing rule changes.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"text/tabwriter"

	"railway/internal/modules/catalog"
	"railway/internal/modules/pricing"
	"railway/internal/store"
	"railway/internal/types"
)

type fareProfile struct {
	label     string
	passenger types.Passenger
}

var profiles = []fareProfile{
	{"adult", types.Passenger{Age: 30, Railcard: types.RailcardNone}},
	{"child", types.Passenger{Age: 12, Railcard: types.RailcardNone}},
	{"family child", types.Passenger{Age: 12, Railcard: types.RailcardFamily}},
	{"senior+card", types.Passenger{Age: 65, Railcard: types.RailcardOver60s}},
}

func main() {
	ctx := context.Background()

	dir, err := os.MkdirTemp("", "railway-fares")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	trains, err := store.OpenJSON(filepath.Join(dir, "trains.json"), catalog.TrainID)
	if err != nil {
		log.Fatal(err)
	}
	catalogSvc := catalog.NewService(trains)
	if err := catalogSvc.SeedIfEmpty(ctx); err != nil {
		log.Fatal(err)
	}

	all, err := catalogSvc.List(ctx)
	if err != nil {
		log.Fatal(err)
	}

	pricingSvc := pricing.NewService()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprint(w, "Time\tRoute\tBase")
	for _, p := range profiles {
		fmt.Fprintf(w, "\t%s", p.label)
	}
	fmt.Fprintln(w)

	for _, t := range all {
		fmt.Fprintf(w, "%s\t%s -> %s\t%.2f",
			t.DepartureTime.Format("15:04"), t.Origin, t.Destination, t.BasePrice)
		for _, p := range profiles {
			fmt.Fprintf(w, "\t%.2f", pricingSvc.CalculatePrice(t, p.passenger, types.TicketOneWay))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}
