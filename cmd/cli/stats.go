// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"os"
	"slices"
	"time"

	"homeoffice-tracker/internal/dates"

	"github.com/spf13/cobra"
)

var statsYearFlag int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show totals and streaks for recorded days",
	Long: `Shows how many home-office days are recorded, broken down by year
(or by month with --year), together with the longest stretch of
consecutive days and the streak running up to today.`,
	Example: "  hot stats\n  hot stats --year 2025",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		st, err := openStore()
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		days, err := st.Load()
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error loading dates: %v\n", err)
			os.Exit(1)
		}

		if statsYearFlag != 0 {
			days = slices.DeleteFunc(days, func(d dates.Date) bool {
				return d.Year != statsYearFlag
			})
		}
		if len(days) == 0 {
			fmt.Println("No home office days recorded.")
			return
		}

		statusColor.Println("Home office statistics:")
		fmt.Println()
		fmt.Printf("  Total days: %s\n", identifierColor.Sprintf("%d", len(days)))
		fmt.Printf("  First day:  %s\n", days[0])
		fmt.Printf("  Last day:   %s\n", days[len(days)-1])
		fmt.Println()

		if statsYearFlag != 0 {
			counts := make(map[time.Month]int)
			for _, d := range days {
				counts[d.Month]++
			}
			for m := time.January; m <= time.December; m++ {
				if counts[m] > 0 {
					fmt.Printf("  %-10s %d day(s)\n", m.String()+":", counts[m])
				}
			}
		} else {
			counts := make(map[int]int)
			for _, d := range days {
				counts[d.Year]++
			}
			years := make([]int, 0, len(counts))
			for y := range counts {
				years = append(years, y)
			}
			slices.Sort(years)
			for _, y := range years {
				fmt.Printf("  %d:      %d day(s)\n", y, counts[y])
			}
		}
		fmt.Println()

		runs := dates.Compress(days)
		longest := runs[0]
		for _, r := range runs {
			if r.Len() > longest.Len() {
				longest = r
			}
		}
		fmt.Printf("  Longest stretch: %s (%d day(s))\n", longest, longest.Len())

		today := dates.Today()
		streak := 0
		for _, r := range runs {
			if !r.Start.After(today) && !r.End.Before(today) {
				streak = int(today.Time().Sub(r.Start.Time()).Hours()/24) + 1
			}
		}
		fmt.Printf("  Current streak:  %d day(s)\n", streak)
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsYearFlag, "year", 0, "restrict the statistics to the given year")

	rootCmd.AddCommand(statsCmd)
}
