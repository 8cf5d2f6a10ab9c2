package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bookloft/biblioctl/internal/catalog"
	"github.com/bookloft/biblioctl/internal/stats"
)

func newStatsCmd() *cobra.Command {
	var (
		year int
		top  int
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show reading statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := loadBooks(cmd)
			if err != nil {
				return err
			}
			if len(books) == 0 {
				fmt.Println("No books yet.")
				return nil
			}

			header("Library")
			counts := stats.StatusCounts(books)
			for _, st := range []catalog.Status{
				catalog.StatusUnread, catalog.StatusReading,
				catalog.StatusRead, catalog.StatusAbandoned,
			} {
				fmt.Printf("  %-10s %s %d\n", st.Label(), bar(counts[st], len(books), 30), counts[st])
			}
			fmt.Printf("  %-10s %d\n", "total", len(books))

			if year == 0 {
				year = time.Now().Year()
			}
			months := stats.ReadPerMonth(books, year)
			if total := stats.ReadInYear(books, year); total > 0 {
				fmt.Println()
				header("Read in %d — %d book(s)", year, total)
				peak := 0
				for _, n := range months {
					if n > peak {
						peak = n
					}
				}
				for m := time.January; m <= time.December; m++ {
					n := months[m-1]
					fmt.Printf("  %-4s %s %d\n", m.String()[:3], bar(n, peak, 20), n)
				}
			}

			if years := stats.Years(books); len(years) > 1 {
				fmt.Println()
				header("By year")
				for _, y := range years {
					n := stats.ReadInYear(books, y)
					fmt.Printf("  %d  %s %d\n", y, bar(n, len(books), 30), n)
				}
			}

			fmt.Println()
			header("Top authors")
			for _, e := range stats.TopAuthors(books, top) {
				fmt.Printf("  %-30s %d\n", e.Name, e.Count)
			}
			header("Top publishers")
			for _, e := range stats.TopPublishers(books, top) {
				fmt.Printf("  %-30s %d\n", e.Name, e.Count)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year for the monthly breakdown (default: current)")
	cmd.Flags().IntVar(&top, "top", 10, "How many authors/publishers to list")
	return cmd
}

// bar renders a proportional block gauge.
func bar(n, max, width int) string {
	if max <= 0 {
		max = 1
	}
	filled := n * width / max
	if n > 0 && filled == 0 {
		filled = 1
	}
	return color.CyanString(strings.Repeat("█", filled)) + strings.Repeat("░", width-filled)
}
