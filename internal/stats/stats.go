// Package stats derives read-only statistics from the loaded catalog.
// Everything is computed client-side; the numbers are only as fresh as
// the last catalog load.
package stats

import (
	"sort"
	"time"

	"github.com/bookloft/biblioctl/internal/catalog"
)

// dateLayouts are the formats book dates show up in.
var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05", "02/01/2006"}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// StatusCounts returns the number of books per reading status.
func StatusCounts(books []catalog.Book) map[catalog.Status]int {
	counts := make(map[catalog.Status]int)
	for _, b := range books {
		counts[b.Status]++
	}
	return counts
}

// Years returns the distinct years in which books were finished,
// newest first.
func Years(books []catalog.Book) []int {
	seen := make(map[int]struct{})
	for _, b := range books {
		if b.Status != catalog.StatusRead {
			continue
		}
		if t, ok := parseDate(b.EndDate); ok {
			seen[t.Year()] = struct{}{}
		}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// ReadPerMonth returns, for the given year, how many books were
// finished in each month (index 0 = January).
func ReadPerMonth(books []catalog.Book, year int) [12]int {
	var months [12]int
	for _, b := range books {
		if b.Status != catalog.StatusRead {
			continue
		}
		t, ok := parseDate(b.EndDate)
		if !ok || t.Year() != year {
			continue
		}
		months[int(t.Month())-1]++
	}
	return months
}

// ReadInYear is the yearly total behind ReadPerMonth.
func ReadInYear(books []catalog.Book, year int) int {
	total := 0
	for _, n := range ReadPerMonth(books, year) {
		total += n
	}
	return total
}

// Entry is a name with an occurrence count.
type Entry struct {
	Name  string
	Count int
}

// TopAuthors returns the n most frequent authors, most frequent first.
func TopAuthors(books []catalog.Book, n int) []Entry {
	return top(books, n, func(b catalog.Book) string { return b.Author })
}

// TopPublishers returns the n most frequent publishers.
func TopPublishers(books []catalog.Book, n int) []Entry {
	return top(books, n, func(b catalog.Book) string { return b.Publisher })
}

func top(books []catalog.Book, n int, field func(catalog.Book) string) []Entry {
	counts := make(map[string]int)
	for _, b := range books {
		if v := field(b); v != "" {
			counts[v]++
		}
	}
	entries := make([]Entry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, Entry{Name: name, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
