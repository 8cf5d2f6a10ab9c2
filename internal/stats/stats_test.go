package stats_test

import (
	"reflect"
	"testing"

	"github.com/bookloft/biblioctl/internal/catalog"
	"github.com/bookloft/biblioctl/internal/stats"
)

func library() []catalog.Book {
	return []catalog.Book{
		{ID: "1", Author: "Tolkien", Publisher: "Minotauro", Status: catalog.StatusRead, EndDate: "2025-01-15"},
		{ID: "2", Author: "Tolkien", Publisher: "Minotauro", Status: catalog.StatusRead, EndDate: "2025-01-30"},
		{ID: "3", Author: "Tolkien", Publisher: "Lumen", Status: catalog.StatusRead, EndDate: "2024-06-02"},
		{ID: "4", Author: "Eco", Publisher: "Lumen", Status: catalog.StatusReading, EndDate: ""},
		{ID: "5", Author: "Eco", Status: catalog.StatusUnread},
		{ID: "6", Author: "Zafón", Status: catalog.StatusAbandoned, EndDate: "2025-03-01"},
		{ID: "7", Status: catalog.StatusRead, EndDate: "2025-04-20T10:00:00Z"},
	}
}

func TestStatusCounts(t *testing.T) {
	counts := stats.StatusCounts(library())
	want := map[catalog.Status]int{
		catalog.StatusRead:      4,
		catalog.StatusReading:   1,
		catalog.StatusUnread:    1,
		catalog.StatusAbandoned: 1,
	}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("StatusCounts = %v, want %v", counts, want)
	}
}

func TestYears_NewestFirst(t *testing.T) {
	got := stats.Years(library())
	if !reflect.DeepEqual(got, []int{2025, 2024}) {
		t.Errorf("Years = %v, want [2025 2024]", got)
	}
}

func TestReadPerMonth(t *testing.T) {
	months := stats.ReadPerMonth(library(), 2025)
	if months[0] != 2 { // January
		t.Errorf("January = %d, want 2", months[0])
	}
	if months[3] != 1 { // April, RFC3339 date
		t.Errorf("April = %d, want 1", months[3])
	}
	// The abandoned book's end date does not count.
	if months[2] != 0 {
		t.Errorf("March = %d, want 0", months[2])
	}
	if total := stats.ReadInYear(library(), 2025); total != 3 {
		t.Errorf("ReadInYear(2025) = %d, want 3", total)
	}
}

func TestTopAuthors(t *testing.T) {
	got := stats.TopAuthors(library(), 2)
	want := []stats.Entry{{Name: "Tolkien", Count: 3}, {Name: "Eco", Count: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopAuthors = %v, want %v", got, want)
	}
}

func TestTopPublishers_SkipsEmpty(t *testing.T) {
	got := stats.TopPublishers(library(), 10)
	want := []stats.Entry{{Name: "Lumen", Count: 2}, {Name: "Minotauro", Count: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopPublishers = %v, want %v", got, want)
	}
}

func TestEmptyCatalog(t *testing.T) {
	if got := stats.Years(nil); len(got) != 0 {
		t.Errorf("Years(nil) = %v", got)
	}
	if got := stats.TopAuthors(nil, 5); len(got) != 0 {
		t.Errorf("TopAuthors(nil) = %v", got)
	}
	if total := stats.ReadInYear(nil, 2025); total != 0 {
		t.Errorf("ReadInYear(nil) = %d", total)
	}
}
