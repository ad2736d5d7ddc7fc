package notification

import "testing"

func TestContentForCountTitles(t *testing.T) {
	cases := []struct {
		count int
		title string
	}{
		{0, "Good Morning!"},
		{1, "1 Task Today!"},
		{2, "2 Tasks Today!"},
		{7, "7 Tasks Today!"},
	}
	for _, tc := range cases {
		got := ContentForCount(tc.count)
		if got.Title != tc.title {
			t.Fatalf("count %d: title = %q, want %q", tc.count, got.Title, tc.title)
		}
		if got.Body == "" {
			t.Fatalf("count %d: empty body", tc.count)
		}
		if got.URL != "/" {
			t.Fatalf("count %d: url = %q, want /", tc.count, got.URL)
		}
	}
}

func TestContentForCountPicksFromMessagePools(t *testing.T) {
	inPool := func(pool []string, body string) bool {
		for _, m := range pool {
			if m == body {
				return true
			}
		}
		return false
	}

	for i := 0; i < 20; i++ {
		rest := ContentForCount(0)
		if !inPool(restDayMessages, rest.Body) {
			t.Fatalf("rest-day body %q not from rest pool", rest.Body)
		}
		busy := ContentForCount(3)
		if !inPool(motivationalMessages, busy.Body) {
			t.Fatalf("busy-day body %q not from motivational pool", busy.Body)
		}
	}
}
