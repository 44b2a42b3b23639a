package scraper

import (
	"testing"
	"time"
)

func TestFromTextAttributeStage(t *testing.T) {
	loc := nyLocation(t)
	now := time.Date(2025, time.October, 1, 12, 0, 0, 0, loc)

	tests := []struct {
		name string
		html string
		want time.Time
	}{
		{
			name: "itemprop datetime",
			html: `<html><body><span itemprop="startDate" datetime="2025-10-24T19:00:00-04:00"></span></body></html>`,
			want: time.Date(2025, time.October, 24, 19, 0, 0, 0, time.FixedZone("", -4*3600)),
		},
		{
			name: "itemprop content",
			html: `<html><body><span itemprop="startDate" content="2025-10-24T19:00:00"></span></body></html>`,
			want: time.Date(2025, time.October, 24, 19, 0, 0, 0, loc),
		},
		{
			name: "time element",
			html: `<html><body><time datetime="2025-10-24T19:00:00-04:00">Oct 24</time></body></html>`,
			want: time.Date(2025, time.October, 24, 19, 0, 0, 0, time.FixedZone("", -4*3600)),
		},
		{
			name: "meta event start",
			html: `<html><head><meta property="event:start_time" content="2025-10-24T19:00:00-04:00"></head><body></body></html>`,
			want: time.Date(2025, time.October, 24, 19, 0, 0, 0, time.FixedZone("", -4*3600)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cands := FromText(mustDoc(t, tt.html), tt.html, loc, now)
			if len(cands) != 1 {
				t.Fatalf("got %d candidates, want 1", len(cands))
			}
			if !cands[0].Start.Equal(tt.want) {
				t.Errorf("start = %v, want %v", cands[0].Start, tt.want)
			}
		})
	}
}

func TestFromTextStageOrder(t *testing.T) {
	loc := nyLocation(t)
	now := time.Date(2025, time.October, 1, 12, 0, 0, 0, loc)

	// Attribute value and visible-text pattern disagree; the attribute stage
	// must win and short-circuit the rest.
	html := `<html><body>
		<time datetime="2025-10-24T19:00:00-04:00">showtime</time>
		<p>Join us December 31, 2025 @ 11:00 PM</p>
	</body></html>`

	cands := FromText(mustDoc(t, html), html, loc, now)
	if len(cands) != 1 {
		t.Fatalf("got %d candidates, want 1", len(cands))
	}
	want := time.Date(2025, time.October, 24, 19, 0, 0, 0, time.FixedZone("", -4*3600))
	if !cands[0].Start.Equal(want) {
		t.Errorf("start = %v, want attribute-derived %v", cands[0].Start, want)
	}

	// Raw startDate sniffing pre-empts visible text.
	html = `<html><body>
		<div data-props='{"startDate": "2025-10-24T19:00:00"}'></div>
		<p>Join us December 31, 2025 @ 11:00 PM</p>
	</body></html>`

	cands = FromText(mustDoc(t, html), html, loc, now)
	if len(cands) != 1 {
		t.Fatalf("got %d candidates, want 1", len(cands))
	}
	want = time.Date(2025, time.October, 24, 19, 0, 0, 0, loc)
	if !cands[0].Start.Equal(want) {
		t.Errorf("start = %v, want raw-sniffed %v", cands[0].Start, want)
	}
}

func TestFromTextVisiblePatterns(t *testing.T) {
	loc := nyLocation(t)
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, loc)

	tests := []struct {
		text string
		want time.Time
	}{
		{"October 25, 2025 @ 7:30 PM", time.Date(2025, time.October, 25, 19, 30, 0, 0, loc)},
		{"Oct 25 • 7:30 PM", time.Date(2025, time.October, 25, 19, 30, 0, 0, loc)},
		{"October 25 at 7:30 PM", time.Date(2025, time.October, 25, 19, 30, 0, 0, loc)},
		{"Sept. 5, 2025 | 8 PM", time.Date(2025, time.September, 5, 20, 0, 0, 0, loc)},
		{"Dec 31, 2025 - 12 AM", time.Date(2025, time.December, 31, 0, 0, 0, 0, loc)},
		{"Jun 1, 2026 @ 12:15 PM", time.Date(2026, time.June, 1, 12, 15, 0, 0, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			html := "<html><body><p>" + tt.text + "</p></body></html>"
			cands := FromText(mustDoc(t, html), html, loc, now)
			if len(cands) != 1 {
				t.Fatalf("got %d candidates, want 1", len(cands))
			}
			if !cands[0].Start.Equal(tt.want) {
				t.Errorf("start = %v, want %v", cands[0].Start, tt.want)
			}
		})
	}
}

func TestFromTextCurrentYearDefault(t *testing.T) {
	loc := nyLocation(t)
	now := time.Date(2027, time.March, 1, 12, 0, 0, 0, loc)

	html := "<html><body><p>October 25 at 7:30 PM</p></body></html>"
	cands := FromText(mustDoc(t, html), html, loc, now)
	if len(cands) != 1 {
		t.Fatalf("got %d candidates, want 1", len(cands))
	}
	if got := cands[0].Start.Year(); got != 2027 {
		t.Errorf("year = %d, want the current year 2027", got)
	}
}

func TestFromTextNoDates(t *testing.T) {
	loc := nyLocation(t)
	now := time.Now()

	html := "<html><body><p>No shows scheduled right now.</p></body></html>"
	if cands := FromText(mustDoc(t, html), html, loc, now); len(cands) != 0 {
		t.Fatalf("got %+v, want none", cands)
	}
}

func TestPageTitle(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "primary heading wins",
			html: `<html><head><title>Ignored | Site</title></head><body><h1> The Big Show </h1></body></html>`,
			want: "The Big Show",
		},
		{
			name: "open graph title",
			html: `<html><head><meta property="og:title" content="OG Show"><title>Ignored | Site</title></head><body></body></html>`,
			want: "OG Show",
		},
		{
			name: "document title with suffix stripped",
			html: `<html><head><title>Plain Show | Example Venue</title></head><body></body></html>`,
			want: "Plain Show",
		},
		{
			name: "generic fallback",
			html: `<html><body><p>nothing here</p></body></html>`,
			want: FallbackTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PageTitle(mustDoc(t, tt.html)); got != tt.want {
				t.Errorf("PageTitle = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractPageCascadeExclusivity(t *testing.T) {
	loc := nyLocation(t)
	now := time.Date(2025, time.October, 1, 12, 0, 0, 0, loc)

	// Structured data and a visible-text pattern in one document: only the
	// structured result may come back.
	html := `<html><head>
		<script type="application/ld+json">
		{"@type":"Event","name":"Structured Show","startDate":"2025-11-20T19:30:00-05:00","url":"https://example.com/show"}
		</script>
		<title>Text Show | Venue</title></head>
		<body><p>November 21, 2025 @ 8:00 PM</p></body></html>`

	cands, err := ExtractPage(html, "https://example.com/page", loc, now)
	if err != nil {
		t.Fatalf("ExtractPage: %v", err)
	}
	if len(cands) != 1 || cands[0].Title != "Structured Show" {
		t.Fatalf("got %+v, want only the structured-data result", cands)
	}
	if cands[0].URL != "https://example.com/show" {
		t.Errorf("url = %q, want the node's own url", cands[0].URL)
	}

	// Text-only document: the fallback result, inheriting the page URL.
	html = `<html><head><title>Text Show | Venue</title></head>
		<body><p>November 21, 2025 @ 8:00 PM</p></body></html>`

	cands, err = ExtractPage(html, "https://example.com/page", loc, now)
	if err != nil {
		t.Fatalf("ExtractPage: %v", err)
	}
	if len(cands) != 1 || cands[0].Title != "Text Show" {
		t.Fatalf("got %+v, want only the text-derived result", cands)
	}
	if cands[0].URL != "https://example.com/page" {
		t.Errorf("url = %q, want the page URL", cands[0].URL)
	}
}
