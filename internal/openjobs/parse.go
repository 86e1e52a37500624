package openjobs

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"apptrack-engine/internal/domain"
)

// minCells is the cell count of a plausible data row after splitting on "|"
// (index 0 is the empty segment before the leading pipe).
const minCells = 6

var (
	htmlTagRe      = regexp.MustCompile(`<[^>]*>`)
	brTagRe        = regexp.MustCompile(`(?i)<br\s*/?>`)
	dupCommaRe     = regexp.MustCompile(`\s*,\s*,\s*`)
	edgeCommaRe    = regexp.MustCompile(`^,\s*|\s*,$`)
	htmlLinkRe     = regexp.MustCompile(`<a\s+href=["']([^"']+)["']`)
	markdownLinkRe = regexp.MustCompile(`\[([^\]]+)\]\(([^\)]+)\)`)

	// "see below" markers the feed uses in company cells
	arrowGlyphRe = regexp.MustCompile(`[↳🔽⬇➡⏩` + "️" + `]`)

	// a company that is nothing but punctuation/symbols is a junk row
	onlySpecialRe = regexp.MustCompile(`^[^a-zA-Z0-9\s]+$`)
)

var monthByAbbr = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

// ParseTable turns the community markdown table of internship postings into
// job records. Rows it cannot trust are dropped silently; this pipeline has
// no warning channel. now drives the posting-year inference.
func ParseTable(markdown string, now time.Time) []domain.JobRecord {
	var out []domain.JobRecord

	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !isDataRow(line) {
			continue
		}

		cells := strings.Split(line, "|")
		if len(cells) < minCells {
			continue
		}

		company := cleanCompany(cells[1])
		jobURL := extractLink(cells[4])
		if !acceptRow(company, jobURL) {
			continue
		}

		rec := domain.JobRecord{
			Company:    company,
			Role:       strings.TrimSpace(cells[2]),
			Location:   cleanLocation(cells[3]),
			SourceURL:  jobURL,
			DatePosted: parsePostedDate(cells[5], now),
		}
		out = append(out, rec)
	}

	return out
}

// isDataRow filters out separator rows ("---") and header rows (any line
// naming the company/role columns).
func isDataRow(line string) bool {
	if !strings.HasPrefix(line, "|") || strings.Contains(line, "---") {
		return false
	}
	low := strings.ToLower(line)
	return !strings.Contains(low, "company") && !strings.Contains(low, "role")
}

func cleanCompany(cell string) string {
	s := strings.TrimSpace(cell)
	s = htmlTagRe.ReplaceAllString(s, "")
	s = arrowGlyphRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func cleanLocation(cell string) string {
	s := strings.TrimSpace(cell)
	s = brTagRe.ReplaceAllString(s, ", ")
	s = htmlTagRe.ReplaceAllString(s, "")
	s = dupCommaRe.ReplaceAllString(s, ", ")
	s = edgeCommaRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// extractLink pulls the posting URL out of the link cell: an HTML anchor if
// present, a markdown link otherwise.
func extractLink(cell string) string {
	if m := htmlLinkRe.FindStringSubmatch(cell); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := markdownLinkRe.FindStringSubmatch(cell); m != nil {
		return strings.TrimSpace(m[2])
	}
	return ""
}

// parsePostedDate reads a "Mon DD" cell. The table is append-only and
// chronological, so a month later in the year than now must be last year's.
// Anything unparseable leaves the date unset without failing the row.
func parsePostedDate(cell string, now time.Time) *time.Time {
	parts := strings.Fields(strings.TrimSpace(cell))
	if len(parts) < 2 {
		return nil
	}

	month, ok := monthByAbbr[parts[0]]
	if !ok {
		return nil
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil || day < 1 || day > 31 {
		return nil
	}

	year := now.Year()
	if month > now.Month() {
		year--
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func acceptRow(company, jobURL string) bool {
	if utf8.RuneCountInString(company) <= 1 || jobURL == "" {
		return false
	}
	return !onlySpecialRe.MatchString(company)
}
