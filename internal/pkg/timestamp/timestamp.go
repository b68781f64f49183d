package timestamp

import (
	"strconv"
	"strings"
	"time"

	"laundry-admin/internal/entities"
	"laundry-admin/pkg/logger"
)

const (
	compactLayout  = "2006-01-02 15:04:05"
	isoPlainLayout = "2006-01-02T15:04:05"
)

// DisplayZone returns the fixed dashboard zone (Perth, UTC+8, no DST).
// A fixed zone keeps the service independent of the host's tzdata.
func DisplayZone() *time.Location {
	return time.FixedZone("AWST", 8*60*60)
}

// Normalizer parses the heterogeneous timestamp strings the backend emits
// and renders instants in the dashboard's display zone.
type Normalizer struct {
	log normalizerLogger
	loc *time.Location
}

func New(log normalizerLogger, loc *time.Location) *Normalizer {
	return &Normalizer{
		log: log.With(),
		loc: loc,
	}
}

// Parse normalizes a raw order timestamp into an instant. The three known
// formats are tried in a fixed priority order; detection order is
// authoritative when a string could satisfy more than one heuristic.
// The sentinel, an empty string and unrecognized formats all report !ok,
// never an error: such orders cannot be date-filtered but must still render.
func (n *Normalizer) Parse(raw string) (time.Time, bool) {
	if raw == "" || raw == entities.Sentinel {
		return time.Time{}, false
	}

	// Compact SQL form, e.g. "2025-11-12 16:23:22". UTC wall clock.
	if isCompactSQL(raw) {
		t, err := time.ParseInLocation(compactLayout, raw, time.UTC)
		if err == nil {
			return t, true
		}
	}

	// Localized slash form, e.g. "17/09/2025, 3:23:27 am".
	if strings.Contains(raw, "/") && strings.Contains(raw, ",") {
		if t, ok := n.parseLocalized(raw); ok {
			return t, true
		}
	}

	// ISO-8601, e.g. "2025-11-04T18:13:52.224Z".
	if strings.Contains(raw, "T") && strings.Contains(raw, "-") {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t, true
		}
		if t, err := time.ParseInLocation(isoPlainLayout, raw, n.loc); err == nil {
			return t, true
		}
	}

	n.log.Warn("unknown order timestamp format",
		logger.NewField("timestamp", raw),
	)
	return time.Time{}, false
}

// FormatPerth renders a compact SQL timestamp (stored as UTC by the backend)
// in the display zone. Every other format is returned unchanged: without a
// known source zone a conversion would silently shift the wall clock.
func (n *Normalizer) FormatPerth(raw string) string {
	if !isCompactSQL(raw) {
		return raw
	}

	t, err := time.ParseInLocation(compactLayout, raw, time.UTC)
	if err != nil {
		n.log.Warn("malformed compact timestamp",
			logger.NewField("timestamp", raw),
			logger.NewField("error", err),
		)
		return raw
	}

	return t.In(n.loc).Format(compactLayout)
}

func isCompactSQL(raw string) bool {
	return len(raw) == 19 && raw[10] == ' ' && raw[4] == '-' && raw[7] == '-'
}

// parseLocalized handles "DD/MM/YYYY, h:mm:ss am|pm". The source zone is
// ambiguous; the instant is interpreted in the display zone, matching how
// the dashboard always rendered these strings.
func (n *Normalizer) parseLocalized(raw string) (time.Time, bool) {
	datePart, timePart, found := strings.Cut(raw, ", ")
	if !found {
		return time.Time{}, false
	}

	dateFields := strings.Split(datePart, "/")
	if len(dateFields) != 3 {
		return time.Time{}, false
	}
	day, errD := strconv.Atoi(dateFields[0])
	month, errM := strconv.Atoi(dateFields[1])
	year, errY := strconv.Atoi(dateFields[2])
	if errD != nil || errM != nil || errY != nil {
		return time.Time{}, false
	}

	// The suffix casing varies ("am", "PM", "Am"), so strip it lowered.
	lower := strings.ToLower(timePart)
	isPM := strings.Contains(lower, "pm")
	clock := strings.TrimSpace(strings.NewReplacer("am", "", "pm", "").Replace(lower))

	clockFields := strings.Split(clock, ":")
	if len(clockFields) != 3 {
		return time.Time{}, false
	}
	hours, errH := strconv.Atoi(clockFields[0])
	minutes, errMin := strconv.Atoi(clockFields[1])
	seconds, errS := strconv.Atoi(strings.TrimSpace(clockFields[2]))
	if errH != nil || errMin != nil || errS != nil {
		return time.Time{}, false
	}

	// 12-hour to 24-hour: 12am is midnight, 12pm stays noon.
	if isPM && hours < 12 {
		hours += 12
	}
	if !isPM && hours == 12 {
		hours = 0
	}

	return time.Date(year, time.Month(month), day, hours, minutes, seconds, 0, n.loc), true
}
