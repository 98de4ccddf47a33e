package reporting

import (
	"io"

	"github.com/loftwing/launchcore/pkg/events"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

func fmtFloat(v float64, unit string) string {
	return printer.Sprintf("%.2f %s", v, unit)
}

// Summary is the set of scalar flight results a console table reports.
type Summary struct {
	Apogee       float64 // m
	ApogeeTime   float64 // s
	MaxMach      float64
	MaxVelocity  float64 // m/s
	LaunchMass   float64 // kg
	ReferenceLen float64 // m
}

// WriteSummaryTable renders a two-column property table to w.
func WriteSummaryTable(w io.Writer, name string, s Summary) {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Property", "Value"})
	_ = table.Append([]string{"Rocket", name})
	_ = table.Append([]string{"Apogee", fmtFloat(s.Apogee, "m")})
	_ = table.Append([]string{"Time to apogee", fmtFloat(s.ApogeeTime, "s")})
	_ = table.Append([]string{"Max Mach", fmtFloat(s.MaxMach, "")})
	_ = table.Append([]string{"Max velocity", fmtFloat(s.MaxVelocity, "m/s")})
	_ = table.Append([]string{"Launch mass", fmtFloat(s.LaunchMass, "kg")})
	_ = table.Append([]string{"Reference length", fmtFloat(s.ReferenceLen, "m")})
	_ = table.Render()
}

// WriteEventsTable renders the post-flight event tags in chronological order.
func WriteEventsTable(w io.Writer, tags []*events.Tag) {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Event", "Time (s)", "Altitude (m)"})
	for _, tag := range tags {
		_ = table.Append([]string{
			tag.Event.String(),
			fmtFloat(tag.T, ""),
			fmtFloat(tag.Zp, ""),
		})
	}
	_ = table.Render()
}
