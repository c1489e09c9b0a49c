package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the startup banner to w, colored when w supports it.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	p := out.EnvColorProfile()
	// Cool-to-warm gradient, like water warming up
	lines := []struct {
		text  string
		color string
	}{
		{" __      __        __                 __", "#38bdf8"},
		{"/  \\    /  \\____ _/  |_  ___________ |__|__ __  ____", "#60a5fa"},
		{"\\   \\/\\/   |__  \\\\   __\\/ __ \\_  __ \\|  |  |  \\/ ___\\", "#818cf8"},
		{" \\        / / __ \\|  | \\  ___/|  | \\/|  |  |  / /_/  >", "#a78bfa"},
		{"  \\__/\\  / (____  /__|  \\___  >__/\\__|  |____/\\___  /", "#c084fc"},
		{"       \\/       \\/          \\/     \\______|   /_____/", "#e879f9"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
