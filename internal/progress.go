package internal

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/time/rate"
)

// DefaultBytes is equivalent to progressbar.DefaultBytes but with a higher progressbar.OptionThrottle to reduce
// flickering.
func DefaultBytes(maxBytes int64, description string, options ...progressbar.Option) *progressbar.ProgressBar {
	return progressbar.NewOptions64(maxBytes,
		append([]progressbar.Option{
			progressbar.OptionSetDescription(description),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowBytes(true),
			progressbar.OptionShowTotalBytes(true),
			progressbar.OptionSetWidth(10),
			progressbar.OptionThrottle(1 * time.Second),
			progressbar.OptionShowCount(),
			progressbar.OptionOnCompletion(func() {
				_, _ = fmt.Fprint(os.Stderr, "\n")
			}),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionFullWidth(),
			progressbar.OptionSetRenderBlankState(true)},
			options...)...)
}

// Meter implements io.Writer to tally the number of bytes written, logging the running total at most once per
// interval. It stands in for a progress bar on streams whose size is not known up front.
type Meter struct {
	logger *log.Logger
	rate   *rate.Sometimes
	n      int64
}

func NewMeter(logger *log.Logger, interval time.Duration) *Meter {
	return &Meter{logger: logger, rate: &rate.Sometimes{Interval: interval}}
}

func (m *Meter) Write(p []byte) (n int, err error) {
	n = len(p)
	m.n += int64(n)

	m.rate.Do(func() {
		m.logger.Printf("read %s so far", humanize.IBytes(uint64(m.n)))
	})

	return n, nil
}

// Close logs the final tally.
func (m *Meter) Close() error {
	m.logger.Printf("read %s in total", humanize.IBytes(uint64(m.n)))
	return nil
}
