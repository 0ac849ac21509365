package ioload

import (
	"github.com/cheggaaa/pb/v3"
)

// progressBar wraps pb.ProgressBar so that disabled bars cost nothing.
type progressBar struct {
	bar *pb.ProgressBar
}

// newProgressBar creates a new progress bar with consistent
// settings.
func (l *loader) newProgressBar(total int, prefix string) *progressBar {
	if !l.progress {
		return &progressBar{}
	}
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return &progressBar{bar: bar}
}

func (p *progressBar) Increment() {
	if p.bar != nil {
		p.bar.Increment()
	}
}

func (p *progressBar) Finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}
