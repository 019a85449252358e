package util

// Progress counts finished jobs and reports them on stderr. Errors are always
// shown, while the running tally is only shown with the 'verbose' flag.
type Progress struct {
	errs  chan error
	done  chan struct{}
	total int

	// Set once Close returns.
	Failed int
}

func NewProgress(total int) *Progress {
	p := &Progress{
		errs:  make(chan error),
		done:  make(chan struct{}),
		total: total,
	}
	go func() {
		completed := 0
		for err := range p.errs {
			if err == nil {
				completed += 1
			} else {
				p.Failed += 1
				if FlagVerbose {
					Warnf("\r%s                                    \n", err)
				} else {
					Warnf("%s", err)
				}
			}

			ratio := 100.0 * (float64(completed) / float64(p.total))
			Verbosef("\r%d of %d jobs complete (%0.2f%% done, %d errors)",
				completed, p.total, ratio, p.Failed)
		}
		Verbosef("\n")
		p.done <- struct{}{}
	}()
	return p
}

func (p *Progress) JobDone(err error) {
	p.errs <- err
}

func (p *Progress) Close() {
	close(p.errs)
	<-p.done
}
