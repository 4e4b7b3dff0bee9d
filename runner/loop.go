package runner

import (
	"os"
	"time"
)

// StartLoop calls RunOnce every interval until a value arrives on stop.
// The run in progress is always completed.
func (r *Runner) StartLoop(interval time.Duration, stop <-chan os.Signal) {
	for {
		c := time.After(interval)

		_, err := r.RunOnce(time.Now().UTC())
		if err != nil {
			r.Logger.WithError(err).Error("error in loop")
		}

		select {
		case s := <-stop:
			r.Logger.Infof("received %s, shutting down", s)
			return
		case <-c:
		}
	}
}
