//go:build statsview

package statsview

import (
	"errors"
	"net/http"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Serve starts the dashboard on addr in the background and returns its URL
// and a function that shuts it down. A listener failure after startup is
// passed to onErr.
func Serve(addr string, onErr func(error)) (string, func(), error) {
	listen, url, err := Endpoint(addr)
	if err != nil {
		return "", nil, err
	}
	viewer.SetConfiguration(viewer.WithAddr(listen))
	mgr := statsview.New()
	go func() {
		if err := mgr.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) && onErr != nil {
			onErr(err)
		}
	}()
	return url, mgr.Stop, nil
}
