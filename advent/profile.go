package main

import (
	"os"

	"github.com/felixge/fgprof"
)

// startProfile starts a wall-clock profile written to the named file in
// pprof format. The profile is complete once stop returns.
func startProfile(name string) (stop func() error, err error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	stopProfile := fgprof.Start(f, fgprof.FormatPprof)
	return func() error {
		if err := stopProfile(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}
