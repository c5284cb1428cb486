// Package profiling wires the --cpuprofile/--memprofile flags to
// runtime/pprof.
package profiling

import (
	"os"
	"runtime/pprof"

	"github.com/sirupsen/logrus"
)

var osCreate = os.Create
var pprofStartCPUProfile = pprof.StartCPUProfile
var pprofStopCPUProfile = pprof.StopCPUProfile
var pprofWriteHeapProfile = pprof.WriteHeapProfile

// StartCPU begins CPU profiling into filePath. The returned stop
// function flushes and closes the profile; it is safe to call even
// when starting failed.
func StartCPU(filePath string, log logrus.FieldLogger) (stop func()) {
	file, err := osCreate(filePath)
	if err != nil {
		log.WithError(err).Error("failed to create cpu profile file")
		return func() {}
	}
	if err := pprofStartCPUProfile(file); err != nil {
		log.WithError(err).Error("failed to start cpu profiling")
		_ = file.Close()
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		_ = file.Close()
	}
}

// WriteHeap dumps a heap profile to filePath, typically right before
// exit.
func WriteHeap(filePath string, log logrus.FieldLogger) error {
	file, err := osCreate(filePath)
	if err != nil {
		log.WithError(err).Error("failed to create mem profile file")
		return err
	}
	defer func() {
		_ = file.Close()
	}()
	if err := pprofWriteHeapProfile(file); err != nil {
		log.WithError(err).Error("failed to write heap profile")
		return err
	}
	return nil
}
