/*
Copyright 2025 The bloxone-acme-solver Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package logs

import (
	"context"
	"flag"
	"log"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

var (
	Log = klog.TODO().WithName("bloxone-solver")
)

const (
	// Following analog to https://github.com/kubernetes/community/blob/master/contributors/devel/sig-instrumentation/logging.md

	ErrorLevel        = 0
	WarnLevel         = 1
	InfoLevel         = 2
	ExtendedInfoLevel = 3
	DebugLevel        = 4
	TraceLevel        = 5
)

// GlogWriter serves as a bridge between the standard log package and the glog package.
type GlogWriter struct{}

// Write implements the io.Writer interface.
func (writer GlogWriter) Write(data []byte) (n int, err error) {
	klog.Info(string(data))
	return len(data), nil
}

// InitLogs initializes logs the way we want for the solver binary.
func InitLogs() {
	log.SetOutput(GlogWriter{})
	log.SetFlags(0)
}

// AddFlags registers this package's flags on arbitrary FlagSets.
func AddFlags(fs *pflag.FlagSet) {
	var kfs flag.FlagSet
	klog.InitFlags(&kfs)
	fs.AddGoFlagSet(&kfs)
}

// FlushLogs flushes logs immediately.
func FlushLogs() {
	klog.Flush()
}

// V returns a leveled logger; use the level constants above.
func V(level klog.Level) klog.Verbose {
	return klog.V(level)
}

// FromContext returns the logger stored in ctx, or the package-level logger
// when ctx carries none. Any supplied names are appended to the logger.
func FromContext(ctx context.Context, names ...string) logr.Logger {
	l, err := logr.FromContext(ctx)
	if err != nil {
		l = Log
	}
	for _, n := range names {
		l = l.WithName(n)
	}
	return l
}

// NewContext returns a copy of ctx carrying l.
func NewContext(ctx context.Context, l logr.Logger, names ...string) context.Context {
	for _, n := range names {
		l = l.WithName(n)
	}
	return logr.NewContext(ctx, l)
}
