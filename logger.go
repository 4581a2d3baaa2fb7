package docsmark

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the package-wide logger used when no per-call logger is given.
var Logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "docsmark"})

// SetLogger replaces the package-wide logger.
func SetLogger(logger *log.Logger) {
	Logger = logger
}
