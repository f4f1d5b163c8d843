package report

import "sync"

// Reporter is responsible for reporting errors, warnings, and other kinds of
// messages to the user during backend execution.  The reporter respects the
// set log level and is synchronized: its methods can be safely called from
// multiple backend workers at once.
type Reporter struct {
	// The mutex used to synchronize different report method calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all backend messages to the user (default).
)

// rep is the global reporter instance.  It starts verbose so that messages
// reported before the driver selects a log level are never dropped.
var rep = &Reporter{
	m:        &sync.Mutex{},
	logLevel: LogLevelVerbose,
}

// InitReporter sets the log level of the global error reporter.
func InitReporter(logLevel int) {
	rep.logLevel = logLevel
}
