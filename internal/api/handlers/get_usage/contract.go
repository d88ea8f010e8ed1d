package get_usage

import (
	"github.com/m04kA/RBM-DashboardService/internal/usage"
)

type UsageTracker interface {
	Snapshot() usage.Snapshot
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
