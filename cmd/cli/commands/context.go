// Package commands holds one cobra command factory per CLI subcommand,
// each wired against the shared AppContext built in main.
package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/jakechorley/ward-roster/internal/config"
	"github.com/jakechorley/ward-roster/pkg/store"
)

// AppContext holds the application dependencies shared across all commands.
// Audit is nil unless the config names an auditDSN; commands must treat a
// nil Audit as "skip audit logging", not as an error.
type AppContext struct {
	Cfg    *config.Config
	Audit  *store.DB
	Logger *zap.Logger
	Ctx    context.Context
	RunID  string
}
