// Package autoload initializes the process logger from LOG_* environment
// variables as a side effect of being imported.
package autoload

import (
	configx "github.com/voyplan/voyplan/pkg/config"
	logx "github.com/voyplan/voyplan/pkg/logger"
)

func init() {
	cfg := configx.MustNew[logx.Config]("LOG")
	logx.Init(*cfg)
}
