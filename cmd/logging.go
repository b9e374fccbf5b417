package cmd

import (
	"fmt"
	"strings"

	"github.com/achilleasa/lumen/log"
	"github.com/urfave/cli"
)

var logger = log.New("lumen")

func setupLogging(ctx *cli.Context) error {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}

	overrides, err := parseLogLevels(ctx.GlobalStringSlice("log-level"))
	if err != nil {
		return err
	}
	for _, o := range overrides {
		if o.module == "" {
			log.SetLevel(o.level)
			logger.Infof("set log level to %s", o.level)
			continue
		}
		log.SetLevel(o.level, o.module)
		logger.Infof("set log level for %q to %s", o.module, o.level)
	}

	return nil
}

type levelOverride struct {
	module string
	level  log.Level
}

// Parse log level overrides of the form "level" or "module=level".
func parseLogLevels(specs []string) ([]levelOverride, error) {
	overrides := make([]levelOverride, 0, len(specs))
	for _, spec := range specs {
		var o levelOverride
		levelName := spec
		if idx := strings.LastIndex(spec, "="); idx != -1 {
			o.module = strings.TrimSpace(spec[:idx])
			levelName = spec[idx+1:]
			if o.module == "" {
				return nil, fmt.Errorf("missing module name in log level %q", spec)
			}
		}

		level, err := log.ParseLevel(strings.TrimSpace(levelName))
		if err != nil {
			return nil, err
		}
		o.level = level
		overrides = append(overrides, o)
	}
	return overrides, nil
}
