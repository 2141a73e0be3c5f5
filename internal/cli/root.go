/*
   Copyright 2025 The DIRPX Authors.

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

// Package cli implements the ipcname command.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/ipcname"
	"dirpx.dev/ipcname/config"
	"dirpx.dev/ipcname/logging"
	"dirpx.dev/ipcname/provider"
)

// Version is the current version of ipcname, set during build time.
var Version = "dev"

// options holds the persistent flags.
type options struct {
	logLevel    string
	logDev      bool
	namespace   string
	separator   string
	noIsolation bool
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "ipcname",
		Short:         "Compute shared kernel object names",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.apply(cmd)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.logLevel, "log-level", logging.DefaultConfig().Level, "log level (debug, info, warn, error)")
	f.BoolVar(&opts.logDev, "log-dev", false, "human-readable development logs")
	f.StringVar(&opts.namespace, "namespace", "", "application namespace (default from IPCNAME_APP_NAMESPACE or "+config.DefaultAppNamespace+")")
	f.StringVar(&opts.separator, "separator", "", "account name separator for the User fallback")
	f.BoolVar(&opts.noIsolation, "no-isolation", false, "never use the private namespace for User scope")

	root.AddCommand(newNameCmd(), newScopesCmd(), newVersionCmd())
	return root
}

// Execute runs the command tree with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// apply publishes logger and configuration to the process-wide snapshot.
func (o *options) apply(cmd *cobra.Command) error {
	log, err := logging.New(logging.Config{Level: o.logLevel, Development: o.logDev})
	if err != nil {
		return err
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Warn("ignoring malformed environment", zap.Error(err))
	}
	if o.namespace != "" {
		cfg.AppNamespace = o.namespace
	}
	if o.separator != "" {
		cfg.AccountSeparator = o.separator
	}
	if o.noIsolation {
		cfg.DisableIsolation = true
	}

	if err := ipcname.SetLogger(log); err != nil {
		return err
	}
	if err := ipcname.SetProvider(provider.Detect(provider.WithLogger(log))); err != nil {
		return err
	}
	if err := ipcname.SetConfig(cfg); err != nil {
		return err
	}

	log.Debug("configuration loaded",
		zap.String("namespace", cfg.AppNamespace),
		zap.Bool("isolation", !cfg.DisableIsolation),
		zap.String("command", cmd.Name()))
	return nil
}
