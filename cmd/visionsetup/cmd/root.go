/*
 *     Copyright 2024 The Pantry Peeper Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	logger "github.com/pantry-peeper/visionsetup/internal/pplog"
	"github.com/pantry-peeper/visionsetup/pkg/workspace"
	"github.com/pantry-peeper/visionsetup/setup"
	"github.com/pantry-peeper/visionsetup/setup/config"
	"github.com/pantry-peeper/visionsetup/version"
)

var (
	cfg     *config.Config
	cfgFile string
)

// rootDescription is used to describe visionsetup command in details.
var rootDescription = `visionsetup drives the Azure AI Vision setup pipeline of Pantry Peeper.
It validates the service configuration, prepares the pantry item dataset,
runs a simulated training job, exercises the trained model and verifies the
acceptance criteria. Every stage leaves a JSON report behind and the run
finishes with a setup summary record.`

// rootCmd represents the visionsetup command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:               "visionsetup",
	Short:             "the Azure AI Vision setup pipeline of Pantry Peeper",
	Long:              rootDescription,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Initialize workspace.
		ws, err := initWorkspace(&cfg.Workspace)
		if err != nil {
			return err
		}

		// Initialize logger.
		if err := logger.InitSetup(cfg.Verbose, cfg.Console, ws.LogDir()); err != nil {
			return fmt.Errorf("init visionsetup logger: %w", err)
		}

		setupSignalHandler(cancel)
		return runSetup(ctx, ws)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Errorf("execute error: %s", err.Error())
		os.Exit(1)
	}
}

func init() {
	// Initialize default visionsetup config.
	cfg = config.New()

	// Initialize cobra.
	cobra.OnInitialize(initConfig)

	// Add flags.
	flagSet := rootCmd.Flags()
	flagSet.StringVar(&cfgFile, "config", "", "the path of visionsetup's configuration file")
	flagSet.StringVar(&cfg.Workspace.WorkHome, "workdir", cfg.Workspace.WorkHome, "the work home directory holding prepared data")
	flagSet.BoolVar(&cfg.Console, "console", cfg.Console, "show log and progress on console")
	flagSet.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "print verbose log and enable golang debug info")

	// Add command.
	rootCmd.AddCommand(version.VersionCmd)
}

// initConfig resolves the configuration file and the environment.
func initConfig() {
	if err := cfg.Load(cfgFile); err != nil {
		logger.Fatalf("load configuration failed: %s", err.Error())
	}
}

func initWorkspace(cfg *config.WorkspaceConfig) (workspace.Workspace, error) {
	var options []workspace.Option
	if cfg.WorkHome != "" {
		options = append(options, workspace.WithWorkHome(cfg.WorkHome))
	}

	if cfg.LogDir != "" {
		options = append(options, workspace.WithLogDir(cfg.LogDir))
	}

	if cfg.ReportDir != "" {
		options = append(options, workspace.WithReportDir(cfg.ReportDir))
	}

	return workspace.New(options...)
}

func setupSignalHandler(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigs
		logger.Infof("receive %s signal", sig)
		cancel()
	}()
}

// runSetup drives the pipeline once and prints the closing summary block.
// The summary is printed even when acceptance criteria are not met, the
// returned error then makes the process exit nonzero.
func runSetup(ctx context.Context, ws workspace.Workspace) error {
	logger.Infof("version:\n%s", version.Version())

	summary, err := setup.New(cfg, ws).Run(ctx)
	if summary != nil {
		printSummary(summary, ws)
	}

	return err
}

func printSummary(summary *setup.SummaryRecord, ws workspace.Workspace) {
	fmt.Printf("project:%s service:%s\n", summary.Project, summary.Service)
	fmt.Printf("run:%s date:%s\n", summary.RunID, summary.SetupDate)
	if summary.Training != nil {
		fmt.Printf("training job:%s accuracy:%.2f\n", summary.Training.JobID, summary.Training.Metrics.Accuracy)
	}

	if summary.AcceptanceCriteria != nil {
		fmt.Printf("acceptance:%s\n", summary.AcceptanceCriteria.Summary)
	}

	fmt.Printf("setup %s reports:%s\n", summary.OverallStatus, ws.ReportDir())
}
