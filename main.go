package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"student-results/app/config"
	"student-results/app/database"
	"student-results/app/server"
	"student-results/app/services"
	"student-results/app/validation"
)

var (
	configPath string
	addrFlag   string
	seedFlag   bool
	levelFlag  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "results",
		Short:         "Student Result Management System",
		Long:          "Serves the students, sections and results manager. All data is held in memory.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runServe,
	}

	root.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "path to the YAML config file")
	root.Flags().StringVar(&addrFlag, "addr", "", "listen address (overrides config)")
	root.Flags().BoolVar(&seedFlag, "seed", true, "load demo records on start (overrides config when set)")
	root.Flags().StringVar(&levelFlag, "log-level", "", "debug, info, warn or error (overrides config)")

	root.AddCommand(newGradeCmd())
	return root
}

func newGradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grade <marks>",
		Short: "Print the letter grade for the given marks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			marks, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%s: %q", validation.MsgMarksNotInteger, args[0])
			}
			if marks < validation.MinMarks || marks > validation.MaxMarks {
				return fmt.Errorf("%s: %d", validation.MsgMarksOutOfRange, marks)
			}
			grade := services.GradeOf(marks)
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", marks, grade.Letter, grade.Color)
			return nil
		},
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if addrFlag != "" {
		cfg.Server.Addr = addrFlag
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seedFlag
	}
	if levelFlag != "" {
		cfg.Logging.Level = levelFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ttl, _ := cfg.Notifications.TTLDuration()
	sweep, _ := cfg.Notifications.SweepDuration()

	store := database.New()
	if cfg.Seed {
		database.Seed(store)
		logger.Info("Loaded demo records")
	}
	notifier := services.NewNotifier(ttl)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start background scheduler
	schedulerDone := services.StartScheduler(ctx, sweep, notifier, logger)

	app := server.New(server.Options{Server: cfg.Server, AccessLog: true}, store, notifier, logger)

	go func() {
		<-ctx.Done()
		if err := app.Shutdown(); err != nil {
			logger.Warn("Shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("Server starting", zap.String("addr", cfg.Server.Addr))
	if err := app.Listen(cfg.Server.Addr); err != nil {
		stop()
		<-schedulerDone
		return fmt.Errorf("server stopped: %w", err)
	}
	stop()
	<-schedulerDone
	logger.Info("Server stopped")
	return nil
}
