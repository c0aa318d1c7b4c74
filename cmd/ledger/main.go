package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/QuangTung97/finledger/service/projection"
	"github.com/QuangTung97/finledger/service/relay"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	rootCmd := cobra.Command{
		Use:   "ledger",
		Short: "event sourced personal finance ledger",
	}
	rootCmd.AddCommand(
		serveCommand(),
		relayCommand(),
		projectCommand(),
		rebuildCommand(),
		verifyCommand(),
		archiveCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runRelays(ctx context.Context, a *app, relays []*relay.Relay) {
	var wg sync.WaitGroup
	wg.Add(len(relays))
	for i, r := range relays {
		r := r
		workerCtx := a.workerContext(ctx, "relay", zap.Int("partition", i))
		go func() {
			defer wg.Done()
			_ = r.Run(workerCtx)
		}()
	}
	wg.Wait()
}

func runEngine(ctx context.Context, a *app, engine *projection.Engine) error {
	sub := a.newSubscriber()
	defer func() { _ = sub.Close() }()

	return engine.Run(a.workerContext(ctx, "projection"), sub)
}

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "run outbox relays, projection workers and the health server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			a := newApp(ctx)
			defer a.close()

			publisher := a.newPublisher()
			relays := a.newRelays(publisher)
			engine := a.newEngine()

			healthServer := health.NewServer()
			healthServer.SetServingStatus(healthRelay, healthpb.HealthCheckResponse_SERVING)
			healthServer.SetServingStatus(healthProjection, healthpb.HealthCheckResponse_SERVING)

			var wg sync.WaitGroup
			wg.Add(2)

			go func() {
				defer wg.Done()
				runRelays(ctx, a, relays)
				healthServer.SetServingStatus(healthRelay, healthpb.HealthCheckResponse_NOT_SERVING)
			}()

			go func() {
				defer wg.Done()
				if err := runEngine(ctx, a, engine); err != nil {
					a.logger.Error("projection worker stopped", zap.Error(err))
				}
				healthServer.SetServingStatus(healthProjection, healthpb.HealthCheckResponse_NOT_SERVING)
			}()

			err := serveUntilDone(ctx, a.conf, a.logger, healthServer)
			cancel()
			wg.Wait()

			_ = publisher.Close()
			return err
		},
	}
}

func relayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "relay",
		Short: "publish committed outbox entries to the bus",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			a := newApp(ctx)
			defer a.close()

			publisher := a.newPublisher()
			defer func() { _ = publisher.Close() }()

			runRelays(ctx, a, a.newRelays(publisher))
			return nil
		},
	}
}

func projectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "project",
		Short: "consume the bus and update read models",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			a := newApp(ctx)
			defer a.close()

			return runEngine(ctx, a, a.newEngine())
		},
	}
}

func rebuildCommand() *cobra.Command {
	var accountID string
	var all bool
	var batchSize uint64

	cmd := &cobra.Command{
		Use:   "rebuild",
		Short: "recompute the account balance projection from the event store",
		RunE: func(cmd *cobra.Command, args []string) error {
			if accountID == "" && !all {
				return errors.New("either --account or --all is required")
			}

			ctx, cancel := signalContext()
			defer cancel()

			a := newApp(ctx)
			defer a.close()

			engine := a.newEngine()
			ctx = a.workerContext(ctx, "rebuild")
			if all {
				return engine.RebuildAll(ctx, projection.AccountProjectorName, batchSize)
			}
			return engine.Rebuild(ctx, projection.AccountProjectorName, accountID)
		},
	}
	cmd.Flags().StringVar(&accountID, "account", "", "account id to rebuild")
	cmd.Flags().BoolVar(&all, "all", false, "rebuild every account")
	cmd.Flags().Uint64Var(&batchSize, "batch-size", 500, "events scanned per batch with --all")
	return cmd
}

func verifyCommand() *cobra.Command {
	var aggregateID string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "recompute the hash chain of an aggregate",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			a := newApp(ctx)
			defer a.close()

			if err := a.store.Verify(ctx, aggregateID); err != nil {
				return err
			}
			fmt.Println("OK", aggregateID)
			return nil
		},
	}
	cmd.Flags().StringVar(&aggregateID, "aggregate", "", "aggregate id to verify")
	_ = cmd.MarkFlagRequired("aggregate")
	return cmd
}

func archiveCommand() *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "archive",
		Short: "export committed events to the audit bucket",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			a := newApp(ctx)
			defer a.close()

			exporter, closeStore, err := a.newExporter(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			ctx = a.workerContext(ctx, "archive")
			if once {
				n, err := exporter.ExportOnce(ctx)
				if err != nil {
					return err
				}
				fmt.Println("ARCHIVED:", n)
				return nil
			}
			return exporter.Run(ctx)
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "export a single batch and exit")
	return cmd
}
