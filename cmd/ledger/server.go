package main

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/QuangTung97/finledger/config"
	"github.com/QuangTung97/finledger/pkg/grpclib"
	"github.com/QuangTung97/finledger/pkg/otellib"
	grpc_zap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpc_ctxtags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	healthRelay      = "finledger.relay"
	healthProjection = "finledger.projection"
)

func newGRPCServer(logger *zap.Logger) *grpc.Server {
	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(grpclib.RecoveryHandlerFunc)),
			grpc_ctxtags.UnaryServerInterceptor(),
			grpc_prometheus.UnaryServerInterceptor,

			otellib.SetTraceInfoInterceptor(logger),
			grpc_zap.UnaryServerInterceptor(logger),
		),
		grpc.ChainStreamInterceptor(
			grpc_recovery.StreamServerInterceptor(),
			grpc_ctxtags.StreamServerInterceptor(),
			grpc_prometheus.StreamServerInterceptor,
			grpc_zap.StreamServerInterceptor(logger),
		),
	)

	grpc_prometheus.EnableHandlingTimeHistogram()
	grpc_prometheus.Register(grpcServer)
	return grpcServer
}

// serveUntilDone runs the gRPC health server and the HTTP metrics server until ctx is done
func serveUntilDone(ctx context.Context, conf config.Config, logger *zap.Logger, healthServer *health.Server) error {
	grpcServer := newGRPCServer(logger)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	httpMux := http.NewServeMux()
	httpMux.Handle("/metrics", promhttp.Handler())

	httpServer := &http.Server{
		Addr:              conf.Server.HTTP.ListenString(),
		Handler:           httpMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	listener, err := net.Listen("tcp", conf.Server.GRPC.ListenString())
	if err != nil {
		return err
	}

	logger.Info("listening",
		zap.String("grpc", conf.Server.GRPC.ListenString()),
		zap.String("http", conf.Server.HTTP.ListenString()),
	)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logger.Error("http server", zap.Error(err))
		}
		logger.Info("shutdown http server successfully")
	}()

	go func() {
		defer wg.Done()

		if err := grpcServer.Serve(listener); err != nil {
			logger.Error("grpc server", zap.Error(err))
		}
		logger.Info("shutdown grpc server successfully")
	}()

	<-ctx.Done()
	healthServer.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	grpcServer.GracefulStop()
	err = httpServer.Shutdown(shutdownCtx)

	wg.Wait()
	return err
}
