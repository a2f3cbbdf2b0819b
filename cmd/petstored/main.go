/*
Copyright 2025 the Petstore QA Authors.

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

// petstored serves the in-memory petstore API standalone, for running the
// test suites against a long-lived instance or poking the API by hand.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/petstore-qa/apitest/internal/petstored"
)

func main() {
	var (
		listenAddress   string
		shutdownTimeout time.Duration
		debug           bool
	)

	pflag.StringVar(&listenAddress, "listen-address", ":8080", "Address to listen on.")
	pflag.DurationVar(&shutdownTimeout, "shutdown-timeout", 10*time.Second, "Grace period for in-flight requests on shutdown.")
	pflag.BoolVar(&debug, "debug", false, "Enable per-request debug logging.")
	pflag.Parse()

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	server := &http.Server{
		Addr:              listenAddress,
		Handler:           petstored.New(logger).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)

	go func() {
		logger.Info("petstored listening", "address", listenAddress)
		errChan <- server.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		fmt.Println(err)
		os.Exit(1)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Println(err)
		os.Exit(1)
	}
}
