// Copyright 2018 The CubeFS Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Command eccachenoded runs the extent cache's dispatch server: one
// process, one in-memory Cache, one HTTP listener for (object_id, op)
// requests and a second for Prometheus scraping.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	ecconfig "github.com/cubefs/extentcache/config"
	"github.com/cubefs/extentcache/eccache"
	"github.com/cubefs/extentcache/log"
	"github.com/cubefs/extentcache/proto"
	"github.com/cubefs/extentcache/server"
)

const (
	defaultListenAddr  = ":7070"
	defaultMetricsAddr = ":9090"
)

func main() {
	configPath := flag.String("c", "", "path to a JSON config file")
	flag.Parse()

	cfg := &ecconfig.Config{}
	if *configPath != "" {
		loaded, err := ecconfig.LoadFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "eccachenoded: loading config %s: %v\n", *configPath, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if level := cfg.GetString(ecconfig.KeyLogLevel, "info"); !log.SetLevel(level) {
		fmt.Fprintf(os.Stderr, "eccachenoded: unrecognized logLevel %q, keeping default\n", level)
	}
	if logPath := cfg.GetString(ecconfig.KeyLogPath, ""); logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "eccachenoded: opening log file %s: %v\n", logPath, err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	listenAddr := cfg.GetString(ecconfig.KeyListenAddr, defaultListenAddr)
	metricsAddr := cfg.GetString(ecconfig.KeyMetricsAddr, defaultMetricsAddr)

	cache := eccache.New[proto.ObjectID]()
	dispatch := server.New(cache, 0)

	dispatchSrv := &http.Server{Addr: listenAddr, Handler: dispatch}
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsSrv := &http.Server{Addr: metricsAddr, Handler: metricsMux}

	go func() {
		log.Infof("eccachenoded: dispatch server listening on %s", listenAddr)
		if err := dispatchSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("eccachenoded: dispatch server: %v", err)
		}
	}()
	go func() {
		log.Infof("eccachenoded: metrics server listening on %s", metricsAddr)
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("eccachenoded: metrics server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Infof("eccachenoded: shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = dispatchSrv.Shutdown(ctx)
	_ = metricsSrv.Shutdown(ctx)
}
