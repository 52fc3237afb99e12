/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// mockd serves the mock OpsGate backend on a loopback address so the CLI
// and frontends can be exercised without the production service.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/OpsGate/OpsGate/common"
	"github.com/OpsGate/OpsGate/common/schema"
	"github.com/OpsGate/OpsGate/common/schema/commands"
	"github.com/OpsGate/OpsGate/common/ulogger"
	"github.com/OpsGate/OpsGate/mock"
)

const (
	defaultListen = "127.0.0.1:8000"
	defaultUser   = "demo"
	defaultPass   = "demo1234"
)

func main() {

	// Check for version request
	if len(os.Args) == 2 {
		if strings.ToLower(os.Args[1]) == "version" {
			common.Banner("OpsGate Mock Backend", common.Version, common.Build)
			os.Exit(0)
		}
	}

	listen := os.Getenv("OPSGATE_MOCK_LISTEN")
	if listen == "" {
		listen = defaultListen
	}

	logger, err := ulogger.New(
		ulogger.WithPrefix("mockd"),
		ulogger.WithLogStdout(true))
	if err != nil {
		fmt.Printf("Unable to create logger: %v\n", err)
		os.Exit(1)
	}

	s, err := mock.New(
		mock.WithListen(listen),
		mock.WithLogger(logger),
		mock.WithUser(defaultUser, defaultPass),
		mock.WithCommand(schema.CommandRecord{
			Name:      "uptime",
			Command:   "uptime",
			Category:  commands.CategoryMonitoring,
			IsEnabled: true}),
		mock.WithCommand(schema.CommandRecord{
			Name:      "disk-usage",
			Command:   "df -h",
			Category:  commands.CategoryMonitoring,
			IsEnabled: true}))
	if err != nil {
		logger.Errorf(9001, "mock setup failed: %s", err.Error())
		os.Exit(1)
	}

	logger.Infof(9000, "mock backend listening on %s (user %q)", listen, defaultUser)
	err = s.Start()
	if err != nil {
		logger.Errorf(9002, "server error: %s", err.Error())
		os.Exit(1)
	}
}
