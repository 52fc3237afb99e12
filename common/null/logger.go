/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package null

import (
	"github.com/OpsGate/OpsGate/common/interfaces"
)

// LoggerNull implements interfaces.Logger and discards all data.
// The client SDK uses it as the default so that callers who do not
// care about logging are not forced to provide a logger.
type LoggerNull struct{}

func Logger() interfaces.Logger {
	return &LoggerNull{}
}

func (n *LoggerNull) Debug(_ uint32, _ string, _ interfaces.Fields) {
}

func (n *LoggerNull) Info(_ uint32, _ string, _ interfaces.Fields) {
}

func (n *LoggerNull) Warning(_ uint32, _ string, _ interfaces.Fields) {
}

func (n *LoggerNull) Error(_ uint32, _ string, _ interfaces.Fields) {
}

func (n *LoggerNull) Fatal(_ uint32, _ string, _ interfaces.Fields) {
}

func (n *LoggerNull) Debugf(_ uint32, _ string, _ ...any) {
}

func (n *LoggerNull) Infof(_ uint32, _ string, _ ...any) {
}

func (n *LoggerNull) Warningf(_ uint32, _ string, _ ...any) {
}

func (n *LoggerNull) Errorf(_ uint32, _ string, _ ...any) {
}

func (n *LoggerNull) Fatalf(_ uint32, _ string, _ ...any) {
}
