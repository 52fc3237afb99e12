/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import "github.com/OpsGate/OpsGate/common"

//goland:noinspection GoUnusedConst
const (
	Version         = common.Version
	Build           = common.Build
	Name            = "OGCLI"
	Description     = "OpsGate CLI"
	LongDescription = "OpsGate command line interface"
	Copyright       = "Copyright (c) 2024-2025 Tenebris Technologies Inc."
)
