/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package commands defines the fixed command category enumeration and
// validates command registration requests before they go on the wire.
package commands

// Command categories accepted by the backend
const (
	CategoryBuild      = "build"
	CategoryDeploy     = "deploy"
	CategoryTest       = "test"
	CategorySecurity   = "security"
	CategoryMonitoring = "monitoring"
)

var categories = map[string]struct{}{
	CategoryBuild:      {},
	CategoryDeploy:     {},
	CategoryTest:       {},
	CategorySecurity:   {},
	CategoryMonitoring: {},
}

// Categories returns the list of valid categories in a stable order
func Categories() []string {
	return []string{
		CategoryBuild,
		CategoryDeploy,
		CategoryTest,
		CategorySecurity,
		CategoryMonitoring,
	}
}

// ValidCategory returns true if the supplied category is one of the
// fixed enumeration values
func ValidCategory(category string) bool {
	_, ok := categories[category]
	return ok
}
