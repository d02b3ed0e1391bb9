//go:build !regiondebug

package region

const debugChecks = false
