//go:build regiondebug

package region

const debugChecks = true
