//go:build assertions

package assert

const enabled = true
