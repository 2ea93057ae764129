// Package autostart registers the daemon to launch at login.
package autostart

import "os"

const appName = "planshift"

// Enable registers the current executable to start at login, passing
// the serve subcommand.
func Enable() error {
	exe, err := os.Executable()
	if err != nil {
		return err
	}
	return enable(exe)
}

// Disable removes the login registration. Removing an absent entry is
// not an error.
func Disable() error {
	return disable()
}

// Enabled reports whether a login registration exists.
func Enabled() (bool, error) {
	return enabled()
}
