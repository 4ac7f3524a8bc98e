package main

import "github.com/pkg/browser"

// openInBrowser opens path (a local file) in the user's default browser.
func openInBrowser(path string) error {
	return browser.OpenFile(path)
}
