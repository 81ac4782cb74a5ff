// Package writers holds helpers shared by everything that writes to stdout.
package writers
