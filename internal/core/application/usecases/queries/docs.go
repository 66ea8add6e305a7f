// Package queries contains read-only operations over the training catalog.
package queries
