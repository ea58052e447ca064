// Package listbooks implements the List Books query use case.
//
// It projects the currently displayed (filtered) book list into rows with one-based positions.
// These positions are the book indices the lend, return and delete commands expect.
package listbooks
