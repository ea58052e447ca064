// Package deletebook implements the Delete Book use case. Books with copies on loan cannot be deleted.
package deletebook
