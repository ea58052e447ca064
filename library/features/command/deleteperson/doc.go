// Package deleteperson implements the Delete Person use case.
// A person who still holds a copy of any book cannot be deleted.
package deleteperson
