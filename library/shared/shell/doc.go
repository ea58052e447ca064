// Package shell connects the library core to the outside world.
//
// It maps Books and Persons to the flat JSON records of a library snapshot and back (validating every
// record on the way in), saves and loads snapshots through a snapshot store, and carries the
// observability helpers and result types shared by all command handlers.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell
