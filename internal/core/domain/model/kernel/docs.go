// Package kernel holds the value objects shared by every aggregate of the telecom
// domain: UUID identifiers and the Actor variant naming who triggered a mutation.
package kernel
