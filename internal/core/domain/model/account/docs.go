// Package account models the customer account that owns lines. Accounts have no
// state machine: updates replace fields wholesale, and any status may follow any other.
package account
