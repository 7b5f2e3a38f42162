// Package line models a provisioned telecom service line and the policy that
// governs its status.
//
// Transitions (DELETED is terminal):
//
//	PROVISIONED ──> ACTIVE | SUSPENDED | DELETED
//	ACTIVE      ──> SUSPENDED | DELETED
//	SUSPENDED   ──> ACTIVE | DELETED
//	DELETED     ──> (none)
//
// Commissioning is the PROVISIONED -> ACTIVE move performed by the provisioning
// workflow. It is only available while the line is still PROVISIONED, which is
// stricter than a direct status change to ACTIVE (also allowed from SUSPENDED).
//
// Lines are never removed; deletion is the DELETED status.
package line
