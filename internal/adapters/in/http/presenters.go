package http

import (
	"telecom/internal/core/application/usecases/queries"
	"telecom/internal/core/domain/model/account"
	"telecom/internal/core/domain/model/line"
	"telecom/internal/generated/servers"
)

func accountFromAggregate(a *account.Account) servers.Account {
	return servers.Account{
		Id:        a.ID().Bytes(),
		FullName:  a.FullName(),
		Email:     a.Email(),
		Phone:     a.Phone(),
		Status:    servers.AccountStatus(a.Status()),
		CreatedAt: a.CreatedAt(),
	}
}

func accountFromResponse(a queries.AccountResponse) servers.Account {
	return servers.Account{
		Id:        a.ID.Bytes(),
		FullName:  a.FullName,
		Email:     a.Email,
		Phone:     a.Phone,
		Status:    servers.AccountStatus(a.Status),
		CreatedAt: a.CreatedAt,
	}
}

func lineFromAggregate(l *line.Line) servers.Line {
	return servers.Line{
		Id:        l.ID().Bytes(),
		AccountId: l.AccountID().Bytes(),
		Msisdn:    l.MSISDN(),
		PlanName:  l.PlanName(),
		Status:    servers.LineStatus(l.Status()),
		CreatedAt: l.CreatedAt(),
	}
}

func lineFromResponse(l queries.LineResponse) servers.Line {
	return servers.Line{
		Id:        l.ID.Bytes(),
		AccountId: l.AccountID.Bytes(),
		Msisdn:    l.MSISDN,
		PlanName:  l.PlanName,
		Status:    servers.LineStatus(l.Status),
		CreatedAt: l.CreatedAt,
	}
}

// auditEntryFromResponse keeps the snapshots as audit.Value so they are encoded
// with their deterministic key order.
func auditEntryFromResponse(e queries.AuditEntryResponse) servers.AuditEntry {
	return servers.AuditEntry{
		Id:           e.ID.Bytes(),
		Actor:        e.Actor,
		Action:       string(e.Action),
		ResourceType: e.ResourceType,
		ResourceId:   e.ResourceID,
		OldValue:     e.OldValue,
		NewValue:     e.NewValue,
		CreatedAt:    e.CreatedAt,
	}
}
