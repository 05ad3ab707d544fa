package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonDOBString(t *testing.T) {
	assert.Equal(t, "03/1975", (&Person{DOBMonth: 3, DOBYear: 1975}).DOBString())
	assert.Equal(t, "11/1980", (&Person{DOBMonth: 11, DOBYear: 1980}).DOBString())
	assert.Equal(t, "Unknown", (&Person{}).DOBString())
	assert.Equal(t, "Unknown", (&Person{DOBYear: 1975}).DOBString())
}

func TestPersonRolesString(t *testing.T) {
	person := &Person{Roles: []Role{RolePSC, RoleDirector}}
	assert.Equal(t, "Director & PSC", person.RolesString())

	assert.Equal(t, "Director", (&Person{Roles: []Role{RoleDirector}}).RolesString())
}

func TestPersonAddRoleDeduplicates(t *testing.T) {
	person := &Person{Roles: []Role{RoleDirector}}
	person.AddRole(RoleDirector)
	person.AddRole(RolePSC)
	person.AddRole(RolePSC)

	assert.Equal(t, []Role{RoleDirector, RolePSC}, person.Roles)
}

func TestPersonHasVerifiedID(t *testing.T) {
	person := &Person{VerifiedOfficerIDs: []string{"abc123"}}
	assert.True(t, person.HasVerifiedID("abc123"))
	assert.False(t, person.HasVerifiedID("xyz789"))
}

func TestAppointmentDisplayEntry(t *testing.T) {
	plain := &Appointment{CompanyNumber: "111", CompanyName: "AcmeCo"}
	assert.Equal(t, "AcmeCo (111)", plain.DisplayEntry())

	insolvent := &Appointment{CompanyNumber: "222", CompanyName: "OldCo", HasInsolvency: true}
	assert.Equal(t, "OldCo (222) [Insolvency history]", insolvent.DisplayEntry())
}

func TestFootprintTotal(t *testing.T) {
	footprint := &Footprint{
		Active:   []string{"a", "b"},
		Resigned: []string{"c"},
	}
	assert.Equal(t, 3, footprint.Total())
	assert.Equal(t, 0, (&Footprint{}).Total())
}
