package cli

import (
	"context"
	"testing"

	"github.com/BrunoMontanari1303/logix-cli/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListShipments_PromptsForFilter(t *testing.T) {
	ships := &fakeShipmentSvc{list: []models.Shipment{
		{ID: 1, Origem: "Curitiba", Destino: "Recife", Status: models.StatusPendente},
	}}
	a := managerApp(&fakeAuthSvc{}, ships, &fakeReferenceSvc{}, &fakeUserSvc{}, models.RoleClient)

	restore := stubInputs(t, []string{""}, nil, nil)
	defer restore()

	require.NoError(t, a.ListShipments(context.Background()))
}

func TestAcceptShipment_FullFlow(t *testing.T) {
	ships := &fakeShipmentSvc{getShipment: &models.Shipment{ID: 42, Status: models.StatusPendente}}
	ref := &fakeReferenceSvc{
		vehicles: []models.Vehicle{{ID: 5, Placa: "ABC1D23", Modelo: "Volvo FH"}},
		drivers:  []models.Driver{{ID: 9, Nome: "João"}},
	}
	a := managerApp(&fakeAuthSvc{}, ships, ref, &fakeUserSvc{}, models.RoleManager)

	restore := stubInputs(t, nil, []int64{42, 5, 9}, nil)
	defer restore()

	require.NoError(t, a.AcceptShipment(context.Background()))
	assert.True(t, ships.acceptCalled)
	assert.EqualValues(t, 5, ships.acceptedVeiculo)
	assert.EqualValues(t, 9, ships.acceptedMotorista)
}

func TestAcceptShipment_ClientRoleBlocked(t *testing.T) {
	ships := &fakeShipmentSvc{getShipment: &models.Shipment{ID: 42, Status: models.StatusPendente}}
	a := managerApp(&fakeAuthSvc{}, ships, &fakeReferenceSvc{}, &fakeUserSvc{}, models.RoleClient)

	require.NoError(t, a.AcceptShipment(context.Background()))
	assert.False(t, ships.acceptCalled)
}

func TestAcceptShipment_NonPendingStopsBeforePrompts(t *testing.T) {
	ships := &fakeShipmentSvc{getShipment: &models.Shipment{ID: 42, Status: models.StatusAceito}}
	a := managerApp(&fakeAuthSvc{}, ships, &fakeReferenceSvc{}, &fakeUserSvc{}, models.RoleManager)

	// only the shipment id is asked; vehicle and driver prompts never happen
	restore := stubInputs(t, nil, []int64{42}, nil)
	defer restore()

	require.NoError(t, a.AcceptShipment(context.Background()))
	assert.False(t, ships.acceptCalled)
}

func TestDeleteShipment_AdminOnly(t *testing.T) {
	ships := &fakeShipmentSvc{}
	a := managerApp(&fakeAuthSvc{}, ships, &fakeReferenceSvc{}, &fakeUserSvc{}, models.RoleManager)

	require.NoError(t, a.DeleteShipment(context.Background()))
	assert.Zero(t, ships.deletedID)
}

func TestDeleteShipment_ConfirmedByAdmin(t *testing.T) {
	ships := &fakeShipmentSvc{}
	a := managerApp(&fakeAuthSvc{}, ships, &fakeReferenceSvc{}, &fakeUserSvc{}, models.RoleAdmin)

	restore := stubInputs(t, []string{"s"}, []int64{7}, nil)
	defer restore()

	require.NoError(t, a.DeleteShipment(context.Background()))
	assert.EqualValues(t, 7, ships.deletedID)
}

func TestDeleteShipment_Declined(t *testing.T) {
	ships := &fakeShipmentSvc{}
	a := managerApp(&fakeAuthSvc{}, ships, &fakeReferenceSvc{}, &fakeUserSvc{}, models.RoleAdmin)

	restore := stubInputs(t, []string{"n"}, []int64{7}, nil)
	defer restore()

	require.NoError(t, a.DeleteShipment(context.Background()))
	assert.Zero(t, ships.deletedID)
}

func TestCreateShipment_ParsesDate(t *testing.T) {
	ships := &fakeShipmentSvc{}
	a := managerApp(&fakeAuthSvc{}, ships, &fakeReferenceSvc{}, &fakeUserSvc{}, models.RoleClient)

	restore := stubInputs(t, []string{"Curitiba", "Recife", "Grãos", "2026-09-10"}, nil, nil)
	defer restore()

	require.NoError(t, a.CreateShipment(context.Background()))
	require.NotNil(t, ships.created)
	assert.Equal(t, "Curitiba", ships.created.Origem)
	assert.Equal(t, 2026, ships.created.DataEntrega.Year())
}

func TestCreateShipment_BadDate(t *testing.T) {
	ships := &fakeShipmentSvc{}
	a := managerApp(&fakeAuthSvc{}, ships, &fakeReferenceSvc{}, &fakeUserSvc{}, models.RoleClient)

	restore := stubInputs(t, []string{"Curitiba", "Recife", "Grãos", "10/09/2026"}, nil, nil)
	defer restore()

	require.Error(t, a.CreateShipment(context.Background()))
	assert.Nil(t, ships.created)
}

func TestAddVehicle_ManagerOnly(t *testing.T) {
	ref := &fakeReferenceSvc{}
	a := managerApp(&fakeAuthSvc{}, &fakeShipmentSvc{}, ref, &fakeUserSvc{}, models.RoleClient)

	require.NoError(t, a.AddVehicle(context.Background()))
	assert.Nil(t, ref.createdVehicle)
}

func TestAddDriver_OptionalVehicle(t *testing.T) {
	ref := &fakeReferenceSvc{}
	a := managerApp(&fakeAuthSvc{}, &fakeShipmentSvc{}, ref, &fakeUserSvc{}, models.RoleManager)

	restore := stubInputs(t, []string{"João", "529.982.247-25", ""}, nil, nil)
	defer restore()

	require.NoError(t, a.AddDriver(context.Background()))
	require.NotNil(t, ref.createdDriver)
	assert.Nil(t, ref.createdDriver.VeiculoID)
}

func TestListUsers_AdminOnly(t *testing.T) {
	ref := &fakeReferenceSvc{users: []models.User{{ID: 1}}}
	a := managerApp(&fakeAuthSvc{}, &fakeShipmentSvc{}, ref, &fakeUserSvc{}, models.RoleManager)

	require.NoError(t, a.ListUsers(context.Background()))
}

func TestEditProfile_KeepsWhenEmpty(t *testing.T) {
	users := &fakeUserSvc{}
	a := managerApp(&fakeAuthSvc{}, &fakeShipmentSvc{}, &fakeReferenceSvc{}, users, models.RoleClient)

	restore := stubInputs(t, []string{"", ""}, nil, nil)
	defer restore()

	require.NoError(t, a.EditProfile(context.Background()))
	assert.Nil(t, users.updated)
}

func TestEditProfile_Updates(t *testing.T) {
	users := &fakeUserSvc{}
	a := managerApp(&fakeAuthSvc{}, &fakeShipmentSvc{}, &fakeReferenceSvc{}, users, models.RoleClient)

	restore := stubInputs(t, []string{"Novo Nome", ""}, nil, nil)
	defer restore()

	require.NoError(t, a.EditProfile(context.Background()))
	require.NotNil(t, users.updated)
	assert.Equal(t, "Novo Nome", users.updated.Nome)
	assert.EqualValues(t, 1, users.updatedID)
}
