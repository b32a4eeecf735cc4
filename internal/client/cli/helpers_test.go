package cli

import (
	"bufio"
	"context"
	"io"
	"testing"
	"time"

	"github.com/BrunoMontanari1303/logix-cli/internal/client/models"
	"github.com/BrunoMontanari1303/logix-cli/internal/client/services"
)

// stubInputs replaces the interactive input seams with queued answers.
// Text prompts and id prompts consume from their own queues; passwords all
// return pw. The returned func restores the original helpers.
func stubInputs(t *testing.T, texts []string, ids []int64, pw []byte) func() {
	t.Helper()
	origST, origGP, origID := getSimpleText, getPassword, getID

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			t.Fatalf("unexpected text prompt")
		}
		next := texts[0]
		texts = texts[1:]
		return next, nil
	}
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		return append([]byte(nil), pw...), nil
	}
	getID = func(_ *bufio.Reader, _ string, _ io.Writer) (int64, error) {
		if len(ids) == 0 {
			t.Fatalf("unexpected id prompt")
		}
		next := ids[0]
		ids = ids[1:]
		return next, nil
	}

	return func() {
		getSimpleText = origST
		getPassword = origGP
		getID = origID
	}
}

type fakeState struct {
	user     *models.User
	remember string
}

func (f *fakeState) User() *models.User                { return f.user }
func (f *fakeState) RememberEmail() string             { return f.remember }
func (f *fakeState) TokenExpiresAt() (time.Time, bool) { return time.Time{}, false }

type fakeAuthSvc struct {
	loginEmail    string
	loginSenha    string
	loginRemember bool
	loginUser     *models.User
	loginErr      error

	regNome  string
	regPapel models.Role
	regErr   error

	logoutCalled bool
}

func (f *fakeAuthSvc) Login(_ context.Context, email, senha string, remember bool) (*models.User, error) {
	f.loginEmail, f.loginSenha, f.loginRemember = email, senha, remember
	return f.loginUser, f.loginErr
}

func (f *fakeAuthSvc) Register(_ context.Context, nome, _, _, _ string, papel models.Role) error {
	f.regNome, f.regPapel = nome, papel
	return f.regErr
}

func (f *fakeAuthSvc) Logout(context.Context) error {
	f.logoutCalled = true
	return nil
}

type fakeShipmentSvc struct {
	list    []models.Shipment
	listErr error

	getShipment *models.Shipment
	getErr      error

	created   *models.NewShipment
	createErr error

	deletedID int64

	acceptedVeiculo   int64
	acceptedMotorista int64
	acceptCalled      bool
	acceptErr         error
}

func (f *fakeShipmentSvc) List(context.Context, services.ListQuery) ([]models.Shipment, error) {
	return f.list, f.listErr
}

func (f *fakeShipmentSvc) Get(context.Context, int64) (*models.Shipment, error) {
	return f.getShipment, f.getErr
}

func (f *fakeShipmentSvc) Create(_ context.Context, in models.NewShipment) (*models.Shipment, error) {
	f.created = &in
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Shipment{ID: 1, Origem: in.Origem, Destino: in.Destino, Status: models.StatusPendente}, nil
}

func (f *fakeShipmentSvc) Delete(_ context.Context, id int64) error {
	f.deletedID = id
	return nil
}

func (f *fakeShipmentSvc) Accept(_ context.Context, sh *models.Shipment, veiculoID, motoristaID int64) error {
	f.acceptCalled = true
	f.acceptedVeiculo, f.acceptedMotorista = veiculoID, motoristaID
	if f.acceptErr != nil {
		return f.acceptErr
	}
	sh.Status = models.StatusAceito
	sh.VeiculoID = &veiculoID
	sh.MotoristaID = &motoristaID
	return nil
}

type fakeReferenceSvc struct {
	vehicles []models.Vehicle
	drivers  []models.Driver
	users    []models.User

	createdVehicle   *models.Vehicle
	createdDriver    *models.Driver
	deletedVehicle   int64
	deletedDriver    int64
	deleteVehicleErr error

	vehiclesCalls int
	driversCalls  int
}

func (f *fakeReferenceSvc) Vehicles(context.Context) ([]models.Vehicle, error) {
	f.vehiclesCalls++
	return f.vehicles, nil
}

func (f *fakeReferenceSvc) Drivers(context.Context) ([]models.Driver, error) {
	f.driversCalls++
	return f.drivers, nil
}

func (f *fakeReferenceSvc) Users(context.Context) ([]models.User, error) { return f.users, nil }

func (f *fakeReferenceSvc) VehicleLabel(_ context.Context, id *int64) string {
	if id == nil {
		return "-"
	}
	return "veiculo"
}

func (f *fakeReferenceSvc) DriverLabel(_ context.Context, id *int64) string {
	if id == nil {
		return "-"
	}
	return "motorista"
}

func (f *fakeReferenceSvc) CreateVehicle(_ context.Context, v models.Vehicle) (*models.Vehicle, error) {
	v.ID = 1
	f.createdVehicle = &v
	return &v, nil
}

func (f *fakeReferenceSvc) DeleteVehicle(_ context.Context, id int64) error {
	f.deletedVehicle = id
	return f.deleteVehicleErr
}

func (f *fakeReferenceSvc) CreateDriver(_ context.Context, d models.Driver) (*models.Driver, error) {
	d.ID = 1
	f.createdDriver = &d
	return &d, nil
}

func (f *fakeReferenceSvc) DeleteDriver(_ context.Context, id int64) error {
	f.deletedDriver = id
	return nil
}

type fakeUserSvc struct {
	createdPapel models.Role
	updatedID    int64
	updated      *services.UserUpdate
}

func (f *fakeUserSvc) Create(_ context.Context, nome, email, _ string, papel models.Role) (*models.User, error) {
	f.createdPapel = papel
	return &models.User{ID: 1, Nome: nome, Email: email, Papel: papel}, nil
}

func (f *fakeUserSvc) Update(_ context.Context, id int64, in services.UserUpdate) (*models.User, error) {
	f.updatedID = id
	f.updated = &in
	return &models.User{ID: id, Nome: in.Nome, Email: in.Email}, nil
}

func managerApp(auth *fakeAuthSvc, ships *fakeShipmentSvc, ref *fakeReferenceSvc, users *fakeUserSvc, role models.Role) *App {
	return &App{
		session:   &fakeState{user: &models.User{ID: 1, Nome: "Ana", Email: "ana@logix.dev", Papel: role}},
		auth:      auth,
		shipments: ships,
		reference: ref,
		users:     users,
	}
}
