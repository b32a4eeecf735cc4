package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/BrunoMontanari1303/logix-cli/internal/client/api"
	"github.com/BrunoMontanari1303/logix-cli/internal/client/config"
	"github.com/BrunoMontanari1303/logix-cli/internal/client/models"
	"github.com/BrunoMontanari1303/logix-cli/internal/client/services"
	"github.com/BrunoMontanari1303/logix-cli/internal/client/session"
	"github.com/BrunoMontanari1303/logix-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// The services are held behind minimal interfaces so commands can be
// exercised against lightweight fakes.

type authService interface {
	Login(ctx context.Context, email, senha string, remember bool) (*models.User, error)
	Register(ctx context.Context, nome, email, senha, confirm string, papel models.Role) error
	Logout(ctx context.Context) error
}

type shipmentService interface {
	List(ctx context.Context, q services.ListQuery) ([]models.Shipment, error)
	Get(ctx context.Context, id int64) (*models.Shipment, error)
	Create(ctx context.Context, in models.NewShipment) (*models.Shipment, error)
	Delete(ctx context.Context, id int64) error
	Accept(ctx context.Context, sh *models.Shipment, veiculoID, motoristaID int64) error
}

type referenceService interface {
	Vehicles(ctx context.Context) ([]models.Vehicle, error)
	Drivers(ctx context.Context) ([]models.Driver, error)
	Users(ctx context.Context) ([]models.User, error)
	VehicleLabel(ctx context.Context, id *int64) string
	DriverLabel(ctx context.Context, id *int64) string
	CreateVehicle(ctx context.Context, v models.Vehicle) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id int64) error
	CreateDriver(ctx context.Context, d models.Driver) (*models.Driver, error)
	DeleteDriver(ctx context.Context, id int64) error
}

type userService interface {
	Create(ctx context.Context, nome, email, senha string, papel models.Role) (*models.User, error)
	Update(ctx context.Context, id int64, in services.UserUpdate) (*models.User, error)
}

type sessionState interface {
	User() *models.User
	RememberEmail() string
	TokenExpiresAt() (time.Time, bool)
}

type App struct {
	config    *config.Config
	session   sessionState
	auth      authService
	shipments shipmentService
	reference referenceService
	users     userService
	log       logging.Logger
	reader    *bufio.Reader
}

// NewApp wires the whole client: local database, session store, request
// pipeline and application services.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := session.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init local database: %w", err)
	}

	store := session.NewStore(db, log)
	store.Load(ctx)

	apiClient := api.New(c.APIBaseURL, store, c.RequestTimeout, log)

	return &App{
		config:    c,
		session:   store,
		auth:      services.NewAuthService(apiClient, store, log),
		shipments: services.NewShipmentService(apiClient, log),
		reference: services.NewReferenceService(apiClient, c.ReferenceStaleTime, log),
		users:     services.NewUserService(apiClient),
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.User() != nil
}

func (a *App) currentUser() *models.User {
	return a.session.User()
}

// getStatus renders the prompt suffix: logged-in user and role, if any.
func (a *App) getStatus() string {
	user := a.session.User()
	if user == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", user.Email, user.Papel.String())
}
